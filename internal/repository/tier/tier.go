package tier

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/eligibility"
)

const stateColumns = "master_id, mode, level, updated_at"

// StateRepository персистентное состояние дистанционки: режим и уровень
// на мастера.
type StateRepository struct {
	querier Querier
}

func NewStateRepository(querier Querier) *StateRepository {
	return &StateRepository{
		querier: querier,
	}
}

func (r *StateRepository) Get(ctx context.Context, masterID int64) (*entities.TierState, error) {
	query := `
		SELECT ` + stateColumns + `
		FROM tier_states
		WHERE master_id = $1
	`

	var stateDB TierStateDB
	err := r.querier.QueryRow(ctx, query, masterID).Scan(
		&stateDB.MasterID,
		&stateDB.Mode,
		&stateDB.Level,
		&stateDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, eligibility.ErrMasterNotFound
		}
		return nil, fmt.Errorf("unexpected tier repository get state error: %w", err)
	}

	return StateToDomain(&stateDB), nil
}

func (r *StateRepository) Upsert(ctx context.Context, stateModify entities.TierStateModify) (*entities.TierState, error) {
	query := `
		INSERT INTO tier_states (master_id, mode, level)
		VALUES ($1, $2, $3)
		ON CONFLICT (master_id) DO UPDATE
		SET mode = EXCLUDED.mode,
		    level = EXCLUDED.level,
		    updated_at = NOW()
		RETURNING ` + stateColumns + `
	`

	var mode *string
	if stateModify.Mode != nil {
		m := stateModify.Mode.String()
		mode = &m
	}
	var level *int
	if stateModify.Level != nil {
		l := int(*stateModify.Level)
		level = &l
	}

	var stateDB TierStateDB
	err := r.querier.QueryRow(ctx, query, stateModify.MasterID, mode, level).Scan(
		&stateDB.MasterID,
		&stateDB.Mode,
		&stateDB.Level,
		&stateDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected tier repository upsert state error: %w", err)
	}

	return StateToDomain(&stateDB), nil
}

const settingsColumns = "average_check_threshold, daily_order_sum_threshold, net_turnover_threshold, extra_hours_tier1, extra_hours_tier2, updated_at"

// SettingsRepository глобальные пороги, одна строка с id = 1 из миграций.
type SettingsRepository struct {
	querier Querier
}

func NewSettingsRepository(querier Querier) *SettingsRepository {
	return &SettingsRepository{
		querier: querier,
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (*entities.TierSettings, error) {
	query := `
		SELECT ` + settingsColumns + `
		FROM tier_settings
		WHERE id = 1
	`

	var settingsDB TierSettingsDB
	err := r.querier.QueryRow(ctx, query).Scan(
		&settingsDB.AverageCheckThreshold,
		&settingsDB.DailyOrderSumThreshold,
		&settingsDB.NetTurnoverThreshold,
		&settingsDB.ExtraHoursTier1,
		&settingsDB.ExtraHoursTier2,
		&settingsDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// строка с дефолтами заводится миграцией, но пустая база не
			// должна валить чтение порогов
			return &entities.TierSettings{
				AverageCheckThreshold:  entities.DefaultAverageCheckThreshold,
				DailyOrderSumThreshold: entities.DefaultDailyOrderSumThreshold,
				NetTurnoverThreshold:   entities.DefaultNetTurnoverThreshold,
				ExtraHoursTier1:        entities.DefaultExtraHoursTier1,
				ExtraHoursTier2:        entities.DefaultExtraHoursTier2,
			}, nil
		}
		return nil, fmt.Errorf("unexpected tier repository get settings error: %w", err)
	}

	return SettingsToDomain(&settingsDB), nil
}

func (r *SettingsRepository) Update(ctx context.Context, settings entities.TierSettings) (*entities.TierSettings, error) {
	query := `
		INSERT INTO tier_settings (id, average_check_threshold, daily_order_sum_threshold, net_turnover_threshold, extra_hours_tier1, extra_hours_tier2)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET average_check_threshold = EXCLUDED.average_check_threshold,
		    daily_order_sum_threshold = EXCLUDED.daily_order_sum_threshold,
		    net_turnover_threshold = EXCLUDED.net_turnover_threshold,
		    extra_hours_tier1 = EXCLUDED.extra_hours_tier1,
		    extra_hours_tier2 = EXCLUDED.extra_hours_tier2,
		    updated_at = NOW()
		RETURNING ` + settingsColumns + `
	`

	var settingsDB TierSettingsDB
	err := r.querier.QueryRow(
		ctx,
		query,
		settings.AverageCheckThreshold,
		settings.DailyOrderSumThreshold,
		settings.NetTurnoverThreshold,
		settings.ExtraHoursTier1,
		settings.ExtraHoursTier2,
	).Scan(
		&settingsDB.AverageCheckThreshold,
		&settingsDB.DailyOrderSumThreshold,
		&settingsDB.NetTurnoverThreshold,
		&settingsDB.ExtraHoursTier1,
		&settingsDB.ExtraHoursTier2,
		&settingsDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected tier repository update settings error: %w", err)
	}

	return SettingsToDomain(&settingsDB), nil
}
