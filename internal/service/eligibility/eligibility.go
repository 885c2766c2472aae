package eligibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Eligibility struct {
	log      logger.Logger
	states   StateRepository
	settings SettingsRepository
	stats    StatsRepository
}

func New(log logger.Logger, states StateRepository, settings SettingsRepository, stats StatsRepository) *Eligibility {
	return &Eligibility{
		log:      log.With(),
		states:   states,
		settings: settings,
		stats:    stats,
	}
}

// Evaluate вычисляет уровень дистанционки мастера на момент now.
// Ручной режим побеждает расчёт; недоступность статистики деградирует
// мастера до нулевого уровня, а не роняет вызов.
func (e *Eligibility) Evaluate(ctx context.Context, masterID int64, now time.Time) (*entities.Eligibility, error) {
	if masterID <= 0 {
		return nil, ErrInvalidMasterID
	}

	settings, err := e.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tier settings: %w", err)
	}

	state, err := e.states.Get(ctx, masterID)
	if err != nil {
		if !errors.Is(err, ErrMasterNotFound) {
			return nil, fmt.Errorf("get tier state: %w", err)
		}
		state = &entities.TierState{
			MasterID: masterID,
			Mode:     entities.TierModeAutomatic,
			Level:    entities.TierStandard,
		}
	}

	result := &entities.Eligibility{
		MasterID: masterID,
		Mode:     state.Mode,
		Settings: *settings,
	}

	masterStats, err := e.stats.Collect(ctx, masterID, now)
	if err != nil {
		e.log.With(
			logger.NewField("master", masterID),
			logger.NewField("error", err),
		).Warn("performance stats unavailable, degrading to standard tier")
		masterStats = &entities.PerformanceStats{MasterID: masterID}
	}
	result.Stats = *masterStats

	result.AverageCheckPassed = masterStats.AverageCheck >= settings.AverageCheckThreshold
	result.DailyRevenuePassed = masterStats.DailyRevenue >= settings.DailyOrderSumThreshold
	result.NetTurnoverPassed = masterStats.NetTurnover10d >= settings.NetTurnoverThreshold

	if state.Mode == entities.TierModeManual {
		result.Level = state.Level
	} else {
		result.Level = computeLevel(result)
	}

	result.HorizonHours = int(settings.Horizon(result.Level) / time.Hour)
	return result, nil
}

// Horizon окно видимости заказов мастера на момент now.
func (e *Eligibility) Horizon(ctx context.Context, masterID int64, now time.Time) (time.Duration, error) {
	evaluated, err := e.Evaluate(ctx, masterID, now)
	if err != nil {
		return 0, err
	}
	return time.Duration(evaluated.HorizonHours) * time.Hour, nil
}

// ForceRecompute пересчитывает уровень всех известных мастеров и
// персистит результат только для тех, кто в автоматическом режиме:
// ручная установка переживает пересчёт до явного сброса.
func (e *Eligibility) ForceRecompute(ctx context.Context, now time.Time) (int64, error) {
	masterIDs, err := e.stats.ListMasterIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list masters: %w", err)
	}

	var recomputed int64
	for _, masterID := range masterIDs {
		state, err := e.states.Get(ctx, masterID)
		if err != nil && !errors.Is(err, ErrMasterNotFound) {
			return recomputed, fmt.Errorf("get tier state for master %d: %w", masterID, err)
		}
		if state != nil && state.Mode == entities.TierModeManual {
			continue
		}

		evaluated, err := e.Evaluate(ctx, masterID, now)
		if err != nil {
			return recomputed, fmt.Errorf("evaluate master %d: %w", masterID, err)
		}

		mode := entities.TierModeAutomatic
		stateModify := entities.TierStateModify{
			MasterID: &masterID,
			Mode:     &mode,
			Level:    &evaluated.Level,
		}
		_, err = e.states.Upsert(ctx, stateModify)
		if err != nil {
			return recomputed, fmt.Errorf("persist tier state for master %d: %w", masterID, err)
		}
		recomputed++
	}

	return recomputed, nil
}

// SetManual фиксирует уровень мастера до явного ResetAutomatic.
func (e *Eligibility) SetManual(ctx context.Context, masterID int64, level entities.TierLevel) (*entities.TierState, error) {
	if masterID <= 0 {
		return nil, ErrInvalidMasterID
	}
	if !level.Valid() {
		return nil, ErrInvalidTierLevel
	}

	mode := entities.TierModeManual
	state, err := e.states.Upsert(ctx, entities.TierStateModify{
		MasterID: &masterID,
		Mode:     &mode,
		Level:    &level,
	})
	if err != nil {
		return nil, fmt.Errorf("set manual tier: %w", err)
	}

	return state, nil
}

// ResetAutomatic возвращает мастера в автоматический режим и сразу
// пересчитывает уровень из свежей статистики.
func (e *Eligibility) ResetAutomatic(ctx context.Context, masterID int64, now time.Time) (*entities.TierState, error) {
	if masterID <= 0 {
		return nil, ErrInvalidMasterID
	}

	mode := entities.TierModeAutomatic
	level := entities.TierStandard
	_, err := e.states.Upsert(ctx, entities.TierStateModify{
		MasterID: &masterID,
		Mode:     &mode,
		Level:    &level,
	})
	if err != nil {
		return nil, fmt.Errorf("reset tier mode: %w", err)
	}

	evaluated, err := e.Evaluate(ctx, masterID, now)
	if err != nil {
		return nil, fmt.Errorf("recompute after reset: %w", err)
	}

	state, err := e.states.Upsert(ctx, entities.TierStateModify{
		MasterID: &masterID,
		Mode:     &mode,
		Level:    &evaluated.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("persist recomputed tier: %w", err)
	}

	return state, nil
}

func (e *Eligibility) GetSettings(ctx context.Context) (*entities.TierSettings, error) {
	settings, err := e.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tier settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings заменяет пороги целиком, частичных обновлений нет:
// читатели не должны видеть наполовину изменённый набор.
func (e *Eligibility) UpdateSettings(ctx context.Context, settings entities.TierSettings) (*entities.TierSettings, error) {
	if settings.AverageCheckThreshold <= 0 ||
		settings.DailyOrderSumThreshold <= 0 ||
		settings.NetTurnoverThreshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	if settings.ExtraHoursTier1 <= 0 || settings.ExtraHoursTier2 <= 0 {
		return nil, ErrInvalidThreshold
	}

	updated, err := e.settings.Update(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("update tier settings: %w", err)
	}

	return updated, nil
}

// computeLevel правила перехода: суточная дистанционка по выручке дня
// или валу за 10 дней, иначе обычная по среднему чеку.
func computeLevel(e *entities.Eligibility) entities.TierLevel {
	if e.DailyRevenuePassed || e.NetTurnoverPassed {
		return entities.TierFullDay
	}
	if e.AverageCheckPassed {
		return entities.TierExtended
	}
	return entities.TierStandard
}
