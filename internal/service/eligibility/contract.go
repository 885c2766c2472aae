//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eligibility_test
package eligibility

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type StateRepository interface {
	Get(ctx context.Context, masterID int64) (*entities.TierState, error)
	Upsert(ctx context.Context, stateModify entities.TierStateModify) (*entities.TierState, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*entities.TierSettings, error)
	Update(ctx context.Context, settings entities.TierSettings) (*entities.TierSettings, error)
}

type StatsRepository interface {
	Collect(ctx context.Context, masterID int64, now time.Time) (*entities.PerformanceStats, error)
	ListMasterIDs(ctx context.Context) ([]int64, error)
}
