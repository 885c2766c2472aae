//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tier_settings_put_test
package tier_settings_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateSettings(ctx context.Context, settings entities.TierSettings) (*entities.TierSettings, error)
}

type TierSettingsUpdate struct {
	AverageCheckThreshold  float64 `json:"average_check_threshold"`
	DailyOrderSumThreshold float64 `json:"daily_order_sum_threshold"`
	NetTurnoverThreshold   float64 `json:"net_turnover_threshold"`
	ExtraHoursTier1        int     `json:"extra_hours_tier1"`
	ExtraHoursTier2        int     `json:"extra_hours_tier2"`
}
