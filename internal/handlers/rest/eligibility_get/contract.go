//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eligibility_get_test
package eligibility_get

import (
	"context"
	"time"

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
	Evaluate(ctx context.Context, masterID int64, now time.Time) (*entities.Eligibility, error)
}

type Rule struct {
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Passed    bool    `json:"passed"`
}

type EligibilityResponse struct {
	MasterID     int64  `json:"master_id"`
	Mode         string `json:"mode"`
	Level        int    `json:"level"`
	HorizonHours int    `json:"horizon_hours"`
	AverageCheck Rule   `json:"average_check"`
	DailyRevenue Rule   `json:"daily_revenue"`
	NetTurnover  Rule   `json:"net_turnover_10d"`
}
