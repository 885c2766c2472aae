//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workloads_get_test
package workloads_get

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
	ComputeAll(ctx context.Context, now time.Time) ([]entities.WorkloadSnapshot, error)
}

type NextFreeSlot struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkloadItem struct {
	MasterID        int64          `json:"master_id"`
	TotalSlots      int            `json:"total_slots"`
	OccupiedSlots   int            `json:"occupied_slots"`
	FreeSlots       int            `json:"free_slots"`
	WorkloadPercent int            `json:"workload_percent"`
	NextFreeSlot    *NextFreeSlot  `json:"next_free_slot"`
	OrdersByDate    map[string]int `json:"orders_by_date"`
}

type WorkloadsResponse struct {
	Masters []WorkloadItem `json:"masters"`
}
