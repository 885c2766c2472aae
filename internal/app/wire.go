//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/handlers/rest/assign_post"
	"dispatch/internal/handlers/rest/availability_get"
	"dispatch/internal/handlers/rest/capacity_analysis_get"
	"dispatch/internal/handlers/rest/capacity_forecast_get"
	"dispatch/internal/handlers/rest/eligibility_get"
	"dispatch/internal/handlers/rest/slot_delete"
	"dispatch/internal/handlers/rest/slot_post"
	"dispatch/internal/handlers/rest/tier_reset_post"
	"dispatch/internal/handlers/rest/tier_set_post"
	"dispatch/internal/handlers/rest/tier_settings_get"
	"dispatch/internal/handlers/rest/tier_settings_put"
	"dispatch/internal/handlers/rest/transfer_post"
	"dispatch/internal/handlers/rest/unassign_post"
	"dispatch/internal/handlers/rest/workload_get"
	"dispatch/internal/handlers/rest/workloads_get"
	"dispatch/internal/handlers/tasks/tier_recompute"
	"dispatch/internal/pkg/config"

	assignmentRepo "dispatch/internal/repository/assignment"
	capacityRepo "dispatch/internal/repository/capacity"
	orderRepo "dispatch/internal/repository/order"
	slotRepo "dispatch/internal/repository/slot"
	statsRepo "dispatch/internal/repository/stats"
	tierRepo "dispatch/internal/repository/tier"
	workloadRepo "dispatch/internal/repository/workload"
	assignmentService "dispatch/internal/service/assignment"
	capacityService "dispatch/internal/service/capacity"
	eligibilityService "dispatch/internal/service/eligibility"
	orderService "dispatch/internal/service/order"
	slotService "dispatch/internal/service/slot"
	workloadService "dispatch/internal/service/workload"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RecomputeInterval time.Duration
)

type Application struct {
	ServiceSlot        ServiceSlot
	ServiceWorkload    ServiceWorkload
	ServiceAssignment  ServiceAssignment
	ServiceEligibility ServiceEligibility
	ServiceCapacity    ServiceCapacity
	BackgroundWorkers  *background.Worker
}

type ServiceSlot interface {
	slot_post.Service
	slot_delete.Service
	availability_get.Service
}

type ServiceWorkload interface {
	workloads_get.Service
	workload_get.Service
}

type ServiceAssignment interface {
	assign_post.Service
	unassign_post.Service
	transfer_post.Service
}

type ServiceEligibility interface {
	eligibility_get.Service
	tier_set_post.Service
	tier_reset_post.Service
	tier_settings_get.Service
	tier_settings_put.Service
}

type ServiceCapacity interface {
	capacity_analysis_get.Service
	capacity_forecast_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRecomputeInterval,
		provideCapacityThresholds,

		provideSlotRepository,
		provideAssignmentRepository,
		provideWorkloadRepository,
		provideTierStateRepository,
		provideTierSettingsRepository,
		provideStatsRepository,
		provideCapacityRepository,

		provideServiceSlot,
		provideServiceEligibility,
		provideServiceWorkload,
		provideServiceAssignment,
		provideServiceCapacity,

		provideTierRecomputeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSlot), new(*slotService.Slot)),
		wire.Bind(new(ServiceWorkload), new(*workloadService.Workload)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceEligibility), new(*eligibilityService.Eligibility)),
		wire.Bind(new(ServiceCapacity), new(*capacityService.Capacity)),

		wire.Bind(new(slotService.Repository), new(*slotRepo.Repository)),
		wire.Bind(new(workloadService.Repository), new(*workloadRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(eligibilityService.StateRepository), new(*tierRepo.StateRepository)),
		wire.Bind(new(eligibilityService.SettingsRepository), new(*tierRepo.SettingsRepository)),
		wire.Bind(new(eligibilityService.StatsRepository), new(*statsRepo.Repository)),
		wire.Bind(new(capacityService.Repository), new(*capacityRepo.Repository)),

		wire.Bind(new(workloadService.EligibilityService), new(*eligibilityService.Eligibility)),
		wire.Bind(new(assignmentService.SlotService), new(*slotService.Slot)),
		wire.Bind(new(assignmentService.WorkloadService), new(*workloadService.Workload)),
		wire.Bind(new(assignmentService.EligibilityService), new(*eligibilityService.Eligibility)),

		wire.Bind(new(slotService.TxManager), new(*tx.Manager)),
		wire.Bind(new(workloadService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(capacityService.TxManager), new(*tx.Manager)),

		wire.Bind(new(tier_recompute.Service), new(*eligibilityService.Eligibility)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideSlotRepository,
		provideAssignmentRepository,
		provideWorkloadRepository,
		provideTierStateRepository,
		provideTierSettingsRepository,
		provideStatsRepository,
		provideOrderRepository,

		provideServiceSlot,
		provideServiceEligibility,
		provideServiceWorkload,
		provideServiceAssignment,
		provideServiceOrder,

		wire.Bind(new(slotService.Repository), new(*slotRepo.Repository)),
		wire.Bind(new(workloadService.Repository), new(*workloadRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(eligibilityService.StateRepository), new(*tierRepo.StateRepository)),
		wire.Bind(new(eligibilityService.SettingsRepository), new(*tierRepo.SettingsRepository)),
		wire.Bind(new(eligibilityService.StatsRepository), new(*statsRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(workloadService.EligibilityService), new(*eligibilityService.Eligibility)),
		wire.Bind(new(assignmentService.SlotService), new(*slotService.Slot)),
		wire.Bind(new(assignmentService.WorkloadService), new(*workloadService.Workload)),
		wire.Bind(new(assignmentService.EligibilityService), new(*eligibilityService.Eligibility)),
		wire.Bind(new(orderService.AssignmentService), new(*assignmentService.Assignment)),

		wire.Bind(new(slotService.TxManager), new(*tx.Manager)),
		wire.Bind(new(workloadService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSlotRepository(querier *querier.Querier) *slotRepo.Repository {
	return slotRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideWorkloadRepository(querier *querier.Querier) *workloadRepo.Repository {
	return workloadRepo.New(querier)
}

func provideTierStateRepository(querier *querier.Querier) *tierRepo.StateRepository {
	return tierRepo.NewStateRepository(querier)
}

func provideTierSettingsRepository(querier *querier.Querier) *tierRepo.SettingsRepository {
	return tierRepo.NewSettingsRepository(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideCapacityRepository(querier *querier.Querier) *capacityRepo.Repository {
	return capacityRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceSlot(
	repository slotService.Repository,
	txManager slotService.TxManager,
) *slotService.Slot {
	return slotService.New(repository, txManager)
}

func provideServiceEligibility(
	log logger.Logger,
	states eligibilityService.StateRepository,
	settings eligibilityService.SettingsRepository,
	stats eligibilityService.StatsRepository,
) *eligibilityService.Eligibility {
	return eligibilityService.New(log, states, settings, stats)
}

func provideServiceWorkload(
	log logger.Logger,
	repository workloadService.Repository,
	eligibility workloadService.EligibilityService,
	txManager workloadService.TxManager,
) *workloadService.Workload {
	return workloadService.New(log, repository, eligibility, txManager)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	slots assignmentService.SlotService,
	workload assignmentService.WorkloadService,
	eligibility assignmentService.EligibilityService,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, slots, workload, eligibility, txManager)
}

func provideServiceCapacity(
	repository capacityService.Repository,
	thresholds capacityService.Thresholds,
	txManager capacityService.TxManager,
) *capacityService.Capacity {
	return capacityService.New(repository, thresholds, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	assignment orderService.AssignmentService,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, assignment, txManager)
}

func provideCapacityThresholds(cfg *config.Config) capacityService.Thresholds {
	return capacityService.Thresholds{
		HighUtilizationPercent: cfg.Capacity.HighUtilizationPercent,
		LowUtilizationPercent:  cfg.Capacity.LowUtilizationPercent,
	}
}

func provideRecomputeInterval(cfg *config.Config) RecomputeInterval {
	return RecomputeInterval(cfg.Tasks.TierRecomputeInterval)
}

func provideTierRecomputeTask(
	log logger.Logger,
	eligibility tier_recompute.Service,
	interval RecomputeInterval,
) *tier_recompute.TierRecompute {
	return tier_recompute.NewTierRecompute(log, eligibility, time.Duration(interval))
}

func provideTaskList(
	tierRecomputeTask *tier_recompute.TierRecompute,
) []background.Task {
	return []background.Task{
		tierRecomputeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
