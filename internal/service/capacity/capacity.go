package capacity

import (
	"context"
	"fmt"
	"math"
	"time"

	"dispatch/internal/entities"
)

// Thresholds границы советов; значения по умолчанию задокументированы
// в конфигурации, движок их не навязывает.
type Thresholds struct {
	HighUtilizationPercent int
	LowUtilizationPercent  int
}

type Capacity struct {
	repository Repository
	thresholds Thresholds
	txManager  TxManager
}

func New(repository Repository, thresholds Thresholds, txManager TxManager) *Capacity {
	return &Capacity{
		repository: repository,
		thresholds: thresholds,
		txManager:  txManager,
	}
}

// Analyze советующий срез по одному дню. Ничего не мутирует.
func (c *Capacity) Analyze(ctx context.Context, day time.Time) (*entities.CapacityReport, error) {
	if day.IsZero() {
		return nil, ErrInvalidDay
	}

	var report *entities.CapacityReport
	err := c.txManager.DoRepeatableRead(ctx, func(ctx context.Context) error {
		var err error
		report, err = c.analyzeInTx(ctx, day)
		return err
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// Overview сводка сегодня+завтра одной консистентной транзакцией,
// рекомендации — по сегодняшнему дню.
func (c *Capacity) Overview(ctx context.Context, now time.Time) (*entities.CapacityOverview, error) {
	var overview *entities.CapacityOverview

	err := c.txManager.DoRepeatableRead(ctx, func(ctx context.Context) error {
		today, err := c.analyzeInTx(ctx, startOfDay(now))
		if err != nil {
			return fmt.Errorf("analyze today: %w", err)
		}

		tomorrow, err := c.analyzeInTx(ctx, startOfDay(now).AddDate(0, 0, 1))
		if err != nil {
			return fmt.Errorf("analyze tomorrow: %w", err)
		}

		overview = &entities.CapacityOverview{
			Today:           *today,
			Tomorrow:        *tomorrow,
			Pending:         today.Pending,
			Recommendations: today.Recommendations,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return overview, nil
}

// WeeklyForecast прогноз свободной ёмкости на 7 дней вперёд.
func (c *Capacity) WeeklyForecast(ctx context.Context, now time.Time) (*entities.WeeklyForecast, error) {
	const forecastDays = 7

	forecast := &entities.WeeklyForecast{
		Days: make([]entities.ForecastDay, 0, forecastDays),
	}

	err := c.txManager.DoRepeatableRead(ctx, func(ctx context.Context) error {
		day := startOfDay(now)
		for i := 0; i < forecastDays; i++ {
			dayCapacity, err := c.repository.DayCapacity(ctx, day)
			if err != nil {
				return fmt.Errorf("day capacity for %s: %w", day.Format("2006-01-02"), err)
			}

			available := dayCapacity.TotalSlots - dayCapacity.OccupiedSlots
			forecast.Days = append(forecast.Days, entities.ForecastDay{
				Date:              day,
				AvailableCapacity: available,
			})
			forecast.TotalSlots += available

			day = day.AddDate(0, 0, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	forecast.AvgDailyCapacity = float64(forecast.TotalSlots) / forecastDays
	return forecast, nil
}

func (c *Capacity) analyzeInTx(ctx context.Context, day time.Time) (*entities.CapacityReport, error) {
	dayCapacity, err := c.repository.DayCapacity(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("day capacity: %w", err)
	}

	pending, err := c.repository.PendingOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("pending orders: %w", err)
	}

	report := &entities.CapacityReport{
		Day: startOfDay(day),
		MastersStats: entities.MastersStats{
			TotalMasters:            dayCapacity.TotalMasters,
			MastersWithAvailability: dayCapacity.MastersWithAvailability,
			FreeMasters:             dayCapacity.FreeMasters,
		},
		Capacity: entities.CapacityStats{
			TotalSlots:         dayCapacity.TotalSlots,
			OccupiedSlots:      dayCapacity.OccupiedSlots,
			AvailableSlots:     dayCapacity.TotalSlots - dayCapacity.OccupiedSlots,
			UtilizationPercent: utilizationPercent(dayCapacity.OccupiedSlots, dayCapacity.TotalSlots),
		},
		Pending: *pending,
	}

	report.Recommendations = c.recommend(report)
	return report, nil
}

// recommend правила упорядочены, в категории срабатывает первое,
// несколько категорий могут сработать одновременно.
func (c *Capacity) recommend(report *entities.CapacityReport) []entities.Recommendation {
	recommendations := make([]entities.Recommendation, 0, 3)

	if report.Capacity.UtilizationPercent >= c.thresholds.HighUtilizationPercent {
		recommendations = append(recommendations, entities.Recommendation{
			Type:    entities.RecommendationWarning,
			Title:   "Near full capacity",
			Message: fmt.Sprintf("Capacity is %d%% utilized", report.Capacity.UtilizationPercent),
			Action:  "Open more slots or defer new orders",
		})
	}

	if report.MastersStats.FreeMasters == 0 && report.Pending.TotalPending > 0 {
		recommendations = append(recommendations, entities.Recommendation{
			Type:    entities.RecommendationDanger,
			Title:   "No free masters",
			Message: fmt.Sprintf("No free masters while %d orders are waiting", report.Pending.TotalPending),
			Action:  "Extend working hours or reassign the schedule",
		})
	}

	if report.Capacity.UtilizationPercent <= c.thresholds.LowUtilizationPercent && report.Pending.TotalPending == 0 {
		recommendations = append(recommendations, entities.Recommendation{
			Type:    entities.RecommendationInfo,
			Title:   "Low demand",
			Message: fmt.Sprintf("Capacity is only %d%% utilized and no orders are waiting", report.Capacity.UtilizationPercent),
			Action:  "Consider reducing declared availability",
		})
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, entities.Recommendation{
			Type:    entities.RecommendationSuccess,
			Title:   "Capacity is balanced",
			Message: fmt.Sprintf("Capacity is %d%% utilized", report.Capacity.UtilizationPercent),
			Action:  "No action needed",
		})
	}

	return recommendations
}

func utilizationPercent(occupied, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
