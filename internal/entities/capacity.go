package entities

import "time"

type RecommendationType string

const (
	RecommendationInfo    RecommendationType = "info"
	RecommendationSuccess RecommendationType = "success"
	RecommendationWarning RecommendationType = "warning"
	RecommendationDanger  RecommendationType = "danger"
)

func (t RecommendationType) String() string {
	return string(t)
}

type Recommendation struct {
	Type    RecommendationType
	Title   string
	Message string
	Action  string
}

type MastersStats struct {
	TotalMasters            int
	MastersWithAvailability int
	FreeMasters             int
}

type CapacityStats struct {
	TotalSlots         int
	AvailableSlots     int
	OccupiedSlots      int
	UtilizationPercent int
}

type PendingOrders struct {
	NewOrders        int
	ProcessingOrders int
	TotalPending     int
}

// CapacityReport советующий срез по одному дню, состояние не меняет.
type CapacityReport struct {
	Day             time.Time
	MastersStats    MastersStats
	Capacity        CapacityStats
	Pending         PendingOrders
	Recommendations []Recommendation
}

// CapacityOverview сводка сегодня+завтра, как её ждёт панель куратора.
type CapacityOverview struct {
	Today           CapacityReport
	Tomorrow        CapacityReport
	Pending         PendingOrders
	Recommendations []Recommendation
}

type ForecastDay struct {
	Date              time.Time
	AvailableCapacity int
}

type WeeklyForecast struct {
	Days             []ForecastDay
	TotalSlots       int
	AvgDailyCapacity float64
}
