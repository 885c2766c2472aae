package entities

import "time"

// TierLevel уровень дистанционки: насколько далеко вперёд мастер видит заказы.
type TierLevel int

const (
	TierStandard TierLevel = 0
	TierExtended TierLevel = 1
	TierFullDay  TierLevel = 2
)

func (l TierLevel) Valid() bool {
	return l >= TierStandard && l <= TierFullDay
}

type TierMode string

const (
	TierModeAutomatic TierMode = "automatic"
	TierModeManual    TierMode = "manual"
)

func (m TierMode) String() string {
	return string(m)
}

// TierState единственное персистентное состояние движка eligibility:
// режим и уровень на мастера. В ручном режиме уровень переживает
// автоматический пересчёт до явного сброса.
type TierState struct {
	MasterID  int64
	Mode      TierMode
	Level     TierLevel
	UpdatedAt time.Time
}

type TierStateModify struct {
	MasterID *int64
	Mode     *TierMode
	Level    *TierLevel
}

// TierSettings глобальные пороги дистанционки, одна запись на процесс.
// Обновляется только целиком.
type TierSettings struct {
	AverageCheckThreshold  float64
	DailyOrderSumThreshold float64
	NetTurnoverThreshold   float64
	ExtraHoursTier1        int
	ExtraHoursTier2        int
	UpdatedAt              time.Time
}

const (
	DefaultAverageCheckThreshold  = 65000
	DefaultDailyOrderSumThreshold = 350000
	DefaultNetTurnoverThreshold   = 1500000

	BaseHorizonHours       = 24
	DefaultExtraHoursTier1 = 4
	DefaultExtraHoursTier2 = 24
)

// PerformanceStats скользящие показатели мастера по завершённым заказам.
type PerformanceStats struct {
	MasterID       int64
	AverageCheck   float64
	DailyRevenue   float64
	NetTurnover10d float64
}

// Eligibility результат оценки мастера с пофлаговой расшифровкой правил.
type Eligibility struct {
	MasterID     int64
	Mode         TierMode
	Level        TierLevel
	HorizonHours int
	Stats        PerformanceStats
	Settings     TierSettings

	AverageCheckPassed bool
	DailyRevenuePassed bool
	NetTurnoverPassed  bool
}

// Horizon окно видимости заказов для уровня.
func (s TierSettings) Horizon(level TierLevel) time.Duration {
	hours := BaseHorizonHours
	switch level {
	case TierExtended:
		hours += s.ExtraHoursTier1
	case TierFullDay:
		hours += s.ExtraHoursTier2
	}
	return time.Duration(hours) * time.Hour
}
