package tier

import "time"

type TierStateDB struct {
	MasterID  int64
	Mode      string
	Level     int
	UpdatedAt time.Time
}

type TierSettingsDB struct {
	AverageCheckThreshold  float64
	DailyOrderSumThreshold float64
	NetTurnoverThreshold   float64
	ExtraHoursTier1        int
	ExtraHoursTier2        int
	UpdatedAt              time.Time
}
