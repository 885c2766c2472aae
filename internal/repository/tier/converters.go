package tier

import "dispatch/internal/entities"

func StateToDomain(s *TierStateDB) *entities.TierState {
	if s == nil {
		return nil
	}
	return &entities.TierState{
		MasterID:  s.MasterID,
		Mode:      entities.TierMode(s.Mode),
		Level:     entities.TierLevel(s.Level),
		UpdatedAt: s.UpdatedAt,
	}
}

func SettingsToDomain(s *TierSettingsDB) *entities.TierSettings {
	if s == nil {
		return nil
	}
	return &entities.TierSettings{
		AverageCheckThreshold:  s.AverageCheckThreshold,
		DailyOrderSumThreshold: s.DailyOrderSumThreshold,
		NetTurnoverThreshold:   s.NetTurnoverThreshold,
		ExtraHoursTier1:        s.ExtraHoursTier1,
		ExtraHoursTier2:        s.ExtraHoursTier2,
		UpdatedAt:              s.UpdatedAt,
	}
}
