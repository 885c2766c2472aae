package tier_recompute

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ForceRecompute(ctx context.Context, now time.Time) (int64, error)
}

// TierRecompute периодический пересчёт уровней дистанционки по свежей
// статистике. Мастера в ручном режиме пересчёт не трогает.
type TierRecompute struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTierRecompute(log logger.Logger, service Service, interval time.Duration) *TierRecompute {
	return &TierRecompute{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TierRecompute) TTL() time.Duration {
	return t.interval
}

func (t *TierRecompute) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	recomputed, err := t.service.ForceRecompute(ctxWithTimeout, time.Now().UTC())

	if recomputed > 0 {
		t.log.With(
			logger.NewField("masters", recomputed),
		).Info("tier recompute")
	}

	return err
}

func (t *TierRecompute) Info() string {
	return "tier recompute"
}
