package backoff_adapter

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	retrierconfig "dispatch/pkg/retrier"
)

// Adapter реализует retrier.Retrier поверх cenkalti/backoff.
type Adapter struct {
	cfg retrierconfig.Config
}

func NewAdapter(cfg retrierconfig.Config) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = a.cfg.InitialInterval
	expBackoff.MaxInterval = a.cfg.MaxInterval
	expBackoff.MaxElapsedTime = a.cfg.MaxElapsedTime
	expBackoff.RandomizationFactor = a.cfg.Randomization
	expBackoff.Multiplier = a.cfg.Multiplier

	operation := func() error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if a.cfg.ShouldRetry != nil && !a.cfg.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(expBackoff, ctx))
}
