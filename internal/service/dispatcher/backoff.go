package dispatcher

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"dispatch/internal/service/assignment"
)

const (
	DefaultBackoffRandomization = 0.5
	DefaultBackoffMultiplier    = 2.0
)

type BackoffConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Randomization   float64
	Multiplier      float64
}

// DelayFor вычисляет задержку видимости для повтора заявки.
// NoCandidate растёт экспоненциально с джиттером: пул водителей обновляется
// небыстро. Conflict получает минимальную задержку — гонка уже разрешилась,
// у пула могли остаться другие кандидаты.
func (c BackoffConfig) DelayFor(attempt int, outcome assignment.Outcome) time.Duration {
	if outcome == assignment.OutcomeConflict {
		return c.InitialInterval
	}

	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(c.InitialInterval),
		backoff.WithMaxInterval(c.MaxInterval),
		backoff.WithRandomizationFactor(c.Randomization),
		backoff.WithMultiplier(c.Multiplier),
		backoff.WithMaxElapsedTime(0),
	)

	delay := b.NextBackOff()
	for i := 0; i < attempt; i++ {
		delay = b.NextBackOff()
	}
	return delay
}
