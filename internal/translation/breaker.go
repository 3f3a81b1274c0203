package translation

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerTranslator stops calling a failing translation service for a
// while. Once open, every word fails immediately with
// gobreaker.ErrOpenState instead of waiting for another timeout.
type BreakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps next with a circuit breaker that opens after
// maxFailures consecutive failures and probes again after cooldown.
func NewBreakerTranslator(next Translator, maxFailures uint32, cooldown time.Duration, logger *slog.Logger) *BreakerTranslator {
	if maxFailures == 0 {
		maxFailures = 5
	}
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        "translator",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translation circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &BreakerTranslator{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate forwards to the wrapped translator unless the breaker is open
func (b *BreakerTranslator) Translate(ctx context.Context, word string) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, word)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// State returns the current breaker state, e.g. "closed" or "open"
func (b *BreakerTranslator) State() string {
	return b.cb.State().String()
}
