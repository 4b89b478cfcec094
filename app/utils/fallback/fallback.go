package fallback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Strategy is one way of performing a persistence operation. Strategies are
// tried in order; the first success wins.
type Strategy[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// First runs the strategies in order and returns the first successful
// result. Every failure along the way is logged; when all strategies fail
// the errors are aggregated into one.
func First[T any](ctx context.Context, logger *slog.Logger, op string, strategies ...Strategy[T]) (T, error) {
	var zero T
	if len(strategies) == 0 {
		return zero, fmt.Errorf("%s: no strategies configured", op)
	}

	failures := make([]error, 0, len(strategies))
	for _, strategy := range strategies {
		result, err := strategy.Run(ctx)
		if err == nil {
			if len(failures) > 0 {
				logger.Info("operation succeeded after fallback",
					"operation", op,
					"strategy", strategy.Name,
					"failed_attempts", len(failures))
			}
			return result, nil
		}

		logger.Error("persistence strategy failed",
			"operation", op,
			"strategy", strategy.Name,
			"error", err)
		failures = append(failures, fmt.Errorf("%s: %w", strategy.Name, err))
	}

	return zero, fmt.Errorf("%s: all strategies failed: %w", op, errors.Join(failures...))
}
