package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

// LocationAcquirer obtains a best-effort position fix for a check-in.
// Failures are never errors: the caller always receives a LocationResult
// and proceeds with a degraded check-in when no usable fix arrived. A
// caller that wants a faster answer passes a smaller total budget.
type LocationAcquirer interface {
	Acquire(ctx context.Context, totalTimeout time.Duration) domain.LocationResult
}

type locationAcquirerImpl struct {
	provider PositionProvider
	clock    Clock
}

func NewLocationAcquirer(provider PositionProvider, clock Clock) LocationAcquirer {
	return &locationAcquirerImpl{
		provider: provider,
		clock:    clock,
	}
}

func (a *locationAcquirerImpl) Acquire(ctx context.Context, totalTimeout time.Duration) domain.LocationResult {
	total := domain.NormalizeTotalTimeout(totalTimeout)
	startedAt := a.clock.Now()

	if fix, ok, err := a.provider.LastKnown(ctx); err == nil && ok {
		cached := domain.ToLocationResult(fix.Lat, fix.Lon, fix.AccuracyMeters)
		if domain.ShouldUseLastKnown(cached) {
			slog.Debug("using cached last-known position",
				"accuracy_m", cached.AccuracyMeters(),
			)

			return cached
		}
	}

	stageOne := a.request(ctx, PriorityBalanced, domain.StageOneTimeout(total))

	if !domain.ShouldTryHighAccuracy(stageOne) {
		return stageOne
	}

	remaining := total - a.clock.Now().Sub(startedAt)
	if !domain.HasEnoughTimeForStageTwo(remaining) {
		slog.Debug("skipping high-accuracy stage, budget exhausted",
			"remaining", remaining,
		)

		return stageOne
	}

	stageTwo := a.request(ctx, PriorityHighAccuracy, remaining)

	return domain.ChooseBetterResult(stageOne, stageTwo)
}

// request performs one provider attempt and folds its failure modes into
// LocationResult variants.
func (a *locationAcquirerImpl) request(
	ctx context.Context,
	priority AcquisitionPriority,
	timeout time.Duration,
) domain.LocationResult {
	if timeout <= 0 {
		return domain.TimeoutResult()
	}

	fix, err := a.provider.Acquire(ctx, priority, timeout)
	if err != nil {
		switch {
		case errors.Is(err, ErrPositionTimeout), errors.Is(err, context.DeadlineExceeded):
			return domain.TimeoutResult()
		default:
			slog.Debug("position provider attempt failed",
				"priority", string(priority),
				"error", err,
			)

			return domain.UnavailableResult()
		}
	}

	return domain.ToLocationResult(fix.Lat, fix.Lon, fix.AccuracyMeters)
}
