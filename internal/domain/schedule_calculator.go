package domain

import "time"

const (
	// MinPeriodicInterval is the floor the durable scheduler can reliably
	// honor for recurring jobs. Requested intervals below it are silently
	// clamped instead of rejected.
	MinPeriodicInterval = 15 * time.Minute

	dayRollover = 24 * time.Hour
)

type ScheduleCalculator struct{}

func NewScheduleCalculator() *ScheduleCalculator {
	return &ScheduleCalculator{}
}

// ClampPeriodicInterval converts a configured re-check interval in minutes
// into a scheduler interval, flooring at MinPeriodicInterval.
func (c *ScheduleCalculator) ClampPeriodicInterval(requestedMinutes int) time.Duration {
	interval := time.Duration(requestedMinutes) * time.Minute
	if interval < MinPeriodicInterval {
		return MinPeriodicInterval
	}

	return interval
}

// DelayUntilWindowStart computes the initial delay for a window-gated job:
//   - before the window: wait until windowStart
//   - inside [windowStart, windowEnd): fire immediately
//   - at or after windowEnd: roll to the next day's windowStart
func (c *ScheduleCalculator) DelayUntilWindowStart(now, windowStart, windowEnd ClockTime) time.Duration {
	switch {
	case now.Before(windowStart):
		return windowStart.Sub(now)
	case now.Before(windowEnd):
		return 0
	default:
		return windowStart.Sub(now) + dayRollover
	}
}

// DelayUntilInstant computes the delay until a single daily firing instant.
// Equality rolls to the next day: a job scheduled exactly at its target is
// treated as already past for today.
func (c *ScheduleCalculator) DelayUntilInstant(now, target ClockTime) time.Duration {
	if now.Before(target) {
		return target.Sub(now)
	}

	return target.Sub(now) + dayRollover
}
