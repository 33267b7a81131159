package app

import (
	"context"
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=app

// SettingsProvider yields a fresh read-only settings snapshot at the start
// of each orchestration or evaluation.
type SettingsProvider interface {
	Current(ctx context.Context) (domain.ReminderSettings, error)
}

// DedupStore holds the per-(date, type) reminded flags. Flags are monotonic
// within a date; a new date is implicitly unreminded because the key
// includes the date.
type DedupStore interface {
	IsReminded(ctx context.Context, date time.Time, reminderType domain.ReminderType) (bool, error)
	SetReminded(ctx context.Context, date time.Time, reminderType domain.ReminderType) error
}

// PostponeLimiter caps how many "remind me later" postponements may be
// granted per day.
type PostponeLimiter interface {
	CanSchedule(ctx context.Context, date time.Time) (bool, error)
	Increment(ctx context.Context, date time.Time) error
	Reset(ctx context.Context, date time.Time) error
	Count(ctx context.Context, date time.Time) (int, error)
}

// JobPayload is the document carried by a durable job registration and
// handed back verbatim on every firing.
type JobPayload struct {
	ReminderType string `json:"reminder_type"`
	Date         string `json:"date,omitempty"`
	Postpone     bool   `json:"postpone,omitempty"`
}

// JobScheduler is the durable, reboot-surviving job registry. Upserts are
// idempotent register-or-replace-by-stable-name; registration state is
// authoritative on the scheduler side and calls may be repeated safely.
type JobScheduler interface {
	UpsertPeriodic(ctx context.Context, name string, initialDelay, interval time.Duration, payload JobPayload) error
	UpsertOneShot(ctx context.Context, name string, delay time.Duration, payload JobPayload) error
	Cancel(ctx context.Context, name string) error
}

// AlertDispatcher requests user-facing reminder notifications. Fire and
// forget: the engine consumes no delivery outcome beyond the error.
type AlertDispatcher interface {
	Show(ctx context.Context, reminderType domain.ReminderType, date time.Time) error
	CancelAlert(ctx context.Context, reminderType domain.ReminderType) error
}

// AcquisitionPriority selects the power/accuracy trade-off of a position
// fix attempt.
type AcquisitionPriority string

const (
	PriorityBalanced     AcquisitionPriority = "balanced"
	PriorityHighAccuracy AcquisitionPriority = "high_accuracy"
)

// RawFix is an unclassified position fix as reported by the device
// location subsystem.
type RawFix struct {
	Lat            float64
	Lon            float64
	AccuracyMeters float64
}

// PositionProvider wraps the device position-fix subsystem. Acquire returns
// ErrPositionUnavailable when no provider can serve the request and
// ErrPositionTimeout when the budget elapses without a fix.
type PositionProvider interface {
	LastKnown(ctx context.Context) (RawFix, bool, error)
	Acquire(ctx context.Context, priority AcquisitionPriority, timeout time.Duration) (RawFix, error)
}

// Clock abstracts time.Now for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
