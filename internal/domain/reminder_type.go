package domain

import "fmt"

type ReminderType string

const (
	ReminderMorning  ReminderType = "morning"
	ReminderEvening  ReminderType = "evening"
	ReminderFallback ReminderType = "fallback"
	ReminderDaily    ReminderType = "daily"
)

func NewReminderType(t string) (ReminderType, error) {
	switch t {
	case string(ReminderMorning), string(ReminderEvening), string(ReminderFallback), string(ReminderDaily):
		return ReminderType(t), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidReminderType, t)
	}
}

// AllReminderTypes returns the closed set of reminder types in scheduling order.
func AllReminderTypes() []ReminderType {
	return []ReminderType{ReminderMorning, ReminderEvening, ReminderFallback, ReminderDaily}
}

// JobName is the stable idempotency key under which the recurring job for
// this type is registered with the durable scheduler.
func (t ReminderType) JobName() string {
	return string(t) + "_reminder_work"
}

// PostponeJobName is the stable name of the one-shot "remind me later" job.
func (t ReminderType) PostponeJobName() string {
	return string(t) + "_reminder_postpone"
}
