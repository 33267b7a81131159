package domain

import "errors"

var (
	ErrInvalidClockTime    = errors.New("invalid clock time")
	ErrInvalidReminderType = errors.New("invalid reminder type")
	ErrInvalidDayType      = errors.New("invalid day type")

	ErrWorkEntryNotFound = errors.New("work entry not found")
)
