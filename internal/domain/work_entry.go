package domain

import (
	"context"
	"fmt"
	"time"
)

type DayType string

const (
	DayTypeWork DayType = "work"
	DayTypeOff  DayType = "off"
)

func NewDayType(t string) (DayType, error) {
	switch t {
	case string(DayTypeWork), string(DayTypeOff):
		return DayType(t), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidDayType, t)
	}
}

// WorkEntrySnapshot is a read-only view of one day's work entry as recorded
// by the time-tracking application. The reminder engine only reads it to
// decide whether an alert is still warranted.
type WorkEntrySnapshot struct {
	date              time.Time
	dayType           DayType
	morningCapturedAt *time.Time
	eveningCapturedAt *time.Time
	confirmed         bool
}

func NewWorkEntrySnapshot(
	date time.Time,
	dayType DayType,
	morningCapturedAt *time.Time,
	eveningCapturedAt *time.Time,
	confirmed bool,
) *WorkEntrySnapshot {
	return &WorkEntrySnapshot{
		date:              date,
		dayType:           dayType,
		morningCapturedAt: morningCapturedAt,
		eveningCapturedAt: eveningCapturedAt,
		confirmed:         confirmed,
	}
}

func (e *WorkEntrySnapshot) Date() time.Time {
	return e.date
}

func (e *WorkEntrySnapshot) DayType() DayType {
	return e.dayType
}

func (e *WorkEntrySnapshot) HasMorningCapture() bool {
	return e.morningCapturedAt != nil
}

func (e *WorkEntrySnapshot) HasEveningCapture() bool {
	return e.eveningCapturedAt != nil
}

func (e *WorkEntrySnapshot) MorningCapturedAt() *time.Time {
	return e.morningCapturedAt
}

func (e *WorkEntrySnapshot) EveningCapturedAt() *time.Time {
	return e.eveningCapturedAt
}

func (e *WorkEntrySnapshot) IsConfirmed() bool {
	return e.confirmed
}

//go:generate mockgen -source=work_entry.go -destination=work_entry_mock.go -package=domain

// WorkEntryRepository exposes the external work-entry storage to the engine.
// GetByDate returns ErrWorkEntryNotFound when no entry exists for the date.
type WorkEntryRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*WorkEntrySnapshot, error)
}
