package domain

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// ClockTime is a time-of-day value with minute precision and no date
// component. Window arithmetic that crosses midnight is handled by the
// schedule calculator, not here.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("%w: hour %d", ErrInvalidClockTime, hour)
	}

	if minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: minute %d", ErrInvalidClockTime, minute)
	}

	return ClockTime{minutes: hour*60 + minute}, nil
}

func MustClockTime(hour, minute int) ClockTime {
	t, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}

	return t
}

// ClockTimeFromString parses "HH:MM".
func ClockTimeFromString(s string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %s", ErrInvalidClockTime, s)
	}

	return ClockTime{minutes: parsed.Hour()*60 + parsed.Minute()}, nil
}

// ClockTimeOf extracts the time-of-day from an instant in its location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}
}

func (c ClockTime) Hour() int {
	return c.minutes / 60
}

func (c ClockTime) Minute() int {
	return c.minutes % 60
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.minutes < other.minutes
}

// Sub returns the signed distance to other within the same day.
func (c ClockTime) Sub(other ClockTime) time.Duration {
	return time.Duration(c.minutes-other.minutes) * time.Minute
}
