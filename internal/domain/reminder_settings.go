package domain

import "time"

// ReminderSettings is a read-only snapshot of the user's reminder
// configuration. It is owned by the settings UI and fetched fresh at the
// start of every orchestration or window evaluation; the engine never
// mutates it.
type ReminderSettings struct {
	WorkStart    ClockTime
	WorkEnd      ClockTime
	BreakMinutes int

	MorningReminderEnabled      bool
	MorningWindowStart          ClockTime
	MorningWindowEnd            ClockTime
	MorningCheckIntervalMinutes int

	EveningReminderEnabled      bool
	EveningWindowStart          ClockTime
	EveningWindowEnd            ClockTime
	EveningCheckIntervalMinutes int

	FallbackEnabled bool
	FallbackTime    ClockTime

	DailyReminderEnabled bool
	DailyReminderTime    ClockTime

	AutoOffWeekends bool
	AutoOffHolidays bool
	HolidayDates    map[string]struct{}
}

func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		WorkStart:    MustClockTime(8, 0),
		WorkEnd:      MustClockTime(19, 0),
		BreakMinutes: 60,

		MorningReminderEnabled:      true,
		MorningWindowStart:          MustClockTime(6, 0),
		MorningWindowEnd:            MustClockTime(13, 0),
		MorningCheckIntervalMinutes: 120,

		EveningReminderEnabled:      true,
		EveningWindowStart:          MustClockTime(16, 0),
		EveningWindowEnd:            MustClockTime(22, 30),
		EveningCheckIntervalMinutes: 180,

		FallbackEnabled: true,
		FallbackTime:    MustClockTime(22, 30),

		DailyReminderEnabled: true,
		DailyReminderTime:    MustClockTime(18, 0),

		AutoOffWeekends: true,
		AutoOffHolidays: true,
		HolidayDates:    map[string]struct{}{},
	}
}

func (s ReminderSettings) Enabled(t ReminderType) bool {
	switch t {
	case ReminderMorning:
		return s.MorningReminderEnabled
	case ReminderEvening:
		return s.EveningReminderEnabled
	case ReminderFallback:
		return s.FallbackEnabled
	case ReminderDaily:
		return s.DailyReminderEnabled
	default:
		return false
	}
}

func (s ReminderSettings) IsHoliday(date time.Time) bool {
	_, ok := s.HolidayDates[DateKey(date)]

	return ok
}

// DateKey renders a date as the canonical key used for per-date state
// (dedup flags, postpone counters, holiday sets).
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
