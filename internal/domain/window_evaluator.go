package domain

import "time"

// Window membership predicates over time-of-day values. Windows are
// half-open [start, end); the fallback instant is inclusive-from. Day
// rollover is the schedule calculator's concern, not handled here.

func InMorningWindow(now ClockTime, settings ReminderSettings) bool {
	return !now.Before(settings.MorningWindowStart) && now.Before(settings.MorningWindowEnd)
}

func InEveningWindow(now ClockTime, settings ReminderSettings) bool {
	return !now.Before(settings.EveningWindowStart) && now.Before(settings.EveningWindowEnd)
}

func AfterFallback(now ClockTime, settings ReminderSettings) bool {
	return !now.Before(settings.FallbackTime)
}

// IsNonWorkingDay reports whether date needs no check-in reminders.
// A manually classified entry overrides the automatic rules: an explicit
// work day stays a work day even on a weekend. Without an entry, the
// auto-off weekend/holiday settings apply.
func IsNonWorkingDay(date time.Time, settings ReminderSettings, entry *WorkEntrySnapshot) bool {
	if entry != nil {
		return entry.DayType() == DayTypeOff
	}

	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday

	if settings.AutoOffWeekends && isWeekend {
		return true
	}

	return settings.AutoOffHolidays && settings.IsHoliday(date)
}
