package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

type HolidayDatesJSONB []string

func (h *HolidayDatesJSONB) Scan(value interface{}) error {
	if value == nil {
		*h = nil

		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan HolidayDatesJSONB: expected []byte")
	}

	return json.Unmarshal(bytes, h)
}

func (h HolidayDatesJSONB) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil //nolint:nilnil
	}

	return json.Marshal(h)
}

// ReminderSettingsModel is the single-row settings table written by the
// tracking application's settings UI. Clock times are stored as HH:MM.
type ReminderSettingsModel struct {
	ID           int    `gorm:"column:id;type:integer;primaryKey"`
	WorkStart    string `gorm:"column:work_start;type:varchar(5);not null"`
	WorkEnd      string `gorm:"column:work_end;type:varchar(5);not null"`
	BreakMinutes int    `gorm:"column:break_minutes;type:integer;not null"`

	MorningReminderEnabled      bool   `gorm:"column:morning_reminder_enabled;type:boolean;not null"`
	MorningWindowStart          string `gorm:"column:morning_window_start;type:varchar(5);not null"`
	MorningWindowEnd            string `gorm:"column:morning_window_end;type:varchar(5);not null"`
	MorningCheckIntervalMinutes int    `gorm:"column:morning_check_interval_minutes;type:integer;not null"`

	EveningReminderEnabled      bool   `gorm:"column:evening_reminder_enabled;type:boolean;not null"`
	EveningWindowStart          string `gorm:"column:evening_window_start;type:varchar(5);not null"`
	EveningWindowEnd            string `gorm:"column:evening_window_end;type:varchar(5);not null"`
	EveningCheckIntervalMinutes int    `gorm:"column:evening_check_interval_minutes;type:integer;not null"`

	FallbackEnabled bool   `gorm:"column:fallback_enabled;type:boolean;not null"`
	FallbackTime    string `gorm:"column:fallback_time;type:varchar(5);not null"`

	DailyReminderEnabled bool   `gorm:"column:daily_reminder_enabled;type:boolean;not null"`
	DailyReminderTime    string `gorm:"column:daily_reminder_time;type:varchar(5);not null"`

	AutoOffWeekends bool              `gorm:"column:auto_off_weekends;type:boolean;not null"`
	AutoOffHolidays bool              `gorm:"column:auto_off_holidays;type:boolean;not null"`
	HolidayDates    HolidayDatesJSONB `gorm:"column:holiday_dates;type:jsonb"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ReminderSettingsModel) TableName() string {
	return "reminder_settings"
}

func (m *ReminderSettingsModel) ToSettings() (domain.ReminderSettings, error) {
	clockFields := map[string]string{
		"work_start":           m.WorkStart,
		"work_end":             m.WorkEnd,
		"morning_window_start": m.MorningWindowStart,
		"morning_window_end":   m.MorningWindowEnd,
		"evening_window_start": m.EveningWindowStart,
		"evening_window_end":   m.EveningWindowEnd,
		"fallback_time":        m.FallbackTime,
		"daily_reminder_time":  m.DailyReminderTime,
	}

	parsed := make(map[string]domain.ClockTime, len(clockFields))
	for name, raw := range clockFields {
		t, err := domain.ClockTimeFromString(raw)
		if err != nil {
			return domain.ReminderSettings{}, err
		}

		parsed[name] = t
	}

	holidays := make(map[string]struct{}, len(m.HolidayDates))
	for _, d := range m.HolidayDates {
		holidays[d] = struct{}{}
	}

	return domain.ReminderSettings{
		WorkStart:    parsed["work_start"],
		WorkEnd:      parsed["work_end"],
		BreakMinutes: m.BreakMinutes,

		MorningReminderEnabled:      m.MorningReminderEnabled,
		MorningWindowStart:          parsed["morning_window_start"],
		MorningWindowEnd:            parsed["morning_window_end"],
		MorningCheckIntervalMinutes: m.MorningCheckIntervalMinutes,

		EveningReminderEnabled:      m.EveningReminderEnabled,
		EveningWindowStart:          parsed["evening_window_start"],
		EveningWindowEnd:            parsed["evening_window_end"],
		EveningCheckIntervalMinutes: m.EveningCheckIntervalMinutes,

		FallbackEnabled: m.FallbackEnabled,
		FallbackTime:    parsed["fallback_time"],

		DailyReminderEnabled: m.DailyReminderEnabled,
		DailyReminderTime:    parsed["daily_reminder_time"],

		AutoOffWeekends: m.AutoOffWeekends,
		AutoOffHolidays: m.AutoOffHolidays,
		HolidayDates:    holidays,
	}, nil
}

func FromSettings(s domain.ReminderSettings) *ReminderSettingsModel {
	holidays := make(HolidayDatesJSONB, 0, len(s.HolidayDates))
	for d := range s.HolidayDates {
		holidays = append(holidays, d)
	}

	return &ReminderSettingsModel{
		ID:           settingsRowID,
		WorkStart:    s.WorkStart.String(),
		WorkEnd:      s.WorkEnd.String(),
		BreakMinutes: s.BreakMinutes,

		MorningReminderEnabled:      s.MorningReminderEnabled,
		MorningWindowStart:          s.MorningWindowStart.String(),
		MorningWindowEnd:            s.MorningWindowEnd.String(),
		MorningCheckIntervalMinutes: s.MorningCheckIntervalMinutes,

		EveningReminderEnabled:      s.EveningReminderEnabled,
		EveningWindowStart:          s.EveningWindowStart.String(),
		EveningWindowEnd:            s.EveningWindowEnd.String(),
		EveningCheckIntervalMinutes: s.EveningCheckIntervalMinutes,

		FallbackEnabled: s.FallbackEnabled,
		FallbackTime:    s.FallbackTime.String(),

		DailyReminderEnabled: s.DailyReminderEnabled,
		DailyReminderTime:    s.DailyReminderTime.String(),

		AutoOffWeekends: s.AutoOffWeekends,
		AutoOffHolidays: s.AutoOffHolidays,
		HolidayDates:    holidays,
	}
}
