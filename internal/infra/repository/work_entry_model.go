package repository

import (
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

// WorkEntryModel mirrors the time-tracking application's per-day entry. The
// engine owns the schema for its read model; the tracking side writes it.
type WorkEntryModel struct {
	Date              string     `gorm:"column:date;type:varchar(10);primaryKey"`
	DayType           string     `gorm:"column:day_type;type:varchar(8);not null"`
	MorningCapturedAt *time.Time `gorm:"column:morning_captured_at;type:timestamptz"`
	EveningCapturedAt *time.Time `gorm:"column:evening_captured_at;type:timestamptz"`
	Confirmed         bool       `gorm:"column:confirmed;type:boolean;not null;default:false"`
	CreatedAt         time.Time  `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (WorkEntryModel) TableName() string {
	return "work_entries"
}

func (m *WorkEntryModel) ToSnapshot() (*domain.WorkEntrySnapshot, error) {
	date, err := time.Parse("2006-01-02", m.Date)
	if err != nil {
		return nil, err
	}

	dayType, err := domain.NewDayType(m.DayType)
	if err != nil {
		return nil, err
	}

	return domain.NewWorkEntrySnapshot(
		date,
		dayType,
		m.MorningCapturedAt,
		m.EveningCapturedAt,
		m.Confirmed,
	), nil
}
