package repository

import (
	"time"
)

// ReminderFlagModel is one "already reminded" marker. The (date, type)
// composite key makes flags monotonic within a day and implicitly fresh on
// the next one.
type ReminderFlagModel struct {
	Date         string    `gorm:"column:date;type:varchar(10);primaryKey"`
	ReminderType string    `gorm:"column:reminder_type;type:varchar(16);primaryKey"`
	RemindedAt   time.Time `gorm:"column:reminded_at;type:timestamptz;not null"`
}

func (ReminderFlagModel) TableName() string {
	return "reminder_flags"
}

// PostponeCountModel tracks how many postponements were granted on a date.
type PostponeCountModel struct {
	Date      string    `gorm:"column:date;type:varchar(10);primaryKey"`
	Count     int       `gorm:"column:count;type:integer;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (PostponeCountModel) TableName() string {
	return "postpone_counts"
}
