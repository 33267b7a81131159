package repository

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/montagezeit/reminder-engine/internal/app"
	"github.com/montagezeit/reminder-engine/internal/domain"
)

type dedupStoreImpl struct {
	db *gorm.DB
}

func NewDedupStore(db *gorm.DB) app.DedupStore {
	return &dedupStoreImpl{
		db: db,
	}
}

func (r *dedupStoreImpl) IsReminded(ctx context.Context, date time.Time, reminderType domain.ReminderType) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).
		Model(&ReminderFlagModel{}).
		Where("date = ? AND reminder_type = ?", domain.DateKey(date), string(reminderType)).
		Count(&count)

	if result.Error != nil {
		slog.Error("failed to read reminded flag",
			"date", domain.DateKey(date),
			"reminder_type", string(reminderType),
			"error", result.Error,
		)

		return false, result.Error
	}

	return count > 0, nil
}

func (r *dedupStoreImpl) SetReminded(ctx context.Context, date time.Time, reminderType domain.ReminderType) error {
	m := &ReminderFlagModel{
		Date:         domain.DateKey(date),
		ReminderType: string(reminderType),
		RemindedAt:   time.Now(),
	}

	// Flags are monotonic: a concurrent second write is a no-op, never an
	// error.
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)

	if result.Error != nil {
		slog.Error("failed to set reminded flag",
			"date", m.Date,
			"reminder_type", m.ReminderType,
			"error", result.Error,
		)

		return result.Error
	}

	slog.Debug("reminded flag set",
		"date", m.Date,
		"reminder_type", m.ReminderType,
	)

	return nil
}
