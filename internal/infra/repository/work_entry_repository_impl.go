package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

// workEntryRepositoryImpl is a read-only view of the tracking application's
// work entries. The engine never writes this table.
type workEntryRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkEntryRepository(db *gorm.DB) domain.WorkEntryRepository {
	return &workEntryRepositoryImpl{
		db: db,
	}
}

func (r *workEntryRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*domain.WorkEntrySnapshot, error) {
	var m WorkEntryModel

	result := r.db.WithContext(ctx).
		Where("date = ?", domain.DateKey(date)).
		First(&m)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("work entry not found",
				"date", domain.DateKey(date),
			)

			return nil, domain.ErrWorkEntryNotFound
		}

		slog.Error("failed to find work entry",
			"date", domain.DateKey(date),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToSnapshot()
}
