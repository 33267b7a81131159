package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/montagezeit/reminder-engine/internal/app"
	"github.com/montagezeit/reminder-engine/internal/domain"
)

const maxDailyPostpones = 2

type postponeLimiterImpl struct {
	db *gorm.DB
}

func NewPostponeLimiter(db *gorm.DB) app.PostponeLimiter {
	return &postponeLimiterImpl{
		db: db,
	}
}

func (r *postponeLimiterImpl) CanSchedule(ctx context.Context, date time.Time) (bool, error) {
	count, err := r.Count(ctx, date)
	if err != nil {
		return false, err
	}

	return count < maxDailyPostpones, nil
}

func (r *postponeLimiterImpl) Increment(ctx context.Context, date time.Time) error {
	m := &PostponeCountModel{
		Date:      domain.DateKey(date),
		Count:     1,
		UpdatedAt: time.Now(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count":      gorm.Expr("postpone_counts.count + 1"),
				"updated_at": time.Now(),
			}),
		}).
		Create(m)

	if result.Error != nil {
		slog.Error("failed to increment postpone counter",
			"date", m.Date,
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *postponeLimiterImpl) Reset(ctx context.Context, date time.Time) error {
	result := r.db.WithContext(ctx).
		Where("date = ?", domain.DateKey(date)).
		Delete(&PostponeCountModel{})

	if result.Error != nil {
		slog.Error("failed to reset postpone counter",
			"date", domain.DateKey(date),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *postponeLimiterImpl) Count(ctx context.Context, date time.Time) (int, error) {
	var m PostponeCountModel

	result := r.db.WithContext(ctx).
		Where("date = ?", domain.DateKey(date)).
		First(&m)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		slog.Error("failed to read postpone counter",
			"date", domain.DateKey(date),
			"error", result.Error,
		)

		return 0, result.Error
	}

	return m.Count, nil
}
