package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/montagezeit/reminder-engine/internal/app"
)

// GormJobScheduler persists job registrations in Postgres. Upserts are
// register-or-replace by stable name, so repeated ScheduleAll calls (boot,
// clock change, settings change) converge on one row per job.
type GormJobScheduler struct {
	db *gorm.DB
}

func NewGormJobScheduler(db *gorm.DB) *GormJobScheduler {
	return &GormJobScheduler{
		db: db,
	}
}

func (s *GormJobScheduler) UpsertPeriodic(
	ctx context.Context,
	name string,
	initialDelay, interval time.Duration,
	payload app.JobPayload,
) error {
	return s.upsert(ctx, name, initialDelay, interval, false, payload)
}

func (s *GormJobScheduler) UpsertOneShot(
	ctx context.Context,
	name string,
	delay time.Duration,
	payload app.JobPayload,
) error {
	return s.upsert(ctx, name, delay, 0, true, payload)
}

func (s *GormJobScheduler) upsert(
	ctx context.Context,
	name string,
	delay, interval time.Duration,
	oneShot bool,
	payload app.JobPayload,
) error {
	now := time.Now()
	m := &JobModel{
		Name:            name,
		Payload:         PayloadJSONB{JobPayload: payload},
		IntervalSeconds: int64(interval / time.Second),
		OneShot:         oneShot,
		NextRunAt:       now.Add(delay),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"payload", "interval_seconds", "one_shot", "next_run_at", "updated_at",
			}),
		}).
		Create(m)

	if result.Error != nil {
		slog.Error("failed to upsert job",
			"job", name,
			"error", result.Error,
		)

		return result.Error
	}

	slog.Info("job registered",
		"job", name,
		"next_run_at", m.NextRunAt,
		"interval", interval,
		"one_shot", oneShot,
	)

	return nil
}

func (s *GormJobScheduler) Cancel(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&JobModel{})

	if result.Error != nil {
		slog.Error("failed to cancel job",
			"job", name,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected > 0 {
		slog.Info("job cancelled",
			"job", name,
		)
	}

	return nil
}
