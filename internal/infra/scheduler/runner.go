package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/montagezeit/reminder-engine/internal/app"
)

const (
	defaultTick       = 30 * time.Second
	defaultRetryDelay = 5 * time.Minute
)

// JobHandler consumes a job firing. A nil return settles the firing; a
// retryable error re-runs it after the retry delay without advancing the
// period.
type JobHandler interface {
	HandleJob(ctx context.Context, payload app.JobPayload) error
}

// Runner polls the job table at a coarse tick and dispatches due jobs.
// Delivery is at-least-once: a crash between dispatch and bookkeeping
// re-fires the job, and the dedup flags absorb the duplicate.
type Runner struct {
	db         *gorm.DB
	checks     JobHandler
	postponer  app.ReminderPostponer
	tick       time.Duration
	retryDelay time.Duration
}

func NewRunner(db *gorm.DB, checks JobHandler, postponer app.ReminderPostponer, tick time.Duration) *Runner {
	if tick <= 0 {
		tick = defaultTick
	}

	return &Runner{
		db:         db,
		checks:     checks,
		postponer:  postponer,
		tick:       tick,
		retryDelay: defaultRetryDelay,
	}
}

// Start runs the polling loop until ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	slog.Info("scheduler runner started",
		"tick", r.tick,
	)

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler runner stopped")

			return
		case <-ticker.C:
			r.runDue(ctx)
		}
	}
}

func (r *Runner) runDue(ctx context.Context) {
	var jobs []JobModel

	result := r.db.WithContext(ctx).
		Where("next_run_at <= ?", time.Now()).
		Order("next_run_at ASC").
		Find(&jobs)

	if result.Error != nil {
		slog.Error("failed to load due jobs",
			"error", result.Error,
		)

		return
	}

	for _, job := range jobs {
		r.runJob(ctx, job)
	}
}

func (r *Runner) runJob(ctx context.Context, job JobModel) {
	runID := uuid.NewString()

	tracer := otel.Tracer("scheduler")
	ctx, span := tracer.Start(ctx, "scheduler.run_job")
	span.SetAttributes(
		attribute.String("job.name", job.Name),
		attribute.String("job.run_id", runID),
	)
	defer span.End()

	slog.Debug("running job",
		"job", job.Name,
		"run_id", runID,
	)

	err := r.dispatch(ctx, job.Payload.JobPayload)
	if err != nil {
		slog.Warn("job firing failed, will retry",
			"job", job.Name,
			"run_id", runID,
			"retryable", app.IsRetryable(err),
			"error", err,
		)

		r.reschedule(ctx, job, time.Now().Add(r.retryDelay))

		return
	}

	if job.OneShot {
		if delErr := r.db.WithContext(ctx).Where("name = ?", job.Name).Delete(&JobModel{}).Error; delErr != nil {
			slog.Error("failed to remove completed one-shot job",
				"job", job.Name,
				"error", delErr,
			)
		}

		return
	}

	r.reschedule(ctx, job, time.Now().Add(job.Interval()))
}

// dispatch routes a payload to its consumer. Postponed one-shots carry the
// postpone marker; everything else is a window-check firing.
func (r *Runner) dispatch(ctx context.Context, payload app.JobPayload) error {
	if payload.Postpone {
		return r.postponer.HandlePostponedReminder(ctx, payload)
	}

	return r.checks.HandleJob(ctx, payload)
}

func (r *Runner) reschedule(ctx context.Context, job JobModel, nextRunAt time.Time) {
	result := r.db.WithContext(ctx).
		Model(&JobModel{}).
		Where("name = ?", job.Name).
		Updates(map[string]interface{}{
			"next_run_at": nextRunAt,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		slog.Error("failed to reschedule job",
			"job", job.Name,
			"error", result.Error,
		)
	}
}
