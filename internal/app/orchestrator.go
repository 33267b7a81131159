package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

const dailyRepeatInterval = 24 * time.Hour

// ReminderOrchestrator keeps exactly one durable recurring job registered
// per enabled reminder type, and none for disabled types. Invoked on boot,
// on settings changes, and after system clock or timezone changes.
type ReminderOrchestrator interface {
	ScheduleAll(ctx context.Context) error
	CancelAll(ctx context.Context) error
}

type reminderOrchestratorImpl struct {
	settings  SettingsProvider
	scheduler JobScheduler
	calc      *domain.ScheduleCalculator
	clock     Clock
}

func NewReminderOrchestrator(settings SettingsProvider, scheduler JobScheduler, clock Clock) ReminderOrchestrator {
	return &reminderOrchestratorImpl{
		settings:  settings,
		scheduler: scheduler,
		calc:      domain.NewScheduleCalculator(),
		clock:     clock,
	}
}

func (o *reminderOrchestratorImpl) ScheduleAll(ctx context.Context) error {
	settings, err := o.settings.Current(ctx)
	if err != nil {
		slog.Error("failed to load reminder settings",
			"error", err,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	now := domain.ClockTimeOf(o.clock.Now())

	for _, reminderType := range domain.AllReminderTypes() {
		if !settings.Enabled(reminderType) {
			if err := o.scheduler.Cancel(ctx, reminderType.JobName()); err != nil {
				slog.Error("failed to cancel reminder job",
					"error", err,
					"reminder_type", string(reminderType),
				)

				return fmt.Errorf("%w: %v", ErrInternalError, err)
			}

			slog.Debug("reminder job cancelled (type disabled)",
				"reminder_type", string(reminderType),
			)

			continue
		}

		delay, interval := o.registration(now, settings, reminderType)

		payload := JobPayload{ReminderType: string(reminderType)}
		if err := o.scheduler.UpsertPeriodic(ctx, reminderType.JobName(), delay, interval, payload); err != nil {
			slog.Error("failed to register reminder job",
				"error", err,
				"reminder_type", string(reminderType),
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		slog.Info("reminder job registered",
			"reminder_type", string(reminderType),
			"initial_delay", delay,
			"interval", interval,
		)
	}

	return nil
}

func (o *reminderOrchestratorImpl) CancelAll(ctx context.Context) error {
	for _, reminderType := range domain.AllReminderTypes() {
		if err := o.scheduler.Cancel(ctx, reminderType.JobName()); err != nil {
			slog.Error("failed to cancel reminder job",
				"error", err,
				"reminder_type", string(reminderType),
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}
	}

	slog.Info("all reminder jobs cancelled")

	return nil
}

// registration computes the initial delay and repeat interval for a
// reminder type from the current settings. Window types re-check on the
// configured interval; fallback and daily fire once per day.
func (o *reminderOrchestratorImpl) registration(
	now domain.ClockTime,
	settings domain.ReminderSettings,
	reminderType domain.ReminderType,
) (time.Duration, time.Duration) {
	switch reminderType {
	case domain.ReminderMorning:
		delay := o.calc.DelayUntilWindowStart(now, settings.MorningWindowStart, settings.MorningWindowEnd)

		return delay, o.calc.ClampPeriodicInterval(settings.MorningCheckIntervalMinutes)
	case domain.ReminderEvening:
		delay := o.calc.DelayUntilWindowStart(now, settings.EveningWindowStart, settings.EveningWindowEnd)

		return delay, o.calc.ClampPeriodicInterval(settings.EveningCheckIntervalMinutes)
	case domain.ReminderFallback:
		return o.calc.DelayUntilInstant(now, settings.FallbackTime), dailyRepeatInterval
	case domain.ReminderDaily:
		return o.calc.DelayUntilInstant(now, settings.DailyReminderTime), dailyRepeatInterval
	default:
		return 0, dailyRepeatInterval
	}
}
