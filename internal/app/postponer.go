package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

const defaultPostponeDelay = 1 * time.Hour

// ReminderPostponer grants rate-limited "remind me later" requests by
// scheduling a one-shot durable job, and re-dispatches the alert when that
// job fires. Without the cap a user could defer indefinitely; two grants
// per day leaves at most three reminder opportunities per type.
type ReminderPostponer interface {
	Postpone(ctx context.Context, input PostponeInput) error
	HandlePostponedReminder(ctx context.Context, payload JobPayload) error
}

type reminderPostponerImpl struct {
	settings  SettingsProvider
	limiter   PostponeLimiter
	scheduler JobScheduler
	alerts    AlertDispatcher
	clock     Clock
}

func NewReminderPostponer(
	settings SettingsProvider,
	limiter PostponeLimiter,
	scheduler JobScheduler,
	alerts AlertDispatcher,
	clock Clock,
) ReminderPostponer {
	return &reminderPostponerImpl{
		settings:  settings,
		limiter:   limiter,
		scheduler: scheduler,
		alerts:    alerts,
		clock:     clock,
	}
}

func (p *reminderPostponerImpl) Postpone(ctx context.Context, input PostponeInput) error {
	reminderType, err := domain.NewReminderType(input.ReminderType)
	if err != nil {
		return NewValidationError("reminder_type", err.Error())
	}

	delay := defaultPostponeDelay
	if input.DelayMinutes > 0 {
		delay = time.Duration(input.DelayMinutes) * time.Minute
	}

	date := p.clock.Now()

	allowed, err := p.limiter.CanSchedule(ctx, date)
	if err != nil {
		return fmt.Errorf("%w: read postpone counter: %v", ErrInternalError, err)
	}

	if !allowed {
		slog.Info("postpone denied, daily limit reached",
			"reminder_type", string(reminderType),
			"date", domain.DateKey(date),
		)

		return ErrPostponeLimitReached
	}

	if err := p.limiter.Increment(ctx, date); err != nil {
		return fmt.Errorf("%w: increment postpone counter: %v", ErrInternalError, err)
	}

	payload := JobPayload{
		ReminderType: string(reminderType),
		Date:         domain.DateKey(date),
		Postpone:     true,
	}

	if err := p.scheduler.UpsertOneShot(ctx, reminderType.PostponeJobName(), delay, payload); err != nil {
		return fmt.Errorf("%w: schedule postponed reminder: %v", ErrInternalError, err)
	}

	slog.Info("reminder postponed",
		"reminder_type", string(reminderType),
		"date", domain.DateKey(date),
		"delay", delay,
	)

	return nil
}

// HandlePostponedReminder fires a postponed alert. The slot is re-derived
// from the current time so a postponement that crosses from the morning
// into the afternoon surfaces as an evening reminder.
func (p *reminderPostponerImpl) HandlePostponedReminder(ctx context.Context, payload JobPayload) error {
	settings, err := p.settings.Current(ctx)
	if err != nil {
		return fmt.Errorf("%w: load settings: %v", ErrRetryable, err)
	}

	date := p.clock.Now()
	if payload.Date != "" {
		if parsed, parseErr := time.ParseInLocation("2006-01-02", payload.Date, date.Location()); parseErr == nil {
			date = parsed
		}
	}

	reminderType := domain.ReminderEvening
	if domain.ClockTimeOf(p.clock.Now()).Before(settings.MorningWindowEnd) {
		reminderType = domain.ReminderMorning
	}

	if err := p.alerts.Show(ctx, reminderType, date); err != nil {
		return fmt.Errorf("%w: dispatch postponed alert: %v", ErrRetryable, err)
	}

	slog.Info("postponed reminder dispatched",
		"reminder_type", string(reminderType),
		"date", domain.DateKey(date),
	)

	return nil
}
