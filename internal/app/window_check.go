package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

// WindowCheckEngine decides, per job firing, whether a reminder alert is
// still warranted. Invocations may overlap (a periodic re-fire racing a
// manual re-check), so the whole decide-and-act sequence runs under one
// mutex: without it two firings could both pass the dedup check before
// either writes the flag.
type WindowCheckEngine struct {
	mu sync.Mutex

	settings SettingsProvider
	entries  domain.WorkEntryRepository
	flags    DedupStore
	alerts   AlertDispatcher
	clock    Clock
}

func NewWindowCheckEngine(
	settings SettingsProvider,
	entries domain.WorkEntryRepository,
	flags DedupStore,
	alerts AlertDispatcher,
	clock Clock,
) *WindowCheckEngine {
	return &WindowCheckEngine{
		settings: settings,
		entries:  entries,
		flags:    flags,
		alerts:   alerts,
		clock:    clock,
	}
}

// HandleJob is the durable scheduler's invocation entry point. A nil return
// means the firing is settled (alert emitted or nothing to do); a returned
// error is retryable and the scheduler re-invokes later.
func (e *WindowCheckEngine) HandleJob(ctx context.Context, payload JobPayload) error {
	reminderType, err := domain.NewReminderType(payload.ReminderType)
	if err != nil {
		// Legacy or foreign payload: settle as a no-op so a stale job
		// cannot double-fire alongside the dedicated per-type jobs.
		slog.Warn("ignoring job with unrecognized reminder type",
			"reminder_type", payload.ReminderType,
		)

		return nil
	}

	settings, err := e.settings.Current(ctx)
	if err != nil {
		return fmt.Errorf("%w: load settings: %v", ErrRetryable, err)
	}

	if !settings.Enabled(reminderType) {
		slog.Debug("reminder type disabled, skipping",
			"reminder_type", string(reminderType),
		)

		return nil
	}

	now := e.clock.Now()
	if !e.windowGateOpen(reminderType, domain.ClockTimeOf(now), settings) {
		slog.Debug("outside reminder window, skipping",
			"reminder_type", string(reminderType),
			"time", domain.ClockTimeOf(now).String(),
		)

		return nil
	}

	return e.decideAndAct(ctx, reminderType, settings, now)
}

// windowGateOpen evaluates the per-type time gate. DAILY has no window: its
// job only fires at the configured instant.
func (e *WindowCheckEngine) windowGateOpen(
	reminderType domain.ReminderType,
	now domain.ClockTime,
	settings domain.ReminderSettings,
) bool {
	switch reminderType {
	case domain.ReminderMorning:
		return domain.InMorningWindow(now, settings)
	case domain.ReminderEvening:
		return domain.InEveningWindow(now, settings)
	case domain.ReminderFallback:
		return domain.AfterFallback(now, settings)
	case domain.ReminderDaily:
		return true
	default:
		return false
	}
}

// decideAndAct runs the dedup check, entry fetch, decision and alert
// emission atomically. The lock spans the logical decision only, not the
// scheduler's job bookkeeping.
func (e *WindowCheckEngine) decideAndAct(
	ctx context.Context,
	reminderType domain.ReminderType,
	settings domain.ReminderSettings,
	now time.Time,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	date := now

	reminded, err := e.flags.IsReminded(ctx, date, reminderType)
	if err != nil {
		return fmt.Errorf("%w: read dedup flag: %v", ErrRetryable, err)
	}

	if reminded {
		slog.Debug("already reminded today, skipping",
			"reminder_type", string(reminderType),
			"date", domain.DateKey(date),
		)

		return nil
	}

	entry, err := e.entries.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, domain.ErrWorkEntryNotFound) {
		return fmt.Errorf("%w: fetch work entry: %v", ErrRetryable, err)
	}

	if entry == nil && domain.IsNonWorkingDay(date, settings, nil) {
		slog.Debug("non-working day without entry, skipping",
			"reminder_type", string(reminderType),
			"date", domain.DateKey(date),
		)

		return nil
	}

	if !needsReminder(reminderType, entry) {
		slog.Debug("reminder not needed",
			"reminder_type", string(reminderType),
			"date", domain.DateKey(date),
		)

		return nil
	}

	if err := e.alerts.Show(ctx, reminderType, date); err != nil {
		return fmt.Errorf("%w: dispatch alert: %v", ErrRetryable, err)
	}

	if err := e.flags.SetReminded(ctx, date, reminderType); err != nil {
		return fmt.Errorf("%w: set dedup flag: %v", ErrRetryable, err)
	}

	slog.Info("reminder alert emitted",
		"reminder_type", string(reminderType),
		"date", domain.DateKey(date),
	)

	return nil
}

// needsReminder is the per-type decision over the day's work entry.
func needsReminder(reminderType domain.ReminderType, entry *domain.WorkEntrySnapshot) bool {
	switch reminderType {
	case domain.ReminderMorning:
		return entry == nil ||
			(entry.DayType() == domain.DayTypeWork && !entry.HasMorningCapture())
	case domain.ReminderEvening:
		return entry == nil ||
			(entry.DayType() == domain.DayTypeWork && !entry.HasEveningCapture())
	case domain.ReminderFallback:
		return entry == nil ||
			(entry.DayType() == domain.DayTypeWork &&
				(!entry.HasMorningCapture() || !entry.HasEveningCapture()))
	case domain.ReminderDaily:
		return entry == nil || !entry.IsConfirmed()
	default:
		return false
	}
}
