package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/montagezeit/reminder-engine/internal/app"
	"github.com/montagezeit/reminder-engine/internal/domain"
)

// memoryDedupStore is a goroutine-safe in-memory DedupStore used where the
// test needs real flag state across invocations rather than scripted calls.
type memoryDedupStore struct {
	mu    sync.Mutex
	flags map[string]struct{}
}

func newMemoryDedupStore() *memoryDedupStore {
	return &memoryDedupStore{flags: map[string]struct{}{}}
}

func (s *memoryDedupStore) key(date time.Time, reminderType domain.ReminderType) string {
	return domain.DateKey(date) + "/" + string(reminderType)
}

func (s *memoryDedupStore) IsReminded(_ context.Context, date time.Time, reminderType domain.ReminderType) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.flags[s.key(date, reminderType)]

	return ok, nil
}

func (s *memoryDedupStore) SetReminded(_ context.Context, date time.Time, reminderType domain.ReminderType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[s.key(date, reminderType)] = struct{}{}

	return nil
}

func TestHandleJob_UnknownReminderTypeIsSettledNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No expectations on any collaborator: a stale payload must not reach
	// settings, storage or the dispatcher.
	engine := app.NewWindowCheckEngine(
		app.NewMockSettingsProvider(ctrl),
		domain.NewMockWorkEntryRepository(ctrl),
		app.NewMockDedupStore(ctrl),
		app.NewMockAlertDispatcher(ctrl),
		fixedClock{now: testDay(10, 0)},
	)

	err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: "weekly"})
	require.NoError(t, err)
}

func TestHandleJob_DisabledTypeSkips(t *testing.T) {
	ctrl := gomock.NewController(t)

	settings := app.NewMockSettingsProvider(ctrl)
	cfg := domain.DefaultReminderSettings()
	cfg.MorningReminderEnabled = false
	settings.EXPECT().Current(gomock.Any()).Return(cfg, nil)

	engine := app.NewWindowCheckEngine(
		settings,
		domain.NewMockWorkEntryRepository(ctrl),
		app.NewMockDedupStore(ctrl),
		app.NewMockAlertDispatcher(ctrl),
		fixedClock{now: testDay(10, 0)},
	)

	err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: "morning"})
	require.NoError(t, err)
}

func TestHandleJob_OutsideWindowSkips(t *testing.T) {
	tests := []struct {
		name         string
		reminderType string
		now          time.Time
	}{
		{
			name:         "morning before window start",
			reminderType: "morning",
			now:          testDay(5, 59),
		},
		{
			name:         "morning at window end",
			reminderType: "morning",
			now:          testDay(13, 0),
		},
		{
			name:         "evening before window start",
			reminderType: "evening",
			now:          testDay(15, 59),
		},
		{
			name:         "fallback before configured time",
			reminderType: "fallback",
			now:          testDay(22, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			settings := app.NewMockSettingsProvider(ctrl)
			settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

			engine := app.NewWindowCheckEngine(
				settings,
				domain.NewMockWorkEntryRepository(ctrl),
				app.NewMockDedupStore(ctrl),
				app.NewMockAlertDispatcher(ctrl),
				fixedClock{now: tt.now},
			)

			err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: tt.reminderType})
			require.NoError(t, err)
		})
	}
}

func TestHandleJob_AlreadyRemindedSkipsAlert(t *testing.T) {
	ctrl := gomock.NewController(t)

	now := testDay(10, 0)

	settings := app.NewMockSettingsProvider(ctrl)
	settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

	flags := app.NewMockDedupStore(ctrl)
	flags.EXPECT().IsReminded(gomock.Any(), now, domain.ReminderMorning).Return(true, nil)

	engine := app.NewWindowCheckEngine(
		settings,
		domain.NewMockWorkEntryRepository(ctrl),
		flags,
		app.NewMockAlertDispatcher(ctrl),
		fixedClock{now: now},
	)

	err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: "morning"})
	require.NoError(t, err)
}

func TestHandleJob_MissingEntryOnWorkdayEmitsAlert(t *testing.T) {
	ctrl := gomock.NewController(t)

	now := testDay(10, 0)

	settings := app.NewMockSettingsProvider(ctrl)
	settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

	flags := app.NewMockDedupStore(ctrl)
	flags.EXPECT().IsReminded(gomock.Any(), now, domain.ReminderMorning).Return(false, nil)
	flags.EXPECT().SetReminded(gomock.Any(), now, domain.ReminderMorning).Return(nil)

	entries := domain.NewMockWorkEntryRepository(ctrl)
	entries.EXPECT().GetByDate(gomock.Any(), now).Return(nil, domain.ErrWorkEntryNotFound)

	alerts := app.NewMockAlertDispatcher(ctrl)
	alerts.EXPECT().Show(gomock.Any(), domain.ReminderMorning, now).Return(nil)

	engine := app.NewWindowCheckEngine(settings, entries, flags, alerts, fixedClock{now: now})

	err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: "morning"})
	require.NoError(t, err)
}

func TestHandleJob_MissingEntryOnWeekendSkips(t *testing.T) {
	ctrl := gomock.NewController(t)

	// Saturday 2025-11-08, inside the morning window.
	now := time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC)

	settings := app.NewMockSettingsProvider(ctrl)
	settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

	flags := app.NewMockDedupStore(ctrl)
	flags.EXPECT().IsReminded(gomock.Any(), now, domain.ReminderMorning).Return(false, nil)

	entries := domain.NewMockWorkEntryRepository(ctrl)
	entries.EXPECT().GetByDate(gomock.Any(), now).Return(nil, domain.ErrWorkEntryNotFound)

	engine := app.NewWindowCheckEngine(
		settings, entries, flags,
		app.NewMockAlertDispatcher(ctrl),
		fixedClock{now: now},
	)

	err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: "morning"})
	require.NoError(t, err)
}

func TestHandleJob_PerTypeDecision(t *testing.T) {
	now := testDay(10, 0)
	captured := testDay(8, 5)

	tests := []struct {
		name         string
		reminderType domain.ReminderType
		jobTime      time.Time
		entry        *domain.WorkEntrySnapshot
		expectAlert  bool
	}{
		{
			name:         "morning capture missing on work day",
			reminderType: domain.ReminderMorning,
			jobTime:      now,
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeWork, nil, nil, false),
			expectAlert:  true,
		},
		{
			name:         "morning already captured",
			reminderType: domain.ReminderMorning,
			jobTime:      now,
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeWork, &captured, nil, false),
			expectAlert:  false,
		},
		{
			name:         "explicit off day suppresses morning",
			reminderType: domain.ReminderMorning,
			jobTime:      now,
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeOff, nil, nil, false),
			expectAlert:  false,
		},
		{
			name:         "evening capture missing on work day",
			reminderType: domain.ReminderEvening,
			jobTime:      testDay(17, 0),
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeWork, &captured, nil, false),
			expectAlert:  true,
		},
		{
			name:         "fallback fires when either capture missing",
			reminderType: domain.ReminderFallback,
			jobTime:      testDay(22, 45),
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeWork, &captured, nil, false),
			expectAlert:  true,
		},
		{
			name:         "fallback silent when both captured",
			reminderType: domain.ReminderFallback,
			jobTime:      testDay(22, 45),
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeWork, &captured, &captured, false),
			expectAlert:  false,
		},
		{
			name:         "daily fires while unconfirmed",
			reminderType: domain.ReminderDaily,
			jobTime:      testDay(18, 0),
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeWork, &captured, &captured, false),
			expectAlert:  true,
		},
		{
			name:         "daily silent once confirmed",
			reminderType: domain.ReminderDaily,
			jobTime:      testDay(18, 0),
			entry:        domain.NewWorkEntrySnapshot(now, domain.DayTypeWork, &captured, &captured, true),
			expectAlert:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			settings := app.NewMockSettingsProvider(ctrl)
			settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

			flags := app.NewMockDedupStore(ctrl)
			flags.EXPECT().IsReminded(gomock.Any(), tt.jobTime, tt.reminderType).Return(false, nil)

			entries := domain.NewMockWorkEntryRepository(ctrl)
			entries.EXPECT().GetByDate(gomock.Any(), tt.jobTime).Return(tt.entry, nil)

			alerts := app.NewMockAlertDispatcher(ctrl)
			if tt.expectAlert {
				alerts.EXPECT().Show(gomock.Any(), tt.reminderType, tt.jobTime).Return(nil)
				flags.EXPECT().SetReminded(gomock.Any(), tt.jobTime, tt.reminderType).Return(nil)
			}

			engine := app.NewWindowCheckEngine(settings, entries, flags, alerts, fixedClock{now: tt.jobTime})

			err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: string(tt.reminderType)})
			require.NoError(t, err)
		})
	}
}

func TestHandleJob_SecondFiringIsDeduplicated(t *testing.T) {
	ctrl := gomock.NewController(t)

	now := testDay(10, 0)

	settings := app.NewMockSettingsProvider(ctrl)
	settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil).Times(2)

	entries := domain.NewMockWorkEntryRepository(ctrl)
	entries.EXPECT().GetByDate(gomock.Any(), now).Return(nil, domain.ErrWorkEntryNotFound).AnyTimes()

	alerts := app.NewMockAlertDispatcher(ctrl)
	alerts.EXPECT().Show(gomock.Any(), domain.ReminderMorning, now).Return(nil).Times(1)

	engine := app.NewWindowCheckEngine(settings, entries, newMemoryDedupStore(), alerts, fixedClock{now: now})

	payload := app.JobPayload{ReminderType: "morning"}
	require.NoError(t, engine.HandleJob(context.Background(), payload))
	require.NoError(t, engine.HandleJob(context.Background(), payload))
}

func TestHandleJob_ConcurrentFiringsEmitOneAlert(t *testing.T) {
	ctrl := gomock.NewController(t)

	now := testDay(10, 0)
	const firings = 8

	settings := app.NewMockSettingsProvider(ctrl)
	settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil).Times(firings)

	entries := domain.NewMockWorkEntryRepository(ctrl)
	entries.EXPECT().GetByDate(gomock.Any(), now).Return(nil, domain.ErrWorkEntryNotFound).AnyTimes()

	alerts := app.NewMockAlertDispatcher(ctrl)
	alerts.EXPECT().Show(gomock.Any(), domain.ReminderMorning, now).Return(nil).Times(1)

	engine := app.NewWindowCheckEngine(settings, entries, newMemoryDedupStore(), alerts, fixedClock{now: now})

	var wg sync.WaitGroup
	for i := 0; i < firings; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, engine.HandleJob(context.Background(), app.JobPayload{ReminderType: "morning"}))
		}()
	}
	wg.Wait()
}

func TestHandleJob_FailuresAreRetryable(t *testing.T) {
	now := testDay(10, 0)

	tests := []struct {
		name  string
		setup func(ctrl *gomock.Controller) (app.SettingsProvider, domain.WorkEntryRepository, app.DedupStore, app.AlertDispatcher)
	}{
		{
			name: "settings load failure",
			setup: func(ctrl *gomock.Controller) (app.SettingsProvider, domain.WorkEntryRepository, app.DedupStore, app.AlertDispatcher) {
				settings := app.NewMockSettingsProvider(ctrl)
				settings.EXPECT().Current(gomock.Any()).Return(domain.ReminderSettings{}, errors.New("store down"))

				return settings, domain.NewMockWorkEntryRepository(ctrl), app.NewMockDedupStore(ctrl), app.NewMockAlertDispatcher(ctrl)
			},
		},
		{
			name: "dedup flag read failure",
			setup: func(ctrl *gomock.Controller) (app.SettingsProvider, domain.WorkEntryRepository, app.DedupStore, app.AlertDispatcher) {
				settings := app.NewMockSettingsProvider(ctrl)
				settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

				flags := app.NewMockDedupStore(ctrl)
				flags.EXPECT().IsReminded(gomock.Any(), now, domain.ReminderMorning).Return(false, errors.New("db down"))

				return settings, domain.NewMockWorkEntryRepository(ctrl), flags, app.NewMockAlertDispatcher(ctrl)
			},
		},
		{
			name: "work entry fetch failure",
			setup: func(ctrl *gomock.Controller) (app.SettingsProvider, domain.WorkEntryRepository, app.DedupStore, app.AlertDispatcher) {
				settings := app.NewMockSettingsProvider(ctrl)
				settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

				flags := app.NewMockDedupStore(ctrl)
				flags.EXPECT().IsReminded(gomock.Any(), now, domain.ReminderMorning).Return(false, nil)

				entries := domain.NewMockWorkEntryRepository(ctrl)
				entries.EXPECT().GetByDate(gomock.Any(), now).Return(nil, errors.New("db down"))

				return settings, entries, flags, app.NewMockAlertDispatcher(ctrl)
			},
		},
		{
			name: "alert dispatch failure",
			setup: func(ctrl *gomock.Controller) (app.SettingsProvider, domain.WorkEntryRepository, app.DedupStore, app.AlertDispatcher) {
				settings := app.NewMockSettingsProvider(ctrl)
				settings.EXPECT().Current(gomock.Any()).Return(domain.DefaultReminderSettings(), nil)

				flags := app.NewMockDedupStore(ctrl)
				flags.EXPECT().IsReminded(gomock.Any(), now, domain.ReminderMorning).Return(false, nil)

				entries := domain.NewMockWorkEntryRepository(ctrl)
				entries.EXPECT().GetByDate(gomock.Any(), now).Return(nil, domain.ErrWorkEntryNotFound)

				alerts := app.NewMockAlertDispatcher(ctrl)
				alerts.EXPECT().Show(gomock.Any(), domain.ReminderMorning, now).Return(errors.New("broker down"))

				return settings, entries, flags, alerts
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			settings, entries, flags, alerts := tt.setup(ctrl)
			engine := app.NewWindowCheckEngine(settings, entries, flags, alerts, fixedClock{now: now})

			err := engine.HandleJob(context.Background(), app.JobPayload{ReminderType: "morning"})
			require.Error(t, err)
			assert.True(t, app.IsRetryable(err))
		})
	}
}
