package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/montagezeit/reminder-engine/internal/app"
	"github.com/montagezeit/reminder-engine/internal/domain"
)

// alertDispatcherImpl adapts the alert publisher to the engine's dispatcher
// port. A nil publisher degrades to log-only dispatch so the engine keeps
// running when no broker is configured.
type alertDispatcherImpl struct {
	publisher AlertPublisher
}

func NewAlertDispatcher(publisher AlertPublisher) app.AlertDispatcher {
	return &alertDispatcherImpl{
		publisher: publisher,
	}
}

func (d *alertDispatcherImpl) Show(ctx context.Context, reminderType domain.ReminderType, date time.Time) error {
	if d.publisher == nil {
		slog.Info("alert requested (no publisher configured)",
			"reminder_type", string(reminderType),
			"date", domain.DateKey(date),
		)

		return nil
	}

	if err := d.publisher.PublishAlertRequested(ctx, reminderType, date); err != nil {
		return fmt.Errorf("publish alert requested: %w", err)
	}

	return nil
}

func (d *alertDispatcherImpl) CancelAlert(ctx context.Context, reminderType domain.ReminderType) error {
	if d.publisher == nil {
		slog.Info("alert cancellation requested (no publisher configured)",
			"reminder_type", string(reminderType),
		)

		return nil
	}

	if err := d.publisher.PublishAlertCancelled(ctx, reminderType); err != nil {
		return fmt.Errorf("publish alert cancelled: %w", err)
	}

	return nil
}
