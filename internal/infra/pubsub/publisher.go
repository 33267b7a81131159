package pubsub

import (
	"context"
	"io"
	"time"

	"github.com/montagezeit/reminder-engine/internal/domain"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

const (
	TopicAlertRequested = "reminder.alert.requested"
	TopicAlertCancelled = "reminder.alert.cancelled"
)

// AlertEvent is the JSON document published for the notification delivery
// service.
type AlertEvent struct {
	ReminderType string    `json:"reminder_type"`
	Date         string    `json:"date,omitempty"`
	EmittedAt    time.Time `json:"emitted_at"`
}

type AlertPublisher interface {
	PublishAlertRequested(ctx context.Context, reminderType domain.ReminderType, date time.Time) error
	PublishAlertCancelled(ctx context.Context, reminderType domain.ReminderType) error
	io.Closer
}
