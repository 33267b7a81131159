package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/montagezeit/reminder-engine/internal/domain"
	"github.com/montagezeit/reminder-engine/internal/observability/tracing"
)

type NATSAlertPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type NATSPublisherConfig struct {
	URL string
}

func NewNATSAlertPublisher(cfg NATSPublisherConfig) (*NATSAlertPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:       false,
				AutoProvision:  true,
				ConnectOptions: nil,
				PublishOptions: nil,
				TrackMsgId:     false,
				AckAsync:       false,
				DurablePrefix:  "",
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSAlertPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func NewNATSAlertPublisherWithStream(ctx context.Context, cfg NATSPublisherConfig) (*NATSAlertPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	streamName := "REMINDER_ALERTS"

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Stream for reminder alert events",
		Subjects:    []string{TopicAlertRequested, TopicAlertCancelled},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024, // 100MB
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	slog.Info("NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.String("subjects", TopicAlertRequested+","+TopicAlertCancelled),
	)

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSAlertPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *NATSAlertPublisher) PublishAlertRequested(ctx context.Context, reminderType domain.ReminderType, date time.Time) error {
	event := AlertEvent{
		ReminderType: string(reminderType),
		Date:         domain.DateKey(date),
		EmittedAt:    time.Now(),
	}

	return p.publish(ctx, TopicAlertRequested, "reminder.alert.requested", event)
}

func (p *NATSAlertPublisher) PublishAlertCancelled(ctx context.Context, reminderType domain.ReminderType) error {
	event := AlertEvent{
		ReminderType: string(reminderType),
		EmittedAt:    time.Now(),
	}

	return p.publish(ctx, TopicAlertCancelled, "reminder.alert.cancelled", event)
}

func (p *NATSAlertPublisher) publish(ctx context.Context, topic, eventType string, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", eventType)
	msg.Metadata.Set("reminder_type", event.ReminderType)

	carrier := map[string]string{}
	tracing.InjectToMap(ctx, carrier)

	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	if err := p.publisher.Publish(topic, msg); err != nil {
		slog.Error("failed to publish alert event",
			slog.String("event_type", eventType),
			slog.String("reminder_type", event.ReminderType),
			slog.String("error", err.Error()),
		)

		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.Debug("published alert event",
		slog.String("event_type", eventType),
		slog.String("reminder_type", event.ReminderType),
		slog.String("message_id", msg.UUID),
	)

	return nil
}

func (p *NATSAlertPublisher) Close() error {
	return p.publisher.Close()
}
