package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"church_sync/internal/domain"
)

// Content kinds.
const (
	KindSermon   = "sermon"
	KindBulletin = "bulletin"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// ContentEvent announces a content row that was synced from an external
// catalog or created by an administrator. Consumers use it to refresh the
// site cache and post notifications.
type ContentEvent struct {
	Action    string    `json:"action"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	URL       string    `json:"url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *RabbitMQ) PublishSermon(ctx context.Context, sermon *domain.Sermon, action string) error {
	return r.publish(ctx, ContentEvent{
		Action:    action,
		Kind:      KindSermon,
		Title:     sermon.Title,
		URL:       sermon.YoutubeURL,
		Timestamp: time.Now().UTC(),
	})
}

func (r *RabbitMQ) PublishBulletin(ctx context.Context, bulletin *domain.Bulletin, action string) error {
	event := ContentEvent{
		Action:    action,
		Kind:      KindBulletin,
		Title:     bulletin.Title,
		Timestamp: time.Now().UTC(),
	}
	if bulletin.LinkURL != nil {
		event.URL = *bulletin.LinkURL
	}
	return r.publish(ctx, event)
}

func (r *RabbitMQ) publish(ctx context.Context, event ContentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	r.logger.Debug("published content event",
		"kind", event.Kind,
		"action", event.Action,
		"title", event.Title,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
