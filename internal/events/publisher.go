// Package events publishes ledger notifications to RabbitMQ. Publishing is
// strictly best-effort: a broker outage must never fail a committed write.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyTransferRecorded = "ledger.transfer.recorded"
	routingKeyImportCompleted  = "ledger.import.completed"
)

// Publisher sends ledger events to a topic exchange. The zero value (or a
// nil *Publisher) is a no-op publisher, used when AMQP is not configured.
type Publisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	logger       *slog.Logger
}

// NewPublisher connects to the broker and declares the exchange. An empty
// url returns a nil publisher, which drops all events.
func NewPublisher(url, exchangeName string, logger *slog.Logger) (*Publisher, error) {
	if url == "" {
		logger.Info("AMQP_URL not set, ledger event publishing disabled")
		return nil, nil
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		logger:       logger,
	}

	if err := p.channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		p.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return p, nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func (p *Publisher) publish(ctx context.Context, routingKey string, body []byte) {
	if p == nil || p.channel == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := p.channel.PublishWithContext(ctx,
		p.exchangeName, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Warn("Failed to publish ledger event", slog.String("routing_key", routingKey), slog.String("error", err.Error()))
	}
}

// PublishTransferRecorded announces a committed transfer.
func (p *Publisher) PublishTransferRecorded(ctx context.Context, msg *TransferRecordedMessage) {
	if p == nil {
		return
	}
	body, err := msg.ToJSON()
	if err != nil {
		p.logger.Warn("Failed to marshal transfer event", slog.String("error", err.Error()))
		return
	}
	p.publish(ctx, routingKeyTransferRecorded, body)
}

// PublishImportCompleted announces a committed CSV batch import.
func (p *Publisher) PublishImportCompleted(ctx context.Context, msg *ImportCompletedMessage) {
	if p == nil {
		return
	}
	body, err := msg.ToJSON()
	if err != nil {
		p.logger.Warn("Failed to marshal import event", slog.String("error", err.Error()))
		return
	}
	p.publish(ctx, routingKeyImportCompleted, body)
}
