package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher публикует события расписания в RabbitMQ
type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	timeout  time.Duration
	metrics  Metrics
	log      Logger
}

// NewRabbitPublisher подключается к брокеру и объявляет durable topic exchange
func NewRabbitPublisher(url, exchange string, timeout time.Duration, metrics Metrics, log Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnection, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnection, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnection, exchange, err)
	}

	p := newPublisher(ch, exchange, timeout, metrics, log)
	p.conn = conn
	return p, nil
}

func newPublisher(ch Channel, exchange string, timeout time.Duration, metrics Metrics, log Logger) *RabbitPublisher {
	return &RabbitPublisher{
		channel:  ch,
		exchange: exchange,
		timeout:  timeout,
		metrics:  metrics,
		log:      log,
	}
}

// PublishClosedDayConflict публикует событие о закрытом дне с активными записями
func (p *RabbitPublisher) PublishClosedDayConflict(ctx context.Context, event ClosedDayConflict) error {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.metrics.ObserveNotification("failed")
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID.String(),
		Timestamp:    event.OccurredAt,
		Headers: amqp.Table{
			"x-event-id":   event.EventID.String(),
			"x-event-type": RoutingKeyClosedDayConflict,
		},
		Body: body,
	}

	if err := p.channel.PublishWithContext(ctx, p.exchange, RoutingKeyClosedDayConflict, false, false, msg); err != nil {
		p.metrics.ObserveNotification("failed")
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.metrics.ObserveNotification("sent")
	p.log.Info("Notifier: published %s for date=%s, appointments=%d",
		RoutingKeyClosedDayConflict, event.Date, len(event.AppointmentIDs))
	return nil
}

// Close закрывает канал и соединение
func (p *RabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
