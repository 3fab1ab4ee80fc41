package notify

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// QueueBookingCreated очередь событий о новых заявках на бронирование
	QueueBookingCreated = "booking.created"

	// QueueBookingConfirmed очередь событий о подтвержденных бронированиях
	QueueBookingConfirmed = "booking.confirmed"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier публикует события бронирований в RabbitMQ
// Соединение открывается на каждую публикацию: уведомления редки,
// а постоянное соединение потребовало бы отдельного supervision
type Notifier struct {
	amqpURL string
	log     Logger
}

// NewNotifier создает новый экземпляр Notifier
func NewNotifier(amqpURL string, log Logger) *Notifier {
	return &Notifier{amqpURL: amqpURL, log: log}
}

// Nop заглушка на случай выключенных уведомлений
type Nop struct{}

func (Nop) PublishBookingCreated(context.Context, BookingEvent) error   { return nil }
func (Nop) PublishBookingConfirmed(context.Context, BookingEvent) error { return nil }

// PublishBookingCreated публикует событие о созданной заявке
func (n *Notifier) PublishBookingCreated(ctx context.Context, event BookingEvent) error {
	return n.publish(ctx, QueueBookingCreated, event)
}

// PublishBookingConfirmed публикует событие о подтвержденном бронировании
func (n *Notifier) PublishBookingConfirmed(ctx context.Context, event BookingEvent) error {
	return n.publish(ctx, QueueBookingConfirmed, event)
}

func (n *Notifier) publish(ctx context.Context, queue string, event BookingEvent) error {
	conn, err := amqp.Dial(n.amqpURL)
	if err != nil {
		n.log.Error("notify: dial failed for queue=%s: %v", queue, err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		n.log.Error("notify: channel open failed for queue=%s: %v", queue, err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Объявление очереди идемпотентно; durable, чтобы сообщения переживали рестарт брокера
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		n.log.Error("notify: queue declare failed for queue=%s: %v", queue, err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		n.log.Error("notify: marshal event failed for queue=%s: %v", queue, err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key = queue name
		false, // mandatory
		false, // immediate
		pub,
	); err != nil {
		n.log.Error("notify: publish failed for queue=%s: %v", queue, err)
		return err
	}

	n.log.Info("notify: published event to queue=%s, correlation=%s", queue, event.CorrelationCode)
	return nil
}
