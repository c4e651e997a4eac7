package services

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notification describes a comment or reply event that interested users get
// mailed about. Delivery is handled by a consumer on the queue; publishing is
// best-effort and a failure never reaches the API caller.
type Notification struct {
	Kind        string `json:"kind"` // "comment" or "reply"
	Recipient   string `json:"recipient"`
	Name        string `json:"name"`
	ArticleSlug string `json:"articleSlug"`
	Body        string `json:"body"`
}

type Notifier interface {
	Publish(n Notification) error
}

type amqpNotifier struct {
	channel *amqp.Channel
	queue   string
}

func NewAMQPNotifier(channel *amqp.Channel, queue string) Notifier {
	return &amqpNotifier{channel: channel, queue: queue}
}

func (a *amqpNotifier) Publish(n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return a.channel.Publish("", a.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// NopNotifier is used when RabbitMQ is not configured.
type NopNotifier struct{}

func (NopNotifier) Publish(Notification) error { return nil }
