package internal

import (
	"github.com/streadway/amqp"

	"github.com/avelinos/tasktrack-api/internal"
	"github.com/avelinos/tasktrack-api/internal/envvar"
)

// RabbitMQ represents the connection and the channel used for publishing and
// consuming task events.
type RabbitMQ struct {
	Connection *amqp.Connection
	Channel    *amqp.Channel
}

// NewRabbitMQ instantiates the RabbitMQ instances using configuration defined
// in environment variables.
func NewRabbitMQ(conf *envvar.Configuration) (*RabbitMQ, error) {
	url, err := conf.Get("RABBITMQ_URL")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get RABBITMQ_URL")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "amqp.Dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conn.Channel")
	}

	err = ch.ExchangeDeclare(
		"tasks", // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "ch.ExchangeDeclare")
	}

	if err := ch.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "ch.Qos")
	}

	return &RabbitMQ{
		Connection: conn,
		Channel:    ch,
	}, nil
}

// Close releases the channel and the underlying connection.
func (r *RabbitMQ) Close() {
	r.Channel.Close()
	r.Connection.Close()
}
