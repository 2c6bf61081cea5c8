package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/wisepayru/banking/internal/event"
)

// AMQPSink forwards events to a RabbitMQ topic exchange, routing key
// "webhook.<category>". Publishes are serialized: an amqp091 channel is not
// safe for concurrent use.
type AMQPSink struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPSink(url, exchange string) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &AMQPSink{conn: conn, channel: channel, exchange: exchange}, nil
}

func (s *AMQPSink) Receive(ctx context.Context, evt event.Event) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", evt.Kind(), err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.channel.PublishWithContext(ctx,
		s.exchange,
		"webhook."+evt.Kind(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    evt.ID(),
			Timestamp:    time.Now().UTC(),
			Body:         b,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.Kind(), err)
	}
	return nil
}

// Close cleans up the channel and connection.
func (s *AMQPSink) Close() error {
	return closeBoth(s.channel, s.conn)
}

// closeBoth closes the channel and then the connection, always attempting
// both so a channel error cannot leak the connection; the first error wins.
func closeBoth(channel, conn io.Closer) error {
	chErr := channel.Close()
	connErr := conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}
