package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/contaflux/contaflux/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NATS subjects
type Consumer struct {
	conn         *nats.Conn
	ownsConn     bool
	subscription *nats.Subscription
	cancelFunc   context.CancelFunc
}

// NewConsumer creates a new NATS consumer for a subject with an optional queue group
func NewConsumer(subject, queueGroup, address string, handler MessageHandler) (*Consumer, error) {
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	consumer, err := subscribe(conn, subject, queueGroup, handler)
	if err != nil {
		conn.Close()
		return nil, err
	}

	consumer.ownsConn = true
	return consumer, nil
}

// NewConsumerFromClient creates a consumer that shares an existing client connection
func NewConsumerFromClient(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	return subscribe(client.GetConn(), subject, queueGroup, handler)
}

func subscribe(conn *nats.Conn, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	_, cancel := context.WithCancel(context.Background())

	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Error("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var subscription *nats.Subscription
	var err error
	if queueGroup != "" {
		subscription, err = conn.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		subscription, err = conn.Subscribe(subject, wrapped)
	}

	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{
		conn:         conn,
		subscription: subscription,
		cancelFunc:   cancel,
	}, nil
}

// IsActive returns true if the consumer is actively subscribed
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	logger.Info("Stopping consumer")

	if c.subscription != nil {
		c.subscription.Unsubscribe()
		c.subscription = nil
	}

	if c.cancelFunc != nil {
		c.cancelFunc()
	}

	if c.ownsConn && c.conn != nil {
		c.conn.Close()
	}
}
