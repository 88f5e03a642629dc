package queue

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.uber.org/zap"
)

type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewProducer creates a writer for the notification topic. SASL/PLAIN over
// TLS is enabled only when a username is configured; local brokers run bare.
func NewProducer(broker, topic, username, password string, logger *zap.Logger) *Producer {
	var transport kafka.RoundTripper
	if username != "" {
		transport = &kafka.Transport{
			SASL: plain.Mechanism{
				Username: username,
				Password: password,
			},
			TLS: &tls.Config{},
		}
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			Transport:    transport,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (p *Producer) PublishMessage(key, value []byte) error {
	// A missing broker must never break the request that triggered the
	// notification; skip instead.
	if p == nil || p.writer == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("kafka producer not ready, skipping publish")
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
