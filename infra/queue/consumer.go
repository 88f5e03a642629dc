package queue

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/internal/interfaces"
)

type KafkaConsumer struct {
	Reader  *kafka.Reader
	Handler interfaces.ConsumerHandler
	logger  *zap.Logger
}

func NewKafkaConsumer(broker, topic, groupID, username, password string, handler interfaces.ConsumerHandler, logger *zap.Logger) *KafkaConsumer {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}
	if username != "" {
		dialer.TLS = &tls.Config{}
		dialer.SASLMechanism = plain.Mechanism{
			Username: username,
			Password: password,
		}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		Dialer:   dialer,
	})

	return &KafkaConsumer{
		Reader:  reader,
		Handler: handler,
		logger:  logger,
	}
}

// Listen consumes until ctx is cancelled. Handler errors drop the message;
// delivery is best-effort.
func (kc *KafkaConsumer) Listen(ctx context.Context) {
	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			kc.logger.Error("read message failed", zap.Error(err))
			continue
		}

		if err := kc.Handler.HandleMessage(string(msg.Value)); err != nil {
			kc.logger.Error("handle message failed",
				zap.String("key", string(msg.Key)),
				zap.Error(err))
		}
	}
}

func (kc *KafkaConsumer) Close() error {
	return kc.Reader.Close()
}
