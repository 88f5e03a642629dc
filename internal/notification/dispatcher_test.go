package notification

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/dto"
)

type published struct {
	key   string
	event dto.NotificationEvent
}

type captureProducer struct {
	msgs chan published
}

func newCaptureProducer() *captureProducer {
	return &captureProducer{msgs: make(chan published, 8)}
}

func (c *captureProducer) PublishMessage(key, value []byte) error {
	var ev dto.NotificationEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return err
	}
	c.msgs <- published{key: string(key), event: ev}
	return nil
}

func (c *captureProducer) receive(t *testing.T) published {
	t.Helper()
	select {
	case msg := <-c.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published notification")
		return published{}
	}
}

func testPassenger() *domain.Passenger {
	return &domain.Passenger{
		ID:          1,
		AuthID:      1,
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@x.com",
		PhoneNumber: "07030000001",
	}
}

func eventsByChannel(t *testing.T, producer *captureProducer) map[string]published {
	t.Helper()
	out := make(map[string]published, 2)
	for i := 0; i < 2; i++ {
		msg := producer.receive(t)
		out[msg.event.Channel] = msg
	}
	require.Len(t, out, 2, "expected one event per channel")
	return out
}

func TestWelcome(t *testing.T) {
	producer := newCaptureProducer()
	d, err := NewDispatcher(producer, zap.NewNop())
	require.NoError(t, err)

	d.Welcome(testPassenger(), "Bearer abc")

	byChannel := eventsByChannel(t, producer)

	email := byChannel[dto.ChannelEmail]
	assert.Equal(t, "notification.email", email.key)
	assert.Equal(t, dto.EventWelcome, email.event.Type)
	assert.Equal(t, "jane@x.com", email.event.Email)
	assert.Equal(t, welcomeSubject, email.event.Subject)
	assert.Equal(t, welcomeType, email.event.TypeMessage)
	assert.Equal(t, "Bearer abc", email.event.Authorization)
	assert.Contains(t, email.event.Body, "Jane")
	assert.Contains(t, email.event.Body, defaultPin)

	sms := byChannel[dto.ChannelSMS]
	assert.Equal(t, "notification.sms", sms.key)
	assert.Equal(t, "07030000001", sms.event.PhoneNumber)
	assert.Contains(t, sms.event.Body, "Jane")
	assert.NotContains(t, sms.event.Body, "<")
}

func TestSuspension(t *testing.T) {
	producer := newCaptureProducer()
	d, err := NewDispatcher(producer, zap.NewNop())
	require.NoError(t, err)

	d.Suspension(testPassenger(), "")

	byChannel := eventsByChannel(t, producer)

	email := byChannel[dto.ChannelEmail]
	assert.Equal(t, dto.EventSuspension, email.event.Type)
	assert.Equal(t, suspendSubject, email.event.Subject)
	assert.Equal(t, suspendType, email.event.TypeMessage)
	assert.Contains(t, email.event.Body, "Jane")
	assert.Contains(t, email.event.Body, "suspended")

	sms := byChannel[dto.ChannelSMS]
	assert.Contains(t, sms.event.Body, "suspended")
}
