// Package notifier delivers queued notification events to the external SMS
// and email relay endpoints.
package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/internal/dto"
	"github.com/likeclem30/taxipassbackend/internal/interfaces"
)

type Service struct {
	client   *resty.Client
	smsURL   string
	emailURL string
	logger   *zap.Logger
}

func NewService(smsURL, emailURL string, logger *zap.Logger) *Service {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Service{
		client:   client,
		smsURL:   smsURL,
		emailURL: emailURL,
		logger:   logger,
	}
}

var _ interfaces.ConsumerHandler = (*Service)(nil)

func (s *Service) HandleMessage(message string) error {
	var ev dto.NotificationEvent
	if err := json.Unmarshal([]byte(message), &ev); err != nil {
		return fmt.Errorf("decode notification event: %w", err)
	}

	switch ev.Channel {
	case dto.ChannelSMS:
		return s.sendSMS(ev)
	case dto.ChannelEmail:
		return s.sendEmail(ev)
	default:
		return fmt.Errorf("unknown notification channel %q", ev.Channel)
	}
}

func (s *Service) sendSMS(ev dto.NotificationEvent) error {
	resp, err := s.client.R().
		SetHeader("Authorization", ev.Authorization).
		SetBody(map[string]string{
			"phoneNumber": ev.PhoneNumber,
			"typeMessage": ev.TypeMessage,
			"message":     ev.Body,
		}).
		Post(s.smsURL)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}

	s.logger.Info("sms relayed",
		zap.String("type", ev.Type),
		zap.Int("status", resp.StatusCode()))
	return nil
}

func (s *Service) sendEmail(ev dto.NotificationEvent) error {
	resp, err := s.client.R().
		SetHeader("Authorization", ev.Authorization).
		SetBody(map[string]string{
			"email":       ev.Email,
			"subject":     ev.Subject,
			"typeMessage": ev.TypeMessage,
			"message":     ev.Body,
		}).
		Post(s.emailURL)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.Info("email relayed",
		zap.String("type", ev.Type),
		zap.Int("status", resp.StatusCode()))
	return nil
}
