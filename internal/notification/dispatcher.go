package notification

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	texttemplate "text/template"

	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/internal/domain"
	"github.com/likeclem30/taxipassbackend/internal/dto"
	"github.com/likeclem30/taxipassbackend/internal/interfaces"
)

//go:embed templates
var templateFS embed.FS

const (
	welcomeSubject = "Welcome To Lagos State Intermodal System!"
	welcomeType    = "Welcome Message"

	suspendSubject = "Alert: You have Been Suspended"
	suspendType    = "Passenger Account Suspension"

	// Default PIN handed to new accounts, rotated on first login by the
	// auth service.
	defaultPin = "1234"
)

// Dispatcher renders the email/SMS bodies for a lifecycle event and enqueues
// one message per channel on the notification topic. Enqueueing happens off
// the request goroutine and failures are logged and dropped; the triggering
// request never observes them.
type Dispatcher struct {
	producer interfaces.ProducerHandler
	logger   *zap.Logger
	email    *template.Template
	sms      *texttemplate.Template
}

func NewDispatcher(producer interfaces.ProducerHandler, logger *zap.Logger) (*Dispatcher, error) {
	email, err := template.ParseFS(templateFS, "templates/email/*.html")
	if err != nil {
		return nil, err
	}
	sms, err := texttemplate.ParseFS(templateFS, "templates/sms/*.txt")
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		producer: producer,
		logger:   logger,
		email:    email,
		sms:      sms,
	}, nil
}

var _ interfaces.Notifier = (*Dispatcher)(nil)

func (d *Dispatcher) Welcome(p *domain.Passenger, bearer string) {
	data := map[string]string{
		"FirstName": p.FirstName,
		"Pin":       defaultPin,
	}

	emailBody, smsBody, err := d.render("welcome", data)
	if err != nil {
		d.logger.Error("render welcome notification failed", zap.Error(err))
		return
	}

	d.dispatch(dto.EventWelcome, p, welcomeSubject, welcomeType, emailBody, smsBody, bearer)
}

func (d *Dispatcher) Suspension(p *domain.Passenger, bearer string) {
	data := map[string]string{
		"Name": p.FirstName,
	}

	emailBody, smsBody, err := d.render("suspend", data)
	if err != nil {
		d.logger.Error("render suspension notification failed", zap.Error(err))
		return
	}

	d.dispatch(dto.EventSuspension, p, suspendSubject, suspendType, emailBody, smsBody, bearer)
}

func (d *Dispatcher) render(name string, data map[string]string) (string, string, error) {
	var emailBuf bytes.Buffer
	if err := d.email.ExecuteTemplate(&emailBuf, name+".html", data); err != nil {
		return "", "", err
	}
	var smsBuf bytes.Buffer
	if err := d.sms.ExecuteTemplate(&smsBuf, name+".txt", data); err != nil {
		return "", "", err
	}
	return emailBuf.String(), smsBuf.String(), nil
}

func (d *Dispatcher) dispatch(eventType string, p *domain.Passenger, subject, typeMessage, emailBody, smsBody, bearer string) {
	events := []dto.NotificationEvent{
		{
			Type:          eventType,
			Channel:       dto.ChannelEmail,
			Email:         p.Email,
			PhoneNumber:   p.PhoneNumber,
			Subject:       subject,
			TypeMessage:   typeMessage,
			Body:          emailBody,
			Authorization: bearer,
		},
		{
			Type:          eventType,
			Channel:       dto.ChannelSMS,
			Email:         p.Email,
			PhoneNumber:   p.PhoneNumber,
			Subject:       subject,
			TypeMessage:   typeMessage,
			Body:          smsBody,
			Authorization: bearer,
		},
	}

	go func() {
		for _, ev := range events {
			payload, err := json.Marshal(ev)
			if err != nil {
				d.logger.Error("marshal notification event failed", zap.String("type", ev.Type), zap.Error(err))
				continue
			}
			if err := d.producer.PublishMessage([]byte("notification."+ev.Channel), payload); err != nil {
				d.logger.Warn("notification publish failed",
					zap.String("type", ev.Type),
					zap.String("channel", ev.Channel),
					zap.Error(err))
			}
		}
	}()
}
