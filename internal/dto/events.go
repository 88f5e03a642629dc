package dto

const (
	EventWelcome    = "welcome"
	EventSuspension = "suspension"

	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// NotificationEvent is the unit of work handed to the notifier worker. One
// lifecycle event produces two of these, one per channel, delivered
// independently. Authorization is forwarded to the relay endpoints.
type NotificationEvent struct {
	Type          string `json:"type"`
	Channel       string `json:"channel"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Subject       string `json:"subject"`
	TypeMessage   string `json:"typeMessage"`
	Body          string `json:"body"`
	Authorization string `json:"authorization,omitempty"`
}
