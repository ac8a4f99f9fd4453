package model

import (
	"strings"
	"time"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain"

	"github.com/oklog/ulid/v2"
)

// MaxSenderLength is the gateway's sender-id limit, counted in characters.
const MaxSenderLength = 11

// SMSRequest is one outbound SMS as submitted by a caller.
type SMSRequest struct {
	To            string `json:"to"`
	Text          string `json:"text"`
	EventType     string `json:"event_type,omitempty"`
	RecipientName string `json:"recipient_name,omitempty"`
	From          string `json:"from,omitempty"`
}

// Validate checks the required fields only; it does not touch the phone format.
func (r SMSRequest) Validate() error {
	if strings.TrimSpace(r.To) == "" || strings.TrimSpace(r.Text) == "" {
		return domain.ErrInvalidArgument
	}
	return nil
}

// BroadcastRequest targets every Telegram subscriber of EventType.
type BroadcastRequest struct {
	EventType string `json:"event_type"`
	Message   string `json:"message"`
}

func (r BroadcastRequest) Validate() error {
	if strings.TrimSpace(r.EventType) == "" || strings.TrimSpace(r.Message) == "" {
		return domain.ErrInvalidArgument
	}
	return nil
}

// SMSVerdict is the gateway adapter's classification of one send.
type SMSVerdict struct {
	Success     bool
	RawResponse string
}

// BroadcastResult only carries the number of subscribers reached.
type BroadcastResult struct {
	Sent int `json:"sent"`
}

// TruncateSender cuts name to MaxSenderLength characters, falling back to def when blank.
func TruncateSender(name, def string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = def
	}
	r := []rune(name)
	if len(r) > MaxSenderLength {
		r = r[:MaxSenderLength]
	}
	return string(r)
}

// Subscriber is a Telegram chat subscribed to one or more event categories.
type Subscriber struct {
	ChannelID string   `json:"channel_id"`
	Events    []string `json:"events"`
}

func (s Subscriber) SubscribedTo(event string) bool {
	for _, e := range s.Events {
		if e == event {
			return true
		}
	}
	return false
}

type SMSStatus string

const (
	SMSStatusSent   SMSStatus = "sent"
	SMSStatusFailed SMSStatus = "failed"
)

// SMSLog is the append-only audit entry for one SMS attempt.
// RecipientName and ErrorMessage are nil when absent.
type SMSLog struct {
	ID            string
	Recipient     string
	RecipientName *string
	Message       string
	EventType     string
	Status        SMSStatus
	ErrorMessage  *string
	CreatedAt     time.Time
}

// NewSMSLog builds the audit entry for a finished attempt. The raw gateway
// response is kept as error detail only when the attempt failed.
func NewSMSLog(recipient, recipientName, message, eventType string, verdict SMSVerdict) *SMSLog {
	now := time.Now().UTC()
	l := &SMSLog{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Recipient: recipient,
		Message:   message,
		EventType: eventType,
		Status:    SMSStatusSent,
		CreatedAt: now,
	}
	if name := strings.TrimSpace(recipientName); name != "" {
		l.RecipientName = &name
	}
	if !verdict.Success {
		l.Status = SMSStatusFailed
		detail := verdict.RawResponse
		l.ErrorMessage = &detail
	}
	return l
}
