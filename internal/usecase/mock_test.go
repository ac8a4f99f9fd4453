package usecase_test

import (
	"context"
	"io"
	"sync"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"

	"github.com/rs/zerolog"
)

// ---- Mock SMSGateway ----

type MockSMSGateway struct {
	mu    sync.Mutex
	Calls []struct{ To, Text, Sender string }

	NotConfigured bool
	SendFunc      func(ctx context.Context, to, text, sender string) model.SMSVerdict
}

var _ adapter.SMSGateway = (*MockSMSGateway)(nil)

func (m *MockSMSGateway) Name() string     { return "mock" }
func (m *MockSMSGateway) Configured() bool { return !m.NotConfigured }

func (m *MockSMSGateway) Send(ctx context.Context, to, text, sender string) model.SMSVerdict {
	m.mu.Lock()
	m.Calls = append(m.Calls, struct{ To, Text, Sender string }{to, text, sender})
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, text, sender)
	}
	return model.SMSVerdict{Success: true, RawResponse: "100"}
}

// ---- Mock SMSLogRepository ----

type MockSMSLogRepo struct {
	mu      sync.Mutex
	Entries []*model.SMSLog

	SaveFunc func(ctx context.Context, tx repository.Tx, entry *model.SMSLog) error
}

var _ repository.SMSLogRepository = (*MockSMSLogRepo)(nil)

func (m *MockSMSLogRepo) Save(ctx context.Context, tx repository.Tx, entry *model.SMSLog) error {
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, tx, entry); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

// ---- Mock SubscriberRepository ----

type MockSubscriberRepo struct {
	mu    sync.Mutex
	Calls int

	ListByEventFunc func(ctx context.Context, tx repository.Tx, event string) ([]*model.Subscriber, error)
}

var _ repository.SubscriberRepository = (*MockSubscriberRepo)(nil)

func (m *MockSubscriberRepo) ListByEvent(ctx context.Context, tx repository.Tx, event string) ([]*model.Subscriber, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.ListByEventFunc != nil {
		return m.ListByEventFunc(ctx, tx, event)
	}
	return nil, nil
}

// ---- Mock TelegramSender ----

type MockTelegramSender struct {
	mu   sync.Mutex
	Sent []string // channel ids

	NotConfigured   bool
	SendMessageFunc func(ctx context.Context, channelID, text string) error
}

var _ adapter.TelegramSender = (*MockTelegramSender)(nil)

func (m *MockTelegramSender) Configured() bool { return !m.NotConfigured }

func (m *MockTelegramSender) SendMessage(ctx context.Context, channelID, text string) error {
	if m.SendMessageFunc != nil {
		if err := m.SendMessageFunc(ctx, channelID, text); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, channelID)
	return nil
}

func (m *MockTelegramSender) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// newTestLogger creates a silent zerolog.Logger for use in tests.
// It writes to io.Discard to prevent logs from cluttering test output.
func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

func subscribers(event string, ids ...string) []*model.Subscriber {
	out := make([]*model.Subscriber, 0, len(ids))
	for _, id := range ids {
		out = append(out, &model.Subscriber{ChannelID: id, Events: []string{event}})
	}
	return out
}
