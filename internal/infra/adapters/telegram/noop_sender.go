package telegram

import (
	"context"
	"time"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"

	"github.com/rs/zerolog"
)

var _ adapter.TelegramSender = (*NoopSender)(nil)

// NoopSender implements adapter.TelegramSender for local/dev testing.
// It logs messages instead of sending real Telegram messages.
type NoopSender struct {
	log *zerolog.Logger
}

func NewNoopSender(logger *zerolog.Logger) *NoopSender {
	compLog := logger.With().Str("component", "NoopTelegram").Logger()
	return &NoopSender{log: &compLog}
}

func (s *NoopSender) Configured() bool { return true }

// SendMessage logs the message and simulates small delay.
func (s *NoopSender) SendMessage(ctx context.Context, channelID, text string) error {
	select {
	case <-time.After(100 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	s.log.Info().Str("chat", channelID).Str("text", text).Msg("[noop-telegram] message")
	return nil
}
