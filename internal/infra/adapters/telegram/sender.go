package telegram

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dvvvvv411/vic-automation-sub001/internal/config"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"
)

var _ adapter.TelegramSender = (*BotSender)(nil)

// BotSender posts plain messages through the Bot API. The client is built
// without the getMe round trip so an unconfigured or unreachable bot does not
// block startup; a bad token surfaces on the first send instead.
type BotSender struct {
	bot *tgbotapi.BotAPI
}

func NewBotSender(cfg *config.TelegramConfig) *BotSender {
	if cfg == nil || strings.TrimSpace(cfg.BotToken) == "" {
		return &BotSender{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	bot := &tgbotapi.BotAPI{
		Token:  cfg.BotToken,
		Client: &http.Client{Timeout: timeout},
		Buffer: 100,
	}
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	bot.SetAPIEndpoint(endpoint)
	return &BotSender{bot: bot}
}

func (s *BotSender) Configured() bool { return s.bot != nil }

// SendMessage sends text to a numeric chat id, or to a public channel when
// channelID is an @username.
func (s *BotSender) SendMessage(ctx context.Context, channelID, text string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg, err := newMessage(channelID, text)
	if err != nil {
		return err
	}
	_, err = s.bot.Send(msg)
	return err
}

func newMessage(channelID, text string) (tgbotapi.MessageConfig, error) {
	channelID = strings.TrimSpace(channelID)
	if strings.HasPrefix(channelID, "@") {
		return tgbotapi.NewMessageToChannel(channelID, text), nil
	}
	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, err
	}
	return tgbotapi.NewMessage(id, text), nil
}
