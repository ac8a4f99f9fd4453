// File: internal/domain/ports/adapter/telegram.go
package adapter

import "context"

type TelegramSender interface {
	Configured() bool
	// SendMessage posts text to one chat; channelID is a numeric chat id or an @channel username.
	SendMessage(ctx context.Context, channelID, text string) error
}
