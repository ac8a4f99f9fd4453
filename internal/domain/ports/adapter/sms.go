package adapter

import (
	"context"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
)

// SMSGateway is the hex port for SMS providers.
type SMSGateway interface {
	Name() string
	// Configured reports whether credentials are present. Send must not be
	// called on an unconfigured gateway.
	Configured() bool
	// Send delivers one message to an already normalized number. It never
	// returns an error: transport and parse failures become a failed verdict.
	Send(ctx context.Context, to, text, sender string) model.SMSVerdict
}
