package sms

import (
	"context"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"

	"github.com/rs/zerolog"
)

var _ adapter.SMSGateway = (*NoopGateway)(nil)

// NoopGateway implements adapter.SMSGateway for local/dev runs.
// It logs messages instead of calling the provider and always reports success.
type NoopGateway struct {
	log *zerolog.Logger
}

func NewNoopGateway(logger *zerolog.Logger) *NoopGateway {
	compLog := logger.With().Str("component", "NoopSMSGateway").Logger()
	return &NoopGateway{log: &compLog}
}

func (g *NoopGateway) Name() string     { return "noop" }
func (g *NoopGateway) Configured() bool { return true }

func (g *NoopGateway) Send(ctx context.Context, to, text, sender string) model.SMSVerdict {
	g.log.Info().Str("to", to).Str("from", sender).Str("text", text).Msg("[noop-sms] message")
	return model.SMSVerdict{Success: true, RawResponse: "100"}
}
