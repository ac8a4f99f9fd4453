package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/logging"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ SMSUseCase = (*smsUC)(nil)

type SMSUseCase interface {
	// Send validates req, dispatches it through the gateway and records the
	// attempt. Errors are returned only for validation and configuration
	// problems; a gateway failure is a failed verdict with a nil error.
	Send(ctx context.Context, req model.SMSRequest) (model.SMSVerdict, error)
}

type smsUC struct {
	gateway       adapter.SMSGateway
	audit         AuditLogger
	defaultSender string
	defaultEvent  string
	dev           bool
	log           *zerolog.Logger
}

func NewSMSUseCase(gateway adapter.SMSGateway, audit AuditLogger, defaultSender, defaultEvent string, dev bool, logger *zerolog.Logger) *smsUC {
	compLog := logger.With().Str("component", "SMSUseCase").Logger()
	return &smsUC{
		gateway:       gateway,
		audit:         audit,
		defaultSender: defaultSender,
		defaultEvent:  defaultEvent,
		dev:           dev,
		log:           &compLog,
	}
}

func (uc *smsUC) Send(ctx context.Context, req model.SMSRequest) (model.SMSVerdict, error) {
	defer logging.TraceDuration(uc.log, "SMSUseCase.Send")()

	if err := req.Validate(); err != nil {
		metrics.IncSMSDispatch("invalid")
		return model.SMSVerdict{}, fmt.Errorf("to and text are required: %w", err)
	}
	if !uc.gateway.Configured() {
		metrics.IncSMSDispatch("not_configured")
		uc.log.Error().Str("gateway", uc.gateway.Name()).Msg("sms gateway credentials missing")
		return model.SMSVerdict{}, fmt.Errorf("sms gateway credentials missing: %w", domain.ErrNotConfigured)
	}

	event := strings.TrimSpace(req.EventType)
	if event == "" {
		event = uc.defaultEvent
	}
	to := model.NormalizePhone(req.To)
	sender := model.TruncateSender(req.From, uc.defaultSender)

	// Neither the gateway call nor the audit write is cut short by the caller
	// going away: the gateway client timeout bounds the call, and the audit
	// row must carry the gateway's own answer.
	detached := context.WithoutCancel(ctx)
	verdict := uc.gateway.Send(detached, to, req.Text, sender)
	uc.audit.Record(detached, model.NewSMSLog(to, req.RecipientName, req.Text, event, verdict))

	l := logging.With(logging.WithEvent(ctx, event), uc.log)
	if verdict.Success {
		metrics.IncSMSDispatch(string(model.SMSStatusSent))
		l.Info().Str("to", logging.Redact(to, uc.dev)).Msg("sms sent")
	} else {
		metrics.IncSMSDispatch(string(model.SMSStatusFailed))
		l.Warn().Str("to", logging.Redact(to, uc.dev)).Str("response", verdict.RawResponse).Msg("sms failed")
	}
	return verdict, nil
}
