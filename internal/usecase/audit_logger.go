package usecase

import (
	"context"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/logging"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ AuditLogger = (*auditLogger)(nil)

// AuditLogger persists SMS attempts. Record is best-effort: a failed write is
// reported in diagnostics only and never changes the dispatch outcome.
type AuditLogger interface {
	Record(ctx context.Context, entry *model.SMSLog)
}

type auditLogger struct {
	logs repository.SMSLogRepository
	log  *zerolog.Logger
}

func NewAuditLogger(logs repository.SMSLogRepository, logger *zerolog.Logger) *auditLogger {
	compLog := logger.With().Str("component", "AuditLogger").Logger()
	return &auditLogger{logs: logs, log: &compLog}
}

func (a *auditLogger) Record(ctx context.Context, entry *model.SMSLog) {
	if err := a.logs.Save(ctx, repository.NoTX, entry); err != nil {
		metrics.IncAuditWriteFailure()
		logging.With(ctx, a.log).Error().Err(err).
			Str("audit_id", entry.ID).
			Str("status", string(entry.Status)).
			Msg("failed to write sms audit record")
	}
}
