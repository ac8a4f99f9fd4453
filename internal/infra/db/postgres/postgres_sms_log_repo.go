package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"
)

var _ repository.SMSLogRepository = (*smsLogRepo)(nil)

type smsLogRepo struct {
	pool *pgxpool.Pool
}

func NewSMSLogRepo(pool *pgxpool.Pool) repository.SMSLogRepository {
	return &smsLogRepo{pool: pool}
}

func (r *smsLogRepo) Save(ctx context.Context, tx repository.Tx, e *model.SMSLog) error {
	if e == nil {
		return domain.ErrInvalidArgument
	}
	const q = `
INSERT INTO sms_logs (id, recipient, recipient_name, message, event_type, status, error_message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := execSQL(ctx, r.pool, tx, q,
		e.ID, e.Recipient, e.RecipientName, e.Message, e.EventType, string(e.Status), e.ErrorMessage, e.CreatedAt)
	return err
}
