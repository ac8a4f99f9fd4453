package repository

import (
	"context"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
)

// -----------------------------
// SMS attempt log
// -----------------------------

type SMSLogRepository interface {
	// Save appends one attempt. Entries are never updated or deleted.
	Save(ctx context.Context, tx Tx, entry *model.SMSLog) error
}
