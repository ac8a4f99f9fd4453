package repository

import (
	"context"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
)

// -----------------------------
// Telegram subscribers
// -----------------------------

type SubscriberRepository interface {
	// ListByEvent returns every subscriber whose event set contains event.
	// An empty result is not an error.
	ListByEvent(ctx context.Context, tx Tx, event string) ([]*model.Subscriber, error)
}
