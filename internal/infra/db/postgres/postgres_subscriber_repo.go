package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"
)

var _ repository.SubscriberRepository = (*PostgresSubscriberRepo)(nil)

type PostgresSubscriberRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresSubscriberRepo(pool *pgxpool.Pool) *PostgresSubscriberRepo {
	return &PostgresSubscriberRepo{pool: pool}
}

func (r *PostgresSubscriberRepo) ListByEvent(ctx context.Context, tx repository.Tx, event string) ([]*model.Subscriber, error) {
	// events is a text[]; membership, not equality.
	const q = `
SELECT chat_id, events
  FROM telegram_subscribers
 WHERE $1 = ANY(events)
 ORDER BY chat_id;`
	rows, err := queryRows(ctx, r.pool, tx, q, event)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Subscriber, 0)
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ChannelID, &s.Events); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
