package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/metrics"
	red "github.com/dvvvvv411/vic-automation-sub001/internal/infra/redis"

	"github.com/rs/zerolog"
)

var _ repository.SubscriberRepository = (*subscriberRepoCacheDecorator)(nil)

// subscriberRepoCacheDecorator caches the subscriber set per event category
// for a short TTL. The store stays authoritative: any cache error falls
// through to the inner repository.
type subscriberRepoCacheDecorator struct {
	inner repository.SubscriberRepository
	cache red.RedisClient
	ttl   time.Duration
	log   *zerolog.Logger
}

func NewSubscriberRepoCacheDecorator(inner repository.SubscriberRepository, cache red.RedisClient, ttl time.Duration, logger *zerolog.Logger) repository.SubscriberRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	compLog := logger.With().Str("component", "SubscriberCache").Logger()
	return &subscriberRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl, log: &compLog}
}

func (d *subscriberRepoCacheDecorator) ListByEvent(ctx context.Context, tx repository.Tx, event string) ([]*model.Subscriber, error) {
	key := red.SubscribersKey(event)
	val, err := d.cache.Get(ctx, key)
	if err == nil {
		var subs []*model.Subscriber
		if json.Unmarshal([]byte(val), &subs) == nil {
			metrics.IncCacheRequest("subscribers", "hit")
			return subs, nil
		}
	} else if !errors.Is(err, red.ErrNil) {
		d.log.Warn().Err(err).Str("key", key).Msg("subscriber cache read failed")
	}

	metrics.IncCacheRequest("subscribers", "miss")
	subs, err := d.inner.ListByEvent(ctx, tx, event)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(subs); err == nil {
		if err := d.cache.Set(ctx, key, b, d.ttl); err != nil {
			d.log.Warn().Err(err).Str("key", key).Msg("subscriber cache write failed")
		}
	}
	return subs, nil
}
