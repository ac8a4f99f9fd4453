//go:build !integration

package postgres

import (
	"context"
	"io"
	"time"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"
	red "github.com/dvvvvv411/vic-automation-sub001/internal/infra/redis"

	"github.com/rs/zerolog"
)

// --- Mocks for Cache Decorator Tests ---

// mockInnerSubscriberRepo mocks the database repository that the decorator wraps.
type mockInnerSubscriberRepo struct {
	ListByEventFunc func(ctx context.Context, tx repository.Tx, event string) ([]*model.Subscriber, error)
	calls           int
}

func (m *mockInnerSubscriberRepo) ListByEvent(ctx context.Context, tx repository.Tx, event string) ([]*model.Subscriber, error) {
	m.calls++
	return m.ListByEventFunc(ctx, tx, event)
}

// mockRedisClient mocks our Redis client wrapper.
type mockRedisClient struct {
	GetFunc   func(ctx context.Context, key string) (string, error)
	SetFunc   func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DelFunc   func(ctx context.Context, keys ...string) error
	PingFunc  func(ctx context.Context) error
	CloseFunc func() error
}

var _ red.RedisClient = &mockRedisClient{}

func (m *mockRedisClient) Get(ctx context.Context, key string) (string, error) {
	return m.GetFunc(ctx, key)
}
func (m *mockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.SetFunc(ctx, key, value, expiration)
}
func (m *mockRedisClient) Del(ctx context.Context, keys ...string) error {
	return m.DelFunc(ctx, keys...)
}
func (m *mockRedisClient) Ping(ctx context.Context) error { return m.PingFunc(ctx) }
func (m *mockRedisClient) Close() error                   { return m.CloseFunc() }

func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}
