package usecase

import (
	"context"
	"fmt"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"
)

// Compile-time check
var _ SubscriberResolver = (*subscriberResolver)(nil)

type SubscriberResolver interface {
	// Resolve returns the channel ids subscribed to event, each at most once.
	Resolve(ctx context.Context, event string) ([]string, error)
}

type subscriberResolver struct {
	subs repository.SubscriberRepository
}

func NewSubscriberResolver(subs repository.SubscriberRepository) *subscriberResolver {
	return &subscriberResolver{subs: subs}
}

func (r *subscriberResolver) Resolve(ctx context.Context, event string) ([]string, error) {
	items, err := r.subs.ListByEvent(ctx, repository.NoTX, event)
	if err != nil {
		return nil, fmt.Errorf("resolve subscribers for %q: %w", event, err)
	}
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, s := range items {
		if s == nil || s.ChannelID == "" || !s.SubscribedTo(event) {
			continue
		}
		if _, dup := seen[s.ChannelID]; dup {
			continue
		}
		seen[s.ChannelID] = struct{}{}
		ids = append(ids, s.ChannelID)
	}
	return ids, nil
}
