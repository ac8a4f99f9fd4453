package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/logging"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Compile-time check
var _ BroadcastUseCase = (*broadcastUC)(nil)

type BroadcastUseCase interface {
	// Broadcast sends req.Message to every subscriber of req.EventType and
	// returns how many sends succeeded. Individual failures only lower the count.
	Broadcast(ctx context.Context, req model.BroadcastRequest) (model.BroadcastResult, error)
}

type broadcastUC struct {
	resolver SubscriberResolver
	bot      adapter.TelegramSender
	log      *zerolog.Logger
}

func NewBroadcastUseCase(resolver SubscriberResolver, bot adapter.TelegramSender, logger *zerolog.Logger) *broadcastUC {
	compLog := logger.With().Str("component", "BroadcastUseCase").Logger()
	return &broadcastUC{
		resolver: resolver,
		bot:      bot,
		log:      &compLog,
	}
}

func (uc *broadcastUC) Broadcast(ctx context.Context, req model.BroadcastRequest) (model.BroadcastResult, error) {
	defer logging.TraceDuration(uc.log, "BroadcastUseCase.Broadcast")()

	if err := req.Validate(); err != nil {
		return model.BroadcastResult{}, fmt.Errorf("event_type and message are required: %w", err)
	}
	if !uc.bot.Configured() {
		uc.log.Error().Msg("telegram bot token missing")
		return model.BroadcastResult{}, fmt.Errorf("telegram bot token missing: %w", domain.ErrNotConfigured)
	}

	ctx = logging.WithEvent(ctx, req.EventType)
	l := logging.With(ctx, uc.log)

	ids, err := uc.resolver.Resolve(ctx, req.EventType)
	if err != nil {
		l.Error().Err(err).Msg("failed to resolve telegram subscribers")
		return model.BroadcastResult{}, err
	}
	if len(ids) == 0 {
		l.Info().Msg("no telegram subscribers for event")
		return model.BroadcastResult{Sent: 0}, nil
	}

	// Every send settles on its own; the group only joins them.
	var sent atomic.Int64
	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if err := uc.sendOne(ctx, id, req.Message); err != nil {
				l.Warn().Err(err).Str("chat", id).Msg("failed to send telegram message")
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	n := int(sent.Load())
	metrics.ObserveBroadcast(n, len(ids)-n)
	l.Info().Int("subscribers", len(ids)).Int("sent", n).Msg("telegram broadcast finished")
	return model.BroadcastResult{Sent: n}, nil
}

func (uc *broadcastUC) sendOne(ctx context.Context, channelID, text string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while sending: %v", rec)
		}
	}()
	return uc.bot.SendMessage(ctx, channelID, text)
}
