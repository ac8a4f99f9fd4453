// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvvvvv411/vic-automation-sub001/internal/config"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/repository"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/adapters/sms"
	tele "github.com/dvvvvv411/vic-automation-sub001/internal/infra/adapters/telegram"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/api"
	pg "github.com/dvvvvv411/vic-automation-sub001/internal/infra/db/postgres"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/logging"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/metrics"
	red "github.com/dvvvvv411/vic-automation-sub001/internal/infra/redis"
	"github.com/dvvvvv411/vic-automation-sub001/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (noop adapters when credentials are missing)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Warn().Msg("[DEV MODE] enabled")
	}

	// ---- Metrics ----
	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()
	go pg.ReportPoolStats(ctx, pool, 15*time.Second)

	// ---- Repositories ----
	var subscriberRepo repository.SubscriberRepository = pg.NewPostgresSubscriberRepo(pool)
	smsLogRepo := pg.NewSMSLogRepo(pool)

	// ---- Redis (optional subscriber cache) ----
	if cfg.Redis.URL != "" {
		redisClient, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis")
		}
		defer redisClient.Close()
		subscriberRepo = pg.NewSubscriberRepoCacheDecorator(subscriberRepo, redisClient, cfg.Redis.TTL, logger)
		logger.Info().Dur("ttl", cfg.Redis.TTL).Msg("subscriber cache enabled")
	}

	// ---- Adapters ----
	var gateway adapter.SMSGateway = sms.NewHTTPGateway(cfg.SMS.APIKey, cfg.SMS.BaseURL, cfg.SMS.Timeout, logger)
	if cfg.Runtime.Dev && cfg.SMS.APIKey == "" {
		gateway = sms.NewNoopGateway(logger)
	}
	var bot adapter.TelegramSender = tele.NewBotSender(&cfg.Telegram)
	if cfg.Runtime.Dev && cfg.Telegram.BotToken == "" {
		bot = tele.NewNoopSender(logger)
	}
	if !gateway.Configured() {
		logger.Warn().Msg("sms api key missing; sms dispatch will answer with a configuration error")
	}
	if !bot.Configured() {
		logger.Warn().Msg("telegram bot token missing; telegram dispatch will answer with a configuration error")
	}

	// ---- Use cases ----
	audit := usecase.NewAuditLogger(smsLogRepo, logger)
	smsUC := usecase.NewSMSUseCase(gateway, audit, cfg.SMS.DefaultSender, cfg.SMS.DefaultEvent, cfg.Runtime.Dev, logger)
	broadcastUC := usecase.NewBroadcastUseCase(usecase.NewSubscriberResolver(subscriberRepo), bot, logger)

	// ---- HTTP server ----
	guard := api.NewBearerGuard(cfg.HTTP.JWTSecret, logger)
	srv := api.NewServer(smsUC, broadcastUC, guard, cfg.HTTP.AllowedHeaders, logger)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           srv.Router(),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	}
	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Bool("auth", guard.Enabled()).
			Str("version", version).
			Msg("dispatch server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	// ---- Graceful shutdown ----
	<-ctx.Done()
	logger.Info().Msg("shutdown requested")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}
