// File: cmd/notify/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/pkg/notifyclient"
)

const usage = `usage:
  notify [-server URL] [-token JWT] sms -to NUMBER -text TEXT [-event TYPE] [-name NAME] [-from SENDER]
  notify [-server URL] [-token JWT] telegram -event TYPE -message TEXT`

func main() {
	_ = godotenv.Load()

	server := flag.String("server", envOr("NOTIFY_SERVER", "http://localhost:8080"), "dispatch server base url")
	token := flag.String("token", os.Getenv("NOTIFY_TOKEN"), "bearer token for the dispatch server")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	client := notifyclient.New(*server, *token, nil, nil, &logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch cmd, args := flag.Arg(0), flag.Args()[1:]; cmd {
	case "sms":
		fs := flag.NewFlagSet("sms", flag.ExitOnError)
		to := fs.String("to", "", "recipient phone number")
		text := fs.String("text", "", "message text")
		event := fs.String("event", "", "event category")
		name := fs.String("name", "", "recipient display name")
		from := fs.String("from", "", "sender id (max 11 chars)")
		_ = fs.Parse(args)

		ok := client.SendSMS(ctx, model.SMSRequest{
			To:            *to,
			Text:          *text,
			EventType:     *event,
			RecipientName: *name,
			From:          *from,
		})
		if !ok {
			logger.Error().Msg("sms not sent")
			os.Exit(1)
		}
		logger.Info().Msg("sms sent")

	case "telegram":
		fs := flag.NewFlagSet("telegram", flag.ExitOnError)
		event := fs.String("event", "", "event category")
		message := fs.String("message", "", "message text")
		_ = fs.Parse(args)

		client.NotifyTelegram(ctx, *event, *message)
		logger.Info().Str("event_type", *event).Msg("telegram broadcast requested")

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
