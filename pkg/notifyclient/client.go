// Package notifyclient holds the fire-and-forget callers the rest of the
// application uses to reach the dispatch endpoints. A notification failure
// never fails the caller: transport errors are logged and swallowed.
package notifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/worker"
)

const (
	smsPath      = "/functions/v1/send-sms"
	telegramPath = "/functions/v1/send-telegram"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	pool    *worker.Pool
	log     *zerolog.Logger
}

// New builds a client for the dispatch server at baseURL. apiKey, when set,
// is sent as a bearer token. pool is only used by NotifyTelegramAsync and must
// be started by the caller; without one each async call gets its own goroutine.
func New(baseURL, apiKey string, httpClient *http.Client, pool *worker.Pool, logger *zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	compLog := logger.With().Str("component", "NotifyClient").Logger()
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		pool:    pool,
		log:     &compLog,
	}
}

// SendSMS reports whether the server accepted and delivered the SMS.
// Any transport or decoding problem counts as not sent.
func (c *Client) SendSMS(ctx context.Context, req model.SMSRequest) bool {
	status, body, err := c.post(ctx, smsPath, req)
	if err != nil {
		c.log.Warn().Err(err).Str("event_type", req.EventType).Msg("sms request failed")
		return false
	}
	ok := status == http.StatusOK && gjson.Get(body, "success").Bool()
	if !ok {
		c.log.Warn().
			Int("status", status).
			Str("details", gjson.Get(body, "details").String()).
			Str("event_type", req.EventType).
			Msg("sms not sent")
	}
	return ok
}

// NotifyTelegram broadcasts message to the subscribers of event and returns
// once the server answered. Failures are logged only.
func (c *Client) NotifyTelegram(ctx context.Context, event, message string) {
	status, body, err := c.post(ctx, telegramPath, model.BroadcastRequest{EventType: event, Message: message})
	l := c.log.With().Str("event_type", event).Logger()
	switch {
	case err != nil:
		l.Warn().Err(err).Msg("telegram request failed")
	case status != http.StatusOK:
		l.Warn().Int("status", status).Str("error", gjson.Get(body, "error").String()).Msg("telegram not sent")
	default:
		l.Debug().Int64("sent", gjson.Get(body, "sent").Int()).Msg("telegram broadcast done")
	}
}

// NotifyTelegramAsync queues the broadcast on the worker pool and returns
// immediately. The queued call runs detached from ctx's cancellation. A full
// queue drops the notification; a pool that is not running is bypassed.
func (c *Client) NotifyTelegramAsync(ctx context.Context, event, message string) {
	detached := context.WithoutCancel(ctx)
	if c.pool == nil {
		go c.NotifyTelegram(detached, event, message)
		return
	}
	err := c.pool.Submit(func(context.Context) error {
		c.NotifyTelegram(detached, event, message)
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, worker.ErrNotStarted), errors.Is(err, worker.ErrStopped):
		c.log.Warn().Err(err).Str("event_type", event).Msg("worker pool not running; sending without it")
		go c.NotifyTelegram(detached, event, message)
	default:
		c.log.Warn().Err(err).Str("event_type", event).Msg("telegram notification dropped")
	}
}

func (c *Client) post(ctx context.Context, path string, payload any) (int, string, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return 0, "", fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, string(body), nil
}
