// File: internal/infra/adapters/sms/gateway.go
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/ports/adapter"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/metrics"

	"github.com/rs/zerolog"
)

var _ adapter.SMSGateway = (*HTTPGateway)(nil)

// HTTPGateway implements adapter.SMSGateway against the seven.io style REST
// endpoint: POST {to, text, from} with the key in X-Api-Key.
type HTTPGateway struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *zerolog.Logger
}

func NewHTTPGateway(apiKey, baseURL string, timeout time.Duration, logger *zerolog.Logger) *HTTPGateway {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	compLog := logger.With().Str("component", "SMSGateway").Logger()
	return &HTTPGateway{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     &compLog,
	}
}

func (g *HTTPGateway) Name() string { return "seven" }

func (g *HTTPGateway) Configured() bool { return g.apiKey != "" }

func (g *HTTPGateway) Send(ctx context.Context, to, text, sender string) model.SMSVerdict {
	start := time.Now()
	raw, err := g.post(ctx, to, text, sender)
	if err != nil {
		g.log.Warn().Err(err).Msg("sms gateway call failed")
		metrics.ObserveGateway(g.Name(), time.Since(start), false)
		return model.SMSVerdict{Success: false, RawResponse: err.Error()}
	}

	ok := ParseGatewayVerdict(raw)
	metrics.ObserveGateway(g.Name(), time.Since(start), ok)
	if !ok {
		g.log.Warn().Str("response", raw).Msg("sms gateway rejected message")
	}
	return model.SMSVerdict{Success: ok, RawResponse: raw}
}

// post returns the full response body as text; the body is interpreted only
// after it has been read completely.
func (g *HTTPGateway) post(ctx context.Context, to, text, sender string) (string, error) {
	payload := map[string]string{
		"to":   to,
		"text": text,
		"from": sender,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode sms payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sms response: %w", err)
	}
	return string(body), nil
}
