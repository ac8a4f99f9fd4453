package notifyclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvvvvv411/vic-automation-sub001/internal/domain/model"
	"github.com/dvvvvv411/vic-automation-sub001/internal/infra/worker"
	"github.com/dvvvvv411/vic-automation-sub001/pkg/notifyclient"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard)
	return &logger
}

func TestSendSMS(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got model.SMSRequest
		var auth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/functions/v1/send-sms" || r.Method != http.MethodPost {
				t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			}
			auth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		c := notifyclient.New(srv.URL+"/", "key", srv.Client(), nil, newTestLogger())
		ok := c.SendSMS(context.Background(), model.SMSRequest{To: "0171 2345678", Text: "Hallo", EventType: "contract_sent"})
		if !ok {
			t.Fatal("expected success")
		}
		if got.To != "0171 2345678" || got.EventType != "contract_sent" {
			t.Errorf("unexpected payload %+v", got)
		}
		if auth != "Bearer key" {
			t.Errorf("expected bearer header, got %q", auth)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"error":"sms dispatch failed","details":"902"}`))
		}))
		defer srv.Close()

		c := notifyclient.New(srv.URL, "", srv.Client(), nil, newTestLogger())
		if c.SendSMS(context.Background(), model.SMSRequest{To: "1", Text: "x"}) {
			t.Error("expected failure")
		}
	})

	t.Run("transport error is swallowed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		c := notifyclient.New(url, "", nil, nil, newTestLogger())
		if c.SendSMS(context.Background(), model.SMSRequest{To: "1", Text: "x"}) {
			t.Error("expected failure on closed server")
		}
	})

	t.Run("non-json body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		}))
		defer srv.Close()

		c := notifyclient.New(srv.URL, "", srv.Client(), nil, newTestLogger())
		if c.SendSMS(context.Background(), model.SMSRequest{To: "1", Text: "x"}) {
			t.Error("expected failure on garbage body")
		}
	})
}

func TestNotifyTelegram(t *testing.T) {
	var calls atomic.Int32
	var got model.BroadcastRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/functions/v1/send-telegram" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"sent":2}`))
	}))
	defer srv.Close()

	c := notifyclient.New(srv.URL, "", srv.Client(), nil, newTestLogger())
	c.NotifyTelegram(context.Background(), "contract_signed", "signed")

	if calls.Load() != 1 {
		t.Fatalf("expected one call, got %d", calls.Load())
	}
	if got.EventType != "contract_signed" || got.Message != "signed" {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestNotifyTelegramAsyncDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"sent":1}`))
		close(done)
	}))
	defer srv.Close()

	pool := worker.NewPool(1, newTestLogger())
	pool.Start(context.Background())
	defer pool.Stop()

	c := notifyclient.New(srv.URL, "", srv.Client(), pool, newTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	c.NotifyTelegramAsync(ctx, "x", "y")
	if time.Since(start) > 100*time.Millisecond {
		t.Fatal("async notify must return immediately")
	}
	cancel()
	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued broadcast never reached the server")
	}
}

func TestNotifyTelegramAsyncWithIdlePool(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sent":1}`))
		close(done)
	}))
	defer srv.Close()

	pool := worker.NewPool(1, newTestLogger()) // never started
	c := notifyclient.New(srv.URL, "", srv.Client(), pool, newTestLogger())
	c.NotifyTelegramAsync(context.Background(), "x", "y")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast was stranded in a pool that never started")
	}
}
