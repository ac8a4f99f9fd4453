package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	t.Run("fills defaults and keeps credentials optional", func(t *testing.T) {
		p := writeConfig(t, "database:\n  url: postgres://localhost/test\n")

		cfg, err := LoadConfig(p, false)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.HTTP.Port != 8080 {
			t.Errorf("expected default port 8080, got %d", cfg.HTTP.Port)
		}
		if cfg.SMS.BaseURL != DefaultSMSBaseURL {
			t.Errorf("unexpected sms base url %q", cfg.SMS.BaseURL)
		}
		if cfg.SMS.DefaultSender != DefaultSMSSender || cfg.SMS.DefaultEvent != DefaultEventCategory {
			t.Errorf("unexpected sms defaults: %+v", cfg.SMS)
		}
		if cfg.SMS.Timeout != 15*time.Second {
			t.Errorf("expected 15s sms timeout, got %s", cfg.SMS.Timeout)
		}
		if cfg.Redis.TTL != time.Minute {
			t.Errorf("expected 1m redis ttl, got %s", cfg.Redis.TTL)
		}
		if len(cfg.HTTP.AllowedHeaders) != len(DefaultAllowedHeaders) {
			t.Errorf("expected default CORS allow-list, got %v", cfg.HTTP.AllowedHeaders)
		}
	})

	t.Run("environment overrides yaml secrets", func(t *testing.T) {
		p := writeConfig(t, "database:\n  url: postgres://localhost/test\nsms:\n  api_key: from-yaml\n")
		t.Setenv("SMS_API_KEY", "from-env")
		t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

		cfg, err := LoadConfig(p, true)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.SMS.APIKey != "from-env" {
			t.Errorf("expected env api key, got %q", cfg.SMS.APIKey)
		}
		if cfg.Telegram.BotToken != "123:abc" {
			t.Errorf("expected env bot token, got %q", cfg.Telegram.BotToken)
		}
		if !cfg.Runtime.Dev {
			t.Error("expected dev flag to be carried into runtime config")
		}
	})

	t.Run("database url is required", func(t *testing.T) {
		p := writeConfig(t, "log:\n  level: debug\n")
		t.Setenv("DATABASE_URL", "")

		if _, err := LoadConfig(p, false); err == nil {
			t.Fatal("expected error for missing database.url")
		}
	})

	t.Run("missing file falls back to env", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://env/db")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if cfg.Database.URL != "postgres://env/db" {
			t.Errorf("expected env database url, got %q", cfg.Database.URL)
		}
	})
}
