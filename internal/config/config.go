// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type HTTPConfig struct {
	Port           int           `yaml:"port"`
	AllowedHeaders []string      `yaml:"allowed_headers"` // CORS allow-list answered on pre-flight
	JWTSecret      string        `yaml:"jwt_secret"`      // empty disables the bearer guard
	ReadTimeout    time.Duration `yaml:"read_timeout"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	MaxConns int32  `yaml:"max_conns"`
}

type RedisConfig struct {
	URL      string        `yaml:"url"` // empty disables the subscriber cache
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type SMSConfig struct {
	APIKey        string        `yaml:"api_key"`
	BaseURL       string        `yaml:"base_url"`
	DefaultSender string        `yaml:"default_sender"`
	DefaultEvent  string        `yaml:"default_event"`
	Timeout       time.Duration `yaml:"timeout"`
}

type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token"`
	APIEndpoint string        `yaml:"api_endpoint"` // tgbotapi endpoint format, "%s" token then "%s" method
	Timeout     time.Duration `yaml:"timeout"`
}

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	SMS      SMSConfig      `yaml:"sms"`
	Telegram TelegramConfig `yaml:"telegram"`

	Runtime RuntimeConfig `yaml:"-"`
}

const (
	DefaultSMSBaseURL     = "https://gateway.seven.io/api/sms"
	DefaultSMSSender      = "Notify"
	DefaultEventCategory  = "general"
	DefaultTelegramAPIURL = "https://api.telegram.org/bot%s/%s"
)

var DefaultAllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// LoadConfig reads the YAML file at path, applies environment overrides
// (a .env file in the working directory is honoured) and fills defaults.
// A missing file is tolerated so the service can run from env alone.
func LoadConfig(path string, dev bool) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	// Gateway and bot credentials are checked per request, not here.
	if cfg.Database.URL == "" {
		return nil, errors.New("database.url is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	override := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	override(&cfg.Database.URL, "DATABASE_URL")
	override(&cfg.Redis.URL, "REDIS_URL")
	override(&cfg.SMS.APIKey, "SMS_API_KEY")
	override(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	override(&cfg.HTTP.JWTSecret, "JWT_SECRET")
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if len(cfg.HTTP.AllowedHeaders) == 0 {
		cfg.HTTP.AllowedHeaders = DefaultAllowedHeaders
	}
	cfg.HTTP.ReadTimeout = normalizeTTL(cfg.HTTP.ReadTimeout, 15*time.Second)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Database.MaxConns <= 0 {
		cfg.Database.MaxConns = 10
	}
	cfg.Redis.TTL = normalizeTTL(cfg.Redis.TTL, time.Minute)

	if cfg.SMS.BaseURL == "" {
		cfg.SMS.BaseURL = DefaultSMSBaseURL
	}
	if cfg.SMS.DefaultSender == "" {
		cfg.SMS.DefaultSender = DefaultSMSSender
	}
	if cfg.SMS.DefaultEvent == "" {
		cfg.SMS.DefaultEvent = DefaultEventCategory
	}
	cfg.SMS.Timeout = normalizeTTL(cfg.SMS.Timeout, 15*time.Second)

	if cfg.Telegram.APIEndpoint == "" {
		cfg.Telegram.APIEndpoint = DefaultTelegramAPIURL
	}
	cfg.Telegram.Timeout = normalizeTTL(cfg.Telegram.Timeout, 15*time.Second)
}

func normalizeTTL(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
