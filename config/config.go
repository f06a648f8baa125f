package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig      `json:"server"`
	Store       StoreConfig       `json:"store"`
	Preferences PreferencesConfig `json:"preferences"`
	Remote      RemoteConfig      `json:"remote"`
	Sync        SyncConfig        `json:"sync"`
	NATS        NATSConfig        `json:"nats"`
	Logging     LoggingConfig     `json:"logging"`
	OTel        OTelConfig        `json:"otel"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9400"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	SSEInterval  time.Duration `json:"sse_interval" env:"SERVER_SSE_INTERVAL" default:"15s"` // keep-alive comment period
}

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver         string `json:"driver" env:"STORE_DRIVER" default:"sqlite"`
	SQLitePath     string `json:"sqlite_path" env:"SQLITE_PATH" default:"update.db"`
	DatabaseURL    string `json:"-" env:"DATABASE_URL"`
	MaxConnections int    `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
}

const (
	PreferencesBackendStore = "store"
	PreferencesBackendRedis = "redis"
)

type PreferencesConfig struct {
	Backend  string `json:"backend" env:"PREFERENCES_BACKEND" default:"store"`
	RedisURL string `json:"-" env:"REDIS_URL" default:"redis://localhost:6379/0"`
	Key      string `json:"key" env:"PREFERENCES_KEY" default:"update-sync:user-preferences"`
	// how often serve re-reads the record to pick up writes from other processes
	PollInterval time.Duration `json:"poll_interval" env:"PREFERENCES_POLL_INTERVAL" default:"2s"`
}

const (
	RemoteModeDemo = "demo"
	RemoteModeHTTP = "http"
)

type RemoteConfig struct {
	Mode           string        `json:"mode" env:"REMOTE_MODE" default:"demo"`
	BaseURL        string        `json:"base_url" env:"REMOTE_BASE_URL"`
	Timeout        time.Duration `json:"timeout" env:"REMOTE_TIMEOUT" default:"30s"`
	RateLimitRPS   float64       `json:"rate_limit_rps" env:"REMOTE_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int           `json:"rate_limit_burst" env:"REMOTE_RATE_LIMIT_BURST" default:"10"`
}

type SyncConfig struct {
	Interval    time.Duration `json:"interval" env:"SYNC_INTERVAL" default:"6h"`
	Timeout     time.Duration `json:"timeout" env:"SYNC_TIMEOUT" default:"5m"`
	MaxAttempts int           `json:"max_attempts" env:"SYNC_MAX_ATTEMPTS" default:"5"`
	BaseDelay   time.Duration `json:"base_delay" env:"SYNC_BASE_DELAY" default:"5s"`
	MaxDelay    time.Duration `json:"max_delay" env:"SYNC_MAX_DELAY" default:"5m"`
}

type NATSConfig struct {
	Enabled       bool   `json:"enabled" env:"NATS_ENABLED" default:"false"`
	URL           string `json:"url" env:"NATS_URL" default:"nats://localhost:4222"`
	SyncSubject   string `json:"sync_subject" env:"NATS_SYNC_SUBJECT" default:"update.sync.requested"`
	NotifySubject string `json:"notify_subject" env:"NATS_NOTIFY_SUBJECT" default:"update.news.new"`
	Durable       string `json:"durable" env:"NATS_DURABLE" default:"update-sync"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type OTelConfig struct {
	Enabled     bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"update-sync"`
	Endpoint    string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values. A .env file in the working directory is
// read first when present; real environment variables take precedence.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
