package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateStoreConfig(&config.Store); err != nil {
		return fmt.Errorf("store config validation failed: %w", err)
	}

	if err := validatePreferencesConfig(&config.Preferences); err != nil {
		return fmt.Errorf("preferences config validation failed: %w", err)
	}

	if err := validateRemoteConfig(&config.Remote); err != nil {
		return fmt.Errorf("remote config validation failed: %w", err)
	}

	if err := validateSyncConfig(&config.Sync); err != nil {
		return fmt.Errorf("sync config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if config.OTel.SampleRatio < 0 || config.OTel.SampleRatio > 1 {
		return fmt.Errorf("otel config validation failed: sample ratio must be within [0, 1], got %v", config.OTel.SampleRatio)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	return nil
}

func validateStoreConfig(config *StoreConfig) error {
	switch config.Driver {
	case StoreDriverSQLite:
		if config.SQLitePath == "" {
			return fmt.Errorf("sqlite path must not be empty")
		}
	case StoreDriverPostgres:
		if config.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", config.Driver)
	}

	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	return nil
}

func validatePreferencesConfig(config *PreferencesConfig) error {
	switch config.Backend {
	case PreferencesBackendStore:
	case PreferencesBackendRedis:
		if config.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown preferences backend %q", config.Backend)
	}

	if config.Key == "" {
		return fmt.Errorf("preferences key must not be empty")
	}

	if config.PollInterval <= 0 {
		return fmt.Errorf("preferences poll interval must be positive")
	}

	return nil
}

func validateRemoteConfig(config *RemoteConfig) error {
	switch config.Mode {
	case RemoteModeDemo:
	case RemoteModeHTTP:
		if config.BaseURL == "" {
			return fmt.Errorf("REMOTE_BASE_URL is required in http mode")
		}
		if !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
			return fmt.Errorf("remote base url must be http(s), got %q", config.BaseURL)
		}
	default:
		return fmt.Errorf("unknown remote mode %q", config.Mode)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("remote timeout must be positive, got %v", config.Timeout)
	}

	if config.RateLimitRPS <= 0 || config.RateLimitBurst < 1 {
		return fmt.Errorf("remote rate limit must be positive, got rps=%v burst=%d", config.RateLimitRPS, config.RateLimitBurst)
	}

	return nil
}

func validateSyncConfig(config *SyncConfig) error {
	if config.Interval <= 0 {
		return fmt.Errorf("sync interval must be positive, got %v", config.Interval)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("sync timeout must be positive, got %v", config.Timeout)
	}

	if config.MaxAttempts < 1 {
		return fmt.Errorf("sync max attempts must be at least 1, got %d", config.MaxAttempts)
	}

	if config.BaseDelay <= 0 || config.MaxDelay < config.BaseDelay {
		return fmt.Errorf("sync backoff delays are inconsistent: base=%v max=%v", config.BaseDelay, config.MaxDelay)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)
	valid := false
	for _, validLevel := range validLevels {
		if level == validLevel {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log level must be one of %v, got %s", validLevels, config.Level)
	}

	format := strings.ToLower(config.Format)
	if format != "json" && format != "text" {
		return fmt.Errorf("log format must be json or text, got %s", config.Format)
	}

	return nil
}
