package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	APITimeout time.Duration

	TabDebounce time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
	// SessionPath is the SQLite file keeping the session between runs when no
	// Redis is configured. Empty keeps the session in memory only.
	SessionPath string

	NATSURL         string
	NATSConnTimeout time.Duration

	OTelCollectorURL string
	ServiceName      string

	Debug bool
}

func LoadConfig() (*Config, error) {
	// Only present in local setups.
	_ = godotenv.Load()

	config := &Config{
		APIBaseURL: getEnvString("LINKFATEC_API_BASE_URL", "http://localhost:8000/api/"),
		APITimeout: getEnvDuration("LINKFATEC_API_TIMEOUT", 15*time.Second),

		TabDebounce: getEnvDuration("LINKFATEC_TAB_DEBOUNCE", 200*time.Millisecond),

		RedisAddr:     getEnvString("REDIS_ADDR", ""),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SessionTTL:    getEnvDuration("LINKFATEC_SESSION_TTL", 0),
		SessionPath:   getEnvString("LINKFATEC_SESSION_PATH", defaultSessionPath()),

		NATSURL:         getEnvString("NATS_URL", ""),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		OTelCollectorURL: getEnvString("OTEL_COLLECTOR_URL", ""),
		ServiceName:      getEnvString("LINKFATEC_SERVICE_NAME", "linkfatec"),

		Debug: getEnvBool("LINKFATEC_DEBUG", false),
	}

	base, err := normalizeBaseURL(config.APIBaseURL)
	if err != nil {
		return nil, err
	}
	config.APIBaseURL = base

	return config, nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linkfatec", "session.db")
}

// normalizeBaseURL requires an absolute http(s) URL and appends the trailing slash
// relative endpoint paths resolve against.
func normalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid LINKFATEC_API_BASE_URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid LINKFATEC_API_BASE_URL %q: want an absolute http(s) URL", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String(), nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
