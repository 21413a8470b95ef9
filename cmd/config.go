package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StatusPolicy is "permissive" or "monotonic".
	StatusPolicy string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	GeocodeTTL    time.Duration

	GeocoderURL       string
	GeocoderUserAgent string
	GeocoderTimeout   time.Duration

	KafkaBrokers     []string
	KafkaStatusTopic string

	LogLevel  string
	LogFormat string

	LifecycleCron string
}

// LoadConfig reads the environment. A .env file in the working directory is
// loaded first when present; variables already set win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	redisDB, err := intVariable("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	geocodeTTL, err := durationVariable("GEOCODE_CACHE_TTL", 30*24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	geocoderTimeout, err := durationVariable("GEOCODER_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:          variable("HTTP_PORT", "8080"),
		DBHost:            variable("DB_HOST", "localhost"),
		DBPort:            variable("DB_PORT", "5432"),
		DBUser:            variable("DB_USER", "postgres"),
		DBPassword:        variable("DB_PASSWORD", ""),
		DBName:            variable("DB_NAME", "routetrail"),
		DBSslMode:         variable("DB_SSLMODE", "disable"),
		StatusPolicy:      variable("STATUS_POLICY", "permissive"),
		RedisAddr:         variable("REDIS_ADDR", ""),
		RedisPassword:     variable("REDIS_PASSWORD", ""),
		RedisDB:           redisDB,
		GeocodeTTL:        geocodeTTL,
		GeocoderURL:       variable("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: variable("GEOCODER_USER_AGENT", "routetrail/1.0"),
		GeocoderTimeout:   geocoderTimeout,
		KafkaBrokers:      listVariable("KAFKA_BROKERS"),
		KafkaStatusTopic:  variable("KAFKA_STATUS_TOPIC", "route-status-changed"),
		LogLevel:          variable("LOG_LEVEL", "info"),
		LogFormat:         variable("LOG_FORMAT", "json"),
		LifecycleCron:     variable("LIFECYCLE_CRON", ""),
	}, nil
}

// DSN is the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	options := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, options))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, options))
}

func variable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func listVariable(key string) []string {
	var out []string
	for _, part := range strings.Split(variable(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
