package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-based settings
type Config struct {
	Environment    string
	LogLevel       string
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string
	ServerAddress  string
	TemplatesPath  string
	StaticPath     string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string
	MQTTTopic     string

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
	UploadDir       string

	Prayer PrayerConfig

	ContactRatePerMinute int
}

// PrayerConfig is the fixed location and calculation setup of the prayer-times widget.
type PrayerConfig struct {
	TimingsURL string
	City       string
	Country    string
	Method     int
	School     int
	// zero means no deadline beyond the transport's own
	Timeout time.Duration
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	jwt := os.Getenv("JWT_SECRET")
	if jwt == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	method, err := intEnv("PRAYER_METHOD", 1)
	if err != nil {
		return nil, err
	}
	school, err := intEnv("PRAYER_SCHOOL", 1)
	if err != nil {
		return nil, err
	}
	rate, err := intEnv("CONTACT_RATE_PER_MINUTE", 5)
	if err != nil {
		return nil, err
	}

	var timeout time.Duration
	if raw := os.Getenv("PRAYER_TIMEOUT"); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("PRAYER_TIMEOUT: %w", err)
		}
	}

	useSpaces := os.Getenv("USE_SPACES") == "true"
	cfg := &Config{
		Environment:    envOr("APP_ENV", "development"),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		DatabaseURL:    dbURL,
		MigrationsPath: envOr("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:      jwt,
		ServerAddress:  envOr("SERVER_ADDRESS", ":8080"),
		TemplatesPath:  envOr("TEMPLATES_PATH", "./web/templates"),
		StaticPath:     envOr("STATIC_PATH", "./web/static"),

		RedisAddress:  envOr("REDIS_ADDRESS", "localhost:6379"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTTopic:     envOr("MQTT_CONTACT_TOPIC", "site/contact"),

		UseSpaces:       useSpaces,
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
		UploadDir:       envOr("UPLOAD_DIR", "./uploads"),

		Prayer: PrayerConfig{
			TimingsURL: envOr("PRAYER_TIMINGS_URL", "https://api.aladhan.com/v1"),
			City:       envOr("PRAYER_CITY", "Sheikhupura"),
			Country:    envOr("PRAYER_COUNTRY", "Pakistan"),
			Method:     method,
			School:     school,
			Timeout:    timeout,
		},

		ContactRatePerMinute: rate,
	}

	if useSpaces && (cfg.SpacesEndpoint == "" || cfg.SpacesBucket == "") {
		return nil, fmt.Errorf("SPACES_ENDPOINT and SPACES_BUCKET are required when USE_SPACES=true")
	}
	if cfg.ContactRatePerMinute <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive")
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
