package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	AdvisoryDir   string
	PortfolioPath string

	// AOIBufferDegrees is the portfolio safety margin: an approximate-degree
	// dilation, roughly 70 km at the default 0.7.
	AOIBufferDegrees float64

	// RunAt pins the run to a fixed timestamp (RFC3339). Zero means "now".
	// The engine snaps it to the preceding synoptic hour either way.
	RunAt time.Time

	KafkaBrokers     []string
	KafkaReportTopic string
	KafkaEnabled     bool

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	AdvisoryCacheSize int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	cfg := &Config{
		AdvisoryDir:      envOrDefault("ADVISORY_DIR", "./forecast_data"),
		PortfolioPath:    os.Getenv("PORTFOLIO_PATH"),
		KafkaBrokers:     parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaReportTopic: envOrDefault("KAFKA_REPORT_TOPIC", "storm-impact-reports"),
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		LogFormat:        envOrDefault("LOG_FORMAT", "json"),
	}

	cfg.KafkaEnabled = true
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		cfg.KafkaEnabled = v == "true"
	}

	buffer, err := parseFloat("AOI_BUFFER_DEGREES", 0.7)
	if err != nil {
		return nil, err
	}
	cfg.AOIBufferDegrees = buffer

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout = shutdownTimeout

	cacheSize, err := parseInt("ADVISORY_CACHE_SIZE", 100)
	if err != nil {
		return nil, err
	}
	cfg.AdvisoryCacheSize = cacheSize

	if v := os.Getenv("RUN_AT"); v != "" {
		runAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("invalid RUN_AT: %w", err)
		}
		cfg.RunAt = runAt.UTC()
	}

	if cfg.PortfolioPath == "" {
		return nil, errors.New("PORTFOLIO_PATH is required")
	}
	if cfg.AOIBufferDegrees <= 0 {
		return nil, errors.New("AOI_BUFFER_DEGREES must be positive")
	}
	if cfg.AdvisoryCacheSize <= 0 {
		return nil, errors.New("ADVISORY_CACHE_SIZE must be positive")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when Kafka is enabled")
		}
		if cfg.KafkaReportTopic == "" {
			return nil, errors.New("KAFKA_REPORT_TOPIC is required when Kafka is enabled")
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}
