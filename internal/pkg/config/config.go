package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Dispatch struct {
		FreshnessWindow        time.Duration
		Workers                int
		PollInterval           time.Duration
		ProcessTimeout         time.Duration // он же срок аренды заявки в очереди
		MaxAttempts            int
		BackoffInitialInterval time.Duration
		BackoffMaxInterval     time.Duration
		LocationRetention      time.Duration
	}

	Tasks struct {
		QueueReaperInterval     time.Duration
		LocationCleanupInterval time.Duration
	}

	OpsServer struct {
		Port string // healthcheck + /metrics
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Dispatch Dispatch
		Tasks    Tasks
		Ops      OpsServer
		Database Database
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	freshnessWindow, err := osGetEnvDuration("DISPATCH_FRESHNESS_WINDOW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	workers, err := osGetInt("DISPATCH_WORKERS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollInterval, err := osGetEnvDuration("DISPATCH_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	processTimeout, err := osGetEnvDuration("DISPATCH_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxAttempts, err := osGetInt("DISPATCH_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backoffInitial, err := osGetEnvDuration("DISPATCH_BACKOFF_INITIAL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backoffMax, err := osGetEnvDuration("DISPATCH_BACKOFF_MAX_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	locationRetention, err := osGetEnvDuration("DISPATCH_LOCATION_RETENTION")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reaperInterval, err := osGetEnvDuration("BACKGROUND_QUEUE_REAPER_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cleanupInterval, err := osGetEnvDuration("BACKGROUND_LOCATION_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Dispatch: Dispatch{
			FreshnessWindow:        freshnessWindow,
			Workers:                workers,
			PollInterval:           pollInterval,
			ProcessTimeout:         processTimeout,
			MaxAttempts:            maxAttempts,
			BackoffInitialInterval: backoffInitial,
			BackoffMaxInterval:     backoffMax,
			LocationRetention:      locationRetention,
		},
		Tasks: Tasks{
			QueueReaperInterval:     reaperInterval,
			LocationCleanupInterval: cleanupInterval,
		},
		Ops: OpsServer{
			Port: os.Getenv("OPS_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Dispatch.FreshnessWindow == time.Duration(0) {
		return errors.New("DISPATCH_FRESHNESS_WINDOW is required")
	}
	if cfg.Dispatch.Workers == 0 {
		return errors.New("DISPATCH_WORKERS is required")
	}
	if cfg.Dispatch.PollInterval == time.Duration(0) {
		return errors.New("DISPATCH_POLL_INTERVAL is required")
	}
	if cfg.Dispatch.ProcessTimeout == time.Duration(0) {
		return errors.New("DISPATCH_PROCESS_TIMEOUT is required")
	}
	if cfg.Dispatch.MaxAttempts == 0 {
		return errors.New("DISPATCH_MAX_ATTEMPTS is required")
	}
	if cfg.Dispatch.BackoffInitialInterval == time.Duration(0) {
		return errors.New("DISPATCH_BACKOFF_INITIAL_INTERVAL is required")
	}
	if cfg.Dispatch.BackoffMaxInterval == time.Duration(0) {
		return errors.New("DISPATCH_BACKOFF_MAX_INTERVAL is required")
	}
	if cfg.Dispatch.LocationRetention == time.Duration(0) {
		return errors.New("DISPATCH_LOCATION_RETENTION is required")
	}

	if cfg.Tasks.QueueReaperInterval == time.Duration(0) {
		return errors.New("BACKGROUND_QUEUE_REAPER_INTERVAL is required")
	}
	if cfg.Tasks.LocationCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_LOCATION_CLEANUP_INTERVAL is required")
	}

	if cfg.Ops.Port == "" {
		return errors.New("ops port is required (set via OPS_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
