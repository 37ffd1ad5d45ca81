package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort            string
	Storage             string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	KafkaHost           string
	KafkaEventsTopic    string
	RedisAddr           string
	RankingCacheTTL     time.Duration
	ScheduleCron        string
	ScheduleMaxDistance int
	ScheduleMaxOrders   int
}

// ConfigFromEnv reads the configuration through lookup, normally os.Getenv.
// Unset variables fall back to defaults that run the service in memory with
// the delivery scheduling job switched off.
func ConfigFromEnv(lookup func(key string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := lookup(key); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:         get("HTTP_PORT", "8080"),
		Storage:          get("STORAGE", StorageMemory),
		DBHost:           get("DB_HOST", "localhost"),
		DBPort:           get("DB_PORT", "5432"),
		DBUser:           lookup("DB_USER"),
		DBPassword:       lookup("DB_PASSWORD"),
		DBName:           lookup("DB_NAME"),
		DBSslMode:        get("DB_SSLMODE", "disable"),
		KafkaHost:        lookup("KAFKA_HOST"),
		KafkaEventsTopic: get("KAFKA_EVENTS_TOPIC", "food-delivery.events"),
		RedisAddr:        lookup("REDIS_ADDR"),
		ScheduleCron:     lookup("SCHEDULE_CRON"),
	}

	var errs []error

	ttl, err := time.ParseDuration(get("RANKING_CACHE_TTL", "1m"))
	if err != nil {
		errs = append(errs, fmt.Errorf("RANKING_CACHE_TTL: %w", err))
	}
	config.RankingCacheTTL = ttl

	maxDistance, err := strconv.Atoi(get("SCHEDULE_MAX_DISTANCE", "5"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SCHEDULE_MAX_DISTANCE: %w", err))
	}
	config.ScheduleMaxDistance = maxDistance

	maxOrders, err := strconv.Atoi(get("SCHEDULE_MAX_ORDERS", "10"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SCHEDULE_MAX_ORDERS: %w", err))
	}
	config.ScheduleMaxOrders = maxOrders

	if config.Storage != StorageMemory && config.Storage != StoragePostgres {
		errs = append(errs, fmt.Errorf("STORAGE: %q is neither %q nor %q", config.Storage, StorageMemory, StoragePostgres))
	}

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
