package cmd_test

import (
	"testing"
	"time"

	"fooddelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("should fall back to in-memory defaults", func(t *testing.T) {
		config, err := cmd.ConfigFromEnv(env(nil))

		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, cmd.StorageMemory, config.Storage)
		assert.Equal(t, time.Minute, config.RankingCacheTTL)
		assert.Empty(t, config.ScheduleCron)
		assert.Equal(t, 5, config.ScheduleMaxDistance)
		assert.Equal(t, 10, config.ScheduleMaxOrders)
		assert.Empty(t, config.KafkaHost)
		assert.Empty(t, config.RedisAddr)
	})

	t.Run("should read every variable", func(t *testing.T) {
		config, err := cmd.ConfigFromEnv(env(map[string]string{
			"HTTP_PORT":             "9000",
			"STORAGE":               "postgres",
			"DB_HOST":               "db",
			"DB_PORT":               "6543",
			"DB_USER":               "delivery",
			"DB_PASSWORD":           "secret",
			"DB_NAME":               "food",
			"DB_SSLMODE":            "require",
			"KAFKA_HOST":            "kafka:9092",
			"KAFKA_EVENTS_TOPIC":    "events",
			"REDIS_ADDR":            "redis:6379",
			"RANKING_CACHE_TTL":     "30s",
			"SCHEDULE_CRON":         "*/10 * * * * *",
			"SCHEDULE_MAX_DISTANCE": "7",
			"SCHEDULE_MAX_ORDERS":   "3",
		}))

		require.NoError(t, err)
		assert.Equal(t, "9000", config.HTTPPort)
		assert.Equal(t, cmd.StoragePostgres, config.Storage)
		assert.Equal(t, "kafka:9092", config.KafkaHost)
		assert.Equal(t, "events", config.KafkaEventsTopic)
		assert.Equal(t, "redis:6379", config.RedisAddr)
		assert.Equal(t, 30*time.Second, config.RankingCacheTTL)
		assert.Equal(t, "*/10 * * * * *", config.ScheduleCron)
		assert.Equal(t, 7, config.ScheduleMaxDistance)
		assert.Equal(t, 3, config.ScheduleMaxOrders)
		assert.Equal(t, "host=db port=6543 user=delivery password=secret dbname=food sslmode=require", config.DSN())
	})

	t.Run("should report every malformed variable", func(t *testing.T) {
		_, err := cmd.ConfigFromEnv(env(map[string]string{
			"STORAGE":             "sqlite",
			"RANKING_CACHE_TTL":   "soon",
			"SCHEDULE_MAX_ORDERS": "ten",
		}))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORAGE")
		assert.Contains(t, err.Error(), "RANKING_CACHE_TTL")
		assert.Contains(t, err.Error(), "SCHEDULE_MAX_ORDERS")
	})
}
