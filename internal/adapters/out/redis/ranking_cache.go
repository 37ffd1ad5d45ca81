// Package redis caches the restaurant ranking in Redis as a JSON document
// under a single key with a TTL, guarded by a generation counter.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"fooddelivery/internal/core/domain/services"

	goredis "github.com/redis/go-redis/v9"
)

const DefaultRankingKey = "fooddelivery:ranking"

// setIfCurrent writes the ranking only while the generation counter still
// holds the value the caller read. A missing counter counts as generation 0.
var setIfCurrent = goredis.NewScript(`
local current = redis.call('GET', KEYS[2])
if current == false then
	current = '0'
end
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

type rankingEntry struct {
	Restaurant string  `json:"restaurant"`
	Average    float64 `json:"average"`
	Count      int     `json:"count"`
}

// RankingCache keeps the ranking under key and its generation counter under
// key + ":generation".
type RankingCache struct {
	client        goredis.Cmdable
	key           string
	generationKey string
	ttl           time.Duration
}

// NewRankingCache stores the ranking under key. A zero ttl keeps it until the
// next invalidation.
func NewRankingCache(client goredis.Cmdable, key string, ttl time.Duration) *RankingCache {
	if key == "" {
		key = DefaultRankingKey
	}
	return &RankingCache{
		client:        client,
		key:           key,
		generationKey: key + ":generation",
		ttl:           ttl,
	}
}

func (c *RankingCache) Get(ctx context.Context) ([]services.RestaurantRating, int64, bool, error) {
	values, err := c.client.MGet(ctx, c.key, c.generationKey).Result()
	if err != nil {
		return nil, 0, false, fmt.Errorf("mget %s: %w", c.key, err)
	}

	var generation int64
	if raw, ok := values[1].(string); ok {
		if generation, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, 0, false, fmt.Errorf("decode %s: %w", c.generationKey, err)
		}
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, generation, false, nil
	}

	var entries []rankingEntry
	if err = json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, generation, false, fmt.Errorf("decode %s: %w", c.key, err)
	}

	ranking := make([]services.RestaurantRating, 0, len(entries))
	for _, e := range entries {
		ranking = append(ranking, services.RestaurantRating{
			Restaurant: e.Restaurant,
			Average:    e.Average,
			Count:      e.Count,
		})
	}
	return ranking, generation, true, nil
}

func (c *RankingCache) Set(ctx context.Context, generation int64, ranking []services.RestaurantRating) error {
	entries := make([]rankingEntry, 0, len(ranking))
	for _, r := range ranking {
		entries = append(entries, rankingEntry{
			Restaurant: r.Restaurant,
			Average:    r.Average,
			Count:      r.Count,
		})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = setIfCurrent.Run(
		ctx,
		c.client,
		[]string{c.key, c.generationKey},
		strconv.FormatInt(generation, 10),
		data,
		c.ttl.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("set %s: %w", c.key, err)
	}
	return nil
}

// Invalidate drops the ranking and advances the generation in one transaction.
func (c *RankingCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, c.generationKey)
		pipe.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate %s: %w", c.key, err)
	}
	return nil
}
