package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const cacheTTL = 5 * time.Minute

// StatsCache keeps recently read stats views out of Postgres. Every miss
// or Redis failure falls back to the database; the cache is never a source
// of request errors. A read racing a write can repopulate a key right
// after the writer's Invalidate; the TTL bounds that staleness, so keep
// it short.
type StatsCache interface {
	GetView(userID uint, platform string) (*StatsView, bool)
	SetView(userID uint, platform string, view *StatsView)
	GetOverview(userID uint) (*Overview, bool)
	SetOverview(userID uint, overview *Overview)
	Invalidate(userID uint, platform string)
}

type RedisStatsCache struct {
	db *redis.Client
}

func NewStatsCache(db *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{db: db}
}

func viewKey(userID uint, platform string) string {
	return fmt.Sprintf("stats:%d:%s", userID, platform)
}

func overviewKey(userID uint) string {
	return fmt.Sprintf("stats:overview:%d", userID)
}

func (c *RedisStatsCache) GetView(userID uint, platform string) (*StatsView, bool) {
	data, err := c.db.Get(ctx, viewKey(userID, platform)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("Error reading stats cache:", err)
		}
		return nil, false
	}
	var view StatsView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		log.Println("Error decoding cached stats:", err)
		return nil, false
	}
	return &view, true
}

func (c *RedisStatsCache) SetView(userID uint, platform string, view *StatsView) {
	data, err := json.Marshal(view)
	if err != nil {
		log.Println("Error serializing stats view:", err)
		return
	}
	if err := c.db.Set(ctx, viewKey(userID, platform), data, cacheTTL).Err(); err != nil {
		log.Println("Error writing stats cache:", err)
	}
}

func (c *RedisStatsCache) GetOverview(userID uint) (*Overview, bool) {
	data, err := c.db.Get(ctx, overviewKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("Error reading overview cache:", err)
		}
		return nil, false
	}
	var overview Overview
	if err := json.Unmarshal([]byte(data), &overview); err != nil {
		log.Println("Error decoding cached overview:", err)
		return nil, false
	}
	return &overview, true
}

func (c *RedisStatsCache) SetOverview(userID uint, overview *Overview) {
	data, err := json.Marshal(overview)
	if err != nil {
		log.Println("Error serializing overview:", err)
		return
	}
	if err := c.db.Set(ctx, overviewKey(userID), data, cacheTTL).Err(); err != nil {
		log.Println("Error writing overview cache:", err)
	}
}

func (c *RedisStatsCache) Invalidate(userID uint, platform string) {
	if err := c.db.Del(ctx, viewKey(userID, platform), overviewKey(userID)).Err(); err != nil {
		log.Println("Error invalidating stats cache:", err)
	}
}
