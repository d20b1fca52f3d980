package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores rendered bookmark listings in Redis, keyed per owner.
// All methods are nil-safe so the service keeps working without Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func listKey(userID int64) string {
	return fmt.Sprintf("bookmarks:list:%d", userID)
}

// GetList returns the cached listing for a user. A miss, a decode
// failure, or any Redis error all report ok=false.
func (c *Cache) GetList(ctx context.Context, userID int64) ([]Bookmark, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, listKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var items []Bookmark
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

// SetList stores the listing for a user.
func (c *Cache) SetList(ctx context.Context, userID int64, items []Bookmark) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey(userID), payload, c.ttl).Err()
}

// Invalidate drops the cached listing after any write.
func (c *Cache) Invalidate(ctx context.Context, userID int64) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, listKey(userID)).Err()
}
