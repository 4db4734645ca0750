package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SearchCache keeps cross-type search responses for a short TTL so
// search-as-you-type does not fan out to Firestore on every keystroke.
type SearchCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSearchCache(rdb *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func searchKey(term, storeSlug string) string {
	return fmt.Sprintf("search:%s:%s", storeSlug, term)
}

// Get unmarshals a cached response into dest, reporting whether it was
// present. Cache errors degrade to a miss.
func (c *SearchCache) Get(ctx context.Context, term, storeSlug string, dest interface{}) bool {
	raw, err := c.rdb.Get(ctx, searchKey(term, storeSlug)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a response under the term/store pair. Failures are ignored;
// the cache is best-effort.
func (c *SearchCache) Set(ctx context.Context, term, storeSlug string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, searchKey(term, storeSlug), raw, c.ttl)
}
