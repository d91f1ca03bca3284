package compare

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 30 * time.Minute

// Cache guarda comparações recentes no Redis para não repetir chamada ao
// modelo a cada consulta igual.
type Cache struct {
	Client *redis.Client
}

func (c *Cache) Get(ctx context.Context, filter string) (string, bool) {
	val, err := c.Client.Get(ctx, "compare:"+filter).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, filter, answer string) error {
	return c.Client.Set(ctx, "compare:"+filter, answer, cacheTTL).Err()
}
