package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mapmyworld/mapmyworld-api/internal/logger"
	"github.com/mapmyworld/mapmyworld-api/internal/models"
)

// CategoryCacheRepository provides cached category lookups using Redis.
type CategoryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached categories
}

// NewCategoryCacheRepository creates a new repository instance with the given TTL.
func NewCategoryCacheRepository(client *redis.Client, expiration time.Duration) *CategoryCacheRepository {
	return &CategoryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func categoryKey(categoryID uuid.UUID) string {
	return fmt.Sprintf("category:%s", categoryID)
}

// Get fetches a cached category, returning nil on a cache miss.
func (r *CategoryCacheRepository) Get(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error) {
	key := categoryKey(categoryID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("category cache get",
		"key", key,
		"error", err,
	)

	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var category models.CategoryDB
	if err := json.Unmarshal([]byte(val), &category); err != nil {
		logger.Log.Errorw("failed to decode cached category", "key", key, "error", err)
		return nil, err
	}

	return &category, nil
}

// Set caches a category with the configured expiration.
func (r *CategoryCacheRepository) Set(ctx context.Context, category *models.CategoryDB) error {
	key := categoryKey(category.CategoryID)

	data, err := json.Marshal(category)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("category cache set",
		"key", key,
		"error", err,
	)

	return err
}
