package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/avdeev89/chatbot-server/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ProfileCacheRepository caches usernames by user id in Redis. Users are
// immutable after registration, so cached entries never go stale.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewProfileCacheRepository creates a new repository instance with the given TTL
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetUsername fetches a cached username for a user id.
func (r *ProfileCacheRepository) GetUsername(ctx context.Context, userID int64) (string, error) {
	key := fmt.Sprintf("profile:username:%d", userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("username not cached for user %d", userID)
		}
		logger.Log.Errorw("profile cache read failed", "key", key, "error", err)
		return "", err
	}

	return val, nil
}

// SetUsername caches a username for a user id with expiration.
func (r *ProfileCacheRepository) SetUsername(ctx context.Context, userID int64, username string) error {
	key := fmt.Sprintf("profile:username:%d", userID)
	err := r.client.Set(ctx, key, username, r.exp).Err()

	if err != nil {
		logger.Log.Errorw("profile cache write failed", "key", key, "error", err)
	}

	return err
}
