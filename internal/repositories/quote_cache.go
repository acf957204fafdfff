package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// QuoteCacheRepository provides the hot Redis layer in front of the
// durable quote_cache table. Keys are day-scoped and expire at midnight.
type QuoteCacheRepository struct {
	client *redis.Client
}

func NewQuoteCacheRepository(client *redis.Client) *QuoteCacheRepository {
	return &QuoteCacheRepository{client: client}
}

func quoteKey(day time.Time) string {
	return fmt.Sprintf("daily_quote:%s", day.Format(models.DateLayout))
}

// GetForDay fetches the cached quote text for a day. Returns redis.Nil
// wrapped in an error when no entry exists.
func (r *QuoteCacheRepository) GetForDay(ctx context.Context, day time.Time) (string, error) {
	key := quoteKey(day)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("get cached quote",
		"key", key,
		"result", val,
		"error", err,
	)

	if err == redis.Nil {
		return "", fmt.Errorf("quote not cached for %s", day.Format(models.DateLayout))
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetForDay caches the quote text for a day, expiring at the next local
// midnight so a stale pick never leaks into the following day.
func (r *QuoteCacheRepository) SetForDay(ctx context.Context, day time.Time, text string) error {
	key := quoteKey(day)

	// day is already a local-midnight date, so the next day starts the TTL boundary.
	ttl := time.Until(day.AddDate(0, 0, 1))
	if ttl <= 0 {
		ttl = time.Minute
	}

	err := r.client.Set(ctx, key, text, ttl).Err()

	logger.Log.Infow("set cached quote",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}
