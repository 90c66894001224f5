package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nextgen-academy/academy-api/internal/domain/model"
)

// CourseCache caches serialized course lists in Redis. The public course
// listing is read-heavy and changes only through the back-office, so every
// write path invalidates the whole cache.
type CourseCache struct {
	client redis.UniversalClient
	prefix string
}

// NewCourseCache creates a Redis-backed course list cache.
func NewCourseCache(client redis.UniversalClient) *CourseCache {
	return &CourseCache{
		client: client,
		prefix: "courses:",
	}
}

// Get returns the cached course list for key, reporting whether it was present.
// A corrupt cache entry is treated as a miss and removed.
func (c *CourseCache) Get(ctx context.Context, key string) ([]*model.Course, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var courses []*model.Course
	if unmarshalErr := json.Unmarshal([]byte(data), &courses); unmarshalErr != nil {
		_ = c.client.Del(ctx, c.prefix+key).Err()
		return nil, false, nil
	}
	return courses, true, nil
}

// Set stores the course list under key with the given TTL.
func (c *CourseCache) Set(ctx context.Context, key string, courses []*model.Course, ttl time.Duration) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("marshal courses: %w", err)
	}
	return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
}

// Invalidate drops every cached course list.
func (c *CourseCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan course cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
