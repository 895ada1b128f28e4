package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache keys and TTLs. The feed is deliberately never cached: it is a
// read-time composition over the follow graph and must reflect the
// follow set of the same logical request.
const (
	userKeyPrefix = "user:%d"
	postKeyPrefix = "post:%d"

	UserTTL = 5 * time.Minute
	PostTTL = 30 * time.Minute
)

// UserKey derives the cache key for a user profile.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// PostKey derives the cache key for a post detail.
func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// Invalidate removes a key from the cache. Best-effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes a user's cached profile.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost removes a post's cached detail.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err != nil {
		// Treat misses and Redis failures alike; callers fall back to the DB.
		return false, nil
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which must populate dest),
// then stores the result in Redis with ttl.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	// Fetch from source (DB)
	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}
