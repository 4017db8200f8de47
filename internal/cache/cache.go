package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// Init connects to Redis at addr. Caching is best-effort: on connection
// failure the client is left nil and every helper becomes a no-op.
func Init(addr string) {
	if addr == "" {
		return
	}
	Client = redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, continuing without cache", "error", err)
		Client = nil
		return
	}
	slog.Info("redis connected", "addr", addr)
}

func Close() {
	if Client != nil {
		if err := Client.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
}

// GetJSON fetches key and unmarshals into dest. Returns (true, nil) on a
// hit, (false, nil) on a miss or when caching is disabled.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if Client == nil {
		return false, nil
	}
	s, err := Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and stores it under key with the given TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return Client.Set(ctx, key, b, ttl).Err()
}

// CacheAside tries Redis first; on a miss it calls fetch (which must write
// into dest) and stores the result best-effort.
func CacheAside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		slog.Warn("cache read failed", "key", key, "error", err)
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}
