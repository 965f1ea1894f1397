package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/gog-commerce/pkg/logger"
)

// ResponseCache caches successful GET responses in Redis under a key prefix.
// A nil cache or nil client disables caching.
type ResponseCache struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration
}

// NewResponseCache creates a cache for one group of routes
func NewResponseCache(client *redis.Client, prefix string, ttl time.Duration) *ResponseCache {
	return &ResponseCache{redis: client, prefix: prefix, ttl: ttl}
}

// bodyRecorder tees the response body so it can be stored after the handler returns
type bodyRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (r *bodyRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Middleware serves cached bodies and stores fresh 200 responses
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c == nil || c.redis == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := c.key(r)

		cached, err := c.redis.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Debug(ctx).Str("path", r.URL.Path).Str("cache_key", key).Msg("Cache hit")
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		w.Header().Set("X-Cache", "MISS")
		rec := &bodyRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.statusCode != http.StatusOK || rec.body.Len() == 0 {
			return
		}
		if err := c.redis.Set(ctx, key, rec.body.Bytes(), c.ttl).Err(); err != nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache response")
		}
	})
}

// Invalidate drops every entry under the cache prefix
func (c *ResponseCache) Invalidate(ctx context.Context) error {
	if c == nil || c.redis == nil {
		return nil
	}

	pattern := c.prefix + ":*"
	iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}

	logger.Debug(ctx).Int("count", len(keys)).Str("pattern", pattern).Msg("Cache invalidated")
	return nil
}

func (c *ResponseCache) key(r *http.Request) string {
	hash := sha256.Sum256([]byte(r.Method + ":" + r.URL.Path + "?" + r.URL.RawQuery))
	return c.prefix + ":" + hex.EncodeToString(hash[:])
}
