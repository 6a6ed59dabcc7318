// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package public

import (
	"bytes"
	stdctx "context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhisheknv/portfolio-api/internal/platform/constants"
)

// cacheTTL is deliberately short: the mirror must reflect dashboard edits
// within a minute without any explicit invalidation wiring.
const cacheTTL = 60 * time.Second

// maxCacheableBody guards Redis against oversized payloads.
const maxCacheableBody = 256 * 1024

// ResponseCache is a Redis-backed cache for the public mirror's GET
// responses, keyed by request path and query.
//
// # Degradation
//
// Redis being down must never take the public site with it: read and write
// failures are logged and the request falls through to PostgreSQL.
type ResponseCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewResponseCache(client *redis.Client, logger *slog.Logger) *ResponseCache {
	return &ResponseCache{client: client, logger: logger}
}

// Middleware serves cached bodies and captures fresh ones.
func (cache *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if cache == nil || cache.client == nil || request.Method != http.MethodGet {
			next.ServeHTTP(writer, request)
			return
		}

		key := cache.key(request)

		if body, ok := cache.get(request.Context(), key); ok {
			writer.Header().Set("Content-Type", "application/json; charset=utf-8")
			writer.Header().Set("X-Cache", "HIT")
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write(body)
			return
		}

		recorder := &cachingRecorder{ResponseWriter: writer, status: http.StatusOK}
		next.ServeHTTP(recorder, request)

		if recorder.status == http.StatusOK && recorder.body.Len() <= maxCacheableBody {
			cache.set(request.Context(), key, recorder.body.Bytes())
		}
	})
}

func (cache *ResponseCache) key(request *http.Request) string {
	key := constants.RedisPrefixPublicCache + request.URL.Path
	if query := request.URL.RawQuery; query != "" {
		key += "?" + query
	}
	return key
}

func (cache *ResponseCache) get(context stdctx.Context, key string) ([]byte, bool) {
	body, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("public_cache_read_failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}
	return body, true
}

func (cache *ResponseCache) set(context stdctx.Context, key string, body []byte) {
	if err := cache.client.Set(context, key, body, cacheTTL).Err(); err != nil {
		cache.logger.Warn("public_cache_write_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// cachingRecorder tees the response body while it streams to the client.
type cachingRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (recorder *cachingRecorder) WriteHeader(status int) {
	recorder.status = status
	recorder.ResponseWriter.WriteHeader(status)
}

func (recorder *cachingRecorder) Write(p []byte) (int, error) {
	if recorder.status == http.StatusOK {
		recorder.body.Write(p)
	}
	return recorder.ResponseWriter.Write(p)
}
