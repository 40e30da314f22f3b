package middlewares

import (
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type KeyFunc func(r *http.Request) string

// PerIPKey is the default key scheme; swap for a per-user scheme once the
// API grows principals.
func PerIPKey(prefix string) KeyFunc {
	return func(r *http.Request) string {
		ip := clientIP(r)
		if ip == "" {
			ip = "unknown"
		}
		return prefix + ":" + ip
	}
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may carry a list: client, proxy1, proxy2...
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

// RedisFixedWindow counts requests per key per window in Redis, so the
// limit holds across instances. Fails open when Redis is unreachable.
type RedisFixedWindow struct {
	rdb    *redis.Client
	keyFn  KeyFunc
	limit  int
	window time.Duration
}

func NewRedisFixedWindow(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc) *RedisFixedWindow {
	return &RedisFixedWindow{rdb: rdb, keyFn: keyFn, limit: limit, window: window}
}

func (fw *RedisFixedWindow) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		bucket := time.Now().Unix() / int64(fw.window/time.Second)
		key := fw.keyFn(r) + ":" + strconv.FormatInt(bucket, 10)

		pipe := fw.rdb.TxPipeline()
		countCmd := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, fw.window+time.Second)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("[RateLimit] Redis error: %v (allowing request)\n", err)
			next.ServeHTTP(w, r)
			return
		}
		count := int(countCmd.Val())

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(fw.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, fw.limit-count)))

		if count > fw.limit {
			retry := int64(fw.window/time.Second) - (time.Now().Unix() % int64(fw.window/time.Second))
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.FormatInt(retry, 10))

			log.Printf("[RateLimit] Blocked request from %s (key=%s). Retry after %ds\n",
				r.RemoteAddr, key, retry)

			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
