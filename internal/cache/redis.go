package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"fulfill-backend/internal/metrics"
)

// Order Progress Cache Keys
const (
	OrderProgressKeyFmt = "order:progress:%d:%s" // order ID + viewer role
	OrderSummaryKey     = "order:summary"
)

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(email, password)
	userID, err := client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int64) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Set(ctx, key, userID, 15*time.Minute)
}

// InvalidateAuth removes cached auth for a user (on password change/logout)
func InvalidateAuth(ctx context.Context, email, password string) {
	if client == nil {
		return
	}
	key := hashCredentials(email, password)
	client.Del(ctx, key)
}

// ============================================
// Order Progress Cache Functions
// ============================================

// GetCachedOrderProgress returns a cached progress payload if available.
// Progress is derived per viewer role because the reconciled view differs.
func GetCachedOrderProgress(ctx context.Context, orderID int, role string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	key := fmt.Sprintf(OrderProgressKeyFmt, orderID, role)
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		metrics.ProgressCacheMisses.Inc()
		return nil, false
	}
	metrics.ProgressCacheHits.Inc()
	return data, true
}

// CacheOrderProgress caches a computed progress payload for 2 minutes.
// Short TTL: QC decisions invalidate explicitly, lifecycle transitions from
// the shop floor may not.
func CacheOrderProgress(ctx context.Context, orderID int, role string, data []byte) {
	if client == nil {
		return
	}
	key := fmt.Sprintf(OrderProgressKeyFmt, orderID, role)
	client.Set(ctx, key, data, 2*time.Minute)
}

// InvalidateOrderProgress drops all cached progress payloads for an order
func InvalidateOrderProgress(ctx context.Context, orderID int) {
	if client == nil {
		return
	}
	for _, role := range []string{"seller", "admin"} {
		client.Del(ctx, fmt.Sprintf(OrderProgressKeyFmt, orderID, role))
	}
	client.Del(ctx, OrderSummaryKey)
}

// GetCachedOrderSummary returns the cached dashboard summary if available
func GetCachedOrderSummary(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, OrderSummaryKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheOrderSummary caches the dashboard summary for 1 minute
func CacheOrderSummary(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, OrderSummaryKey, data, time.Minute)
}
