package cache

import (
	"context"
	"testing"
)

// Every cache helper must degrade to a no-op when Redis never connected,
// since the server keeps serving without it.
func TestHelpersDegradeWithoutRedis(t *testing.T) {
	if client != nil {
		t.Skip("redis client unexpectedly initialized")
	}
	ctx := context.Background()

	if data, ok := GetCachedOrderProgress(ctx, 1, "admin"); ok || data != nil {
		t.Errorf("GetCachedOrderProgress = (%v, %v), want miss", data, ok)
	}
	CacheOrderProgress(ctx, 1, "admin", []byte(`{}`))
	InvalidateOrderProgress(ctx, 1)

	if data, ok := GetCachedOrderSummary(ctx); ok || data != nil {
		t.Errorf("GetCachedOrderSummary = (%v, %v), want miss", data, ok)
	}
	CacheOrderSummary(ctx, []byte(`[]`))

	if userID, ok := GetCachedAuth(ctx, "a@b.test", "pw"); ok || userID != 0 {
		t.Errorf("GetCachedAuth = (%d, %v), want miss", userID, ok)
	}
	CacheAuth(ctx, "a@b.test", "pw", 42)
	InvalidateAuth(ctx, "a@b.test", "pw")
}
