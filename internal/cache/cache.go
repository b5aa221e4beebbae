package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stayloop/stayloop/internal/types"
)

// Cache defines the interface for caching operations
type Cache interface {
	// Get retrieves a value from the cache
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set adds a value to the cache with the specified expiration.
	// If expiration is 0, the item never expires (but may be evicted).
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)

	// Delete removes a key from the cache
	Delete(ctx context.Context, key string)

	// DeleteByPrefix removes all keys with the given prefix
	DeleteByPrefix(ctx context.Context, prefix string)

	// Flush removes all items from the cache
	Flush(ctx context.Context)
}

// Predefined cache key prefixes for hot entity reads
const (
	PrefixAccommodation = "accommodation:v1:"
	PrefixDestination   = "destination:v1:"
	PrefixUser          = "user:v1:"
	PrefixCatalog       = "catalog:v1:"
)

// GenerateKey creates a tenant-scoped cache key so entries from different
// tenants can never collide.
func GenerateKey(prefix string, ctx context.Context, parts ...interface{}) string {
	sb := strings.Builder{}
	sb.WriteString(prefix)
	sb.WriteString(types.GetTenantID(ctx))
	for _, part := range parts {
		sb.WriteString(":")
		sb.WriteString(fmt.Sprintf("%v", part))
	}
	return sb.String()
}
