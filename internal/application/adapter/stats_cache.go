package adapter

import "context"

// StatsCache defines the interface for caching admin dashboard counters.
// Implementations are best-effort: a miss or error must never surface to the
// caller as a failure, only as a cache bypass.
type StatsCache interface {
	// GetCount returns the cached counter for key, with found=false on a miss.
	GetCount(ctx context.Context, key string) (value int64, found bool, err error)

	// SetCount stores a counter under key with the cache's configured TTL.
	SetCount(ctx context.Context, key string, value int64) error
}
