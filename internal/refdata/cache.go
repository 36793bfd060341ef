package refdata

import (
	"context"
	"time"
)

// Cache is the snapshot store for reference data. Implementations must be
// safe for concurrent use; a miss is reported through the bool, never an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
