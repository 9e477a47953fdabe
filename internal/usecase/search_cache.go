package usecase

import (
	"context"
	"time"
)

// SearchCache is the slice of the cache the search usecases need. A nil
// cache or an unavailable backend must behave like a permanent miss.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
