package ports

import "context"

// Cache is the shared key-value store holding response projections. Get
// reports a miss as (false, nil); infrastructure failures surface as errors
// and are never silently swallowed, since cache invalidation must happen in
// the same logical step as the persistence write.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Cache key partitions. Id and email are independent lookup keys for the
// same user, so writes must invalidate both.
func UserIDKey(id string) string       { return "users:id:" + id }
func UserEmailKey(email string) string { return "users:email:" + email }
func CardIDKey(id string) string       { return "cards:id:" + id }
