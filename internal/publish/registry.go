package publish

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Registry tracks claimed usernames in Redis so a generated URL is not
// handed out twice. A nil client disables the check — only the reserved
// list applies then — which keeps single-instance dev setups working
// without Redis.
type Registry struct {
	client *redis.Client
	prefix string
}

// NewRegistry creates a claim registry. Prefix may be empty.
func NewRegistry(client *redis.Client, prefix string) *Registry {
	if prefix == "" {
		prefix = "username:"
	}
	return &Registry{client: client, prefix: prefix}
}

func (r *Registry) key(username string) string {
	return r.prefix + username
}

// Claimed reports whether the username has already been handed out.
func (r *Registry) Claimed(ctx context.Context, username string) (bool, error) {
	if r == nil || r.client == nil {
		return false, nil
	}
	n, err := r.client.Exists(ctx, r.key(username)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Claim atomically reserves the username. It returns false when the name
// was already taken. With no Redis configured every claim succeeds.
func (r *Registry) Claim(ctx context.Context, username string) (bool, error) {
	if r == nil || r.client == nil {
		return true, nil
	}
	return r.client.SetNX(ctx, r.key(username), "1", 0).Result()
}

// Release frees a claimed username. Unknown names are a no-op.
func (r *Registry) Release(ctx context.Context, username string) error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Del(ctx, r.key(username)).Err()
}
