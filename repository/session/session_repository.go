package session

import (
	"context"
	"time"

	redisclient "github.com/easyfind/storefront/cmd/redis"
	"github.com/redis/go-redis/v9"
)

// Repository is the session store collaborator: an opaque session id mapped
// to a redis key with a sliding TTL. Handlers never touch it directly; the
// transport session middleware does.
type Repository interface {
	Create(ctx context.Context, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Touch(ctx context.Context, sessionID string, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepo struct{}

// NewRepository returns a redis-backed session Repository.
func NewRepository() Repository {
	return &sessionRepo{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (r *sessionRepo) Create(ctx context.Context, sessionID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionKey(sessionID), 1, ttl).Err()
}

func (r *sessionRepo) Exists(ctx context.Context, sessionID string) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}
	_, err := client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *sessionRepo) Touch(ctx context.Context, sessionID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Expire(ctx, sessionKey(sessionID), ttl).Err()
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionKey(sessionID)).Err()
}
