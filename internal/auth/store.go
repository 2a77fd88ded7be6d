package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "auth:refresh:"

// RedisRefreshStore keeps live refresh-token ids in redis with the token's
// own TTL; GetDel gives single-use semantics for free.
type RedisRefreshStore struct{ rdb *redis.Client }

func NewRedisRefreshStore(rdb *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{rdb: rdb}
}

func (s *RedisRefreshStore) Put(ctx context.Context, jti, subject string, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshKeyPrefix+jti, subject, ttl).Err()
}

func (s *RedisRefreshStore) Take(ctx context.Context, jti string) (string, error) {
	return s.rdb.GetDel(ctx, refreshKeyPrefix+jti).Result()
}
