package sessions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/lagunaro/loansim-backend/internal/logger"
)

type redisStore struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisStore connects to the redis named by REDIS_ADDR. Each session is a
// hash keyed by its token; the whole hash expires ttl after the last write.
func NewRedisStore(log *logger.Logger, ttl time.Duration) (Store, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisStore{
		log: log.With("service", "RedisSessionStore"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (rs *redisStore) Get(ctx context.Context, token, key string) (string, error) {
	val, err := rs.rdb.HGet(ctx, sessionKey(token), key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("session get: %w", err)
	}
	return val, nil
}

func (rs *redisStore) Set(ctx context.Context, token, key, value string) error {
	sk := sessionKey(token)
	if err := rs.rdb.HSet(ctx, sk, key, value).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	if rs.ttl > 0 {
		if err := rs.rdb.Expire(ctx, sk, rs.ttl).Err(); err != nil {
			return fmt.Errorf("session expire: %w", err)
		}
	}
	return nil
}

func sessionKey(token string) string {
	return "session:" + token
}
