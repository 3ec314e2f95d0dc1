package cache

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
)

const RedisType = "redis"

var (
	_ adapter.Cache      = (*RedisCache)(nil)
	_ adapter.Starter    = (*RedisCache)(nil)
	_ adapter.Closer     = (*RedisCache)(nil)
	_ adapter.APIHandler = (*RedisCache)(nil)
)

type RedisCache struct {
	ctx    context.Context
	logger log.Logger
	ttl    time.Duration

	address  string
	password string
	db       int

	client *redis.Client
}

func NewRedisCache(ctx context.Context, logger log.Logger, ttl time.Duration, address string, password string, db int) (*RedisCache, error) {
	if address == "" {
		return nil, fmt.Errorf("missing address")
	}
	return &RedisCache{
		ctx:      ctx,
		logger:   logger,
		ttl:      ttl,
		address:  address,
		password: password,
		db:       db,
	}, nil
}

func (r *RedisCache) Type() string {
	return RedisType
}

// Start connects over tcp when the address is ip:port and over a unix socket otherwise.
func (r *RedisCache) Start() error {
	var (
		address = r.address
		network = "unix"
	)
	addr, err := netip.ParseAddrPort(r.address)
	if err == nil {
		network = "tcp"
		address = addr.String()
	}
	r.client = redis.NewClient(&redis.Options{
		Addr:     address,
		Network:  network,
		Password: r.password,
		DB:       r.db,
	})
	err = r.client.Ping(r.ctx).Err()
	if err != nil {
		r.client.Close()
		r.client = nil
		return fmt.Errorf("connect redis failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get key failed: %s, error: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	err := r.client.Set(ctx, key, value, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("store key failed: %s, error: %w", key, err)
	}
	return nil
}

func (r *RedisCache) APIHandler() chi.Router {
	router := chi.NewRouter()
	router.Delete("/", func(w http.ResponseWriter, req *http.Request) {
		var (
			cursor uint64
			keys   []string
			err    error
			n      int
		)
		for {
			keys, cursor, err = r.client.Scan(req.Context(), cursor, "judge:*", 256).Result()
			if err != nil {
				r.logger.ErrorfContext(req.Context(), "scan keys failed: %s", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if len(keys) > 0 {
				err = r.client.Del(req.Context(), keys...).Err()
				if err != nil {
					r.logger.ErrorfContext(req.Context(), "delete keys failed: %s", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				n += len(keys)
			}
			if cursor == 0 {
				break
			}
		}
		r.logger.InfofContext(req.Context(), "cache flushed: %d keys", n)
		w.WriteHeader(http.StatusNoContent)
	})
	return router
}
