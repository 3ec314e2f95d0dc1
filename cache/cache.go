package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
	"github.com/rnetx/judge/utils"
)

const DefaultTTL = 10 * time.Minute

type Options struct {
	Type     string         `yaml:"type"`
	TTL      utils.Duration `yaml:"ttl,omitempty"`
	Address  string         `yaml:"address,omitempty"`
	Password string         `yaml:"password,omitempty"`
	DB       int            `yaml:"db,omitempty"`
}

func NewCache(ctx context.Context, logger log.Logger, options Options) (adapter.Cache, error) {
	ttl := time.Duration(options.TTL)
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	switch options.Type {
	case MemoryType:
		return NewMemoryCache(ctx, logger, ttl), nil
	case RedisType:
		return NewRedisCache(ctx, logger, ttl, options.Address, options.Password, options.DB)
	default:
		return nil, fmt.Errorf("unknown cache type: %s", options.Type)
	}
}

// Key derives the cache key for one solver run.
func Key(tag string, input []byte) string {
	h := sha256.New()
	h.Write([]byte(tag))
	h.Write([]byte{0})
	h.Write(input)
	return "judge:" + tag + ":" + hex.EncodeToString(h.Sum(nil))
}
