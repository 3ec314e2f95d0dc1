package cache

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rnetx/judge/adapter"
	"github.com/rnetx/judge/log"
)

const MemoryType = "memory"

var (
	_ adapter.Cache      = (*MemoryCache)(nil)
	_ adapter.Starter    = (*MemoryCache)(nil)
	_ adapter.Closer     = (*MemoryCache)(nil)
	_ adapter.APIHandler = (*MemoryCache)(nil)
)

type item struct {
	value    string
	deadline time.Time
}

// MemoryCache keeps outputs in a map; a janitor drops expired entries every
// cleanInterval once started.
type MemoryCache struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger log.Logger
	ttl    time.Duration

	cleanInterval time.Duration
	timeFunc      func() time.Time

	lock      sync.RWMutex
	m         map[string]item
	closeDone chan struct{}
}

func NewMemoryCache(ctx context.Context, logger log.Logger, ttl time.Duration) *MemoryCache {
	ctx, cancel := context.WithCancel(ctx)
	return &MemoryCache{
		ctx:           ctx,
		cancel:        cancel,
		logger:        logger,
		ttl:           ttl,
		cleanInterval: 10 * time.Second,
		timeFunc:      time.Now,
		m:             make(map[string]item),
	}
}

func (c *MemoryCache) Type() string {
	return MemoryType
}

func (c *MemoryCache) Start() error {
	c.closeDone = make(chan struct{})
	go c.loopHandle()
	return nil
}

func (c *MemoryCache) Close() error {
	c.cancel()
	if c.closeDone != nil {
		<-c.closeDone
	}
	return nil
}

func (c *MemoryCache) loopHandle() {
	defer close(c.closeDone)
	ticker := time.NewTicker(c.cleanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			if n := c.clean(); n > 0 {
				c.logger.Debugf("%d expired entries removed", n)
			}
		}
	}
}

func (c *MemoryCache) clean() int {
	now := c.timeFunc()
	c.lock.Lock()
	defer c.lock.Unlock()
	n := 0
	for k, v := range c.m {
		if now.After(v.deadline) {
			delete(c.m, k)
			n++
		}
	}
	return n
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	v, ok := c.m[key]
	if !ok || c.timeFunc().After(v.deadline) {
		return "", false, nil
	}
	return v.value, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.m[key] = item{
		value:    value,
		deadline: c.timeFunc().Add(c.ttl),
	}
	return nil
}

func (c *MemoryCache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.m)
}

func (c *MemoryCache) FlushAll() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.m = make(map[string]item)
}

func (c *MemoryCache) APIHandler() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		raw, err := json.Marshal(map[string]any{
			"type": MemoryType,
			"size": c.Len(),
			"ttl":  c.ttl.String(),
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(raw)
	})
	r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
		c.FlushAll()
		c.logger.Info("cache flushed")
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}
