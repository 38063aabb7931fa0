package providers

import (
	"agentcrm/internal/structures"
	"math"
	"sync"
	"unsafe"

	"github.com/coocood/freecache"
)

// CacheProviderInterface caches rendered JSON responses. Purge drops every
// entry and is called after each mutation. Each Purge starts a new
// generation; SetIfUnchanged stores a value only while the generation it was
// computed in is still current, so a read that overlapped a purge cannot
// put stale data back.
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Generation() uint64
	SetIfUnchanged(generation uint64, key string, value []byte) bool
	Purge()
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int

	mu         sync.Mutex
	generation uint64
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	ttl := max(int(math.Ceil(conf.Cache.TTL.Seconds())), 1)

	logger.Infof(TypeApp, "Cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// freecache copies keys internally and never writes to them.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *CacheProvider) Set(key string, value []byte) {
	_ = c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

func (c *CacheProvider) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *CacheProvider) SetIfUnchanged(generation uint64, key string, value []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	_ = c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
	return true
}

func (c *CacheProvider) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Clear()
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool)                      { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)                           {}
func (n *noopCache) Generation() uint64                               { return 0 }
func (n *noopCache) SetIfUnchanged(_ uint64, _ string, _ []byte) bool { return false }
func (n *noopCache) Purge()                                           {}
