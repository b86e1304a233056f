package openweather

import (
	"context"
	"sync"
	"time"

	"github.com/couchcryptid/heat-risk-service/internal/domain"
	"github.com/couchcryptid/heat-risk-service/internal/observability"
	"github.com/jonboulle/clockwork"
)

// CachedProvider wraps a WeatherProvider with in-memory LRU caches whose
// entries expire after a fixed TTL.
type CachedProvider struct {
	inner    domain.WeatherProvider
	current  *lruCache[domain.Conditions]
	forecast *lruCache[domain.Forecast]
	metrics  *observability.Metrics
}

// NewCachedProvider creates a cache decorator around a provider. Pass a nil
// clock to use real time.
func NewCachedProvider(inner domain.WeatherProvider, maxEntries int, ttl time.Duration, clk clockwork.Clock, metrics *observability.Metrics) *CachedProvider {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &CachedProvider{
		inner:    inner,
		current:  newLRUCache[domain.Conditions](maxEntries, ttl, clk),
		forecast: newLRUCache[domain.Forecast](maxEntries, ttl, clk),
		metrics:  metrics,
	}
}

func (c *CachedProvider) Current(ctx context.Context, q domain.LocationQuery) (domain.Conditions, error) {
	key := q.Key()
	if cond, ok := c.current.get(key); ok {
		c.metrics.WeatherCache.WithLabelValues("current", "hit").Inc()
		return cond, nil
	}
	c.metrics.WeatherCache.WithLabelValues("current", "miss").Inc()

	cond, err := c.inner.Current(ctx, q)
	if err != nil {
		return cond, err
	}
	c.current.put(key, cond)
	return cond, nil
}

func (c *CachedProvider) Forecast(ctx context.Context, q domain.LocationQuery) (domain.Forecast, error) {
	key := q.Key()
	if f, ok := c.forecast.get(key); ok {
		c.metrics.WeatherCache.WithLabelValues("forecast", "hit").Inc()
		return f, nil
	}
	c.metrics.WeatherCache.WithLabelValues("forecast", "miss").Inc()

	f, err := c.inner.Forecast(ctx, q)
	if err != nil {
		return f, err
	}
	// Empty forecasts are not cached so the next request retries upstream.
	if len(f.Entries) > 0 {
		c.forecast.put(key, f)
	}
	return f, nil
}

// lruCache is a thread-safe LRU cache with per-entry expiry.
type lruCache[V any] struct {
	maxEntries int
	ttl        time.Duration
	clock      clockwork.Clock
	mu         sync.Mutex
	entries    map[string]*entry[V]
	head       *entry[V] // most recently used
	tail       *entry[V] // least recently used
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

func newLRUCache[V any](maxEntries int, ttl time.Duration, clk clockwork.Clock) *lruCache[V] {
	return &lruCache[V]{
		maxEntries: maxEntries,
		ttl:        ttl,
		clock:      clk,
		entries:    make(map[string]*entry[V]),
	}
}

func (c *lruCache[V]) get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		c.remove(e)
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache[V]) put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.clock.Now().Add(c.ttl)
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[V]{key: key, value: value, expiresAt: expiresAt}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache[V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache[V]) addToFront(e *entry[V]) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache[V]) remove(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache[V]) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
