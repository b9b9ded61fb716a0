package weather

import (
	"sync"
	"time"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model/external"
)

// Cache keeps the raw flattened forecast per location, bounded by a freshness
// window. Expired records are ignored on read but kept until overwritten.
type Cache struct {
	mutex   sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	records map[entity.LocationKey]cacheRecord
}

type cacheRecord struct {
	entries   []external.RawForecastEntry
	fetchedAt time.Time
}

// NewCache creates a cache with the given freshness window.
func NewCache(ttl time.Duration) *Cache {
	return NewCacheWithClock(ttl, time.Now)
}

// NewCacheWithClock allows tests to control time.
func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Cache{
		ttl:     ttl,
		now:     now,
		records: make(map[entity.LocationKey]cacheRecord),
	}
}

// Get returns the cached entries for key when they are still inside the
// freshness window.
func (c *Cache) Get(key entity.LocationKey) ([]external.RawForecastEntry, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	record, ok := c.records[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(record.fetchedAt) >= c.ttl {
		return nil, false
	}
	return record.entries, true
}

// Put stores the entries for key, stamping them with the current time.
func (c *Cache) Put(key entity.LocationKey, entries []external.RawForecastEntry) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.records[key] = cacheRecord{
		entries:   entries,
		fetchedAt: c.now(),
	}
}

// FetchedAt reports when the record for key was last stored, fresh or not.
func (c *Cache) FetchedAt(key entity.LocationKey) (time.Time, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	record, ok := c.records[key]
	if !ok {
		return time.Time{}, false
	}
	return record.fetchedAt, true
}
