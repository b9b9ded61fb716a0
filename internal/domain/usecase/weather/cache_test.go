package weather

import (
	"testing"
	"time"

	"pesisir-api/internal/domain/entity"
	"pesisir-api/internal/domain/model/external"
)

func TestCacheFreshnessWindow(t *testing.T) {
	current := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(30*time.Minute, func() time.Time { return current })

	cache.Put(entity.Anyer, []external.RawForecastEntry{slot("2026-08-28T09:00:00Z", 27)})

	current = current.Add(29*time.Minute + 59*time.Second)
	if _, hit := cache.Get(entity.Anyer); !hit {
		t.Fatal("expected hit just inside the freshness window")
	}

	current = current.Add(time.Second)
	if _, hit := cache.Get(entity.Anyer); hit {
		t.Fatal("expected miss at exactly the window boundary")
	}
}

func TestCacheExpiredRecordIsKeptNotEvicted(t *testing.T) {
	current := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(30*time.Minute, func() time.Time { return current })

	cache.Put(entity.Carita, []external.RawForecastEntry{slot("2026-08-28T09:00:00Z", 27)})
	stored := current

	current = current.Add(2 * time.Hour)
	if _, hit := cache.Get(entity.Carita); hit {
		t.Fatal("expected expired record to be ignored")
	}

	fetchedAt, ok := cache.FetchedAt(entity.Carita)
	if !ok {
		t.Fatal("expired record should still be present")
	}
	if !fetchedAt.Equal(stored) {
		t.Errorf("fetchedAt = %v, want %v", fetchedAt, stored)
	}
}

func TestCachePutOverwritesExpiredRecord(t *testing.T) {
	current := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(30*time.Minute, func() time.Time { return current })

	cache.Put(entity.Sawarna, []external.RawForecastEntry{slot("2026-08-28T09:00:00Z", 27)})

	current = current.Add(31 * time.Minute)
	cache.Put(entity.Sawarna, []external.RawForecastEntry{slot("2026-08-28T12:00:00Z", 30)})

	entries, hit := cache.Get(entity.Sawarna)
	if !hit {
		t.Fatal("expected hit after overwrite")
	}
	if entries[0].Datetime != "2026-08-28T12:00:00Z" {
		t.Errorf("entries = %+v, want the overwritten slot", entries)
	}
}

func TestCacheMissForUnknownKey(t *testing.T) {
	cache := NewCache(30 * time.Minute)
	if _, hit := cache.Get(entity.Bagedur); hit {
		t.Fatal("expected miss for a key never stored")
	}
}
