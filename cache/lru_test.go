package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	if s := c.Stats(); s.Capacity != 100 || s.Len != 0 {
		t.Errorf("Stats = %+v, want capacity 100 and no entries", s)
	}
	if New[string, int](0).Stats().Capacity != 1 {
		t.Error("capacity 0 should be raised to 1")
	}
}

func TestGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("updated value = %d, want 7", val)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestEviction(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b becomes the oldest
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 2 {
		t.Errorf("Stats = %+v, want 1 eviction and 2 entries", s)
	}
}

func TestGetOrLoad(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	load := func() (int, error) {
		calls++
		return 100, nil
	}

	for range 3 {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 100 {
			t.Fatalf("GetOrLoad = %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats = %+v, want 2 hits and 1 miss", s)
	}
	if got := s.HitRate(); got < 0.66 || got > 0.67 {
		t.Errorf("HitRate = %v, want 2/3", got)
	}
}

func TestGetOrLoadError(t *testing.T) {
	c := New[string, int](4)
	errLoad := errors.New("load failed")
	if _, err := c.GetOrLoad("k", func() (int, error) { return 0, errLoad }); !errors.Is(err, errLoad) {
		t.Fatalf("err = %v, want %v", err, errLoad)
	}
	if c.Len() != 0 {
		t.Error("failed load must not be cached")
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	if !c.Delete("a") {
		t.Error("Delete(a) = false, want true")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true, want false")
	}
	c.Set("b", 2)
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Error("cache unusable after Delete")
	}
}

func TestConcurrentGetOrLoad(t *testing.T) {
	c := New[string, int](8)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := strconv.Itoa(i % 4)
			if _, err := c.GetOrLoad(key, func() (int, error) { return i, nil }); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if c.Len() != 4 {
		t.Errorf("Len = %d, want 4", c.Len())
	}
}

func TestHitRateEmpty(t *testing.T) {
	if (Stats{}).HitRate() != 0 {
		t.Error("HitRate of empty stats should be 0")
	}
}
