package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New(1 * time.Second)
	defer c.Close()

	c.Set("key1", "value1")

	val, found := c.Get("key1")
	if !found {
		t.Error("Expected to find key1")
	}
	if val != "value1" {
		t.Errorf("Expected value1, got %v", val)
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New(100 * time.Millisecond)
	defer c.Close()

	c.Set("key1", "value1")

	_, found := c.Get("key1")
	if !found {
		t.Error("Expected to find key1 immediately")
	}

	time.Sleep(150 * time.Millisecond)

	_, found = c.Get("key1")
	if found {
		t.Error("Expected key1 to be expired")
	}
}

func TestCache_Clear(t *testing.T) {
	c := New(1 * time.Second)
	defer c.Close()

	c.Set("key1", "value1")
	c.Clear("key1")

	_, found := c.Get("key1")
	if found {
		t.Error("Expected key1 to be cleared")
	}
}

func TestCache_GetOrCompute(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return 42, nil
	}

	val, cached, err := c.GetOrCompute("k", compute)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if val != 42 || cached {
		t.Errorf("Expected fresh 42, got %v (cached=%v)", val, cached)
	}

	val, cached, _ = c.GetOrCompute("k", compute)
	if val != 42 || !cached {
		t.Errorf("Expected cached 42, got %v (cached=%v)", val, cached)
	}
	if calls != 1 {
		t.Errorf("Expected 1 compute call, got %d", calls)
	}
}

func TestCache_GetOrCompute_ErrorNotCached(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	boom := errors.New("boom")
	_, _, err := c.GetOrCompute("k", func() (interface{}, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}

	if _, found := c.Get("k"); found {
		t.Error("Errors should not be cached")
	}
}

func TestCache_GetOrCompute_CollapsesConcurrentCalls(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	var calls atomic.Int32
	release := make(chan struct{})
	compute := func() (interface{}, error) {
		calls.Add(1)
		<-release
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrCompute("k", compute)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("Expected 1 compute call, got %d", calls.Load())
	}
}

func TestCache_Stats(t *testing.T) {
	c := New(1 * time.Minute)
	defer c.Close()

	c.Get("missing")
	c.Set("k", 1)
	c.Get("k")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Entries != 1 {
		t.Errorf("Expected 1 hit / 1 miss / 1 entry, got %+v", s)
	}
}
