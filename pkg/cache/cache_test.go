package cache

import (
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[string], clk *clock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *clock, t *testing.T) {
				c.Set("a", "1")
				if v, ok := c.Get("a"); !ok || v != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache[string], clk *clock, t *testing.T) {
				c.Set("a", "1")
				clk.advance(time.Minute + time.Second)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache[string], _ *clock, t *testing.T) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Get("a")
				c.Set("c", "3")
				if _, ok := c.Get("b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if v, ok := c.Get("a"); !ok || v != "1" {
					t.Errorf("expected a=1, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache[string], clk *clock, t *testing.T) {
				c.Set("a", "1")
				clk.advance(40 * time.Second)
				c.Set("a", "2")
				clk.advance(40 * time.Second)
				if v, ok := c.Get("a"); !ok || v != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(c *LRUCache[string], _ *clock, t *testing.T) {
				c.Set("a", "1")
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Size())
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(c *LRUCache[string], clk *clock, t *testing.T) {
				c.Set("a", "1")
				clk.advance(30 * time.Second)
				c.Set("b", "2")
				clk.advance(45 * time.Second)

				c.cleanup()

				if c.Size() != 1 {
					t.Errorf("expected one live entry, got %d", c.Size())
				}
				if _, ok := c.Get("b"); !ok {
					t.Errorf("expected 'b' to survive cleanup")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := &clock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache[string](tt.capacity, tt.ttl)
			c.now = clk.now
			tt.actions(c, clk, t)
		})
	}
}
