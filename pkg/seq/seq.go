package seq

import "sync"

// Guard issues increasing sequence numbers per key and applies only responses
// that are newer than the last one applied for that key.
type Guard struct {
	mu      sync.Mutex
	issued  map[string]uint64
	applied map[string]uint64
}

func New() *Guard {
	return &Guard{
		issued:  make(map[string]uint64),
		applied: make(map[string]uint64),
	}
}

func (g *Guard) Next(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.issued[key]++
	return g.issued[key]
}

// Apply calls fn under the guard lock if n is newer than the last applied number for key.
// It reports false when the response is stale and fn was skipped.
func (g *Guard) Apply(key string, n uint64, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n <= g.applied[key] {
		return false
	}
	g.applied[key] = n
	fn()
	return true
}

// Forget marks every number issued so far for key as stale. Numbers keep
// increasing, so a response still in flight can never overwrite a later one.
func (g *Guard) Forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.applied[key] = g.issued[key]
}
