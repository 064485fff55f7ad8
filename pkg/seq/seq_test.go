package seq

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_DiscardsStaleResponses(t *testing.T) {
	g := New()

	first := g.Next("c1")
	second := g.Next("c1")

	var got []uint64
	assert.True(t, g.Apply("c1", second, func() { got = append(got, second) }))
	assert.False(t, g.Apply("c1", first, func() { got = append(got, first) }))

	assert.Equal(t, []uint64{second}, got)
}

func TestGuard_KeysAreIndependent(t *testing.T) {
	g := New()

	a := g.Next("a")
	g.Next("b")
	b := g.Next("b")

	assert.True(t, g.Apply("b", b, func() {}))
	assert.True(t, g.Apply("a", a, func() {}))
}

func TestGuard_Forget(t *testing.T) {
	g := New()

	applied := g.Next("a")
	assert.True(t, g.Apply("a", applied, func() {}))
	inFlight := g.Next("a")

	g.Forget("a")

	fresh := g.Next("a")
	assert.Greater(t, fresh, inFlight)
	assert.False(t, g.Apply("a", inFlight, func() {}))
	assert.True(t, g.Apply("a", fresh, func() {}))
}

func TestGuard_Concurrent(t *testing.T) {
	g := New()

	var wg sync.WaitGroup
	seen := make(chan uint64, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- g.Next("k")
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]struct{})
	for n := range seen {
		unique[n] = struct{}{}
	}
	assert.Len(t, unique, 100)
}
