package service

import (
	"context"
	"sync"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/pkg/geo"
)

// PositionSource yields the latest known rider position. Manual input implements it
// today; a GPS feed can replace it without touching the gate or the broadcaster.
type PositionSource interface {
	Position(ctx context.Context, riderID int64) (entities.Position, bool)
}

// Positions holds manually entered rider positions in memory only.
// Each input overwrites the previous one.
type Positions struct {
	mu  sync.RWMutex
	m   map[int64]entities.Position
	now func() time.Time
}

func NewPositions() *Positions {
	return &Positions{
		m:   make(map[int64]entities.Position),
		now: time.Now,
	}
}

func (p *Positions) Set(riderID int64, point geo.Point) entities.Position {
	pos := entities.Position{Point: point, CapturedAt: p.now()}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[riderID] = pos
	return pos
}

func (p *Positions) Position(_ context.Context, riderID int64) (entities.Position, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pos, ok := p.m[riderID]
	return pos, ok
}

func (p *Positions) Discard(riderID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.m, riderID)
}
