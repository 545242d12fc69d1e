package farm

import (
	"github.com/vovakirdan/crop-rush/internal/config"
	"github.com/vovakirdan/crop-rush/internal/core"
)

// Player spawn point in arena pixels.
const (
	FarmerSpawnX = 64
	FarmerSpawnY = 64
)

// Farmer is the keyboard-driven player.
type Farmer struct {
	Rect  core.Rect
	Speed float64
}

// NewFarmer creates a farmer at the spawn point.
func NewFarmer(c config.ActorConfig) *Farmer {
	return &Farmer{
		Rect:  core.NewRect(FarmerSpawnX, FarmerSpawnY, c.Size, c.Size),
		Speed: c.Speed,
	}
}

// Reset moves the farmer to (x, y).
func (f *Farmer) Reset(x, y float64) {
	f.Rect.X = x
	f.Rect.Y = y
}

// Update moves the farmer along axis (each component in -1..1).
// Diagonals are normalized so they are not faster than straight moves.
func (f *Farmer) Update(dt float64, axis core.Vec, w, h float64, blockers []Blocker) {
	delta := axis.Normalize().Scale(f.Speed * dt)
	f.Rect = moveWithRollback(f.Rect, delta, w, h, blockers)
}

// moveWithRollback translates r by delta, clamps it into the arena and
// returns the original rectangle unchanged if the result overlaps a blocker.
func moveWithRollback(r core.Rect, delta core.Vec, w, h float64, blockers []Blocker) core.Rect {
	moved := r.Translate(delta).ClampInto(w, h)
	for _, b := range blockers {
		if moved.Intersects(b.Bounds()) {
			return r
		}
	}
	return moved
}
