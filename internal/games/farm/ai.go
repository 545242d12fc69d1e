package farm

import (
	"math"

	"github.com/vovakirdan/crop-rush/internal/config"
	"github.com/vovakirdan/crop-rush/internal/core"
)

// AI spawn offset from the bottom-right corner of the arena.
const aiSpawnInset = 92

// FarmerAI is the computer farmer. It walks straight toward the nearest
// uncollected crop and gives up the step when that would hit a blocker.
type FarmerAI struct {
	Rect  core.Rect
	Speed float64
}

// NewFarmerAI creates an AI farmer at the spawn point of a w x h arena.
func NewFarmerAI(c config.ActorConfig, w, h float64) *FarmerAI {
	a := &FarmerAI{
		Rect:  core.NewRect(0, 0, c.Size, c.Size),
		Speed: c.Speed,
	}
	a.Respawn(w, h)
	return a
}

// Respawn puts the AI back at its spawn point, clamped into the arena.
func (a *FarmerAI) Respawn(w, h float64) {
	a.Rect.X = w - aiSpawnInset
	a.Rect.Y = h - aiSpawnInset
	a.Rect = a.Rect.ClampInto(w, h)
}

// Target returns the nearest uncollected crop by squared distance between
// centres, or nil. The first crop wins ties.
func (a *FarmerAI) Target(crops []*Crop) *Crop {
	var target *Crop
	best := math.Inf(1)
	center := a.Rect.Center()
	for _, c := range crops {
		if c.Collected() {
			continue
		}
		if d := c.Rect.Center().Sub(center).Len2(); d < best {
			best = d
			target = c
		}
	}
	return target
}

// Update steps toward the current target.
func (a *FarmerAI) Update(dt, w, h float64, blockers []Blocker, crops []*Crop) {
	var dir core.Vec
	if t := a.Target(crops); t != nil {
		dir = t.Rect.Center().Sub(a.Rect.Center()).Normalize()
	}
	a.Rect = moveWithRollback(a.Rect, dir.Scale(a.Speed*dt), w, h, blockers)
}
