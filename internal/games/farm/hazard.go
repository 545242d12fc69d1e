package farm

import (
	"github.com/vovakirdan/crop-rush/internal/config"
	"github.com/vovakirdan/crop-rush/internal/core"
)

// Blocker is anything farmers cannot walk through.
type Blocker interface {
	Bounds() core.Rect
}

// Obstacle is a static scarecrow block.
type Obstacle struct {
	Rect core.Rect
}

// NewObstacle creates an obstacle from its config.
func NewObstacle(c config.ObstacleConfig) Obstacle {
	return Obstacle{Rect: core.NewRect(c.X, c.Y, c.W, c.H)}
}

// Bounds returns the obstacle rectangle.
func (o Obstacle) Bounds() core.Rect {
	return o.Rect
}

// Crow is a circular hazard that bounces off the arena edges.
type Crow struct {
	Pos    core.Vec // Centre
	Vel    core.Vec // Pixels per second
	Radius float64
}

// NewCrow creates a crow from its config.
func NewCrow(c config.CrowConfig) *Crow {
	vx, vy := c.Velocity()
	return &Crow{
		Pos:    core.Vec{X: c.X, Y: c.Y},
		Vel:    core.Vec{X: vx, Y: vy},
		Radius: c.R(),
	}
}

// Bounds returns the crow's bounding square.
func (c *Crow) Bounds() core.Rect {
	return core.NewRect(c.Pos.X-c.Radius, c.Pos.Y-c.Radius, c.Radius*2, c.Radius*2)
}

// Update moves the crow and bounces it off the edges of a w x h arena.
// The centre is kept within [r, size-r] on both axes.
func (c *Crow) Update(dt, w, h float64) {
	c.Pos.X += c.Vel.X * dt
	c.Pos.Y += c.Vel.Y * dt

	c.Pos.X, c.Vel.X = bounce(c.Pos.X, c.Vel.X, c.Radius, w-c.Radius)
	c.Pos.Y, c.Vel.Y = bounce(c.Pos.Y, c.Vel.Y, c.Radius, h-c.Radius)
}

// bounce reflects v when p leaves [lo, hi] and pulls p back inside.
func bounce(p, v, lo, hi float64) (float64, float64) {
	if hi < lo {
		return (lo + hi) / 2, v
	}
	switch {
	case p < lo:
		return lo, abs(v)
	case p > hi:
		return hi, -abs(v)
	}
	return p, v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
