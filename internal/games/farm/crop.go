package farm

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/crop-rush/internal/core"
)

// CropType describes one kind of crop.
type CropType struct {
	Name   string
	Points int
	Size   float64
	Glyphs [2]rune // Alternated by the sway phase
	Color  core.Color
}

// Fixed crop table.
var (
	Wheat   = CropType{Name: "wheat", Points: 1, Size: 18, Glyphs: [2]rune{'ψ', 'Ψ'}, Color: core.ColorBrightYellow}
	Pumpkin = CropType{Name: "pumpkin", Points: 3, Size: 22, Glyphs: [2]rune{'o', 'O'}, Color: core.ColorOrange}
	Apple   = CropType{Name: "apple", Points: 5, Size: 18, Glyphs: [2]rune{'●', '•'}, Color: core.ColorRed}
)

// CropTypes lists the crop table in canonical order.
var CropTypes = []CropType{Wheat, Pumpkin, Apple}

// LookupCropType returns the crop type with the given name.
func LookupCropType(name string) (CropType, bool) {
	for _, t := range CropTypes {
		if t.Name == name {
			return t, true
		}
	}
	return CropType{}, false
}

// Crop spawn constants.
const (
	SpawnPad  = 24  // Distance kept from the arena edge
	SwaySpeed = 4.0 // Radians per second
)

// Crop is a collectible on the field.
type Crop struct {
	Rect      core.Rect
	Type      CropType
	Sway      float64
	collected bool
}

// NewCrop creates an uncollected crop at (x, y).
func NewCrop(x, y float64, t CropType, sway float64) *Crop {
	return &Crop{
		Rect: core.NewRect(x, y, t.Size, t.Size),
		Type: t,
		Sway: sway,
	}
}

// Update advances the cosmetic sway phase.
func (c *Crop) Update(dt float64) {
	c.Sway += dt * SwaySpeed
}

// Collected reports whether the crop has been picked up.
func (c *Crop) Collected() bool {
	return c.collected
}

// Collect marks the crop as picked up. It returns true only for the call
// that performed the transition; a collected crop stays collected.
func (c *Crop) Collect() bool {
	if c.collected {
		return false
	}
	c.collected = true
	return true
}

// Glyph returns the rune to draw for the current sway phase.
func (c *Crop) Glyph() rune {
	if math.Sin(c.Sway) >= 0 {
		return c.Type.Glyphs[0]
	}
	return c.Type.Glyphs[1]
}

type weightedEntry struct {
	name   string
	weight float64
}

// Spawner creates crops using a weighted distribution of crop types.
type Spawner struct {
	entries []weightedEntry
	total   float64
	rng     *rand.Rand
}

// NewSpawner builds a spawner from a name -> weight table.
// Entries are walked in crop table order followed by unknown names sorted,
// so results only depend on the seed. Non-positive weights are dropped.
func NewSpawner(distribution map[string]float64, rng *rand.Rand) *Spawner {
	s := &Spawner{rng: rng}

	seen := make(map[string]bool, len(distribution))
	for _, t := range CropTypes {
		if w, ok := distribution[t.Name]; ok {
			s.add(t.Name, w)
			seen[t.Name] = true
		}
	}

	var extra []string
	for name := range distribution {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		s.add(name, distribution[name])
	}

	return s
}

func (s *Spawner) add(name string, w float64) {
	if w <= 0 {
		return
	}
	s.entries = append(s.entries, weightedEntry{name: name, weight: w})
	s.total += w
}

// Pick chooses a crop type. Unknown names and empty tables yield wheat.
func (s *Spawner) Pick() CropType {
	if s.total <= 0 {
		return Wheat
	}

	r := s.rng.Float64() * s.total
	chosen := Wheat.Name
	for _, e := range s.entries {
		r -= e.weight
		if r <= 0 {
			chosen = e.name
			break
		}
	}

	if t, ok := LookupCropType(chosen); ok {
		return t
	}
	return Wheat
}

// Spawn creates a crop at a random position inside the padded arena.
func (s *Spawner) Spawn(arenaW, arenaH float64) *Crop {
	t := s.Pick()
	x := s.randInt(SpawnPad, int(arenaW-SpawnPad-t.Size))
	y := s.randInt(SpawnPad, int(arenaH-SpawnPad-t.Size))
	return NewCrop(float64(x), float64(y), t, s.rng.Float64()*math.Pi*2)
}

// randInt returns a uniform integer in [lo, hi]; hi below lo yields lo.
func (s *Spawner) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
