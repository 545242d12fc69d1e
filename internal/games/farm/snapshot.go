package farm

// Snapshot is a plain-data copy of the game state.
// Slices are fresh copies, so a snapshot is unaffected by later updates.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Status     string
	Level      int // 0-based
	Goal       int
	TimeLeft   float64
	Score      int
	AIScore    int
	SpawnEvery float64
	Farmer     RectSnapshot
	AI         *RectSnapshot // nil in solo mode
	Crops      []CropSnapshot
	Crows      []CrowSnapshot
	Obstacles  []RectSnapshot
}

// RectSnapshot is an axis-aligned rectangle in arena pixels.
type RectSnapshot struct {
	X, Y, W, H float64
}

// CropSnapshot is one crop on the field.
type CropSnapshot struct {
	Type      string
	X, Y      float64
	Collected bool
}

// CrowSnapshot is one crow.
type CrowSnapshot struct {
	X, Y   float64
	VX, VY float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Status:     g.status,
		Level:      g.levelIndex,
		Goal:       g.goal,
		TimeLeft:   g.timeLeft,
		Score:      g.score,
		AIScore:    g.aiScore,
		SpawnEvery: g.spawnEvery,
	}

	if g.farmer != nil {
		r := g.farmer.Rect
		s.Farmer = RectSnapshot{X: r.X, Y: r.Y, W: r.W, H: r.H}
	}
	if g.ai != nil {
		r := g.ai.Rect
		s.AI = &RectSnapshot{X: r.X, Y: r.Y, W: r.W, H: r.H}
	}

	s.Crops = make([]CropSnapshot, 0, len(g.crops))
	for _, c := range g.crops {
		s.Crops = append(s.Crops, CropSnapshot{
			Type:      c.Type.Name,
			X:         c.Rect.X,
			Y:         c.Rect.Y,
			Collected: c.Collected(),
		})
	}

	s.Crows = make([]CrowSnapshot, 0, len(g.crows))
	for _, c := range g.crows {
		s.Crows = append(s.Crows, CrowSnapshot{X: c.Pos.X, Y: c.Pos.Y, VX: c.Vel.X, VY: c.Vel.Y})
	}

	s.Obstacles = make([]RectSnapshot, 0, len(g.obstacles))
	for _, o := range g.obstacles {
		r := o.Rect
		s.Obstacles = append(s.Obstacles, RectSnapshot{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}

	return s
}
