// Package farm implements Crop Rush: the player and an AI farmer race to
// collect crops before the level timer runs out.
package farm

import (
	"math/rand"

	"github.com/vovakirdan/crop-rush/internal/config"
	"github.com/vovakirdan/crop-rush/internal/core"
	"github.com/vovakirdan/crop-rush/internal/registry"
)

// Phase is the game state machine position.
type Phase string

const (
	PhaseMenu     Phase = "MENU"
	PhasePlaying  Phase = "PLAYING"
	PhasePaused   Phase = "PAUSED"
	PhaseGameOver Phase = "GAME_OVER"
	PhaseWin      Phase = "WIN"
)

// Mode selects whether the AI competitor plays.
type Mode string

const (
	ModeVsAI Mode = "vs_ai"
	ModeSolo Mode = "solo"
)

// Result is how a level ended.
type Result string

const (
	ResultWin    Result = "win"
	ResultAIWon  Result = "ai_won"
	ResultTimeUp Result = "time_up"
)

// Status lines shown in the HUD.
const (
	StatusMenu     = "Press Start"
	StatusPlaying  = "Playing…"
	StatusPaused   = "Paused"
	StatusWin      = "You Win!"
	StatusAIWon    = "AI Won!"
	StatusGameOver = "Game Over"
	StatusTimeUp   = "Time's up!"
	StatusBadCfg   = "Error loading config"
)

// MaxDelta caps a single update so a stalled frame does not skip ahead.
const MaxDelta = 0.033

// Outcome describes a finished level.
type Outcome struct {
	GameID   string
	Mode     Mode
	Level    int // 1-based
	Score    int
	AIScore  int
	Result   Result
	TimeLeft float64
}

// Package-level variables for config/difficulty, set by the CLI before creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the level config file path ("" searches the defaults).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements Crop Rush.
type Game struct {
	mode      Mode
	cfg       config.FarmConfig
	preloaded bool
	cfgErr    error
	cfgSource string

	rng     *rand.Rand
	spawner *Spawner
	input   *Input
	tick    uint64

	phase      Phase
	status     string
	levelIndex int
	goal       int
	timeLeft   float64
	score      int
	aiScore    int
	outcome    *Outcome

	farmer    *Farmer
	ai        *FarmerAI // nil in solo mode
	crops     []*Crop
	obstacles []Obstacle
	crows     []*Crow

	accumSpawn    float64
	spawnEvery    float64
	spawnDecay    float64
	minSpawnEvery float64
}

// New creates a game against the AI farmer.
func New() *Game {
	return &Game{mode: ModeVsAI}
}

// NewSolo creates a game without the AI farmer.
func NewSolo() *Game {
	return &Game{mode: ModeSolo}
}

// NewWithConfig creates a game that uses cfg instead of loading a file.
func NewWithConfig(mode Mode, cfg config.FarmConfig) *Game {
	return &Game{mode: mode, cfg: cfg, preloaded: true, cfgSource: "inline"}
}

func init() {
	registry.Register("croprush", func() registry.Game {
		return New()
	})
	registry.Register("croprush_solo", func() registry.Game {
		return NewSolo()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSolo {
		return "croprush_solo"
	}
	return "croprush"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSolo {
		return "Crop Rush (Solo)"
	}
	return "Crop Rush"
}

// Init loads configuration, seeds the RNG and puts the game in the menu.
// A configuration failure keeps the game in the menu with an error status.
func (g *Game) Init(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0

	if !g.preloaded {
		g.cfg, g.cfgSource, g.cfgErr = loadConfig()
	} else if err := config.Validate(g.cfg); err != nil {
		g.cfgErr = err
	}

	g.spawner = NewSpawner(g.cfg.Crops.Distribution, g.rng)
	g.farmer = NewFarmer(g.cfg.Farmer)
	g.ai = nil
	if g.mode == ModeVsAI && g.cfg.AI.IsEnabled() {
		g.ai = NewFarmerAI(g.cfg.AI.ActorConfig, g.cfg.Arena.Width, g.cfg.Arena.Height)
	}

	g.Reset()
}

func loadConfig() (config.FarmConfig, string, error) {
	cfg, source, err := config.LoadFarm(configPath)
	if err != nil {
		return config.DefaultFarmConfig(), source, err
	}
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyFarmPreset(&cfg, preset)
	return cfg, source, nil
}

// ConfigSource reports where the level configuration came from.
func (g *Game) ConfigSource() string {
	return g.cfgSource
}

// ConfigErr returns the configuration load error, if any.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Attach registers the game's key handlers on src, replacing any previous
// registration.
func (g *Game) Attach(src core.KeySource) {
	g.Detach()
	g.input = NewInput(src, g.cfg.Input.Hold, Commands{
		Start:       g.Start,
		TogglePause: g.TogglePause,
		Reset:       g.Reset,
	})
}

// Detach removes the key handlers registered by Attach.
func (g *Game) Detach() {
	if g.input != nil {
		g.input.Dispose()
		g.input = nil
	}
}

// Start begins play from the menu or a finished level. After a win the next
// level loads if one remains; otherwise the run restarts from level 1.
// Start is ignored while a level is running or paused; Reset abandons a
// level. Keys held before the start are dropped.
func (g *Game) Start() {
	if g.cfgErr != nil {
		return
	}

	switch g.phase {
	case PhasePlaying, PhasePaused:
		return
	case PhaseWin:
		if g.levelIndex+1 < len(g.cfg.Levels) {
			g.levelIndex++
		} else {
			g.levelIndex = 0
			g.score = 0
		}
	default:
		g.levelIndex = 0
		g.score = 0
	}

	g.LoadLevel(g.levelIndex)
	g.phase = PhasePlaying
	g.status = StatusPlaying
	if g.input != nil {
		g.input.ReleaseAll()
	}
}

// Reset returns to the menu from any phase.
func (g *Game) Reset() {
	g.phase = PhaseMenu
	g.status = StatusMenu
	if g.cfgErr != nil {
		g.status = StatusBadCfg + ": " + g.cfgErr.Error()
	}

	g.crops = nil
	g.obstacles = nil
	g.crows = nil
	g.timeLeft = 0
	g.goal = 0
	g.score = 0
	g.aiScore = 0
	g.levelIndex = 0
	g.outcome = nil
	g.accumSpawn = 0

	g.respawnActors()
	if g.input != nil {
		g.input.ReleaseAll()
	}
}

// TogglePause switches between playing and paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
		g.status = StatusPaused
	case PhasePaused:
		g.phase = PhasePlaying
		g.status = StatusPlaying
	}
}

// LoadLevel sets up level idx. Indexes past the end use the last level.
// The player's score carries over; the AI score restarts.
func (g *Game) LoadLevel(idx int) {
	levels := g.cfg.Levels
	if len(levels) == 0 {
		return
	}
	idx = core.Clamp(idx, 0, len(levels)-1)
	l := levels[idx]
	g.levelIndex = idx

	g.goal = l.Goal
	g.timeLeft = l.Time

	g.crops = nil
	g.obstacles = make([]Obstacle, 0, len(l.Obstacles))
	for _, o := range l.Obstacles {
		g.obstacles = append(g.obstacles, NewObstacle(o))
	}
	g.crows = make([]*Crow, 0, len(l.Crows))
	for _, c := range l.Crows {
		g.crows = append(g.crows, NewCrow(c))
	}

	g.accumSpawn = 0
	g.spawnEvery = l.SpawnEvery
	g.spawnDecay = l.Decay()
	g.minSpawnEvery = l.Floor()

	g.aiScore = 0
	g.outcome = nil
	g.respawnActors()
}

func (g *Game) respawnActors() {
	if g.farmer != nil {
		g.farmer.Reset(FarmerSpawnX, FarmerSpawnY)
	}
	if g.ai != nil {
		g.ai.Respawn(g.cfg.Arena.Width, g.cfg.Arena.Height)
	}
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64) core.StepResult {
	res := core.StepResult{Ended: g.Update(dt)}
	if res.Ended && g.outcome != nil {
		res.Result = string(g.outcome.Result)
	}
	res.State = g.State()
	return res
}

// Update advances the simulation by dt seconds (clamped to MaxDelta).
// It returns true when this update finished the level.
func (g *Game) Update(dt float64) bool {
	dt = core.ClampF(dt, 0, MaxDelta)
	if g.phase != PhasePlaying {
		// Hold windows keep running so presses made while stopped expire.
		if g.input != nil {
			g.input.Advance(dt)
		}
		return false
	}
	g.tick++

	g.timeLeft -= dt
	if g.timeLeft < 0 {
		g.timeLeft = 0
	}

	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height
	blockers := g.blockers()

	var axis core.Vec
	if g.input != nil {
		g.input.Advance(dt)
		axis = g.input.Axis()
	}
	g.farmer.Update(dt, axis, w, h, blockers)
	if g.ai != nil {
		g.ai.Update(dt, w, h, blockers, g.crops)
	}

	g.accumSpawn += dt
	if g.accumSpawn >= g.spawnEvery {
		g.accumSpawn = 0
		g.crops = append(g.crops, g.spawner.Spawn(w, h))
		g.spawnEvery = max(g.minSpawnEvery, g.spawnEvery-g.spawnDecay)
	}

	for _, c := range g.crows {
		c.Update(dt, w, h)
	}

	g.collect(dt)

	return g.checkEnd()
}

// collect sways the crops, credits overlapping ones (player first) and
// purges them.
func (g *Game) collect(dt float64) {
	for _, c := range g.crops {
		c.Update(dt)
	}
	for _, c := range g.crops {
		if c.Rect.Intersects(g.farmer.Rect) && c.Collect() {
			g.score += c.Type.Points
		}
	}
	if g.ai != nil {
		for _, c := range g.crops {
			if c.Rect.Intersects(g.ai.Rect) && c.Collect() {
				g.aiScore += c.Type.Points
			}
		}
	}

	live := g.crops[:0]
	for _, c := range g.crops {
		if !c.Collected() {
			live = append(live, c)
		}
	}
	clear(g.crops[len(live):])
	g.crops = live
}

// checkEnd applies the win/lose rules in priority order.
func (g *Game) checkEnd() bool {
	var result Result
	switch {
	case g.score >= g.goal:
		g.phase, g.status, result = PhaseWin, StatusWin, ResultWin
	case g.ai != nil && g.aiScore >= g.goal:
		g.phase, g.status, result = PhaseGameOver, StatusAIWon, ResultAIWon
	case g.timeLeft == 0:
		g.phase, result = PhaseGameOver, ResultTimeUp
		g.status = StatusTimeUp
		if g.score == 0 {
			g.status = StatusGameOver
		}
	default:
		return false
	}

	g.outcome = &Outcome{
		GameID:   g.ID(),
		Mode:     g.mode,
		Level:    g.levelIndex + 1,
		Score:    g.score,
		AIScore:  g.aiScore,
		Result:   result,
		TimeLeft: g.timeLeft,
	}
	return true
}

func (g *Game) blockers() []Blocker {
	out := make([]Blocker, 0, len(g.obstacles)+len(g.crows))
	for _, o := range g.obstacles {
		out = append(out, o)
	}
	for _, c := range g.crows {
		out = append(out, c)
	}
	return out
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Outcome returns the result of the last finished level, or nil.
func (g *Game) Outcome() *Outcome {
	return g.outcome
}

// LevelCount returns the number of configured levels.
func (g *Game) LevelCount() int {
	return len(g.cfg.Levels)
}

// State returns the HUD view of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:         string(g.phase),
		Status:        g.status,
		Score:         g.score,
		OpponentScore: g.aiScore,
		Goal:          g.goal,
		Level:         g.levelIndex + 1,
		TimeLeft:      g.timeLeft,
		GameOver:      g.phase == PhaseWin || g.phase == PhaseGameOver,
		Paused:        g.phase == PhasePaused,
	}
}
