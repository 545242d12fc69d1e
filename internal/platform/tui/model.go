package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crop-rush/internal/core"
	"github.com/vovakirdan/crop-rush/internal/registry"
	"github.com/vovakirdan/crop-rush/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	keys      *core.KeyBus
	config    core.RuntimeConfig
	gameState core.GameState
	lastTick  time.Time
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Init(cfg)
	logConfigSource(logger, game)
	keys := core.NewKeyBus()
	game.Attach(keys)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		keys:      keys,
		config:    cfg,
		gameState: game.State(),
	}
}

// configReporter is implemented by games that load a level file.
type configReporter interface {
	ConfigSource() string
	ConfigErr() error
}

func logConfigSource(logger *log.Logger, game registry.Game) {
	r, ok := game.(configReporter)
	if !ok {
		return
	}
	if err := r.ConfigErr(); err != nil {
		logger.Error("config load failed", "game", game.ID(), "source", r.ConfigSource(), "error", err)
		return
	}
	logger.Info("config loaded", "game", game.ID(), "source", r.ConfigSource())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isQuitKey(msg):
		m.quitting = true
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	// Everything else goes to the game's key handlers.
	m.keys.Publish(keyEvent(msg))
	m.gameState = m.game.State()
	return m, nil
}

// handleResize processes window resize events.
// The arena is measured in its own units, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	prev := m.gameState.Phase
	result := m.game.Step(dt)
	m.gameState = result.State

	if prev != m.gameState.Phase {
		m.logger.Debug("phase changed", "game", m.game.ID(), "from", prev, "to", m.gameState.Phase)
	}

	// Each finished level is saved exactly once.
	if result.Ended {
		m.saveResult(result)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveResult(result core.StepResult) {
	if m.store == nil {
		return
	}
	st := result.State
	id, err := m.store.SaveResult(storage.Result{
		GameID:   m.game.ID(),
		Level:    st.Level,
		Score:    st.Score,
		AIScore:  st.OpponentScore,
		Outcome:  result.Result,
		TimeLeft: st.TimeLeft,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.logger.Info("result saved", "id", id, "game", m.game.ID(), "level", st.Level,
		"score", st.Score, "outcome", result.Result)
}

// saveScreenshot writes the current screen to ~/.croprush/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".croprush", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Close removes the game's key handlers.
func (m Model) Close() {
	m.game.Detach()
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
