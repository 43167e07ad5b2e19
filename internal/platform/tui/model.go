package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/riverrun/internal/core"
	"github.com/vovakirdan/riverrun/internal/registry"
	"github.com/vovakirdan/riverrun/internal/storage"
)

// Model is the Bubble Tea model driving a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keymap     *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The scene keeps the
// width it was generated at; the drawing surface and the game's notion
// of the screen must change together.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Mode == core.ModeGameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.startedAt = time.Now()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	if m.gameState.Mode == core.ModeMain && result.State.Mode == core.ModePlaying {
		m.startedAt = time.Now()
	}
	m.gameState = result.State

	// Record the run on game over (once)
	if m.gameState.Mode == core.ModeGameOver && !m.runSaved {
		if m.store != nil {
			duration := int(time.Since(m.startedAt).Seconds())
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.gameState.Score, m.gameState.Distance, duration)
		}
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
