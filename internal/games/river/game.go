package river

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/riverrun/internal/config"
	"github.com/vovakirdan/riverrun/internal/core"
	"github.com/vovakirdan/riverrun/internal/registry"
)

var (
	setupMu      sync.Mutex
	activeDesign []DesignLine
	activeConfig = config.Default()
)

// SetDesign sets the scene design used by games created after this call.
// Called by the CLI and the SSH server before instantiating the game.
func SetDesign(lines []DesignLine) {
	setupMu.Lock()
	defer setupMu.Unlock()
	activeDesign = lines
}

// SetConfig sets the runtime configuration (timing, theme) used by games
// created after this call.
func SetConfig(cfg config.Config) {
	setupMu.Lock()
	defer setupMu.Unlock()
	activeConfig = cfg
}

// glyphSet is the theme resolved to single runes at construction time.
type glyphSet struct {
	land       rune
	river      rune
	enemy      rune
	player     rune
	projectile rune
}

// Game implements the riverrun game logic. It is pure: all terminal
// concerns live in the platform layer, which drives the game through
// Reset/Step/Render.
type Game struct {
	cfg    core.RuntimeConfig
	design []DesignLine
	glyphs glyphSet

	// frameTicks is how many simulation ticks advance the scroll frame by
	// one row: frame cadence / projectile cadence (100ms/20ms = 5 by
	// default).
	frameTicks int

	scene       *Scene
	mode        core.Mode
	frame       int // rows scrolled; drives the visible window
	tick        int // simulation ticks in the current run
	playerX     int
	playerY     int
	projectiles []Projectile
	score       int
}

// New creates a game using the design and configuration from SetDesign and
// SetConfig, falling back to the embedded defaults.
func New() *Game {
	setupMu.Lock()
	design := activeDesign
	cfg := activeConfig
	setupMu.Unlock()

	if design == nil {
		design = DefaultDesign()
	}
	return NewWithDesign(design, cfg)
}

// NewWithDesign creates a game with an explicit design and configuration.
func NewWithDesign(design []DesignLine, cfg config.Config) *Game {
	frameTicks := cfg.Timing.FrameTicks()
	if frameTicks < 1 {
		frameTicks = 1
	}
	theme := cfg.Theme
	if theme.Validate() != nil {
		theme = config.Default().Theme
	}
	return &Game{
		design: design,
		glyphs: glyphSet{
			land:       config.Rune(theme.Land),
			river:      config.Rune(theme.River),
			enemy:      config.Rune(theme.Enemy),
			player:     config.Rune(theme.Player),
			projectile: config.Rune(theme.Projectile),
		},
		frameTicks: frameTicks,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "river"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "River Run"
}

// Reset initializes or restarts the game. The terrain is generated once
// here, at the current screen width, and lives unchanged for the whole
// run (enemy destruction aside).
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	rng := rand.New(rand.NewSource(cfg.Seed))
	scene, err := BuildScene(g.design, cfg.ScreenW, rng)
	if err != nil {
		// The CLI validates designs before handing them over; only the
		// known-good embedded design can reach here.
		scene, _ = BuildScene(DefaultDesign(), core.Max(cfg.ScreenW, 1), rng)
	}
	g.scene = scene

	g.mode = core.ModeMain
	g.frame = 0
	g.tick = 0
	g.playerX = 0
	g.playerY = 0
	g.projectiles = nil
	g.score = 0
}

// Resize updates the screen dimensions mid-run. The terrain keeps the
// width it was generated at; the screen-to-scene row mapping follows the
// new height, so the craft is snapped back to the bottom row, clamped
// into the new width, and shots below the new bottom edge are dropped.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.cfg = cfg

	if g.mode != core.ModePlaying && g.mode != core.ModePaused {
		return
	}

	g.playerX = core.Clamp(g.playerX, 0, cfg.ScreenW-1)
	g.playerY = cfg.ScreenH - 1

	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Y < cfg.ScreenH {
			live = append(live, p)
		}
	}
	g.projectiles = live
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.mode {
	case core.ModeMain:
		// Any key leaves the title screen.
		if in.Any() {
			g.startRun()
		}
	case core.ModePaused:
		if in.Has(core.ActionPause) {
			g.mode = core.ModePlaying
		}
	case core.ModePlaying:
		g.stepPlaying(in)
	case core.ModeGameOver:
		// Terminal. The platform restarts via Reset with a fresh seed.
	}
	return core.StepResult{State: g.State()}
}

// startRun places the craft at the bottom center and begins play.
func (g *Game) startRun() {
	g.playerX = g.cfg.ScreenW / 2
	g.playerY = g.cfg.ScreenH - 1
	g.mode = core.ModePlaying
}

// stepPlaying runs one tick of active play: scroll, projectile motion and
// collisions, then player input and the terrain check.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.mode = core.ModePaused
		return
	}

	g.tick++
	if g.tick%g.frameTicks == 0 {
		g.frame++
	}

	g.advanceProjectiles()
	g.sweepProjectiles()

	if in.Has(core.ActionLeft) {
		g.playerX = core.Clamp(g.playerX-1, 0, g.cfg.ScreenW-1)
	}
	if in.Has(core.ActionRight) {
		g.playerX = core.Clamp(g.playerX+1, 0, g.cfg.ScreenW-1)
	}
	if in.Has(core.ActionFire) && g.playerY > 0 {
		g.projectiles = append(g.projectiles, Projectile{X: g.playerX, Y: g.playerY - 1})
	}

	// The craft dies on anything that is not open river.
	if k := g.kindAtScreen(g.playerX, g.playerY); k != River {
		g.mode = core.ModeGameOver
	}
}

// logicalRow maps a screen row to its logical scene row for the current
// frame. The window is rendered reversed (nearest row at the bottom), so
// screen row y shows scene row frame + screenH - y.
func (g *Game) logicalRow(screenY int) int {
	return core.Mod(g.frame+g.cfg.ScreenH-screenY, g.scene.Len())
}

// kindAtScreen returns the terrain kind under a screen coordinate.
func (g *Game) kindAtScreen(x, y int) Kind {
	return g.scene.KindAt(g.logicalRow(y), x)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Distance: g.frame,
		Mode:     g.mode,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("river", func() registry.Game {
		return New()
	})
}
