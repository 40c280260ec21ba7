// Package bricks runs a campaign of brick levels: it owns the running score
// and lives, moves between levels and draws everything into a core.Screen.
package bricks

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/assets"
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// State is the campaign state.
type State string

// Campaign states
const (
	StateReady    State = "ready"    // Countdown before the ball launches
	StatePlaying  State = "playing"  // Ball in play
	StatePaused   State = "paused"   // Game paused
	StateGameOver State = "gameover" // No lives left
	StateWin      State = "win"      // All levels completed
)

// Minimum terminal size the game draws into.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// ErrNoLevels is returned when a campaign is created without levels.
var ErrNoLevels = errors.New("campaign has no levels")

// Options configures a campaign.
type Options struct {
	Levels     []engine.LevelConfig
	Config     config.BricksConfig
	Textures   *assets.TexturePool // nil creates a pool without a resource root
	Sounds     *assets.SoundPool   // nil creates a muted pool
	Logger     *log.Logger
	StartLevel int // index into Levels
}

// Game implements the campaign logic.
type Game struct {
	levels   []engine.LevelConfig
	cfg      config.BricksConfig
	textures *assets.TexturePool
	sounds   *assets.SoundPool
	logger   *log.Logger

	runtime core.RuntimeConfig

	level      *engine.Level
	levelIndex int
	startLevel int

	state       State
	resumeState State // state to return to after a pause
	score       int
	lives       int
	tick        uint64
	readyTicks  int

	screenTooSmall bool
}

// New validates every level and creates the campaign. A configuration error
// in any level is returned before anything is played.
func New(opts Options) (*Game, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	if opts.StartLevel < 0 || opts.StartLevel >= len(opts.Levels) {
		return nil, fmt.Errorf("start level %d out of range [1, %d]", opts.StartLevel+1, len(opts.Levels))
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	textures := opts.Textures
	if textures == nil {
		textures = assets.NewTexturePool("", logger)
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = assets.NewSoundPool("", 0, false, logger)
	}

	g := &Game{
		levels:     opts.Levels,
		cfg:        opts.Config,
		textures:   textures,
		sounds:     sounds,
		logger:     logger,
		startLevel: opts.StartLevel,
		runtime:    core.DefaultConfig(),
	}

	for i := range g.levels {
		if _, err := g.buildLevel(i); err != nil {
			return nil, err
		}
	}

	g.Reset(g.runtime)
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bricks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bricks"
}

// Reset restarts the campaign from the start level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.Resize(runtime)
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.resumeState = ""
	g.loadLevel(g.startLevel)
}

// Resize adapts to a new terminal size without touching game state.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

// buildLevel constructs the level at index with its difficulty settings.
func (g *Game) buildLevel(index int) (*engine.Level, error) {
	return engine.NewLevel(g.levels[index], engine.Options{
		Settings: g.cfg.Settings(index),
		Assets:   poolAssets{textures: g.textures, sounds: g.sounds},
		Sounds:   g.sounds,
		Logger:   g.logger,
	})
}

// loadLevel switches to the level at index and starts the countdown.
func (g *Game) loadLevel(index int) {
	lvl, err := g.buildLevel(index)
	if err != nil {
		// Levels are validated in New; this only happens if one changed since.
		g.logger.Error("level failed to build", "index", index, "err", err)
		g.state = StateGameOver
		return
	}

	g.level = lvl
	g.levelIndex = index
	g.startCountdown()
	g.logger.Info("level started",
		"index", index+1,
		"name", lvl.Name(),
		"breakable", lvl.Remaining(),
		"ball_speed", lvl.Settings().BallSpeed)
}

func (g *Game) startCountdown() {
	g.state = StateReady
	g.readyTicks = g.cfg.Gameplay.ReadyTicks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionMute) {
		g.sounds.SetEnabled(!g.sounds.Enabled())
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin || g.state == StatePaused) {
		g.logger.Info("campaign restarted", "score", g.score)
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.resumeState
		case StatePlaying, StateReady:
			g.resumeState = g.state
			g.state = StatePaused
		}
	}

	// Don't update if paused or the campaign is over
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.state == StateReady {
		if g.readyTicks > 0 && !in.Has(core.ActionConfirm) {
			g.readyTicks--
			g.level.Paddle().Move(in, g.level.Settings().WindowW)
			return core.StepResult{State: g.State()}
		}
		g.readyTicks = 0
		g.state = StatePlaying
	}

	return g.play(in)
}

// play runs one level frame and folds its deltas into the campaign.
func (g *Game) play(in core.InputFrame) core.StepResult {
	g.level.Update(in)

	scoreDelta, livesDelta := g.level.ScoreDelta(), g.level.LivesDelta()
	g.level.ClearDeltas()
	g.score += scoreDelta
	g.lives += livesDelta

	result := core.StepResult{LifeLost: livesDelta < 0}

	switch {
	case g.lives <= 0:
		g.lives = 0
		g.state = StateGameOver
		g.logger.Info("game over", "score", g.score, "level", g.levelIndex+1)
	case g.level.AllBricksBroken():
		result.LevelCleared = true
		g.logger.Info("level cleared", "index", g.levelIndex+1, "score", g.score)
		if g.levelIndex+1 >= len(g.levels) {
			g.state = StateWin
			g.logger.Info("campaign won", "score", g.score)
			break
		}
		g.loadLevel(g.levelIndex + 1)
	case result.LifeLost:
		g.startCountdown()
	}

	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// CampaignState returns the detailed campaign state.
func (g *Game) CampaignState() State {
	return g.state
}

// Level returns the level being played.
func (g *Game) Level() *engine.Level {
	return g.level
}

// LevelIndex returns the zero-based index of the current level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// LevelCount returns the number of levels in the campaign.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// poolAssets resolves engine asset references through the two pools.
type poolAssets struct {
	textures *assets.TexturePool
	sounds   *assets.SoundPool
}

func (a poolAssets) TextureIndex(ref string) int { return a.textures.Load(ref) }

func (a poolAssets) SoundIndex(ref string) int { return a.sounds.Load(ref) }
