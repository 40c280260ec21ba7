// Package engine simulates one level of the brick game: brick layout, paddle
// and ball kinematics, collision response and the per-frame score and lives
// deltas. It is single-threaded; callers serialize Update and Render.
package engine

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Settings are the level-independent physical parameters, in pixels.
type Settings struct {
	WindowW int
	WindowH int

	PaddleW      int
	PaddleH      int
	PaddleSpeed  int
	PaddleBottom int // gap between the paddle and the bottom of the window

	BallSize     int
	BallSpeed    int
	BallVelocity Velocity // initial velocity; zero derives one from BallSpeed
}

// DefaultSettings mirrors the 600x500 window of the desktop version.
func DefaultSettings() Settings {
	return Settings{
		WindowW:      600,
		WindowH:      500,
		PaddleW:      100,
		PaddleH:      15,
		PaddleSpeed:  8,
		PaddleBottom: 20,
		BallSize:     10,
		BallSpeed:    6,
	}
}

// launchAngle is used to derive the initial velocity when none is configured.
const launchAngle = math.Pi / 6

// initialVelocity returns the configured start velocity, or one of magnitude
// BallSpeed heading up and to the right.
func (s Settings) initialVelocity() Velocity {
	if s.BallVelocity != (Velocity{}) {
		return s.BallVelocity
	}
	speed := float64(s.BallSpeed)
	return Velocity{
		X: int(math.Round(speed * math.Sin(launchAngle))),
		Y: int(math.Round(-speed * math.Cos(launchAngle))),
	}
}

// Assets resolves texture and sound references to pool indices. Unresolvable
// references return NoAsset.
type Assets interface {
	TextureIndex(path string) int
	SoundIndex(path string) int
}

// Options wires a level to its collaborators. Nil fields get no-op defaults.
type Options struct {
	Settings Settings
	Assets   Assets
	Sounds   SoundPlayer
	Logger   *log.Logger
}

// Level owns the bricks, the paddle and the ball of one level.
type Level struct {
	name            string
	main            MainAttributes
	backgroundIndex int
	types           []*BrickType
	bricks          []*Brick

	paddle Paddle
	ball   Ball

	settings Settings
	sounds   SoundPlayer
	logger   *log.Logger

	scoreDelta      int
	livesDelta      int
	allBricksBroken bool
}

// NewLevel validates cfg, assigns asset indices and builds the level.
// Any returned error is a *ConfigError; no partial level is produced.
func NewLevel(cfg LevelConfig, opts Options) (*Level, error) {
	s := opts.Settings
	if s.WindowW <= 0 || s.WindowH <= 0 {
		return nil, WithSource(configErrorf(ErrInvalidAttribute, "window %dx%d", s.WindowW, s.WindowH), cfg.Source)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = nopSounds{}
	}

	// Brick types are copied so that asset indices never leak between levels.
	types := make([]*BrickType, len(cfg.BrickTypes))
	for i, t := range cfg.BrickTypes {
		cp := *t
		if cp.HitPoints < 0 {
			return nil, WithSource(configErrorf(ErrInvalidAttribute, "brick %q has %d hit points", cp.Key, cp.HitPoints), cfg.Source)
		}
		cp.TextureIndex, cp.HitSoundIndex, cp.BreakSoundIndex = NoAsset, NoAsset, NoAsset
		if opts.Assets != nil {
			cp.TextureIndex = opts.Assets.TextureIndex(cp.Texture)
			if cp.HitSound != "" {
				cp.HitSoundIndex = opts.Assets.SoundIndex(cp.HitSound)
			}
			if cp.BreakSound != "" {
				cp.BreakSoundIndex = opts.Assets.SoundIndex(cp.BreakSound)
			}
		}
		types[i] = &cp
	}
	layoutCfg := cfg
	layoutCfg.BrickTypes = types

	bricks, err := BuildLayout(layoutCfg, s.WindowW)
	if err != nil {
		return nil, WithSource(err, cfg.Source)
	}

	l := &Level{
		name:            cfg.Name,
		main:            cfg.Main,
		backgroundIndex: NoAsset,
		types:           types,
		bricks:          bricks,
		settings:        s,
		sounds:          sounds,
		logger:          logger,
	}
	if opts.Assets != nil && cfg.Main.Background != "" {
		l.backgroundIndex = opts.Assets.TextureIndex(cfg.Main.Background)
	}

	l.paddle.SetSize(s.PaddleW, s.PaddleH)
	l.paddle.SetSpeed(s.PaddleSpeed)
	paddleY := s.WindowH - s.PaddleBottom - s.PaddleH
	l.paddle.SetInitialPosition((s.WindowW-s.PaddleW)/2, paddleY)

	l.ball.SetSize(s.BallSize, s.BallSize)
	l.ball.SetSpeed(s.BallSpeed)
	l.ball.SetInitialPosition((s.WindowW-s.BallSize)/2, paddleY-2*s.BallSize)
	l.ball.SetInitialVelocity(s.initialVelocity())

	l.allBricksBroken = l.countBreakable() == 0

	logger.Debug("level built",
		"name", l.name,
		"bricks", len(bricks),
		"breakable", l.countBreakable(),
		"grid", cfg.Main.RowCount*cfg.Main.ColCount)

	return l, nil
}

// Update advances the level by one frame using the held input.
func (l *Level) Update(in core.InputFrame) {
	l.scoreDelta = 0
	l.livesDelta = 0

	arrival := l.ball.Velocity()
	speed := l.ball.Speed()
	v := arrival

	l.paddle.Move(in, l.settings.WindowW)

	ballRect := l.ball.Rect()
	if ballRect.Intersects(l.paddle.Rect()) {
		v = PaddleBounce(ballRect, l.paddle.Rect(), speed)
	}

	allBroken := true
	for _, b := range l.bricks {
		if !b.Exists() {
			continue
		}
		if ballRect.Intersects(b.Rect()) {
			v = ReflectFromBrick(ballRect, arrival, v, b.Rect())
			b.OnHit(l.sounds)
			l.scoreDelta += b.Score()
		}
		if b.Exists() && b.Breakable() {
			allBroken = false
		}
	}
	l.allBricksBroken = allBroken

	v = reflectFromWalls(ballRect, v, l.settings.WindowW)

	if ballRect.Y >= l.settings.WindowH {
		l.livesDelta--
		l.paddle.resetPosition()
		l.ball.reset()
		l.logger.Debug("ball lost", "level", l.name)
		return
	}

	l.ball.SetVelocity(v)
	l.ball.UpdatePosition()
}

// ScoreDelta is the score gained during the last Update.
func (l *Level) ScoreDelta() int { return l.scoreDelta }

// LivesDelta is the lives change during the last Update.
func (l *Level) LivesDelta() int { return l.livesDelta }

// ClearDeltas zeroes the frame deltas once the caller has folded them in.
func (l *Level) ClearDeltas() {
	l.scoreDelta = 0
	l.livesDelta = 0
}

// AllBricksBroken reports whether no breakable brick remains.
func (l *Level) AllBricksBroken() bool { return l.allBricksBroken }

func (l *Level) Name() string { return l.name }

func (l *Level) Background() string { return l.main.Background }

func (l *Level) BackgroundIndex() int { return l.backgroundIndex }

func (l *Level) Settings() Settings { return l.settings }

// Paddle exposes the paddle for inspection and test setup.
func (l *Level) Paddle() *Paddle { return &l.paddle }

// Ball exposes the ball for inspection and test setup.
func (l *Level) Ball() *Ball { return &l.ball }

// Bricks returns every brick, broken ones included, in grid order.
func (l *Level) Bricks() []*Brick { return l.bricks }

// BrickTypes returns the level's brick types with their asset indices.
func (l *Level) BrickTypes() []*BrickType { return l.types }

func (l *Level) countBreakable() int {
	n := 0
	for _, b := range l.bricks {
		if b.Exists() && b.Breakable() {
			n++
		}
	}
	return n
}

// Remaining returns the number of breakable bricks still standing.
func (l *Level) Remaining() int { return l.countBreakable() }

// Render draws the background, every existing brick and the dynamic objects.
func (l *Level) Render(r Renderer) {
	if l.backgroundIndex != NoAsset {
		r.DrawTexture(l.backgroundIndex, core.NewRect(0, 0, l.settings.WindowW, l.settings.WindowH))
	}
	for _, b := range l.bricks {
		if b.Exists() {
			r.DrawTexture(b.TextureIndex(), b.Rect())
		}
	}
	for _, obj := range []DynamicObject{&l.paddle, &l.ball} {
		obj.Render(r)
	}
}
