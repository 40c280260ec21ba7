package engine

import "github.com/vovakirdan/tui-bricks/internal/core"

// BrickView is the render-ready state of one existing brick.
type BrickView struct {
	Rect         core.Rect
	TextureIndex int
	Key          rune
	HitPoints    int
}

// Snapshot is a render-ready copy of the level state.
type Snapshot struct {
	Bricks          []BrickView // existing bricks only, grid order
	Paddle          core.Rect
	Ball            core.Rect
	BallVelocity    Velocity
	Background      string
	BackgroundIndex int
	ScoreDelta      int
	LivesDelta      int
	AllBricksBroken bool
}

// Snapshot copies the current state. The copy is safe to keep after later
// Update calls.
func (l *Level) Snapshot() Snapshot {
	views := make([]BrickView, 0, len(l.bricks))
	for _, b := range l.bricks {
		if !b.Exists() {
			continue
		}
		views = append(views, BrickView{
			Rect:         b.Rect(),
			TextureIndex: b.TextureIndex(),
			Key:          b.Key(),
			HitPoints:    b.HitPoints(),
		})
	}

	return Snapshot{
		Bricks:          views,
		Paddle:          l.paddle.Rect(),
		Ball:            l.ball.Rect(),
		BallVelocity:    l.ball.Velocity(),
		Background:      l.main.Background,
		BackgroundIndex: l.backgroundIndex,
		ScoreDelta:      l.scoreDelta,
		LivesDelta:      l.livesDelta,
		AllBricksBroken: l.allBricksBroken,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range []core.Rect{snap.Paddle, snap.Ball} {
		mix(r.X)
		mix(r.Y)
		mix(r.W)
		mix(r.H)
	}
	mix(snap.BallVelocity.X)
	mix(snap.BallVelocity.Y)
	mix(len(snap.Bricks))
	for _, b := range snap.Bricks {
		mix(b.Rect.X)
		mix(b.Rect.Y)
		mix(b.HitPoints)
		mix(int(b.Key))
	}
	return h
}
