package bricks

import "github.com/vovakirdan/tui-bricks/internal/engine"

// Snapshot contains the campaign state for replay and determinism checks.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Lives      int
	LevelIndex int
	ReadyTicks int
	Remaining  int
	Level      engine.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		State:      string(g.state),
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		ReadyTicks: g.readyTicks,
	}
	if g.level != nil {
		snap.Remaining = g.level.Remaining()
		snap.Level = g.level.Snapshot()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Level.Hash()
	mix := func(v uint64) {
		h = h*31 + v
	}
	mix(s.Tick)
	for _, v := range []int{s.Score, s.Lives, s.LevelIndex, s.ReadyTicks, s.Remaining} {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}
	for _, r := range s.State {
		mix(uint64(r))
	}
	return h
}
