package bricks

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// LevelSummary describes a built level for listings.
type LevelSummary struct {
	Index     int
	Name      string
	Source    string
	Rows      int
	Cols      int
	Bricks    int
	Breakable int
	Types     int
}

// Summarize builds every level without assets and reports its shape.
// The first configuration error is returned.
func Summarize(levels []engine.LevelConfig, cfg config.BricksConfig) ([]LevelSummary, error) {
	out := make([]LevelSummary, 0, len(levels))
	for i, lc := range levels {
		lvl, err := engine.NewLevel(lc, engine.Options{Settings: cfg.Settings(i)})
		if err != nil {
			return nil, err
		}
		out = append(out, LevelSummary{
			Index:     i,
			Name:      lvl.Name(),
			Source:    lc.Source,
			Rows:      lc.Main.RowCount,
			Cols:      lc.Main.ColCount,
			Bricks:    len(lvl.Bricks()),
			Breakable: lvl.Remaining(),
			Types:     len(lvl.BrickTypes()),
		})
	}
	return out, nil
}
