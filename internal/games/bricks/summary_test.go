package bricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

func TestSummarize(t *testing.T) {
	levels := []engine.LevelConfig{
		testLevel("one", 1, 4, "AAUA"),
		testLevel("two", 2, 2, "A__U"),
	}

	got, err := Summarize(levels, testConfig())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, LevelSummary{Index: 0, Name: "one", Rows: 1, Cols: 4, Bricks: 4, Breakable: 3, Types: 2}, got[0])
	assert.Equal(t, 2, got[1].Bricks)
	assert.Equal(t, 1, got[1].Breakable)
}

func TestSummarizeReportsConfigErrors(t *testing.T) {
	_, err := Summarize([]engine.LevelConfig{testLevel("bad", 1, 2, "AX")}, testConfig())
	assert.ErrorIs(t, err, engine.ErrUnknownBrickID)
}
