package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

func testSummaries() []bricks.LevelSummary {
	return []bricks.LevelSummary{
		{Index: 0, Name: "Warm Up", Rows: 4, Cols: 10, Bricks: 40, Breakable: 40},
		{Index: 1, Name: "Checkerboard", Rows: 5, Cols: 12, Bricks: 30, Breakable: 30},
	}
}

func TestSelectorPicksCursorRow(t *testing.T) {
	m := NewSelectorModel(testSummaries(), 80, 24)
	assert.Contains(t, m.View(), "Checkerboard")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SelectorModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SelectorModel)

	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.Chosen())
	assert.Empty(t, m.View())
}

func TestSelectorQuit(t *testing.T) {
	m := NewSelectorModel(testSummaries(), 80, 24)

	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, -1, next.(SelectorModel).Chosen())
}
