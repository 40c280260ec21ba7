package bricks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-bricks/internal/assets"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/engine"
)

func testRenderer(dst *core.Screen) *cellRenderer {
	s := engine.Settings{WindowW: 600, WindowH: 500}
	return newCellRenderer(dst, core.NewRect(1, 2, 60, 20), s, assets.NewTexturePool("", nil))
}

func TestCellRendererScale(t *testing.T) {
	c := testRenderer(core.NewScreen(80, 24))

	tests := []struct {
		name string
		in   core.Rect
		want core.Rect
		ok   bool
	}{
		{"whole window", core.NewRect(0, 0, 600, 500), core.NewRect(1, 2, 60, 20), true},
		{"exact cells", core.NewRect(100, 50, 50, 25), core.NewRect(11, 4, 5, 1), true},
		{"straddling", core.NewRect(105, 60, 10, 10), core.NewRect(11, 4, 2, 1), true},
		{"tiny", core.NewRect(0, 0, 1, 1), core.NewRect(1, 2, 1, 1), true},
		{"clipped left", core.NewRect(-20, 0, 30, 25), core.NewRect(1, 2, 1, 1), true},
		{"below field", core.NewRect(0, 520, 10, 10), core.Rect{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := c.scale(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCellRendererTextures(t *testing.T) {
	dst := core.NewScreen(80, 24)
	c := testRenderer(dst)
	red := c.textures.Load("red")
	none := c.textures.Load("default")

	c.DrawTexture(none, core.NewRect(0, 0, 600, 500))
	assert.Equal(t, ' ', dst.Get(5, 5), "colorless background is not drawn")

	c.DrawTexture(red, core.NewRect(0, 0, 100, 25))
	assert.Equal(t, core.Cell{Rune: BrickChar, Color: core.ColorRed}, dst.GetCell(1, 2))
	assert.Equal(t, ' ', dst.Get(10, 2), "wide bricks keep a gap column")

	c.DrawTexture(engine.NoAsset, core.NewRect(200, 0, 100, 25))
	assert.Equal(t, PlainBrickChar, dst.Get(21, 2))

	c.FillRect(core.NewRect(300, 250, 10, 10), engine.BallColor)
	assert.Equal(t, BallChar, dst.Get(31, 12))
}

func TestCellRendererBallOnlyInsideField(t *testing.T) {
	dst := core.NewScreen(80, 24)
	c := testRenderer(dst)

	c.FillRect(core.NewRect(295, 245, 10, 10), engine.BallColor)
	assert.Equal(t, BallChar, dst.Get(31, 12))

	dst.Clear()
	c.FillRect(core.NewRect(295, 510, 10, 10), engine.BallColor)
	assert.NotContains(t, dst.String(), string(BallChar), "a ball below the floor is not drawn")
}
