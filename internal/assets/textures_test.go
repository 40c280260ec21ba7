package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/engine"
)

func writePNG(t *testing.T, dir, name string, fill func(x, y int) color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, fill(x, y))
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestTexturePoolImageAverage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "green.png", func(x, y int) color.Color {
		return color.NRGBA{0, 205, 0, 255}
	})
	writePNG(t, dir, "half.png", func(x, y int) color.Color {
		if x < 2 {
			return color.NRGBA{255, 0, 0, 255}
		}
		return color.NRGBA{0, 0, 0, 0}
	})
	writePNG(t, dir, "clear.png", func(x, y int) color.Color {
		return color.NRGBA{}
	})

	pool := NewTexturePool(dir, nil)

	green := pool.Load("green.png")
	require.NotEqual(t, engine.NoAsset, green)
	assert.Equal(t, core.ColorGreen, pool.Color(green))

	half := pool.Load("half.png")
	assert.Equal(t, core.ColorBrightRed, pool.Color(half), "transparent pixels do not darken the average")

	clear := pool.Load("clear.png")
	assert.Equal(t, core.ColorDefault, pool.Color(clear))
}

func TestTexturePoolColorReferences(t *testing.T) {
	pool := NewTexturePool("", nil)

	red := pool.Load("red")
	orange := pool.Load("#ff8700")

	assert.Equal(t, 0, red)
	assert.Equal(t, 1, orange)
	assert.Equal(t, core.ColorRed, pool.Color(red))
	assert.Equal(t, core.ColorOrange, pool.Color(orange))
}

func TestTexturePoolDeduplicates(t *testing.T) {
	pool := NewTexturePool("", nil)

	a := pool.TextureIndex("cyan")
	b := pool.TextureIndex("cyan")

	assert.Equal(t, a, b)
	assert.Equal(t, 1, pool.Len())
}

func TestTexturePoolFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.png"), []byte("not an image"), 0o600))

	pool := NewTexturePool(dir, nil)

	assert.Equal(t, engine.NoAsset, pool.Load("missing.png"))
	assert.Equal(t, engine.NoAsset, pool.Load("junk.png"))
	assert.Equal(t, engine.NoAsset, pool.Load(""))
	assert.Equal(t, 0, pool.Len())

	_, ok := pool.Get(5)
	assert.False(t, ok)
	assert.Equal(t, core.ColorDefault, pool.Color(engine.NoAsset))
}
