package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

const validYAML = `name: Pyramid
rows: 2
cols: 4
row_spacing: 2
col_spacing: 4
background: black
brick_types:
  - id: S
    texture: red
    hit_points: 2
    hit_sound: tone:660
    break_sound: tone:880
    break_score: 50
  - id: W
    texture: "#808080"
    hit_points: infinite
bricks: |
  SSSS
  W__W
`

func TestParseYAMLValid(t *testing.T) {
	cfg, err := ParseYAML([]byte(validYAML), "02.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Pyramid", cfg.Name)
	assert.Equal(t, engine.MainAttributes{
		RowCount: 2, ColCount: 4, RowSpacing: 2, ColSpacing: 4, Background: "black",
	}, cfg.Main)
	require.Len(t, cfg.BrickTypes, 2)
	assert.Equal(t, 'S', cfg.BrickTypes[0].Key)
	assert.Equal(t, 2, cfg.BrickTypes[0].HitPoints)
	assert.Equal(t, "tone:880", cfg.BrickTypes[0].BreakSound)
	assert.Equal(t, 50, cfg.BrickTypes[0].BreakScore)
	assert.False(t, cfg.BrickTypes[1].Breakable())
	assert.Equal(t, "#808080", cfg.BrickTypes[1].Texture)

	bricks, err := engine.BuildLayout(cfg, 600)
	require.NoError(t, err)
	assert.Len(t, bricks, 6)
}

func TestParseYAMLMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		detail string
	}{
		{"rows", "cols: 1\nrow_spacing: 0\ncol_spacing: 0\nbackground: x\nbrick_types: []\nbricks: _\n", "rows"},
		{"background", "rows: 1\ncols: 1\nrow_spacing: 0\ncol_spacing: 0\nbrick_types: []\nbricks: _\n", "background"},
		{"brick_types", "rows: 1\ncols: 1\nrow_spacing: 0\ncol_spacing: 0\nbackground: x\nbricks: _\n", "brick_types"},
		{"bricks", "rows: 1\ncols: 1\nrow_spacing: 0\ncol_spacing: 0\nbackground: x\nbrick_types: []\n", "bricks"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data), "m.yaml")
			assert.ErrorIs(t, err, engine.ErrMissingAttribute)
			assert.Contains(t, err.Error(), tc.detail)
		})
	}
}

func TestParseYAMLBrickTypeErrorsCarryLine(t *testing.T) {
	data := `rows: 1
cols: 1
row_spacing: 0
col_spacing: 0
background: x
brick_types:
  - id: A
    texture: red
  - id: B
    hit_points: 1
bricks: A
`
	_, err := ParseYAML([]byte(data), "t.yaml")
	require.ErrorIs(t, err, engine.ErrMissingAttribute)

	var ce *engine.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 9, ce.Line)
	assert.Contains(t, err.Error(), "texture")
}

func TestParseYAMLInvalidValues(t *testing.T) {
	base := "rows: 1\ncols: 1\nrow_spacing: 0\ncol_spacing: 0\nbackground: x\nbricks: A\n"
	tests := []struct {
		name string
		data string
		kind error
	}{
		{"negative rows", "rows: -1\ncols: 1\nrow_spacing: 0\ncol_spacing: 0\nbackground: x\nbrick_types: []\nbricks: _\n", engine.ErrInvalidAttribute},
		{"text rows", "rows: many\ncols: 1\nrow_spacing: 0\ncol_spacing: 0\nbackground: x\nbrick_types: []\nbricks: _\n", engine.ErrInvalidAttribute},
		{"long id", base + "brick_types:\n  - {id: AB, texture: red}\n", engine.ErrInvalidAttribute},
		{"bad hp", base + "brick_types:\n  - {id: A, texture: red, hit_points: x}\n", engine.ErrInvalidAttribute},
		{"types not a list", base + "brick_types: A\n", engine.ErrInvalidAttribute},
		{"not a mapping", "- 1\n- 2\n", engine.ErrMalformed},
		{"broken yaml", "rows: [1\n", engine.ErrMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data), "i.yaml")
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}
