package engine

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Layout constants in pixels.
const (
	BrickHeight = 20 // fixed height of every brick
	TopMargin   = 40 // space above the first brick row
)

// DefaultEmptyChar marks a grid cell without a brick.
const DefaultEmptyChar = '_'

// MainAttributes are the level-wide grid settings.
type MainAttributes struct {
	RowCount   int
	ColCount   int
	RowSpacing int
	ColSpacing int
	Background string
}

// LevelConfig is a parsed level description, independent of its file format.
type LevelConfig struct {
	Name       string
	Source     string // file the level came from, for error messages
	Main       MainAttributes
	BrickTypes []*BrickType // in declaration order
	Layout     string
	EmptyChar  rune // zero means DefaultEmptyChar
}

// emptyChar returns the configured reserved character.
func (c LevelConfig) emptyChar() rune {
	if c.EmptyChar == 0 {
		return DefaultEmptyChar
	}
	return c.EmptyChar
}

// typeTable indexes brick types by key, rejecting duplicates and keys that
// collide with the empty character or whitespace.
func typeTable(types []*BrickType, empty rune) (map[rune]*BrickType, error) {
	table := make(map[rune]*BrickType, len(types))
	for _, t := range types {
		if t.Key == empty || unicode.IsSpace(t.Key) || t.Key == 0 {
			return nil, configErrorf(ErrInvalidAttribute, "brick id %q is reserved", t.Key)
		}
		if _, dup := table[t.Key]; dup {
			return nil, configErrorf(ErrDuplicateBrickID, "%q", t.Key)
		}
		table[t.Key] = t
	}
	return table, nil
}

// BrickWidth returns the pixel width of one brick for the given grid.
func BrickWidth(main MainAttributes, windowW int) int {
	if main.ColCount <= 0 {
		return 0
	}
	free := float64(windowW) - float64(main.ColCount-1)*float64(main.ColSpacing)
	return int(math.Round(free / float64(main.ColCount)))
}

// CellRect returns the pixel rectangle of grid cell (row, col).
func CellRect(main MainAttributes, brickW, row, col int) core.Rect {
	x := main.ColSpacing/2 + col*(brickW+main.ColSpacing)
	y := TopMargin + row*(BrickHeight+main.RowSpacing)
	return core.NewRect(x, y, brickW, BrickHeight)
}

// BuildLayout turns the layout string into positioned bricks, row-major.
// Whitespace separates nothing and is skipped; the empty character leaves its
// cell without a brick. Any other unknown character fails the whole build.
func BuildLayout(cfg LevelConfig, windowW int) ([]*Brick, error) {
	main := cfg.Main
	if main.RowCount <= 0 || main.ColCount <= 0 {
		return nil, configErrorf(ErrInvalidGrid, "%d rows x %d columns", main.RowCount, main.ColCount)
	}
	if main.RowCount > math.MaxInt/main.ColCount {
		return nil, configErrorf(ErrInvalidGrid, "%d rows x %d columns overflows", main.RowCount, main.ColCount)
	}
	if main.RowSpacing < 0 || main.ColSpacing < 0 {
		return nil, configErrorf(ErrInvalidGrid, "negative spacing (row %d, column %d)", main.RowSpacing, main.ColSpacing)
	}

	brickW := BrickWidth(main, windowW)
	if brickW <= 0 {
		return nil, configErrorf(ErrInvalidGrid, "%d columns do not fit a %dpx window", main.ColCount, windowW)
	}

	empty := cfg.emptyChar()
	types, err := typeTable(cfg.BrickTypes, empty)
	if err != nil {
		return nil, err
	}

	layout := cfg.Layout
	cursor := 0
	cells := main.RowCount * main.ColCount
	if n := utf8.RuneCountInString(layout); cells > n {
		return nil, configErrorf(ErrLayoutTooShort, "expected %d cells, layout has %d characters", cells, n)
	}
	bricks := make([]*Brick, 0, cells)

	row := -1
	for i := 0; i < cells; i++ {
		col := i % main.ColCount
		if col == 0 {
			row++
		}

		ch, next, ok := nextCell(layout, cursor)
		if !ok {
			return nil, configErrorf(ErrLayoutTooShort, "expected %d cells, found %d", cells, i)
		}
		cursor = next

		if ch == empty {
			continue
		}
		t, known := types[ch]
		if !known {
			return nil, configErrorf(ErrUnknownBrickID, "%q at row %d, column %d", ch, row+1, col+1)
		}
		bricks = append(bricks, NewBrick(t, CellRect(main, brickW, row, col)))
	}

	if ch, _, ok := nextCell(layout, cursor); ok {
		return nil, configErrorf(ErrLayoutTooLong, "unexpected %q after %d cells", ch, cells)
	}

	return bricks, nil
}

// nextCell returns the next non-whitespace character at or after byte offset
// i, and the offset just past it.
func nextCell(s string, i int) (rune, int, bool) {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if !unicode.IsSpace(r) {
			return r, i, true
		}
	}
	return 0, i, false
}
