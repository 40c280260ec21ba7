// Package formats provides pluggable level file format parsers. Every parser
// produces an engine.LevelConfig; errors are *engine.ConfigError values
// carrying the source name and, where known, the line.
package formats

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// Infinite is the hit point value of an indestructible brick.
const Infinite = "Infinite"

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".xml", ".yaml", ".yml"}
}

// located builds a positioned configuration error.
func located(source string, line int, kind error, detail string) error {
	return &engine.ConfigError{Source: source, Line: line, Detail: detail, Err: kind}
}

// parseHitPoints accepts a non-negative integer, "Infinite" (any case) or an
// empty value. Zero means indestructible.
func parseHitPoints(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, Infinite) {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseNonNegative parses a grid attribute.
func parseNonNegative(v string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// singleRune returns the only rune of v.
func singleRune(v string) (rune, bool) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, true
}
