// Package levels discovers and parses level files. Levels are played in file
// name order; one invalid file aborts the whole load.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/engine"
	"github.com/vovakirdan/tui-bricks/internal/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// BuiltinRoot is the display name of the embedded level set.
const BuiltinRoot = "builtin"

// ErrNoLevels is returned when a directory holds no level files.
var ErrNoLevels = errors.New("no level files found")

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader for the level files directly inside root.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root), logger: orDiscard(logger)}
}

// Builtin creates a loader for the embedded level set.
func Builtin(logger *log.Logger) *Loader {
	sub, err := fs.Sub(builtinFS, BuiltinRoot)
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	return &Loader{Root: BuiltinRoot, fsys: sub, logger: orDiscard(logger)}
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Files returns the supported level file names in play order.
func (l *Loader) Files() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading level directory %s: %w", l.Root, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(e.Name()))) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll parses every level file. The first invalid file aborts the load.
func (l *Loader) LoadAll() ([]engine.LevelConfig, error) {
	names, err := l.Files()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, l.Root)
	}

	levels := make([]engine.LevelConfig, 0, len(names))
	for _, name := range names {
		cfg, err := l.LoadFile(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, cfg)
	}

	l.logger.Info("levels loaded", "root", l.Root, "count", len(levels))
	return levels, nil
}

// LoadFile parses one level file, relative to the loader root.
func (l *Loader) LoadFile(name string) (engine.LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return engine.LevelConfig{}, fmt.Errorf("reading level %s: %w", name, err)
	}

	source := filepath.Join(l.Root, name)
	cfg, err := parseByExtension(data, strings.ToLower(path.Ext(name)), source)
	if err != nil {
		return engine.LevelConfig{}, err
	}
	if cfg.Name == "" {
		cfg.Name = NameFromFile(name)
	}

	l.logger.Debug("level parsed", "file", source, "name", cfg.Name,
		"rows", cfg.Main.RowCount, "cols", cfg.Main.ColCount, "types", len(cfg.BrickTypes))
	return cfg, nil
}

// NameFromFile derives a display name from a level file name: the extension
// and a leading ordering number are dropped, separators become spaces.
// "03_iron_wall.xml" becomes "iron wall".
func NameFromFile(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	trimmed := strings.TrimLeftFunc(base, unicode.IsDigit)
	trimmed = strings.TrimLeft(trimmed, "_-. ")
	if trimmed == "" {
		trimmed = base
	}
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, trimmed)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext, source string) (engine.LevelConfig, error) {
	switch ext {
	case ".xml":
		return formats.ParseXML(data, source)
	case ".yaml", ".yml":
		return formats.ParseYAML(data, source)
	default:
		return engine.LevelConfig{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
