// bricks is a terminal brick-breaker built on a pixel-space level engine.
//
// Usage:
//
//	bricks play              - Play the level campaign
//	bricks levels            - List the levels that would be played
//	bricks check [dir]       - Validate every level file in a directory
//
// Global flags:
//
//	--config <path>      - Custom bricks.yaml
//	--levels <dir>       - Level directory (default: built-in levels)
//	--resources <dir>    - Root for texture and sound paths
//	--difficulty <name>  - easy, normal, hard or fixed
//	--fps <rate>         - Tick rate (default: from config)
//	--log-file <path>    - Log file while playing (default: ~/.bricks/bricks.log)
//	--log-level <level>  - debug, info, warn or error
//	--mute               - Disable sound
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/engine"
	"github.com/vovakirdan/tui-bricks/internal/levels"
)

var (
	// Global flags
	flagConfig     string
	flagLevels     string
	flagResources  string
	flagDifficulty string
	flagFPS        int
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - break blocks in your terminal",
	Long: `Bricks is a terminal brick-breaker. Levels are XML or YAML files
describing a grid of brick types; a campaign plays them in file name order.

Available commands:
  play     - Play the campaign
  levels   - List levels
  check    - Validate a level directory

Examples:
  bricks play
  bricks play --level 3
  bricks play --levels ./my-levels --resources ./my-levels/assets
  bricks levels --difficulty hard
  bricks check ./my-levels`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom bricks.yaml")
	pf.StringVar(&flagLevels, "levels", "", "Level directory (default: built-in levels)")
	pf.StringVar(&flagResources, "resources", "", "Root directory for textures and sounds")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file used while playing (default: ~/.bricks/bricks.log)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bricks",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// stderrLogger returns a logger for non-interactive commands.
func stderrLogger() *log.Logger {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return logger
}

// openLogFile opens the log file used while the TUI owns the terminal.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		dir := config.HomeDir()
		if dir == "" {
			return nil, fmt.Errorf("no home directory for the default log file")
		}
		path = filepath.Join(dir, "bricks.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-chosen log path
}

// loadConfig loads bricks.yaml and applies the command line overrides.
func loadConfig(logger *log.Logger) (config.BricksConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.BricksConfig{}, err
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return config.BricksConfig{}, fmt.Errorf("unknown difficulty %q (want one of %v)", flagDifficulty, config.Presets())
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Gameplay.TickRate = flagFPS
	}
	if flagLevels != "" {
		cfg.Gameplay.LevelsDir = flagLevels
	}
	if flagResources != "" {
		cfg.Gameplay.Resources = flagResources
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return config.BricksConfig{}, err
	}
	return cfg, nil
}

// levelLoader returns the loader for dir, or the built-in set when dir is empty.
func levelLoader(dir string, logger *log.Logger) *levels.Loader {
	if dir == "" {
		return levels.Builtin(logger)
	}
	return levels.NewLoader(dir, logger)
}

// loadLevels parses every level of the configured directory.
func loadLevels(cfg config.BricksConfig, logger *log.Logger) ([]engine.LevelConfig, error) {
	return levelLoader(cfg.Gameplay.LevelsDir, logger).LoadAll()
}

// resourceRoot is where texture and sound paths resolve: the configured
// resources directory, else the level directory.
func resourceRoot(cfg config.BricksConfig) string {
	if cfg.Gameplay.Resources != "" {
		return cfg.Gameplay.Resources
	}
	return cfg.Gameplay.LevelsDir
}
