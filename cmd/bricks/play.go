package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricks/internal/assets"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
)

var (
	flagLevel int
	flagPick  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level campaign",
	Long: `Play every level in order. Clearing all breakable bricks advances to
the next level; losing every life ends the campaign.

Controls:
  Left/A, Right/D  - Move paddle
  Space/Enter      - Launch ball
  P/Esc            - Pause
  R                - Restart (after game over, win or while paused)
  M                - Toggle sound
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings with per-level progression
  hard   - Fewer lives, narrower paddle, faster ball
  fixed  - No progression between levels

Examples:
  bricks play
  bricks play --level 2
  bricks play --pick
  bricks play --difficulty hard --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the starting level from a list")
}

func runPlay(cmd *cobra.Command, args []string) {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		stderrLogger().Fatal("cannot open log file", "err", err)
	}
	defer logFile.Close()

	// Setup problems are shown on the terminal as well as in the log file.
	logger, err := newLogger(io.MultiWriter(os.Stderr, logFile), flagLogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	lvls, err := loadLevels(cfg, logger)
	if err != nil {
		logger.Fatal("level configuration error", "err", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	start := flagLevel - 1
	if flagPick && len(lvls) > 1 {
		summaries, sumErr := bricks.Summarize(lvls, cfg)
		if sumErr != nil {
			logger.Fatal("level configuration error", "err", sumErr)
		}
		index, ok, selErr := tui.RunLevelSelector(summaries, width, height)
		if selErr != nil {
			logger.Fatal("level selector failed", "err", selErr)
		}
		if !ok {
			return
		}
		start = index
	}

	root := resourceRoot(cfg)
	textures := assets.NewTexturePool(root, logger)
	sounds := assets.NewSoundPool(root, cfg.Audio.Volume, true, logger)
	if startErr := sounds.Start(); startErr != nil {
		logger.Warn("continuing without sound", "err", startErr)
	}
	defer sounds.Close()
	sounds.SetEnabled(cfg.Audio.Enabled)

	game, err := bricks.New(bricks.Options{
		Levels:     lvls,
		Config:     cfg,
		Textures:   textures,
		Sounds:     sounds,
		Logger:     logger,
		StartLevel: start,
	})
	if err != nil {
		logger.Fatal("cannot start campaign", "err", err)
	}

	// The TUI owns the terminal from here on.
	logger.SetOutput(logFile)

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Gameplay.TickRate,
	}
	hold := time.Duration(cfg.Gameplay.KeyHoldMs) * time.Millisecond
	if err := tui.Run(game, runtime, tui.Options{
		HoldTicks: tui.HoldTicks(hold, runtime.TickRate),
		Logger:    logger,
	}); err != nil {
		logger.Error("terminal loop failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	state := game.State()
	result := "Quit"
	switch {
	case state.Won:
		result = "You win"
	case state.GameOver:
		result = "Game over"
	}
	fmt.Printf("%s. Score: %d (level %d/%d)\n", result, state.Score, game.LevelIndex()+1, game.LevelCount())
}
