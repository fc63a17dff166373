package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui2048/internal/config"
	"github.com/vovakirdan/tui2048/internal/core"
	"github.com/vovakirdan/tui2048/internal/feedback"
	"github.com/vovakirdan/tui2048/internal/game"
	"github.com/vovakirdan/tui2048/internal/platform/tui"
)

var (
	flagDifficulty string
	flagNoEmoji    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL - Move
  Mouse drag       - Swipe to move
  Click buttons    - Move or start a new game
  N/R              - New game
  E                - Toggle emoji tiles
  X                - Reset best score
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options (chance that a new tile is a 4):
  easy   - 5%
  normal - 10%
  hard   - 25%
  custom - game.spawn4 from the config file

Without --difficulty a selector is shown first, on the preset matching game.spawn4.

Examples:
  t2048 play
  t2048 play --difficulty easy
  t2048 play --no-emoji --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
	playCmd.Flags().BoolVar(&flagNoEmoji, "no-emoji", false, "Show plain numbers on tiles")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The TUI owns stdout, so logs only go to log.file when configured.
	cfg, logger := mustSetup(nil, "t2048")
	defer logger.Close()

	width, height := terminalSize()

	preset, err := choosePreset(width, height, cfg.Game.Spawn4)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset == "" {
		return // Quit from the selector
	}
	config.ApplyPreset(&cfg, preset)

	if flagNoEmoji {
		cfg.Display.Emoji = false
	}

	store := openStoreOrWarn(cfg.Storage.DBPath, logger)

	notifiers := feedback.Multi{feedback.LogNotifier{Logger: logger.Logger}}
	if cfg.Display.Bell {
		notifiers = append(notifiers, feedback.NewBell(os.Stdout))
	}

	g := game.New(tui.GameOptions(cfg, store, notifiers, logger.Logger))
	logger.Info("starting game", "difficulty", preset, "spawn4", cfg.Game.Spawn4, "win_tile", cfg.Game.WinTile)

	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	rc.TickRate = cfg.Display.TickRate
	rc.Seed = flagSeed
	runErr := tui.Run(g, rc, tui.Options{
		Store:          store,
		SwipeThreshold: cfg.Input.SwipeThreshold,
		Logger:         logger.Logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// choosePreset resolves --difficulty or asks the user.
// An empty preset with a nil error means the user quit.
func choosePreset(width, height int, spawn4 float64) (config.DifficultyPreset, error) {
	if flagDifficulty != "" {
		return config.ParsePreset(flagDifficulty)
	}

	preset, ok, err := tui.RunDifficultySelector(width, height, spawn4)
	if err != nil || !ok {
		return "", err
	}
	return preset, nil
}
