package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-catch/internal/config"
	"github.com/vovakirdan/cat-catch/internal/core"
	"github.com/vovakirdan/cat-catch/internal/games/catch"
	"github.com/vovakirdan/cat-catch/internal/platform/tui"
	"github.com/vovakirdan/cat-catch/internal/registry"
	"github.com/vovakirdan/cat-catch/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagHardcore   bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round of Cat Catch.

Controls:
  Left/A/H     - Move bucket left
  Right/D/L    - Move bucket right
  Space/Down   - Stop
  P/Esc        - Pause
  B            - Back (when paused or game over)
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower speed-up, five more misses allowed
  normal - Config as loaded
  hard   - Faster speed-up, five fewer misses allowed
  fixed  - Speed never increases

Examples:
  catch play
  catch play catch_hardcore
  catch play --hardcore --name alice
  catch play --difficulty easy
  catch play --config ./my-catch.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard (default $USER)")
	playCmd.Flags().BoolVar(&flagHardcore, "hardcore", false, "Play the hardcore mode")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := catch.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagHardcore {
		gameID = catch.HardcoreGameID
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'catch list' to see available modes)", gameID)
	}

	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, cleanup, err := newLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := flagName
	if player == "" {
		player = currentUser()
	}

	if err := tui.Run(game, store, runtimeConfig(), tui.Options{Player: player, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// applyGameFlags passes --config and --difficulty to the catch modes.
// An explicit config file that cannot be loaded is an error.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadCatch(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	catch.SetConfigPath(flagConfig)
	catch.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// currentUser names the local player when --name is not given.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
