package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nlitvinov/tui-chomp/internal/core"
	"github.com/nlitvinov/tui-chomp/internal/games/chomp"
	"github.com/nlitvinov/tui-chomp/internal/platform/tui"
	"github.com/nlitvinov/tui-chomp/internal/registry"
	"github.com/nlitvinov/tui-chomp/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  WASD/Arrows - Move
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  chomp play chomp
  chomp play chomp_endless --difficulty easy
  chomp play chomp --maze arena
  chomp play chomp --config ./my-chomp.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Maze ID to play (run 'chomp mazes' to see choices)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chomp list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path, difficulty and maze before creation
	chomp.SetConfigPath(flagConfig)
	chomp.SetDifficultyPreset(flagDifficulty)
	chomp.SetMaze(flagMaze)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
