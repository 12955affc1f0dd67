// chomp is a TUI maze-chase game played in the terminal.
//
// Usage:
//
//	chomp list               - List available game modes
//	chomp play <mode>        - Play a mode directly
//	chomp menu               - Start menu to pick modes interactively
//	chomp serve              - Start SSH server for remote play
//	chomp scores <mode>      - Show high scores for a mode
//	chomp mazes              - List available mazes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomp/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/nlitvinov/tui-chomp/internal/games/chomp"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - A maze-chase game in your terminal",
	Long: `Chomp is a terminal maze-chase game. Guide the player through a maze,
eat every pellet, and stay away from the pursuers. Power pellets turn
the tables for a few seconds.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  mazes    - List built-in and custom mazes

Examples:
  chomp list
  chomp play chomp
  chomp play chomp_endless --difficulty hard
  chomp menu
  chomp serve --ssh :2222
  chomp scores chomp`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazesCmd)
}
