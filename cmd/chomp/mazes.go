package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nlitvinov/tui-chomp/internal/games/chomp/mazes"
)

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List available mazes",
	Long: `Shows built-in mazes and any custom mazes found in ~/.chomp/mazes.

Custom mazes are YAML files with an id, a name, and the maze rows:

  id: spiral
  name: Spiral
  rows:
    - "#######"
    - "#P..#G#"
    - "#.#...#"
    - "#o..###"
    - "#######"

A custom maze with the same ID as a built-in one replaces it.

Examples:
  chomp mazes
  chomp play chomp --maze arena`,
	Run: runMazes,
}

func runMazes(cmd *cobra.Command, args []string) {
	custom, err := mazes.LoadUserMazes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load custom mazes: %v\n", err)
	}

	printMazeTable := func(header string, list []*mazes.Maze) {
		fmt.Println(header)
		fmt.Println()
		fmt.Printf("  %-12s  %-16s  %-7s  %s\n", "ID", "Name", "Size", "Pellets")
		fmt.Printf("  %-12s  %-16s  %-7s  %s\n", "--", "----", "----", "-------")
		for _, m := range list {
			size := fmt.Sprintf("%dx%d", m.Cols(), m.Rows())
			fmt.Printf("  %-12s  %-16s  %-7s  %d\n", m.ID, m.Name, size, m.Pellets())
		}
		fmt.Println()
	}

	printMazeTable("Built-in mazes:", mazes.Builtin())

	if len(custom) > 0 {
		printMazeTable("Custom mazes ("+mazes.UserMazeDir()+"):", custom)
	} else {
		fmt.Printf("No custom mazes found. Drop YAML files into %s to add your own.\n", mazes.UserMazeDir())
	}

	fmt.Println()
	fmt.Println("Run 'chomp play chomp --maze <id>' to play a single maze.")
}
