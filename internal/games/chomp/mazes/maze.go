// Package mazes supplies maze layouts to the chomp simulation: an ASCII
// parser, a set of built-in levels and a YAML loader for user maze packs.
package mazes

import (
	"fmt"

	"github.com/nlitvinov/tui-chomp/internal/games/chomp/core"
)

// Legend for ASCII maze rows:
//
//	#  wall
//	.  pellet
//	o  power pellet
//	P  player spawn (empty cell)
//	G  pursuer home (empty cell), one per pursuer, row-major order
//
// Any other character is an empty passable cell.
const (
	charWall    = '#'
	charPellet  = '.'
	charPower   = 'o'
	charPlayer  = 'P'
	charPursuer = 'G'
)

// Maze is a parsed level: the cell template plus spawn points.
type Maze struct {
	ID            string
	Name          string
	Cells         [][]core.Cell
	PlayerSpawn   core.Spawn
	PursuerSpawns []core.Spawn
}

// Cols returns the maze width in tiles.
func (m *Maze) Cols() int {
	if len(m.Cells) == 0 {
		return 0
	}
	return len(m.Cells[0])
}

// Rows returns the maze height in tiles.
func (m *Maze) Rows() int {
	return len(m.Cells)
}

// Pellets returns the number of pellet cells in the template.
func (m *Maze) Pellets() int {
	n := 0
	for _, row := range m.Cells {
		for _, c := range row {
			if c == core.CellPellet {
				n++
			}
		}
	}
	return n
}

// Parse builds a maze from ASCII rows. It requires a non-empty
// rectangular layout with exactly one player spawn, at least one
// pursuer home and at least one pellet.
func Parse(id, name string, rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze %s: empty layout", id)
	}

	cols := len(rows[0])
	m := &Maze{
		ID:    id,
		Name:  name,
		Cells: make([][]core.Cell, len(rows)),
	}
	playerFound := false

	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("maze %s: row %d has %d columns, expected %d", id, y, len(row), cols)
		}
		m.Cells[y] = make([]core.Cell, cols)
		for x, ch := range row {
			switch ch {
			case charWall:
				m.Cells[y][x] = core.CellWall
			case charPellet:
				m.Cells[y][x] = core.CellPellet
			case charPower:
				m.Cells[y][x] = core.CellPowerPellet
			case charPlayer:
				if playerFound {
					return nil, fmt.Errorf("maze %s: multiple player spawns", id)
				}
				playerFound = true
				m.Cells[y][x] = core.CellEmpty
				m.PlayerSpawn = core.Spawn{Col: x, Row: y, Dir: core.DirLeft}
			case charPursuer:
				m.Cells[y][x] = core.CellEmpty
				m.PursuerSpawns = append(m.PursuerSpawns, core.Spawn{Col: x, Row: y, Dir: core.DirLeft})
			default:
				m.Cells[y][x] = core.CellEmpty
			}
		}
	}

	if !playerFound {
		return nil, fmt.Errorf("maze %s: no player spawn (P)", id)
	}
	if len(m.PursuerSpawns) == 0 {
		return nil, fmt.Errorf("maze %s: no pursuer home (G)", id)
	}
	if m.Pellets() == 0 {
		return nil, fmt.Errorf("maze %s: no pellets", id)
	}

	return m, nil
}

// MustParse is Parse for compile-time layouts; it panics on error.
func MustParse(id, name string, rows []string) *Maze {
	m, err := Parse(id, name, rows)
	if err != nil {
		panic(err)
	}
	return m
}
