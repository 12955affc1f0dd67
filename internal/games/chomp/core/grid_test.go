package core

import (
	"math"
	"testing"
)

// parseCells builds a maze template from ASCII rows.
// '#' wall, '.' pellet, 'o' power pellet, anything else empty.
func parseCells(rows []string) [][]Cell {
	cells := make([][]Cell, len(rows))
	for y, r := range rows {
		cells[y] = make([]Cell, len(r))
		for x, ch := range r {
			switch ch {
			case '#':
				cells[y][x] = CellWall
			case '.':
				cells[y][x] = CellPellet
			case 'o':
				cells[y][x] = CellPowerPellet
			default:
				cells[y][x] = CellEmpty
			}
		}
	}
	return cells
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		v, max   float64
		expected float64
	}{
		{"inside", 3.5, 10, 3.5},
		{"at zero", 0, 10, 0},
		{"below zero", -0.3, 10, 9.7},
		{"at max", 10, 10, 0},
		{"above max", 10.4, 10, 0.4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.v, tc.max)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.max, got, tc.expected)
			}
			if got < 0 || got >= tc.max {
				t.Errorf("Wrap(%v, %v) = %v, outside [0, %v)", tc.v, tc.max, got, tc.max)
			}
		})
	}
}

func TestWrapInt(t *testing.T) {
	tests := []struct {
		v, max, expected int
	}{
		{5, 10, 5},
		{-1, 10, 9},
		{10, 10, 0},
		{12, 10, 2},
	}

	for _, tc := range tests {
		if got := WrapInt(tc.v, tc.max); got != tc.expected {
			t.Errorf("WrapInt(%d, %d) = %d, expected %d", tc.v, tc.max, got, tc.expected)
		}
	}
}

func TestGridCellAt(t *testing.T) {
	g := NewGrid(parseCells([]string{
		"###",
		"#.#",
		"###",
	}))

	if g.CellAt(1.5, 1.5) != CellPellet {
		t.Error("center of (1,1) should be a pellet")
	}
	if g.CellAt(0.2, 0.9) != CellWall {
		t.Error("(0,0) should be a wall")
	}

	// Wrapped lookups land on the opposite edge
	if g.CellAt(-0.5, 1.5) != g.CellAt(2.5, 1.5) {
		t.Error("negative x should wrap to the right edge")
	}
	if g.Cell(-1, 1) != g.Cell(2, 1) {
		t.Error("Cell(-1, 1) should wrap to Cell(2, 1)")
	}
}

func TestGridIsPassable(t *testing.T) {
	g := NewGrid(parseCells([]string{
		"###",
		"#.#",
		"###",
	}))

	if g.IsPassable(0.5, 0.5) {
		t.Error("wall should not be passable")
	}
	if !g.IsPassable(1.5, 1.5) {
		t.Error("pellet cell should be passable")
	}
}

func TestGridSetCellAndCount(t *testing.T) {
	g := NewGrid(parseCells([]string{
		"#####",
		"#..o#",
		"#####",
	}))

	if got := g.CountPellets(); got != 2 {
		t.Errorf("CountPellets() = %d, expected 2 (power pellets excluded)", got)
	}

	g.SetCell(1, 1, CellEmpty)
	if got := g.CountPellets(); got != 1 {
		t.Errorf("after consuming one pellet, CountPellets() = %d, expected 1", got)
	}
}

func TestGridApplyLevelReset(t *testing.T) {
	g := NewGrid(parseCells([]string{
		"#####",
		"#.o.#",
		"#####",
	}))

	g.SetCell(1, 1, CellEmpty)
	g.SetCell(2, 1, CellEmpty)
	g.SetCell(3, 1, CellEmpty)

	g.ApplyLevelReset()

	if g.Cell(1, 1) != CellPellet || g.Cell(3, 1) != CellPellet {
		t.Error("level reset should refill pellets")
	}
	if g.Cell(2, 1) != CellPowerPellet {
		t.Error("level reset should refill power pellets")
	}
}

func TestGridCopiesTemplate(t *testing.T) {
	template := parseCells([]string{
		"###",
		"#.#",
		"###",
	})
	g := NewGrid(template)

	// Mutating the caller's slice must not leak into the grid.
	template[1][1] = CellWall
	if g.Cell(1, 1) != CellPellet {
		t.Error("grid should own a copy of the template")
	}

	// Nor should grid mutation leak back through the reset template.
	g.SetCell(1, 1, CellEmpty)
	g.ApplyLevelReset()
	if g.Cell(1, 1) != CellPellet {
		t.Error("reset template should be pristine")
	}
}
