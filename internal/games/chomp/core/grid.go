package core

// Cell is the state of a single maze tile.
type Cell int

const (
	CellWall Cell = iota
	CellEmpty
	CellPellet
	CellPowerPellet
)

// Wrap maps v onto the torus range [0, max) assuming |v| never exceeds
// max by more than one full span per step.
func Wrap(v, max float64) float64 {
	if v < 0 {
		return max + v
	}
	if v >= max {
		return v - max
	}
	return v
}

// WrapInt maps an integer tile coordinate onto [0, max).
func WrapInt(v, max int) int {
	if v < 0 {
		return max + v
	}
	if v >= max {
		return v - max
	}
	return v
}

// Grid owns the 2D cell-state array with torus coordinate wrapping.
// The template passed at construction is copied twice: once as the live
// state and once as the pristine layout used for level resets. The live
// array is never handed out; all mutation goes through Grid methods.
type Grid struct {
	cols, rows int
	cells      [][]Cell
	template   [][]Cell
}

// NewGrid creates a grid from a rectangular template.
// The caller is responsible for validating the maze layout (enclosing
// walls, reachability); see the mazes package.
func NewGrid(template [][]Cell) *Grid {
	g := &Grid{
		rows: len(template),
	}
	if g.rows > 0 {
		g.cols = len(template[0])
	}
	g.template = copyCells(template)
	g.cells = copyCells(template)
	return g
}

func copyCells(src [][]Cell) [][]Cell {
	dst := make([][]Cell, len(src))
	for y, row := range src {
		dst[y] = make([]Cell, len(row))
		copy(dst[y], row)
	}
	return dst
}

// Cols returns the grid width in tiles.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in tiles.
func (g *Grid) Rows() int { return g.rows }

// CellAt returns the cell containing the continuous position (x, y).
// Coordinates are truncated to the containing tile and wrapped on both
// axes independently.
func (g *Grid) CellAt(x, y float64) Cell {
	col := WrapInt(int(Wrap(x, float64(g.cols))), g.cols)
	row := WrapInt(int(Wrap(y, float64(g.rows))), g.rows)
	return g.cells[row][col]
}

// Cell returns the cell at integer tile coordinates, wrapped.
func (g *Grid) Cell(col, row int) Cell {
	return g.cells[WrapInt(row, g.rows)][WrapInt(col, g.cols)]
}

// IsPassable reports whether the tile containing (x, y) is not a wall.
func (g *Grid) IsPassable(x, y float64) bool {
	return g.CellAt(x, y) != CellWall
}

// SetCell mutates a single tile, wrapping the coordinates.
func (g *Grid) SetCell(col, row int, c Cell) {
	g.cells[WrapInt(row, g.rows)][WrapInt(col, g.cols)] = c
}

// CountPellets returns the number of Pellet cells currently in the grid.
func (g *Grid) CountPellets() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == CellPellet {
				n++
			}
		}
	}
	return n
}

// ApplyLevelReset restores every cell from the pristine template,
// refilling consumed pellets and power pellets.
func (g *Grid) ApplyLevelReset() {
	for y, row := range g.template {
		copy(g.cells[y], row)
	}
}
