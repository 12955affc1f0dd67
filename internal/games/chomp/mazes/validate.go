package mazes

import (
	"fmt"

	"github.com/nlitvinov/tui-chomp/internal/games/chomp/core"
)

// Validate checks the simulation's maze preconditions: every non-wall
// cell must be reachable from the player spawn (no isolated islands).
// Tunnels are fine since reachability is computed on the torus.
func Validate(m *Maze) error {
	cols, rows := m.Cols(), m.Rows()
	if cols == 0 || rows == 0 {
		return fmt.Errorf("maze %s: empty grid", m.ID)
	}

	passable := 0
	for _, row := range m.Cells {
		for _, c := range row {
			if c != core.CellWall {
				passable++
			}
		}
	}

	// BFS from the player spawn with torus wrapping.
	visited := make([][]bool, rows)
	for y := range visited {
		visited[y] = make([]bool, cols)
	}

	start := [2]int{m.PlayerSpawn.Col, m.PlayerSpawn.Row}
	if m.Cells[start[1]][start[0]] == core.CellWall {
		return fmt.Errorf("maze %s: player spawn is inside a wall", m.ID)
	}
	visited[start[1]][start[0]] = true
	queue := [][2]int{start}
	reached := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range core.Directions {
			dx, dy := d.Vector()
			nx := core.WrapInt(cur[0]+dx, cols)
			ny := core.WrapInt(cur[1]+dy, rows)
			if visited[ny][nx] || m.Cells[ny][nx] == core.CellWall {
				continue
			}
			visited[ny][nx] = true
			reached++
			queue = append(queue, [2]int{nx, ny})
		}
	}

	if reached != passable {
		return fmt.Errorf("maze %s: %d of %d open cells unreachable from the player spawn",
			m.ID, passable-reached, passable)
	}
	return nil
}
