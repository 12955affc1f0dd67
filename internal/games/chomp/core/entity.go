package core

import "math"

const (
	// decisionEpsilon is the distance from a tile center, on both axes,
	// within which an entity may commit a direction change.
	decisionEpsilon = 0.12

	// velocityScale converts configured speed units into tile
	// displacement: speed 1.0 moves one tile per second.
	velocityScale = 1.0
)

// Entity is a moving actor on the grid: the player or a pursuer.
// Position is continuous, in tile units, always wrapped to
// [0, cols) x [0, rows).
type Entity struct {
	X, Y    float64
	Dir     Direction
	Desired Direction

	spawnX, spawnY float64
	spawnDir       Direction
}

// NewEntity creates an entity at the center of the given tile, facing dir.
// The tile doubles as the entity's spawn (and, for pursuers, home) position.
func NewEntity(col, row int, dir Direction) *Entity {
	e := &Entity{
		spawnX:   float64(col) + 0.5,
		spawnY:   float64(row) + 0.5,
		spawnDir: dir,
	}
	e.ResetToSpawn()
	return e
}

// ResetToSpawn moves the entity back to its spawn tile center and
// restores its spawn direction.
func (e *Entity) ResetToSpawn() {
	e.X = e.spawnX
	e.Y = e.spawnY
	e.Dir = e.spawnDir
	e.Desired = e.spawnDir
}

// TileCenter returns the center of the tile currently containing the entity.
func (e *Entity) TileCenter() (cx, cy float64) {
	return math.Floor(e.X) + 0.5, math.Floor(e.Y) + 0.5
}

// Tile returns the integer tile coordinates containing the entity.
func (e *Entity) Tile() (col, row int) {
	return int(e.X), int(e.Y)
}

// AtDecisionPoint reports whether the entity is within epsilon of its
// tile center on both axes, the only position where turns are committed.
func (e *Entity) AtDecisionPoint() bool {
	cx, cy := e.TileCenter()
	return math.Abs(e.X-cx) <= decisionEpsilon && math.Abs(e.Y-cy) <= decisionEpsilon
}

// canHead reports whether the tile adjacent to the entity's current tile
// in the given direction is passable.
func (e *Entity) canHead(g *Grid, d Direction) bool {
	col, row := e.Tile()
	dx, dy := d.Vector()
	return g.Cell(col+dx, row+dy) != CellWall
}

// advance moves the entity by one step in its committed direction.
// If the destination tile is a wall the move is cancelled and the
// entity snaps exactly to its current tile center, preventing residual
// drift against the wall.
func (e *Entity) advance(g *Grid, speed, dt float64) {
	dx, dy := e.Dir.Vector()
	step := speed * dt * velocityScale

	nx := Wrap(e.X+float64(dx)*step, float64(g.Cols()))
	ny := Wrap(e.Y+float64(dy)*step, float64(g.Rows()))

	if !g.IsPassable(nx, ny) {
		e.X, e.Y = e.TileCenter()
		return
	}
	e.X, e.Y = nx, ny
}

// distanceSq returns the squared Euclidean distance between two points.
func distanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
