package core

import (
	"math"
	"math/rand"
)

// Chooser picks pursuer directions at decision points. Randomness comes
// from an injected generator so runs are reproducible under a fixed seed.
type Chooser struct {
	rng *rand.Rand
}

// NewChooser creates a direction chooser backed by the given generator.
func NewChooser(rng *rand.Rand) *Chooser {
	return &Chooser{rng: rng}
}

// Choose returns the pursuer's next direction.
//
// Candidates are the four directions minus the direct reverse of the
// current one, restricted to passable tiles. A dead end falls back to
// the full passable set including reverse, picked uniformly at random,
// so a pursuer never sticks in a well-formed maze. While frightened the
// pursuer walks uniformly at random; otherwise it greedily minimizes
// squared Euclidean distance from the candidate tile center to the
// target, ties broken by enumeration order.
//
// A pursuer with no passable direction at all keeps its current
// direction; motion then stalls harmlessly against the walls.
func (c *Chooser) Choose(g *Grid, e *Entity, targetX, targetY float64, frightened bool) Direction {
	reverse := Opposite[e.Dir]

	var candidates []Direction
	var allPassable []Direction
	for _, d := range Directions {
		if !e.canHead(g, d) {
			continue
		}
		allPassable = append(allPassable, d)
		if d != reverse {
			candidates = append(candidates, d)
		}
	}

	if len(candidates) == 0 {
		if len(allPassable) == 0 {
			return e.Dir
		}
		return allPassable[c.rng.Intn(len(allPassable))]
	}

	if frightened {
		return candidates[c.rng.Intn(len(candidates))]
	}

	col, row := e.Tile()
	best := candidates[0]
	bestDist := math.MaxFloat64
	for _, d := range candidates {
		dx, dy := d.Vector()
		cx := float64(WrapInt(col+dx, g.Cols())) + 0.5
		cy := float64(WrapInt(row+dy, g.Rows())) + 0.5
		dist := distanceSq(cx, cy, targetX, targetY)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}
