package core

import "math/rand"

const (
	// captureRadius is the Euclidean distance below which the player and
	// a pursuer collide.
	captureRadius = 0.6
)

// Phase is the world's lifecycle state.
type Phase int

const (
	// PhaseRunning is normal simulation.
	PhaseRunning Phase = iota
	// PhaseLevelComplete is entered when the last pellet is consumed.
	// The owner calls ContinueNextLevel to refill the maze and resume.
	PhaseLevelComplete
	// PhaseGameOver is terminal; the owner discards the world and
	// constructs a new one on restart.
	PhaseGameOver
)

// Config bundles the tunable simulation parameters.
type Config struct {
	PlayerSpeed          float64 // tiles per second
	PursuerSpeed         float64 // tiles per second
	FrightenedMultiplier float64 // pursuer speed factor while frightened
	PowerDuration        float64 // seconds of frightened mode per power pellet
	PelletPoints         int
	PowerPoints          int
	CapturePoints        int
}

// Spawn places an entity at a tile with an initial direction.
type Spawn struct {
	Col, Row int
	Dir      Direction
}

// World composes the grid, entities, pursuer AI and collision rules
// into a single fixed-step simulation. It owns no life or level
// counters; those belong to the caller, which reacts to the events
// Update returns.
type World struct {
	grid     *Grid
	player   *Entity
	pursuers []*Entity
	chooser  *Chooser
	cfg      Config

	phase           Phase
	powerTimer      float64
	pelletRemaining int
}

// NewWorld builds a world from a maze template and spawn points.
// The template is copied; the caller's slice is not retained. The
// random generator drives pursuer tie-breaks and the frightened walk,
// so a fixed seed reproduces a run exactly.
func NewWorld(template [][]Cell, playerSpawn Spawn, pursuerSpawns []Spawn, cfg Config, rng *rand.Rand) *World {
	w := &World{
		grid:    NewGrid(template),
		player:  NewEntity(playerSpawn.Col, playerSpawn.Row, playerSpawn.Dir),
		chooser: NewChooser(rng),
		cfg:     cfg,
		phase:   PhaseRunning,
	}
	for _, s := range pursuerSpawns {
		w.pursuers = append(w.pursuers, NewEntity(s.Col, s.Row, s.Dir))
	}
	w.pelletRemaining = w.grid.CountPellets()
	return w
}

// Input sets the player's desired direction. Invalid values are ignored.
func (w *World) Input(d Direction) {
	if !d.Valid() {
		return
	}
	w.player.Desired = d
}

// Update advances the simulation by one fixed step of dt seconds and
// returns the events of that step in order. It is a no-op outside the
// Running phase.
func (w *World) Update(dt float64) []Event {
	if w.phase != PhaseRunning {
		return nil
	}

	// Decay the shared power timer before anything else so a power
	// pellet consumed this step leaves the timer at exactly the
	// configured duration.
	w.powerTimer -= dt
	if w.powerTimer < 0 {
		w.powerTimer = 0
	}
	frightened := w.powerTimer > 0

	w.movePlayer(dt)
	w.movePursuers(dt, frightened)

	return w.resolve()
}

// movePlayer commits a pending turn at a decision point, then advances.
func (w *World) movePlayer(dt float64) {
	p := w.player
	if p.AtDecisionPoint() && p.canHead(w.grid, p.Desired) {
		p.Dir = p.Desired
	}
	p.advance(w.grid, w.cfg.PlayerSpeed, dt)
}

// movePursuers runs the AI at decision points, then advances each pursuer.
func (w *World) movePursuers(dt float64, frightened bool) {
	speed := w.cfg.PursuerSpeed
	if frightened {
		speed *= w.cfg.FrightenedMultiplier
	}
	for _, g := range w.pursuers {
		if g.AtDecisionPoint() {
			g.Dir = w.chooser.Choose(w.grid, g, w.player.X, w.player.Y, frightened)
		}
		g.advance(w.grid, speed, dt)
	}
}

// resolve applies pellet consumption, power activation and proximity
// collisions for the step, in that order. The frightened state is read
// after power activation, so a power pellet reached this step already
// covers contacts resolved in the same step.
func (w *World) resolve() []Event {
	var events []Event

	col, row := w.player.Tile()
	switch w.grid.Cell(col, row) {
	case CellPellet:
		w.grid.SetCell(col, row, CellEmpty)
		w.pelletRemaining--
		events = append(events, Event{Kind: EventScore, Points: w.cfg.PelletPoints})
		if w.pelletRemaining == 0 {
			events = append(events, Event{Kind: EventLevelClear})
			w.phase = PhaseLevelComplete
		}
	case CellPowerPellet:
		w.grid.SetCell(col, row, CellEmpty)
		w.powerTimer = w.cfg.PowerDuration
		events = append(events, Event{Kind: EventScore, Points: w.cfg.PowerPoints})
	}

	frightened := w.powerTimer > 0
	for _, g := range w.pursuers {
		if distanceSq(g.X, g.Y, w.player.X, w.player.Y) >= captureRadius*captureRadius {
			continue
		}
		if frightened {
			// Captured pursuer goes home; the shared timer keeps
			// running, so it re-enters play still frightened.
			events = append(events, Event{Kind: EventScore, Points: w.cfg.CapturePoints})
			g.ResetToSpawn()
			continue
		}
		events = append(events, Event{Kind: EventLifeLost})
		w.resetEntities()
		break
	}

	return events
}

// resetEntities returns the player and every pursuer to their spawn
// tiles after a life is lost.
func (w *World) resetEntities() {
	w.player.ResetToSpawn()
	for _, g := range w.pursuers {
		g.ResetToSpawn()
	}
}

// ContinueNextLevel refills the maze from its template, resets all
// entities and resumes the Running phase. Only valid after LevelComplete.
func (w *World) ContinueNextLevel() {
	if w.phase != PhaseLevelComplete {
		return
	}
	w.grid.ApplyLevelReset()
	w.pelletRemaining = w.grid.CountPellets()
	w.powerTimer = 0
	w.resetEntities()
	w.phase = PhaseRunning
}

// SetGameOver moves the world to its terminal phase. Called by the
// owner when its life counter runs out.
func (w *World) SetGameOver() {
	w.phase = PhaseGameOver
}

// Phase returns the current lifecycle state.
func (w *World) Phase() Phase { return w.phase }

// Frightened reports whether the shared power timer is active.
func (w *World) Frightened() bool { return w.powerTimer > 0 }

// PowerTimer returns the remaining frightened time in seconds.
func (w *World) PowerTimer() float64 { return w.powerTimer }

// PelletsRemaining returns the live pellet counter.
func (w *World) PelletsRemaining() int { return w.pelletRemaining }

// Player returns the player entity for rendering and tests.
func (w *World) Player() *Entity { return w.player }

// Pursuers returns the pursuer entities in stable order.
func (w *World) Pursuers() []*Entity { return w.pursuers }

// Cols returns the maze width in tiles.
func (w *World) Cols() int { return w.grid.Cols() }

// Rows returns the maze height in tiles.
func (w *World) Rows() int { return w.grid.Rows() }

// CellAt returns the cell at integer tile coordinates for rendering.
// The grid itself is never handed out as a mutable alias.
func (w *World) CellAt(col, row int) Cell {
	return w.grid.Cell(col, row)
}
