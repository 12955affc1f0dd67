package chomp

import sim "github.com/nlitvinov/tui-chomp/internal/games/chomp/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick             uint64
	Mode             string
	Score            int
	Lives            int
	Level            int
	MazeID           string
	PelletsRemaining int
	PowerTimer       float64
	Frightened       bool
	PlayerX          float64
	PlayerY          float64
	PlayerDir        sim.Direction
	Pursuers         []PursuerSnapshot
	State            GameStateType
}

// PursuerSnapshot is one pursuer's position and heading.
type PursuerSnapshot struct {
	X, Y float64
	Dir  sim.Direction
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	s := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Score:  g.score,
		Lives:  g.lives,
		Level:  g.level,
		MazeID: g.currentMaze().ID,
		State:  state,
	}

	if g.world != nil {
		s.PelletsRemaining = g.world.PelletsRemaining()
		s.PowerTimer = g.world.PowerTimer()
		s.Frightened = g.world.Frightened()
		p := g.world.Player()
		s.PlayerX, s.PlayerY = p.X, p.Y
		s.PlayerDir = p.Dir
		for _, pursuer := range g.world.Pursuers() {
			s.Pursuers = append(s.Pursuers, PursuerSnapshot{X: pursuer.X, Y: pursuer.Y, Dir: pursuer.Dir})
		}
	}

	return s
}
