// Package chomp adapts the maze-chase simulation to the arcade shell:
// it owns lives, level progression and maze selection, maps platform
// input onto the simulation, and renders the world to a screen buffer.
package chomp

import (
	"fmt"
	"math/rand"

	"github.com/nlitvinov/tui-chomp/internal/config"
	"github.com/nlitvinov/tui-chomp/internal/core"
	sim "github.com/nlitvinov/tui-chomp/internal/games/chomp/core"
	"github.com/nlitvinov/tui-chomp/internal/games/chomp/mazes"
	"github.com/nlitvinov/tui-chomp/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// pursuerColors cycles over the pursuers in spawn order.
var pursuerColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// Game implements the Chomp maze game on top of the simulation core.
type Game struct {
	mode Mode
	cfg  config.ChompConfig
	diff *config.DifficultyManager
	rng  *rand.Rand
	tick uint64

	world     *sim.World
	mazeList  []*mazes.Maze
	mazeIndex int
	level     int // 1-indexed, across maze cycles
	lives     int
	score     int

	stepSeconds float64

	// Layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Game state flags
	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
	levelCleared bool

	levelClearTicks int
}

// Package-level variables for config/difficulty (like the other games).
var (
	configPath       string
	difficultyPreset string
	selectedMazeID   string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetMaze restricts play to a single maze by ID. Empty means the full
// rotation.
func SetMaze(id string) {
	selectedMazeID = id
}

// New creates a new campaign mode Chomp game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode Chomp game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("chomp", func() registry.Game {
		return New()
	})
	registry.Register("chomp_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "chomp_endless"
	}
	return "chomp"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Chomp (Endless)"
	}
	return "Chomp"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadChomp(configPath)
	if err != nil {
		cfg = config.DefaultChompConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChompPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.level = 1
	g.lives = cfg.Rules.Lives
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2
	g.stepSeconds = rc.StepSeconds()

	g.mazeList = g.buildMazeList()
	g.mazeIndex = 0
	g.buildWorld()
}

// buildMazeList assembles the rotation: a single selected maze, or the
// built-ins followed by any user packs.
func (g *Game) buildMazeList() []*mazes.Maze {
	custom, err := mazes.LoadUserMazes()
	if err != nil {
		custom = nil // a broken user pack falls back to built-ins
	}

	if selectedMazeID != "" {
		if m := mazes.ByID(selectedMazeID, custom); m != nil {
			return []*mazes.Maze{m}
		}
	}

	list := mazes.Builtin()
	for _, m := range custom {
		if mazes.ByID(m.ID, nil) == nil { // user mazes with new IDs extend the rotation
			list = append(list, m)
		}
	}
	return list
}

// buildWorld constructs a fresh simulation for the current maze, with
// difficulty-adjusted pursuer speed and power duration.
func (g *Game) buildWorld() {
	m := g.mazeList[g.mazeIndex]

	requiredW := m.Cols()
	requiredH := m.Rows() + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		g.world = nil
		return
	}
	g.tooSmall = false
	g.mapOffsetX = (g.screenW - m.Cols()) / 2
	g.mapOffsetY = g.hudHeight

	simCfg := sim.Config{
		PlayerSpeed:          g.cfg.Speeds.Player,
		PursuerSpeed:         g.diff.PursuerSpeed(g.cfg.Speeds.Pursuer, g.score, g.level),
		FrightenedMultiplier: g.cfg.Speeds.FrightenedMultiplier,
		PowerDuration:        g.diff.PowerDuration(g.cfg.Rules.PowerDurationSecs, g.score, g.level),
		PelletPoints:         g.cfg.Scoring.Pellet,
		PowerPoints:          g.cfg.Scoring.PowerPellet,
		CapturePoints:        g.cfg.Scoring.Capture,
	}
	g.world = sim.NewWorld(m.Cells, m.PlayerSpawn, m.PursuerSpawns, simCfg, g.rng)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Level clear animation, then advance
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 90 { // ~1.5 seconds at 60 FPS
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	for _, ev := range g.world.Update(g.stepSeconds) {
		switch ev.Kind {
		case sim.EventScore:
			g.score += ev.Points
		case sim.EventLifeLost:
			g.lives--
			if g.lives <= 0 {
				g.gameOver = true
				g.world.SetGameOver()
			}
		case sim.EventLevelClear:
			g.levelCleared = true
			g.levelClearTicks = 0
		}
	}

	return core.StepResult{State: g.State()}
}

// processInput steers the player.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.world.Input(sim.DirUp)
	case input.Has(core.ActionDown):
		g.world.Input(sim.DirDown)
	case input.Has(core.ActionLeft):
		g.world.Input(sim.DirLeft)
	case input.Has(core.ActionRight):
		g.world.Input(sim.DirRight)
	}
}

// advanceLevel moves to the next maze in the rotation. Campaign mode
// ends after one full pass; endless cycles forever with the difficulty
// ramp applied through the rebuilt world.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.level++

	if g.mazeIndex+1 >= len(g.mazeList) {
		if g.mode == ModeCampaign {
			g.won = true
			return
		}
		g.mazeIndex = 0
	} else {
		g.mazeIndex++
	}

	// A single-maze rotation at fixed difficulty can reuse the world;
	// otherwise rebuild with the new maze and ramped parameters.
	if len(g.mazeList) == 1 && !g.diff.IsEnabled() {
		g.world.ContinueNextLevel()
		return
	}
	g.buildWorld()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderEntities(dst)

	switch {
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.level), g.currentMaze().Name)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) currentMaze() *mazes.Maze {
	return g.mazeList[g.mazeIndex]
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Lives: %d  Level: %d", g.Title(), g.score, g.lives, g.level)
	if g.world != nil && g.world.Frightened() {
		hud += fmt.Sprintf("  Power: %.1fs", g.world.PowerTimer())
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and pellets.
func (g *Game) renderMaze(dst *core.Screen) {
	if g.world == nil {
		return
	}
	for row := 0; row < g.world.Rows(); row++ {
		for col := 0; col < g.world.Cols(); col++ {
			x := g.mapOffsetX + col
			y := g.mapOffsetY + row
			switch g.world.CellAt(col, row) {
			case sim.CellWall:
				dst.SetColored(x, y, '█', core.ColorBlue)
			case sim.CellPellet:
				dst.SetColored(x, y, '·', core.ColorGray)
			case sim.CellPowerPellet:
				dst.SetColored(x, y, '●', core.ColorBrightYellow)
			}
		}
	}
}

// renderEntities draws the player and pursuers on their current tiles.
func (g *Game) renderEntities(dst *core.Screen) {
	if g.world == nil {
		return
	}

	frightened := g.world.Frightened()
	for i, p := range g.world.Pursuers() {
		col, row := p.Tile()
		color := pursuerColors[i%len(pursuerColors)]
		if frightened {
			color = core.ColorBrightBlue
		}
		dst.SetColored(g.mapOffsetX+col, g.mapOffsetY+row, 'M', color)
	}

	col, row := g.world.Player().Tile()
	dst.SetColored(g.mapOffsetX+col, g.mapOffsetY+row, 'C', core.ColorBrightYellow)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Lives returns the remaining life count (for tests and debugging).
func (g *Game) Lives() int {
	return g.lives
}
