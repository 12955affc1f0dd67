package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nlitvinov/tui-chomp/internal/core"
	"github.com/nlitvinov/tui-chomp/internal/registry"
	"github.com/nlitvinov/tui-chomp/internal/storage"
)

// maxStepsPerFrame caps how many fixed steps a single tick message may
// run. A long stall drops simulation time instead of spiraling.
const maxStepsPerFrame = 5

// Model is the Bubble Tea model for running arcade games.
// It converts wall-clock tick messages into whole fixed simulation
// steps through an accumulator, so game logic always sees the same dt.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keys        *KeyMapper
	lastTick    time.Time
	accumulator time.Duration
	quitting    bool
	scoreSaved  bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	// Note: This resets the game - could be improved to preserve state
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs the fixed-step accumulator for one tick message.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.lastTick = now
		m.accumulator = 0
		return m, tickCmd(m.config.TickRate)
	}

	stepDur := time.Second / time.Duration(m.config.TickRate)
	if m.lastTick.IsZero() {
		m.accumulator = stepDur
	} else {
		m.accumulator += now.Sub(m.lastTick)
	}
	m.lastTick = now

	// Run whole fixed steps; input applies to the first step only so a
	// toggle like pause cannot fire twice in one frame.
	steps := 0
	input := m.inputFrame
	for m.accumulator >= stepDur && steps < maxStepsPerFrame {
		result := m.game.Step(input)
		m.gameState = result.State
		input = core.NewInputFrame()
		m.accumulator -= stepDur
		steps++
	}
	if m.accumulator > time.Duration(maxStepsPerFrame)*stepDur {
		m.accumulator = stepDur // drop backlog after a long stall
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".chomp", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
