package chomp

import (
	"reflect"
	"testing"

	"github.com/nlitvinov/tui-chomp/internal/core"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetInitializes(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state after reset = %v, expected playing", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.Lives != 3 {
		t.Errorf("lives = %d, expected 3", snap.Lives)
	}
	if snap.Level != 1 {
		t.Errorf("level = %d, expected 1", snap.Level)
	}
	if snap.PelletsRemaining == 0 {
		t.Error("maze should start with pellets")
	}
	if len(snap.Pursuers) == 0 {
		t.Error("maze should have pursuers")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %v, expected paused_small_window", g.Snapshot().State)
	}

	// Stepping a too-small game must not panic or advance the sim.
	g.Step(frame(core.ActionLeft))
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	snapBefore := g.Snapshot()
	g.Step(frame())
	if g.Snapshot().PlayerX != snapBefore.PlayerX {
		t.Error("simulation should not advance while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause action should unpause")
	}
}

func TestPelletsScoreDuringPlay(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(3))

	// The player spawns facing left on a pellet row; a short run eats
	// several pellets before any pursuer can get close.
	for i := 0; i < 45; i++ {
		g.Step(frame())
	}

	snap := g.Snapshot()
	if snap.Score == 0 {
		t.Error("expected pellets to be consumed during the opening run")
	}
	if snap.Lives != 3 {
		t.Errorf("lives = %d, expected the opening run to be safe", snap.Lives)
	}
}

func TestLifeLossReducesLives(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	// Drop a pursuer onto the player.
	p := g.world.Player()
	g.world.Pursuers()[0].X = p.X
	g.world.Pursuers()[0].Y = p.Y

	g.Step(frame())

	if g.Lives() != 2 {
		t.Errorf("lives = %d, expected 2 after a capture", g.Lives())
	}
	if g.State().GameOver {
		t.Error("game should continue with lives remaining")
	}
}

func TestGameOverWhenLivesExhausted(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))
	g.lives = 1

	p := g.world.Player()
	g.world.Pursuers()[0].X = p.X
	g.world.Pursuers()[0].Y = p.Y

	g.Step(frame())

	if !g.State().GameOver {
		t.Fatal("losing the last life should end the game")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("snapshot state = %v, expected game_over", g.Snapshot().State)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))
	g.score = 500
	g.lives = 0
	g.gameOver = true

	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state after restart = %v, expected playing", snap.State)
	}
	if snap.Score != 0 || snap.Lives != 3 {
		t.Errorf("restart should reset score and lives, got score=%d lives=%d", snap.Score, snap.Lives)
	}
}

func TestLevelClearAdvancesMaze(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	firstMaze := g.Snapshot().MazeID

	// Force the clear instead of playing the maze out.
	g.levelCleared = true
	for i := 0; i < 91; i++ {
		g.Step(frame())
	}

	snap := g.Snapshot()
	if snap.Level != 2 {
		t.Errorf("level = %d, expected 2 after the clear animation", snap.Level)
	}
	if snap.MazeID == firstMaze {
		t.Errorf("maze should advance in the rotation, still %q", snap.MazeID)
	}
	if snap.State != StatePlaying {
		t.Errorf("state = %v, expected playing in the next maze", snap.State)
	}
}

func TestDeterministicRuns(t *testing.T) {
	g1 := New()
	g2 := New()
	g1.Reset(testRuntimeConfig(42))
	g2.Reset(testRuntimeConfig(42))

	script := []core.Action{
		core.ActionLeft, core.ActionLeft, core.ActionUp, core.ActionRight,
		core.ActionDown, core.ActionLeft, core.ActionUp, core.ActionUp,
	}

	for i := 0; i < 600; i++ {
		in := frame(script[(i/30)%len(script)])
		g1.Step(in)
		g2.Step(in)

		if i%50 == 0 {
			s1, s2 := g1.Snapshot(), g2.Snapshot()
			if !reflect.DeepEqual(s1, s2) {
				t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, s1, s2)
			}
		}
	}
}

func TestEndlessCyclesMazes(t *testing.T) {
	g := NewEndless()
	g.Reset(testRuntimeConfig(1))

	mazeCount := len(g.mazeList)
	if mazeCount == 0 {
		t.Fatal("no mazes loaded")
	}

	// Clear through one full rotation; endless must wrap, not win.
	for cycle := 0; cycle < mazeCount; cycle++ {
		g.levelCleared = true
		for i := 0; i < 91; i++ {
			g.Step(frame())
		}
	}

	snap := g.Snapshot()
	if snap.State == StateWin {
		t.Fatal("endless mode must not end in a win")
	}
	if snap.Level != mazeCount+1 {
		t.Errorf("level = %d, expected %d", snap.Level, mazeCount+1)
	}
	if g.mazeIndex != 0 {
		t.Errorf("maze index = %d, expected rotation back to 0", g.mazeIndex)
	}
}

func TestCampaignWinsAfterRotation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	for cycle := 0; cycle < len(g.mazeList); cycle++ {
		g.levelCleared = true
		for i := 0; i < 91; i++ {
			g.Step(frame())
		}
	}

	if g.Snapshot().State != StateWin {
		t.Errorf("state = %v, expected win after clearing every maze", g.Snapshot().State)
	}
	if !g.State().GameOver {
		t.Error("a win should report GameOver to the platform")
	}
}
