package core

import (
	"math"
	"math/rand"
	"testing"
)

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func sumPoints(events []Event) int {
	total := 0
	for _, ev := range events {
		if ev.Kind == EventScore {
			total += ev.Points
		}
	}
	return total
}

func TestPelletConsumption(t *testing.T) {
	// Three-pellet corridor with the player adjacent to the first one.
	w := newTestWorld([]string{
		"######",
		"# ...#",
		"######",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, nil)

	if w.PelletsRemaining() != 3 {
		t.Fatalf("PelletsRemaining() = %d, expected 3", w.PelletsRemaining())
	}

	// One step that carries the player into the first pellet tile.
	events := w.Update(0.6)

	if got := sumPoints(events); got != 10 {
		t.Errorf("score delta = %d, expected 10", got)
	}
	if w.PelletsRemaining() != 2 {
		t.Errorf("PelletsRemaining() = %d, expected 2", w.PelletsRemaining())
	}
	if w.CellAt(2, 1) != CellEmpty {
		t.Error("consumed pellet cell should become empty")
	}
	if countEvents(events, EventLevelClear) != 0 {
		t.Error("level clear should not fire with pellets remaining")
	}
}

func TestPelletInvariant(t *testing.T) {
	w := newTestWorld([]string{
		"#######",
		"#.....#",
		"#.###.#",
		"#..o..#",
		"#######",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, []Spawn{{Col: 5, Row: 3, Dir: DirLeft}})

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 400; i++ {
		w.Input(Directions[rng.Intn(len(Directions))])
		w.Update(0.05)

		count := 0
		for row := 0; row < w.Rows(); row++ {
			for col := 0; col < w.Cols(); col++ {
				if w.CellAt(col, row) == CellPellet {
					count++
				}
			}
		}
		if count != w.PelletsRemaining() {
			t.Fatalf("step %d: PelletsRemaining() = %d, grid has %d", i, w.PelletsRemaining(), count)
		}
		if w.Phase() != PhaseRunning {
			break
		}
	}
}

func TestLevelClearFiresOnce(t *testing.T) {
	w := newTestWorld([]string{
		"####",
		"# .#",
		"####",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, nil)

	events := w.Update(0.6)

	if countEvents(events, EventLevelClear) != 1 {
		t.Fatalf("expected exactly one level clear event, got %d", countEvents(events, EventLevelClear))
	}
	if countEvents(events, EventScore) != 1 {
		t.Errorf("final pellet should still score")
	}
	if w.Phase() != PhaseLevelComplete {
		t.Errorf("phase = %v, expected LevelComplete", w.Phase())
	}

	// The world is inert until the owner continues.
	if more := w.Update(0.1); more != nil {
		t.Errorf("update after level complete returned events: %v", more)
	}

	w.ContinueNextLevel()
	if w.Phase() != PhaseRunning {
		t.Errorf("phase after continue = %v, expected Running", w.Phase())
	}
	if w.PelletsRemaining() != 1 {
		t.Errorf("pellets after refill = %d, expected 1", w.PelletsRemaining())
	}
	if p := w.Player(); p.X != 1.5 || p.Y != 1.5 {
		t.Errorf("player at (%v, %v), expected spawn center", p.X, p.Y)
	}
}

func TestPowerSetIsAbsolute(t *testing.T) {
	w := newTestWorld([]string{
		"####",
		"# o#",
		"####",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, nil)

	// Timer already running from an earlier power pellet.
	w.powerTimer = 2.5

	events := w.Update(0.6)

	if got := sumPoints(events); got != 50 {
		t.Errorf("power pellet score = %d, expected 50", got)
	}
	if w.PowerTimer() != 6.0 {
		t.Errorf("power timer = %v, expected exactly 6.0 (set, not added)", w.PowerTimer())
	}
}

func TestPowerDecayAndClamp(t *testing.T) {
	w := newTestWorld([]string{
		"###",
		"# #",
		"###",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, nil)

	w.powerTimer = 5.0

	w.Update(1.0)
	if math.Abs(w.PowerTimer()-4.0) > 1e-9 {
		t.Errorf("power timer = %v, expected 4.0", w.PowerTimer())
	}

	w.Update(10.0)
	if w.PowerTimer() != 0 {
		t.Errorf("power timer = %v, expected clamp to 0", w.PowerTimer())
	}
	if w.Frightened() {
		t.Error("frightened mode should end when the timer reaches zero")
	}
}

func TestLifeLostResetsEntities(t *testing.T) {
	w := newTestWorld([]string{
		"######",
		"#    #",
		"######",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, []Spawn{{Col: 4, Row: 1, Dir: DirLeft}})

	// Drop the pursuer onto the player, timer at zero.
	g := w.Pursuers()[0]
	g.X, g.Y = w.Player().X, w.Player().Y

	events := w.Update(0.001)

	if countEvents(events, EventLifeLost) != 1 {
		t.Fatalf("expected one life lost event, got %d", countEvents(events, EventLifeLost))
	}
	if countEvents(events, EventScore) != 0 {
		t.Error("normal-mode capture should not score")
	}
	if p := w.Player(); p.X != 1.5 || p.Y != 1.5 {
		t.Errorf("player at (%v, %v), expected spawn (1.5, 1.5)", p.X, p.Y)
	}
	if g.X != 4.5 || g.Y != 1.5 {
		t.Errorf("pursuer at (%v, %v), expected spawn (4.5, 1.5)", g.X, g.Y)
	}
}

func TestFrightenedCapture(t *testing.T) {
	w := newTestWorld([]string{
		"######",
		"#    #",
		"######",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, []Spawn{{Col: 4, Row: 1, Dir: DirLeft}})

	g := w.Pursuers()[0]
	g.X, g.Y = w.Player().X, w.Player().Y
	w.powerTimer = 6.0

	events := w.Update(0.001)

	if countEvents(events, EventLifeLost) != 0 {
		t.Fatal("frightened capture must not cost a life")
	}
	if got := sumPoints(events); got != 200 {
		t.Errorf("capture score = %d, expected 200", got)
	}
	if g.X != 4.5 || g.Y != 1.5 {
		t.Errorf("captured pursuer at (%v, %v), expected home (4.5, 1.5)", g.X, g.Y)
	}
	// Player keeps going; only the pursuer is repositioned.
	if p := w.Player(); p.X == 1.5 {
		t.Error("player should not be reset on a frightened capture")
	}
	// The shared timer keeps running after a capture.
	if !w.Frightened() {
		t.Error("capture must not end frightened mode early")
	}
}

func TestPowerPelletBeatsContact(t *testing.T) {
	// One step carries the player onto a power pellet and a pursuer
	// inside the capture radius at the same time. Power activation
	// resolves first, so the contact is a capture, not a lost life.
	w := newTestWorld([]string{
		"#####",
		"# o #",
		"#####",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, []Spawn{{Col: 3, Row: 1, Dir: DirLeft}})

	// Player 1.5 -> 2.3 eats the pellet; pursuer 3.5 -> 2.7 closes to 0.4.
	events := w.Update(0.8)

	if countEvents(events, EventLifeLost) != 0 {
		t.Fatal("contact on the power pellet step must not cost a life")
	}
	if got := sumPoints(events); got != 250 {
		t.Errorf("score delta = %d, expected 250 (power pellet plus capture)", got)
	}
	g := w.Pursuers()[0]
	if g.X != 3.5 || g.Y != 1.5 {
		t.Errorf("captured pursuer at (%v, %v), expected home (3.5, 1.5)", g.X, g.Y)
	}
	if p := w.Player(); p.X == 1.5 {
		t.Error("player should not be reset on a same-step capture")
	}
	if w.PowerTimer() != 6.0 {
		t.Errorf("power timer = %v, expected the full duration", w.PowerTimer())
	}
}

func TestGameOverStopsUpdates(t *testing.T) {
	w := newTestWorld([]string{
		"####",
		"#..#",
		"####",
	}, Spawn{Col: 1, Row: 1, Dir: DirRight}, nil)

	w.SetGameOver()

	if w.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected GameOver", w.Phase())
	}
	if events := w.Update(0.1); events != nil {
		t.Errorf("update after game over returned events: %v", events)
	}
	if w.PelletsRemaining() != 2 {
		t.Error("state must not change after game over")
	}
}

func TestDeterministicLockstep(t *testing.T) {
	rows := []string{
		"#########",
		"#...#...#",
		"#.#.o.#.#",
		"#...#...#",
		"#########",
	}
	player := Spawn{Col: 1, Row: 1, Dir: DirRight}
	pursuers := []Spawn{
		{Col: 7, Row: 3, Dir: DirLeft},
		{Col: 7, Row: 1, Dir: DirDown},
	}

	w1 := NewWorld(parseCells(rows), player, pursuers, testConfig(), rand.New(rand.NewSource(42)))
	w2 := NewWorld(parseCells(rows), player, pursuers, testConfig(), rand.New(rand.NewSource(42)))

	script := []Direction{DirRight, DirDown, DirDown, DirRight, DirUp, DirLeft}
	for i := 0; i < 300; i++ {
		d := script[i%len(script)]
		w1.Input(d)
		w2.Input(d)
		ev1 := w1.Update(0.05)
		ev2 := w2.Update(0.05)

		if len(ev1) != len(ev2) {
			t.Fatalf("step %d: event counts diverged: %d vs %d", i, len(ev1), len(ev2))
		}
		p1, p2 := w1.Player(), w2.Player()
		if p1.X != p2.X || p1.Y != p2.Y || p1.Dir != p2.Dir {
			t.Fatalf("step %d: player state diverged", i)
		}
		for j := range w1.Pursuers() {
			g1, g2 := w1.Pursuers()[j], w2.Pursuers()[j]
			if g1.X != g2.X || g1.Y != g2.Y || g1.Dir != g2.Dir {
				t.Fatalf("step %d: pursuer %d diverged", i, j)
			}
		}
	}
}
