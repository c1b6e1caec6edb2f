package twocars

import (
	"testing"
	"time"

	"github.com/ddrozdov/twocars/internal/core"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// memStore records highscore writes in memory.
type memStore struct {
	best  int
	saves int
}

func (m *memStore) Load() (int, error) { return m.best, nil }
func (m *memStore) Save(score int) error {
	m.best = score
	m.saves++
	return nil
}

func newTestGame(t *testing.T, seed int64) (*Game, *fakeClock) {
	t.Helper()
	g := New()
	clk := &fakeClock{t: time.Unix(1000, 0)}
	g.now = clk.Now
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, clk
}

func anyKey() core.InputFrame {
	in := core.NewInputFrame()
	in.AnyKey = true
	return in
}

func action(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	in.AnyKey = true
	return in
}

func TestStartsOnMenu(t *testing.T) {
	g, _ := newTestGame(t, 1)
	if g.Snapshot().State != StateMenu {
		t.Fatalf("state = %v after reset, want menu", g.Snapshot().State)
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().State != StateMenu {
		t.Fatal("empty input moved the game off the menu")
	}
}

func TestAnyKeyStartsSession(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	if got := g.Snapshot().State; got != StatePlaying {
		t.Fatalf("state = %v after any key, want playing", got)
	}
}

func TestClickStartsSession(t *testing.T) {
	g, _ := newTestGame(t, 1)
	in := core.NewInputFrame()
	in.SetClick(10, 10)
	g.Step(in)
	if got := g.Snapshot().State; got != StatePlaying {
		t.Fatalf("state = %v after click, want playing", got)
	}
}

func TestEscapeAbortsToMenu(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	g.score = 7

	g.Step(action(core.ActionBack))
	snap := g.Snapshot()
	if snap.State != StateMenu {
		t.Fatalf("state = %v after escape, want menu", snap.State)
	}
	if snap.Score != 0 || len(snap.Obstacles) != 0 {
		t.Fatalf("session not reset: score=%d obstacles=%d", snap.Score, len(snap.Obstacles))
	}
}

func TestCrashEndsRunKeepsScore(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	g.score = 3
	g.field.obstacles = []Entity{{Kind: KindRedBox, X: g.red.X, Y: CarY}}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("overlapping box did not end the run")
	}
	if res.State.Score != 3 {
		t.Fatalf("score = %d after crash, want 3", res.State.Score)
	}
	if !containsEvent(res.Events, core.EventCrash) {
		t.Fatalf("events = %v, want a crash event", res.Events)
	}
}

func TestMissedCircleEndsRun(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	// a blue circle one step above the bottom edge, away from the car
	g.field.obstacles = []Entity{{Kind: KindBlueCircle, X: Lane2, Y: VirtualHeight - 1}}

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("missed circle did not end the run")
	}
	if !containsEvent(res.Events, core.EventMiss) {
		t.Fatalf("events = %v, want a miss event", res.Events)
	}
}

func TestPickupScores(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	g.field.obstacles = []Entity{{Kind: KindBlueCircle, X: g.blue.X, Y: CarY}}

	res := g.Step(core.NewInputFrame())
	if res.State.GameOver {
		t.Fatal("collecting a circle ended the run")
	}
	if res.State.Score != 1 {
		t.Fatalf("score = %d after pickup, want 1", res.State.Score)
	}
	if !containsEvent(res.Events, core.EventPickup) {
		t.Fatalf("events = %v, want a pickup event", res.Events)
	}
}

func TestScoreNeverDecreasesWithinRun(t *testing.T) {
	g, clk := newTestGame(t, 42)
	g.Step(anyKey())

	prev := 0
	for tick := 0; tick < 3000; tick++ {
		in := core.NewInputFrame()
		switch tick % 37 {
		case 0:
			in.Set(core.ActionLeftCar)
		case 19:
			in.Set(core.ActionRightCar)
		}
		res := g.Step(in)
		if res.State.Score < prev {
			t.Fatalf("score fell from %d to %d at tick %d", prev, res.State.Score, tick)
		}
		prev = res.State.Score
		if res.State.GameOver {
			break
		}
		clk.Advance(16 * time.Millisecond)
	}
}

func TestGameOverIsFrozen(t *testing.T) {
	g, clk := newTestGame(t, 1)
	g.Step(anyKey())
	g.field.obstacles = []Entity{
		{Kind: KindRedBox, X: g.red.X, Y: CarY},
		{Kind: KindBlueBox, X: Lane2, Y: 100},
	}
	g.Step(core.NewInputFrame())

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		clk.Advance(16 * time.Millisecond)
		g.Step(anyKey())
	}
	after := g.Snapshot()

	if after.State != StateGameOver {
		t.Fatalf("state = %v, want game over", after.State)
	}
	if len(after.Obstacles) != len(before.Obstacles) ||
		after.Obstacles[0] != before.Obstacles[0] {
		t.Fatal("obstacles moved while the game was over")
	}
}

func TestRestartResetsRun(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	g.score = 4
	g.field.obstacles = []Entity{{Kind: KindRedBox, X: g.red.X, Y: CarY}}
	g.Step(core.NewInputFrame())

	g.Step(action(core.ActionRestart))
	snap := g.Snapshot()
	if snap.State != StatePlaying || snap.Score != 0 {
		t.Fatalf("state=%v score=%d after restart, want playing/0", snap.State, snap.Score)
	}
}

func TestHomeReturnsToMenu(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	g.field.obstacles = []Entity{{Kind: KindRedBox, X: g.red.X, Y: CarY}}
	g.Step(core.NewInputFrame())

	g.Step(action(core.ActionHome))
	if got := g.Snapshot().State; got != StateMenu {
		t.Fatalf("state = %v after home, want menu", got)
	}
}

func TestGameOverButtonsClickable(t *testing.T) {
	crash := func(t *testing.T) *Game {
		t.Helper()
		g, _ := newTestGame(t, 1)
		g.Step(anyKey())
		g.field.obstacles = []Entity{{Kind: KindRedBox, X: g.red.X, Y: CarY}}
		g.Step(core.NewInputFrame())
		return g
	}

	t.Run("restart", func(t *testing.T) {
		g := crash(t)
		in := core.NewInputFrame()
		cx, cy := RestartButton.Center()
		in.SetClick(cx, cy)
		g.Step(in)
		if got := g.Snapshot().State; got != StatePlaying {
			t.Fatalf("state = %v after restart click, want playing", got)
		}
	})

	t.Run("home", func(t *testing.T) {
		g := crash(t)
		in := core.NewInputFrame()
		cx, cy := HomeButton.Center()
		in.SetClick(cx, cy)
		g.Step(in)
		if got := g.Snapshot().State; got != StateMenu {
			t.Fatalf("state = %v after home click, want menu", got)
		}
	})

	t.Run("click outside both", func(t *testing.T) {
		g := crash(t)
		in := core.NewInputFrame()
		in.SetClick(0, 0)
		g.Step(in)
		if got := g.Snapshot().State; got != StateGameOver {
			t.Fatalf("state = %v after stray click, want game over", got)
		}
	})
}

func TestHighscorePersistsOnlyWhenBeaten(t *testing.T) {
	store := &memStore{}
	SetHighscoreStore(store)
	defer SetHighscoreStore(nil)

	g, _ := newTestGame(t, 1)
	g.Step(anyKey())
	g.score = 5
	g.field.obstacles = []Entity{{Kind: KindRedBox, X: g.red.X, Y: CarY}}
	g.Step(core.NewInputFrame())

	if store.best != 5 || store.saves != 1 {
		t.Fatalf("store best=%d saves=%d after first run, want 5/1", store.best, store.saves)
	}

	g.Step(action(core.ActionRestart))
	g.score = 3
	g.field.obstacles = []Entity{{Kind: KindRedBox, X: g.red.X, Y: CarY}}
	res := g.Step(core.NewInputFrame())

	if store.saves != 1 {
		t.Fatalf("store written %d times after a worse run, want 1", store.saves)
	}
	if res.State.HighScore != 5 {
		t.Fatalf("highscore = %d after a worse run, want 5", res.State.HighScore)
	}
}

func TestHighscoreLoadedOnReset(t *testing.T) {
	store := &memStore{best: 12}
	SetHighscoreStore(store)
	defer SetHighscoreStore(nil)

	g, _ := newTestGame(t, 1)
	if got := g.State().HighScore; got != 12 {
		t.Fatalf("highscore = %d after reset, want 12", got)
	}
}

func TestCoalesceKeepsSingleAction(t *testing.T) {
	g, clk := newTestGame(t, 1)
	g.cfg.Input.Coalesce = true
	g.Step(anyKey())

	in := core.NewInputFrame()
	in.Set(core.ActionLeftCar)
	in.Set(core.ActionRightCar)
	g.Step(in)

	clk.Advance(300 * time.Millisecond)
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Blue.X == Lane1 {
		t.Fatal("coalesced frame dropped the left-car action")
	}
	if snap.Red.X != Lane4 {
		t.Fatalf("red car moved to %d, coalescing should have dropped its action", snap.Red.X)
	}
}

func TestRenderSmoke(t *testing.T) {
	g, _ := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	g.Step(anyKey())
	g.Render(screen)

	g.field.obstacles = []Entity{{Kind: KindRedBox, X: g.red.X, Y: CarY}}
	g.Step(core.NewInputFrame())
	g.Render(screen)
}

func containsEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}
