package twocars

import (
	"math/rand"
	"time"

	"github.com/ddrozdov/twocars/internal/config"
	"github.com/ddrozdov/twocars/internal/core"
	"github.com/ddrozdov/twocars/internal/registry"
)

// State is the top-level screen the game is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "menu"
	}
}

// HighscoreStore persists the best score across runs.
type HighscoreStore interface {
	Load() (int, error)
	Save(score int) error
}

var (
	configPath string
	highscores HighscoreStore
)

// SetConfigPath points Reset at a specific config file instead of the
// default search path.
func SetConfigPath(path string) { configPath = path }

// SetHighscoreStore installs the store used by games created afterwards.
func SetHighscoreStore(s HighscoreStore) { highscores = s }

// menu "press any key" bob, in virtual pixels per tick.
const (
	menuBobRange = 10
	menuBobStep  = 1
)

// Game runs the Two Cars state machine over the field, cars and difficulty
// ramp. It is single-goroutine: the driver calls Step once per tick.
type Game struct {
	cfg   config.TwoCarsConfig
	state State

	blue, red *Car
	field     *Field
	diff      *Difficulty

	score     int
	highscore int
	spawnRate int
	speed     int

	menuBob    int
	menuBobDir int

	rng   *rand.Rand
	now   func() time.Time
	store HighscoreStore
}

func New() *Game {
	return &Game{now: time.Now}
}

func init() {
	registry.Register("twocars", func() registry.Game { return New() })
}

func (g *Game) ID() string    { return "twocars" }
func (g *Game) Title() string { return "Two Cars" }

// Reset loads config, re-reads the persisted highscore and lands on the
// main menu.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTwoCars(configPath)
	if err != nil {
		cfg = config.DefaultTwoCarsConfig()
	}
	g.cfg = cfg

	anim := time.Duration(cfg.Cars.AnimationMs) * time.Millisecond
	g.blue = newCar(SideBlue, Lane1, Lane2, anim, cfg.Cars.TiltDegrees)
	g.red = newCar(SideRed, Lane4, Lane3, anim, cfg.Cars.TiltDegrees)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.field = NewField(g.rng.Int63())
	g.diff = NewDifficulty(cfg.Difficulty)

	g.store = highscores
	g.highscore = 0
	if g.store != nil {
		if hs, err := g.store.Load(); err == nil {
			g.highscore = hs
		}
	}

	g.menuBob = 0
	g.menuBobDir = menuBobStep
	g.resetSession()
	g.state = StateMenu
}

// resetSession zeroes the per-run fields without touching the highscore.
func (g *Game) resetSession() {
	g.score = 0
	g.spawnRate = g.cfg.Field.SpawnRate
	g.speed = g.cfg.Field.ObstacleSpeed
	g.field.Reset(g.rng.Int63())
	g.blue.resetPosition()
	g.red.resetPosition()
}

func (g *Game) startSession() {
	g.resetSession()
	g.diff.Reset(g.now())
	g.state = StatePlaying
}

func (g *Game) toMenu() {
	g.resetSession()
	g.state = StateMenu
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.cfg.Input.Coalesce {
		in = coalesce(in)
	}

	var events []core.Event
	switch g.state {
	case StateMenu:
		if in.AnyKey || in.Clicked {
			g.startSession()
		} else {
			g.stepMenu()
		}

	case StatePlaying:
		if in.Has(core.ActionBack) {
			g.toMenu()
			break
		}
		events = g.stepPlaying(in)

	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart),
			in.Clicked && RestartButton.Contains(in.ClickX, in.ClickY):
			g.startSession()
		case in.Has(core.ActionHome),
			in.Clicked && HomeButton.Contains(in.ClickX, in.ClickY):
			g.toMenu()
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// stepMenu bounces the "press any key" prompt.
func (g *Game) stepMenu() {
	g.menuBob += g.menuBobDir
	if g.menuBob >= menuBobRange || g.menuBob <= -menuBobRange {
		g.menuBobDir = -g.menuBobDir
	}
}

// stepPlaying runs one simulation tick: move and cull obstacles, resolve
// collisions, ramp difficulty, spawn, animate cars. A crash or a missed
// circle flips the game over at the end of the tick, after collected
// circles have been scored.
func (g *Game) stepPlaying(in core.InputFrame) []core.Event {
	now := g.now()

	if in.Has(core.ActionLeftCar) {
		g.blue.ToggleLane(now)
	}
	if in.Has(core.ActionRightCar) {
		g.red.ToggleLane(now)
	}

	g.field.Advance(g.speed)
	missed := g.field.Cull()
	picked, crashed := g.field.Resolve(g.blue.Rect(), g.red.Rect())
	g.score += picked

	var events []core.Event
	for i := 0; i < picked; i++ {
		events = append(events, core.EventPickup)
	}

	if crashed || missed {
		if crashed {
			events = append(events, core.EventCrash)
		}
		if missed {
			events = append(events, core.EventMiss)
		}
		g.gameOver()
		return events
	}

	g.spawnRate, g.speed = g.diff.Adjust(now, g.spawnRate, g.speed)
	g.field.Spawn(g.spawnRate)
	g.blue.Update(now)
	g.red.Update(now)
	return events
}

// gameOver freezes the run and persists the highscore if it improved.
func (g *Game) gameOver() {
	g.state = StateGameOver
	if g.score > g.highscore {
		g.highscore = g.score
		if g.store != nil {
			// best effort: a failed write must not take the game down
			_ = g.store.Save(g.highscore)
		}
	}
}

func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highscore,
		GameOver:  g.state == StateGameOver,
	}
}

// coalesce keeps only the highest-priority action of the frame, for setups
// that want the classic one-input-per-tick feel.
func coalesce(in core.InputFrame) core.InputFrame {
	order := []core.Action{
		core.ActionQuit, core.ActionBack, core.ActionRestart,
		core.ActionHome, core.ActionLeftCar, core.ActionRightCar,
	}
	for _, a := range order {
		if in.Has(a) {
			out := in
			out.Actions = map[core.Action]bool{a: true}
			return out
		}
	}
	return in
}
