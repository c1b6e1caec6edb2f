package twocars

// Snapshot is a read-only view of the game for tooling and tests. Rendering
// goes through Render; this is for everything that wants structured state.
type Snapshot struct {
	State     State
	Score     int
	HighScore int
	SpawnRate int
	Speed     int
	Blue      CarView
	Red       CarView
	Obstacles []ObstacleView
}

// CarView describes one car's position and tilt.
type CarView struct {
	X, Y  int
	Angle float64
}

// ObstacleView describes one falling obstacle.
type ObstacleView struct {
	Kind Kind
	X, Y int
}

// Snapshot copies the current state out of the game.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:     g.state,
		Score:     g.score,
		HighScore: g.highscore,
		SpawnRate: g.spawnRate,
		Speed:     g.speed,
		Blue:      CarView{X: g.blue.X, Y: g.blue.Y, Angle: g.blue.Angle},
		Red:       CarView{X: g.red.X, Y: g.red.Y, Angle: g.red.Angle},
	}
	for _, e := range g.field.Obstacles() {
		s.Obstacles = append(s.Obstacles, ObstacleView{Kind: e.Kind, X: e.X, Y: e.Y})
	}
	return s
}
