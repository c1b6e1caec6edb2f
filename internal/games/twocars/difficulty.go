package twocars

import (
	"time"

	"github.com/ddrozdov/twocars/internal/config"
	"github.com/ddrozdov/twocars/internal/core"
)

// Difficulty ramps the pace of a session: every interval it tightens the
// spawn countdown and speeds the obstacles up, within configured bounds.
type Difficulty struct {
	cfg        config.DifficultyConfig
	start      time.Time
	lastAdjust time.Time
}

func NewDifficulty(cfg config.DifficultyConfig) *Difficulty {
	return &Difficulty{cfg: cfg}
}

// Reset marks the start of a session. Seeding lastAdjust to the same instant
// keeps the zero-second mark from counting as an interval boundary.
func (d *Difficulty) Reset(now time.Time) {
	d.start = now
	d.lastAdjust = now
}

// Adjust returns the spawn rate and speed to use from now on. The values
// step once per interval; the millisecond guard stops the same boundary
// second from firing over multiple ticks.
func (d *Difficulty) Adjust(now time.Time, spawnRate, speed int) (int, int) {
	if d.cfg.IntervalSeconds <= 0 {
		return spawnRate, speed
	}
	elapsed := int(now.Sub(d.start).Seconds())
	guard := time.Duration(d.cfg.MinAdjustMs) * time.Millisecond
	if elapsed%d.cfg.IntervalSeconds == 0 && now.Sub(d.lastAdjust) >= guard {
		spawnRate = core.Max(d.cfg.SpawnRateFloor, spawnRate-d.cfg.SpawnRateStep)
		speed = core.Min(d.cfg.SpeedCeiling, speed+d.cfg.SpeedStep)
		d.lastAdjust = now
	}
	return spawnRate, speed
}
