// Package config provides YAML-based tuning for the game, with embedded
// defaults so the binary runs without any config file present.
package config

// TwoCarsConfig contains all tunable parameters for the Two Cars game.
type TwoCarsConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Cars       CarsConfig       `yaml:"cars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// FieldConfig defines the obstacle field's starting parameters.
type FieldConfig struct {
	// SpawnRate is the number of ticks between spawn pairs at session start.
	SpawnRate int `yaml:"spawn_rate"`
	// ObstacleSpeed is the fall speed in virtual pixels per tick at session
	// start.
	ObstacleSpeed int `yaml:"obstacle_speed"`
}

// CarsConfig defines the car animation parameters.
type CarsConfig struct {
	// AnimationMs is the duration of the lane-change and tilt animations.
	AnimationMs int `yaml:"animation_ms"`
	// TiltDegrees is the peak banking angle during a lane change.
	TiltDegrees float64 `yaml:"tilt_degrees"`
}

// DifficultyConfig defines the timed difficulty ramp. Every time elapsed
// play time crosses a multiple of IntervalSeconds (with at least
// MinAdjustMs since the previous adjustment) the spawn rate drops by
// SpawnRateStep and the obstacle speed rises by SpeedStep, clamped to
// SpawnRateFloor and SpeedCeiling.
type DifficultyConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	SpawnRateStep   int `yaml:"spawn_rate_step"`
	SpawnRateFloor  int `yaml:"spawn_rate_floor"`
	SpeedStep       int `yaml:"speed_step"`
	SpeedCeiling    int `yaml:"speed_ceiling"`
	MinAdjustMs     int `yaml:"min_adjust_ms"`
}

// InputConfig defines input handling behavior.
type InputConfig struct {
	// Coalesce keeps only the first triggered action per tick and drops
	// the rest of the frame, for the classic one-input-per-tick feel.
	Coalesce bool `yaml:"coalesce"`
}
