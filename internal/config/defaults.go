package config

import (
	_ "embed"
)

//go:embed defaults/twocars.yaml
var defaultTwoCarsYAML []byte

// DefaultTwoCarsConfig returns the hardcoded default configuration, matching
// the embedded YAML. Used as the last-resort fallback.
func DefaultTwoCarsConfig() TwoCarsConfig {
	return TwoCarsConfig{
		Field: FieldConfig{
			SpawnRate:     80,
			ObstacleSpeed: 6,
		},
		Cars: CarsConfig{
			AnimationMs: 200,
			TiltDegrees: 15,
		},
		Difficulty: DifficultyConfig{
			IntervalSeconds: 15,
			SpawnRateStep:   20,
			SpawnRateFloor:  10,
			SpeedStep:       2,
			SpeedCeiling:    15,
			MinAdjustMs:     1000,
		},
		Input: InputConfig{
			Coalesce: false,
		},
	}
}
