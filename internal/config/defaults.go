package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			TimeScale:        1.0,
			BounceDelay:      0.01,
			BounceSpeedScale: 1.05,
			AngleClamp:       0.5,
			MaxSubsteps:      64,
		},
		Shake: BreakoutShake{
			BallMass:  3.0,
			LevelMass: 5.0,
			Damping:   0.3,
			Stiffness: 3.0,
		},
		Paddle: BreakoutPaddle{
			Width:        96,
			Height:       16,
			Bottom:       32,
			Acceleration: 96,
			Damping:      0.9,
			SpinFactor:   0.4,
		},
		Ball: BreakoutBall{
			Radius:     8,
			Speed:      300,
			CullMargin: 12,
		},
		Layout: BreakoutLayout{
			BlockWidth:    24,
			BlockHeight:   16,
			BlocksBottom:  256,
			WallThickness: 24,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BlockPoints: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
