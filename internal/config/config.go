// Package config provides YAML-based configuration loading and difficulty
// presets for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all tunable parameters of the game.
// Distances are world units, times are seconds.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics"`
	Shake    BreakoutShake    `yaml:"shake"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Layout   BreakoutLayout   `yaml:"layout"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutPhysics defines the simulation constants.
type BreakoutPhysics struct {
	TimeScale        float64 `yaml:"time_scale"`         // Global slow-motion multiplier
	BounceDelay      float64 `yaml:"bounce_delay"`       // Cooldown after a bounce
	BounceSpeedScale float64 `yaml:"bounce_speed_scale"` // Speed multiplier per paddle bounce
	AngleClamp       float64 `yaml:"angle_clamp"`        // Minimum angle above horizontal (radians)
	MaxSubsteps      int     `yaml:"max_substeps"`       // Bounce budget per ball per frame
}

// BreakoutShake defines the screen-shake spring-damper.
type BreakoutShake struct {
	BallMass  float64 `yaml:"ball_mass"`
	LevelMass float64 `yaml:"level_mass"`
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
}

// BreakoutPaddle defines the paddle geometry and handling.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Bottom       float64 `yaml:"bottom"`       // Distance from playfield bottom
	Acceleration float64 `yaml:"acceleration"` // Bias added per frame while a key is held
	Damping      float64 `yaml:"damping"`      // Bias multiplier per frame
	SpinFactor   float64 `yaml:"spin_factor"`  // Fraction of the bias imparted to balls
}

// BreakoutBall defines the ball prototype.
type BreakoutBall struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`       // Launch speed (straight up)
	CullMargin float64 `yaml:"cull_margin"` // Grace distance below the field before a ball is lost
}

// BreakoutLayout defines how level grids map to world space.
type BreakoutLayout struct {
	BlockWidth    float64 `yaml:"block_width"`
	BlockHeight   float64 `yaml:"block_height"`
	BlocksBottom  float64 `yaml:"blocks_bottom"`  // Offset from playfield bottom to the lowest block row
	WallThickness float64 `yaml:"wall_thickness"` // Thickness of the boundary sentinels
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BlockPoints int `yaml:"block_points"`
}

// Validate reports every parameter that would make the simulation
// meaningless, joined into one error.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("physics.time_scale", c.Physics.TimeScale)
	positive("physics.bounce_speed_scale", c.Physics.BounceSpeedScale)
	positive("shake.level_mass", c.Shake.LevelMass)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	positive("layout.block_width", c.Layout.BlockWidth)
	positive("layout.block_height", c.Layout.BlockHeight)
	positive("layout.wall_thickness", c.Layout.WallThickness)

	if c.Physics.AngleClamp <= 0 || c.Physics.AngleClamp >= 1.5707963267948966 {
		errs = append(errs, fmt.Errorf("physics.angle_clamp must be within (0, pi/2), got %v", c.Physics.AngleClamp))
	}
	if c.Physics.MaxSubsteps <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_substeps must be > 0, got %d", c.Physics.MaxSubsteps))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be > 0, got %d", c.Gameplay.Lives))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
