package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// Used as a last resort if the embedded YAML fails to parse.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     -800.0,
			JumpImpulse: 350.0,
		},
		Pipes: FlappyPipes{
			Speed:         150.0,
			SpawnInterval: 2.5,
			SpawnX:        850.0,
			Width:         60.0,
			GapSize:       150.0,
			GapMinY:       150.0,
			GapMaxY:       450.0,
		},
		Bird: FlappyBird{
			StartX: 100.0,
			StartY: 300.0,
			Size:   20.0,
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Player: InvadersPlayer{
			Speed:        200.0,
			FireCooldown: 0.2,
			Size:         20.0,
			StartY:       50.0,
		},
		Formation: InvadersFormation{
			Rows:         5,
			Cols:         10,
			OriginX:      50.0,
			TopY:         500.0,
			ColSpacing:   60.0,
			RowSpacing:   30.0,
			InvaderSize:  15.0,
			StepSize:     20.0,
			MoveInterval: 1.0,
			MinX:         20.0,
			MaxX:         780.0,
			DropStep:     10.0,
			LossY:        70.0,
		},
		Bullets: InvadersBullets{
			Speed:     300.0,
			Width:     2.0,
			Height:    5.0,
			KillScore: 10,
		},
	}
}
