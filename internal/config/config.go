// Package config provides YAML-based game configuration loading for the
// arcade platform. Every gameplay constant lives here so games can be
// tuned without recompiling.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics FlappyPhysics `yaml:"physics"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Bird    FlappyBird    `yaml:"bird"`
}

// FlappyPhysics defines physics parameters, in world units per second.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Vertical acceleration (negative = down)
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward velocity applied on flap
}

// FlappyPipes defines pipe spawn and movement parameters.
type FlappyPipes struct {
	Speed         float64 `yaml:"speed"`          // Leftward speed
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	SpawnX        float64 `yaml:"spawn_x"`        // X where pipes appear
	Width         float64 `yaml:"width"`
	GapSize       float64 `yaml:"gap_size"`  // Passable band height
	GapMinY       float64 `yaml:"gap_min_y"` // Gap center lower bound
	GapMaxY       float64 `yaml:"gap_max_y"` // Gap center upper bound
}

// FlappyBird defines the bird's spawn position and hitbox.
type FlappyBird struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`
}

// InvadersConfig contains all configuration for the Space Invaders game.
type InvadersConfig struct {
	Player    InvadersPlayer    `yaml:"player"`
	Formation InvadersFormation `yaml:"formation"`
	Bullets   InvadersBullets   `yaml:"bullets"`
}

// InvadersPlayer defines the player ship parameters.
type InvadersPlayer struct {
	Speed        float64 `yaml:"speed"`         // Horizontal speed at full axis deflection
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots
	Size         float64 `yaml:"size"`
	StartY       float64 `yaml:"start_y"`
}

// InvadersFormation defines the invader grid layout and march behavior.
type InvadersFormation struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	OriginX      float64 `yaml:"origin_x"`      // X of the first column
	TopY         float64 `yaml:"top_y"`         // Y of the top row
	ColSpacing   float64 `yaml:"col_spacing"`
	RowSpacing   float64 `yaml:"row_spacing"`
	InvaderSize  float64 `yaml:"invader_size"`
	StepSize     float64 `yaml:"step_size"`     // Horizontal displacement per march tick
	MoveInterval float64 `yaml:"move_interval"` // Seconds between march ticks
	MinX         float64 `yaml:"min_x"`         // Horizontal bound before reversal
	MaxX         float64 `yaml:"max_x"`
	DropStep     float64 `yaml:"drop_step"`     // Downward displacement on reversal
	LossY        float64 `yaml:"loss_y"`        // Formation reaching this Y ends the game
}

// InvadersBullets defines bullet parameters.
type InvadersBullets struct {
	Speed     float64 `yaml:"speed"` // Upward speed
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	KillScore int     `yaml:"kill_score"`
}
