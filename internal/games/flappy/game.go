// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps in a stream of pipes scrolling in
// from the right. One pipe passed is one point; touching a pipe or the
// ground ends the run.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var configPath string

// SetConfigPath sets a custom YAML config path used by the next New().
func SetConfigPath(path string) {
	configPath = path
}

// Bird is the player entity. The bird only moves vertically; the world
// scrolls past it.
type Bird struct {
	core.Entity
	VelY float64
}

// Jump applies the upward impulse.
func (b *Bird) Jump(impulse float64) {
	b.VelY = impulse
}

// OnGround reports whether the bird rests on the lower world bound.
func (b *Bird) OnGround() bool {
	return b.Pos.Y <= b.Size.Y/2+1.0
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	runtime    core.RuntimeConfig
	bird       Bird
	pipes      *PipeManager
	spawnTimer float64
	score      int
	gameOver   bool
	paused     bool
	tickCount  int
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.bird = Bird{
		Entity: core.NewEntity(
			core.V(g.cfg.Bird.StartX, g.cfg.Bird.StartY),
			core.V(g.cfg.Bird.Size, g.cfg.Bird.Size),
		),
	}
	g.spawnTimer = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed, g.cfg.Pipes)
	} else {
		g.pipes.Reset(cfg.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		// The flap key restarts, as on the original cabinet.
		if in.Has(core.ActionJump) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.StepDT()
	g.tickCount++

	if in.Has(core.ActionJump) {
		g.bird.Jump(g.cfg.Physics.JumpImpulse)
	}

	// Integrate gravity
	g.bird.VelY += g.cfg.Physics.Gravity * dt
	g.bird.Pos.Y += g.bird.VelY * dt

	// Vertical clamps. The floor kills (checked below); the ceiling only
	// stops the bird.
	halfH := g.bird.Size.Y / 2
	if g.bird.Pos.Y < halfH {
		g.bird.Pos.Y = halfH
		g.bird.VelY = 0
	}
	if g.bird.Pos.Y > core.WorldH-halfH {
		g.bird.Pos.Y = core.WorldH - halfH
		g.bird.VelY = 0
	}

	// Spawn and move pipes
	g.spawnTimer += dt
	if g.spawnTimer > g.cfg.Pipes.SpawnInterval {
		g.pipes.Spawn()
		g.spawnTimer = 0
	}
	g.pipes.Update(dt)

	// Collisions
	if g.pipes.CheckCollision(&g.bird) {
		g.gameOver = true
	}
	if g.bird.OnGround() {
		g.gameOver = true
	}

	// Scoring is independent of collision outcome
	g.score += g.pipes.ScorePassed(&g.bird)

	g.pipes.Sweep()

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(dst.Width(), dst.Height())

	// Pipes
	for i := range g.pipes.Pipes() {
		p := &g.pipes.Pipes()[i]
		if !p.Active {
			continue
		}
		for _, r := range []core.Rect{p.TopRect(), p.BottomRect()} {
			x, y, w, h := vp.RectCells(r)
			dst.FillRect(x, y, w, h, '█', core.ColorGreen)
		}
	}

	// Bird
	bx, by, bw, bh := vp.RectCells(g.bird.Bounds())
	dst.FillRect(bx, by, bw, bh, '●', core.ColorBrightYellow)

	// Ground line
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), '═', core.ColorGray)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space to restart, Esc for menu", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
