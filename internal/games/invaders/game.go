// Package invaders implements a Space Invaders-style game.
// The player slides along the bottom of the screen shooting at a grid of
// invaders that marches sideways and drops toward the player. Clearing
// the grid spawns the next wave; the game ends when the formation
// reaches the player's row.
package invaders

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

// Player is the ship at the bottom of the screen.
type Player struct {
	core.Entity
	VelX         float64
	FireCooldown float64
}

// CanFire reports whether the cooldown has elapsed.
func (p *Player) CanFire() bool {
	return p.FireCooldown <= 0
}

// Bullet is a player shot moving straight up.
type Bullet struct {
	core.Entity
	VelY float64
}

// Game implements the Space Invaders game logic.
type Game struct {
	cfg       config.InvadersConfig
	runtime   core.RuntimeConfig
	player    Player
	formation *Formation
	bullets   []Bullet
	score     int
	gameOver  bool
	paused    bool
	tickCount int
}

// New creates a new Space Invaders game instance.
func New() *Game {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.player = Player{
		Entity: core.NewEntity(
			core.V(core.WorldW/2, g.cfg.Player.StartY),
			core.V(g.cfg.Player.Size, g.cfg.Player.Size),
		),
	}
	g.bullets = g.bullets[:0]
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.formation == nil {
		g.formation = NewFormation(g.cfg.Formation)
	} else {
		g.formation.Reset()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
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

	g.updatePlayer(in, dt)
	g.updateBullets(dt)

	if g.formation.Update(dt) {
		g.gameOver = true
	}

	g.checkCollisions()
	g.cleanup()

	return core.StepResult{State: g.State()}
}

// updatePlayer applies horizontal movement, the screen clamp, the fire
// cooldown, and shooting.
func (g *Game) updatePlayer(in core.InputFrame, dt float64) {
	g.player.VelX = in.HorizontalAxis() * g.cfg.Player.Speed
	g.player.Pos.X += g.player.VelX * dt

	halfW := g.player.Size.X / 2
	g.player.Pos.X = core.ClampF(g.player.Pos.X, halfW, core.WorldW-halfW)

	g.player.FireCooldown -= dt
	if g.player.FireCooldown < 0 {
		g.player.FireCooldown = 0
	}

	if in.Has(core.ActionFire) && g.player.CanFire() {
		g.bullets = append(g.bullets, Bullet{
			Entity: core.NewEntity(
				g.player.Pos.Add(core.V(0, g.player.Size.Y/2)),
				core.V(g.cfg.Bullets.Width, g.cfg.Bullets.Height),
			),
			VelY: g.cfg.Bullets.Speed,
		})
		g.player.FireCooldown = g.cfg.Player.FireCooldown
	}
}

// updateBullets integrates bullet movement and deactivates bullets that
// leave the vertical screen bounds.
func (g *Game) updateBullets(dt float64) {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		b.Pos.Y += b.VelY * dt
		if b.Pos.Y < 0 || b.Pos.Y > core.WorldH {
			b.Active = false
		}
	}
}

// checkCollisions resolves bullet/invader hits and regenerates the grid
// on wave clear.
func (g *Game) checkCollisions() {
	invs := g.formation.Invaders()

	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.Active {
			continue
		}
		for j := range invs {
			inv := &invs[j]
			if !inv.Active {
				continue
			}
			if b.Entity.CollidesWith(inv.Entity) {
				b.Active = false
				inv.Active = false
				g.score += g.cfg.Bullets.KillScore
				break
			}
		}
	}

	// Next wave
	if g.formation.ActiveCount() == 0 {
		g.formation.Repopulate()
	}
}

// cleanup sweeps deactivated bullets and invaders.
func (g *Game) cleanup() {
	live := g.bullets[:0]
	for _, b := range g.bullets {
		if b.Active {
			live = append(live, b)
		}
	}
	g.bullets = live

	g.formation.Sweep()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(dst.Width(), dst.Height())

	// Player
	px, py, pw, ph := vp.RectCells(g.player.Bounds())
	dst.FillRect(px, py, pw, ph, '▲', core.ColorBrightGreen)

	// Invaders
	for _, inv := range g.formation.Invaders() {
		if !inv.Active {
			continue
		}
		x, y, w, h := vp.RectCells(inv.Bounds())
		dst.FillRect(x, y, w, h, '▼', core.ColorBrightRed)
	}

	// Bullets
	for _, b := range g.bullets {
		if !b.Active {
			continue
		}
		x, y := vp.Point(b.Pos)
		dst.SetCell(x, y, '│', core.ColorBrightWhite)
	}

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightYellow)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d  |  R to restart, Esc for menu", g.score))
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
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
