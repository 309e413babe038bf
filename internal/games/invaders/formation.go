package invaders

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Invader is one alien in the marching grid.
type Invader struct {
	core.Entity
}

// Formation owns the invader grid: layout, the timed march, edge
// reversal with the downward drop, and the loss check when the grid
// reaches the player's row.
type Formation struct {
	invaders  []Invader
	direction float64 // +1 marching right, -1 marching left
	moveTimer float64
	cfg       config.InvadersFormation
}

// NewFormation creates a formation with a freshly populated grid.
func NewFormation(cfg config.InvadersFormation) *Formation {
	f := &Formation{
		invaders: make([]Invader, 0, cfg.Rows*cfg.Cols),
		cfg:      cfg,
	}
	f.Repopulate()
	return f
}

// Repopulate rebuilds the full grid at its initial layout and restores
// the rightward march. Used at game start and on wave clear.
func (f *Formation) Repopulate() {
	f.invaders = f.invaders[:0]
	f.direction = 1
	for row := 0; row < f.cfg.Rows; row++ {
		for col := 0; col < f.cfg.Cols; col++ {
			f.invaders = append(f.invaders, Invader{
				Entity: core.NewEntity(
					core.V(
						f.cfg.OriginX+float64(col)*f.cfg.ColSpacing,
						f.cfg.TopY-float64(row)*f.cfg.RowSpacing,
					),
					core.V(f.cfg.InvaderSize, f.cfg.InvaderSize),
				),
			})
		}
	}
}

// Reset restores the formation for a new game.
func (f *Formation) Reset() {
	f.moveTimer = 0
	f.Repopulate()
}

// Update advances the march timer. On each expiry active invaders step
// sideways; if any then sits outside the horizontal bounds the whole
// formation reverses and drops. Returns true if the drop brought an
// invader to the loss line.
func (f *Formation) Update(dt float64) (breached bool) {
	f.moveTimer += dt
	if f.moveTimer <= f.cfg.MoveInterval {
		return false
	}
	f.moveTimer = 0

	for i := range f.invaders {
		if f.invaders[i].Active {
			f.invaders[i].Pos.X += f.cfg.StepSize * f.direction
		}
	}

	reverse := false
	for i := range f.invaders {
		inv := &f.invaders[i]
		if inv.Active && (inv.Pos.X < f.cfg.MinX || inv.Pos.X > f.cfg.MaxX) {
			reverse = true
			break
		}
	}

	if reverse {
		f.direction *= -1
		for i := range f.invaders {
			inv := &f.invaders[i]
			if !inv.Active {
				continue
			}
			inv.Pos.Y -= f.cfg.DropStep
			if inv.Pos.Y <= f.cfg.LossY {
				breached = true
			}
		}
	}

	return breached
}

// Invaders returns the invader collection for collision and rendering.
// Elements may be mutated through the returned slice.
func (f *Formation) Invaders() []Invader {
	return f.invaders
}

// ActiveCount returns the number of invaders still in play.
func (f *Formation) ActiveCount() int {
	n := 0
	for i := range f.invaders {
		if f.invaders[i].Active {
			n++
		}
	}
	return n
}

// Sweep compacts the collection, dropping destroyed invaders.
func (f *Formation) Sweep() {
	live := f.invaders[:0]
	for _, inv := range f.invaders {
		if inv.Active {
			live = append(live, inv)
		}
	}
	f.invaders = live
}

// Direction returns the current march direction (+1 or -1).
func (f *Formation) Direction() float64 {
	return f.direction
}
