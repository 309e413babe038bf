package flappy

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Pipe is a full-height vertical obstacle with a passable gap. Its entity
// box spans the whole world height; collision tests the two solid
// sections above and below the gap.
type Pipe struct {
	core.Entity
	GapCenterY float64
	GapSize    float64
	Scored     bool
}

// GapTop returns the y-coordinate of the top of the gap band.
func (p *Pipe) GapTop() float64 {
	return p.GapCenterY + p.GapSize/2
}

// GapBottom returns the y-coordinate of the bottom of the gap band.
func (p *Pipe) GapBottom() float64 {
	return p.GapCenterY - p.GapSize/2
}

// TopRect returns the collision rectangle of the solid section above the gap.
func (p *Pipe) TopRect() core.Rect {
	top := p.GapTop()
	return core.NewRect(p.Pos.X, (core.WorldH+top)/2, p.Size.X, core.WorldH-top)
}

// BottomRect returns the collision rectangle of the solid section below the gap.
func (p *Pipe) BottomRect() core.Rect {
	bottom := p.GapBottom()
	return core.NewRect(p.Pos.X, bottom/2, p.Size.X, bottom)
}

// PipeManager owns the ordered pipe collection: spawning, movement,
// scoring, collision, and sweep of off-screen pipes.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.FlappyPipes
}

// NewPipeManager creates a pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.FlappyPipes) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the RNG.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
}

// Spawn appends a new pipe at the spawn x with a uniformly random gap center.
func (pm *PipeManager) Spawn() {
	gapY := pm.cfg.GapMinY + pm.rng.Float64()*(pm.cfg.GapMaxY-pm.cfg.GapMinY)
	pm.pipes = append(pm.pipes, Pipe{
		Entity: core.NewEntity(
			core.V(pm.cfg.SpawnX, core.WorldH/2),
			core.V(pm.cfg.Width, core.WorldH),
		),
		GapCenterY: gapY,
		GapSize:    pm.cfg.GapSize,
	})
}

// Update moves pipes left and deactivates those fully past the left edge.
func (pm *PipeManager) Update(dt float64) {
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if !p.Active {
			continue
		}
		p.Pos.X -= pm.cfg.Speed * dt
		if p.Pos.X < -p.Size.X/2 {
			p.Active = false
		}
	}
}

// CheckCollision reports whether the bird hits any pipe: horizontal
// overlap with the pipe body while the bird's vertical extent sticks out
// of the gap band.
func (pm *PipeManager) CheckCollision(b *Bird) bool {
	bounds := b.Bounds()
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if !p.Active {
			continue
		}

		if bounds.Right() < p.Bounds().Left() || bounds.Left() > p.Bounds().Right() {
			continue
		}

		if bounds.Top() > p.GapTop() || bounds.Bottom() < p.GapBottom() {
			return true
		}
	}
	return false
}

// ScorePassed marks pipes whose right edge has passed the bird's left
// edge as scored and returns how many were newly scored. Each pipe scores
// at most once.
func (pm *PipeManager) ScorePassed(b *Bird) int {
	passed := 0
	for i := range pm.pipes {
		p := &pm.pipes[i]
		if !p.Active || p.Scored {
			continue
		}
		if p.Bounds().Right() < b.Bounds().Left() {
			p.Scored = true
			passed++
		}
	}
	return passed
}

// Sweep compacts the collection, dropping inactive pipes.
func (pm *PipeManager) Sweep() {
	live := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.Active {
			live = append(live, p)
		}
	}
	pm.pipes = live
}

// Pipes returns the current pipe collection.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
