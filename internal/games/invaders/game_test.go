package invaders

import (
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func TestInitialFormation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	invs := g.formation.Invaders()
	if len(invs) != 50 {
		t.Fatalf("expected 5x10 = 50 invaders, got %d", len(invs))
	}
	if g.formation.ActiveCount() != 50 {
		t.Errorf("expected all 50 active, got %d", g.formation.ActiveCount())
	}

	// Grid corners at the documented offsets
	if invs[0].Pos != core.V(50, 500) {
		t.Errorf("first invader at %v, expected (50, 500)", invs[0].Pos)
	}
	if invs[9].Pos != core.V(50+9*60, 500) {
		t.Errorf("last invader of top row at %v, expected (590, 500)", invs[9].Pos)
	}
	if invs[49].Pos != core.V(590, 500-4*30) {
		t.Errorf("last invader at %v, expected (590, 380)", invs[49].Pos)
	}
}

func TestWaveClearRegeneratesGrid(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Destroy all 50 invaders
	invs := g.formation.Invaders()
	for i := range invs {
		invs[i].Active = false
	}
	if g.formation.ActiveCount() != 0 {
		t.Fatal("setup failed: invaders still active")
	}

	g.score = 470

	// The next collision pass regenerates the full grid
	g.checkCollisions()

	if got := g.formation.ActiveCount(); got != 50 {
		t.Fatalf("expected 50 active invaders after wave clear, got %d", got)
	}
	if g.formation.Invaders()[0].Pos != core.V(50, 500) {
		t.Error("regenerated grid should use the initial layout")
	}
	if g.score != 470 {
		t.Errorf("wave clear must not touch the score, got %d", g.score)
	}
	if g.gameOver {
		t.Error("wave clear must not end the game")
	}
}

func TestBulletLifecycle(t *testing.T) {
	// A bullet created at y=300 moving at +300 units/s covers 5 units per
	// tick at 60 fps: it reaches y=600 on tick 60 (still in bounds) and
	// deactivates on tick 61.
	g := New()
	g.Reset(testConfig())

	g.bullets = append(g.bullets, Bullet{
		Entity: core.NewEntity(core.V(400, 300), core.V(2, 5)),
		VelY:   300,
	})

	dt := testConfig().StepDT()
	for i := 0; i < 60; i++ {
		g.updateBullets(dt)
	}
	if !g.bullets[0].Active {
		t.Fatal("bullet at y=600 should still be active")
	}
	if g.bullets[0].Pos.Y != 600 {
		t.Errorf("bullet Y after 60 ticks = %v, expected 600", g.bullets[0].Pos.Y)
	}

	g.updateBullets(dt)
	if g.bullets[0].Active {
		t.Error("bullet past y=600 should be inactive")
	}
}

func TestFireCooldown(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)

	g.Step(fire)
	if len(g.bullets) != 1 {
		t.Fatalf("expected 1 bullet after first shot, got %d", len(g.bullets))
	}

	// Cooldown is 0.2 s = 12 ticks at 60 fps; firing every tick must not
	// spawn another bullet until it elapses.
	for i := 0; i < 8; i++ {
		g.Step(fire)
	}
	if len(g.bullets) != 1 {
		t.Errorf("cooldown ignored: %d bullets after 9 ticks", len(g.bullets))
	}

	for i := 0; i < 10; i++ {
		g.Step(fire)
	}
	if len(g.bullets) != 2 {
		t.Errorf("expected exactly one more bullet once cooldown elapsed, got %d", len(g.bullets))
	}
}

func TestBulletSpawnsAtPlayerTop(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	b := g.bullets[0]
	// One tick of movement has already been applied by the step
	wantY := g.cfg.Player.StartY + g.cfg.Player.Size/2
	if b.Pos.X != g.player.Pos.X || b.Pos.Y < wantY {
		t.Errorf("bullet spawned at %v, expected above player top (x=%v, y>=%v)",
			b.Pos, g.player.Pos.X, wantY)
	}
}

func TestPlayerClamp(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	right := core.NewInputFrame()
	right.Set(core.ActionRight)

	// 200 units/s for 5 simulated seconds crosses the whole world
	for i := 0; i < 300; i++ {
		g.Step(right)
	}
	if g.player.Pos.X != core.WorldW-g.cfg.Player.Size/2 {
		t.Errorf("player X = %v, expected clamp at %v", g.player.Pos.X, core.WorldW-g.cfg.Player.Size/2)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 600; i++ {
		g.Step(left)
	}
	if g.player.Pos.X != g.cfg.Player.Size/2 {
		t.Errorf("player X = %v, expected clamp at %v", g.player.Pos.X, g.cfg.Player.Size/2)
	}
}

func TestFormationReversalAtBounds(t *testing.T) {
	f := NewFormation(New().cfg.Formation)

	// Drive march ticks directly; each call advances one full interval.
	for tick := 0; tick < 40; tick++ {
		before := f.Direction()
		f.Update(1.01)

		outOfBounds := false
		for _, inv := range f.Invaders() {
			if inv.Active && (inv.Pos.X < 20 || inv.Pos.X > 780) {
				outOfBounds = true
				break
			}
		}
		// An out-of-bounds invader must coincide with a reversal on the
		// same march tick.
		if outOfBounds && f.Direction() == before {
			t.Fatalf("tick %d: invader out of bounds without direction reversal", tick)
		}
	}
}

func TestFormationDropsOnReversal(t *testing.T) {
	f := NewFormation(New().cfg.Formation)
	topBefore := f.Invaders()[0].Pos.Y

	// March right until the first reversal
	reversed := false
	for tick := 0; tick < 20; tick++ {
		f.Update(1.01)
		if f.Direction() < 0 {
			reversed = true
			break
		}
	}
	if !reversed {
		t.Fatal("formation never reversed")
	}

	if got := f.Invaders()[0].Pos.Y; got != topBefore-10 {
		t.Errorf("top row Y after reversal = %v, expected %v", got, topBefore-10)
	}
}

func TestFormationBreachEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Park the remaining invader just above the loss line at the right
	// bound so the next reversal drops it across.
	invs := g.formation.Invaders()
	for i := range invs {
		invs[i].Active = false
	}
	invs[0].Active = true
	invs[0].Pos = core.V(775, 75)

	// One march tick: step right to 795, reverse, drop to 65 <= 70.
	for i := 0; i < 61 && !g.gameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	if !g.gameOver {
		t.Error("invader crossing the loss line should end the game")
	}
}

func TestBulletInvaderCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	target := &g.formation.Invaders()[0]
	g.bullets = append(g.bullets, Bullet{
		Entity: core.NewEntity(target.Pos, core.V(2, 5)),
		VelY:   300,
	})

	g.checkCollisions()

	if g.formation.Invaders()[0].Active {
		t.Error("hit invader should be deactivated")
	}
	if g.bullets[0].Active {
		t.Error("hit bullet should be deactivated")
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
}

func TestOneBulletKillsOneInvader(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Place the bullet overlapping two adjacent invaders' rows; only the
	// first hit counts for a single bullet.
	invs := g.formation.Invaders()
	invs[1].Pos = invs[0].Pos // Stack two invaders

	g.bullets = append(g.bullets, Bullet{
		Entity: core.NewEntity(invs[0].Pos, core.V(2, 5)),
		VelY:   300,
	})

	g.checkCollisions()

	active := 0
	for _, inv := range g.formation.Invaders()[:2] {
		if inv.Active {
			active++
		}
	}
	if active != 1 {
		t.Errorf("one bullet deactivated %d of the stacked invaders, expected exactly 1", 2-active)
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
}

func TestResetClearsState(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	fire.Set(core.ActionRight)
	for i := 0; i < 30; i++ {
		g.Step(fire)
	}

	g.gameOver = true
	g.score = 120

	g.Reset(testConfig())

	if g.score != 0 || g.gameOver || g.paused {
		t.Error("Reset should clear score and flags")
	}
	if len(g.bullets) != 0 {
		t.Errorf("Reset should clear bullets, got %d", len(g.bullets))
	}
	if g.formation.ActiveCount() != 50 {
		t.Errorf("Reset should regenerate the grid, got %d active", g.formation.ActiveCount())
	}
	if g.player.Pos != core.V(400, 50) {
		t.Errorf("Reset should recreate the player at (400, 50), got %v", g.player.Pos)
	}
	if g.formation.Direction() != 1 {
		t.Error("Reset should restore the rightward march")
	}
}
