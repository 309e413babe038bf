package core

// Entity is the base simulation object: a positioned, sized box with a
// liveness flag. Game-specific entities embed it and add their own state
// (velocity, cooldowns, scoring flags). An entity with Active == false is
// swept from its collection at the end of the step and never rendered or
// considered again.
type Entity struct {
	Pos    Vec2
	Size   Vec2
	Active bool
}

// NewEntity creates an active entity at the given center position.
func NewEntity(pos, size Vec2) Entity {
	return Entity{Pos: pos, Size: size, Active: true}
}

// Bounds returns the entity's collision rectangle.
func (e Entity) Bounds() Rect {
	return Rect{Pos: e.Pos, Size: e.Size}
}

// CollidesWith reports whether two entities' bounds overlap.
func (e Entity) CollidesWith(o Entity) bool {
	return e.Bounds().Intersects(o.Bounds())
}
