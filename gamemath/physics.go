package gamemath

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether two rectangles overlap (strictly, edges touching
// does not count).
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Hitbox is a collision sub-rectangle relative to a body position. All
// collision math uses the hitbox, never the visual box.
type Hitbox struct {
	OffsetX, OffsetY float64
	W, H             float64
}

// Body is the kinematic unit the physics engine operates on. Position is
// the top-left of the visual box in world pixels.
type Body struct {
	X, Y   float64
	VelX   float64
	VelY   float64
	W, H   float64 // visual size
	Hitbox Hitbox

	OnGround    bool
	OnPlatform  bool
	FacingRight bool
}

// HitRect returns the body's hitbox in world coordinates.
func (b *Body) HitRect() Rect {
	return Rect{
		X: b.X + b.Hitbox.OffsetX,
		Y: b.Y + b.Hitbox.OffsetY,
		W: b.Hitbox.W,
		H: b.Hitbox.H,
	}
}

// Feet returns the Y coordinate of the hitbox bottom edge.
func (b *Body) Feet() float64 { return b.Y + b.Hitbox.OffsetY + b.Hitbox.H }

// SetFeet positions the body so its hitbox bottom sits exactly at y.
func (b *Body) SetFeet(y float64) { b.Y = y - b.Hitbox.OffsetY - b.Hitbox.H }

// Head returns the Y coordinate of the hitbox top edge.
func (b *Body) Head() float64 { return b.Y + b.Hitbox.OffsetY }

// SetHead positions the body so its hitbox top sits exactly at y.
func (b *Body) SetHead(y float64) { b.Y = y - b.Hitbox.OffsetY }

// ApplyGravity accelerates a body downward over one fixed step. Falling
// uses base gravity times fallMultiplier for snappier arcs; rising uses
// base gravity. Downward speed is clamped to maxFallSpeed. Grounded or
// platform-riding bodies are left alone.
func ApplyGravity(b *Body, gravity, fallMultiplier, maxFallSpeed, dt float64) {
	if b.OnGround || b.OnPlatform {
		return
	}
	g := gravity
	if b.VelY > 0 {
		g *= fallMultiplier
	}
	b.VelY += g * dt
	if b.VelY > maxFallSpeed {
		b.VelY = maxFallSpeed
	}
}

// Integrate advances position by one explicit Euler step using the fixed
// dt. The variable render delta must never reach this function.
func Integrate(b *Body, dt float64) {
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
}

// MoveToward steps current toward target by rate*dt without overshooting.
func MoveToward(current, target, rate, dt float64) float64 {
	delta := rate * dt
	if current < target {
		current += delta
		if current > target {
			current = target
		}
		return current
	}
	if current > target {
		current -= delta
		if current < target {
			current = target
		}
	}
	return current
}

// Approach drives horizontal velocity toward target using asymmetric
// accelerate/decelerate rates: decel applies when the target is zero or
// opposes the current direction of travel.
func Approach(vel, target, accel, decel, dt float64) float64 {
	rate := accel
	if target == 0 || (vel != 0 && !sameSign(vel, target)) {
		rate = decel
	}
	return MoveToward(vel, target, rate, dt)
}

// Clamp constrains value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sameSign(a, b float64) bool {
	return (a >= 0) == (b >= 0)
}
