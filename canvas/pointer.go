package canvas

import "math"

const (
	// tapSlop is the horizontal travel, in pixels, under which a
	// press-release pair counts as a tap instead of a drag.
	tapSlop = 10.0

	inertiaDecay = 0.9
	inertiaStop  = 0.1
)

// Pointer tracks a single pointing device and the glide that continues
// after release. All positions are screen pixels.
type Pointer struct {
	current  Point
	previous Point
	tracked  bool

	pressStart Point
	pressed    bool

	velocity Vec2
}

// Pressed reports whether the pointer is currently held down.
func (p *Pointer) Pressed() bool { return p.pressed }

// Position returns the last seen pointer position. ok is false until
// the first move arrives.
func (p *Pointer) Position() (Point, bool) {
	return p.current, p.tracked
}

// Velocity returns the pending glide velocity.
func (p *Pointer) Velocity() Vec2 { return p.velocity }

// Press starts a gesture at (x, y) and cancels any glide in progress.
func (p *Pointer) Press(x, y float64) {
	p.velocity = Vec2{}
	p.pressStart = Point{X: x, Y: y}
	p.pressed = true
}

// Move records a new position. While pressed, the returned delta is
// the previous position minus the new one and the caller pans by it,
// so the canvas follows the finger 1:1. The very first move only
// initializes tracking; hover moves return ok false.
func (p *Pointer) Move(x, y float64) (Vec2, bool) {
	pt := Point{X: x, Y: y}
	if !p.tracked {
		p.previous = pt
		p.current = pt
		p.tracked = true
		return Vec2{}, false
	}
	p.previous = p.current
	p.current = pt
	if !p.pressed {
		return Vec2{}, false
	}
	p.velocity = Vec2{X: p.previous.X - p.current.X, Y: p.previous.Y - p.current.Y}
	return p.velocity, true
}

// Release ends the gesture. A release whose horizontal travel from the
// press origin stayed under the tap slop keeps the view still;
// anything longer lets the last drag velocity glide.
func (p *Pointer) Release(x, y float64) {
	p.pressed = false
	if math.Abs(x-p.pressStart.X) < tapSlop {
		p.velocity = Vec2{}
	}
}

// IsTap reports whether (x, y) sits within the tap slop of the press
// origin. The comparison is inclusive, one pixel looser than the one
// Release uses.
func (p *Pointer) IsTap(x, y float64) bool {
	return math.Abs(x-p.pressStart.X) <= tapSlop
}

// Step advances the glide by one frame. It reports the pan to apply,
// before decay, and is a no-op while the pointer is held down. Once
// both components drop under the stop cutoff the velocity snaps to
// exactly zero so the camera never creeps.
func (p *Pointer) Step() (Vec2, bool) {
	if p.pressed {
		return Vec2{}, false
	}
	if math.Abs(p.velocity.X) < inertiaStop && math.Abs(p.velocity.Y) < inertiaStop {
		p.velocity = Vec2{}
		return Vec2{}, false
	}
	v := p.velocity
	p.velocity.X *= inertiaDecay
	p.velocity.Y *= inertiaDecay
	return v, true
}
