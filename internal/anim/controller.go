// Package anim holds the bounce physics and frame cycling for the
// screensaver sprite. It does no rendering and no I/O.
package anim

import "screensaver/internal/mathutil"

// DefaultSpeed is the per-axis velocity magnitude in pixels per tick.
const DefaultSpeed = 3

// Controller owns the sprite position, velocity and current animation frame.
type Controller struct {
	frameCount   int
	currentFrame int

	x, y   int // top-left render coordinate, negative while off-screen
	vx, vy int // pixels per tick, sign is direction

	width, height int // sprite size, fixed for the life of the controller
}

// State is a value snapshot of a Controller.
type State struct {
	Frame  int
	X, Y   int
	VX, VY int
}

// New creates a controller with the sprite parked fully off-screen above
// and left of the window so the first ticks move it into view.
func New(frameCount, spriteWidth, spriteHeight int) *Controller {
	if frameCount < 1 {
		frameCount = 1
	}
	c := &Controller{
		frameCount: frameCount,
		width:      spriteWidth,
		height:     spriteHeight,
	}
	c.Reset()
	return c
}

// Reset restores the starting position, first frame and default velocity.
func (c *Controller) Reset() {
	c.currentFrame = 0
	c.x = -c.width
	c.y = -c.height
	c.vx = DefaultSpeed
	c.vy = DefaultSpeed
}

// Tick advances one simulation step inside a window of the given size.
func (c *Controller) Tick(windowWidth, windowHeight int) {
	maxX := windowWidth - c.width
	maxY := windowHeight - c.height

	x, vx := mathutil.ReflectAxis(c.x, c.vx, maxX)
	y, vy := mathutil.ReflectAxis(c.y, c.vy, maxY)

	c.x = mathutil.ClampMax(x, maxX)
	c.y = mathutil.ClampMax(y, maxY)
	c.vx, c.vy = vx, vy

	c.currentFrame = mathutil.WrapIndex(c.currentFrame, c.frameCount)
}

// Frame returns the zero-based index of the frame to draw.
func (c *Controller) Frame() int { return c.currentFrame }

// FrameCount returns the number of frames in one animation cycle.
func (c *Controller) FrameCount() int { return c.frameCount }

// Position returns the top-left render coordinate.
func (c *Controller) Position() (x, y int) { return c.x, c.y }

// Velocity returns the signed per-tick velocity.
func (c *Controller) Velocity() (vx, vy int) { return c.vx, c.vy }

// Size returns the sprite size the controller was built with.
func (c *Controller) Size() (width, height int) { return c.width, c.height }

// State returns a snapshot of the mutable state.
func (c *Controller) State() State {
	return State{Frame: c.currentFrame, X: c.x, Y: c.y, VX: c.vx, VY: c.vy}
}
