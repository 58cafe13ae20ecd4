// Package camera implements the preset-view camera state. The camera
// always looks at the scene center from one of three fixed eye positions
// (front, top, side), selected through the number keys.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// View identifies one of the preset camera angles.
type View int

const (
	Front View = iota // looking down -Z from (0, 0, 10)
	Top               // looking down -Y from (0, 10, 0)
	Side              // looking down -X from (10, 0, 0)
)

func (v View) String() string {
	switch v {
	case Front:
		return "front"
	case Top:
		return "top"
	case Side:
		return "side"
	default:
		return "unknown"
	}
}

// sceneCenter is what the camera orients toward after every selection.
var sceneCenter = mgl32.Vec3{0, 0, 0}

// presets holds the eye position for each view.
var presets = [3]mgl32.Vec3{
	Front: {0, 0, 10},
	Top:   {0, 10, 0},
	Side:  {10, 0, 0},
}

// Camera holds the current view selection and the derived orientation
// vectors. Select is the only mutator and is idempotent, so re-applying a
// held key every polling tick is harmless.
type Camera struct {
	current View
	front   mgl32.Vec3
	up      mgl32.Vec3
}

// New returns a camera in the front view with the default orientation.
func New() *Camera {
	return &Camera{
		current: Front,
		front:   mgl32.Vec3{0, 0, -1},
		up:      mgl32.Vec3{0, 1, 0},
	}
}

// Select switches to the given preset view and re-aims the camera at the
// scene center. The top view additionally overrides the up vector to avoid
// a degenerate look-at when looking straight down; other views leave up at
// its last-set value. Note that switching away from the top view does not
// restore the default up vector; up stays wherever the last top selection
// left it.
func (c *Camera) Select(v View) {
	c.current = v
	c.front = sceneCenter.Sub(presets[v]).Normalize()
	if v == Top {
		c.up = mgl32.Vec3{0, 0, -1}
	}
}

// CurrentView returns the selected preset.
func (c *Camera) CurrentView() View {
	return c.current
}

// Position returns the eye position of the selected preset.
func (c *Camera) Position() mgl32.Vec3 {
	return presets[c.current]
}

// Front returns the normalized view direction.
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Up returns the current up vector.
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// ViewMatrix derives the world-to-camera transform from the current state.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := c.Position()
	return mgl32.LookAtV(eye, eye.Add(c.front), c.up)
}
