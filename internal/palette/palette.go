// Package palette defines the fixed colors of the pyramid scene: one color
// per mesh vertex plus the background clear color, all specified in HSV.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple in the 0..1 range, the format vertex attributes
// and the clear color expect.
type Color [3]float32

func hsv(h, s, v float64) Color {
	c := colorful.Hsv(h, s, v)
	return Color{float32(c.R), float32(c.G), float32(c.B)}
}

// VertexColors returns one color per pyramid vertex: a red apex, then
// green, blue, yellow, and magenta around the base.
func VertexColors() [5]Color {
	return [5]Color{
		hsv(0, 1, 1),   // red
		hsv(120, 1, 1), // green
		hsv(240, 1, 1), // blue
		hsv(60, 1, 1),  // yellow
		hsv(300, 1, 1), // magenta
	}
}

// Background returns the clear color, a dark teal.
func Background() Color {
	return hsv(180, 1.0/3.0, 0.3)
}
