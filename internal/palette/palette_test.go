package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-6

func TestBackground(t *testing.T) {
	background := Background()
	assert.InDelta(t, 0.2, background[0], tol)
	assert.InDelta(t, 0.3, background[1], tol)
	assert.InDelta(t, 0.3, background[2], tol)
}

func TestVertexColors(t *testing.T) {
	want := [5]Color{
		{1, 0, 0}, // red
		{0, 1, 0}, // green
		{0, 0, 1}, // blue
		{1, 1, 0}, // yellow
		{1, 0, 1}, // magenta
	}

	colors := VertexColors()
	for i := range want {
		for ch := 0; ch < 3; ch++ {
			assert.InDelta(t, want[i][ch], colors[i][ch], tol, "color %d channel %d", i, ch)
		}
	}
}
