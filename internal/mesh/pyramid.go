// Package mesh defines the pyramid geometry rendered by the viewer: five
// vertices (an apex over a square base) and the triangle indices covering
// the four side faces and the base.
package mesh

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rclancey/earcut"

	"github.com/irfansharif/pyramid/internal/palette"
)

const (
	// VertexCount is the number of distinct mesh vertices.
	VertexCount = 5

	// FloatsPerVertex is the interleaved attribute width: position (3)
	// followed by color (3).
	FloatsPerVertex = 6
)

// Vertex 0 is the apex; vertices 1..4 wind around the square base.
var positions = [VertexCount]mgl32.Vec3{
	{0.0, 0.5, 0.0},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, -0.5, -0.5},
	{-0.5, -0.5, -0.5},
}

// Positions returns the five pyramid corners in model space.
func Positions() [VertexCount]mgl32.Vec3 {
	return positions
}

// Vertices returns the interleaved vertex attributes uploaded to the GPU,
// position followed by color per vertex.
func Vertices() []float32 {
	colors := palette.VertexColors()
	vertices := make([]float32, 0, VertexCount*FloatsPerVertex)
	for i, p := range positions {
		vertices = append(vertices, p.X(), p.Y(), p.Z())
		vertices = append(vertices, colors[i][0], colors[i][1], colors[i][2])
	}
	return vertices
}

// Indices returns the 18 triangle indices describing the pyramid: the four
// side faces as a fan around the apex, then the base quad triangulated by
// ear clipping.
func Indices() []uint32 {
	indices := []uint32{
		0, 1, 2, // front face
		0, 2, 3, // right face
		0, 3, 4, // back face
		0, 4, 1, // left face
	}
	return append(indices, baseIndices()...)
}

// baseIndices triangulates the square base (corners 1..4) in the XZ plane.
func baseIndices() []uint32 {
	// Flat coordinate array as required by earcut: [x0, z0, x1, z1, ...].
	ring := make([]float64, 0, (VertexCount-1)*2)
	for _, p := range positions[1:] {
		ring = append(ring, float64(p.X()), float64(p.Z()))
	}

	triangleIndices, err := earcut.Earcut(ring, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		log.Fatalf("Triangulation failed for pyramid base: %v", err)
	}
	if len(triangleIndices)%3 != 0 {
		log.Fatalf("Invalid triangle count (indices: %d, not divisible by 3)", len(triangleIndices))
	}

	indices := make([]uint32, len(triangleIndices))
	for i, idx := range triangleIndices {
		indices[i] = uint32(idx) + 1 // ring index 0 is mesh vertex 1
	}
	return indices
}
