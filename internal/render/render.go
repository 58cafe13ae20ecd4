// Package render handles the visual presentation of the pyramid scene.
//
// It compiles the shader pair, uploads the pyramid mesh into GPU buffers
// once at startup, and issues the per-frame draw calls for the three
// translated instances.
package render

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/irfansharif/pyramid/internal/camera"
	"github.com/irfansharif/pyramid/internal/mesh"
	"github.com/irfansharif/pyramid/internal/palette"
)

const (
	// InstanceCount is the number of pyramid copies drawn per frame, laid
	// out along the X axis.
	InstanceCount = 3

	// The projection keeps the initial window aspect even after resizes;
	// only the viewport tracks the framebuffer.
	fovDegrees       = 45.0
	projectionAspect = 800.0 / 600.0
	nearPlane        = 0.1
	farPlane         = 100.0

	vertexStride = mesh.FloatsPerVertex * 4 // bytes per vertex
)

// Renderer owns the GPU-resident pyramid geometry and the shader program.
// Everything is created once at startup, bound-only during the loop, and
// destroyed once at exit.
type Renderer struct {
	vao, vbo, ebo uint32
	indexCount    int32

	shaderManager *ShaderManager
	stats         Stats
}

// Stats tracks rendering performance metrics.
type Stats struct {
	LastDrawTimeUs float64 // time spent in last Draw() call in microseconds
}

// NewRenderer compiles the shader pair and uploads the pyramid geometry.
func NewRenderer(vertexShaderPath, fragmentShaderPath string) *Renderer {
	r := &Renderer{
		shaderManager: NewShaderManager(vertexShaderPath, fragmentShaderPath),
	}
	r.uploadGeometry(mesh.Vertices(), mesh.Indices())
	return r
}

// uploadGeometry performs the one-time upload of the interleaved vertex
// array and index array. The geometry is immutable for the process
// lifetime; there is no update path.
func (r *Renderer) uploadGeometry(vertices []float32, indices []uint32) {
	r.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0)) // position
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(12)) // color
}

// InstanceOffset returns the world-space translation of pyramid instance i;
// the three instances sit at x = -2, 0, 2.
func InstanceOffset(i int) mgl32.Vec3 {
	return mgl32.Vec3{float32(i)*2 - 2, 0, 0}
}

// Projection returns the fixed perspective projection.
func Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), projectionAspect, nearPlane, farPlane)
}

// Draw renders one frame: clears the framebuffer and draws the pyramid
// instances with the view matrix taken from the camera.
func (r *Renderer) Draw(cam *camera.Camera) {
	startTime := time.Now()

	background := palette.Background()
	gl.ClearColor(background[0], background[1], background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.shaderManager.Use()
	r.shaderManager.SetView(cam.ViewMatrix())
	r.shaderManager.SetProjection(Projection())

	gl.BindVertexArray(r.vao)
	for i := 0; i < InstanceCount; i++ {
		offset := InstanceOffset(i)
		r.shaderManager.SetModel(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()))
		gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	}

	// Record draw time.
	r.stats.LastDrawTimeUs = float64(time.Since(startTime).Microseconds())
}

// Stats returns the current performance statistics.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Destroy releases all GPU resources owned by the renderer.
func (r *Renderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	r.shaderManager.Delete()
}
