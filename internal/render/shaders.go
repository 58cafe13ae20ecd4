package render

import (
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderManager handles OpenGL shader program compilation, linking, and
// uniform management.
type ShaderManager struct {
	program     uint32 // program ID
	uModel      int32  // uniform location for the per-instance model matrix
	uView       int32  // uniform location for the view matrix
	uProjection int32  // uniform location for the projection matrix
}

// LoadSource reads shader source text from the given path. A missing or
// unreadable file logs a diagnostic and yields an empty string; compiling
// the empty source then fails with its own diagnostic downstream.
func LoadSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Could not read shader file %s: %v", path, err)
		return ""
	}
	return string(data)
}

// NewShaderManager loads, compiles, and links the vertex/fragment pair into
// a program, then resolves the matrix uniform locations. A failed stage
// compile is logged and leaves a zero stage handle attached; link status is
// not checked separately.
func NewShaderManager(vertexPath, fragmentPath string) *ShaderManager {
	sm := &ShaderManager{}

	vertexShader := compileShader(LoadSource(vertexPath), gl.VERTEX_SHADER)
	defer gl.DeleteShader(vertexShader)

	fragmentShader := compileShader(LoadSource(fragmentPath), gl.FRAGMENT_SHADER)
	defer gl.DeleteShader(fragmentShader)

	sm.program = gl.CreateProgram()
	gl.AttachShader(sm.program, vertexShader)
	gl.AttachShader(sm.program, fragmentShader)
	gl.LinkProgram(sm.program)
	gl.ValidateProgram(sm.program)

	sm.uModel = gl.GetUniformLocation(sm.program, gl.Str("model\x00"))
	sm.uView = gl.GetUniformLocation(sm.program, gl.Str("view\x00"))
	sm.uProjection = gl.GetUniformLocation(sm.program, gl.Str("projection\x00"))
	return sm
}

// Use binds the shader program.
func (sm *ShaderManager) Use() {
	gl.UseProgram(sm.program)
}

// SetModel sets the model matrix uniform.
func (sm *ShaderManager) SetModel(m mgl32.Mat4) {
	gl.UniformMatrix4fv(sm.uModel, 1, false, &m[0])
}

// SetView sets the view matrix uniform.
func (sm *ShaderManager) SetView(m mgl32.Mat4) {
	gl.UniformMatrix4fv(sm.uView, 1, false, &m[0])
}

// SetProjection sets the projection matrix uniform.
func (sm *ShaderManager) SetProjection(m mgl32.Mat4) {
	gl.UniformMatrix4fv(sm.uProjection, 1, false, &m[0])
}

// Delete releases the program object.
func (sm *ShaderManager) Delete() {
	gl.DeleteProgram(sm.program)
}

// compileShader compiles a single shader stage from source. On failure it
// logs the driver diagnostic together with the stage name, deletes the
// shader object, and returns 0.
func compileShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	// Check compilation status.
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		log.Printf("Failed to compile %s shader: %s", stageName(shaderType), logText)
		gl.DeleteShader(shader)
		return 0
	}

	return shader
}

// stageName reports the human-readable name of a shader stage enum, used
// in compile diagnostics.
func stageName(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}
