package app

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/pyramid/internal/camera"
	"github.com/irfansharif/pyramid/internal/render"
)

// App encapsulates the main application state: the window, the renderer,
// and the camera the render loop reads from.
type App struct {
	Window   *glfw.Window
	Renderer *render.Renderer
	Camera   *camera.Camera
}

// NewApp creates a new application instance.
func NewApp(window *glfw.Window, renderer *render.Renderer, cam *camera.Camera) *App {
	return &App{
		Window:   window,
		Renderer: renderer,
		Camera:   cam,
	}
}

// RenderFrame sets the viewport to the current framebuffer size and draws
// one frame. Only the viewport follows resizes; the projection keeps its
// fixed aspect.
func (app *App) RenderFrame() {
	w, h := app.Window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	app.Renderer.Draw(app.Camera)
}
