package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/pyramid/internal/app"
	"github.com/irfansharif/pyramid/internal/camera"
)

// EventHandlers manages all input handling for the application.
//
// The camera keys are polled every frame rather than edge-triggered: a key
// held down re-applies its view selection each tick, which is idempotent.
type EventHandlers struct {
	application *app.App
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(application *app.App) *EventHandlers {
	return &EventHandlers{application: application}
}

// Poll processes input for one frame: ESC requests window close, and the
// 1/2/3 keys select the front/top/side camera views.
func (eh *EventHandlers) Poll() {
	window := eh.application.Window

	if window.GetKey(glfw.KeyEscape) == glfw.Press {
		window.SetShouldClose(true)
	}
	if window.GetKey(glfw.Key1) == glfw.Press {
		eh.application.Camera.Select(camera.Front)
	}
	if window.GetKey(glfw.Key2) == glfw.Press {
		eh.application.Camera.Select(camera.Top)
	}
	if window.GetKey(glfw.Key3) == glfw.Press {
		eh.application.Camera.Select(camera.Side)
	}
}
