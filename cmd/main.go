package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/pyramid/internal/app"
	"github.com/irfansharif/pyramid/internal/camera"
	"github.com/irfansharif/pyramid/internal/render"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "OpenGL Pyramid"
)

const logFlags = log.Ltime | log.Lshortfile

var (
	vertexShaderPath   = flag.String("vertex-shader", "vertex_shader.glsl", "path to the vertex shader source")
	fragmentShaderPath = flag.String("fragment-shader", "fragment_shader.glsl", "path to the fragment shader source")
)

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("PYRAMID_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func main() {
	flag.Parse()

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		log.Printf("Failed to create window: %v", err)
		glfw.Terminate()
		os.Exit(-1)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Printf("Failed to initialize OpenGL: %v", err)
		os.Exit(-1)
	}

	application := app.NewApp(
		window,
		render.NewRenderer(*vertexShaderPath, *fragmentShaderPath),
		camera.New(),
	)

	// Initialize event handlers.
	eventHandlers := NewEventHandlers(application)

	frameCount, frameTimeSum := 0, 0.0
	lastFPSUpdate := time.Now()

	// Main loop.
	for !application.Window.ShouldClose() {
		frameStart := time.Now()

		eventHandlers.Poll()
		application.RenderFrame()
		application.Window.SwapBuffers()
		glfw.PollEvents()

		frameTime := time.Since(frameStart).Seconds() * 1000.0 // ms
		frameTimeSum += frameTime

		frameCount++
		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			avgFrameTime := frameTimeSum / float64(frameCount)
			frameCount, frameTimeSum = 0, 0.0
			lastFPSUpdate = now

			renderStats := application.Renderer.Stats()
			runtimeLogger.Printf("%.1f FPS, %.2f ms/frame, %.2f µs/draw, %s view",
				fps, avgFrameTime, renderStats.LastDrawTimeUs, application.Camera.CurrentView())
		}
	}

	application.Renderer.Destroy()
}
