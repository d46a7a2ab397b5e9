// Package app wires the window, renderer, camera and scene into the
// main loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/candlelight/internal/config"
	"github.com/Faultbox/candlelight/internal/engine/camera"
	"github.com/Faultbox/candlelight/internal/engine/input"
	"github.com/Faultbox/candlelight/internal/engine/mesh"
	"github.com/Faultbox/candlelight/internal/engine/render"
	"github.com/Faultbox/candlelight/internal/engine/shader"
	"github.com/Faultbox/candlelight/internal/engine/texture"
	"github.com/Faultbox/candlelight/internal/engine/window"
	"github.com/Faultbox/candlelight/internal/logger"
	"github.com/Faultbox/candlelight/internal/scene"
	"github.com/Faultbox/candlelight/internal/scene/shaders"
)

// App is the running application.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	input    *input.Input
	program  *shader.Program
	meshes   *mesh.Library
	textures *texture.Registry

	backend    render.Backend
	controller *camera.Controller
	scene      *scene.Scene
}

// New creates the window, the GL resources and the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		input: input.New(),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Candlelight",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL function pointers need the context the window just created
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	width, height := a.window.Size()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	a.program, err = shader.Compile(shaders.ObjectVertex, shaders.ObjectFragment)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to compile shaders: %w", err)
	}
	a.program.Use()

	a.meshes, err = mesh.NewLibrary()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build meshes: %w", err)
	}

	a.textures = texture.NewRegistry()
	a.backend = render.NewGLBackend(a.program, a.meshes)

	a.scene = scene.New(a.backend, a.textures)
	a.scene.LoadTextures(cfg.Scene.TexturesDir)
	a.scene.PrepareScene()

	a.controller = camera.NewController(a.window.Aspect())
	a.controller.Camera.Zoom = cfg.Camera.FOV
	a.controller.Camera.MovementSpeed = cfg.Camera.MovementSpeed
	a.controller.Camera.Sensitivity = cfg.Camera.Sensitivity

	logger.Info("application initialized")
	return a, nil
}

// Run drives the main loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.handleMovement(dt)

		a.controller.Apply(a.backend)
		a.scene.Render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			gl.Viewport(0, 0, int32(event.Width), int32(event.Height))
			if event.Height > 0 {
				a.controller.SetAspect(float32(event.Width) / float32(event.Height))
			}

		case input.EventMouseMove:
			a.controller.HandleMouseDelta(event.MouseX, event.MouseY)

		case input.EventMouseWheel:
			a.controller.HandleScroll(event.MouseY)
		}
	}

	if a.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		a.running = false
	}
	if a.input.IsKeyPressed(sdl.SCANCODE_P) {
		a.setMode(camera.ModePerspective)
	}
	if a.input.IsKeyPressed(sdl.SCANCODE_O) {
		a.setMode(camera.ModeOrthographic)
	}
}

func (a *App) setMode(mode camera.Mode) {
	a.controller.SetMode(mode)
	a.window.SetTitle("Candlelight - " + mode.String())
	logger.Debug("projection switched", zap.Stringer("mode", mode))
}

func (a *App) handleMovement(dt float32) {
	held := []struct {
		key sdl.Scancode
		dir camera.Movement
	}{
		{sdl.SCANCODE_W, camera.MoveForward},
		{sdl.SCANCODE_S, camera.MoveBackward},
		{sdl.SCANCODE_A, camera.MoveLeft},
		{sdl.SCANCODE_D, camera.MoveRight},
		{sdl.SCANCODE_Q, camera.MoveUp},
		{sdl.SCANCODE_E, camera.MoveDown},
	}
	for _, h := range held {
		if a.input.IsKeyHeld(h.key) {
			a.controller.Move(h.dir, dt)
		}
	}
}

// Close releases GL resources and the window.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.textures != nil {
		a.textures.DestroyAll()
	}
	if a.meshes != nil {
		a.meshes.Destroy()
	}
	if a.program != nil {
		a.program.Delete()
	}
	if a.window != nil {
		a.window.Close()
	}
}
