package engine

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"hellocube/internal/logger"
	"hellocube/pkg/config"
)

// Engine aggregates the whole application state: the window, the viewport
// size, frame timing, the key table, the active shader program and the cube.
// A single instance is created in main and owns every resource exclusively.
type Engine struct {
	cfg *config.Config
	log *logger.Logger

	window *glfw.Window
	width  int
	height int

	input   *Dispatcher
	program *Program
	cube    *Cube
	stats   *FrameStats
	diag    *GLDiag

	projection mgl32.Mat4
	view       mgl32.Mat4

	initialized bool
}

// New creates the window and GL context and uploads the static resources.
// On error the returned engine is partially initialized but always safe to
// Destroy.
func New(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	e := &Engine{
		cfg:    cfg,
		log:    log,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	e.input = NewDispatcher(log)

	log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return e, fmt.Errorf("failed to initialize GLFW: %v", err)
	}
	e.initialized = true

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	log.Info("creating window and OpenGL context")
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return e, fmt.Errorf("failed to create GLFW window: %v", err)
	}
	e.window = window

	// The callbacks close over this engine instance; no window user-pointer
	// indirection is involved.
	window.SetFramebufferSizeCallback(e.onResize)
	window.SetKeyCallback(e.onKey)

	window.MakeContextCurrent()

	// Ask the driver to synchronize buffer swaps to the display refresh.
	// Depending on driver and user settings this may have no effect.
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return e, fmt.Errorf("failed to initialize OpenGL function pointers: %v", err)
	}

	log.Infof("OpenGL: %s %s %s",
		gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION)))
	log.Infof("OpenGL Shading language: %s",
		gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	// Global state that never changes during the run.
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.3, 0.3, 0.3, 1.0)

	e.diag = NewGLDiag(cfg.Diagnostics.GLChecks, log)
	e.cube = NewCube(log)
	e.diag.Check("cube initialization")

	e.bindKeys()

	e.stats = NewFrameStats(glfw.GetTime())
	return e, nil
}

// bindKeys wires the digit keys to shader reloads from the config table and
// escape to a close request.
func (e *Engine) bindKeys() {
	for digit := 0; digit <= 9; digit++ {
		pair, ok := e.cfg.Binding(digit)
		if !ok {
			continue
		}
		e.input.Bind(KeyForDigit(digit), func() {
			if err := e.LoadShaders(pair.Vertex, pair.Fragment); err != nil {
				e.log.Warnf("shader reload failed: %v", err)
			}
		})
	}
	e.input.Bind(KeyEscape, func() {
		e.window.SetShouldClose(true)
	})
}

// LoadShaders replaces the active program with one built from the given
// source files. The source files are read before the old program is
// destroyed, so a file failure keeps the current program. After that point
// exactly zero or one program is live: a compile or link failure leaves the
// engine with no program, never a stale one.
func (e *Engine) LoadShaders(vsPath, fsPath string) error {
	e.log.Infof("loading shader files %q and %q", vsPath, fsPath)
	vsrc, fsrc, err := readShaderPair(vsPath, fsPath)
	if err != nil {
		return err
	}

	if e.program != nil {
		e.log.Debugf("deleting program %d", e.program.Handle())
		e.program.Delete()
		e.program = nil
	}

	p, err := NewProgram(vsrc, fsrc)
	if err != nil {
		return err
	}
	e.program = p

	e.log.Infof("program %d: location for \"projection\" uniform: %d", p.Handle(), p.locProjection)
	e.log.Infof("program %d: location for \"modelView\" uniform: %d", p.Handle(), p.locModelView)
	e.log.Infof("program %d: location for \"time\" uniform: %d", p.Handle(), p.locTime)
	e.log.Infof("program %d: location for \"cameraPosition\" uniform: %d", p.Handle(), p.locCameraPos)
	return nil
}

// onResize is registered as the framebuffer size callback. The new size is
// only stored; the next frame picks it up for viewport and projection.
func (e *Engine) onResize(_ *glfw.Window, width, height int) {
	e.log.Infof("new framebuffer size: %dx%d pixels", width, height)
	e.width = width
	e.height = height
}

// onKey is registered as the key callback and forwards into the dispatcher.
// Repeat events count as pressed; the dispatcher's held table turns them
// into a single edge.
func (e *Engine) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	e.input.Handle(KeyCode(key), action != glfw.Release)
}

// projectionFor builds the projection matrix for the current framebuffer
// size: 90 degree field of view, near 0.1, far 10. A zero height is clamped
// so a degenerate resize cannot divide by zero.
func projectionFor(width, height int) mgl32.Mat4 {
	if height < 1 {
		height = 1
	}
	return mgl32.Perspective(math.Pi/2, float32(width)/float32(height), 0.1, 10.0)
}

// drawFrame renders the next frame
func (e *Engine) drawFrame() {
	// Recomputed every frame although they rarely change; both are cheap
	// derived values, not persisted state.
	e.projection = projectionFor(e.width, e.height)
	e.view = mgl32.Translate3D(0.0, 0.0, -4.0)

	e.cube.Advance(e.stats.Delta())
	modelView := e.view.Mul4(e.cube.Model())

	gl.Viewport(0, 0, int32(e.width), int32(e.height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// With no active program the draw still runs; the result is visually
	// undefined but not an error.
	if e.program != nil {
		e.program.Use()
		e.program.SetUniforms(e.projection, modelView, float32(e.stats.Current()))
	} else {
		gl.UseProgram(0)
	}

	e.cube.Draw()
	gl.UseProgram(0)

	e.window.SwapBuffers()
	e.diag.Check("display function")
}

// Run drives the main loop until the window-close flag is set. All input
// callbacks run synchronously inside the event poll at the end of each
// iteration.
func (e *Engine) Run() {
	e.log.Info("entering main loop")

	for !e.window.ShouldClose() {
		if e.stats.Tick(glfw.GetTime()) {
			e.window.SetTitle(e.stats.TitleLine(e.cfg.Window.Title))
			e.log.Infof("frame time: %4.2fms/frame (%.1ffps)", e.stats.AvgFrameTime(), e.stats.AvgFPS())
		}

		e.drawFrame()
		glfw.PollEvents()
	}

	frames, elapsed, avgFPS := e.stats.Summary()
	e.log.Infof("left main loop: %d frames rendered in %.1fs == %.1ffps", frames, elapsed, avgFPS)
}

// Destroy releases everything the engine still holds. It is idempotent: the
// second and later calls are no-ops, and it is safe after a failed New.
func (e *Engine) Destroy() {
	if !e.initialized {
		return
	}

	if e.cube != nil {
		e.cube.Destroy()
		e.cube = nil
	}
	if e.program != nil {
		e.program.Delete()
		e.program = nil
	}
	if e.window != nil {
		e.window.Destroy()
		e.window = nil
	}
	glfw.Terminate()
	e.initialized = false
}
