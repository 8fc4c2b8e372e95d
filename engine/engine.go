package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/lumen-go/engine/profiler"
	"github.com/Carmen-Shannon/lumen-go/engine/render"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

// engine implements the Engine interface.
// Coordinates the logic tick loop and the render frame loop.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	sceneContext  *render.SceneContext
	renderContext *render.RenderContext
	tasks         []*task.Task[render.Context]

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point. It owns the frame loop: each render
// frame it prepares the render context, opens a frame on the backend, runs
// every registered task against the shared contexts, and closes the frame.
// Game logic runs on a separate fixed-rate tick loop.
type Engine interface {
	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	// The tick callback will be called at this rate for game logic updates.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	// Use this for game logic, animation, and scene mutation.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called after the tasks of
	// each render frame. Use this for per-frame camera updates and counter
	// inspection.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetScene replaces the scene the pipeline draws from.
	//
	// Parameters:
	//   - s: the scene collaborator
	SetScene(s scene.Scene)

	// SetBackend replaces the draw submission backend.
	//
	// Parameters:
	//   - b: the backend collaborator
	SetBackend(b render.Backend)

	// SetCamera replaces the frame viewpoint. Takes effect at the next
	// frame's PrepareFrame.
	//
	// Parameters:
	//   - cam: the camera state
	SetCamera(cam render.CameraState)

	// AddTask appends a task to the per-frame execution list. Tasks run in
	// registration order, each to completion.
	//
	// Parameters:
	//   - t: the task to register
	AddTask(t *task.Task[render.Context])

	// SceneContext returns the shared scene context.
	//
	// Returns:
	//   - *render.SceneContext: the scene context
	SceneContext() *render.SceneContext

	// RenderContext returns the shared render context, for counter and
	// error inspection after a frame.
	//
	// Returns:
	//   - *render.RenderContext: the render context
	RenderContext() *render.RenderContext

	// RunFrame executes a single render frame synchronously: PrepareFrame,
	// BeginFrame, every task in order, EndFrame. Useful for headless and
	// test harnesses that drive frames themselves instead of calling Run.
	RunFrame()

	// Run starts the tick and render loops (blocks until Quit).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, scene, backend, tasks)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
		sceneContext:     &render.SceneContext{},
		renderContext:    &render.RenderContext{},
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the engine, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own
// goroutine. Each iteration executes the full frame lifecycle through
// RunFrame. Recovers from panics to avoid crashing the process and signals
// quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	// Recover from panics inside the render goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			e.RunFrame()

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

func (e *engine) RunFrame() {
	if e.sceneContext.Scene == nil {
		return
	}

	rctx := e.renderContext
	rctx.PrepareFrame()

	backend := rctx.Backend
	if backend != nil {
		if err := backend.BeginFrame(); err != nil {
			rctx.ReportError("Engine", err)
			backend = nil
		}
	}

	ctx := render.Context{Scene: e.sceneContext, Render: rctx}
	for _, t := range e.tasks {
		t.Run(ctx)
	}

	if backend != nil {
		backend.EndFrame()
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(profiler.FrameStats{
			Fetched: rctx.ItemsFetched,
			Culled:  rctx.ItemsCulled,
			Drawn:   rctx.ItemsDrawn,
			Dropped: rctx.ItemsDropped,
		})
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Send to channel for immediate update in running engine loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

func (e *engine) SetScene(s scene.Scene) {
	e.sceneContext.Scene = s
}

func (e *engine) SetBackend(b render.Backend) {
	e.renderContext.Backend = b
}

func (e *engine) SetCamera(cam render.CameraState) {
	e.renderContext.Camera = cam
}

func (e *engine) AddTask(t *task.Task[render.Context]) {
	if t == nil {
		panic("engine: AddTask requires a non-nil task")
	}
	e.tasks = append(e.tasks, t)
}

func (e *engine) SceneContext() *render.SceneContext {
	return e.sceneContext
}

func (e *engine) RenderContext() *render.RenderContext {
	return e.renderContext
}
