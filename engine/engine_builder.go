package engine

import (
	"time"

	"github.com/Carmen-Shannon/lumen-go/engine/render"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// The tick callback will be called at this rate for game logic updates.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithScene sets the scene the pipeline draws from.
//
// Parameters:
//   - s: the scene collaborator
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		e.sceneContext.Scene = s
	}
}

// WithBackend sets the draw submission backend.
//
// Parameters:
//   - b: the backend collaborator
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithBackend(b render.Backend) EngineBuilderOption {
	return func(e *engine) {
		e.renderContext.Backend = b
	}
}

// WithTask registers a task during engine construction. Tasks run in
// registration order each frame.
//
// Parameters:
//   - t: the task to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTask(t *task.Task[render.Context]) EngineBuilderOption {
	return func(e *engine) {
		if t != nil {
			e.tasks = append(e.tasks, t)
		}
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
