// package render assembles the standard draw pipeline: the frame contexts,
// the material bucket map, the fetch/cull/sort/draw stages, and the
// DrawSceneTask that chains them through shared Varying slots. The engine
// never owns the scene or the GPU backend; both are collaborators handed in
// through the contexts each frame.
package render

import (
	"log"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
)

// SceneContext carries the externally owned scene collaborator into every
// job of a frame.
type SceneContext struct {
	// Scene is the current item set the pipeline draws from.
	Scene scene.Scene
}

// CameraState is the per-frame viewpoint: the eye position used for depth
// ordering and the combined view-projection matrix (column-major) the
// culling frustum is extracted from. A zero matrix disables frustum
// culling for the frame.
type CameraState struct {
	Eye            [3]float32
	ViewProjection [16]float32
}

// StageError records a failure a stage reported to the render context. The
// pipeline never intercepts or retries these; they are surfaced for the
// frame's owner to inspect.
type StageError struct {
	// Stage is the name of the reporting stage.
	Stage string
	// Err is the reported failure.
	Err error
}

// RenderContext is the externally owned per-frame rendering state: the
// viewpoint, the draw submission backend, and the frame's observability
// counters. PrepareFrame must be called once at the top of each frame
// before any task runs against the context.
type RenderContext struct {
	// Camera is the frame's viewpoint.
	Camera CameraState
	// Backend receives the draw submissions of the terminal stages. May be
	// nil, in which case draw stages skip submission but still classify.
	Backend Backend

	// ItemsFetched is the number of candidates the fetch stage produced.
	ItemsFetched int
	// ItemsCulled is the number of candidates rejected by visibility.
	ItemsCulled int
	// ItemsDrawn is the number of submissions issued this frame.
	ItemsDrawn int
	// ItemsDropped is the number of items excluded from classification
	// because no bucket filter matched their key.
	ItemsDropped int

	frustum    common.Frustum
	hasFrustum bool
	errors     []StageError
}

// PrepareFrame resets the frame counters and error list and extracts the
// culling frustum from the camera's view-projection matrix. A zero matrix
// leaves frustum culling disabled so every bound passes the visibility
// test.
func (rc *RenderContext) PrepareFrame() {
	rc.ItemsFetched = 0
	rc.ItemsCulled = 0
	rc.ItemsDrawn = 0
	rc.ItemsDropped = 0
	rc.errors = rc.errors[:0]

	if rc.Camera.ViewProjection == ([16]float32{}) {
		rc.hasFrustum = false
		return
	}
	rc.frustum = common.ExtractFrustumFromMatrix(rc.Camera.ViewProjection[:])
	rc.hasFrustum = true
}

// CullTest is the visibility predicate the cull stage applies to every
// candidate bound.
//
// Parameters:
//   - b: the bound to test
//
// Returns:
//   - bool: true if the bound is potentially visible this frame
func (rc *RenderContext) CullTest(b common.Bound) bool {
	if !rc.hasFrustum {
		return true
	}
	return rc.frustum.ContainsBound(b)
}

// ReportError records a stage-internal failure on the frame. The failure is
// logged and kept for inspection; the pipeline continues with the next
// item or stage.
//
// Parameters:
//   - stage: the reporting stage's name
//   - err: the failure
func (rc *RenderContext) ReportError(stage string, err error) {
	rc.errors = append(rc.errors, StageError{Stage: stage, Err: err})
	log.Printf("[render] stage %s: %v", stage, err)
}

// Errors returns a copy of the failures reported since PrepareFrame.
//
// Returns:
//   - []StageError: the frame's stage errors
func (rc *RenderContext) Errors() []StageError {
	out := make([]StageError, len(rc.errors))
	copy(out, rc.errors)
	return out
}

// Context bundles the two externally owned frame contexts handed to every
// job. The engine passes the same Context value through the whole chain;
// the pointers inside it are shared, never copied per stage.
type Context struct {
	Scene  *SceneContext
	Render *RenderContext
}
