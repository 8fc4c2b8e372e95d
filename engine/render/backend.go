package render

import (
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
)

// Backend is the draw submission sink the terminal stages invoke. The
// pipeline core treats it as an opaque collaborator: it begins a frame,
// receives item submissions in bucket order, resets device state between
// passes, and ends the frame. Submission errors (missing GPU resources and
// the like) are returned to the calling stage, which reports them to the
// RenderContext; the core never retries.
type Backend interface {
	// BeginFrame opens a frame on the device.
	//
	// Returns:
	//   - error: an error if the frame could not be opened
	BeginFrame() error

	// Draw submits one item.
	//
	// Parameters:
	//   - rctx: the frame's render context
	//   - it: the item to draw
	//
	// Returns:
	//   - error: an error if the submission failed
	Draw(rctx *RenderContext, it scene.Item) error

	// ResetState returns the device to a clean state between passes.
	ResetState()

	// EndFrame closes and submits the frame.
	EndFrame()
}

// RecordingBackend is a Backend that records submissions instead of
// touching a device. Used by tests and as a debugging sink: the recorded
// order is exactly the draw-call batching order the pipeline produced.
// Not safe for use by two tasks concurrently.
type RecordingBackend struct {
	// Submissions holds the IDs of drawn items in submission order.
	Submissions []scene.ItemID
	// Frames counts BeginFrame calls.
	Frames int
	// Resets counts ResetState calls.
	Resets int
}

var _ Backend = &RecordingBackend{}

// BeginFrame records the start of a frame.
func (r *RecordingBackend) BeginFrame() error {
	r.Frames++
	return nil
}

// Draw records one item submission.
func (r *RecordingBackend) Draw(_ *RenderContext, it scene.Item) error {
	r.Submissions = append(r.Submissions, it.ID())
	return nil
}

// ResetState records a state reset.
func (r *RecordingBackend) ResetState() {
	r.Resets++
}

// EndFrame is a no-op for the recorder.
func (r *RecordingBackend) EndFrame() {}

// Clear drops everything recorded so far.
func (r *RecordingBackend) Clear() {
	r.Submissions = r.Submissions[:0]
	r.Frames = 0
	r.Resets = 0
}
