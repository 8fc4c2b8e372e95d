package engine

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/Carmen-Shannon/lumen-go/engine/render"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T) scene.Scene {
	t.Helper()
	s := scene.NewScene("engine-test")
	for i := 0; i < 4; i++ {
		s.Add(scene.NewItem(
			scene.WithKind(scene.KindShape),
			scene.WithMaterial(material.NewMaterial(material.WithAlbedoColor([3]float32{1, 1, 1}))),
			scene.WithBound(common.Bound{Center: [3]float32{float32(i + 1), 0, 0}, Radius: 0.5}),
		))
	}
	return s
}

func TestRunFrameDrivesTheFullLifecycle(t *testing.T) {
	backend := &render.RecordingBackend{}
	pipeline := render.NewDrawSceneTask()

	e := NewEngine(
		WithScene(testScene(t)),
		WithBackend(backend),
		WithTask(pipeline.Task()),
	)

	e.RunFrame()
	assert.Equal(t, 1, backend.Frames)
	assert.Len(t, backend.Submissions, 4)
	assert.Equal(t, 4, e.RenderContext().ItemsDrawn)

	// Counters reset at the top of every frame.
	e.RunFrame()
	assert.Equal(t, 2, backend.Frames)
	assert.Equal(t, 4, e.RenderContext().ItemsDrawn)
}

func TestRunFrameWithoutSceneIsANoOp(t *testing.T) {
	backend := &render.RecordingBackend{}
	e := NewEngine(WithBackend(backend))

	e.RunFrame()
	assert.Zero(t, backend.Frames)
}

func TestEngineTasksRunInRegistrationOrder(t *testing.T) {
	backendA := &render.RecordingBackend{}
	first := render.NewDrawSceneTask(render.WithMaxDrawnItems(1))
	second := render.NewDrawSceneTask()

	e := NewEngine(
		WithScene(testScene(t)),
		WithBackend(backendA),
	)
	e.AddTask(first.Task())
	e.AddTask(second.Task())

	e.RunFrame()
	// First task submits its capped single item, the second all four.
	require.Len(t, backendA.Submissions, 5)
	assert.Equal(t, 5, e.RenderContext().ItemsDrawn)
}

func TestSetCameraFeedsNextFrame(t *testing.T) {
	backend := &render.RecordingBackend{}
	pipeline := render.NewDrawSceneTask()

	e := NewEngine(
		WithScene(testScene(t)),
		WithBackend(backend),
		WithTask(pipeline.Task()),
	)

	var vp [16]float32
	common.Identity(vp[:])
	e.SetCamera(render.CameraState{ViewProjection: vp})

	e.RunFrame()
	// Items sit at x >= 1 with radius 0.5; only the one straddling the
	// x=1 clip plane survives the identity frustum.
	assert.Len(t, backend.Submissions, 1)
	assert.Equal(t, 3, e.RenderContext().ItemsCulled)
}
