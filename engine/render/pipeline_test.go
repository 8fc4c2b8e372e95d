package render

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityVP() [16]float32 {
	var m [16]float32
	common.Identity(m[:])
	return m
}

// allShapesFilter fetches every non-layered shape regardless of material,
// so both opaque and transparent items flow into the buckets.
func allShapesFilter() scene.ItemFilter {
	return scene.ItemFilter{Kind: scene.KindShape, ExcludeLayered: true}
}

func addOpaque(s scene.Scene, center [3]float32) scene.ItemID {
	return s.Add(scene.NewItem(
		scene.WithKind(scene.KindShape),
		scene.WithMaterial(material.NewMaterial(material.WithAlbedoColor([3]float32{1, 1, 1}))),
		scene.WithBound(common.Bound{Center: center, Radius: 0.1}),
	))
}

func addTransparent(s scene.Scene, center [3]float32) scene.ItemID {
	return s.Add(scene.NewItem(
		scene.WithKind(scene.KindShape),
		scene.WithMaterial(material.NewMaterial(
			material.WithAlbedoColor([3]float32{1, 1, 1}),
			material.WithOpacity(0.5),
		)),
		scene.WithBound(common.Bound{Center: center, Radius: 0.1}),
	))
}

func frameContext(s scene.Scene, backend Backend) Context {
	rctx := &RenderContext{Backend: backend}
	rctx.PrepareFrame()
	return Context{Scene: &SceneContext{Scene: s}, Render: rctx}
}

func TestDrawSceneTaskSubmissionOrder(t *testing.T) {
	s := scene.NewScene("order")
	farOpaque := addOpaque(s, [3]float32{3, 0, 0})
	nearOpaque := addOpaque(s, [3]float32{1, 0, 0})
	midOpaque := addOpaque(s, [3]float32{2, 0, 0})
	farTransparent := addTransparent(s, [3]float32{5, 0, 0})
	nearTransparent := addTransparent(s, [3]float32{4, 0, 0})
	light := s.Add(scene.NewItem(scene.WithKind(scene.KindLight)))
	background := s.Add(scene.NewItem(scene.WithKind(scene.KindBackground)))
	layered := s.Add(scene.NewItem(scene.WithKind(scene.KindShape), scene.WithLayered()))

	pipeline := NewDrawSceneTask(WithItemFilter(allShapesFilter()))
	backend := &RecordingBackend{}
	ctx := frameContext(s, backend)

	pipeline.Run(ctx)

	// Opaque front to back, transparent back to front, then the terminal
	// passes in stage order.
	assert.Equal(t, []scene.ItemID{
		nearOpaque, midOpaque, farOpaque,
		farTransparent, nearTransparent,
		light, background, layered,
	}, backend.Submissions)
	assert.Equal(t, 1, backend.Resets)

	assert.Equal(t, 5, ctx.Render.ItemsFetched)
	assert.Equal(t, 8, ctx.Render.ItemsDrawn)
	assert.Zero(t, ctx.Render.ItemsCulled)
	assert.Zero(t, ctx.Render.ItemsDropped)
	assert.Empty(t, ctx.Render.Errors())
}

func TestDrawSceneTaskBackToFrontSort(t *testing.T) {
	s := scene.NewScene("order")
	near := addOpaque(s, [3]float32{1, 0, 0})
	far := addOpaque(s, [3]float32{3, 0, 0})
	nearT := addTransparent(s, [3]float32{2, 0, 0})
	farT := addTransparent(s, [3]float32{4, 0, 0})

	pipeline := NewDrawSceneTask(
		WithItemFilter(allShapesFilter()),
		WithFrontToBack(false),
	)
	backend := &RecordingBackend{}
	pipeline.Run(frameContext(s, backend))

	// Opaque follows the sort (far first); transparent needs no reversal
	// since back-to-front is already the compositing order.
	assert.Equal(t, []scene.ItemID{far, near, farT, nearT}, backend.Submissions)
}

func TestDrawSceneTaskIsDeterministicAcrossFrames(t *testing.T) {
	s := scene.NewScene("repeat")
	for i := 0; i < 32; i++ {
		addOpaque(s, [3]float32{float32(i%7) - 3, float32(i % 5), float32(i % 3)})
		addTransparent(s, [3]float32{float32(i%4) - 2, 0, float32(i % 6)})
	}

	pipeline := NewDrawSceneTask(WithItemFilter(allShapesFilter()))
	backend := &RecordingBackend{}
	ctx := frameContext(s, backend)

	pipeline.Run(ctx)
	first := append([]scene.ItemID(nil), backend.Submissions...)

	backend.Clear()
	ctx.Render.PrepareFrame()
	pipeline.Run(ctx)

	assert.Equal(t, first, backend.Submissions)
}

func TestFrustumCullingRejectsOutOfViewItems(t *testing.T) {
	s := scene.NewScene("cull")
	inside := addOpaque(s, [3]float32{0, 0, 0})
	addOpaque(s, [3]float32{5, 0, 0})
	addOpaque(s, [3]float32{0, -9, 0})

	pipeline := NewDrawSceneTask()
	backend := &RecordingBackend{}
	rctx := &RenderContext{
		Backend: backend,
		Camera:  CameraState{ViewProjection: identityVP()},
	}
	rctx.PrepareFrame()
	pipeline.Run(Context{Scene: &SceneContext{Scene: s}, Render: rctx})

	assert.Equal(t, []scene.ItemID{inside}, backend.Submissions)
	assert.Equal(t, 3, rctx.ItemsFetched)
	assert.Equal(t, 2, rctx.ItemsCulled)
	assert.Equal(t, 1, rctx.ItemsDrawn)
}

func TestZeroMatrixDisablesCulling(t *testing.T) {
	rctx := &RenderContext{}
	rctx.PrepareFrame()
	assert.True(t, rctx.CullTest(common.Bound{Center: [3]float32{1e6, 0, 0}, Radius: 1}))
}

func TestCullTestAgainstIdentityFrustum(t *testing.T) {
	rctx := &RenderContext{Camera: CameraState{ViewProjection: identityVP()}}
	rctx.PrepareFrame()

	assert.True(t, rctx.CullTest(common.Bound{Center: [3]float32{0, 0, 0}, Radius: 0.5}))
	// Straddling a plane is kept.
	assert.True(t, rctx.CullTest(common.Bound{Center: [3]float32{1.2, 0, 0}, Radius: 0.5}))
	assert.False(t, rctx.CullTest(common.Bound{Center: [3]float32{2, 0, 0}, Radius: 0.5}))
}

func TestParallelCullMatchesSerial(t *testing.T) {
	var in scene.ItemBounds
	for i := 0; i < 500; i++ {
		in = append(in, scene.ItemBound{
			ID: scene.ItemID(i + 1),
			Bound: common.Bound{
				Center: [3]float32{float32(i%13) - 6, float32(i%9) - 4, float32(i%5) - 2},
				Radius: 0.25,
			},
		})
	}

	newCtx := func() Context {
		rctx := &RenderContext{Camera: CameraState{ViewProjection: identityVP()}}
		rctx.PrepareFrame()
		return Context{Scene: &SceneContext{}, Render: rctx}
	}

	serial := NewCullItems(WithParallelThreshold(1 << 20))
	parallel := NewCullItems(WithParallelThreshold(0), WithCullWorkers(4))

	var serialOut, parallelOut scene.ItemBounds
	serialCtx, parallelCtx := newCtx(), newCtx()
	serial.Run(serialCtx, in, &serialOut)
	parallel.Run(parallelCtx, in, &parallelOut)

	require.NotEmpty(t, serialOut)
	assert.Equal(t, serialOut, parallelOut)
	assert.Equal(t, serialCtx.Render.ItemsCulled, parallelCtx.Render.ItemsCulled)
}

func TestMaterialSortCountsDroppedItems(t *testing.T) {
	s := scene.NewScene("drop")
	kept := addOpaque(s, [3]float32{0, 0, 0})
	addTransparent(s, [3]float32{1, 0, 0})

	in := s.FetchItems(allShapesFilter())
	require.Len(t, in, 2)

	// A bucket set that covers only opaque-with-albedo: the transparent
	// item has nowhere to go.
	var out ItemMaterialBucketMap
	out.AddBucket(material.FilterOpaqueAlbedo())

	ctx := frameContext(s, nil)
	NewMaterialSortItems().Run(ctx, in, &out)

	assert.Equal(t, []scene.ItemID{kept}, out.Bucket(material.FilterOpaqueAlbedo()))
	assert.Equal(t, 1, out.Dropped())
	assert.Equal(t, 1, ctx.Render.ItemsDropped)
}

func TestMaxDrawnItemsCapsSubmissions(t *testing.T) {
	s := scene.NewScene("cap")
	var ids []scene.ItemID
	for i := 0; i < 6; i++ {
		ids = append(ids, addOpaque(s, [3]float32{float32(i + 1), 0, 0}))
	}

	pipeline := NewDrawSceneTask(WithMaxDrawnItems(2))
	backend := &RecordingBackend{}
	pipeline.Run(frameContext(s, backend))

	assert.Equal(t, ids[:2], backend.Submissions)
}

func TestMissingBackendSkipsSubmission(t *testing.T) {
	s := scene.NewScene("nobackend")
	addOpaque(s, [3]float32{0, 0, 0})

	pipeline := NewDrawSceneTask()
	ctx := frameContext(s, nil)
	pipeline.Run(ctx)

	assert.Equal(t, 1, ctx.Render.ItemsFetched)
	assert.Zero(t, ctx.Render.ItemsDrawn)
}

// failingBackend rejects every submission.
type failingBackend struct{}

func (f *failingBackend) BeginFrame() error { return nil }
func (f *failingBackend) Draw(_ *RenderContext, it scene.Item) error {
	return errors.New("resources not registered")
}
func (f *failingBackend) ResetState() {}
func (f *failingBackend) EndFrame()   {}

func TestSubmissionErrorsAreReportedNotFatal(t *testing.T) {
	s := scene.NewScene("errors")
	addOpaque(s, [3]float32{0, 0, 0})
	addOpaque(s, [3]float32{1, 0, 0})

	pipeline := NewDrawSceneTask()
	ctx := frameContext(s, &failingBackend{})
	pipeline.Run(ctx)

	assert.Zero(t, ctx.Render.ItemsDrawn)
	errs := ctx.Render.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "DrawOpaque", errs[0].Stage)
}

func TestAssembledPipelineValidates(t *testing.T) {
	pipeline := NewDrawSceneTask()
	require.NoError(t, pipeline.Task().Validate())
	assert.Equal(t, 10, pipeline.Task().Len())
}

func TestPipelineConfigurationSetters(t *testing.T) {
	pipeline := NewDrawSceneTask()
	assert.True(t, pipeline.FrontToBack())
	assert.Equal(t, scene.OpaqueShapeFilter(), pipeline.ItemFilter())

	pipeline.SetFrontToBack(false)
	assert.False(t, pipeline.FrontToBack())

	f := allShapesFilter()
	pipeline.SetItemFilter(f)
	assert.Equal(t, f, pipeline.ItemFilter())
}
