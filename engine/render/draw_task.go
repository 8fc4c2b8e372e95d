package render

import (
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

// DrawSceneTask is the standard frame pipeline assembled as one task:
//
//	FetchItems -> CullItems -> DepthSortItems -> MaterialSortItems
//	-> DrawOpaque -> DrawTransparent -> DrawLight -> DrawBackground
//	-> DrawPostLayered -> ResetGPUState
//
// The chain is assembled once; the task and its slots are reused every
// frame. Configuration (fetch filter, sort direction, draw caps) is
// adjusted between frames through the setters, never by reassembling.
type DrawSceneTask struct {
	task *task.Task[Context]

	fetch           *FetchItems
	cull            *CullItems
	depthSort       *DepthSortItems
	materialSort    *MaterialSortItems
	drawOpaque      *DrawOpaque
	drawTransparent *DrawTransparent
}

// NewDrawSceneTask assembles the standard pipeline configured with the
// provided options. Panics if assembly produces a mis-wired chain.
//
// Parameters:
//   - options: functional options to further configure the pipeline
//
// Returns:
//   - *DrawSceneTask: the assembled pipeline
func NewDrawSceneTask(options ...DrawSceneTaskBuilderOption) *DrawSceneTask {
	d := &DrawSceneTask{
		fetch:           NewFetchItems(),
		cull:            NewCullItems(),
		depthSort:       NewDepthSortItems(true),
		materialSort:    NewMaterialSortItems(),
		drawOpaque:      NewDrawOpaque(),
		drawTransparent: NewDrawTransparent(),
	}
	for _, option := range options {
		option(d)
	}
	d.drawTransparent.ReverseOrder = d.depthSort.FrontToBack

	t := task.NewTask[Context]()
	fetchJob := t.AddJob(task.NewJobWithOutput[Context, scene.ItemBounds]("FetchItems", d.fetch))
	cullJob := t.AddJob(task.NewJobWithInputOutput[Context, scene.ItemBounds, scene.ItemBounds](
		"CullItems", d.cull, fetchJob.Output()))
	sortJob := t.AddJob(task.NewJobWithInputOutput[Context, scene.ItemBounds, scene.ItemBounds](
		"DepthSortItems", d.depthSort, cullJob.Output()))
	bucketJob := t.AddJob(task.NewJobWithInputOutput[Context, scene.ItemBounds, ItemMaterialBucketMap](
		"MaterialSortItems", d.materialSort, sortJob.Output()))
	t.AddJob(task.NewJobWithInput[Context, ItemMaterialBucketMap]("DrawOpaque", d.drawOpaque, bucketJob.Output()))
	t.AddJob(task.NewJobWithInput[Context, ItemMaterialBucketMap]("DrawTransparent", d.drawTransparent, bucketJob.Output()))
	t.AddJob(task.NewJob[Context]("DrawLight", &DrawLight{}))
	t.AddJob(task.NewJob[Context]("DrawBackground", &DrawBackground{}))
	t.AddJob(task.NewJob[Context]("DrawPostLayered", &DrawPostLayered{}))
	t.AddJob(task.NewJob[Context]("ResetGPUState", &ResetGPUState{}))

	if err := t.Validate(); err != nil {
		panic("render: " + err.Error())
	}
	d.task = t
	return d
}

// Task returns the underlying job chain, for timing capture or inspection.
//
// Returns:
//   - *task.Task[Context]: the assembled chain
func (d *DrawSceneTask) Task() *task.Task[Context] {
	return d.task
}

// Run executes one frame of the pipeline against the given contexts.
//
// Parameters:
//   - ctx: the frame contexts
func (d *DrawSceneTask) Run(ctx Context) {
	d.task.Run(ctx)
}

// ItemFilter returns the fetch stage's current candidate filter.
//
// Returns:
//   - scene.ItemFilter: the fetch filter
func (d *DrawSceneTask) ItemFilter() scene.ItemFilter {
	return d.fetch.Filter
}

// SetItemFilter replaces the fetch stage's candidate filter. Takes effect
// on the next frame.
//
// Parameters:
//   - f: the new fetch filter
func (d *DrawSceneTask) SetItemFilter(f scene.ItemFilter) {
	d.fetch.Filter = f
}

// FrontToBack returns the depth sort direction.
//
// Returns:
//   - bool: true when the sort orders nearest first
func (d *DrawSceneTask) FrontToBack() bool {
	return d.depthSort.FrontToBack
}

// SetFrontToBack sets the depth sort direction. The transparent draw
// stage's traversal direction follows, so transparency always composites
// back to front.
//
// Parameters:
//   - frontToBack: true for nearest-first sorting
func (d *DrawSceneTask) SetFrontToBack(frontToBack bool) {
	d.depthSort.FrontToBack = frontToBack
	d.drawTransparent.ReverseOrder = frontToBack
}

// SetMaxDrawnItems caps submissions on both the opaque and transparent
// draw stages. Negative means unlimited.
//
// Parameters:
//   - n: the per-stage submission cap
func (d *DrawSceneTask) SetMaxDrawnItems(n int) {
	d.drawOpaque.MaxDrawnItems = n
	d.drawTransparent.MaxDrawnItems = n
}
