package render

import (
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

// FetchItems is the pipeline's entry stage: it queries the scene for the
// ID and bound of every item passing its filter and writes the candidate
// list to its output slot. The list is in ascending ID order, so a fixed
// scene always yields the same candidates.
type FetchItems struct {
	// Filter selects the candidate items. Defaults to opaque, non-layered
	// shapes.
	Filter scene.ItemFilter
}

var _ task.StageWithOutput[Context, scene.ItemBounds] = &FetchItems{}

// NewFetchItems creates a fetch stage with the default opaque-shape filter.
//
// Returns:
//   - *FetchItems: the new stage
func NewFetchItems() *FetchItems {
	return &FetchItems{Filter: scene.OpaqueShapeFilter()}
}

// Run queries the scene and replaces the output candidate list.
func (f *FetchItems) Run(ctx Context, out *scene.ItemBounds) {
	*out = ctx.Scene.Scene.FetchItems(f.Filter)
	ctx.Render.ItemsFetched = len(*out)
}
