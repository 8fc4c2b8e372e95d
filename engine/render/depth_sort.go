package render

import (
	"slices"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

// DepthSortItems orders the candidate list by squared distance from the
// frame's eye position. The sort is stable, so candidates at equal depth
// keep their incoming (ID) order and a fixed input always yields the same
// output.
type DepthSortItems struct {
	// FrontToBack orders nearest first when true (the opaque convention);
	// false orders farthest first (the transparent convention).
	FrontToBack bool
}

var _ task.StageWithInputOutput[Context, scene.ItemBounds, scene.ItemBounds] = &DepthSortItems{}

// NewDepthSortItems creates a depth sort stage.
//
// Parameters:
//   - frontToBack: true for nearest-first ordering
//
// Returns:
//   - *DepthSortItems: the new stage
func NewDepthSortItems(frontToBack bool) *DepthSortItems {
	return &DepthSortItems{FrontToBack: frontToBack}
}

// Run copies the input to the output slot and sorts it by depth.
func (d *DepthSortItems) Run(ctx Context, in scene.ItemBounds, out *scene.ItemBounds) {
	*out = append((*out)[:0], in...)

	eye := ctx.Render.Camera.Eye
	slices.SortStableFunc(*out, func(a, b scene.ItemBound) int {
		da := common.DistanceSquared3(a.Bound.Center, eye)
		db := common.DistanceSquared3(b.Bound.Center, eye)
		switch {
		case da == db:
			return 0
		case (da < db) == d.FrontToBack:
			return -1
		default:
			return 1
		}
	})
}
