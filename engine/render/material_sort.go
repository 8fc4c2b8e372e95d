package render

import (
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

// MaterialSortItems classifies the depth-ordered candidates into the
// material bucket map the draw stages consume. Within each bucket the
// depth order is preserved, so draw submission order is depth order
// restricted to the bucket's filter. Items whose key no bucket matches
// are counted on the frame as dropped.
type MaterialSortItems struct{}

var _ task.StageWithInputOutput[Context, scene.ItemBounds, ItemMaterialBucketMap] = &MaterialSortItems{}

// NewMaterialSortItems creates a material sort stage.
//
// Returns:
//   - *MaterialSortItems: the new stage
func NewMaterialSortItems() *MaterialSortItems {
	return &MaterialSortItems{}
}

// Run refills the output bucket map from the input candidates. The bucket
// set is allocated on first use and kept across frames; only the contents
// are rebuilt.
func (m *MaterialSortItems) Run(ctx Context, in scene.ItemBounds, out *ItemMaterialBucketMap) {
	if out.Len() == 0 {
		out.AllocateStandardMaterialBuckets()
	}
	out.Reset()

	sc := ctx.Scene.Scene
	for _, ib := range in {
		it := sc.Item(ib.ID)
		if it == nil {
			// Removed between fetch and classification.
			continue
		}
		out.Insert(ib.ID, it.Key())
	}
	ctx.Render.ItemsDropped += out.Dropped()
}
