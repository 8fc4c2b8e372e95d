package render

import (
	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/Carmen-Shannon/lumen-go/engine/task"
)

var (
	_ task.StageWithInput[Context, ItemMaterialBucketMap] = &DrawOpaque{}
	_ task.StageWithInput[Context, ItemMaterialBucketMap] = &DrawTransparent{}
	_ task.Stage[Context]                                 = &DrawLight{}
	_ task.Stage[Context]                                 = &DrawBackground{}
	_ task.Stage[Context]                                 = &DrawPostLayered{}
	_ task.Stage[Context]                                 = &ResetGPUState{}
)

// submitItems resolves each ID against the scene and submits the item to
// the frame's backend, honoring a remaining-budget cap. Submission errors
// are reported on the frame and the loop continues with the next item.
//
// Parameters:
//   - ctx: the frame contexts
//   - stage: the submitting stage's name, for error reports
//   - ids: the IDs to submit, in order
//   - budget: the remaining submission budget; negative means unlimited
//
// Returns:
//   - int: the number of submissions issued
func submitItems(ctx Context, stage string, ids []scene.ItemID, budget int) int {
	rctx := ctx.Render
	if rctx.Backend == nil {
		return 0
	}

	sc := ctx.Scene.Scene
	drawn := 0
	for _, id := range ids {
		if budget >= 0 && drawn >= budget {
			break
		}
		it := sc.Item(id)
		if it == nil {
			continue
		}
		if err := rctx.Backend.Draw(rctx, it); err != nil {
			rctx.ReportError(stage, err)
			continue
		}
		drawn++
	}
	rctx.ItemsDrawn += drawn
	return drawn
}

// DrawOpaque submits the opaque buckets of the classified map, walking the
// configured filters in order and each bucket front to back.
type DrawOpaque struct {
	// Filters names the buckets this stage consumes, in submission order.
	Filters []material.Filter
	// MaxDrawnItems caps submissions across all filters; negative means
	// unlimited.
	MaxDrawnItems int
}

// NewDrawOpaque creates the opaque draw stage consuming the standard
// opaque buckets, uncapped.
//
// Returns:
//   - *DrawOpaque: the new stage
func NewDrawOpaque() *DrawOpaque {
	return &DrawOpaque{
		Filters: []material.Filter{
			material.FilterOpaqueAlbedo(),
			material.FilterOpaqueWithoutAlbedo(),
		},
		MaxDrawnItems: -1,
	}
}

// Run submits the stage's buckets to the backend.
func (d *DrawOpaque) Run(ctx Context, buckets ItemMaterialBucketMap) {
	budget := d.MaxDrawnItems
	for _, f := range d.Filters {
		drawn := submitItems(ctx, "DrawOpaque", buckets.Bucket(f), budget)
		if budget >= 0 {
			budget -= drawn
			if budget <= 0 {
				return
			}
		}
	}
}

// DrawTransparent submits the transparent bucket. Transparency composites
// back to front; when the pipeline's depth sort ran front to back the
// stage walks the bucket in reverse to recover that order.
type DrawTransparent struct {
	// Filter names the bucket this stage consumes.
	Filter material.Filter
	// ReverseOrder walks the bucket back to front. Set when the upstream
	// depth sort ordered front to back.
	ReverseOrder bool
	// MaxDrawnItems caps submissions; negative means unlimited.
	MaxDrawnItems int
}

// NewDrawTransparent creates the transparent draw stage consuming the
// standard transparent bucket, uncapped.
//
// Returns:
//   - *DrawTransparent: the new stage
func NewDrawTransparent() *DrawTransparent {
	return &DrawTransparent{
		Filter:        material.FilterTransparent(),
		MaxDrawnItems: -1,
	}
}

// Run submits the stage's bucket to the backend.
func (d *DrawTransparent) Run(ctx Context, buckets ItemMaterialBucketMap) {
	ids := buckets.Bucket(d.Filter)
	if d.ReverseOrder && len(ids) > 1 {
		reversed := make([]scene.ItemID, len(ids))
		for i, id := range ids {
			reversed[len(ids)-1-i] = id
		}
		ids = reversed
	}
	submitItems(ctx, "DrawTransparent", ids, d.MaxDrawnItems)
}

// DrawLight fetches and submits the scene's light items. Lights bypass the
// cull/sort chain; there are few of them and their influence rarely maps
// to a single bound.
type DrawLight struct{}

// Run fetches the light items and submits them in ID order.
func (d *DrawLight) Run(ctx Context) {
	items := ctx.Scene.Scene.FetchItems(scene.LightFilter())
	ids := make([]scene.ItemID, len(items))
	for i, ib := range items {
		ids[i] = ib.ID
	}
	submitItems(ctx, "DrawLight", ids, -1)
}

// DrawBackground fetches and submits the scene's background items after
// the opaque pass, relying on the depth buffer to reject covered pixels.
type DrawBackground struct{}

// Run fetches the background items and submits them in ID order.
func (d *DrawBackground) Run(ctx Context) {
	items := ctx.Scene.Scene.FetchItems(scene.BackgroundFilter())
	ids := make([]scene.ItemID, len(items))
	for i, ib := range items {
		ids[i] = ib.ID
	}
	submitItems(ctx, "DrawBackground", ids, -1)
}

// DrawPostLayered fetches and submits layered shape items on top of the
// completed scene, in ID order. Layered items skip the main cull/sort
// chain entirely.
type DrawPostLayered struct{}

// Run fetches the layered shape items and submits them in ID order.
func (d *DrawPostLayered) Run(ctx Context) {
	items := ctx.Scene.Scene.FetchItems(scene.LayeredShapeFilter())
	ids := make([]scene.ItemID, len(items))
	for i, ib := range items {
		ids[i] = ib.ID
	}
	submitItems(ctx, "DrawPostLayered", ids, -1)
}

// ResetGPUState returns the backend to a clean state at the end of the
// frame so the next consumer of the device starts from known ground.
type ResetGPUState struct{}

// Run resets the backend's device state.
func (r *ResetGPUState) Run(ctx Context) {
	if ctx.Render.Backend != nil {
		ctx.Render.Backend.ResetState()
	}
}
