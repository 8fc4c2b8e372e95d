package render

import (
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
)

// DrawSceneTaskBuilderOption is a function that configures a DrawSceneTask
// during construction.
type DrawSceneTaskBuilderOption func(*DrawSceneTask)

// WithItemFilter is an option builder that sets the fetch stage's
// candidate filter.
//
// Parameters:
//   - f: the fetch filter
//
// Returns:
//   - DrawSceneTaskBuilderOption: a function that applies the filter option to a DrawSceneTask
func WithItemFilter(f scene.ItemFilter) DrawSceneTaskBuilderOption {
	return func(d *DrawSceneTask) {
		d.fetch.Filter = f
	}
}

// WithFrontToBack is an option builder that sets the depth sort direction.
//
// Parameters:
//   - frontToBack: true for nearest-first sorting
//
// Returns:
//   - DrawSceneTaskBuilderOption: a function that applies the direction option to a DrawSceneTask
func WithFrontToBack(frontToBack bool) DrawSceneTaskBuilderOption {
	return func(d *DrawSceneTask) {
		d.depthSort.FrontToBack = frontToBack
	}
}

// WithMaxDrawnItems is an option builder that caps submissions on the
// opaque and transparent draw stages.
//
// Parameters:
//   - n: the per-stage submission cap; negative means unlimited
//
// Returns:
//   - DrawSceneTaskBuilderOption: a function that applies the cap option to a DrawSceneTask
func WithMaxDrawnItems(n int) DrawSceneTaskBuilderOption {
	return func(d *DrawSceneTask) {
		d.drawOpaque.MaxDrawnItems = n
		d.drawTransparent.MaxDrawnItems = n
	}
}

// WithCullStageOptions is an option builder that rebuilds the cull stage
// with the given options before assembly.
//
// Parameters:
//   - options: the cull stage options
//
// Returns:
//   - DrawSceneTaskBuilderOption: a function that applies the cull options to a DrawSceneTask
func WithCullStageOptions(options ...CullItemsBuilderOption) DrawSceneTaskBuilderOption {
	return func(d *DrawSceneTask) {
		d.cull = NewCullItems(options...)
	}
}
