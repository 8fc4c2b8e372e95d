// package scene provides the item registry collaborator consumed by the
// render pipeline: items are opaque identifiers plus a bounding volume, a
// kind, a layered flag, and a material reference whose classification key
// drives bucketing. The scene never runs pipeline logic itself; it only
// answers candidate queries.
package scene

import (
	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/material"
)

// ItemID is the opaque, comparable identifier of a scene item. The zero ID
// is reserved for "not yet registered".
type ItemID uint64

// ItemKind is the coarse category of a scene item, used by fetch filters to
// route items to the stage that draws them.
type ItemKind int

const (
	// KindShape is ordinary drawable geometry.
	KindShape ItemKind = iota
	// KindLight is a light source consumed by the lighting stage.
	KindLight
	// KindBackground is background content drawn after the main passes.
	KindBackground
)

// String returns a readable kind name for diagnostics.
func (k ItemKind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindLight:
		return "light"
	case KindBackground:
		return "background"
	default:
		return "unknown"
	}
}

// ItemBound pairs an item identifier with its bounding volume. This is the
// value the pipeline passes between fetch, cull, and sort stages; the
// pipeline treats both fields as opaque pass-through data.
type ItemBound struct {
	ID    ItemID
	Bound common.Bound
}

// ItemBounds is the candidate/visible item list flowing through the
// pipeline's Varying slots.
type ItemBounds []ItemBound

// item is the implementation of the Item interface.
type item struct {
	id          ItemID
	kind        ItemKind
	layered     bool
	bound       common.Bound
	mat         material.Material
	pipelineKey string
}

// Item is one entry in the scene registry. The render pipeline reads an
// item's bound, kind, layered flag, and resolved material key; it never
// mutates an item. Position (via the bound) is mutable so items can move
// between frames.
type Item interface {
	// ID retrieves the item's identifier. Zero until the item is added to
	// a scene.
	//
	// Returns:
	//   - ItemID: the identifier
	ID() ItemID

	// SetID assigns the item's identifier. Called by the scene on Add.
	//
	// Parameters:
	//   - id: the identifier to assign
	SetID(id ItemID)

	// Kind retrieves the item's category.
	//
	// Returns:
	//   - ItemKind: the category
	Kind() ItemKind

	// Layered reports whether the item belongs to a layered (post-drawn)
	// group. Layered items are excluded from the default fetch filter and
	// drawn by the post-layered stage.
	//
	// Returns:
	//   - bool: true if the item is layered
	Layered() bool

	// Bound retrieves the item's bounding volume.
	//
	// Returns:
	//   - common.Bound: the bounding sphere
	Bound() common.Bound

	// SetBound replaces the item's bounding volume.
	//
	// Parameters:
	//   - b: the new bounding sphere
	SetBound(b common.Bound)

	// Material retrieves the item's material, or nil for items without one
	// (lights, backgrounds).
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// Key retrieves the item's resolved classification key: the material's
	// key, or the zero key when the item has no material.
	//
	// Returns:
	//   - material.Key: the classification key
	Key() material.Key

	// PipelineKey retrieves the render pipeline key a GPU backend should
	// bind when drawing this item. Empty for items the backend resolves
	// itself.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string
}

var _ Item = &item{}

// NewItem creates a new Item configured with the provided options. Defaults
// to a non-layered shape with a point bound at the origin and no material.
//
// Parameters:
//   - options: variadic list of ItemBuilderOption functions to configure the item
//
// Returns:
//   - Item: a new Item instance
func NewItem(options ...ItemBuilderOption) Item {
	it := &item{
		kind: KindShape,
	}
	for _, opt := range options {
		opt(it)
	}
	return it
}

func (it *item) ID() ItemID {
	return it.id
}

func (it *item) SetID(id ItemID) {
	it.id = id
}

func (it *item) Kind() ItemKind {
	return it.kind
}

func (it *item) Layered() bool {
	return it.layered
}

func (it *item) Bound() common.Bound {
	return it.bound
}

func (it *item) SetBound(b common.Bound) {
	it.bound = b
}

func (it *item) Material() material.Material {
	return it.mat
}

func (it *item) Key() material.Key {
	if it.mat == nil {
		return material.Key{}
	}
	return it.mat.Key()
}

func (it *item) PipelineKey() string {
	return it.pipelineKey
}
