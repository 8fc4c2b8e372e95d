package scene

import (
	"github.com/Carmen-Shannon/lumen-go/engine/material"
)

// ItemFilter selects which scene items a fetch pass considers: a required
// kind, an optional layered exclusion, and a material trait constraint.
type ItemFilter struct {
	// Kind is the required item category.
	Kind ItemKind
	// ExcludeLayered drops layered items when true.
	ExcludeLayered bool
	// RequireLayered keeps only layered items when true.
	RequireLayered bool
	// Material constrains the item's resolved classification key. The zero
	// filter constrains nothing.
	Material material.Filter
}

// Test reports whether an item passes the filter.
//
// Parameters:
//   - it: the item to test
//
// Returns:
//   - bool: true if the item passes
func (f ItemFilter) Test(it Item) bool {
	if it.Kind() != f.Kind {
		return false
	}
	if f.ExcludeLayered && it.Layered() {
		return false
	}
	if f.RequireLayered && !it.Layered() {
		return false
	}
	return f.Material.Test(it.Key())
}

// OpaqueShapeFilter is the default fetch filter: opaque, non-layered shape
// items.
//
// Returns:
//   - ItemFilter: the default filter
func OpaqueShapeFilter() ItemFilter {
	return ItemFilter{
		Kind:           KindShape,
		ExcludeLayered: true,
		Material:       material.NewFilter(material.WithoutTransparency()),
	}
}

// LightFilter selects light items.
//
// Returns:
//   - ItemFilter: the light filter
func LightFilter() ItemFilter {
	return ItemFilter{Kind: KindLight}
}

// BackgroundFilter selects background items.
//
// Returns:
//   - ItemFilter: the background filter
func BackgroundFilter() ItemFilter {
	return ItemFilter{Kind: KindBackground}
}

// LayeredShapeFilter selects layered shape items for the post-layered pass.
//
// Returns:
//   - ItemFilter: the layered shape filter
func LayeredShapeFilter() ItemFilter {
	return ItemFilter{Kind: KindShape, RequireLayered: true}
}
