package scene

import (
	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/material"
)

// ItemBuilderOption is a function that configures an item instance during construction.
type ItemBuilderOption func(*item)

// WithKind is an option builder that sets the item's category.
//
// Parameters:
//   - kind: the item category
//
// Returns:
//   - ItemBuilderOption: a function that applies the kind option to an item
func WithKind(kind ItemKind) ItemBuilderOption {
	return func(it *item) {
		it.kind = kind
	}
}

// WithLayered is an option builder that marks the item as layered.
//
// Returns:
//   - ItemBuilderOption: a function that applies the layered option to an item
func WithLayered() ItemBuilderOption {
	return func(it *item) {
		it.layered = true
	}
}

// WithBound is an option builder that sets the item's bounding volume.
//
// Parameters:
//   - b: the bounding sphere
//
// Returns:
//   - ItemBuilderOption: a function that applies the bound option to an item
func WithBound(b common.Bound) ItemBuilderOption {
	return func(it *item) {
		it.bound = b
	}
}

// WithMaterial is an option builder that attaches the item's material.
//
// Parameters:
//   - mat: the material to attach
//
// Returns:
//   - ItemBuilderOption: a function that applies the material option to an item
func WithMaterial(mat material.Material) ItemBuilderOption {
	return func(it *item) {
		it.mat = mat
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key a
// GPU backend binds for this item.
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - ItemBuilderOption: a function that applies the pipeline key option to an item
func WithPipelineKey(key string) ItemBuilderOption {
	return func(it *item) {
		it.pipelineKey = key
	}
}
