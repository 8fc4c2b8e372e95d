package render

import (
	"slices"

	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
)

// materialBucket pairs a filter with the IDs of the items it matched this
// frame, in insertion order.
type materialBucket struct {
	filter material.Filter
	items  []scene.ItemID
}

// ItemMaterialBucketMap partitions item IDs into buckets keyed by material
// filter. Buckets are kept sorted by the filter's total order so iteration
// is deterministic regardless of registration order. An item lands in the
// first bucket (in that order) whose filter matches its key; items no
// bucket matches are counted as dropped rather than silently discarded.
type ItemMaterialBucketMap struct {
	buckets []materialBucket
	dropped int
}

// AddBucket registers an empty bucket for the filter. Registering the same
// filter twice is a no-op.
//
// Parameters:
//   - f: the bucket's filter
func (m *ItemMaterialBucketMap) AddBucket(f material.Filter) {
	idx, found := slices.BinarySearchFunc(m.buckets, f, func(b materialBucket, target material.Filter) int {
		return b.filter.Compare(target)
	})
	if found {
		return
	}
	m.buckets = slices.Insert(m.buckets, idx, materialBucket{filter: f})
}

// AllocateStandardMaterialBuckets registers the canonical bucket set:
// opaque-with-albedo, opaque-without-albedo, and transparent. Together
// these cover every possible key, so nothing inserted into a standard map
// is ever dropped.
func (m *ItemMaterialBucketMap) AllocateStandardMaterialBuckets() {
	for _, f := range material.StandardFilters() {
		m.AddBucket(f)
	}
}

// Insert classifies one item by key. The item joins the first bucket whose
// filter matches; if none matches the item is dropped and counted.
//
// Parameters:
//   - id: the item's ID
//   - key: the item's classification key
//
// Returns:
//   - bool: true if a bucket accepted the item
func (m *ItemMaterialBucketMap) Insert(id scene.ItemID, key material.Key) bool {
	for i := range m.buckets {
		if m.buckets[i].filter.Test(key) {
			m.buckets[i].items = append(m.buckets[i].items, id)
			return true
		}
	}
	m.dropped++
	return false
}

// Bucket returns the items classified under the filter, in insertion
// order. Returns nil for an unregistered filter. The returned slice is the
// map's own storage; callers must not modify it.
//
// Parameters:
//   - f: the bucket's filter
//
// Returns:
//   - []scene.ItemID: the bucket's items
func (m *ItemMaterialBucketMap) Bucket(f material.Filter) []scene.ItemID {
	idx, found := slices.BinarySearchFunc(m.buckets, f, func(b materialBucket, target material.Filter) int {
		return b.filter.Compare(target)
	})
	if !found {
		return nil
	}
	return m.buckets[idx].items
}

// Filters returns the registered filters in bucket iteration order.
//
// Returns:
//   - []material.Filter: the registered filters
func (m *ItemMaterialBucketMap) Filters() []material.Filter {
	out := make([]material.Filter, len(m.buckets))
	for i := range m.buckets {
		out[i] = m.buckets[i].filter
	}
	return out
}

// Each calls fn for every bucket in iteration order.
//
// Parameters:
//   - fn: the visitor, given the bucket's filter and items
func (m *ItemMaterialBucketMap) Each(fn func(f material.Filter, items []scene.ItemID)) {
	for i := range m.buckets {
		fn(m.buckets[i].filter, m.buckets[i].items)
	}
}

// Len returns the number of registered buckets.
//
// Returns:
//   - int: the bucket count
func (m *ItemMaterialBucketMap) Len() int {
	return len(m.buckets)
}

// Size returns the total number of classified items across all buckets.
//
// Returns:
//   - int: the classified item count
func (m *ItemMaterialBucketMap) Size() int {
	n := 0
	for i := range m.buckets {
		n += len(m.buckets[i].items)
	}
	return n
}

// Dropped returns the number of items no bucket matched since the last
// Reset.
//
// Returns:
//   - int: the dropped item count
func (m *ItemMaterialBucketMap) Dropped() int {
	return m.dropped
}

// Reset empties every bucket and clears the dropped counter. The bucket
// set itself is kept, so a map allocated once can be refilled every frame.
func (m *ItemMaterialBucketMap) Reset() {
	for i := range m.buckets {
		m.buckets[i].items = m.buckets[i].items[:0]
	}
	m.dropped = 0
}
