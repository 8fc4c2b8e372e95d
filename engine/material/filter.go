package material

import "fmt"

// Filter is a mask/value predicate over Key bits. Every bit set in the mask
// is constrained to the corresponding bit in value; bits outside the mask
// are unconstrained. Filters are immutable after construction and are safe
// to copy and share across goroutines.
type Filter struct {
	value Flags
	mask  Flags
}

// NewFilter creates a Filter configured with the provided options. Each
// trait contributes a require-present, require-absent, or (by omission)
// don't-care constraint.
//
// Parameters:
//   - options: variadic list of FilterOption functions to configure the filter
//
// Returns:
//   - Filter: the configured filter
func NewFilter(options ...FilterOption) Filter {
	var f Filter
	for _, opt := range options {
		opt(&f)
	}
	return f
}

// Value returns the required bit settings for constrained bits.
//
// Returns:
//   - Flags: the value bit vector
func (f Filter) Value() Flags {
	return f.value
}

// Mask returns the set of constrained bits.
//
// Returns:
//   - Flags: the mask bit vector
func (f Filter) Mask() Flags {
	return f.mask
}

// Test reports whether a key passes the filter: every masked bit of the key
// must equal the corresponding value bit.
//
// Parameters:
//   - key: the key to test
//
// Returns:
//   - bool: true if the key matches the filter
func (f Filter) Test(key Key) bool {
	return key.flags&f.mask == f.value&f.mask
}

// Compare defines the total order used for sorted bucket containers:
// filters are ordered by value as an unsigned integer, then by mask on
// ties. Returns a negative number when f sorts before other, zero when the
// two are interchangeable as container keys, and a positive number otherwise.
//
// Parameters:
//   - other: the filter to compare against
//
// Returns:
//   - int: the comparison result
func (f Filter) Compare(other Filter) int {
	if f.value != other.value {
		if f.value < other.value {
			return -1
		}
		return 1
	}
	if f.mask != other.mask {
		if f.mask < other.mask {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether f sorts strictly before other in the bucket order.
//
// Parameters:
//   - other: the filter to compare against
//
// Returns:
//   - bool: true if f precedes other
func (f Filter) Less(other Filter) bool {
	return f.Compare(other) < 0
}

// String renders the filter's mask and value vectors for diagnostics.
func (f Filter) String() string {
	return fmt.Sprintf("Filter(value=%012b mask=%012b)", uint32(f.value), uint32(f.mask))
}
