package render

// CullItemsBuilderOption is a function that configures a CullItems stage
// during construction.
type CullItemsBuilderOption func(*CullItems)

// WithCullWorkers is an option builder that sets the worker count for the
// parallel visibility phase.
//
// Parameters:
//   - n: the worker count, clamped to at least 1
//
// Returns:
//   - CullItemsBuilderOption: a function that applies the worker count option to a CullItems stage
func WithCullWorkers(n int) CullItemsBuilderOption {
	return func(c *CullItems) {
		if n < 1 {
			n = 1
		}
		c.cullWorkers = n
	}
}

// WithParallelThreshold is an option builder that sets the candidate count
// above which visibility tests run on the worker pool instead of inline.
//
// Parameters:
//   - n: the threshold, clamped to at least 0
//
// Returns:
//   - CullItemsBuilderOption: a function that applies the threshold option to a CullItems stage
func WithParallelThreshold(n int) CullItemsBuilderOption {
	return func(c *CullItems) {
		if n < 0 {
			n = 0
		}
		c.parallelThreshold = n
	}
}
