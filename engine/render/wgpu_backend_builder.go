package render

// gpuBackendConfig collects construction-time settings for the wgpu
// backend.
type gpuBackendConfig struct {
	forceFallbackAdapter bool
}

// GPUBackendBuilderOption is a function that configures a GPU backend
// during construction.
type GPUBackendBuilderOption func(*gpuBackendConfig)

// WithForceFallbackAdapter is an option builder that forces the software
// fallback adapter, for machines without a usable GPU.
//
// Returns:
//   - GPUBackendBuilderOption: a function that applies the fallback option to a GPU backend
func WithForceFallbackAdapter() GPUBackendBuilderOption {
	return func(c *gpuBackendConfig) {
		c.forceFallbackAdapter = true
	}
}
