package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithEmissiveColor is an option builder that authors the emissive color,
// marking the emissive trait when any component is positive.
//
// Parameters:
//   - color: the emissive RGB color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissiveColor(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetEmissive(color)
	}
}

// WithAlbedoColor is an option builder that authors the albedo color and
// marks the albedo trait.
//
// Parameters:
//   - color: the albedo RGB color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the albedo option to a material
func WithAlbedoColor(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetAlbedo(color)
	}
}

// WithOpacity is an option builder that authors the opacity factor, marking
// the transparency trait when below 1.0.
//
// Parameters:
//   - opacity: the opacity factor (1.0 = fully opaque)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetOpacity(opacity)
	}
}

// WithMetallicFactor is an option builder that authors the metallic factor,
// marking the metallic trait when positive.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the metallic option to a material
func WithMetallicFactor(metallic float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetMetallic(metallic)
	}
}

// WithRoughnessFactor is an option builder that authors the roughness
// factor, marking the gloss trait when below 1.0.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the roughness option to a material
func WithRoughnessFactor(roughness float32) MaterialBuilderOption {
	return func(m *material) {
		m.SetRoughness(roughness)
	}
}

// WithTextureMapOn is an option builder that binds a texture map on a
// channel, marking the channel's map trait.
//
// Parameters:
//   - channel: the texture channel to bind
//   - tex: the texture map reference
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture map option to a material
func WithTextureMapOn(channel MapChannel, tex *TextureMap) MaterialBuilderOption {
	return func(m *material) {
		m.SetTextureMap(channel, tex)
	}
}
