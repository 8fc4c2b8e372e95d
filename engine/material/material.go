package material

// TextureMap is a reference to texture data bound on one of a material's
// channels. The engine never loads or owns the texture contents; it only
// tracks the association so the material's Key reflects which channels are
// mapped.
type TextureMap struct {
	// Name is the texture identifier.
	Name string
	// Path is the source path or URI of the texture data, if known.
	Path string
}

// material is the implementation of the Material interface.
type material struct {
	name      string
	key       Key
	emissive  [3]float32
	albedo    [3]float32
	fresnel   [3]float32
	opacity   float32
	metallic  float32
	roughness float32

	textureMaps map[MapChannel]*TextureMap
}

// Material is the authoring-side description of a surface. Attribute
// setters keep the material's classification Key in sync with the authored
// values: authoring an emissive color marks the emissive trait, dropping
// opacity below one marks the transparency trait, binding a texture map
// marks the channel's map trait, and so on. The render pipeline only ever
// reads Key(); it never mutates a material.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Key retrieves the trait classification key describing which traits
	// and texture channels this material carries.
	//
	// Returns:
	//   - Key: the material's classification key
	Key() Key

	// Emissive retrieves the emissive RGB color.
	//
	// Returns:
	//   - [3]float32: the emissive color
	Emissive() [3]float32

	// SetEmissive sets the emissive RGB color. Any positive component marks
	// the emissive trait on the key.
	//
	// Parameters:
	//   - color: the emissive color
	SetEmissive(color [3]float32)

	// Albedo retrieves the albedo/diffuse RGB color.
	//
	// Returns:
	//   - [3]float32: the albedo color
	Albedo() [3]float32

	// SetAlbedo sets the albedo/diffuse RGB color and marks the albedo
	// trait on the key.
	//
	// Parameters:
	//   - color: the albedo color
	SetAlbedo(color [3]float32)

	// Fresnel retrieves the fresnel reflectance color.
	//
	// Returns:
	//   - [3]float32: the fresnel color
	Fresnel() [3]float32

	// SetFresnel sets the fresnel reflectance color. Fresnel carries no
	// trait bit.
	//
	// Parameters:
	//   - color: the fresnel color
	SetFresnel(color [3]float32)

	// Opacity retrieves the opacity factor (1.0 = fully opaque).
	//
	// Returns:
	//   - float32: the opacity factor
	Opacity() float32

	// SetOpacity sets the opacity factor. An opacity below 1.0 marks the
	// transparency trait on the key; restoring full opacity clears it.
	//
	// Parameters:
	//   - opacity: the opacity factor
	SetOpacity(opacity float32)

	// Metallic retrieves the metallic factor (0.0 = dielectric, 1.0 = metal).
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// SetMetallic sets the metallic factor. A positive factor marks the
	// metallic trait on the key.
	//
	// Parameters:
	//   - metallic: the metallic factor
	SetMetallic(metallic float32)

	// Roughness retrieves the roughness factor (0.0 = smooth, 1.0 = rough).
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// SetRoughness sets the roughness factor. A roughness below 1.0 marks
	// the gloss trait on the key.
	//
	// Parameters:
	//   - roughness: the roughness factor
	SetRoughness(roughness float32)

	// TextureMap retrieves the texture map bound on a channel, or nil.
	//
	// Parameters:
	//   - channel: the texture channel
	//
	// Returns:
	//   - *TextureMap: the bound map, or nil if the channel is unmapped
	TextureMap(channel MapChannel) *TextureMap

	// SetTextureMap binds or unbinds a texture map on a channel and updates
	// the channel's map trait on the key. Passing nil unbinds.
	//
	// Parameters:
	//   - channel: the texture channel
	//   - tex: the texture map to bind, or nil to unbind
	SetTextureMap(channel MapChannel, tex *TextureMap)

	// TextureMaps retrieves a copy of the channel→map associations.
	//
	// Returns:
	//   - map[MapChannel]*TextureMap: the bound texture maps
	TextureMaps() map[MapChannel]*TextureMap
}

var _ Material = &material{}

// NewMaterial creates a new Material configured with the provided options.
// Defaults follow the standard schema: mid-gray albedo, full opacity, fully
// rough dielectric. Defaults do not mark any trait bits; only authored
// values do.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		albedo:      [3]float32{0.5, 0.5, 0.5},
		fresnel:     [3]float32{0.03, 0.03, 0.03},
		opacity:     1.0,
		metallic:    0.0,
		roughness:   1.0,
		textureMaps: make(map[MapChannel]*TextureMap),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Key() Key {
	return m.key
}

func (m *material) Emissive() [3]float32 {
	return m.emissive
}

func (m *material) SetEmissive(color [3]float32) {
	m.emissive = color
	m.key.SetEmissive(color[0] > 0 || color[1] > 0 || color[2] > 0)
}

func (m *material) Albedo() [3]float32 {
	return m.albedo
}

func (m *material) SetAlbedo(color [3]float32) {
	m.albedo = color
	m.key.SetAlbedo(true)
}

func (m *material) Fresnel() [3]float32 {
	return m.fresnel
}

func (m *material) SetFresnel(color [3]float32) {
	m.fresnel = color
}

func (m *material) Opacity() float32 {
	return m.opacity
}

func (m *material) SetOpacity(opacity float32) {
	m.opacity = opacity
	m.key.SetTransparent(opacity < 1.0)
}

func (m *material) Metallic() float32 {
	return m.metallic
}

func (m *material) SetMetallic(metallic float32) {
	m.metallic = metallic
	m.key.SetMetallic(metallic > 0)
}

func (m *material) Roughness() float32 {
	return m.roughness
}

func (m *material) SetRoughness(roughness float32) {
	m.roughness = roughness
	m.key.SetGloss(roughness < 1.0)
}

func (m *material) TextureMap(channel MapChannel) *TextureMap {
	channel.bit() // range check
	return m.textureMaps[channel]
}

func (m *material) SetTextureMap(channel MapChannel, tex *TextureMap) {
	if tex == nil {
		delete(m.textureMaps, channel)
	} else {
		m.textureMaps[channel] = tex
	}
	m.key.SetMapChannel(channel, tex != nil)
}

func (m *material) TextureMaps() map[MapChannel]*TextureMap {
	out := make(map[MapChannel]*TextureMap, len(m.textureMaps))
	for c, t := range m.textureMaps {
		out[c] = t
	}
	return out
}

// ShininessToRoughness converts a legacy shininess exponent to the PBR
// roughness equivalent.
//
// Parameters:
//   - shininess: the legacy shininess value in [0,128]
//
// Returns:
//   - float32: the equivalent roughness factor
func ShininessToRoughness(shininess float32) float32 {
	return 1.0 - shininess/128.0
}
