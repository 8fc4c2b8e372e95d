package material

// FilterOption is a function that adds one trait constraint to a Filter
// during construction.
type FilterOption func(*Filter)

// require constrains one bit to the given setting.
func (f *Filter) require(bit FlagBit, present bool) {
	f.mask.Set(bit, true)
	f.value.Set(bit, present)
}

// WithEmissiveValue is an option builder requiring the emissive value trait present.
func WithEmissiveValue() FilterOption {
	return func(f *Filter) { f.require(EmissiveValBit, true) }
}

// WithoutEmissiveValue is an option builder requiring the emissive value trait absent.
func WithoutEmissiveValue() FilterOption {
	return func(f *Filter) { f.require(EmissiveValBit, false) }
}

// WithAlbedoValue is an option builder requiring the albedo value trait present.
func WithAlbedoValue() FilterOption {
	return func(f *Filter) { f.require(AlbedoValBit, true) }
}

// WithoutAlbedoValue is an option builder requiring the albedo value trait absent.
func WithoutAlbedoValue() FilterOption {
	return func(f *Filter) { f.require(AlbedoValBit, false) }
}

// WithMetallicValue is an option builder requiring the metallic value trait present.
func WithMetallicValue() FilterOption {
	return func(f *Filter) { f.require(MetallicValBit, true) }
}

// WithoutMetallicValue is an option builder requiring the metallic value trait absent.
func WithoutMetallicValue() FilterOption {
	return func(f *Filter) { f.require(MetallicValBit, false) }
}

// WithGlossValue is an option builder requiring the gloss value trait present.
func WithGlossValue() FilterOption {
	return func(f *Filter) { f.require(GlossValBit, true) }
}

// WithoutGlossValue is an option builder requiring the gloss value trait absent.
func WithoutGlossValue() FilterOption {
	return func(f *Filter) { f.require(GlossValBit, false) }
}

// WithTransparency is an option builder requiring the transparency trait present.
func WithTransparency() FilterOption {
	return func(f *Filter) { f.require(TransparentValBit, true) }
}

// WithoutTransparency is an option builder requiring the transparency trait absent.
func WithoutTransparency() FilterOption {
	return func(f *Filter) { f.require(TransparentValBit, false) }
}

// WithMapOn is an option builder requiring a texture map present on the channel.
// Panics if the channel is outside the declared channel count.
//
// Parameters:
//   - channel: the texture channel to constrain
//
// Returns:
//   - FilterOption: a function that applies the constraint to a filter
func WithMapOn(channel MapChannel) FilterOption {
	return func(f *Filter) { f.require(channel.bit(), true) }
}

// WithoutMapOn is an option builder requiring no texture map on the channel.
// Panics if the channel is outside the declared channel count.
//
// Parameters:
//   - channel: the texture channel to constrain
//
// Returns:
//   - FilterOption: a function that applies the constraint to a filter
func WithoutMapOn(channel MapChannel) FilterOption {
	return func(f *Filter) { f.require(channel.bit(), false) }
}

// FilterOpaqueAlbedo is the canonical "opaque with albedo" filter: albedo
// value required present, transparency required absent.
//
// Returns:
//   - Filter: the canonical filter
func FilterOpaqueAlbedo() Filter {
	return NewFilter(WithAlbedoValue(), WithoutTransparency())
}

// FilterOpaqueWithoutAlbedo is the canonical filter for opaque materials
// carrying no albedo value.
//
// Returns:
//   - Filter: the canonical filter
func FilterOpaqueWithoutAlbedo() Filter {
	return NewFilter(WithoutAlbedoValue(), WithoutTransparency())
}

// FilterTransparent is the canonical filter for transparent materials.
//
// Returns:
//   - Filter: the canonical filter
func FilterTransparent() Filter {
	return NewFilter(WithTransparency())
}

// StandardFilters returns the canonical filter set used for bucket
// pre-allocation. The three filters are mutually distinguishing and
// partition the whole key space: every key is transparent, opaque with
// albedo, or opaque without albedo, so every key matches exactly one.
//
// Returns:
//   - []Filter: the canonical filters
func StandardFilters() []Filter {
	return []Filter{
		FilterOpaqueAlbedo(),
		FilterOpaqueWithoutAlbedo(),
		FilterTransparent(),
	}
}
