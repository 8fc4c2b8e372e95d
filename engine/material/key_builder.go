package material

// KeyOption is a function that configures a Key during construction.
type KeyOption func(*Key)

// WithEmissive is an option builder that marks the emissive value trait.
func WithEmissive() KeyOption {
	return func(k *Key) {
		k.SetEmissive(true)
	}
}

// WithAlbedo is an option builder that marks the albedo value trait.
func WithAlbedo() KeyOption {
	return func(k *Key) {
		k.SetAlbedo(true)
	}
}

// WithMetallic is an option builder that marks the metallic value trait.
func WithMetallic() KeyOption {
	return func(k *Key) {
		k.SetMetallic(true)
	}
}

// WithGloss is an option builder that marks the gloss value trait.
func WithGloss() KeyOption {
	return func(k *Key) {
		k.SetGloss(true)
	}
}

// WithTransparent is an option builder that marks the transparency trait.
func WithTransparent() KeyOption {
	return func(k *Key) {
		k.SetTransparent(true)
	}
}

// WithMap is an option builder that marks the has-map trait for a channel.
//
// Parameters:
//   - channel: the texture channel to mark as mapped
//
// Returns:
//   - KeyOption: a function that applies the map option to a key
func WithMap(channel MapChannel) KeyOption {
	return func(k *Key) {
		k.SetMapChannel(channel, true)
	}
}

// OpaqueAlbedoKey is a convenient standard key used all over the place:
// an opaque material carrying an albedo value.
//
// Returns:
//   - Key: the standard opaque-albedo key
func OpaqueAlbedoKey() Key {
	return NewKey(WithAlbedo())
}
