// package material implements the trait classification model for the render
// pipeline: a MaterialKey is a coarse bit-vector description of which
// surface traits and texture channels a material carries, and a
// MaterialFilter is a mask/value predicate over those bits used to bucket
// and route items through the draw stages.
package material

import "fmt"

// FlagBit identifies one trait bit in a Key's flag vector.
type FlagBit uint32

// Trait bits. The five value bits record that the material carries an
// authored attribute value; the map bits record that a texture map is bound
// on the corresponding channel.
const (
	EmissiveValBit FlagBit = iota
	AlbedoValBit
	MetallicValBit
	GlossValBit
	TransparentValBit

	EmissiveMapBit
	AlbedoMapBit
	MetallicMapBit
	GlossMapBit
	TransparentMapBit
	NormalMapBit
	LightmapMapBit

	NumFlags
)

// Flags is the packed trait bit vector shared by Key and Filter.
type Flags uint32

// Has reports whether the given bit is set.
//
// Parameters:
//   - bit: the trait bit to test
//
// Returns:
//   - bool: true if the bit is set
func (f Flags) Has(bit FlagBit) bool {
	return f&(1<<bit) != 0
}

// Set sets or clears the given bit.
//
// Parameters:
//   - bit: the trait bit to modify
//   - value: true to set the bit, false to clear it
func (f *Flags) Set(bit FlagBit, value bool) {
	if value {
		*f |= 1 << bit
	} else {
		*f &^= 1 << bit
	}
}

// MapChannel enumerates the texture channels a material can bind a map on.
type MapChannel int

const (
	EmissiveMap MapChannel = iota
	AlbedoMap
	MetallicMap
	GlossMap
	TransparentMap
	NormalMap
	LightmapMap

	NumMapChannels
)

// mapChannelBits is the total channel→bit lookup table. Every MapChannel has
// exactly one entry; channel addressing never goes through offset arithmetic.
var mapChannelBits = [NumMapChannels]FlagBit{
	EmissiveMap:    EmissiveMapBit,
	AlbedoMap:      AlbedoMapBit,
	MetallicMap:    MetallicMapBit,
	GlossMap:       GlossMapBit,
	TransparentMap: TransparentMapBit,
	NormalMap:      NormalMapBit,
	LightmapMap:    LightmapMapBit,
}

func init() {
	// The table must map every channel to a distinct in-range flag bit.
	seen := map[FlagBit]MapChannel{}
	for c, bit := range mapChannelBits {
		if bit >= NumFlags {
			panic(fmt.Sprintf("material: map channel %d mapped to out-of-range bit %d", c, bit))
		}
		if prev, dup := seen[bit]; dup {
			panic(fmt.Sprintf("material: map channels %d and %d share bit %d", prev, c, bit))
		}
		seen[bit] = MapChannel(c)
	}
}

// bit resolves the flag bit backing a map channel.
// Panics if the channel is outside the declared channel count.
func (c MapChannel) bit() FlagBit {
	if c < 0 || c >= NumMapChannels {
		panic(fmt.Sprintf("material: map channel %d out of range [0,%d)", c, NumMapChannels))
	}
	return mapChannelBits[c]
}

// String returns a readable channel name for diagnostics.
func (c MapChannel) String() string {
	switch c {
	case EmissiveMap:
		return "emissive"
	case AlbedoMap:
		return "albedo"
	case MetallicMap:
		return "metallic"
	case GlossMap:
		return "gloss"
	case TransparentMap:
		return "transparent"
	case NormalMap:
		return "normal"
	case LightmapMap:
		return "lightmap"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Key is a coarse trait description of a material, used to classify items
// into draw buckets. Keys are plain value types; copies are independent and
// safe to share across goroutines once handed off.
type Key struct {
	flags Flags
}

// NewKey creates a Key configured with the provided options.
//
// Parameters:
//   - options: variadic list of KeyOption functions to configure the key
//
// Returns:
//   - Key: the configured key
func NewKey(options ...KeyOption) Key {
	var k Key
	for _, opt := range options {
		opt(&k)
	}
	return k
}

// Flags returns the raw packed trait bits. The signature of a key is its flags.
//
// Returns:
//   - Flags: the packed bit vector
func (k Key) Flags() Flags {
	return k.flags
}

// SetEmissive sets or clears the emissive value trait.
func (k *Key) SetEmissive(value bool) { k.flags.Set(EmissiveValBit, value) }

// IsEmissive reports whether the emissive value trait is set.
func (k Key) IsEmissive() bool { return k.flags.Has(EmissiveValBit) }

// SetAlbedo sets or clears the albedo value trait.
func (k *Key) SetAlbedo(value bool) { k.flags.Set(AlbedoValBit, value) }

// IsAlbedo reports whether the albedo value trait is set.
func (k Key) IsAlbedo() bool { return k.flags.Has(AlbedoValBit) }

// SetMetallic sets or clears the metallic value trait.
func (k *Key) SetMetallic(value bool) { k.flags.Set(MetallicValBit, value) }

// IsMetallic reports whether the metallic value trait is set.
func (k Key) IsMetallic() bool { return k.flags.Has(MetallicValBit) }

// SetGloss sets or clears the gloss value trait.
func (k *Key) SetGloss(value bool) { k.flags.Set(GlossValBit, value) }

// IsGloss reports whether the gloss value trait is set.
func (k Key) IsGloss() bool { return k.flags.Has(GlossValBit) }

// SetTransparent sets or clears the transparency trait.
func (k *Key) SetTransparent(value bool) { k.flags.Set(TransparentValBit, value) }

// IsTransparent reports whether the transparency trait is set.
func (k Key) IsTransparent() bool { return k.flags.Has(TransparentValBit) }

// IsOpaque reports whether the transparency trait is clear.
func (k Key) IsOpaque() bool { return !k.flags.Has(TransparentValBit) }

// SetMapChannel sets or clears the has-map trait for a texture channel.
// Panics if the channel is outside the declared channel count.
//
// Parameters:
//   - channel: the texture channel
//   - value: true if a map is bound on the channel
func (k *Key) SetMapChannel(channel MapChannel, value bool) {
	k.flags.Set(channel.bit(), value)
}

// IsMapChannel reports whether a map is bound on the given texture channel.
// Panics if the channel is outside the declared channel count.
//
// Parameters:
//   - channel: the texture channel
//
// Returns:
//   - bool: true if the channel's map bit is set
func (k Key) IsMapChannel(channel MapChannel) bool {
	return k.flags.Has(channel.bit())
}

// String renders the key's flag vector for diagnostics.
func (k Key) String() string {
	return fmt.Sprintf("Key(%012b)", uint32(k.flags))
}
