package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyTraitBitsIndependent(t *testing.T) {
	var k Key
	assert.True(t, k.IsOpaque())

	k.SetAlbedo(true)
	k.SetMetallic(true)
	assert.True(t, k.IsAlbedo())
	assert.True(t, k.IsMetallic())
	assert.False(t, k.IsEmissive())
	assert.False(t, k.IsGloss())
	assert.True(t, k.IsOpaque())

	k.SetTransparent(true)
	assert.True(t, k.IsTransparent())
	assert.False(t, k.IsOpaque())
	assert.True(t, k.IsAlbedo(), "setting transparency must not disturb other bits")

	k.SetAlbedo(false)
	assert.False(t, k.IsAlbedo())
	assert.True(t, k.IsMetallic())
}

func TestKeyMapChannelsAreIsolated(t *testing.T) {
	var k Key
	k.SetMapChannel(NormalMap, true)

	assert.True(t, k.IsMapChannel(NormalMap))
	for c := EmissiveMap; c < NumMapChannels; c++ {
		if c == NormalMap {
			continue
		}
		assert.False(t, k.IsMapChannel(c), "channel %s should be clear", c)
	}
	// Map bits live above the value bits and never alias them.
	assert.False(t, k.IsEmissive())
	assert.False(t, k.IsAlbedo())
	assert.True(t, k.IsOpaque())

	k.SetMapChannel(NormalMap, false)
	assert.Equal(t, Flags(0), k.Flags())
}

func TestKeyMapChannelOutOfRangePanics(t *testing.T) {
	var k Key
	assert.Panics(t, func() { k.SetMapChannel(NumMapChannels, true) })
	assert.Panics(t, func() { k.IsMapChannel(MapChannel(-1)) })
}

func TestKeyBuilderOptions(t *testing.T) {
	k := NewKey(WithAlbedo(), WithTransparent(), WithMap(LightmapMap))
	assert.True(t, k.IsAlbedo())
	assert.True(t, k.IsTransparent())
	assert.True(t, k.IsMapChannel(LightmapMap))

	ok := OpaqueAlbedoKey()
	assert.True(t, ok.IsAlbedo())
	assert.True(t, ok.IsOpaque())
}

func TestMaterialKeyTracksAuthoredValues(t *testing.T) {
	m := NewMaterial()
	require.Equal(t, Flags(0), m.Key().Flags(), "defaults must not mark traits")

	m.SetAlbedo([3]float32{1, 0, 0})
	assert.True(t, m.Key().IsAlbedo())

	m.SetOpacity(0.5)
	assert.True(t, m.Key().IsTransparent())
	m.SetOpacity(1.0)
	assert.True(t, m.Key().IsOpaque(), "restoring full opacity clears transparency")

	m.SetMetallic(0.8)
	assert.True(t, m.Key().IsMetallic())
	m.SetMetallic(0)
	assert.False(t, m.Key().IsMetallic())

	m.SetRoughness(0.25)
	assert.True(t, m.Key().IsGloss())

	m.SetEmissive([3]float32{0, 0, 0})
	assert.False(t, m.Key().IsEmissive(), "black emissive is no emissive")
	m.SetEmissive([3]float32{0, 2, 0})
	assert.True(t, m.Key().IsEmissive())
}

func TestMaterialTextureMapsDriveMapBits(t *testing.T) {
	m := NewMaterial()
	tex := &TextureMap{Name: "bricks_normal", Path: "textures/bricks_n.png"}

	m.SetTextureMap(NormalMap, tex)
	assert.True(t, m.Key().IsMapChannel(NormalMap))
	assert.Same(t, tex, m.TextureMap(NormalMap))

	m.SetTextureMap(NormalMap, nil)
	assert.False(t, m.Key().IsMapChannel(NormalMap))
	assert.Nil(t, m.TextureMap(NormalMap))
	assert.Empty(t, m.TextureMaps())
}

func TestShininessToRoughness(t *testing.T) {
	assert.InDelta(t, 1.0, ShininessToRoughness(0), 1e-6)
	assert.InDelta(t, 0.0, ShininessToRoughness(128), 1e-6)
	assert.InDelta(t, 0.5, ShininessToRoughness(64), 1e-6)
}
