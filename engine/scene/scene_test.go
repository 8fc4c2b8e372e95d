package scene

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opaqueItem(x float32) Item {
	return NewItem(
		WithKind(KindShape),
		WithMaterial(material.NewMaterial(material.WithAlbedoColor([3]float32{1, 1, 1}))),
		WithBound(common.Bound{Center: [3]float32{x, 0, 0}, Radius: 1}),
	)
}

func transparentItem(x float32) Item {
	return NewItem(
		WithKind(KindShape),
		WithMaterial(material.NewMaterial(
			material.WithAlbedoColor([3]float32{1, 1, 1}),
			material.WithOpacity(0.5),
		)),
		WithBound(common.Bound{Center: [3]float32{x, 0, 0}, Radius: 1}),
	)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := NewScene("test")

	a := s.Add(opaqueItem(0))
	b := s.Add(opaqueItem(1))
	assert.Equal(t, ItemID(1), a)
	assert.Equal(t, ItemID(2), b)
	assert.Equal(t, 2, s.Count())

	// An item arriving with an ID keeps it.
	it := opaqueItem(2)
	it.SetID(99)
	assert.Equal(t, ItemID(99), s.Add(it))
	assert.Same(t, it, s.Item(99))
}

func TestRemoveUnregistersItem(t *testing.T) {
	s := NewScene("test")
	id := s.Add(opaqueItem(0))

	s.Remove(id)
	assert.Nil(t, s.Item(id))
	assert.Zero(t, s.Count())

	// Removing an unknown ID is a no-op.
	s.Remove(ItemID(12345))
}

func TestFetchItemsReturnsAscendingIDs(t *testing.T) {
	s := NewScene("test")
	for i := 0; i < 50; i++ {
		s.Add(opaqueItem(float32(i)))
	}

	got := s.FetchItems(OpaqueShapeFilter())
	require.Len(t, got, 50)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}

	// A fixed item set always yields the same candidate list.
	assert.Equal(t, got, s.FetchItems(OpaqueShapeFilter()))
}

func TestOpaqueShapeFilterExcludes(t *testing.T) {
	s := NewScene("test")
	opaque := s.Add(opaqueItem(0))
	s.Add(transparentItem(1))
	s.Add(NewItem(WithKind(KindLight)))
	s.Add(NewItem(WithKind(KindBackground)))
	s.Add(NewItem(WithKind(KindShape), WithLayered(),
		WithMaterial(material.NewMaterial(material.WithAlbedoColor([3]float32{1, 1, 1})))))

	got := s.FetchItems(OpaqueShapeFilter())
	require.Len(t, got, 1)
	assert.Equal(t, opaque, got[0].ID)
}

func TestKindAndLayeredFilters(t *testing.T) {
	s := NewScene("test")
	s.Add(opaqueItem(0))
	light := s.Add(NewItem(WithKind(KindLight)))
	background := s.Add(NewItem(WithKind(KindBackground)))
	layered := s.Add(NewItem(WithKind(KindShape), WithLayered()))

	lights := s.FetchItems(LightFilter())
	require.Len(t, lights, 1)
	assert.Equal(t, light, lights[0].ID)

	backgrounds := s.FetchItems(BackgroundFilter())
	require.Len(t, backgrounds, 1)
	assert.Equal(t, background, backgrounds[0].ID)

	layeredShapes := s.FetchItems(LayeredShapeFilter())
	require.Len(t, layeredShapes, 1)
	assert.Equal(t, layered, layeredShapes[0].ID)
}

func TestItemKeyFallsBackToZero(t *testing.T) {
	it := NewItem(WithKind(KindLight))
	assert.Nil(t, it.Material())
	assert.Equal(t, material.Key{}, it.Key())
}

func TestWithItemsSeedsScene(t *testing.T) {
	a := opaqueItem(0)
	b := opaqueItem(1)
	s := NewScene("seeded", WithItems(a, b))

	assert.Equal(t, 2, s.Count())
	assert.Same(t, a, s.Item(a.ID()))
	assert.Same(t, b, s.Item(b.ID()))
}
