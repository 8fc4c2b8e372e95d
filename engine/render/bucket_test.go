package render

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBucketsAcceptEveryKey(t *testing.T) {
	var m ItemMaterialBucketMap
	m.AllocateStandardMaterialBuckets()
	require.Equal(t, 3, m.Len())

	keys := []material.Key{
		{},
		material.OpaqueAlbedoKey(),
		material.NewKey(material.WithAlbedo(), material.WithTransparent()),
		material.NewKey(material.WithTransparent()),
		material.NewKey(material.WithMetallic(), material.WithGloss()),
	}
	for i, k := range keys {
		assert.True(t, m.Insert(scene.ItemID(i+1), k), "key %v must land in a bucket", k)
	}

	assert.Equal(t, len(keys), m.Size())
	assert.Zero(t, m.Dropped())
	assert.Len(t, m.Bucket(material.FilterOpaqueAlbedo()), 1)
	assert.Len(t, m.Bucket(material.FilterOpaqueWithoutAlbedo()), 2)
	assert.Len(t, m.Bucket(material.FilterTransparent()), 2)
}

func TestInsertDropsUnmatchedKeys(t *testing.T) {
	var m ItemMaterialBucketMap
	m.AddBucket(material.FilterOpaqueAlbedo())

	assert.True(t, m.Insert(1, material.OpaqueAlbedoKey()))
	assert.False(t, m.Insert(2, material.NewKey(material.WithTransparent())))
	assert.False(t, m.Insert(3, material.NewKey(material.WithTransparent())))

	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 2, m.Dropped())
}

func TestBucketOrderIndependentOfRegistration(t *testing.T) {
	var a, b ItemMaterialBucketMap
	a.AddBucket(material.FilterOpaqueAlbedo())
	a.AddBucket(material.FilterTransparent())
	a.AddBucket(material.FilterOpaqueWithoutAlbedo())

	b.AddBucket(material.FilterTransparent())
	b.AddBucket(material.FilterOpaqueWithoutAlbedo())
	b.AddBucket(material.FilterOpaqueAlbedo())

	assert.Equal(t, a.Filters(), b.Filters())
}

func TestAddBucketIgnoresDuplicates(t *testing.T) {
	var m ItemMaterialBucketMap
	m.AddBucket(material.FilterTransparent())
	m.AddBucket(material.FilterTransparent())
	assert.Equal(t, 1, m.Len())
}

func TestBucketPreservesInsertionOrder(t *testing.T) {
	var m ItemMaterialBucketMap
	m.AllocateStandardMaterialBuckets()

	ids := []scene.ItemID{5, 2, 9, 1}
	for _, id := range ids {
		m.Insert(id, material.OpaqueAlbedoKey())
	}
	assert.Equal(t, ids, m.Bucket(material.FilterOpaqueAlbedo()))
}

func TestResetKeepsBucketsClearsContents(t *testing.T) {
	var m ItemMaterialBucketMap
	m.AddBucket(material.FilterOpaqueAlbedo())
	m.Insert(1, material.OpaqueAlbedoKey())
	m.Insert(2, material.NewKey(material.WithTransparent()))

	m.Reset()
	assert.Equal(t, 1, m.Len())
	assert.Zero(t, m.Size())
	assert.Zero(t, m.Dropped())
	assert.Empty(t, m.Bucket(material.FilterOpaqueAlbedo()))
}

func TestBucketUnknownFilterIsNil(t *testing.T) {
	var m ItemMaterialBucketMap
	m.AllocateStandardMaterialBuckets()
	assert.Nil(t, m.Bucket(material.NewFilter(material.WithMetallicValue())))
}

func TestEachVisitsBucketsInOrder(t *testing.T) {
	var m ItemMaterialBucketMap
	m.AllocateStandardMaterialBuckets()

	var visited []material.Filter
	m.Each(func(f material.Filter, _ []scene.ItemID) {
		visited = append(visited, f)
	})
	assert.Equal(t, m.Filters(), visited)
}
