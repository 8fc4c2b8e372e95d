package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func identityMatrix() []float32 {
	m := make([]float32, 16)
	Identity(m)
	return m
}

func TestIdentityFrustumIsTheClipCube(t *testing.T) {
	f := ExtractFrustumFromMatrix(identityMatrix())

	assert.True(t, f.ContainsBound(Bound{Center: [3]float32{0, 0, 0}, Radius: 0.5}))
	assert.True(t, f.ContainsBound(Bound{Center: [3]float32{0.9, -0.9, 0.9}, Radius: 0.05}))

	// Fully outside one plane on each axis.
	assert.False(t, f.ContainsBound(Bound{Center: [3]float32{2, 0, 0}, Radius: 0.5}))
	assert.False(t, f.ContainsBound(Bound{Center: [3]float32{0, -3, 0}, Radius: 0.5}))
	assert.False(t, f.ContainsBound(Bound{Center: [3]float32{0, 0, 4}, Radius: 0.5}))
}

func TestStraddlingBoundsAreKept(t *testing.T) {
	f := ExtractFrustumFromMatrix(identityMatrix())
	assert.True(t, f.ContainsBound(Bound{Center: [3]float32{1.4, 0, 0}, Radius: 0.5}))
	assert.False(t, f.ContainsBound(Bound{Center: [3]float32{1.6, 0, 0}, Radius: 0.5}))
}

func TestBoundContains(t *testing.T) {
	b := Bound{Center: [3]float32{1, 2, 3}, Radius: 2}
	assert.True(t, b.Contains([3]float32{1, 2, 3}))
	assert.True(t, b.Contains([3]float32{1, 4, 3}))
	assert.False(t, b.Contains([3]float32{1, 4.1, 3}))

	assert.True(t, b.Expanded(1).Contains([3]float32{1, 5, 3}))
}

func TestDistanceSquared3(t *testing.T) {
	assert.InDelta(t, 25.0, DistanceSquared3([3]float32{0, 3, 0}, [3]float32{4, 0, 0}), 1e-5)
	assert.InDelta(t, 5.0, Length3([3]float32{3, 4, 0}), 1e-5)
}
