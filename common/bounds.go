package common

// Bound is a bounding sphere used as the coarse bounding volume for scene
// items flowing through the render pipeline. Items are culled and
// depth-sorted against their Bound without ever touching their geometry.
type Bound struct {
	// Center is the world-space center of the bounding sphere.
	Center [3]float32
	// Radius is the sphere radius. A zero radius describes a point bound.
	Radius float32
}

// Contains reports whether the given point lies inside the bound.
//
// Parameters:
//   - point: the world-space point to test
//
// Returns:
//   - bool: true if the point is inside or on the sphere
func (b Bound) Contains(point [3]float32) bool {
	return DistanceSquared3(b.Center, point) <= b.Radius*b.Radius
}

// Expanded returns a copy of the bound grown by the given margin.
//
// Parameters:
//   - margin: the amount to add to the radius
//
// Returns:
//   - Bound: the expanded bound
func (b Bound) Expanded(margin float32) Bound {
	return Bound{Center: b.Center, Radius: b.Radius + margin}
}
