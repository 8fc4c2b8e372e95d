// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/chewxy/math32"
)

// Sub3 subtracts two 3-component vectors.
//
// Parameters:
//   - a: left-hand vector
//   - b: right-hand vector
//
// Returns:
//   - [3]float32: the component-wise difference a - b
func Sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Dot3 computes the dot product of two 3-component vectors.
//
// Parameters:
//   - a: left-hand vector
//   - b: right-hand vector
//
// Returns:
//   - float32: the dot product
func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length3 computes the euclidean length of a 3-component vector.
//
// Parameters:
//   - v: the vector
//
// Returns:
//   - float32: the length of v
func Length3(v [3]float32) float32 {
	return math32.Sqrt(Dot3(v, v))
}

// DistanceSquared3 computes the squared distance between two points.
// Useful as a sort key when the actual distance is not needed, since it
// avoids the square root.
//
// Parameters:
//   - a: first point
//   - b: second point
//
// Returns:
//   - float32: the squared distance between a and b
func DistanceSquared3(a, b [3]float32) float32 {
	d := Sub3(a, b)
	return Dot3(d, d)
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}
