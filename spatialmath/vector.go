// Package spatialmath defines the rotation and matrix types used by reference frames: a 2D angle and a
// 3D unit quaternion behind one Orientable interface, 4x4 affine matrices and dual quaternions.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	// Epsilon is the tolerance under which a scalar or a squared norm is considered zero.
	Epsilon = 1e-10

	// OrthogonalRatio decides which component OrthogonalVector drops: a component is treated as the
	// smallest one when both others are at least this fraction of it.
	OrthogonalRatio = 0.9
)

// UnitScale is the neutral scaling vector.
var UnitScale = r3.Vector{X: 1, Y: 1, Z: 1}

// MulElem multiplies two vectors component by component.
func MulElem(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// DivElem divides a by b component by component. b must not have zero components.
func DivElem(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z}
}

// HasZeroComponent reports whether any component of v is within Epsilon of zero.
func HasZeroComponent(v r3.Vector) bool {
	return math.Abs(v.X) < Epsilon || math.Abs(v.Y) < Epsilon || math.Abs(v.Z) < Epsilon
}

// OrthogonalVector returns a vector orthogonal to v. The smallest-magnitude component is dropped
// and the remaining two are swapped with one negated, so the result is deterministic and never
// zero unless v is.
func OrthogonalVector(v r3.Vector) r3.Vector {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ay >= OrthogonalRatio*ax && az >= OrthogonalRatio*ax:
		return r3.Vector{X: 0, Y: -v.Z, Z: v.Y}
	case ax >= OrthogonalRatio*ay && az >= OrthogonalRatio*ay:
		return r3.Vector{X: -v.Z, Y: 0, Z: v.X}
	default:
		return r3.Vector{X: -v.Y, Y: v.X, Z: 0}
	}
}

// ProjectOnAxis projects v onto the line spanned by direction. A zero direction yields the zero vector.
func ProjectOnAxis(v, direction r3.Vector) r3.Vector {
	n2 := direction.Norm2()
	if n2 < Epsilon {
		return r3.Vector{}
	}
	return direction.Mul(v.Dot(direction) / n2)
}

// ProjectOnPlane projects v onto the plane through the origin with the given normal.
func ProjectOnPlane(v, normal r3.Vector) r3.Vector {
	return v.Sub(ProjectOnAxis(v, normal))
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}
