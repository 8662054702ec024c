package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An R4 axis angle is a unit axis (RX, RY, RZ) and a rotation Theta about it. Its R3 form is the axis scaled
// by Theta.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA returns the identity rotation: no turn about the z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// Axis returns the rotation axis.
func (r4 *R4AA) Axis() r3.Vector {
	return r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}
}

// Quaternion converts the axis angle to a unit quaternion. It panics on a zero axis.
func (r4 *R4AA) Quaternion() *Quaternion {
	r4.Normalize()
	s, c := math.Sincos(r4.Theta / 2)
	return &Quaternion{Real: c, Imag: r4.RX * s, Jmag: r4.RY * s, Kmag: r4.RZ * s}
}

// ToR3 converts an R4 angle axis to R3.
func (r4 *R4AA) ToR3() r3.Vector {
	return r4.Axis().Mul(r4.Theta)
}

// Normalize scales the axis onto the unit sphere.
func (r4 *R4AA) Normalize() {
	norm := r4.Axis().Norm()
	if norm == 0.0 { // prevent division by 0
		panic("cannot normalize R4AA, divide by zero")
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
}

// fixOrientation keeps Theta positive by flipping the axis.
func (r4 *R4AA) fixOrientation() {
	if r4.Theta < 0.0 {
		r4.Theta *= -1.
		r4.RX *= -1.
		r4.RY *= -1.
		r4.RZ *= -1.
	}
}

// R3ToR4 converts an R3 angle axis to R4. The zero vector is the identity.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta < Epsilon {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}

// AxisAngle returns q as an axis angle with Theta in [0, π]. The identity turns about z.
func (q *Quaternion) AxisAngle() *R4AA {
	axis := q.Axis()
	if axis.Norm2() < Epsilon {
		return NewR4AA()
	}
	r4 := &R4AA{Theta: q.Angle(), RX: axis.X, RY: axis.Y, RZ: axis.Z}
	r4.fixOrientation()
	return r4
}
