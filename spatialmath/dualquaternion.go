package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// DualQuaternion is a rigid transform (rotation then translation) stored as a unit dual quaternion.
type DualQuaternion struct {
	dualquat.Number
}

// NewDualQuaternion returns a pointer to a new DualQuaternion object whose Quaternion is an identity Quaternion.
// Since the real part of a qual quaternion should be a unit quaternion, not all zeroes, this should be used
// instead of &DualQuaternion{}.
func NewDualQuaternion() *DualQuaternion {
	return &DualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// NewDualQuaternionFromPose returns the transform that rotates by rotation and then translates by translation.
func NewDualQuaternionFromPose(translation r3.Vector, rotation *Quaternion) *DualQuaternion {
	q := NewDualQuaternion()
	q.Real = NewQuaternionFromNumber(rotation.Number()).Number()
	q.SetTranslation(translation)
	return q
}

// Clone returns a DualQuaternion object identical to this one.
func (q *DualQuaternion) Clone() *DualQuaternion {
	// No need for deep copies here, dualquats are primitives all the way down
	return &DualQuaternion{q.Number}
}

// Rotation returns the rotation quaternion.
func (q *DualQuaternion) Rotation() *Quaternion {
	return NewQuaternionFromNumber(q.Real)
}

// Translation returns the translation, recovered as 2 * dual * conj(real).
func (q *DualQuaternion) Translation() r3.Vector {
	t := quat.Scale(2, quat.Mul(q.Dual, quat.Conj(q.Real)))
	return r3.Vector{X: t.Imag, Y: t.Jmag, Z: t.Kmag}
}

// SetTranslation correctly sets the translation quaternion against the rotation.
func (q *DualQuaternion) SetTranslation(t r3.Vector) {
	q.Dual = quat.Mul(quat.Number{Imag: t.X / 2, Jmag: t.Y / 2, Kmag: t.Z / 2}, q.Real)
}

// Transformation multiplies the dual quat contained in this DualQuaternion by another dual quat.
func (q *DualQuaternion) Transformation(by dualquat.Number) dualquat.Number {
	// Ensure we are multiplying by a unit dual quaternion. A degenerate real part stands for the identity.
	switch vecLen := quat.Abs(by.Real); {
	case vecLen < Epsilon:
		by = NewDualQuaternion().Number
	case vecLen != 1:
		by.Real = quat.Scale(1/vecLen, by.Real)
	}

	return dualquat.Mul(q.Number, by)
}

// TransformPoint applies the rigid transform to p.
func (q *DualQuaternion) TransformPoint(p r3.Vector) r3.Vector {
	return q.Rotation().Rotate(p).Add(q.Translation())
}
