package spatialmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Orientable is a rotation. It is implemented by exactly two types: *Rotation2D, a planar rotation
// about the z axis, and *Quaternion, a 3D unit quaternion. Frame code is written against this
// interface once; only the variant decides how the math is done.
type Orientable interface {
	// Compose rotates the receiver by other in place: this = this ∘ other.
	Compose(other Orientable)
	// Inverse returns a new Orientable undoing the receiver. The receiver is unchanged.
	Inverse() Orientable
	// Negate inverts the receiver in place.
	Negate()

	// Rotate returns v rotated by the receiver.
	Rotate(v r3.Vector) r3.Vector
	// InverseRotate returns v rotated by the inverse of the receiver.
	InverseRotate(v r3.Vector) r3.Vector

	// Matrix returns a 4x4 matrix whose upper 3x3 block is the rotation. Translation is zero.
	Matrix() Matrix4
	// InverseMatrix is Matrix of the inverse rotation.
	InverseMatrix() Matrix4
	// FromMatrix sets the receiver from the upper 3x3 block of m, which must be a rotation.
	FromMatrix(m Matrix4)
	// RotationMatrix returns the 3x3 rotation matrix.
	RotationMatrix() mgl64.Mat3
	// FromRotationMatrix sets the receiver from a 3x3 rotation matrix.
	FromRotationMatrix(m mgl64.Mat3)

	// Normalize puts the receiver in canonical form. Calling it twice has no further effect.
	Normalize()
	// FromTo sets the receiver to the rotation that turns from onto to. Degenerate inputs give the identity.
	FromTo(from, to r3.Vector)

	// Angle is the rotation angle in radians.
	Angle() float64
	// Clone returns an independent copy.
	Clone() Orientable
	// Is3D is true for quaternions.
	Is3D() bool

	isOrientable()
}

// Compose returns a new Orientable equal to a ∘ b. Neither argument is modified.
func Compose(a, b Orientable) Orientable {
	res := a.Clone()
	res.Compose(b)
	return res
}

// IdentityLike returns the identity rotation of the same variant as o.
func IdentityLike(o Orientable) Orientable {
	if o.Is3D() {
		return NewQuaternion()
	}
	return NewRotation2D(0)
}

// OrientableAlmostEqual reports whether a and b describe the same rotation within epsilon. Quaternions
// q and -q compare equal.
func OrientableAlmostEqual(a, b Orientable, epsilon float64) bool {
	switch av := a.(type) {
	case *Quaternion:
		bv, ok := b.(*Quaternion)
		return ok && QuaternionRotationAlmostEqual(av.Number(), bv.Number(), epsilon)
	case *Rotation2D:
		bv, ok := b.(*Rotation2D)
		return ok && Rotation2DAlmostEqual(*av, *bv, epsilon)
	default:
		return false
	}
}

func mismatchedVariant(want string, got Orientable) string {
	return fmt.Sprintf("cannot combine %s with %T: rotation variants must match", want, got)
}
