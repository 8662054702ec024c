package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go.viam.com/frames/utils"
)

// Rotation2D is a planar rotation of Theta radians about the z axis.
type Rotation2D struct {
	Theta float64
}

// NewRotation2D returns a rotation by theta radians, normalized onto [0, 2π).
func NewRotation2D(theta float64) *Rotation2D {
	r := &Rotation2D{theta}
	r.Normalize()
	return r
}

// NewRotation2DFromTo returns the planar rotation turning from onto to.
func NewRotation2DFromTo(from, to r3.Vector) *Rotation2D {
	r := &Rotation2D{}
	r.FromTo(from, to)
	return r
}

func (r *Rotation2D) isOrientable() {}

// Is3D is false for planar rotations.
func (r *Rotation2D) Is3D() bool {
	return false
}

// Angle returns Theta.
func (r *Rotation2D) Angle() float64 {
	return r.Theta
}

// Clone returns an independent copy.
func (r *Rotation2D) Clone() Orientable {
	return &Rotation2D{r.Theta}
}

// Compose adds the angle of other, which must also be a *Rotation2D.
func (r *Rotation2D) Compose(other Orientable) {
	o, ok := other.(*Rotation2D)
	if !ok {
		panic(mismatchedVariant("Rotation2D", other))
	}
	r.Theta = utils.WrapAngle(r.Theta + o.Theta)
}

// Inverse returns the rotation by -Theta.
func (r *Rotation2D) Inverse() Orientable {
	return NewRotation2D(-r.Theta)
}

// Negate turns r into its inverse.
func (r *Rotation2D) Negate() {
	r.Theta = utils.WrapAngle(-r.Theta)
}

// Normalize wraps Theta onto [0, 2π).
func (r *Rotation2D) Normalize() {
	r.Theta = utils.WrapAngle(r.Theta)
}

// Rotate rotates the x and y components of v. z is left alone.
func (r *Rotation2D) Rotate(v r3.Vector) r3.Vector {
	s, c := math.Sincos(r.Theta)
	return r3.Vector{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

// InverseRotate rotates v by -Theta.
func (r *Rotation2D) InverseRotate(v r3.Vector) r3.Vector {
	s, c := math.Sincos(r.Theta)
	return r3.Vector{X: c*v.X + s*v.Y, Y: -s*v.X + c*v.Y, Z: v.Z}
}

// RotationMatrix returns the rotation about z as a 3x3 matrix.
func (r *Rotation2D) RotationMatrix() mgl64.Mat3 {
	return mgl64.Rotate3DZ(r.Theta)
}

// FromRotationMatrix reads the angle from the upper 2x2 block of m.
func (r *Rotation2D) FromRotationMatrix(m mgl64.Mat3) {
	r.Theta = utils.WrapAngle(math.Atan2(m.At(1, 0), m.At(0, 0)))
}

// Matrix returns the homogeneous rotation about z.
func (r *Rotation2D) Matrix() Matrix4 {
	return NewMatrix4FromRotationMatrix(r.RotationMatrix())
}

// InverseMatrix returns the homogeneous rotation by -Theta.
func (r *Rotation2D) InverseMatrix() Matrix4 {
	return NewMatrix4FromRotationMatrix(mgl64.Rotate3DZ(-r.Theta))
}

// FromMatrix reads the angle from the upper 2x2 block of m.
func (r *Rotation2D) FromMatrix(m Matrix4) {
	r.FromRotationMatrix(m.RotationBlock())
}

// FromTo sets r to the rotation turning the xy projection of from onto that of to. If either
// projection is (almost) zero, r becomes the identity.
func (r *Rotation2D) FromTo(from, to r3.Vector) {
	if utils.Square(from.X)+utils.Square(from.Y) < Epsilon || utils.Square(to.X)+utils.Square(to.Y) < Epsilon {
		r.Theta = 0
		return
	}
	r.Theta = utils.WrapAngle(math.Atan2(to.Y, to.X) - math.Atan2(from.Y, from.X))
}

// Rotation2DAlmostEqual compares two planar rotations modulo a full turn.
func Rotation2DAlmostEqual(a, b Rotation2D, epsilon float64) bool {
	return math.Abs(utils.AngleDiff(a.Theta, b.Theta)) < epsilon
}
