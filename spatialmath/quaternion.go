package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/frames/utils"
)

// Quaternion is a 3D rotation stored as a unit quaternion. Real is w; Imag, Jmag and Kmag are x, y and z.
type Quaternion quat.Number

// NewQuaternion returns the identity rotation.
func NewQuaternion() *Quaternion {
	return &Quaternion{Real: 1}
}

// NewQuaternionFromNumber copies q and normalizes it.
func NewQuaternionFromNumber(q quat.Number) *Quaternion {
	res := Quaternion(q)
	res.Normalize()
	return &res
}

// NewQuaternionFromAxisAngle returns the rotation of angle radians about axis. A zero axis gives the identity.
func NewQuaternionFromAxisAngle(axis r3.Vector, angle float64) *Quaternion {
	q := &Quaternion{}
	q.FromAxisAngle(axis, angle)
	return q
}

// NewQuaternionFromTo returns the shortest rotation turning from onto to.
func NewQuaternionFromTo(from, to r3.Vector) *Quaternion {
	q := &Quaternion{}
	q.FromTo(from, to)
	return q
}

// NewQuaternionFromRotationMatrix converts a 3x3 rotation matrix.
func NewQuaternionFromRotationMatrix(m mgl64.Mat3) *Quaternion {
	q := &Quaternion{}
	q.FromRotationMatrix(m)
	return q
}

// NewQuaternionFromEulerAngles builds the rotation yaw about z, then pitch about y, then roll about x
// (intrinsic z-y'-x'', the same convention EulerAngles returns).
func NewQuaternionFromEulerAngles(roll, pitch, yaw float64) *Quaternion {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	return NewQuaternionFromNumber(quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	})
}

// NewQuaternionFromRotatedBasis returns the rotation that maps the world axes onto x, y and z, which
// must form an orthogonal basis. They are normalized first.
func NewQuaternionFromRotatedBasis(x, y, z r3.Vector) *Quaternion {
	q := &Quaternion{}
	q.FromRotatedBasis(x, y, z)
	return q
}

func (q *Quaternion) isOrientable() {}

// Number returns q as a gonum quaternion.
func (q *Quaternion) Number() quat.Number {
	return quat.Number(*q)
}

// Is3D is true for quaternions.
func (q *Quaternion) Is3D() bool {
	return true
}

// Clone returns an independent copy.
func (q *Quaternion) Clone() Orientable {
	res := *q
	return &res
}

// Compose sets q to q * other and renormalizes to absorb drift. other must be a *Quaternion.
func (q *Quaternion) Compose(other Orientable) {
	o, ok := other.(*Quaternion)
	if !ok {
		panic(mismatchedVariant("Quaternion", other))
	}
	*q = Quaternion(quat.Mul(q.Number(), o.Number()))
	q.Normalize()
}

// Inverse returns the conjugate rotation.
func (q *Quaternion) Inverse() Orientable {
	res := *q
	res.Negate()
	return &res
}

// Negate turns q into its inverse.
func (q *Quaternion) Negate() {
	if quat.Abs(q.Number()) < Epsilon {
		*q = Quaternion{Real: 1}
		return
	}
	*q = Quaternion(quat.Inv(q.Number()))
}

// Normalize scales q to unit norm. A quaternion with (almost) zero norm becomes the identity.
func (q *Quaternion) Normalize() {
	n := quat.Abs(q.Number())
	switch {
	case n < Epsilon:
		*q = Quaternion{Real: 1}
	case n != 1:
		*q = Quaternion(quat.Scale(1/n, q.Number()))
	}
}

// Rotate returns v rotated by q.
func (q *Quaternion) Rotate(v r3.Vector) r3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	res := quat.Mul(quat.Mul(q.Number(), p), quat.Inv(q.Number()))
	return r3.Vector{X: res.Imag, Y: res.Jmag, Z: res.Kmag}
}

// InverseRotate returns v rotated by the inverse of q.
func (q *Quaternion) InverseRotate(v r3.Vector) r3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	res := quat.Mul(quat.Mul(quat.Inv(q.Number()), p), q.Number())
	return r3.Vector{X: res.Imag, Y: res.Jmag, Z: res.Kmag}
}

// RotationMatrix returns the 3x3 rotation matrix of q.
func (q *Quaternion) RotationMatrix() mgl64.Mat3 {
	n := *q
	n.Normalize()
	w, x, y, z := n.Real, n.Imag, n.Jmag, n.Kmag

	// column major
	return mgl64.Mat3{
		1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y),
		2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x),
		2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y),
	}
}

// FromRotationMatrix sets q from a 3x3 rotation matrix.
func (q *Quaternion) FromRotationMatrix(m mgl64.Mat3) {
	mq := mgl64.Mat4ToQuat(m.Mat4())
	*q = Quaternion{Real: mq.W, Imag: mq.X(), Jmag: mq.Y(), Kmag: mq.Z()}
	q.Normalize()
}

// Matrix returns the homogeneous rotation matrix of q.
func (q *Quaternion) Matrix() Matrix4 {
	return NewMatrix4FromRotationMatrix(q.RotationMatrix())
}

// InverseMatrix returns the homogeneous rotation matrix of the inverse of q.
func (q *Quaternion) InverseMatrix() Matrix4 {
	return NewMatrix4FromRotationMatrix(q.RotationMatrix().Transpose())
}

// FromMatrix sets q from the upper 3x3 block of m.
func (q *Quaternion) FromMatrix(m Matrix4) {
	q.FromRotationMatrix(m.RotationBlock())
}

// FromAxisAngle sets q to the rotation of angle radians about axis. An (almost) zero axis gives the identity.
func (q *Quaternion) FromAxisAngle(axis r3.Vector, angle float64) {
	norm := axis.Norm()
	if norm < Epsilon {
		*q = Quaternion{Real: 1}
		return
	}
	s, c := math.Sincos(angle / 2)
	*q = Quaternion{Real: c, Imag: s * axis.X / norm, Jmag: s * axis.Y / norm, Kmag: s * axis.Z / norm}
}

// FromTo sets q to the shortest rotation turning from onto to. If either vector is (almost) zero, q
// becomes the identity. Anti-parallel vectors turn by π about OrthogonalVector(from).
func (q *Quaternion) FromTo(from, to r3.Vector) {
	fromSqNorm := from.Norm2()
	toSqNorm := to.Norm2()
	if fromSqNorm < Epsilon || toSqNorm < Epsilon {
		*q = Quaternion{Real: 1}
		return
	}

	axis := from.Cross(to)
	sinSq := axis.Norm2() / (fromSqNorm * toSqNorm)
	if sinSq < Epsilon {
		axis = OrthogonalVector(from)
	}
	angle := math.Asin(math.Sqrt(utils.Clamp(sinSq, 0, 1)))
	if from.Dot(to) < 0 {
		angle = math.Pi - angle
	}
	q.FromAxisAngle(axis, angle)
}

// FromRotatedBasis sets q to the rotation mapping the world axes onto the given orthogonal basis.
func (q *Quaternion) FromRotatedBasis(x, y, z r3.Vector) {
	x, y, z = x.Normalize(), y.Normalize(), z.Normalize()
	q.FromRotationMatrix(mgl64.Mat3{x.X, x.Y, x.Z, y.X, y.Y, y.Z, z.X, z.Y, z.Z})
}

// Angle returns the rotation angle in [0, π].
func (q *Quaternion) Angle() float64 {
	angle := 2 * math.Acos(utils.Clamp(q.Real, -1, 1))
	if angle <= math.Pi {
		return angle
	}
	return 2*math.Pi - angle
}

// Axis returns the unit rotation axis, oriented so that the rotation about it by Angle() equals q.
// The identity returns the zero vector.
func (q *Quaternion) Axis() r3.Vector {
	res := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	sin := res.Norm()
	if sin < Epsilon {
		return r3.Vector{}
	}
	res = res.Mul(1 / sin)
	if math.Acos(utils.Clamp(q.Real, -1, 1)) <= math.Pi/2 {
		return res
	}
	return res.Mul(-1)
}

// EulerAngles returns roll, pitch and yaw in radians.
// See the following wikipedia page for the formulas used here:
// https://en.wikipedia.org/wiki/Conversion_between_quaternions_and_Euler_angles#Quaternion_to_Euler_angles_conversion
func (q *Quaternion) EulerAngles() (roll, pitch, yaw float64) {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	pitch = math.Asin(utils.Clamp(2*(w*y-x*z), -1, 1))
	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}

// Log returns the logarithm of the unit quaternion q, a pure quaternion whose vector part is the half-angle axis.
func (q *Quaternion) Log() quat.Number {
	if quat.Abs(quat.Number{Imag: q.Imag, Jmag: q.Jmag, Kmag: q.Kmag}) < Epsilon {
		return quat.Number{Imag: q.Imag, Jmag: q.Jmag, Kmag: q.Kmag}
	}
	res := quat.Log(q.Number())
	res.Real = 0
	return res
}

// Exp returns the unit quaternion whose logarithm is the pure quaternion p.
func Exp(p quat.Number) *Quaternion {
	v := quat.Number{Imag: p.Imag, Jmag: p.Jmag, Kmag: p.Kmag}
	if quat.Abs(v) < Epsilon {
		return NewQuaternionFromNumber(quat.Number{Real: 1, Imag: p.Imag, Jmag: p.Jmag, Kmag: p.Kmag})
	}
	return NewQuaternionFromNumber(quat.Exp(v))
}

// Dot returns the 4D dot product of two quaternions.
func Dot(a, b *Quaternion) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Flip will multiply a quaternion by -1, returning a quaternion representing the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions have double coverage, q == -q, and
// this function will *not* account for that. Use only if you're certain you want to compare components rather than rotations.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return utils.Float64AlmostEqual(a.Imag, b.Imag, tol) &&
		utils.Float64AlmostEqual(a.Jmag, b.Jmag, tol) &&
		utils.Float64AlmostEqual(a.Kmag, b.Kmag, tol) &&
		utils.Float64AlmostEqual(a.Real, b.Real, tol)
}

// QuaternionRotationAlmostEqual compares the rotations described by a and b, so q and -q are equal.
func QuaternionRotationAlmostEqual(a, b quat.Number, tol float64) bool {
	return QuaternionAlmostEqual(a, b, tol) || QuaternionAlmostEqual(a, Flip(b), tol)
}
