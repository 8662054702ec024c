package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRotation2DNormalize(t *testing.T) {
	r := NewRotation2D(-math.Pi / 2)
	test.That(t, r.Theta, test.ShouldAlmostEqual, 3*math.Pi/2)
	r = &Rotation2D{5 * math.Pi}
	r.Normalize()
	test.That(t, r.Theta, test.ShouldAlmostEqual, math.Pi)
	once := *r
	r.Normalize()
	test.That(t, *r, test.ShouldResemble, once)
	test.That(t, NewRotation2D(2*math.Pi).Theta, test.ShouldEqual, 0.)
}

func TestRotation2DCompose(t *testing.T) {
	r := NewRotation2D(3 * math.Pi / 2)
	r.Compose(NewRotation2D(math.Pi))
	test.That(t, r.Theta, test.ShouldAlmostEqual, math.Pi/2)

	inv := r.Inverse()
	test.That(t, r.Theta, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, inv.Angle(), test.ShouldAlmostEqual, 3*math.Pi/2)
	test.That(t, OrientableAlmostEqual(Compose(r, inv), NewRotation2D(0), 1e-9), test.ShouldBeTrue)

	r.Negate()
	test.That(t, OrientableAlmostEqual(r, inv, 1e-9), test.ShouldBeTrue)

	test.That(t, func() { r.Compose(NewQuaternion()) }, test.ShouldPanic)
}

func TestRotation2DRotate(t *testing.T) {
	r := NewRotation2D(math.Pi / 2)
	v := r3.Vector{X: 1, Y: 0, Z: 7}
	test.That(t, R3VectorAlmostEqual(r.Rotate(v), r3.Vector{X: 0, Y: 1, Z: 7}, 1e-9), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(r.InverseRotate(r.Rotate(v)), v, 1e-9), test.ShouldBeTrue)
}

// A planar rotation and the quaternion about z by the same angle must agree everywhere.
func TestRotation2DMatchesQuaternion(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 2.9, 4.4} {
		r := NewRotation2D(angle)
		q := NewQuaternionFromAxisAngle(r3.Vector{Z: 1}, angle)
		v := r3.Vector{X: 1.5, Y: -2, Z: 0.25}

		test.That(t, R3VectorAlmostEqual(r.Rotate(v), q.Rotate(v), 1e-9), test.ShouldBeTrue)
		test.That(t, R3VectorAlmostEqual(r.InverseRotate(v), q.InverseRotate(v), 1e-9), test.ShouldBeTrue)
		test.That(t, r.Matrix().AlmostEqual(q.Matrix(), 1e-9), test.ShouldBeTrue)
		test.That(t, r.InverseMatrix().AlmostEqual(q.InverseMatrix(), 1e-9), test.ShouldBeTrue)
	}
}

func TestRotation2DMatrixRoundTrip(t *testing.T) {
	r := NewRotation2D(4)
	back := &Rotation2D{}
	back.FromMatrix(r.Matrix())
	test.That(t, back.Theta, test.ShouldAlmostEqual, 4.)
	back.FromRotationMatrix(r.RotationMatrix())
	test.That(t, back.Theta, test.ShouldAlmostEqual, 4.)
}

func TestRotation2DFromTo(t *testing.T) {
	r := NewRotation2DFromTo(r3.Vector{X: 1}, r3.Vector{X: -1, Y: -1})
	test.That(t, r.Theta, test.ShouldAlmostEqual, 5*math.Pi/4)
	test.That(t, R3VectorAlmostEqual(r.Rotate(r3.Vector{X: 1}).Normalize(), r3.Vector{X: -1, Y: -1}.Normalize(), 1e-9),
		test.ShouldBeTrue)

	// zero (or purely vertical) vectors have no planar direction
	test.That(t, NewRotation2DFromTo(r3.Vector{}, r3.Vector{X: 1}).Theta, test.ShouldEqual, 0.)
	test.That(t, NewRotation2DFromTo(r3.Vector{X: 1}, r3.Vector{Z: 1}).Theta, test.ShouldEqual, 0.)
}
