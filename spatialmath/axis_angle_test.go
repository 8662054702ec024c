package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestR4AAConversions(t *testing.T) {
	r4 := &R4AA{Theta: math.Pi / 2, RX: 0, RY: 0, RZ: 3}
	q := r4.Quaternion()
	test.That(t, r4.Axis(), test.ShouldResemble, r3.Vector{Z: 1})
	test.That(t, OrientableAlmostEqual(q, NewQuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2), 1e-12), test.ShouldBeTrue)

	back := q.AxisAngle()
	test.That(t, back.Theta, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, R3VectorAlmostEqual(back.Axis(), r3.Vector{Z: 1}, 1e-12), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(back.ToR3(), r3.Vector{Z: math.Pi / 2}, 1e-12), test.ShouldBeTrue)

	fromR3 := R3ToR4(r3.Vector{X: 0.3, Y: -0.4})
	test.That(t, fromR3.Theta, test.ShouldAlmostEqual, 0.5)
	test.That(t, R3VectorAlmostEqual(fromR3.ToR3(), r3.Vector{X: 0.3, Y: -0.4}, 1e-12), test.ShouldBeTrue)
	test.That(t, R3ToR4(r3.Vector{}), test.ShouldResemble, NewR4AA())

	test.That(t, NewQuaternion().AxisAngle(), test.ShouldResemble, NewR4AA())
	test.That(t, func() { (&R4AA{Theta: 1}).Quaternion() }, test.ShouldPanic)
}

func TestR4AAFixOrientation(t *testing.T) {
	r4 := &R4AA{Theta: -1, RX: 1}
	q := r4.Quaternion()
	r4.fixOrientation()
	test.That(t, r4.Theta, test.ShouldEqual, 1.)
	test.That(t, r4.RX, test.ShouldEqual, -1.)
	test.That(t, OrientableAlmostEqual(r4.Quaternion(), q, 1e-12), test.ShouldBeTrue)

	// a quaternion past the half turn comes back with a positive angle
	far := NewQuaternionFromNumber(Flip(NewQuaternionFromAxisAngle(r3.Vector{Y: 1}, 2.5).Number()))
	aa := far.AxisAngle()
	test.That(t, aa.Theta, test.ShouldBeGreaterThanOrEqualTo, 0.)
	test.That(t, aa.Theta, test.ShouldBeLessThanOrEqualTo, math.Pi)
	test.That(t, OrientableAlmostEqual(aa.Quaternion(), far, 1e-9), test.ShouldBeTrue)
}
