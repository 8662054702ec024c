package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

func TestDualQuaternionPose(t *testing.T) {
	id := NewDualQuaternion()
	test.That(t, id.Translation(), test.ShouldResemble, r3.Vector{})
	test.That(t, OrientableAlmostEqual(id.Rotation(), NewQuaternion(), 1e-12), test.ShouldBeTrue)

	rot := NewQuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	dq := NewDualQuaternionFromPose(r3.Vector{X: 1, Y: 2, Z: 3}, rot)
	test.That(t, R3VectorAlmostEqual(dq.Translation(), r3.Vector{X: 1, Y: 2, Z: 3}, 1e-9), test.ShouldBeTrue)
	test.That(t, OrientableAlmostEqual(dq.Rotation(), rot, 1e-9), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(dq.TransformPoint(r3.Vector{X: 1}), r3.Vector{X: 1, Y: 3, Z: 3}, 1e-9), test.ShouldBeTrue)

	clone := dq.Clone()
	clone.SetTranslation(r3.Vector{})
	test.That(t, R3VectorAlmostEqual(dq.Translation(), r3.Vector{X: 1, Y: 2, Z: 3}, 1e-9), test.ShouldBeTrue)
}

func TestDualQuaternionTransformation(t *testing.T) {
	parent := NewDualQuaternionFromPose(r3.Vector{X: 1}, NewQuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2))
	child := NewDualQuaternionFromPose(r3.Vector{Y: 1}, NewQuaternionFromAxisAngle(r3.Vector{X: 1}, 0.3))

	composed := &DualQuaternion{parent.Transformation(child.Number)}
	p := r3.Vector{X: 0.5, Y: -1, Z: 2}
	expected := parent.TransformPoint(child.TransformPoint(p))
	test.That(t, R3VectorAlmostEqual(composed.TransformPoint(p), expected, 1e-9), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(composed.Translation(), r3.Vector{X: 0, Y: 0, Z: 0}, 1e-9), test.ShouldBeTrue)
}

func TestDualQuaternionTransformationDegenerate(t *testing.T) {
	pose := NewDualQuaternionFromPose(r3.Vector{X: 1, Y: -2}, NewQuaternionFromAxisAngle(r3.Vector{Y: 1}, 0.8))
	zero := dualquat.Number{Dual: quat.Number{Imag: 3}}

	res := &DualQuaternion{pose.Transformation(zero)}
	for _, v := range []float64{res.Real.Real, res.Real.Imag, res.Real.Jmag, res.Real.Kmag, res.Dual.Real, res.Dual.Imag} {
		test.That(t, math.IsNaN(v), test.ShouldBeFalse)
	}
	test.That(t, R3VectorAlmostEqual(res.Translation(), pose.Translation(), 1e-9), test.ShouldBeTrue)
	test.That(t, OrientableAlmostEqual(res.Rotation(), pose.Rotation(), 1e-9), test.ShouldBeTrue)
}
