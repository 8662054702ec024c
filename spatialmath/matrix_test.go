package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestMatrix4Basics(t *testing.T) {
	m := NewMatrix4FromRows([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{0, 0, 0, 1},
	})
	test.That(t, m.At(0, 3), test.ShouldEqual, 4.)
	test.That(t, m.At(2, 1), test.ShouldEqual, 10.)
	test.That(t, m.Translation(), test.ShouldResemble, r3.Vector{X: 4, Y: 8, Z: 12})
	test.That(t, m.Column(1), test.ShouldResemble, r3.Vector{X: 2, Y: 6, Z: 10})
	test.That(t, m.Transpose().At(3, 0), test.ShouldEqual, 4.)

	m.Set(1, 3, -1)
	test.That(t, m.Translation().Y, test.ShouldEqual, -1.)
	m.SetTranslation(r3.Vector{X: 7, Y: 7, Z: 7})
	test.That(t, m.Translation(), test.ShouldResemble, r3.Vector{X: 7, Y: 7, Z: 7})

	id := NewMatrix4()
	test.That(t, id.Mul(m).AlmostEqual(m, 0), test.ShouldBeTrue)
	test.That(t, m.Mul(id).AlmostEqual(m, 0), test.ShouldBeTrue)
}

func TestMatrix4Inverse(t *testing.T) {
	m := NewMatrix4FromTransform(
		r3.Vector{X: 1, Y: -2, Z: 3},
		NewQuaternionFromAxisAngle(r3.Vector{X: 1, Y: 1}, 0.9),
		r3.Vector{X: 2, Y: 0.5, Z: 3},
	)
	inv, err := m.Inverse()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Mul(inv).AlmostEqual(NewMatrix4(), 1e-9), test.ShouldBeTrue)

	p := r3.Vector{X: 4, Y: 5, Z: 6}
	test.That(t, R3VectorAlmostEqual(inv.MulPoint(m.MulPoint(p)), p, 1e-9), test.ShouldBeTrue)

	singular := NewScaleMatrix(r3.Vector{X: 1, Y: 0, Z: 1})
	_, err = singular.Inverse()
	test.That(t, err, test.ShouldBeError, ErrSingularMatrix)
}

func TestMatrix4Compose(t *testing.T) {
	trans := NewTranslationMatrix(r3.Vector{X: 1})
	rot := NewQuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2).Matrix()

	// translate after rotating
	m := trans
	m.Compose(rot)
	test.That(t, R3VectorAlmostEqual(m.MulPoint(r3.Vector{X: 1}), r3.Vector{X: 1, Y: 1}, 1e-9), test.ShouldBeTrue)

	// rotate after translating
	m = trans
	m.PreCompose(rot)
	test.That(t, R3VectorAlmostEqual(m.MulPoint(r3.Vector{X: 1}), r3.Vector{X: 0, Y: 2}, 1e-9), test.ShouldBeTrue)
}

func TestMatrix4FromTransform(t *testing.T) {
	translation := r3.Vector{X: 1, Y: 2, Z: 3}
	rotation := NewQuaternionFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	scaling := r3.Vector{X: 2, Y: 3, Z: 4}
	m := NewMatrix4FromTransform(translation, rotation, scaling)

	// T * R * S
	expected := NewTranslationMatrix(translation).Mul(rotation.Matrix()).Mul(NewScaleMatrix(scaling))
	test.That(t, m.AlmostEqual(expected, 1e-9), test.ShouldBeTrue)

	p := r3.Vector{X: 1, Y: 1, Z: 1}
	test.That(t, R3VectorAlmostEqual(m.MulPoint(p), rotation.Rotate(MulElem(p, scaling)).Add(translation), 1e-9), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(m.MulDirection(p), rotation.Rotate(MulElem(p, scaling)), 1e-9), test.ShouldBeTrue)

	block := m.RotationBlock()
	m2 := NewMatrix4()
	m2.SetRotationBlock(block)
	m2.SetTranslation(translation)
	test.That(t, m2.AlmostEqual(m, 1e-12), test.ShouldBeTrue)
	test.That(t, m.Determinant(), test.ShouldAlmostEqual, 24.)
}

func TestMatrix4TransformPoint(t *testing.T) {
	m := NewTranslationMatrix(r3.Vector{Z: 1})
	p, err := m.TransformPoint(r3.Vector{X: 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldResemble, r3.Vector{X: 1, Z: 1})

	m.Set(3, 3, 2)
	p, err = m.TransformPoint(r3.Vector{X: 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p, test.ShouldResemble, r3.Vector{X: 0.5, Z: 0.5})

	m.Set(3, 3, 0)
	_, err = m.TransformPoint(r3.Vector{X: 1})
	test.That(t, err, test.ShouldBeError, ErrDegenerateHomogeneous)
}
