package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90.0)
	test.That(t, RadToDeg(DegToRad(33)), test.ShouldAlmostEqual, 33.0)
}

func TestWrapAngle(t *testing.T) {
	test.That(t, WrapAngle(0), test.ShouldEqual, 0.0)
	test.That(t, WrapAngle(TwoPi), test.ShouldEqual, 0.0)
	test.That(t, WrapAngle(-math.Pi/2), test.ShouldAlmostEqual, 3*math.Pi/2)
	test.That(t, WrapAngle(5*math.Pi), test.ShouldAlmostEqual, math.Pi)
	test.That(t, WrapAngle(WrapAngle(-7.3)), test.ShouldEqual, WrapAngle(-7.3))
}

func TestAngleDiff(t *testing.T) {
	test.That(t, AngleDiff(0.1, TwoPi-0.1), test.ShouldAlmostEqual, 0.2)
	test.That(t, AngleDiff(TwoPi-0.1, 0.1), test.ShouldAlmostEqual, -0.2)
	test.That(t, AngleDiff(math.Pi/2, 0), test.ShouldAlmostEqual, math.Pi/2)
}

func TestFloatHelpers(t *testing.T) {
	test.That(t, Float64AlmostEqual(1, 1+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.1, 1e-8), test.ShouldBeFalse)
	test.That(t, Square(-3), test.ShouldEqual, 9.0)
	test.That(t, Clamp(2, -1, 1), test.ShouldEqual, 1.0)
	test.That(t, Clamp(-2, -1, 1), test.ShouldEqual, -1.0)
	test.That(t, Clamp(0.5, -1, 1), test.ShouldEqual, 0.5)
}
