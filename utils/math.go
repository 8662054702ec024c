// Package utils contains small numeric helpers shared by the geometry packages.
package utils

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Square returns n*n. Math.pow( x, 2 ) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual reports whether a and b differ by no more than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

// WrapAngle maps an angle in radians onto [0, 2π).
func WrapAngle(ang float64) float64 {
	ang = math.Mod(ang, TwoPi)
	if ang < 0 {
		ang += TwoPi
	}
	// math.Mod can hand back -0 or a value that rounds to 2π after the addition above.
	if ang >= TwoPi || ang == 0 {
		return 0
	}
	return ang
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// AngleDiff returns the signed difference a1-a2 mapped onto [-π, π).
func AngleDiff(a1, a2 float64) float64 {
	d := WrapAngle(a1 - a2)
	if d >= math.Pi {
		d -= TwoPi
	}
	return d
}
