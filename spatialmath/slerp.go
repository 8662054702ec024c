package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// SlerpLinearThreshold is the value of 1-|cos(angle)| under which Slerp interpolates components
// linearly instead of spherically, since sin(angle) is too small to divide by.
const SlerpLinearThreshold = 0.01

// Slerp spherically interpolates from a (t=0) to b (t=1). The result is not normalized.
// When allowFlip is true and a and b lie in opposite hemispheres, b is negated so the shorter arc is
// taken; Slerp(a, b, 1, true) then returns -b, which is the same rotation.
func Slerp(a, b *Quaternion, t float64, allowFlip bool) *Quaternion {
	cosAngle := Dot(a, b)

	var c1, c2 float64
	if 1-math.Abs(cosAngle) < SlerpLinearThreshold {
		c1 = 1 - t
		c2 = t
	} else {
		angle := math.Acos(math.Abs(cosAngle))
		sinAngle := math.Sin(angle)
		c1 = math.Sin(angle*(1-t)) / sinAngle
		c2 = math.Sin(angle*t) / sinAngle
	}

	if allowFlip && cosAngle < 0 {
		c2 = -c2
	}
	return &Quaternion{
		Real: c1*a.Real + c2*b.Real,
		Imag: c1*a.Imag + c2*b.Imag,
		Jmag: c1*a.Jmag + c2*b.Jmag,
		Kmag: c1*a.Kmag + c2*b.Kmag,
	}
}

// Squad interpolates between keyframes a and b using the tangents tgA and tgB (see SquadTangent),
// giving a curve whose derivative is continuous across keyframes.
func Squad(a, tgA, tgB, b *Quaternion, t float64) *Quaternion {
	ab := Slerp(a, b, t, true)
	tg := Slerp(tgA, tgB, t, false)
	return Slerp(ab, tg, 2*t*(1-t), false)
}

// LnDif returns log(a⁻¹ * b).
func LnDif(a, b *Quaternion) quat.Number {
	dif := a.Inverse().(*Quaternion)
	dif.Compose(b)
	return dif.Log()
}

// SquadTangent returns the Squad tangent at center given its neighbouring keyframes.
func SquadTangent(before, center, after *Quaternion) *Quaternion {
	l1 := LnDif(center, before)
	l2 := LnDif(center, after)
	e := quat.Scale(-0.25, quat.Add(l1, l2))

	res := center.Clone().(*Quaternion)
	res.Compose(Exp(e))
	return res
}
