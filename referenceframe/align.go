package referenceframe

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/frames/spatialmath"
	"go.viam.com/frames/utils"
)

var unitAxes = [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}

// AlignWithFrame snaps the frame's axes onto other's (the world's when other is nil). The pair of axes closest to
// parallel is aligned first when |cos| of their angle reaches threshold, then the best remaining pair under the
// same test. With move set, the frame is also moved so that other's origin keeps its coordinates in this frame.
// Both the rotation and the move go through the constraint.
func (f *Frame) AlignWithFrame(other *Frame, move bool, threshold float64) {
	var center r3.Vector
	if other != nil {
		center = other.Position()
	}
	old := f.Detach()

	if f.Is3D() {
		f.alignAxes(other, threshold)
	} else {
		f.alignAngle(other, threshold)
	}

	if move {
		f.SetPositionWithConstraint(center.Sub(f.InverseTransformOf(old.CoordinatesOf(center))))
	}
}

func (f *Frame) alignAxes(other *Frame, threshold float64) {
	var targets, axes [3]r3.Vector
	orientation := f.Orientation()
	for d, dir := range unitAxes {
		targets[d] = dir
		if other != nil {
			targets[d] = other.Orientation().Rotate(dir)
		}
		axes[d] = orientation.Rotate(dir)
	}

	maxProj := 0.
	ti, ai := 0, 0
	for i := range targets {
		for j := range axes {
			if proj := math.Abs(targets[i].Dot(axes[j])); proj >= maxProj {
				ti, ai, maxProj = i, j, proj
			}
		}
	}
	if !f.alignDirection(targets[ti], axes[ai], threshold) {
		return
	}

	// try to align a second axis, the first one is now fixed
	dir := f.Orientation().Rotate(unitAxes[(ai+1)%3])
	maxProj = 0
	for i := range targets {
		if proj := math.Abs(targets[i].Dot(dir)); proj > maxProj {
			ti, maxProj = i, proj
		}
	}
	f.alignDirection(targets[ti], dir, threshold)
}

// alignDirection turns the frame so the world direction axis becomes parallel to target, when they are within
// threshold of it.
func (f *Frame) alignDirection(target, axis r3.Vector, threshold float64) bool {
	coef := target.Dot(axis)
	if math.Abs(coef) < threshold {
		return false
	}
	cross := target.Cross(axis)
	angle := math.Asin(utils.Clamp(cross.Norm(), 0, 1))
	if coef >= 0 {
		angle = -angle
	}
	q := spatialmath.NewQuaternionFromAxisAngle(cross, angle)
	f.SetOrientationWithConstraint(spatialmath.Compose(q, f.Orientation()))
	return true
}

func (f *Frame) alignAngle(other *Frame, threshold float64) {
	var base float64
	if other != nil {
		base = other.Orientation().Angle()
	}
	residual := utils.AngleDiff(f.Orientation().Angle(), base)
	quarters := math.Round(residual / (math.Pi / 2))
	if math.Abs(math.Cos(residual-quarters*math.Pi/2)) < threshold {
		return
	}
	f.SetOrientationWithConstraint(spatialmath.NewRotation2D(base + quarters*math.Pi/2))
}
