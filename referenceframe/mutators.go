package referenceframe

import (
	"github.com/golang/geo/r3"

	"go.viam.com/frames/spatialmath"
)

// SetTranslation sets the translation in the reference frame, bypassing the constraint.
func (f *Frame) SetTranslation(t r3.Vector) {
	f.kernel.setTranslation(t)
}

// SetRotation sets the rotation relative to the reference frame, bypassing the constraint. It panics if r is not
// the frame's rotation variant.
func (f *Frame) SetRotation(r spatialmath.Orientable) {
	f.kernel.setRotation(r)
}

// SetScaling sets the scaling relative to the reference frame. It panics on a zero component.
func (f *Frame) SetScaling(s r3.Vector) {
	f.kernel.setScaling(s)
}

// Scale multiplies the scaling by factor, component by component. It panics on a zero component.
func (f *Frame) Scale(factor r3.Vector) {
	f.kernel.scale(factor)
}

// InverseScale divides the scaling by factor, component by component. It panics on a zero component.
func (f *Frame) InverseScale(factor r3.Vector) {
	f.kernel.inverseScale(factor)
}

// SetPosition places the frame origin at the world point p, bypassing the constraint.
func (f *Frame) SetPosition(p r3.Vector) {
	f.SetTranslation(f.referenceCoordinatesOf(p))
}

// SetOrientation sets the world orientation, bypassing the constraint.
func (f *Frame) SetOrientation(o spatialmath.Orientable) {
	f.SetRotation(f.referenceRotationOf(o))
}

// SetMagnitude sets the world scaling.
func (f *Frame) SetMagnitude(m r3.Vector) {
	if ref := f.ReferenceFrame(); ref != nil {
		m = spatialmath.DivElem(m, ref.Magnitude())
	}
	f.SetScaling(m)
}

// Translate moves the frame by t, expressed in the reference frame, after filtering it through the constraint.
func (f *Frame) Translate(t r3.Vector) {
	if c := f.Constraint(); c != nil {
		t = c.ConstrainTranslation(t, f)
	}
	f.kernel.translate(t)
}

// Rotate composes r, expressed in the frame's local coordinates, after filtering it through the constraint.
func (f *Frame) Rotate(r spatialmath.Orientable) {
	if c := f.Constraint(); c != nil {
		r = c.ConstrainRotation(r, f)
	}
	f.kernel.rotate(r)
}

// SetTranslationWithConstraint moves toward t as far as the constraint allows.
func (f *Frame) SetTranslationWithConstraint(t r3.Vector) {
	f.Translate(t.Sub(f.Translation()))
}

// SetRotationWithConstraint turns toward r as far as the constraint allows.
func (f *Frame) SetRotationWithConstraint(r spatialmath.Orientable) {
	delta := spatialmath.Compose(f.kernel.rotation.Inverse(), r)
	if c := f.Constraint(); c != nil {
		delta = c.ConstrainRotation(delta, f)
	}
	delta.Normalize()
	f.kernel.rotate(delta)
}

// SetPositionWithConstraint moves toward the world point p as far as the constraint allows.
func (f *Frame) SetPositionWithConstraint(p r3.Vector) {
	f.SetTranslationWithConstraint(f.referenceCoordinatesOf(p))
}

// SetOrientationWithConstraint turns toward the world orientation o as far as the constraint allows.
func (f *Frame) SetOrientationWithConstraint(o spatialmath.Orientable) {
	f.SetRotationWithConstraint(f.referenceRotationOf(o))
}

// RotateAroundPoint rotates the frame by rotation, expressed in local coordinates, and moves its origin along the
// same rotation around the world point. Both parts go through the constraint.
func (f *Frame) RotateAroundPoint(rotation spatialmath.Orientable, point r3.Vector) {
	c := f.Constraint()
	if c != nil {
		rotation = c.ConstrainRotation(rotation, f)
	}

	worldRotation := f.worldRotationOf(rotation)
	position := f.Position()
	f.kernel.rotate(rotation)

	delta := point.Add(worldRotation.Rotate(position.Sub(point))).Sub(position)
	if ref := f.ReferenceFrame(); ref != nil {
		delta = ref.TransformOf(delta)
	}
	if c != nil {
		delta = c.ConstrainTranslation(delta, f)
	}
	f.kernel.translate(delta)
}

// ProjectOnLine moves the frame origin to its orthogonal projection on the world line through origin along
// direction. The constraint is bypassed.
func (f *Frame) ProjectOnLine(origin, direction r3.Vector) {
	position := f.Position()
	shift := origin.Sub(position)
	f.SetPosition(position.Add(shift.Sub(spatialmath.ProjectOnAxis(shift, direction))))
}

// referenceCoordinatesOf converts a world point into the reference frame.
func (f *Frame) referenceCoordinatesOf(p r3.Vector) r3.Vector {
	if ref := f.ReferenceFrame(); ref != nil {
		return ref.CoordinatesOf(p)
	}
	return p
}

// referenceRotationOf converts a world orientation into a rotation relative to the reference frame.
func (f *Frame) referenceRotationOf(o spatialmath.Orientable) spatialmath.Orientable {
	if ref := f.ReferenceFrame(); ref != nil {
		return spatialmath.Compose(ref.Orientation().Inverse(), o)
	}
	return o
}

// worldRotationOf re-expresses a local rotation delta in world axes.
func (f *Frame) worldRotationOf(r spatialmath.Orientable) spatialmath.Orientable {
	q, ok := r.(*spatialmath.Quaternion)
	if !ok {
		return spatialmath.NewRotation2D(r.Angle())
	}
	aa := q.AxisAngle()
	axis := f.Rotation().Rotate(aa.Axis())
	if ref := f.ReferenceFrame(); ref != nil {
		axis = ref.InverseTransformOf(axis)
	}
	return (&spatialmath.R4AA{Theta: aa.Theta, RX: axis.X, RY: axis.Y, RZ: axis.Z}).Quaternion()
}
