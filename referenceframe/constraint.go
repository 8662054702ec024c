package referenceframe

import (
	"github.com/golang/geo/r3"

	"go.viam.com/frames/spatialmath"
)

// Constraint filters the translations and rotations applied to a Frame through its constrained
// mutators (Translate, Rotate, the *WithConstraint setters and RotateAroundPoint).
type Constraint interface {
	// ConstrainTranslation returns the part of translation the frame is allowed to perform. translation is
	// expressed in the frame's reference frame.
	ConstrainTranslation(translation r3.Vector, frame *Frame) r3.Vector

	// ConstrainRotation returns the part of rotation the frame is allowed to perform. rotation is expressed
	// in the frame's local coordinates.
	ConstrainRotation(rotation spatialmath.Orientable, frame *Frame) spatialmath.Orientable
}

// InterpolatorListener is notified every time a frame it listens to changes, so it can drop cached values
// such as precomputed keyframe paths. InvalidateValues must not mutate the frame that triggered it.
type InterpolatorListener interface {
	InvalidateValues()
}
