package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

var (
	errNilRotation         = errors.New("rotation is not allowed to be nil")
	errZeroHomogeneous     = errors.New("matrix has a zero homogeneous coordinate")
	errDualQuaternionIn2D  = errors.New("dual quaternions only describe 3D frames")
	errMismatchedDimension = errors.New("2D and 3D frames cannot be mixed")
)

// NewZeroScalingError returns an error indicating that a scaling vector has a zero component.
func NewZeroScalingError(scaling r3.Vector) error {
	return errors.Errorf("scaling %v has a zero component", scaling)
}

// newZeroScaleComponentError names the axis of a zero scale component.
func newZeroScaleComponentError(axis string) error {
	return errors.Errorf("scale component %s is zero", axis)
}
