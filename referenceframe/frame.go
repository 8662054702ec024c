// Package referenceframe defines hierarchical coordinate frames and does the math of translating between them.
// Useful for if you have a camera attached to a character attached to a vehicle, and need to know where
// something the camera sees is in the world, or how to move the vehicle so the camera faces it.
package referenceframe

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"

	"go.viam.com/frames/spatialmath"
)

// Frame is a node in a tree of coordinate systems. Its translation, rotation and scaling are expressed in its
// reference frame, or in the world when it has none. A Frame owns its state through a kernel which it may share
// with other frames by linking.
type Frame struct {
	kernel *kernel
	source *Frame
	linked []*Frame
	logger golog.Logger
}

// NewFrame returns a 3D frame at the world origin with identity rotation and unit scaling.
func NewFrame() *Frame {
	return newFrame(newKernel(r3.Vector{}, spatialmath.NewQuaternion(), spatialmath.UnitScale))
}

// NewFrame2D returns a 2D frame at the world origin. 2D frames rotate about the z axis only.
func NewFrame2D() *Frame {
	return newFrame(newKernel(r3.Vector{}, spatialmath.NewRotation2D(0), spatialmath.UnitScale))
}

// NewFrameWithTransform returns a root frame with the given local transform. The rotation variant decides
// whether the frame is 2D or 3D.
func NewFrameWithTransform(translation r3.Vector, rotation spatialmath.Orientable, scaling r3.Vector) (*Frame, error) {
	var err error
	if rotation == nil {
		multierr.AppendInto(&err, errNilRotation)
	}
	multierr.AppendInto(&err, checkScale(scaling))
	if err != nil {
		return nil, err
	}
	return newFrame(newKernel(translation, rotation, scaling)), nil
}

func newFrame(k *kernel) *Frame {
	return &Frame{kernel: k, logger: golog.Global().Named("referenceframe")}
}

// Detach returns a new unlinked frame with a copy of this frame's translation, rotation, scaling and reference
// frame. Constraint, listeners and links are not copied.
func (f *Frame) Detach() *Frame {
	return &Frame{kernel: f.kernel.snapshot(), logger: f.logger}
}

// SetLogger replaces the logger used to report refused structural changes.
func (f *Frame) SetLogger(logger golog.Logger) {
	f.logger = logger
}

// Is3D is true when the frame's rotation is a quaternion.
func (f *Frame) Is3D() bool {
	return f.kernel.rotation.Is3D()
}

// Translation returns the frame's translation in its reference frame.
func (f *Frame) Translation() r3.Vector {
	return f.kernel.translation
}

// Rotation returns a copy of the frame's rotation relative to its reference frame.
func (f *Frame) Rotation() spatialmath.Orientable {
	return f.kernel.rotation.Clone()
}

// Scaling returns the frame's scaling relative to its reference frame.
func (f *Frame) Scaling() r3.Vector {
	return f.kernel.scaling
}

// ReferenceFrame returns the parent frame, or nil when the frame is expressed in the world.
func (f *Frame) ReferenceFrame() *Frame {
	return f.kernel.reference
}

// Constraint returns the constraint filtering constrained mutations, if any.
func (f *Frame) Constraint() Constraint {
	return f.kernel.constraint
}

// SetConstraint installs c. A nil constraint removes filtering.
func (f *Frame) SetConstraint(c Constraint) {
	f.kernel.constraint = c
}

// SetReferenceFrame makes ref the parent of this frame, nil meaning the world. The local transform is kept, so
// the frame moves in the world with its new parent. It refuses, logs and returns false when ref would create a
// loop or when ref's dimension differs.
func (f *Frame) SetReferenceFrame(ref *Frame) bool {
	if f.settingAsReferenceFrameWillCreateALoop(ref) {
		f.logger.Warnw("frame.SetReferenceFrame would create a loop in the frame hierarchy, ignoring")
		return false
	}
	if ref != nil && ref.Is3D() != f.Is3D() {
		f.logger.Warnw("frame.SetReferenceFrame ignored", "error", errMismatchedDimension)
		return false
	}
	if ref == f.ReferenceFrame() {
		return true
	}
	f.kernel.setReferenceFrame(ref)
	return true
}

// settingAsReferenceFrameWillCreateALoop walks ref's reference chain looking for f.
func (f *Frame) settingAsReferenceFrameWillCreateALoop(ref *Frame) bool {
	for fr := ref; fr != nil; fr = fr.ReferenceFrame() {
		if fr == f {
			return true
		}
	}
	return false
}

// Position is the frame origin in world coordinates.
func (f *Frame) Position() r3.Vector {
	return f.InverseCoordinatesOf(r3.Vector{})
}

// Orientation is the rotation of the frame relative to the world.
func (f *Frame) Orientation() spatialmath.Orientable {
	res := f.Rotation()
	for fr := f.ReferenceFrame(); fr != nil; fr = fr.ReferenceFrame() {
		res = spatialmath.Compose(fr.kernel.rotation, res)
	}
	return res
}

// Magnitude is the scaling of the frame relative to the world.
func (f *Frame) Magnitude() r3.Vector {
	res := f.Scaling()
	for fr := f.ReferenceFrame(); fr != nil; fr = fr.ReferenceFrame() {
		res = spatialmath.MulElem(fr.kernel.scaling, res)
	}
	return res
}

// XAxis returns the frame's x axis in world coordinates. Its length carries the frame's magnitude.
func (f *Frame) XAxis() r3.Vector {
	return f.InverseTransformOf(r3.Vector{X: 1})
}

// YAxis returns the frame's y axis in world coordinates.
func (f *Frame) YAxis() r3.Vector {
	return f.InverseTransformOf(r3.Vector{Y: 1})
}

// ZAxis returns the frame's z axis in world coordinates.
func (f *Frame) ZAxis() r3.Vector {
	return f.InverseTransformOf(r3.Vector{Z: 1})
}

// AddListener registers l to be told about every change to the frame. Adding the same listener twice is a no-op
// that returns false.
func (f *Frame) AddListener(l InterpolatorListener) bool {
	return f.kernel.addListener(l)
}

// RemoveListener unregisters l, returning false if it was not registered.
func (f *Frame) RemoveListener(l InterpolatorListener) bool {
	return f.kernel.removeListener(l)
}

// Listeners returns the registered listeners in notification order.
func (f *Frame) Listeners() []InterpolatorListener {
	return append([]InterpolatorListener(nil), f.kernel.listeners...)
}

func checkScale(s r3.Vector) error {
	var err error
	for _, c := range []struct {
		axis  string
		value float64
	}{{"x", s.X}, {"y", s.Y}, {"z", s.Z}} {
		if math.Abs(c.value) < spatialmath.Epsilon {
			multierr.AppendInto(&err, newZeroScaleComponentError(c.axis))
		}
	}
	return err
}
