package referenceframe

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/frames/spatialmath"
)

// Matrix returns the local transform T·R·S, mapping this frame's coordinates into its reference frame.
func (f *Frame) Matrix() spatialmath.Matrix4 {
	return spatialmath.NewMatrix4FromTransform(f.Translation(), f.kernel.rotation, f.Scaling())
}

// WorldMatrix returns the transform mapping this frame's coordinates into the world. It equals the product of the
// Matrix of every frame up the chain when scalings are uniform.
func (f *Frame) WorldMatrix() spatialmath.Matrix4 {
	return spatialmath.NewMatrix4FromTransform(f.Position(), f.Orientation(), f.Magnitude())
}

// FromMatrix sets translation, rotation and scaling from a local transform built with the given scale. The upper
// 3x3 block divided by scale must be a rotation; the constraint is bypassed.
func (f *Frame) FromMatrix(mat spatialmath.Matrix4, scale r3.Vector) error {
	translation, rotation, err := f.decompose(mat, scale)
	if err != nil {
		return errors.Wrap(err, "cannot set frame from matrix")
	}
	f.SetTranslation(translation)
	f.SetRotation(rotation)
	f.SetScaling(scale)
	return nil
}

// FromWorldMatrix sets position, orientation and magnitude from a world transform built with the given scale.
func (f *Frame) FromWorldMatrix(mat spatialmath.Matrix4, scale r3.Vector) error {
	position, orientation, err := f.decompose(mat, scale)
	if err != nil {
		return errors.Wrap(err, "cannot set frame from world matrix")
	}
	f.SetPosition(position)
	f.SetOrientation(orientation)
	f.SetMagnitude(scale)
	return nil
}

func (f *Frame) decompose(mat spatialmath.Matrix4, scale r3.Vector) (r3.Vector, spatialmath.Orientable, error) {
	err := checkScale(scale)
	w := mat.At(3, 3)
	if math.Abs(w) < spatialmath.Epsilon {
		err = multierr.Combine(err, errZeroHomogeneous)
	}
	if err != nil {
		return r3.Vector{}, nil, err
	}

	block := mat.RotationBlock()
	for col, s := range [3]float64{scale.X, scale.Y, scale.Z} {
		for row := 0; row < 3; row++ {
			block.Set(row, col, block.At(row, col)/(s*w))
		}
	}
	rotation := spatialmath.IdentityLike(f.kernel.rotation)
	rotation.FromRotationMatrix(block)
	rotation.Normalize()
	return mat.Translation().Mul(1 / w), rotation, nil
}

// DualQuaternion returns the world pose of a 3D frame as a unit dual quaternion. Scaling is not represented.
func (f *Frame) DualQuaternion() (*spatialmath.DualQuaternion, error) {
	if !f.Is3D() {
		return nil, errDualQuaternionIn2D
	}
	orientation, _ := f.Orientation().(*spatialmath.Quaternion)
	return spatialmath.NewDualQuaternionFromPose(f.Position(), orientation), nil
}
