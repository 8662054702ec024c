package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/frames/utils"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is (almost) zero.
var ErrSingularMatrix = errors.New("matrix is singular")

// ErrDegenerateHomogeneous is returned when a point maps to a homogeneous coordinate too close to zero.
var ErrDegenerateHomogeneous = errors.New("homogeneous coordinate is zero")

// Matrix4 is a 4x4 affine matrix. The upper 3x3 block holds rotation and scale, the last column the translation.
type Matrix4 struct {
	mat mgl64.Mat4
}

// NewMatrix4 returns the identity matrix.
func NewMatrix4() Matrix4 {
	return Matrix4{mgl64.Ident4()}
}

// NewMatrix4FromMat4 wraps an mgl64 matrix.
func NewMatrix4FromMat4(m mgl64.Mat4) Matrix4 {
	return Matrix4{m}
}

// NewMatrix4FromRows builds a matrix from row-major values.
func NewMatrix4FromRows(rows [4][4]float64) Matrix4 {
	return Matrix4{mgl64.Mat4FromRows(rows[0], rows[1], rows[2], rows[3])}
}

// NewMatrix4FromRotationMatrix places a 3x3 rotation matrix in the upper block of an identity matrix.
func NewMatrix4FromRotationMatrix(r mgl64.Mat3) Matrix4 {
	return Matrix4{r.Mat4()}
}

// NewTranslationMatrix returns a pure translation.
func NewTranslationMatrix(t r3.Vector) Matrix4 {
	return Matrix4{mgl64.Translate3D(t.X, t.Y, t.Z)}
}

// NewScaleMatrix returns a pure (possibly non-uniform) scale.
func NewScaleMatrix(s r3.Vector) Matrix4 {
	return Matrix4{mgl64.Scale3D(s.X, s.Y, s.Z)}
}

// NewMatrix4FromTransform composes translation * rotation * scale: a point is scaled in local axes,
// rotated, then translated.
func NewMatrix4FromTransform(translation r3.Vector, rotation Orientable, scaling r3.Vector) Matrix4 {
	m := rotation.Matrix()
	m.ScaleColumns(scaling)
	m.SetTranslation(translation)
	return m
}

// Mat4 returns the underlying mgl64 matrix.
func (m Matrix4) Mat4() mgl64.Mat4 {
	return m.mat
}

// At returns the element at row, col.
func (m Matrix4) At(row, col int) float64 {
	return m.mat.At(row, col)
}

// Set writes the element at row, col.
func (m *Matrix4) Set(row, col int, v float64) {
	m.mat.Set(row, col, v)
}

// Mul returns m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	return Matrix4{m.mat.Mul4(other.mat)}
}

// Compose right-multiplies m by other in place (m = m * other).
func (m *Matrix4) Compose(other Matrix4) {
	m.mat = m.mat.Mul4(other.mat)
}

// PreCompose left-multiplies m by other in place (m = other * m).
func (m *Matrix4) PreCompose(other Matrix4) {
	m.mat = other.mat.Mul4(m.mat)
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{m.mat.Transpose()}
}

// Determinant returns the determinant of m.
func (m Matrix4) Determinant() float64 {
	return m.mat.Det()
}

// Inverse returns the inverse of m, or ErrSingularMatrix.
func (m Matrix4) Inverse() (Matrix4, error) {
	if math.Abs(m.mat.Det()) < Epsilon {
		return Matrix4{}, ErrSingularMatrix
	}
	return Matrix4{m.mat.Inv()}, nil
}

// Translation returns the translation column.
func (m Matrix4) Translation() r3.Vector {
	return r3.Vector{X: m.mat.At(0, 3), Y: m.mat.At(1, 3), Z: m.mat.At(2, 3)}
}

// SetTranslation overwrites the translation column.
func (m *Matrix4) SetTranslation(t r3.Vector) {
	m.mat.Set(0, 3, t.X)
	m.mat.Set(1, 3, t.Y)
	m.mat.Set(2, 3, t.Z)
}

// RotationBlock returns the upper 3x3 block. It only is a rotation matrix when the matrix carries no scale.
func (m Matrix4) RotationBlock() mgl64.Mat3 {
	return m.mat.Mat3()
}

// SetRotationBlock overwrites the upper 3x3 block.
func (m *Matrix4) SetRotationBlock(r mgl64.Mat3) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m.mat.Set(row, col, r.At(row, col))
		}
	}
}

// Column returns the first three rows of column col.
func (m Matrix4) Column(col int) r3.Vector {
	return r3.Vector{X: m.mat.At(0, col), Y: m.mat.At(1, col), Z: m.mat.At(2, col)}
}

// ScaleColumns multiplies each column of the upper 3x3 block by the matching component of s.
func (m *Matrix4) ScaleColumns(s r3.Vector) {
	factors := [3]float64{s.X, s.Y, s.Z}
	for col, f := range factors {
		for row := 0; row < 3; row++ {
			m.mat.Set(row, col, m.mat.At(row, col)*f)
		}
	}
}

// MulDirection applies the upper 3x3 block to v, ignoring translation.
func (m Matrix4) MulDirection(v r3.Vector) r3.Vector {
	res := m.mat.Mat3().Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return r3.Vector{X: res.X(), Y: res.Y(), Z: res.Z()}
}

// MulPoint applies m to v as an affine transform, ignoring the projective row.
func (m Matrix4) MulPoint(v r3.Vector) r3.Vector {
	return m.MulDirection(v).Add(m.Translation())
}

// TransformPoint applies m to v as a projective transform and divides by the resulting homogeneous coordinate.
func (m Matrix4) TransformPoint(v r3.Vector) (r3.Vector, error) {
	res := m.mat.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	if math.Abs(res.W()) < Epsilon {
		return r3.Vector{}, ErrDegenerateHomogeneous
	}
	return r3.Vector{X: res.X() / res.W(), Y: res.Y() / res.W(), Z: res.Z() / res.W()}, nil
}

// AlmostEqual reports whether every element of m is within epsilon of other.
func (m Matrix4) AlmostEqual(other Matrix4, epsilon float64) bool {
	for i := range m.mat {
		if !utils.Float64AlmostEqual(m.mat[i], other.mat[i], epsilon) {
			return false
		}
	}
	return true
}
