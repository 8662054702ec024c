package referenceframe

import (
	"github.com/golang/geo/r3"

	"go.viam.com/frames/spatialmath"
)

// Coordinates are points: translation, rotation and scaling all apply. Transforms are directions: translation is
// ignored. A nil frame argument always stands for the world.

// LocalCoordinatesOf converts a point from the reference frame into this frame.
func (f *Frame) LocalCoordinatesOf(src r3.Vector) r3.Vector {
	k := f.kernel
	return spatialmath.DivElem(k.rotation.InverseRotate(src.Sub(k.translation)), k.scaling)
}

// LocalInverseCoordinatesOf converts a point from this frame into the reference frame.
func (f *Frame) LocalInverseCoordinatesOf(src r3.Vector) r3.Vector {
	k := f.kernel
	return k.rotation.Rotate(spatialmath.MulElem(src, k.scaling)).Add(k.translation)
}

// LocalTransformOf converts a direction from the reference frame into this frame.
func (f *Frame) LocalTransformOf(src r3.Vector) r3.Vector {
	k := f.kernel
	return spatialmath.DivElem(k.rotation.InverseRotate(src), k.scaling)
}

// LocalInverseTransformOf converts a direction from this frame into the reference frame.
func (f *Frame) LocalInverseTransformOf(src r3.Vector) r3.Vector {
	k := f.kernel
	return k.rotation.Rotate(spatialmath.MulElem(src, k.scaling))
}

// CoordinatesOf converts a world point into this frame.
func (f *Frame) CoordinatesOf(src r3.Vector) r3.Vector {
	if ref := f.ReferenceFrame(); ref != nil {
		return f.LocalCoordinatesOf(ref.CoordinatesOf(src))
	}
	return f.LocalCoordinatesOf(src)
}

// InverseCoordinatesOf converts a point of this frame into the world.
func (f *Frame) InverseCoordinatesOf(src r3.Vector) r3.Vector {
	res := src
	for fr := f; fr != nil; fr = fr.ReferenceFrame() {
		res = fr.LocalInverseCoordinatesOf(res)
	}
	return res
}

// TransformOf converts a world direction into this frame.
func (f *Frame) TransformOf(src r3.Vector) r3.Vector {
	if ref := f.ReferenceFrame(); ref != nil {
		return f.LocalTransformOf(ref.TransformOf(src))
	}
	return f.LocalTransformOf(src)
}

// InverseTransformOf converts a direction of this frame into the world.
func (f *Frame) InverseTransformOf(src r3.Vector) r3.Vector {
	res := src
	for fr := f; fr != nil; fr = fr.ReferenceFrame() {
		res = fr.LocalInverseTransformOf(res)
	}
	return res
}

// CoordinatesOfIn converts a point of this frame into in. When in is an ancestor only the frames between the two
// are visited; otherwise the point goes through the world.
func (f *Frame) CoordinatesOfIn(src r3.Vector, in *Frame) r3.Vector {
	res := src
	fr := f
	for ; fr != nil && fr != in; fr = fr.ReferenceFrame() {
		res = fr.LocalInverseCoordinatesOf(res)
	}
	if fr != in {
		// in is not an ancestor; res is now in world coordinates.
		return in.CoordinatesOf(res)
	}
	return res
}

// CoordinatesOfFrom converts a point of from into this frame.
func (f *Frame) CoordinatesOfFrom(src r3.Vector, from *Frame) r3.Vector {
	if f == from {
		return src
	}
	if ref := f.ReferenceFrame(); ref != nil {
		return f.LocalCoordinatesOf(ref.CoordinatesOfFrom(src, from))
	}
	if from == nil {
		return f.LocalCoordinatesOf(src)
	}
	return f.LocalCoordinatesOf(from.InverseCoordinatesOf(src))
}

// TransformOfIn converts a direction of this frame into in.
func (f *Frame) TransformOfIn(src r3.Vector, in *Frame) r3.Vector {
	res := src
	fr := f
	for ; fr != nil && fr != in; fr = fr.ReferenceFrame() {
		res = fr.LocalInverseTransformOf(res)
	}
	if fr != in {
		return in.TransformOf(res)
	}
	return res
}

// TransformOfFrom converts a direction of from into this frame.
func (f *Frame) TransformOfFrom(src r3.Vector, from *Frame) r3.Vector {
	if f == from {
		return src
	}
	if ref := f.ReferenceFrame(); ref != nil {
		return f.LocalTransformOf(ref.TransformOfFrom(src, from))
	}
	if from == nil {
		return f.LocalTransformOf(src)
	}
	return f.LocalTransformOf(from.InverseTransformOf(src))
}
