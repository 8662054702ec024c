package referenceframe

import (
	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go.viam.com/frames/spatialmath"
)

// kernel is the mutable state of a Frame. A kernel is owned by one frame, or shared by every frame
// linked to the same source.
type kernel struct {
	translation r3.Vector
	scaling     r3.Vector
	rotation    spatialmath.Orientable
	reference   *Frame
	constraint  Constraint
	listeners   []InterpolatorListener
}

func newKernel(translation r3.Vector, rotation spatialmath.Orientable, scaling r3.Vector) *kernel {
	mustHaveNonZeroScaling(scaling)
	return &kernel{
		translation: translation,
		scaling:     scaling,
		rotation:    rotation.Clone(),
	}
}

// snapshot copies the transform and the reference frame into a new kernel. Constraint and listeners
// stay with the original.
func (k *kernel) snapshot() *kernel {
	return &kernel{
		translation: k.translation,
		scaling:     k.scaling,
		rotation:    k.rotation.Clone(),
		reference:   k.reference,
	}
}

func (k *kernel) setTranslation(t r3.Vector) {
	k.translation = t
	k.modified()
}

func (k *kernel) translate(delta r3.Vector) {
	k.translation = k.translation.Add(delta)
	k.modified()
}

func (k *kernel) setRotation(r spatialmath.Orientable) {
	if r.Is3D() != k.rotation.Is3D() {
		panic(errMismatchedDimension)
	}
	k.rotation = r.Clone()
	k.modified()
}

func (k *kernel) rotate(delta spatialmath.Orientable) {
	k.rotation.Compose(delta)
	k.rotation.Normalize()
	k.modified()
}

func (k *kernel) setScaling(s r3.Vector) {
	mustHaveNonZeroScaling(s)
	k.scaling = s
	k.modified()
}

func (k *kernel) scale(factor r3.Vector) {
	k.setScaling(spatialmath.MulElem(k.scaling, factor))
}

func (k *kernel) inverseScale(factor r3.Vector) {
	mustHaveNonZeroScaling(factor)
	k.setScaling(spatialmath.DivElem(k.scaling, factor))
}

func (k *kernel) setReferenceFrame(f *Frame) {
	k.reference = f
	k.modified()
}

// modified tells every listener, in registration order, that the kernel changed.
func (k *kernel) modified() {
	for _, l := range k.listeners {
		l.InvalidateValues()
	}
}

func (k *kernel) addListener(l InterpolatorListener) bool {
	if l == nil || lo.Contains(k.listeners, l) {
		return false
	}
	k.listeners = append(k.listeners, l)
	return true
}

func (k *kernel) removeListener(l InterpolatorListener) bool {
	if !lo.Contains(k.listeners, l) {
		return false
	}
	k.listeners = lo.Without(k.listeners, l)
	return true
}

// mustHaveNonZeroScaling panics on a zero scaling component: every coordinate conversion divides by the
// scaling, so letting one through would fill the hierarchy with infinities.
func mustHaveNonZeroScaling(s r3.Vector) {
	if spatialmath.HasZeroComponent(s) {
		panic(NewZeroScalingError(s))
	}
}
