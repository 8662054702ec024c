package referenceframe

import (
	"github.com/samber/lo"
)

// LinkTo makes this frame share source's kernel: from now on both have the same translation, rotation, scaling,
// reference frame, constraint and listeners. Links form a star around the source, so it refuses (logging why)
// to link a frame to itself, a frame that other frames are linked to, a source that is itself linked, or a
// source of the other dimension. Linking to another source first unlinks.
func (f *Frame) LinkTo(source *Frame) bool {
	switch {
	case source == nil:
		f.logger.Warnw("frame.LinkTo ignored: source is nil")
		return false
	case source == f:
		f.logger.Warnw("frame.LinkTo ignored: a frame cannot be linked to itself")
		return false
	case source.source == f:
		f.logger.Warnw("frame.LinkTo ignored: source is already linked to this frame")
		return false
	case len(f.linked) > 0:
		f.logger.Warnw("frame.LinkTo ignored: other frames are linked to this frame", "linked", len(f.linked))
		return false
	case source.source != nil:
		f.logger.Warnw("frame.LinkTo ignored: source is itself linked to another frame")
		return false
	case source.Is3D() != f.Is3D():
		f.logger.Warnw("frame.LinkTo ignored", "error", errMismatchedDimension)
		return false
	}

	if f.source == source {
		return true
	}
	if f.source != nil {
		f.Unlink()
	}
	f.kernel = source.kernel
	f.source = source
	source.linked = append(source.linked, f)
	return true
}

// LinkFrom links requested to this frame. See LinkTo.
func (f *Frame) LinkFrom(requested *Frame) bool {
	if requested == nil {
		f.logger.Warnw("frame.LinkFrom ignored: requested frame is nil")
		return false
	}
	return requested.LinkTo(f)
}

// Unlink gives this frame back a kernel of its own holding a snapshot of the shared translation, rotation,
// scaling and reference frame. It returns false if the frame was not linked.
func (f *Frame) Unlink() bool {
	if f.source == nil {
		return false
	}
	f.kernel = f.kernel.snapshot()
	f.source.linked = lo.Without(f.source.linked, f)
	f.source = nil
	return true
}

// UnlinkFrom unlinks requested from this frame. It returns false if requested is not linked to this frame.
func (f *Frame) UnlinkFrom(requested *Frame) bool {
	if requested == nil || requested.source != f {
		return false
	}
	return requested.Unlink()
}

// IsLinked is true when this frame is linked to a source.
func (f *Frame) IsLinked() bool {
	return f.source != nil
}

// IsLinkSource is true when other frames are linked to this one.
func (f *Frame) IsLinkSource() bool {
	return len(f.linked) > 0
}

// AreLinkedTogether is true when f and other are distinct frames sharing a kernel.
func (f *Frame) AreLinkedTogether(other *Frame) bool {
	return other != nil && f != other && f.kernel == other.kernel
}

// SourceFrame returns the frame this one is linked to, or nil.
func (f *Frame) SourceFrame() *Frame {
	return f.source
}

// LinkedFrames returns the frames linked to this one, in linking order.
func (f *Frame) LinkedFrames() []*Frame {
	return append([]*Frame(nil), f.linked...)
}
