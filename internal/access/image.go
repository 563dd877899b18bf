package access

import "github.com/ashura-engine/gal/types"

// ImageAccess is Access plus the layout the image must be in for this
// access (§3: "Image state mirrors BufferState but adds a current layout
// in each access record").
type ImageAccess struct {
	Access
	Layout types.ImageLayout
}

// ImageBarrier is Barrier plus the layout transition it performs.
type ImageBarrier struct {
	Src       Access
	Dst       Access
	OldLayout types.ImageLayout
	NewLayout types.ImageLayout
}

// ImageState is the access history and current layout tracked on an Image
// record (§3).
type ImageState struct {
	Sequence Sequence
	history  [2]ImageAccess
	Layout   types.ImageLayout
}

// Access runs the sync state machine for one incoming image access. A
// layout mismatch is always classified as a write, per the extra rule in
// §4.4, regardless of the incoming access mask; the stored layout always
// ends up equal to the incoming layout (testable property 3).
func (s *ImageState) Access(incoming ImageAccess) *ImageBarrier {
	layoutChanged := incoming.Layout != s.Layout
	hasWrite := incoming.Mask.IsWrite() || layoutChanged

	priorSequence := s.Sequence
	priorReads := s.history[0].Access
	oldLayout := s.Layout

	bufState := BufferState{Sequence: s.Sequence, history: [2]Access{s.history[0].Access, s.history[1].Access}}
	b := bufState.step(incoming.Access, hasWrite)

	s.Sequence = bufState.Sequence
	s.history[0].Access = bufState.history[0]
	s.history[1].Access = bufState.history[1]
	s.history[0].Layout = incoming.Layout
	s.history[1].Layout = incoming.Layout
	s.Layout = incoming.Layout

	switch {
	case b != nil:
		return &ImageBarrier{Src: b.Src, Dst: incoming.Access, OldLayout: oldLayout, NewLayout: incoming.Layout}
	case !layoutChanged:
		return nil
	}

	// The buffer-style machine found no data hazard, but the layout moved,
	// which §4.4 always treats as a write requiring a transition barrier.
	var src Access
	switch priorSequence {
	case SequenceNone:
		src = Access{} // no prior access: transition from UNDEFINED with no wait
	case SequenceReads:
		src = priorReads
	case SequenceReadAfterWrite:
		src = s.history[0].Access // the original write, left untouched by step()
	}
	return &ImageBarrier{Src: src, Dst: incoming.Access, OldLayout: oldLayout, NewLayout: incoming.Layout}
}

// Reset clears the access history and layout.
func (s *ImageState) Reset() {
	*s = ImageState{}
}
