// Package access implements the per-resource synchronization state machine
// that the command encoder consults before every operation (§4.4). Each
// buffer or image carries an access history of at most two records; this
// package decides, given the next incoming access, whether a pipeline
// barrier is required and what its src/dst stage+access masks (and, for
// images, layouts) should be.
//
// The table in §4.4 is implemented directly as a switch over the prior
// AccessSequence — this mirrors the "sum type over command kinds" shape
// the source asks for (§9) while keeping the eight table rows individually
// readable instead of folding them into one clever formula.
package access

import "github.com/ashura-engine/gal/types"

// Sequence is the per-resource access-history state (§3, Buffer/Image
// "AccessSequence").
type Sequence uint8

const (
	SequenceNone Sequence = iota
	SequenceReads
	SequenceWrite
	SequenceReadAfterWrite
)

// Access describes one pending access: the pipeline stage(s) it runs in
// and the memory access it performs.
type Access struct {
	Stage types.PipelineStage
	Mask  types.AccessMask
}

func (a Access) merge(b Access) Access {
	return Access{Stage: a.Stage | b.Stage, Mask: a.Mask | b.Mask}
}

// subsetOf reports whether a's stages and access bits are all present in b.
func (a Access) subsetOf(b Access) bool {
	return a.Stage&^b.Stage == 0 && a.Mask&^b.Mask == 0
}

// Barrier describes a pipeline barrier the caller must emit before the
// incoming command, expressed as the accumulated source access it must
// wait on and the destination access about to occur.
type Barrier struct {
	Src Access
	Dst Access
}

// BufferState is the access history tracked on a Buffer record (§3).
type BufferState struct {
	Sequence Sequence
	history  [2]Access
}

// Access runs the sync state machine for one incoming buffer access and
// returns the barrier to emit, or nil if none is required. This is the
// access_buffer primitive described in §4.4.
func (s *BufferState) Access(incoming Access) *Barrier {
	hasWrite := incoming.Mask.IsWrite()
	return s.step(incoming, hasWrite)
}

func (s *BufferState) step(incoming Access, hasWrite bool) *Barrier {
	switch s.Sequence {
	case SequenceNone:
		s.history[0] = incoming
		if hasWrite {
			s.Sequence = SequenceWrite
		} else {
			s.Sequence = SequenceReads
		}
		return nil

	case SequenceReads:
		if !hasWrite {
			s.history[0] = s.history[0].merge(incoming)
			return nil
		}
		b := &Barrier{Src: s.history[0], Dst: incoming}
		s.Sequence = SequenceWrite
		s.history[0] = incoming
		return b

	case SequenceWrite:
		b := &Barrier{Src: s.history[0], Dst: incoming}
		if hasWrite {
			s.history[0] = incoming
			return b
		}
		s.Sequence = SequenceReadAfterWrite
		s.history[1] = incoming
		return b

	case SequenceReadAfterWrite:
		if !hasWrite {
			if incoming.subsetOf(s.history[1]) {
				return nil
			}
			s.history[1] = s.history[1].merge(incoming)
			return &Barrier{Src: s.history[0], Dst: incoming}
		}
		b := &Barrier{Src: s.history[1], Dst: incoming}
		s.Sequence = SequenceWrite
		s.history[0] = incoming
		return b
	}
	return nil
}

// Reset clears the access history, used when a buffer is recreated or its
// tracking needs to restart (e.g. after a host-side invalidate that the
// caller knows synchronizes all outstanding GPU access).
func (s *BufferState) Reset() {
	*s = BufferState{}
}
