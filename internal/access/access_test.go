package access

import (
	"testing"

	"github.com/ashura-engine/gal/types"
)

func read(stage types.PipelineStage, mask types.AccessMask) Access {
	return Access{Stage: stage, Mask: mask}
}

func write(stage types.PipelineStage, mask types.AccessMask) Access {
	return Access{Stage: stage, Mask: mask}
}

// TestBufferStateTable walks every row of the §4.4 sync state machine table
// for buffers and checks both the resulting sequence and whether a barrier
// was emitted.
func TestBufferStateTable(t *testing.T) {
	shaderRead := read(types.PipelineStageFragmentShader, types.AccessShaderRead)
	shaderWrite := write(types.PipelineStageFragmentShader, types.AccessShaderWrite)
	transferWrite := write(types.PipelineStageTransfer, types.AccessTransferWrite)

	t.Run("none -> read: no barrier, sequence Reads", func(t *testing.T) {
		var s BufferState
		b := s.Access(shaderRead)
		if b != nil {
			t.Fatalf("expected no barrier, got %+v", b)
		}
		if s.Sequence != SequenceReads {
			t.Fatalf("sequence = %v, want Reads", s.Sequence)
		}
	})

	t.Run("none -> write: no barrier, sequence Write", func(t *testing.T) {
		var s BufferState
		b := s.Access(shaderWrite)
		if b != nil {
			t.Fatalf("expected no barrier, got %+v", b)
		}
		if s.Sequence != SequenceWrite {
			t.Fatalf("sequence = %v, want Write", s.Sequence)
		}
	})

	t.Run("reads -> read: merges, no barrier", func(t *testing.T) {
		var s BufferState
		s.Access(shaderRead)
		b := s.Access(read(types.PipelineStageVertexShader, types.AccessUniformRead))
		if b != nil {
			t.Fatalf("expected no barrier, got %+v", b)
		}
		if s.Sequence != SequenceReads {
			t.Fatalf("sequence = %v, want Reads", s.Sequence)
		}
		want := types.PipelineStageFragmentShader | types.PipelineStageVertexShader
		if s.history[0].Stage != want {
			t.Fatalf("merged stage = %v, want %v", s.history[0].Stage, want)
		}
	})

	t.Run("reads -> write: barrier src=accumulated reads", func(t *testing.T) {
		var s BufferState
		s.Access(shaderRead)
		b := s.Access(transferWrite)
		if b == nil {
			t.Fatal("expected a barrier")
		}
		if b.Src != shaderRead {
			t.Errorf("barrier src = %+v, want %+v", b.Src, shaderRead)
		}
		if b.Dst != transferWrite {
			t.Errorf("barrier dst = %+v, want %+v", b.Dst, transferWrite)
		}
		if s.Sequence != SequenceWrite {
			t.Fatalf("sequence = %v, want Write", s.Sequence)
		}
	})

	t.Run("write -> read: barrier, sequence ReadAfterWrite", func(t *testing.T) {
		var s BufferState
		s.Access(transferWrite)
		b := s.Access(shaderRead)
		if b == nil {
			t.Fatal("expected a barrier")
		}
		if b.Src != transferWrite || b.Dst != shaderRead {
			t.Errorf("barrier = %+v, want src=%+v dst=%+v", b, transferWrite, shaderRead)
		}
		if s.Sequence != SequenceReadAfterWrite {
			t.Fatalf("sequence = %v, want ReadAfterWrite", s.Sequence)
		}
	})

	t.Run("write -> write: barrier, sequence stays Write", func(t *testing.T) {
		var s BufferState
		s.Access(transferWrite)
		b := s.Access(shaderWrite)
		if b == nil {
			t.Fatal("expected a barrier")
		}
		if s.Sequence != SequenceWrite {
			t.Fatalf("sequence = %v, want Write", s.Sequence)
		}
	})

	t.Run("read-after-write -> subset read: no additional barrier", func(t *testing.T) {
		var s BufferState
		s.Access(transferWrite)
		s.Access(shaderRead)
		// Same stage/access as the recorded post-write read: a true subset.
		b := s.Access(shaderRead)
		if b != nil {
			t.Fatalf("expected zero additional barriers for a subset read, got %+v", b)
		}
	})

	t.Run("read-after-write -> superset read: barrier, history ORed", func(t *testing.T) {
		var s BufferState
		s.Access(transferWrite)
		s.Access(shaderRead)
		wider := read(types.PipelineStageVertexShader, types.AccessUniformRead)
		b := s.Access(wider)
		if b == nil {
			t.Fatal("expected a barrier for a non-subset read")
		}
		if b.Src != transferWrite {
			t.Errorf("barrier src = %+v, want original write %+v", b.Src, transferWrite)
		}
		if s.Sequence != SequenceReadAfterWrite {
			t.Fatalf("sequence = %v, want ReadAfterWrite to persist", s.Sequence)
		}
	})

	t.Run("read-after-write -> write: barrier src=accumulated post-write reads", func(t *testing.T) {
		var s BufferState
		s.Access(transferWrite)
		s.Access(shaderRead)
		b := s.Access(shaderWrite)
		if b == nil {
			t.Fatal("expected a barrier")
		}
		if b.Src != shaderRead {
			t.Errorf("barrier src = %+v, want accumulated post-write read %+v", b.Src, shaderRead)
		}
		if s.Sequence != SequenceWrite {
			t.Fatalf("sequence = %v, want Write", s.Sequence)
		}
	})
}

// TestBufferStateBarrierMinimality is testable property 2: repeated reads
// of a post-write resource whose stage/access is a subset of the recorded
// post-write reads emit zero additional barriers.
func TestBufferStateBarrierMinimality(t *testing.T) {
	var s BufferState
	s.Access(write(types.PipelineStageTransfer, types.AccessTransferWrite))
	s.Access(read(types.PipelineStageFragmentShader, types.AccessShaderRead))

	barriers := 0
	for i := 0; i < 100; i++ {
		if s.Access(read(types.PipelineStageFragmentShader, types.AccessShaderRead)) != nil {
			barriers++
		}
	}
	if barriers != 0 {
		t.Fatalf("got %d barriers for 100 repeated subset reads, want 0", barriers)
	}
}

// TestImageStateLayoutAlwaysMatchesIncoming is testable property 3.
func TestImageStateLayoutAlwaysMatchesIncoming(t *testing.T) {
	var s ImageState
	accesses := []ImageAccess{
		{Access: write(types.PipelineStageTransfer, types.AccessTransferWrite), Layout: types.ImageLayoutTransferDstOptimal},
		{Access: read(types.PipelineStageFragmentShader, types.AccessShaderRead), Layout: types.ImageLayoutShaderReadOnlyOptimal},
		{Access: write(types.PipelineStageColorAttachmentOut, types.AccessColorAttachmentWrite), Layout: types.ImageLayoutColorAttachmentOptimal},
	}
	for _, a := range accesses {
		s.Access(a)
		if s.Layout != a.Layout {
			t.Fatalf("stored layout = %v, want %v", s.Layout, a.Layout)
		}
	}
}

// TestImageStateLayoutMismatchIsAlwaysAWrite covers the §4.4 extra rule: a
// layout change triggers a barrier even when the incoming access mask is a
// pure read.
func TestImageStateLayoutMismatchIsAlwaysAWrite(t *testing.T) {
	var s ImageState
	b := s.Access(ImageAccess{
		Access: write(types.PipelineStageTransfer, types.AccessTransferWrite),
		Layout: types.ImageLayoutTransferDstOptimal,
	})
	if b == nil {
		t.Fatal("expected undefined -> transfer-dst transition barrier")
	}
	if b.OldLayout != types.ImageLayoutUndefined || b.NewLayout != types.ImageLayoutTransferDstOptimal {
		t.Fatalf("transition = %v -> %v, want Undefined -> TransferDstOptimal", b.OldLayout, b.NewLayout)
	}

	b = s.Access(ImageAccess{
		Access: read(types.PipelineStageFragmentShader, types.AccessShaderRead),
		Layout: types.ImageLayoutShaderReadOnlyOptimal,
	})
	if b == nil {
		t.Fatal("expected a barrier: read-only access still changes layout")
	}
	if s.Sequence != SequenceWrite {
		t.Fatalf("sequence = %v, want Write", s.Sequence)
	}
}

// TestBufferStateReset clears accumulated history.
func TestBufferStateReset(t *testing.T) {
	var s BufferState
	s.Access(write(types.PipelineStageTransfer, types.AccessTransferWrite))
	s.Reset()
	if s.Sequence != SequenceNone {
		t.Fatalf("sequence after reset = %v, want None", s.Sequence)
	}
}
