package gal

import (
	"testing"

	"github.com/ashura-engine/gal/hal"
)

func newTestFrameContext(t *testing.T) (*Device, *fakeDevice, *Swapchain, *fakeSwapchain, *FrameContext) {
	t.Helper()
	d, fd := newTestDevice()
	sc, status := d.CreateSwapchain(SwapchainDescriptor{})
	if !status.OK() {
		t.Fatalf("CreateSwapchain status = %v", status)
	}
	backing, ok := d.swapchains.Get(sc.h)
	if !ok {
		t.Fatal("swapchain handle should resolve right after CreateSwapchain")
	}
	fsc := (*backing).(*fakeSwapchain)

	fc, status := NewFrameContext(d, sc, SwapchainDescriptor{}, 2)
	if !status.OK() {
		t.Fatalf("NewFrameContext status = %v", status)
	}
	return d, fd, sc, fsc, fc
}

// TestSubmitFrameWaitsWithInfiniteTimeout covers the reviewer-mandated
// fix: SubmitFrame must block on the slot's fence rather than poll it,
// i.e. pass InfiniteTimeout through to WaitForFences.
func TestSubmitFrameWaitsWithInfiniteTimeout(t *testing.T) {
	_, fd, _, _, fc := newTestFrameContext(t)

	if status := fc.SubmitFrame(); !status.OK() {
		t.Fatalf("SubmitFrame status = %v, want success", status)
	}
	if fd.waitForFencesCalls != 1 {
		t.Fatalf("WaitForFences calls = %d, want 1", fd.waitForFencesCalls)
	}
	if !fd.lastWaitAll {
		t.Fatal("SubmitFrame must wait for all fences in the slot, not just one")
	}
	if fd.lastTimeout != InfiniteTimeout {
		t.Fatalf("SubmitFrame timeout = %v, want InfiniteTimeout (%v)", fd.lastTimeout, InfiniteTimeout)
	}
}

// TestSubmitFramePropagatesFenceWaitFailure ensures a failing fence wait
// short-circuits before touching the queue.
func TestSubmitFramePropagatesFenceWaitFailure(t *testing.T) {
	_, fd, _, _, fc := newTestFrameContext(t)
	fd.waitForFencesStatus = hal.StatusDeviceLost

	status := fc.SubmitFrame()
	if status != hal.StatusDeviceLost {
		t.Fatalf("SubmitFrame status = %v, want StatusDeviceLost", status)
	}
	if fd.queue.submitCount != 0 {
		t.Fatal("SubmitFrame must not submit after a failing fence wait")
	}
}

// TestSubmitFrameShortCircuitsWhilePaused covers PauseRendering: a paused
// FrameContext must not touch the fence, queue, or swapchain at all.
func TestSubmitFrameShortCircuitsWhilePaused(t *testing.T) {
	_, fd, _, _, fc := newTestFrameContext(t)
	fc.PauseRendering()

	if status := fc.SubmitFrame(); !status.OK() {
		t.Fatalf("SubmitFrame while paused = %v, want success no-op", status)
	}
	if fd.waitForFencesCalls != 0 {
		t.Fatal("paused SubmitFrame must not wait on fences")
	}
	if fd.queue.submitCount != 0 || fd.queue.presentCount != 0 {
		t.Fatal("paused SubmitFrame must not submit or present")
	}

	fc.ResumeRendering()
	if status := fc.SubmitFrame(); !status.OK() {
		t.Fatalf("SubmitFrame after ResumeRendering = %v, want success", status)
	}
	if fd.queue.submitCount != 1 {
		t.Fatalf("submitCount after resume = %d, want 1", fd.queue.submitCount)
	}
}

// TestBeginFrameRecreatesOnInvalidSwapchain covers the invalid-swapchain
// branch: an OUT_OF_DATE-style invalidation must be healed by Recreate
// before acquiring.
func TestBeginFrameRecreatesOnInvalidSwapchain(t *testing.T) {
	_, _, _, fsc, fc := newTestFrameContext(t)
	fsc.valid = false
	startGen := fsc.generation

	if status := fc.BeginFrame(); !status.OK() {
		t.Fatalf("BeginFrame status = %v, want success", status)
	}
	if !fsc.valid {
		t.Fatal("BeginFrame must recreate an invalid swapchain before acquiring")
	}
	if fsc.generation != startGen+1 {
		t.Fatalf("swapchain generation = %d, want %d after Recreate", fsc.generation, startGen+1)
	}
	if fsc.acquireCalls != 1 {
		t.Fatalf("acquireCalls = %d, want 1", fsc.acquireCalls)
	}
}

// TestBeginFrameConsumesPendingResize covers scenario S5: a UI-thread
// RequestResize must be applied (WaitIdle + Recreate) by the next
// BeginFrame, exactly once.
func TestBeginFrameConsumesPendingResize(t *testing.T) {
	_, _, _, fsc, fc := newTestFrameContext(t)
	startGen := fsc.generation

	fc.RequestResize(1920, 1080)
	if status := fc.BeginFrame(); !status.OK() {
		t.Fatalf("BeginFrame status = %v, want success", status)
	}
	if fsc.generation != startGen+1 {
		t.Fatalf("swapchain generation = %d, want %d after resize", fsc.generation, startGen+1)
	}
	if fc.desc.PreferredExtent != [2]uint32{1920, 1080} {
		t.Fatalf("desc.PreferredExtent = %v, want [1920 1080]", fc.desc.PreferredExtent)
	}

	// A second BeginFrame with no new resize request must not recreate again.
	genAfterFirst := fsc.generation
	if status := fc.BeginFrame(); !status.OK() {
		t.Fatalf("second BeginFrame status = %v, want success", status)
	}
	if fsc.generation != genAfterFirst {
		t.Fatalf("swapchain generation changed without a pending resize: %d -> %d", genAfterFirst, fsc.generation)
	}
}

// TestBeginFrameSurfacesAcquireFailure ensures a non-recoverable acquire
// status is returned to the caller rather than swallowed.
func TestBeginFrameSurfacesAcquireFailure(t *testing.T) {
	_, _, _, fsc, fc := newTestFrameContext(t)
	fsc.acquireStatus = hal.StatusDeviceLost

	if status := fc.BeginFrame(); status != hal.StatusDeviceLost {
		t.Fatalf("BeginFrame status = %v, want StatusDeviceLost", status)
	}
}

// TestSubmitFrameAdvancesCurrentFrame checks the ring cursor advances and
// wraps across the slot count.
func TestSubmitFrameAdvancesCurrentFrame(t *testing.T) {
	_, _, _, _, fc := newTestFrameContext(t)
	if fc.CurrentFrame() != 0 {
		t.Fatalf("CurrentFrame() = %d, want 0", fc.CurrentFrame())
	}
	for i := uint64(1); i <= 3; i++ {
		if status := fc.SubmitFrame(); !status.OK() {
			t.Fatalf("SubmitFrame[%d] status = %v", i, status)
		}
		if fc.CurrentFrame() != i {
			t.Fatalf("CurrentFrame() = %d, want %d", fc.CurrentFrame(), i)
		}
	}
}
