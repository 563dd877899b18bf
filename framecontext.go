package gal

import (
	"fmt"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/types"
)

// frameSlot is one ring position: a command encoder plus the three
// synchronization primitives that pace its reuse (§3 "FrameContext").
type frameSlot struct {
	encoder      *CommandEncoder
	acquireSem   Semaphore
	submitSem    Semaphore
	submitFence  Fence
	pendingFrees []hal.Resource
}

// FrameContext drives the per-frame acquire/record/submit/present cycle
// over a fixed-size ring of N ≤ MAX_FRAME_BUFFERING slots (§3, §4.6).
// Attaching a FrameContext to a Device (via NewFrameContext) defers
// resource destruction to the owning slot's retirement instead of
// destroying immediately (§4.2).
type FrameContext struct {
	device    *Device
	swapchain *Swapchain
	desc      SwapchainDescriptor
	slots     []frameSlot

	// currentFrame advances once per submit_frame. trailingFrame =
	// max(currentFrame, N) - N is the frame index below which every
	// slot's work is guaranteed retired.
	currentFrame uint64

	imageIndex uint32
}

// NewFrameContext creates a ring of n slots (1 <= n <= MAX_FRAME_BUFFERING)
// over sc, and attaches itself to device so that Device.retire defers
// destruction to the slot that last touched the retiring resource.
func NewFrameContext(device *Device, sc *Swapchain, desc SwapchainDescriptor, n uint32) (*FrameContext, Status) {
	if n == 0 || n > types.MaxFrameBuffering {
		return nil, hal.StatusUnknown
	}
	fc := &FrameContext{device: device, swapchain: sc, desc: desc, slots: make([]frameSlot, n)}
	for i := range fc.slots {
		enc, status := device.CreateCommandEncoder(fmt.Sprintf("frame-encoder-%d", i))
		if !status.OK() {
			return nil, status
		}
		acquireSem, status := device.CreateSemaphore(fmt.Sprintf("frame-acquire-%d", i))
		if !status.OK() {
			return nil, status
		}
		submitSem, status := device.CreateSemaphore(fmt.Sprintf("frame-submit-%d", i))
		if !status.OK() {
			return nil, status
		}
		fence, status := device.CreateFence(FenceDescriptor{Label: fmt.Sprintf("frame-fence-%d", i), Signaled: true})
		if !status.OK() {
			return nil, status
		}
		fc.slots[i] = frameSlot{encoder: enc, acquireSem: acquireSem, submitSem: submitSem, submitFence: fence}
	}
	device.frame = fc
	return fc, hal.StatusSuccess
}

// CurrentFrame is the monotonic counter advanced by SubmitFrame.
func (fc *FrameContext) CurrentFrame() uint64 { return fc.currentFrame }

// TrailingFrame is the frame index below which every slot's work is
// guaranteed retired: max(current_frame, N) - N.
func (fc *FrameContext) TrailingFrame() uint64 {
	n := uint64(len(fc.slots))
	cur := fc.currentFrame
	if cur < n {
		cur = n
	}
	return cur - n
}

func (fc *FrameContext) slot() *frameSlot {
	return &fc.slots[fc.currentFrame%uint64(len(fc.slots))]
}

// CurrentEncoder returns the command encoder for the in-flight frame's
// slot, ready to record once BeginFrame has returned successfully.
func (fc *FrameContext) CurrentEncoder() *CommandEncoder { return fc.slot().encoder }

// RequestResize queues a swapchain resize to the given extent, applied by
// the next BeginFrame. Safe to call from a UI thread while the render
// thread is mid-frame (§4.6).
func (fc *FrameContext) RequestResize(width, height uint32) {
	fc.device.renderLoop.RequestResize(width, height)
}

// PauseRendering makes SubmitFrame a no-op until ResumeRendering, for a
// modal resize loop that must not submit against a swapchain it is about
// to recreate.
func (fc *FrameContext) PauseRendering() { fc.device.renderLoop.PauseRendering() }

// ResumeRendering undoes PauseRendering.
func (fc *FrameContext) ResumeRendering() { fc.device.renderLoop.ResumeRendering() }

// BeginFrame applies a pending RequestResize, if any, then recreates the
// swapchain if it was invalidated by a prior OUT_OF_DATE_KHR present,
// then acquires the next swapchain image, signalling the current slot's
// acquire semaphore (§4.6, scenario S5).
func (fc *FrameContext) BeginFrame() Status {
	if width, height, ok := fc.device.renderLoop.ConsumePendingResize(); ok {
		fc.desc.PreferredExtent = [2]uint32{width, height}
		if status := fc.device.WaitIdle(); !status.OK() {
			return status
		}
		if status := fc.swapchain.Recreate(fc.desc); !status.OK() {
			return status
		}
	}
	if !fc.swapchain.IsValid() {
		if status := fc.device.WaitIdle(); !status.OK() {
			return status
		}
		if status := fc.swapchain.Recreate(fc.desc); !status.OK() {
			return status
		}
	}
	slot := fc.slot()
	idx, status := fc.swapchain.AcquireNextImage(slot.acquireSem, Fence{})
	switch status {
	case hal.StatusSuccess, hal.StatusSuboptimalSwapchain:
		fc.imageIndex = idx
		return hal.StatusSuccess
	default:
		return status
	}
}

// SubmitFrame waits on the current slot's submit fence (blocking CPU
// until that slot's previous use fully retired, the point at which its
// deferred destructions run), resets it, submits the slot's encoder
// waiting on the acquire semaphore and signalling the submit semaphore
// plus fence, then presents using the submit semaphore. A StatusOutOfDate
// present result invalidates the swapchain for the next BeginFrame
// (§4.6, scenarios S4/S5).
func (fc *FrameContext) SubmitFrame() Status {
	if fc.device.renderLoop.IsRenderingPaused() {
		return hal.StatusSuccess
	}

	slot := fc.slot()

	if status := fc.device.WaitForFences([]Fence{slot.submitFence}, true, InfiniteTimeout); !status.OK() {
		return status
	}
	fc.retireSlot(slot)

	queue := fc.device.Queue()
	if status := queue.Submit(slot.encoder, slot.acquireSem, slot.submitSem, slot.submitFence); !status.OK() {
		return status
	}
	status := queue.Present(*fc.swapchain, fc.imageIndex, slot.submitSem)

	fc.currentFrame++
	fc.slot().encoder.Reset()

	if status == hal.StatusOutOfDate {
		return status
	}
	return hal.StatusSuccess
}

// deferDestroy is called by Device.retire while fc is attached: v is
// freed once the current slot's submit fence next retires.
func (fc *FrameContext) deferDestroy(v hal.Resource) {
	slot := fc.slot()
	slot.pendingFrees = append(slot.pendingFrees, v)
}

// retireSlot runs the destructions deferred against slot since its last
// retirement — its submit fence having just been waited on guarantees
// the GPU is done with them.
func (fc *FrameContext) retireSlot(slot *frameSlot) {
	for _, v := range slot.pendingFrees {
		v.Destroy()
	}
	slot.pendingFrees = slot.pendingFrees[:0]
}

// Destroy waits for the device to go idle, then releases every slot's
// encoder and synchronization primitives and detaches fc from its
// device.
func (fc *FrameContext) Destroy() {
	fc.device.WaitIdle()
	for i := range fc.slots {
		slot := &fc.slots[i]
		for _, v := range slot.pendingFrees {
			v.Destroy()
		}
		slot.encoder.Release()
		slot.acquireSem.Release()
		slot.submitSem.Release()
		slot.submitFence.Release()
	}
	if fc.device.frame == fc {
		fc.device.frame = nil
	}
}
