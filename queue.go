package gal

import "github.com/ashura-engine/gal/hal"

// Queue is the device's single graphics+present queue (§4.1, exactly one
// per device).
type Queue struct {
	device *Device
	hal    hal.Queue
}

// Submit submits cmd for execution, waiting on wait (typically the
// current frame slot's acquire semaphore) before execution and signalling
// signal and fence on completion (§4.6 submit_frame).
func (q *Queue) Submit(cmd *CommandEncoder, wait, signal Semaphore, fence Fence) Status {
	if cmd == nil || cmd.IsZero() {
		return hal.StatusUnknown
	}
	cv, ok := q.device.commandEncoders.Get(cmd.h)
	if !ok {
		return hal.StatusUnknown
	}
	var waitSem, signalSem hal.Semaphore
	if !wait.IsZero() {
		v, ok := q.device.semaphores.Get(wait.h)
		if !ok {
			return hal.StatusUnknown
		}
		waitSem = *v
	}
	if !signal.IsZero() {
		v, ok := q.device.semaphores.Get(signal.h)
		if !ok {
			return hal.StatusUnknown
		}
		signalSem = *v
	}
	var f hal.Fence
	if !fence.IsZero() {
		v, ok := q.device.fences.Get(fence.h)
		if !ok {
			return hal.StatusUnknown
		}
		f = *v
	}
	return q.hal.Submit(*cv, waitSem, signalSem, f)
}

// Present submits the image at imageIndex to the windowing system,
// waiting on wait (the frame's submit semaphore) first. A StatusOutOfDate
// result marks the swapchain invalid (§4.6). Runs on the device's render
// thread, the same thread Swapchain.AcquireNextImage uses.
func (q *Queue) Present(sc Swapchain, imageIndex uint32, wait Semaphore) Status {
	scv, ok := q.device.swapchains.Get(sc.h)
	if !ok {
		return hal.StatusUnknown
	}
	var waitSem hal.Semaphore
	if !wait.IsZero() {
		v, ok := q.device.semaphores.Get(wait.h)
		if !ok {
			return hal.StatusUnknown
		}
		waitSem = *v
	}
	return q.device.renderLoop.RunOnRenderThread(func() any {
		return q.hal.Present(*scv, imageIndex, waitSem)
	}).(Status)
}

// WaitIdle blocks until all work submitted to q has completed
// (wait_queue_idle, one of the four blocking operations, §5).
func (q *Queue) WaitIdle() Status { return q.hal.WaitIdle() }
