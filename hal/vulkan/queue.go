// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
)

// Queue implements hal.Queue for Vulkan — the device's single
// graphics+present queue (§4.1).
type Queue struct {
	handle      vk.Queue
	device      *Device
	familyIndex uint32
}

// Submit implements hal.Queue.Submit.
func (q *Queue) Submit(cmd hal.CommandEncoder, wait hal.Semaphore, signal hal.Semaphore, fence hal.Fence) hal.Status {
	e, ok := cmd.(*CommandEncoder)
	if !ok || e == nil {
		return hal.StatusUnknown
	}

	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    &e.cmdBuffer,
	}

	waitStage := vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)
	if wait != nil {
		s, ok := wait.(*Semaphore)
		if !ok || s == nil || s.handle == 0 {
			return hal.StatusUnknown
		}
		submitInfo.WaitSemaphoreCount = 1
		submitInfo.PWaitSemaphores = &s.handle
		submitInfo.PWaitDstStageMask = &waitStage
	}

	var signalHandle vk.Semaphore
	if signal != nil {
		s, ok := signal.(*Semaphore)
		if !ok || s == nil || s.handle == 0 {
			return hal.StatusUnknown
		}
		signalHandle = s.handle
		submitInfo.SignalSemaphoreCount = 1
		submitInfo.PSignalSemaphores = &signalHandle
	}

	var fenceHandle vk.Fence
	if fence != nil {
		f, ok := fence.(*Fence)
		if !ok || f == nil {
			return hal.StatusUnknown
		}
		fenceHandle = f.handle
	}

	result := vk.QueueSubmit(q.handle, 1, &submitInfo, fenceHandle)
	return statusFromResult(result)
}

// Present implements hal.Queue.Present.
func (q *Queue) Present(swapchain hal.Swapchain, imageIndex uint32, wait hal.Semaphore) hal.Status {
	sc, ok := swapchain.(*Swapchain)
	if !ok || sc == nil || sc.handle == 0 {
		return hal.StatusUnknown
	}

	presentInfo := vk.PresentInfoKHR{
		SType:          vk.StructureTypePresentInfoKhr,
		SwapchainCount: 1,
		PSwapchains:    &sc.handle,
		PImageIndices:  &imageIndex,
	}
	if wait != nil {
		s, ok := wait.(*Semaphore)
		if !ok || s == nil || s.handle == 0 {
			return hal.StatusUnknown
		}
		presentInfo.WaitSemaphoreCount = 1
		presentInfo.PWaitSemaphores = &s.handle
	}

	result := vk.QueuePresentKHR(q.handle, &presentInfo)
	switch result {
	case vk.SuboptimalKhr:
		sc.optimal = false
		return hal.StatusSuboptimalSwapchain
	case vk.ErrorOutOfDateKhr:
		sc.valid = false
		return hal.StatusOutOfDate
	default:
		return statusFromResult(result)
	}
}

// WaitIdle implements hal.Queue.WaitIdle.
func (q *Queue) WaitIdle() hal.Status {
	return statusFromResult(vk.QueueWaitIdle(q.handle))
}
