// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vk

import (
	"syscall"
	"unsafe"
)

// Package-level wrappers, in the style of memory.go, for device-level
// entry points LoadDevice/LoadInstance already resolve into deviceCmds but
// that had no typed wrapper: views, samplers, shader modules, descriptor
// sets, pipelines, command pools/buffers, recording and presentation.

func pAllocatorOf(p *AllocationCallbacks) uintptr {
	if p == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(p))
}

// GetDeviceQueue wraps vkGetDeviceQueue.
func GetDeviceQueue(device Device, queueFamilyIndex, queueIndex uint32, queue *Queue) {
	if deviceCmds == nil || deviceCmds.getDeviceQueue == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.getDeviceQueue, uintptr(device), uintptr(queueFamilyIndex), uintptr(queueIndex), uintptr(unsafe.Pointer(queue)))
}

// DeviceWaitIdle wraps vkDeviceWaitIdle.
func DeviceWaitIdle(device Device) Result {
	if deviceCmds == nil || deviceCmds.deviceWaitIdle == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.deviceWaitIdle, uintptr(device))
	return Result(ret)
}

// QueueWaitIdle wraps vkQueueWaitIdle.
func QueueWaitIdle(queue Queue) Result {
	if deviceCmds == nil || deviceCmds.queueWaitIdle == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.queueWaitIdle, uintptr(queue))
	return Result(ret)
}

// QueueSubmit wraps vkQueueSubmit.
func QueueSubmit(queue Queue, submitCount uint32, submits *SubmitInfo, fence Fence) Result {
	if deviceCmds == nil || deviceCmds.queueSubmit == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.queueSubmit, uintptr(queue), uintptr(submitCount), uintptr(unsafe.Pointer(submits)), uintptr(fence))
	return Result(ret)
}

// QueuePresentKHR wraps vkQueuePresentKHR.
func QueuePresentKHR(queue Queue, present *PresentInfoKHR) Result {
	if deviceCmds == nil || deviceCmds.queuePresentKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.queuePresentKHR, uintptr(queue), uintptr(unsafe.Pointer(present)))
	return Result(ret)
}

// CreateBufferView wraps vkCreateBufferView.
func CreateBufferView(device Device, createInfo *BufferViewCreateInfo, allocator *AllocationCallbacks, view *BufferView) Result {
	if deviceCmds == nil || deviceCmds.createBufferView == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createBufferView, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(view)))
	return Result(ret)
}

// DestroyBufferView wraps vkDestroyBufferView.
func DestroyBufferView(device Device, view BufferView, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyBufferView == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyBufferView, uintptr(device), uintptr(view), pAllocatorOf(allocator))
}

// CreateImageView wraps vkCreateImageView.
func CreateImageView(device Device, createInfo *ImageViewCreateInfo, allocator *AllocationCallbacks, view *ImageView) Result {
	if deviceCmds == nil || deviceCmds.createImageView == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createImageView, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(view)))
	return Result(ret)
}

// DestroyImageView wraps vkDestroyImageView.
func DestroyImageView(device Device, view ImageView, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyImageView == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyImageView, uintptr(device), uintptr(view), pAllocatorOf(allocator))
}

// CreateSampler wraps vkCreateSampler.
func CreateSampler(device Device, createInfo *SamplerCreateInfo, allocator *AllocationCallbacks, sampler *Sampler) Result {
	if deviceCmds == nil || deviceCmds.createSampler == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createSampler, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(sampler)))
	return Result(ret)
}

// DestroySampler wraps vkDestroySampler.
func DestroySampler(device Device, sampler Sampler, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroySampler == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroySampler, uintptr(device), uintptr(sampler), pAllocatorOf(allocator))
}

// CreateShaderModule wraps vkCreateShaderModule.
func CreateShaderModule(device Device, createInfo *ShaderModuleCreateInfo, allocator *AllocationCallbacks, module *ShaderModule) Result {
	if deviceCmds == nil || deviceCmds.createShaderModule == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createShaderModule, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(module)))
	return Result(ret)
}

// DestroyShaderModule wraps vkDestroyShaderModule.
func DestroyShaderModule(device Device, module ShaderModule, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyShaderModule == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyShaderModule, uintptr(device), uintptr(module), pAllocatorOf(allocator))
}

// CreateDescriptorSetLayout wraps vkCreateDescriptorSetLayout.
func CreateDescriptorSetLayout(device Device, createInfo *DescriptorSetLayoutCreateInfo, allocator *AllocationCallbacks, layout *DescriptorSetLayout) Result {
	if deviceCmds == nil || deviceCmds.createDescriptorSetLayout == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createDescriptorSetLayout, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(layout)))
	return Result(ret)
}

// DestroyDescriptorSetLayout wraps vkDestroyDescriptorSetLayout.
func DestroyDescriptorSetLayout(device Device, layout DescriptorSetLayout, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyDescriptorSetLayout == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyDescriptorSetLayout, uintptr(device), uintptr(layout), pAllocatorOf(allocator))
}

// CreateDescriptorPool wraps vkCreateDescriptorPool.
func CreateDescriptorPool(device Device, createInfo *DescriptorPoolCreateInfo, allocator *AllocationCallbacks, pool *DescriptorPool) Result {
	if deviceCmds == nil || deviceCmds.createDescriptorPool == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createDescriptorPool, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(pool)))
	return Result(ret)
}

// DestroyDescriptorPool wraps vkDestroyDescriptorPool.
func DestroyDescriptorPool(device Device, pool DescriptorPool, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyDescriptorPool == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyDescriptorPool, uintptr(device), uintptr(pool), pAllocatorOf(allocator))
}

// ResetDescriptorPool wraps vkResetDescriptorPool.
func ResetDescriptorPool(device Device, pool DescriptorPool, flags uint32) Result {
	if deviceCmds == nil || deviceCmds.resetDescriptorPool == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.resetDescriptorPool, uintptr(device), uintptr(pool), uintptr(flags))
	return Result(ret)
}

// AllocateDescriptorSets wraps vkAllocateDescriptorSets.
func AllocateDescriptorSets(device Device, allocInfo *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	if deviceCmds == nil || deviceCmds.allocateDescriptorSets == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.allocateDescriptorSets, uintptr(device), uintptr(unsafe.Pointer(allocInfo)), uintptr(unsafe.Pointer(sets)))
	return Result(ret)
}

// FreeDescriptorSets wraps vkFreeDescriptorSets.
func FreeDescriptorSets(device Device, pool DescriptorPool, setCount uint32, sets *DescriptorSet) Result {
	if deviceCmds == nil || deviceCmds.freeDescriptorSets == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.freeDescriptorSets, uintptr(device), uintptr(pool), uintptr(setCount), uintptr(unsafe.Pointer(sets)))
	return Result(ret)
}

// UpdateDescriptorSets wraps vkUpdateDescriptorSets.
func UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	if deviceCmds == nil || deviceCmds.updateDescriptorSets == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.updateDescriptorSets, uintptr(device), uintptr(writeCount), uintptr(unsafe.Pointer(writes)), uintptr(copyCount), uintptr(unsafe.Pointer(copies)))
}

// CreatePipelineLayout wraps vkCreatePipelineLayout.
func CreatePipelineLayout(device Device, createInfo *PipelineLayoutCreateInfo, allocator *AllocationCallbacks, layout *PipelineLayout) Result {
	if deviceCmds == nil || deviceCmds.createPipelineLayout == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createPipelineLayout, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(layout)))
	return Result(ret)
}

// DestroyPipelineLayout wraps vkDestroyPipelineLayout.
func DestroyPipelineLayout(device Device, layout PipelineLayout, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyPipelineLayout == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyPipelineLayout, uintptr(device), uintptr(layout), pAllocatorOf(allocator))
}

// CreateGraphicsPipelines wraps vkCreateGraphicsPipelines.
func CreateGraphicsPipelines(device Device, cache PipelineCache, count uint32, infos *GraphicsPipelineCreateInfo, allocator *AllocationCallbacks, pipelines *Pipeline) Result {
	if deviceCmds == nil || deviceCmds.createGraphicsPipelines == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createGraphicsPipelines, uintptr(device), uintptr(cache), uintptr(count), uintptr(unsafe.Pointer(infos)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(pipelines)))
	return Result(ret)
}

// CreateComputePipelines wraps vkCreateComputePipelines.
func CreateComputePipelines(device Device, cache PipelineCache, count uint32, infos *ComputePipelineCreateInfo, allocator *AllocationCallbacks, pipelines *Pipeline) Result {
	if deviceCmds == nil || deviceCmds.createComputePipelines == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createComputePipelines, uintptr(device), uintptr(cache), uintptr(count), uintptr(unsafe.Pointer(infos)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(pipelines)))
	return Result(ret)
}

// DestroyPipeline wraps vkDestroyPipeline.
func DestroyPipeline(device Device, pipeline Pipeline, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyPipeline == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyPipeline, uintptr(device), uintptr(pipeline), pAllocatorOf(allocator))
}

// CreatePipelineCache wraps vkCreatePipelineCache.
func CreatePipelineCache(device Device, createInfo *PipelineCacheCreateInfo, allocator *AllocationCallbacks, cache *PipelineCache) Result {
	if deviceCmds == nil || deviceCmds.createPipelineCache == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createPipelineCache, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(cache)))
	return Result(ret)
}

// DestroyPipelineCache wraps vkDestroyPipelineCache.
func DestroyPipelineCache(device Device, cache PipelineCache, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroyPipelineCache == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroyPipelineCache, uintptr(device), uintptr(cache), pAllocatorOf(allocator))
}

// GetPipelineCacheData wraps vkGetPipelineCacheData.
func GetPipelineCacheData(device Device, cache PipelineCache, size *uintptr, data unsafe.Pointer) Result {
	if deviceCmds == nil || deviceCmds.getPipelineCacheData == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.getPipelineCacheData, uintptr(device), uintptr(cache), uintptr(unsafe.Pointer(size)), uintptr(data))
	return Result(ret)
}

// MergePipelineCaches wraps vkMergePipelineCaches.
func MergePipelineCaches(device Device, dst PipelineCache, srcCount uint32, src *PipelineCache) Result {
	if deviceCmds == nil || deviceCmds.mergePipelineCaches == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.mergePipelineCaches, uintptr(device), uintptr(dst), uintptr(srcCount), uintptr(unsafe.Pointer(src)))
	return Result(ret)
}

// CreateSemaphore wraps vkCreateSemaphore.
func CreateSemaphore(device Device, createInfo *SemaphoreCreateInfo, allocator *AllocationCallbacks, semaphore *Semaphore) Result {
	if deviceCmds == nil || deviceCmds.createSemaphore == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createSemaphore, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(semaphore)))
	return Result(ret)
}

// DestroySemaphore wraps vkDestroySemaphore.
func DestroySemaphore(device Device, semaphore Semaphore, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroySemaphore == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroySemaphore, uintptr(device), uintptr(semaphore), pAllocatorOf(allocator))
}

// CreateSwapchainKHR wraps vkCreateSwapchainKHR.
func CreateSwapchainKHR(device Device, createInfo *SwapchainCreateInfoKHR, allocator *AllocationCallbacks, swapchain *SwapchainKHR) Result {
	if deviceCmds == nil || deviceCmds.createSwapchainKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.createSwapchainKHR, uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocatorOf(allocator), uintptr(unsafe.Pointer(swapchain)))
	return Result(ret)
}

// DestroySwapchainKHR wraps vkDestroySwapchainKHR.
func DestroySwapchainKHR(device Device, swapchain SwapchainKHR, allocator *AllocationCallbacks) {
	if deviceCmds == nil || deviceCmds.destroySwapchainKHR == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.destroySwapchainKHR, uintptr(device), uintptr(swapchain), pAllocatorOf(allocator))
}

// GetSwapchainImagesKHR wraps vkGetSwapchainImagesKHR.
func GetSwapchainImagesKHR(device Device, swapchain SwapchainKHR, count *uint32, images *Image) Result {
	if deviceCmds == nil || deviceCmds.getSwapchainImagesKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.getSwapchainImagesKHR, uintptr(device), uintptr(swapchain), uintptr(unsafe.Pointer(count)), uintptr(unsafe.Pointer(images)))
	return Result(ret)
}

// AcquireNextImageKHR wraps vkAcquireNextImageKHR.
func AcquireNextImageKHR(device Device, swapchain SwapchainKHR, timeout uint64, semaphore Semaphore, fence Fence, imageIndex *uint32) Result {
	if deviceCmds == nil || deviceCmds.acquireNextImageKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(deviceCmds.acquireNextImageKHR, uintptr(device), uintptr(swapchain), uintptr(timeout), uintptr(semaphore), uintptr(fence), uintptr(unsafe.Pointer(imageIndex)))
	return Result(ret)
}

// GetPhysicalDeviceSurfaceCapabilitiesKHR wraps
// vkGetPhysicalDeviceSurfaceCapabilitiesKHR. Resolved from the instance
// dispatch table; takes an explicit cmds argument rather than deviceCmds
// because it can be called before a logical VkDevice exists.
func GetPhysicalDeviceSurfaceCapabilitiesKHR(cmds *Commands, physicalDevice PhysicalDevice, surface SurfaceKHR, caps *SurfaceCapabilitiesKHR) Result {
	if cmds == nil || cmds.getPhysicalDeviceSurfaceCapabilitiesKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(cmds.getPhysicalDeviceSurfaceCapabilitiesKHR, uintptr(physicalDevice), uintptr(surface), uintptr(unsafe.Pointer(caps)))
	return Result(ret)
}

// GetPhysicalDeviceSurfaceFormatsKHR wraps vkGetPhysicalDeviceSurfaceFormatsKHR.
func GetPhysicalDeviceSurfaceFormatsKHR(cmds *Commands, physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, formats *SurfaceFormatKHR) Result {
	if cmds == nil || cmds.getPhysicalDeviceSurfaceFormatsKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(cmds.getPhysicalDeviceSurfaceFormatsKHR, uintptr(physicalDevice), uintptr(surface), uintptr(unsafe.Pointer(count)), uintptr(unsafe.Pointer(formats)))
	return Result(ret)
}

// GetPhysicalDeviceSurfacePresentModesKHR wraps
// vkGetPhysicalDeviceSurfacePresentModesKHR.
func GetPhysicalDeviceSurfacePresentModesKHR(cmds *Commands, physicalDevice PhysicalDevice, surface SurfaceKHR, count *uint32, modes *PresentModeKHR) Result {
	if cmds == nil || cmds.getPhysicalDeviceSurfacePresentModesKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(cmds.getPhysicalDeviceSurfacePresentModesKHR, uintptr(physicalDevice), uintptr(surface), uintptr(unsafe.Pointer(count)), uintptr(unsafe.Pointer(modes)))
	return Result(ret)
}

// GetPhysicalDeviceSurfaceSupportKHR wraps
// vkGetPhysicalDeviceSurfaceSupportKHR.
func GetPhysicalDeviceSurfaceSupportKHR(cmds *Commands, physicalDevice PhysicalDevice, queueFamilyIndex uint32, surface SurfaceKHR, supported *Bool32) Result {
	if cmds == nil || cmds.getPhysicalDeviceSurfaceSupportKHR == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(cmds.getPhysicalDeviceSurfaceSupportKHR, uintptr(physicalDevice), uintptr(queueFamilyIndex), uintptr(surface), uintptr(unsafe.Pointer(supported)))
	return Result(ret)
}

// Command-buffer recording. None return a Result — Vulkan defers all
// validation of these to vkEndCommandBuffer / vkQueueSubmit.

func CmdPipelineBarrier(cmd CommandBuffer, srcStage, dstStage PipelineStageFlags, dependencyFlags DependencyFlags,
	memCount uint32, mem *MemoryBarrier, bufCount uint32, buf *BufferMemoryBarrier, imgCount uint32, img *ImageMemoryBarrier) {
	if deviceCmds == nil || deviceCmds.cmdPipelineBarrier == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdPipelineBarrier, uintptr(cmd), uintptr(srcStage), uintptr(dstStage), uintptr(dependencyFlags),
		uintptr(memCount), uintptr(unsafe.Pointer(mem)), uintptr(bufCount), uintptr(unsafe.Pointer(buf)), uintptr(imgCount), uintptr(unsafe.Pointer(img)))
}

func CmdCopyBuffer(cmd CommandBuffer, src, dst Buffer, regionCount uint32, regions *BufferCopy) {
	if deviceCmds == nil || deviceCmds.cmdCopyBuffer == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdCopyBuffer, uintptr(cmd), uintptr(src), uintptr(dst), uintptr(regionCount), uintptr(unsafe.Pointer(regions)))
}

func CmdCopyImage(cmd CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageCopy) {
	if deviceCmds == nil || deviceCmds.cmdCopyImage == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdCopyImage, uintptr(cmd), uintptr(src), uintptr(srcLayout), uintptr(dst), uintptr(dstLayout), uintptr(regionCount), uintptr(unsafe.Pointer(regions)))
}

func CmdCopyBufferToImage(cmd CommandBuffer, src Buffer, dst Image, dstLayout ImageLayout, regionCount uint32, regions *BufferImageCopy) {
	if deviceCmds == nil || deviceCmds.cmdCopyBufferToImage == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdCopyBufferToImage, uintptr(cmd), uintptr(src), uintptr(dst), uintptr(dstLayout), uintptr(regionCount), uintptr(unsafe.Pointer(regions)))
}

func CmdCopyImageToBuffer(cmd CommandBuffer, src Image, srcLayout ImageLayout, dst Buffer, regionCount uint32, regions *BufferImageCopy) {
	if deviceCmds == nil || deviceCmds.cmdCopyImageToBuffer == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdCopyImageToBuffer, uintptr(cmd), uintptr(src), uintptr(srcLayout), uintptr(dst), uintptr(regionCount), uintptr(unsafe.Pointer(regions)))
}

func CmdBlitImage(cmd CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageBlit, filter Filter) {
	if deviceCmds == nil || deviceCmds.cmdBlitImage == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdBlitImage, uintptr(cmd), uintptr(src), uintptr(srcLayout), uintptr(dst), uintptr(dstLayout), uintptr(regionCount), uintptr(unsafe.Pointer(regions)), uintptr(filter))
}

func CmdResolveImage(cmd CommandBuffer, src Image, srcLayout ImageLayout, dst Image, dstLayout ImageLayout, regionCount uint32, regions *ImageResolve) {
	if deviceCmds == nil || deviceCmds.cmdResolveImage == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdResolveImage, uintptr(cmd), uintptr(src), uintptr(srcLayout), uintptr(dst), uintptr(dstLayout), uintptr(regionCount), uintptr(unsafe.Pointer(regions)))
}

func CmdClearColorImage(cmd CommandBuffer, img Image, layout ImageLayout, value *ClearValue, rangeCount uint32, ranges *ImageSubresourceRange) {
	if deviceCmds == nil || deviceCmds.cmdClearColorImage == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdClearColorImage, uintptr(cmd), uintptr(img), uintptr(layout), uintptr(unsafe.Pointer(value)), uintptr(rangeCount), uintptr(unsafe.Pointer(ranges)))
}

func CmdClearDepthStencilImage(cmd CommandBuffer, img Image, layout ImageLayout, value *ClearValue, rangeCount uint32, ranges *ImageSubresourceRange) {
	if deviceCmds == nil || deviceCmds.cmdClearDepthStencilImage == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdClearDepthStencilImage, uintptr(cmd), uintptr(img), uintptr(layout), uintptr(unsafe.Pointer(value)), uintptr(rangeCount), uintptr(unsafe.Pointer(ranges)))
}

func CmdFillBuffer(cmd CommandBuffer, buf Buffer, offset, size DeviceSize, data uint32) {
	if deviceCmds == nil || deviceCmds.cmdFillBuffer == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdFillBuffer, uintptr(cmd), uintptr(buf), uintptr(offset), uintptr(size), uintptr(data))
}

func CmdUpdateBuffer(cmd CommandBuffer, buf Buffer, offset DeviceSize, size uintptr, data unsafe.Pointer) {
	if deviceCmds == nil || deviceCmds.cmdUpdateBuffer == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdUpdateBuffer, uintptr(cmd), uintptr(buf), uintptr(offset), uintptr(size), uintptr(data))
}

func CmdBeginRenderPass(cmd CommandBuffer, beginInfo *RenderPassBeginInfo, contents uint32) {
	if deviceCmds == nil || deviceCmds.cmdBeginRenderPass == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdBeginRenderPass, uintptr(cmd), uintptr(unsafe.Pointer(beginInfo)), uintptr(contents))
}

func CmdEndRenderPass(cmd CommandBuffer) {
	if deviceCmds == nil || deviceCmds.cmdEndRenderPass == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdEndRenderPass, uintptr(cmd))
}

func CmdBindPipeline(cmd CommandBuffer, bindPoint PipelineBindPoint, pipeline Pipeline) {
	if deviceCmds == nil || deviceCmds.cmdBindPipeline == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdBindPipeline, uintptr(cmd), uintptr(bindPoint), uintptr(pipeline))
}

func CmdBindDescriptorSets(cmd CommandBuffer, bindPoint PipelineBindPoint, layout PipelineLayout,
	firstSet, setCount uint32, sets *DescriptorSet, dynamicOffsetCount uint32, dynamicOffsets *uint32) {
	if deviceCmds == nil || deviceCmds.cmdBindDescriptorSets == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdBindDescriptorSets, uintptr(cmd), uintptr(bindPoint), uintptr(layout), uintptr(firstSet), uintptr(setCount),
		uintptr(unsafe.Pointer(sets)), uintptr(dynamicOffsetCount), uintptr(unsafe.Pointer(dynamicOffsets)))
}

func CmdPushConstants(cmd CommandBuffer, layout PipelineLayout, stageFlags ShaderStageFlags, offset, size uint32, values unsafe.Pointer) {
	if deviceCmds == nil || deviceCmds.cmdPushConstants == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdPushConstants, uintptr(cmd), uintptr(layout), uintptr(stageFlags), uintptr(offset), uintptr(size), uintptr(values))
}

func CmdDispatch(cmd CommandBuffer, x, y, z uint32) {
	if deviceCmds == nil || deviceCmds.cmdDispatch == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdDispatch, uintptr(cmd), uintptr(x), uintptr(y), uintptr(z))
}

func CmdDispatchIndirect(cmd CommandBuffer, buf Buffer, offset DeviceSize) {
	if deviceCmds == nil || deviceCmds.cmdDispatchIndirect == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdDispatchIndirect, uintptr(cmd), uintptr(buf), uintptr(offset))
}

func CmdSetViewport(cmd CommandBuffer, first, count uint32, viewports *Viewport) {
	if deviceCmds == nil || deviceCmds.cmdSetViewport == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdSetViewport, uintptr(cmd), uintptr(first), uintptr(count), uintptr(unsafe.Pointer(viewports)))
}

func CmdSetScissor(cmd CommandBuffer, first, count uint32, scissors *Rect2D) {
	if deviceCmds == nil || deviceCmds.cmdSetScissor == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdSetScissor, uintptr(cmd), uintptr(first), uintptr(count), uintptr(unsafe.Pointer(scissors)))
}

func CmdSetBlendConstants(cmd CommandBuffer, constants *[4]float32) {
	if deviceCmds == nil || deviceCmds.cmdSetBlendConstants == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdSetBlendConstants, uintptr(cmd), uintptr(unsafe.Pointer(constants)))
}

func CmdSetStencilCompareMask(cmd CommandBuffer, faceMask StencilFaceFlags, mask uint32) {
	if deviceCmds == nil || deviceCmds.cmdSetStencilCompareMask == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdSetStencilCompareMask, uintptr(cmd), uintptr(faceMask), uintptr(mask))
}

func CmdSetStencilReferenceMasked(cmd CommandBuffer, faceMask StencilFaceFlags, ref uint32) {
	if deviceCmds == nil || deviceCmds.cmdSetStencilReference == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdSetStencilReference, uintptr(cmd), uintptr(faceMask), uintptr(ref))
}

func CmdSetStencilWriteMask(cmd CommandBuffer, faceMask StencilFaceFlags, mask uint32) {
	if deviceCmds == nil || deviceCmds.cmdSetStencilWriteMask == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdSetStencilWriteMask, uintptr(cmd), uintptr(faceMask), uintptr(mask))
}

func CmdBindVertexBuffers(cmd CommandBuffer, firstBinding, bindingCount uint32, buffers *Buffer, offsets *DeviceSize) {
	if deviceCmds == nil || deviceCmds.cmdBindVertexBuffers == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdBindVertexBuffers, uintptr(cmd), uintptr(firstBinding), uintptr(bindingCount), uintptr(unsafe.Pointer(buffers)), uintptr(unsafe.Pointer(offsets)))
}

func CmdBindIndexBuffer(cmd CommandBuffer, buf Buffer, offset DeviceSize, indexType IndexType) {
	if deviceCmds == nil || deviceCmds.cmdBindIndexBuffer == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdBindIndexBuffer, uintptr(cmd), uintptr(buf), uintptr(offset), uintptr(indexType))
}

func CmdDraw(cmd CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if deviceCmds == nil || deviceCmds.cmdDraw == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdDraw, uintptr(cmd), uintptr(vertexCount), uintptr(instanceCount), uintptr(firstVertex), uintptr(firstInstance))
}

func CmdDrawIndexed(cmd CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	if deviceCmds == nil || deviceCmds.cmdDrawIndexed == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdDrawIndexed, uintptr(cmd), uintptr(indexCount), uintptr(instanceCount), uintptr(firstIndex), uintptr(vertexOffset), uintptr(firstInstance))
}

func CmdDrawIndirect(cmd CommandBuffer, buf Buffer, offset DeviceSize, drawCount, stride uint32) {
	if deviceCmds == nil || deviceCmds.cmdDrawIndirect == 0 {
		return
	}
	//nolint:errcheck
	syscall.SyscallN(deviceCmds.cmdDrawIndirect, uintptr(cmd), uintptr(buf), uintptr(offset), uintptr(drawCount), uintptr(stride))
}
