// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vk

import (
	"syscall"
	"unsafe"
)

// Typed call wrappers for commands whose Go-side signature carries strongly
// typed pointers instead of the raw-uintptr getters in commands_ext.go.
// Each wraps a single Vulkan entry point resolved by LoadInstance/LoadDevice.

// CreateRenderPass wraps vkCreateRenderPass.
func (c *Commands) CreateRenderPass(device Device, createInfo *RenderPassCreateInfo, allocator *AllocationCallbacks, renderPass *RenderPass) Result {
	if c.createRenderPass == 0 {
		return ErrorInitializationFailed
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createRenderPass,
		uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(renderPass)))
	return Result(ret)
}

// DestroyRenderPass wraps vkDestroyRenderPass.
func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, allocator *AllocationCallbacks) {
	if c.destroyRenderPass == 0 {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(c.destroyRenderPass, uintptr(device), uintptr(renderPass), pAllocator)
}

// CreateFramebuffer wraps vkCreateFramebuffer.
func (c *Commands) CreateFramebuffer(device Device, createInfo *FramebufferCreateInfo, allocator *AllocationCallbacks, framebuffer *Framebuffer) Result {
	if c.createFramebuffer == 0 {
		return ErrorInitializationFailed
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createFramebuffer,
		uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(framebuffer)))
	return Result(ret)
}

// DestroyFramebuffer wraps vkDestroyFramebuffer.
func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, allocator *AllocationCallbacks) {
	if c.destroyFramebuffer == 0 {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(c.destroyFramebuffer, uintptr(device), uintptr(framebuffer), pAllocator)
}

// CreateFence wraps vkCreateFence.
func (c *Commands) CreateFence(device Device, createInfo *FenceCreateInfo, allocator *AllocationCallbacks, fence *Fence) Result {
	if c.createFence == 0 {
		return ErrorInitializationFailed
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createFence,
		uintptr(device), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(fence)))
	return Result(ret)
}

// DestroyFence wraps vkDestroyFence.
func (c *Commands) DestroyFence(device Device, fence Fence, allocator *AllocationCallbacks) {
	if c.destroyFence == 0 {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(c.destroyFence, uintptr(device), uintptr(fence), pAllocator)
}

// ResetFences wraps vkResetFences.
func (c *Commands) ResetFences(device Device, fenceCount uint32, fences *Fence) Result {
	if c.resetFences == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(c.resetFences, uintptr(device), uintptr(fenceCount), uintptr(unsafe.Pointer(fences)))
	return Result(ret)
}

// WaitForFences wraps vkWaitForFences.
func (c *Commands) WaitForFences(device Device, fenceCount uint32, fences *Fence, waitAll Bool32, timeout uint64) Result {
	if c.waitForFences == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(c.waitForFences,
		uintptr(device), uintptr(fenceCount), uintptr(unsafe.Pointer(fences)), uintptr(waitAll), uintptr(timeout))
	return Result(ret)
}

// GetFenceStatus wraps vkGetFenceStatus.
func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	if c.getFenceStatus == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(c.getFenceStatus, uintptr(device), uintptr(fence))
	return Result(ret)
}

// CreateDebugUtilsMessengerEXT wraps vkCreateDebugUtilsMessengerEXT. Only
// valid when HasDebugUtils() is true.
func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, createInfo *DebugUtilsMessengerCreateInfoEXT, allocator *AllocationCallbacks, messenger *DebugUtilsMessengerEXT) Result {
	if c.createDebugUtilsMessengerEXT == 0 {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createDebugUtilsMessengerEXT,
		uintptr(instance), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(messenger)))
	return Result(ret)
}

// DestroyDebugUtilsMessengerEXT wraps vkDestroyDebugUtilsMessengerEXT.
func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, allocator *AllocationCallbacks) {
	if c.destroyDebugUtilsMessengerEXT == 0 {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(c.destroyDebugUtilsMessengerEXT, uintptr(instance), uintptr(messenger), pAllocator)
}

// SetDebugUtilsObjectNameEXT wraps vkSetDebugUtilsObjectNameEXT.
func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, nameInfo *DebugUtilsObjectNameInfoEXT) Result {
	if c.setDebugUtilsObjectNameEXT == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(c.setDebugUtilsObjectNameEXT, uintptr(device), uintptr(unsafe.Pointer(nameInfo)))
	return Result(ret)
}

// HasDebugUtilsLabels reports whether command-buffer debug labels
// (vkCmdBeginDebugUtilsLabelEXT/vkCmdEndDebugUtilsLabelEXT) are available.
func (c *Commands) HasDebugUtilsLabels() bool {
	return c.cmdBeginDebugUtilsLabelEXT != 0 && c.cmdEndDebugUtilsLabelEXT != 0
}

// CmdBeginDebugUtilsLabelEXT wraps vkCmdBeginDebugUtilsLabelEXT, opening a
// named region on cmd for tools like RenderDoc to group.
func (c *Commands) CmdBeginDebugUtilsLabelEXT(cmd CommandBuffer, label *DebugUtilsLabelEXT) {
	if c.cmdBeginDebugUtilsLabelEXT == 0 {
		return
	}
	syscall.SyscallN(c.cmdBeginDebugUtilsLabelEXT, uintptr(cmd), uintptr(unsafe.Pointer(label)))
}

// CmdEndDebugUtilsLabelEXT wraps vkCmdEndDebugUtilsLabelEXT, closing the
// most recently opened label region on cmd.
func (c *Commands) CmdEndDebugUtilsLabelEXT(cmd CommandBuffer) {
	if c.cmdEndDebugUtilsLabelEXT == 0 {
		return
	}
	syscall.SyscallN(c.cmdEndDebugUtilsLabelEXT, uintptr(cmd))
}

// CreateWin32SurfaceKHR wraps vkCreateWin32SurfaceKHR.
func (c *Commands) CreateWin32SurfaceKHR(instance Instance, createInfo *Win32SurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createWin32SurfaceKHR == 0 {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createWin32SurfaceKHR,
		uintptr(instance), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(surface)))
	return Result(ret)
}

// CreateXlibSurfaceKHR wraps vkCreateXlibSurfaceKHR.
func (c *Commands) CreateXlibSurfaceKHR(instance Instance, createInfo *XlibSurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createXlibSurfaceKHR == 0 {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createXlibSurfaceKHR,
		uintptr(instance), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(surface)))
	return Result(ret)
}

// CreateWaylandSurfaceKHR wraps vkCreateWaylandSurfaceKHR.
func (c *Commands) CreateWaylandSurfaceKHR(instance Instance, createInfo *WaylandSurfaceCreateInfoKHR, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createWaylandSurfaceKHR == 0 {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createWaylandSurfaceKHR,
		uintptr(instance), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(surface)))
	return Result(ret)
}

// DestroySurfaceKHR wraps vkDestroySurfaceKHR. Resolved from the instance
// dispatch table since a VkSurfaceKHR outlives any logical device.
func (c *Commands) DestroySurfaceKHR(instance Instance, surface SurfaceKHR, allocator *AllocationCallbacks) {
	if c.destroySurfaceKHR == 0 {
		return
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(c.destroySurfaceKHR, uintptr(instance), uintptr(surface), pAllocator)
}

// CreateMetalSurfaceEXT wraps vkCreateMetalSurfaceEXT.
func (c *Commands) CreateMetalSurfaceEXT(instance Instance, createInfo *MetalSurfaceCreateInfoEXT, allocator *AllocationCallbacks, surface *SurfaceKHR) Result {
	if c.createMetalSurfaceEXT == 0 {
		return ErrorExtensionNotPresent
	}
	var pAllocator uintptr
	if allocator != nil {
		pAllocator = uintptr(unsafe.Pointer(allocator))
	}
	ret, _, _ := syscall.SyscallN(c.createMetalSurfaceEXT,
		uintptr(instance), uintptr(unsafe.Pointer(createInfo)), pAllocator, uintptr(unsafe.Pointer(surface)))
	return Result(ret)
}
