// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import (
	"time"

	"github.com/ashura-engine/gal/types"
)

// InstanceDescriptor configures Backend.CreateInstance (§4.1).
type InstanceDescriptor struct {
	AppName             string
	EnableValidation    bool
	EnableDebugMarkers  bool
}

// Backend identifies and creates the one HAL implementation this GAL
// supports (§1 Non-goals: no cross-backend portability — there is
// exactly one Backend value, Vulkan).
type Backend interface {
	CreateInstance(desc *InstanceDescriptor) (Instance, Status)
}

// Instance is the Vulkan driver entry point: enumerates physical devices
// and opens a logical Device (§4.1).
type Instance interface {
	// EnumerateAdapters enumerates physical devices, optionally filtered
	// to those that can present to surfaceHint.
	EnumerateAdapters(surfaceHint Surface) []Adapter

	// OpenDevice selects the first adapter in EnumerateAdapters order
	// that appears in preference and can present to every surface in
	// mustPresentTo, and creates a logical device with exactly one
	// graphics+present queue (§4.1). Fails with FeatureNotPresent if no
	// adapter matches.
	OpenDevice(preference []types.DeviceType, mustPresentTo []Surface) (Device, Status)

	Destroy()
}

// Adapter is an enumerated physical device.
type Adapter interface {
	Info() AdapterInfo
	SupportsPresent(surface Surface) bool
}

// AdapterInfo is the metadata §4.1 device-selection preference matches
// against.
type AdapterInfo struct {
	Name       string
	DeviceType types.DeviceType
	VendorID   uint32
	DeviceID   uint32
}

// Surface is an opaque, platform-provided presentation target. The GAL
// never creates surfaces (§6); window-system modules hand them in and
// own their destruction.
type Surface interface {
	// Handle returns the backend-native handle (a VkSurfaceKHR cast to
	// uintptr in the Vulkan backend) for diagnostic purposes only.
	Handle() uintptr
}

// Queue is the device's single graphics+present queue (§4.1: "exactly one
// graphics+present queue").
type Queue interface {
	// Submit submits one command buffer, waiting on wait before execution
	// and signalling signal plus fence on completion.
	Submit(cmd CommandEncoder, wait Semaphore, signal Semaphore, fence Fence) Status
	Present(swapchain Swapchain, imageIndex uint32, wait Semaphore) Status
	WaitIdle() Status
}

// Semaphore is a GPU-GPU ordering primitive (acquire/submit semaphores in
// §3 "FrameContext").
type Semaphore interface {
	Resource
}

// SwapchainDescriptor is the create-info for Device.CreateSwapchain and
// the input to recreation (§4.6).
type SwapchainDescriptor struct {
	Label             string
	Surface           Surface
	PreferredExtent   [2]uint32
	PreferredBuffering uint32
	Usage             types.ImageUsage
	Format            types.Format
	ColorSpace        types.ColorSpace
	PresentMode       types.PresentMode
	CompositeAlpha    types.CompositeAlpha
}

// Swapchain owns the present-able image array and tracks the generation
// counter that is the ground truth for image identity across recreations
// (§3 "Swapchain").
type Swapchain interface {
	Resource

	IsValid() bool
	IsOptimal() bool
	CurrentExtent() (width, height uint32)
	Generation() uint64

	Images() []Image
	CurrentImageIndex() uint32

	// AcquireNextImage signals acquireSem when the returned image index is
	// ready. Returns StatusSuboptimalSwapchain (non-fatal) or
	// StatusOutOfDate (invalidates the swapchain).
	AcquireNextImage(acquireSem Semaphore, fence Fence) (imageIndex uint32, status Status)

	// Recreate queries surface capabilities, clamps extent/buffering to
	// supported ranges, creates a new swapchain with this one as
	// oldSwapchain, and destroys the old swapchain after success (or
	// unconditionally on failure — §4.6). Bumps Generation() on success.
	Recreate(desc SwapchainDescriptor) Status
}

// FenceDescriptor is the create-info for Device.CreateFence.
type FenceDescriptor struct {
	Label    string
	Signaled bool
}

// Device is the logical GPU device: exclusive owner of the function
// tables and device allocator, and the resource factory for every §3
// object kind (§4.2).
type Device interface {
	Queue() Queue

	CreateBuffer(desc BufferDescriptor) (Buffer, Status)
	CreateImage(desc ImageDescriptor) (Image, Status)
	CreateBufferView(buf Buffer, desc BufferViewDescriptor) (BufferView, Status)
	CreateImageView(img Image, desc ImageViewDescriptor) (ImageView, Status)
	CreateSampler(desc SamplerDescriptor) (Sampler, Status)
	CreateShader(desc ShaderDescriptor) (Shader, Status)
	CreateRenderPass(desc RenderPassDescriptor) (RenderPass, Status)
	CreateFramebuffer(desc FramebufferDescriptor) (Framebuffer, Status)
	CreateDescriptorSetLayout(bindings []DescriptorBindingDescriptor) (DescriptorSetLayout, Status)
	CreateDescriptorHeap(desc DescriptorHeapDescriptor) (DescriptorHeap, Status)
	CreatePipelineCache(desc PipelineCacheDescriptor) (PipelineCache, Status)
	CreateComputePipeline(desc ComputePipelineDescriptor) (ComputePipeline, Status)
	CreateGraphicsPipeline(desc GraphicsPipelineDescriptor) (GraphicsPipeline, Status)
	CreateFence(desc FenceDescriptor) (Fence, Status)
	CreateSemaphore(label string) (Semaphore, Status)
	CreateCommandEncoder(label string) (CommandEncoder, Status)
	CreateSwapchain(desc SwapchainDescriptor) (Swapchain, Status)

	// WaitForFences blocks until all (or any, if waitAll is false) fences
	// are signaled or timeout elapses (§5 "Suspension/blocking points").
	WaitForFences(fences []Fence, waitAll bool, timeout time.Duration) Status
	WaitIdle() Status

	Destroy()
}
