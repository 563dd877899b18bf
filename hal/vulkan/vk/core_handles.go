// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Dispatchable and non-dispatchable handles. Vulkan defines dispatchable
// handles as opaque pointers and non-dispatchable handles as either opaque
// pointers or 64-bit integers depending on platform; both collapse to a
// uintptr-sized value for goffi's calling convention (see loader.go).
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr

	DeviceMemory         uintptr
	CommandPool          uintptr
	Buffer               uintptr
	BufferView           uintptr
	Image                uintptr
	ImageView            uintptr
	ShaderModule         uintptr
	Pipeline             uintptr
	PipelineLayout       uintptr
	PipelineCache        uintptr
	RenderPass           uintptr
	Framebuffer          uintptr
	DescriptorSetLayout  uintptr
	DescriptorPool       uintptr
	DescriptorSet        uintptr
	Sampler              uintptr
	Fence                uintptr
	Semaphore            uintptr
	Event                uintptr
	QueryPool            uintptr

	SurfaceKHR             uintptr
	SwapchainKHR           uintptr
	DebugUtilsMessengerEXT uintptr
)

// Bool32, DeviceSize, DeviceAddress and SampleMask are the Vulkan scalar
// typedefs that do not map onto a Go built-in 1:1.
type (
	Bool32       uint32
	DeviceSize   uint64
	DeviceAddress uint64
	SampleMask   uint32
)

// CAMetalLayer and XlibWindow are opaque platform handle types used only
// by the matching api_<os>.go surface constructor.
type (
	CAMetalLayer struct{}
	XlibWindow   uintptr
)

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// WholeSize requests "from offset to the end of the resource" for range
// and size parameters (VK_WHOLE_SIZE).
const WholeSize DeviceSize = ^DeviceSize(0)

// QueueFamilyIgnored marks a barrier as not transferring queue family
// ownership (VK_QUEUE_FAMILY_IGNORED).
const QueueFamilyIgnored uint32 = ^uint32(0)

// RemainingMipLevels and RemainingArrayLayers saturate a subresource
// range to the end of the resource's mip/layer count.
const (
	RemainingMipLevels   uint32 = ^uint32(0)
	RemainingArrayLayers uint32 = ^uint32(0)
)

// Result mirrors VkResult: >=0 is success/status, <0 is an error (§7 Status
// derives its fatal/non-fatal split from this sign).
type Result int32

const (
	Success       Result = 0
	NotReady      Result = 1
	Timeout       Result = 2
	EventSet      Result = 3
	EventReset    Result = 4
	Incomplete    Result = 5
	SuboptimalKhr Result = 1000001003

	ErrorOutOfHostMemory    Result = -1
	ErrorOutOfDeviceMemory  Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost         Result = -4
	ErrorMemoryMapFailed    Result = -5
	ErrorLayerNotPresent    Result = -6
	ErrorExtensionNotPresent Result = -7
	ErrorFeatureNotPresent  Result = -8
	ErrorIncompatibleDriver Result = -9
	ErrorTooManyObjects     Result = -10
	ErrorFormatNotSupported Result = -11
	ErrorFragmentedPool     Result = -12
	ErrorOutOfPoolMemory    Result = -1000069000
	ErrorSurfaceLostKhr     Result = -1000000000
	ErrorOutOfDateKhr       Result = -1000001004
)

// StructureType mirrors VkStructureType and tags the PNext chain head of
// every create-info struct.
type StructureType uint32

const (
	StructureTypeApplicationInfo                     StructureType = 0
	StructureTypeInstanceCreateInfo                  StructureType = 1
	StructureTypeDeviceQueueCreateInfo                StructureType = 2
	StructureTypeDeviceCreateInfo                     StructureType = 3
	StructureTypeSubmitInfo                           StructureType = 4
	StructureTypeMemoryAllocateInfo                   StructureType = 5
	StructureTypeFenceCreateInfo                      StructureType = 8
	StructureTypeSemaphoreCreateInfo                  StructureType = 9
	StructureTypeBufferCreateInfo                     StructureType = 12
	StructureTypeBufferViewCreateInfo                 StructureType = 13
	StructureTypeImageCreateInfo                      StructureType = 14
	StructureTypeImageViewCreateInfo                  StructureType = 15
	StructureTypeShaderModuleCreateInfo               StructureType = 16
	StructureTypePipelineCacheCreateInfo              StructureType = 17
	StructureTypePipelineVertexInputStateCreateInfo   StructureType = 20
	StructureTypePipelineInputAssemblyStateCreateInfo StructureType = 21
	StructureTypePipelineViewportStateCreateInfo      StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo   StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo  StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo    StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo       StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo           StructureType = 28
	StructureTypeComputePipelineCreateInfo            StructureType = 29
	StructureTypePipelineLayoutCreateInfo             StructureType = 30
	StructureTypeSamplerCreateInfo                    StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo        StructureType = 32
	StructureTypeDescriptorPoolCreateInfo             StructureType = 33
	StructureTypeDescriptorSetAllocateInfo            StructureType = 34
	StructureTypeWriteDescriptorSet                   StructureType = 35
	StructureTypeCopyDescriptorSet                    StructureType = 36
	StructureTypeFramebufferCreateInfo                StructureType = 37
	StructureTypeRenderPassCreateInfo                 StructureType = 38
	StructureTypeCommandPoolCreateInfo                StructureType = 39
	StructureTypeCommandBufferAllocateInfo            StructureType = 40
	StructureTypeCommandBufferInheritanceInfo         StructureType = 41
	StructureTypeCommandBufferBeginInfo               StructureType = 42
	StructureTypeRenderPassBeginInfo                  StructureType = 43
	StructureTypePipelineShaderStageCreateInfo        StructureType = 18
	StructureTypeMemoryBarrier                        StructureType = 46
	StructureTypeBufferMemoryBarrier                  StructureType = 44
	StructureTypeImageMemoryBarrier                   StructureType = 45

	StructureTypeSwapchainCreateInfoKhr    StructureType = 1000001000
	StructureTypePresentInfoKhr            StructureType = 1000001001
	StructureTypeWin32SurfaceCreateInfoKhr  StructureType = 1000009000
	StructureTypeXlibSurfaceCreateInfoKhr   StructureType = 1000004000
	StructureTypeWaylandSurfaceCreateInfoKhr StructureType = 1000006000
	StructureTypeMetalSurfaceCreateInfoExt  StructureType = 1000217000

	StructureTypeDebugUtilsObjectNameInfoExt      StructureType = 1000128000
	StructureTypeDebugUtilsMessengerCreateInfoExt StructureType = 1000128004
	StructureTypeDebugUtilsLabelExt               StructureType = 1000128002
)
