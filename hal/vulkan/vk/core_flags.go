// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Flag typedefs. Vulkan represents every Flags type as a plain uint32
// bitmask typedef'd per flag family so the Go type system catches
// mixed-family bugs at the call site (§4 GLOSSARY "no lookup table").
type (
	BufferUsageFlags        uint32
	ImageUsageFlags         uint32
	ImageAspectFlags        uint32
	MemoryPropertyFlags     uint32
	MemoryHeapFlags         uint32
	PipelineStageFlags      uint32
	AccessFlags             uint32
	ShaderStageFlags        uint32
	CullModeFlags           uint32
	ColorComponentFlags     uint32
	CommandPoolCreateFlags  uint32
	CommandPoolResetFlags   uint32
	CommandBufferUsageFlags uint32
	DescriptorPoolCreateFlags uint32
	QueueFlags              uint32
	DependencyFlags         uint32
	StencilFaceFlags        uint32
	SampleCountFlagBits     uint32
	CompositeAlphaFlagBitsKHR uint32
	QueryFlags              uint32
	MemoryMapFlags          uint32

	DebugUtilsMessageSeverityFlagsEXT    uint32
	DebugUtilsMessageSeverityFlagBitsEXT uint32
	DebugUtilsMessageTypeFlagsEXT        uint32
	DebugUtilsMessageTypeFlagBitsEXT     uint32
)

const (
	BufferUsageTransferSrcBit   BufferUsageFlags = 0x00000001
	BufferUsageTransferDstBit   BufferUsageFlags = 0x00000002
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 0x00000004
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 0x00000008
	BufferUsageUniformBufferBit BufferUsageFlags = 0x00000010
	BufferUsageStorageBufferBit BufferUsageFlags = 0x00000020
	BufferUsageIndexBufferBit   BufferUsageFlags = 0x00000040
	BufferUsageVertexBufferBit  BufferUsageFlags = 0x00000080
	BufferUsageIndirectBufferBit BufferUsageFlags = 0x00000100
)

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x00000001
	ImageUsageTransferDstBit            ImageUsageFlags = 0x00000002
	ImageUsageSampledBit                ImageUsageFlags = 0x00000004
	ImageUsageStorageBit                ImageUsageFlags = 0x00000008
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x00000010
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x00000020
	ImageUsageInputAttachmentBit        ImageUsageFlags = 0x00000080
)

const (
	ImageAspectColorBit   ImageAspectFlags = 0x00000001
	ImageAspectDepthBit   ImageAspectFlags = 0x00000002
	ImageAspectStencilBit ImageAspectFlags = 0x00000004
)

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x00000001
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x00000002
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x00000004
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x00000008
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x00000010
)

const (
	PipelineStageTopOfPipeBit            PipelineStageFlags = 0x00000001
	PipelineStageDrawIndirectBit         PipelineStageFlags = 0x00000002
	PipelineStageVertexInputBit          PipelineStageFlags = 0x00000004
	PipelineStageVertexShaderBit         PipelineStageFlags = 0x00000008
	PipelineStageFragmentShaderBit       PipelineStageFlags = 0x00000080
	PipelineStageColorAttachmentOutputBit PipelineStageFlags = 0x00000400
	PipelineStageComputeShaderBit        PipelineStageFlags = 0x00000800
	PipelineStageTransferBit             PipelineStageFlags = 0x00001000
	PipelineStageBottomOfPipeBit         PipelineStageFlags = 0x00002000
	PipelineStageAllCommandsBit          PipelineStageFlags = 0x00010000
	PipelineStageEarlyFragmentTestsBit   PipelineStageFlags = 0x00000100
	PipelineStageLateFragmentTestsBit    PipelineStageFlags = 0x00000200
)

const (
	AccessIndirectCommandReadBit       AccessFlags = 0x00000001
	AccessIndexReadBit                 AccessFlags = 0x00000002
	AccessVertexAttributeReadBit       AccessFlags = 0x00000004
	AccessUniformReadBit               AccessFlags = 0x00000008
	AccessShaderReadBit                AccessFlags = 0x00000020
	AccessShaderWriteBit               AccessFlags = 0x00000040
	AccessColorAttachmentReadBit       AccessFlags = 0x00000080
	AccessColorAttachmentWriteBit      AccessFlags = 0x00000100
	AccessDepthStencilAttachmentReadBit  AccessFlags = 0x00000200
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x00000400
	AccessTransferReadBit              AccessFlags = 0x00000800
	AccessTransferWriteBit             AccessFlags = 0x00001000
	AccessHostReadBit                  AccessFlags = 0x00002000
	AccessHostWriteBit                 AccessFlags = 0x00004000
	AccessMemoryReadBit                AccessFlags = 0x00008000
	AccessMemoryWriteBit               AccessFlags = 0x00010000
)

const (
	ShaderStageVertexBit   ShaderStageFlags = 0x00000001
	ShaderStageFragmentBit ShaderStageFlags = 0x00000010
	ShaderStageComputeBit  ShaderStageFlags = 0x00000020
)

const (
	CullModeNone     CullModeFlags = 0
	CullModeFrontBit CullModeFlags = 0x00000001
	CullModeBackBit  CullModeFlags = 0x00000002
)

const (
	ColorComponentRBit ColorComponentFlags = 0x00000001
	ColorComponentGBit ColorComponentFlags = 0x00000002
	ColorComponentBBit ColorComponentFlags = 0x00000004
	ColorComponentABit ColorComponentFlags = 0x00000008
)

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x00000001
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x00000002
)

const (
	CommandBufferUsageOneTimeSubmitBit      CommandBufferUsageFlags = 0x00000001
	CommandBufferUsageRenderPassContinueBit CommandBufferUsageFlags = 0x00000002
	CommandBufferUsageSimultaneousUseBit    CommandBufferUsageFlags = 0x00000004
)

const (
	DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 0x00000001
)

const (
	QueueGraphicsBit QueueFlags = 0x00000001
	QueueComputeBit  QueueFlags = 0x00000002
	QueueTransferBit QueueFlags = 0x00000004
)

const StencilFaceFrontAndBack StencilFaceFlags = 0x00000003

const (
	SampleCount1  SampleCountFlagBits = 0x00000001
	SampleCount2  SampleCountFlagBits = 0x00000002
	SampleCount4  SampleCountFlagBits = 0x00000004
	SampleCount8  SampleCountFlagBits = 0x00000008
	SampleCount16 SampleCountFlagBits = 0x00000010
)

const CompositeAlphaOpaqueBitKhr CompositeAlphaFlagBitsKHR = 0x00000001

const (
	DebugUtilsMessageSeverityInfoBitExt    DebugUtilsMessageSeverityFlagBitsEXT = 0x00000010
	DebugUtilsMessageSeverityWarningBitExt DebugUtilsMessageSeverityFlagBitsEXT = 0x00000100
	DebugUtilsMessageSeverityErrorBitExt   DebugUtilsMessageSeverityFlagBitsEXT = 0x00001000

	DebugUtilsMessageTypeGeneralBitExt     DebugUtilsMessageTypeFlagBitsEXT = 0x00000001
	DebugUtilsMessageTypeValidationBitExt  DebugUtilsMessageTypeFlagBitsEXT = 0x00000002
	DebugUtilsMessageTypePerformanceBitExt DebugUtilsMessageTypeFlagBitsEXT = 0x00000004
)
