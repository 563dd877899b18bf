package gal

import (
	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/types"
)

// Create-info descriptors. hal's shapes already match the GAL vocabulary
// one-for-one (DESIGN.md) — gal re-exports them by alias instead of
// duplicating a parallel set of structs and toHAL() converters.
type (
	BufferDescriptor            = hal.BufferDescriptor
	ImageDescriptor              = hal.ImageDescriptor
	BufferViewDescriptor         = hal.BufferViewDescriptor
	ImageViewDescriptor          = hal.ImageViewDescriptor
	SamplerDescriptor            = hal.SamplerDescriptor
	ShaderDescriptor             = hal.ShaderDescriptor
	AttachmentDescriptor         = hal.AttachmentDescriptor
	RenderPassDescriptor         = hal.RenderPassDescriptor
	PipelineCacheDescriptor      = hal.PipelineCacheDescriptor
	PushConstantRange            = hal.PushConstantRange
	VertexAttributeDescriptor    = hal.VertexAttributeDescriptor
	VertexBindingDescriptor      = hal.VertexBindingDescriptor
	RasterizationState           = hal.RasterizationState
	DepthStencilState            = hal.DepthStencilState
	StencilOpState               = hal.StencilOpState
	ColorBlendAttachmentState    = hal.ColorBlendAttachmentState
	DescriptorBindingDescriptor  = hal.DescriptorBindingDescriptor
	DescriptorHeapStats          = hal.DescriptorHeapStats
	DescriptorPoolStats          = hal.DescriptorPoolStats
	FenceDescriptor              = hal.FenceDescriptor
	InstanceDescriptor           = hal.InstanceDescriptor
	AdapterInfo                  = hal.AdapterInfo

	// FramebufferDescriptor, ComputePipelineDescriptor,
	// GraphicsPipelineDescriptor, DescriptorHeapDescriptor,
	// {Image,Buffer,TexelBuffer}DescriptorWrite, DescriptorBinding,
	// CommandEncoder and SwapchainDescriptor are NOT aliased here: their
	// hal counterparts
	// reference hal.Buffer/hal.Image/hal.Shader/etc. interfaces directly,
	// which the refcounted gal.Buffer/gal.Image/gal.Shader wrappers hide.
	// gal defines its own versions of these (renderpass.go, pipeline.go,
	// descriptor.go, swapchain.go) that take gal handles and convert.

	// Command recording types.
	EncoderState            = hal.EncoderState
	RenderPassState          = hal.RenderPassState
	BoundPipelineKind        = hal.BoundPipelineKind
	Rect2D                   = hal.Rect2D
	Viewport                 = hal.Viewport
	ImageSubresourceLayers   = hal.ImageSubresourceLayers
	ClearColorValue          = hal.ClearColorValue
	ClearDepthStencilValue   = hal.ClearDepthStencilValue
	ClearValue               = hal.ClearValue
	BufferCopyRegion         = hal.BufferCopyRegion
	BufferImageCopyRegion    = hal.BufferImageCopyRegion
	ImageCopyRegion          = hal.ImageCopyRegion
	ImageBlitRegion          = hal.ImageBlitRegion
	ImageResolveRegion       = hal.ImageResolveRegion
)

const (
	EncoderInitial    = hal.EncoderInitial
	EncoderRecording  = hal.EncoderRecording
	EncoderExecutable = hal.EncoderExecutable

	RenderPassOutside = hal.RenderPassOutside
	RenderPassInside  = hal.RenderPassInside

	BoundPipelineNone     = hal.BoundPipelineNone
	BoundPipelineCompute  = hal.BoundPipelineCompute
	BoundPipelineGraphics = hal.BoundPipelineGraphics
)

// Frequently used vocabulary from package types, re-exported so simple
// call sites need only import gal.
type (
	Format           = types.Format
	BufferUsage      = types.BufferUsage
	ImageUsage       = types.ImageUsage
	MemoryProperties = types.MemoryProperties
	ImageType        = types.ImageType
	ImageAspects     = types.ImageAspects
	ImageLayout      = types.ImageLayout
	SampleCount      = types.SampleCount
	DeviceType       = types.DeviceType
	PresentMode      = types.PresentMode
	ColorSpace       = types.ColorSpace
	CompositeAlpha   = types.CompositeAlpha
	IndexType         = types.IndexType
	Filter            = types.Filter
	DescriptorType    = types.DescriptorType
	PrimitiveTopology = types.PrimitiveTopology
	BlendOp           = types.BlendOp
)

const (
	BufferUsageUniformBuffer    = types.BufferUsageUniformBuffer
	DescriptorTypeUniformBuffer = types.DescriptorTypeUniformBuffer
)
