// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "github.com/ashura-engine/gal/types"

// Resource is the base contract every backend-owned GPU object satisfies.
// Resources are reference-counted by internal/registry; Destroy is called
// by the arena exactly once, when the refcount reaches zero and the object
// is not currently held in a frame's released queue.
type Resource interface {
	Destroy()
}

// Buffer is the backend payload behind a buffer handle (§3 "Buffer").
type Buffer interface {
	Resource
	// Size is the buffer's byte size, fixed at creation.
	Size() uint64
	// HostMap returns the persistently mapped range if the buffer is
	// host-visible, or nil otherwise (§3 invariant).
	HostMap() []byte
	// Usage is the set of usage flags fixed at creation; the descriptor
	// heap's write validation checks it against what each descriptor type
	// requires (§4.3).
	Usage() types.BufferUsage
}

// Image is the backend payload behind an image handle (§3 "Image").
type Image interface {
	Resource
	Extent() (width, height, depth uint32)
	MipLevels() uint32
	ArrayLayers() uint32
	SampleCount() types.SampleCount
	Format() types.Format
	// IsSwapchainOwned reports whether the backend object is a swapchain
	// image the device does not allocate or destroy directly.
	IsSwapchainOwned() bool
	// Usage is the set of usage flags fixed at creation; the descriptor
	// heap's write validation checks it against what each descriptor type
	// requires (§4.3).
	Usage() types.ImageUsage
}

// BufferView ties a subrange of a buffer to a format (§3 "Views").
type BufferView interface {
	Resource
	// Usage is inherited from the buffer the view was created over.
	Usage() types.BufferUsage
}

// ImageView ties a subrange of an image to a format (§3 "Views").
type ImageView interface {
	Resource
	// Usage is inherited from the image the view was created over.
	Usage() types.ImageUsage
}

// Sampler wraps a backend sampler object.
type Sampler interface {
	Resource
}

// Shader wraps a backend shader module created from a SPIR-V blob.
type Shader interface {
	Resource
}

// RenderPass wraps a backend render pass and caches the attachment
// descriptors used to create it, for compatibility checks (§4.2).
type RenderPass interface {
	Resource
	ColorFormats() []types.Format
	DepthStencilFormat() (types.Format, bool)
}

// Framebuffer wraps a backend framebuffer and caches the attachment
// formats it was created against.
type Framebuffer interface {
	Resource
	ColorFormats() []types.Format
	DepthStencilFormat() (types.Format, bool)
	Extent() (width, height uint32)
}

// PipelineCache wraps an opaque, persistable pipeline-cache blob store.
type PipelineCache interface {
	Resource
	// Data returns the current serialized cache contents (testable
	// property 7: round-trips byte-exact through create/merge).
	Data() ([]byte, Status)
}

// ComputePipeline wraps a backend compute pipeline.
type ComputePipeline interface {
	Resource
}

// GraphicsPipeline wraps a backend graphics pipeline.
type GraphicsPipeline interface {
	Resource
}

// Fence wraps a backend CPU-GPU synchronization primitive.
type Fence interface {
	Resource
}

// DescriptorSetLayout is an ordered sequence of binding descriptors (§3).
type DescriptorSetLayout interface {
	Resource
	Bindings() []DescriptorBindingDescriptor
}

// DescriptorBindingDescriptor describes one binding slot in a
// DescriptorSetLayout.
type DescriptorBindingDescriptor struct {
	Type           types.DescriptorType
	Count          uint32
	VariableLength bool
}

// BufferDescriptor is the create-info for Device.CreateBuffer.
type BufferDescriptor struct {
	Label            string
	Size             uint64
	Usage            types.BufferUsage
	MemoryProperties types.MemoryProperties
}

// ImageDescriptor is the create-info for Device.CreateImage.
type ImageDescriptor struct {
	Label       string
	Type        types.ImageType
	Format      types.Format
	Usage       types.ImageUsage
	Aspects     types.ImageAspects
	Width       uint32
	Height      uint32
	Depth       uint32
	MipLevels   uint32
	ArrayLayers uint32
	SampleCount types.SampleCount
}

// BufferViewDescriptor is the create-info for Device.CreateBufferView.
type BufferViewDescriptor struct {
	Label  string
	Format types.Format
	Offset uint64
	Range  uint64
}

// ImageViewDescriptor is the create-info for Device.CreateImageView.
type ImageViewDescriptor struct {
	Label           string
	ViewType        types.ImageType
	Format          types.Format
	Aspects         types.ImageAspects
	BaseMipLevel    uint32
	MipLevelCount   uint32
	BaseArrayLayer  uint32
	ArrayLayerCount uint32
}

// SamplerDescriptor is the create-info for Device.CreateSampler.
type SamplerDescriptor struct {
	Label            string
	MagFilter        types.Filter
	MinFilter        types.Filter
	MipmapMode       types.Filter
	AddressModeU     types.SamplerAddressMode
	AddressModeV     types.SamplerAddressMode
	AddressModeW     types.SamplerAddressMode
	MipLodBias       float32
	AnisotropyEnable bool
	MaxAnisotropy    float32
	CompareEnable    bool
	CompareOp        types.CompareOp
	MinLod           float32
	MaxLod           float32
	BorderColor      types.BorderColor
}

// ShaderDescriptor is the create-info for Device.CreateShader. Code is
// SPIR-V, already compiled — the GAL never compiles or translates shader
// source (§1 Out of scope: "shader compilation driver").
type ShaderDescriptor struct {
	Label string
	Code  []uint32
}

// AttachmentDescriptor is one color/depth-stencil/input attachment slot in
// a RenderPassDescriptor, packed in the order [color…, depth-stencil?,
// input…] per §4.2.
type AttachmentDescriptor struct {
	Format      types.Format
	SampleCount types.SampleCount
	LoadOp      types.LoadOp
	StoreOp     types.StoreOp
	// StencilLoadOp/StencilStoreOp apply only to depth-stencil attachments.
	StencilLoadOp  types.LoadOp
	StencilStoreOp types.StoreOp
}

// RenderPassDescriptor is the create-info for Device.CreateRenderPass.
type RenderPassDescriptor struct {
	Label              string
	ColorAttachments   []AttachmentDescriptor
	DepthStencil       *AttachmentDescriptor
	InputAttachments   []AttachmentDescriptor
}

// FramebufferDescriptor is the create-info for Device.CreateFramebuffer.
type FramebufferDescriptor struct {
	Label       string
	RenderPass  RenderPass
	Attachments []ImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}

// PipelineCacheDescriptor is the create-info for Device.CreatePipelineCache.
type PipelineCacheDescriptor struct {
	Label       string
	InitialData []byte
}

// PushConstantRange describes the byte-granular push-constant block shared
// by compute and graphics pipelines (§4.5).
type PushConstantRange struct {
	Offset uint32
	Size   uint32
}

// ComputePipelineDescriptor is the create-info for
// Device.CreateComputePipeline.
type ComputePipelineDescriptor struct {
	Label              string
	Shader             Shader
	EntryPoint         string
	SetLayouts         []DescriptorSetLayout
	PushConstantRange  PushConstantRange
	Cache              PipelineCache
}

// VertexAttributeDescriptor describes one vertex input attribute.
type VertexAttributeDescriptor struct {
	Location uint32
	Binding  uint32
	Format   types.Format
	Offset   uint32
}

// VertexBindingDescriptor describes one vertex input binding.
type VertexBindingDescriptor struct {
	Binding   uint32
	Stride    uint32
	PerVertex bool // false means per-instance
}

// RasterizationState is the fixed-function rasterizer configuration baked
// into a graphics pipeline (§4.5).
type RasterizationState struct {
	CullMode        types.CullMode
	FrontFace       types.FrontFace
	PolygonMode     types.PolygonMode
	DepthBiasEnable bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	DepthClampEnable bool
}

// DepthStencilState is the fixed-function depth/stencil configuration
// baked into a graphics pipeline.
type DepthStencilState struct {
	DepthTestEnable   bool
	DepthWriteEnable  bool
	DepthCompareOp    types.CompareOp
	DepthBoundsEnable bool
	MinDepthBounds    float32
	MaxDepthBounds    float32
	Front             StencilOpState
	Back              StencilOpState
}

// StencilOpState is one side (front or back) of a DepthStencilState.
type StencilOpState struct {
	FailOp      types.StencilOp
	PassOp      types.StencilOp
	DepthFailOp types.StencilOp
	CompareOp   types.CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// ColorBlendAttachmentState is the per-color-attachment blend state baked
// into a graphics pipeline.
type ColorBlendAttachmentState struct {
	BlendEnable         bool
	SrcColorBlendFactor types.BlendFactor
	DstColorBlendFactor types.BlendFactor
	ColorBlendOp        types.BlendOp
	SrcAlphaBlendFactor types.BlendFactor
	DstAlphaBlendFactor types.BlendFactor
	AlphaBlendOp        types.BlendOp
	ColorWriteMask      types.ColorComponents
}

// GraphicsPipelineDescriptor is the create-info for
// Device.CreateGraphicsPipeline (§4.5).
type GraphicsPipelineDescriptor struct {
	Label             string
	VertexShader      Shader
	VertexEntryPoint  string
	FragmentShader    Shader
	FragmentEntryPoint string
	SetLayouts        []DescriptorSetLayout
	PushConstantRange PushConstantRange
	RenderPass        RenderPass

	VertexBindings   []VertexBindingDescriptor
	VertexAttributes []VertexAttributeDescriptor
	Topology         types.PrimitiveTopology

	Rasterization RasterizationState
	DepthStencil  DepthStencilState
	ColorBlend    []ColorBlendAttachmentState
	BlendConstants [4]float32
	LogicOpEnable  bool
	LogicOp        types.BlendOp

	Cache PipelineCache
}
