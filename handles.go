package gal

import "github.com/ashura-engine/gal/internal/registry"

// Marker types distinguish each resource kind's Handle at compile time
// (internal/registry.Marker), so e.g. a BufferHandle can never be passed
// where an ImageHandle is expected even though both are an (index,
// generation) pair under the hood.

type bufferMarker struct{}

func (bufferMarker) marker() {}

type imageMarker struct{}

func (imageMarker) marker() {}

type bufferViewMarker struct{}

func (bufferViewMarker) marker() {}

type imageViewMarker struct{}

func (imageViewMarker) marker() {}

type samplerMarker struct{}

func (samplerMarker) marker() {}

type shaderMarker struct{}

func (shaderMarker) marker() {}

type renderPassMarker struct{}

func (renderPassMarker) marker() {}

type framebufferMarker struct{}

func (framebufferMarker) marker() {}

type pipelineCacheMarker struct{}

func (pipelineCacheMarker) marker() {}

type computePipelineMarker struct{}

func (computePipelineMarker) marker() {}

type graphicsPipelineMarker struct{}

func (graphicsPipelineMarker) marker() {}

type fenceMarker struct{}

func (fenceMarker) marker() {}

type semaphoreMarker struct{}

func (semaphoreMarker) marker() {}

type descriptorSetLayoutMarker struct{}

func (descriptorSetLayoutMarker) marker() {}

type descriptorHeapMarker struct{}

func (descriptorHeapMarker) marker() {}

type commandEncoderMarker struct{}

func (commandEncoderMarker) marker() {}

type swapchainMarker struct{}

func (swapchainMarker) marker() {}

// BufferHandle identifies a Buffer. The zero value never refers to a live
// object.
type BufferHandle = registry.Handle[bufferMarker]

// ImageHandle identifies an Image.
type ImageHandle = registry.Handle[imageMarker]

// BufferViewHandle identifies a BufferView.
type BufferViewHandle = registry.Handle[bufferViewMarker]

// ImageViewHandle identifies an ImageView.
type ImageViewHandle = registry.Handle[imageViewMarker]

// SamplerHandle identifies a Sampler.
type SamplerHandle = registry.Handle[samplerMarker]

// ShaderHandle identifies a Shader.
type ShaderHandle = registry.Handle[shaderMarker]

// RenderPassHandle identifies a RenderPass.
type RenderPassHandle = registry.Handle[renderPassMarker]

// FramebufferHandle identifies a Framebuffer.
type FramebufferHandle = registry.Handle[framebufferMarker]

// PipelineCacheHandle identifies a PipelineCache.
type PipelineCacheHandle = registry.Handle[pipelineCacheMarker]

// ComputePipelineHandle identifies a ComputePipeline.
type ComputePipelineHandle = registry.Handle[computePipelineMarker]

// GraphicsPipelineHandle identifies a GraphicsPipeline.
type GraphicsPipelineHandle = registry.Handle[graphicsPipelineMarker]

// FenceHandle identifies a Fence.
type FenceHandle = registry.Handle[fenceMarker]

// SemaphoreHandle identifies a Semaphore.
type SemaphoreHandle = registry.Handle[semaphoreMarker]

// DescriptorSetLayoutHandle identifies a DescriptorSetLayout.
type DescriptorSetLayoutHandle = registry.Handle[descriptorSetLayoutMarker]

// DescriptorHeapHandle identifies a DescriptorHeap.
type DescriptorHeapHandle = registry.Handle[descriptorHeapMarker]

// CommandEncoderHandle identifies a CommandEncoder.
type CommandEncoderHandle = registry.Handle[commandEncoderMarker]

// SwapchainHandle identifies a Swapchain.
type SwapchainHandle = registry.Handle[swapchainMarker]
