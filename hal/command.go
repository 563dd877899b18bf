// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "github.com/ashura-engine/gal/types"

// EncoderState is the CommandEncoder lifecycle state machine (§4.4
// "State-machine"): Initial -> Recording (Begin) -> Executable (End) ->
// Initial (Reset). Begin implicitly resets if not already Initial (§9
// Open Question decision on command_encoder::reset).
type EncoderState uint8

const (
	EncoderInitial EncoderState = iota
	EncoderRecording
	EncoderExecutable
)

// RenderPassState tracks whether the encoder is between BeginRenderPass
// and EndRenderPass. Drawing commands require Inside; copy/clear/dispatch
// commands require Outside (§4.4).
type RenderPassState uint8

const (
	RenderPassOutside RenderPassState = iota
	RenderPassInside
)

// BoundPipelineKind distinguishes the mutually exclusive compute/graphics
// pipeline binding slot an encoder holds (§3 "CommandEncoder").
type BoundPipelineKind uint8

const (
	BoundPipelineNone BoundPipelineKind = iota
	BoundPipelineCompute
	BoundPipelineGraphics
)

// Rect2D is an integer offset+extent used for render areas and scissors.
type Rect2D struct {
	X, Y          int32
	Width, Height uint32
}

// Viewport is a floating-point viewport rectangle with depth range.
type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

// ImageSubresourceLayers identifies the aspect/mip/layer range a copy,
// clear or blit touches.
type ImageSubresourceLayers struct {
	Aspects        types.ImageAspects
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ClearColorValue is a packed RGBA clear value; the render pass determines
// whether it is interpreted as float, int or uint per §4.2's attachment
// format.
type ClearColorValue struct {
	Float32 [4]float32
	Int32   [4]int32
	Uint32  [4]uint32
}

// ClearDepthStencilValue is a depth/stencil clear pair.
type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue is packed in render-pass-begin order: [color…, depth-stencil?]
// (§4.4 render-pass edge case iv).
type ClearValue struct {
	Color        ClearColorValue
	DepthStencil ClearDepthStencilValue
}

// BufferCopyRegion describes one region of a buffer-to-buffer copy.
type BufferCopyRegion struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}

// BufferImageCopyRegion describes one region of a buffer<->image copy.
type BufferImageCopyRegion struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       [3]int32
	ImageExtent       [3]uint32
}

// ImageCopyRegion describes one region of an image-to-image copy.
type ImageCopyRegion struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      [3]int32
	DstSubresource ImageSubresourceLayers
	DstOffset      [3]int32
	Extent         [3]uint32
}

// ImageBlitRegion describes one region of a filtered blit.
type ImageBlitRegion struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2][3]int32
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2][3]int32
}

// ImageResolveRegion describes one region of a multisample resolve.
type ImageResolveRegion struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      [3]int32
	DstSubresource ImageSubresourceLayers
	DstOffset      [3]int32
	Extent         [3]uint32
}

// DescriptorBinding names one bound (heap, group, set) triple passed to
// BindDescriptorSets (§3 "bound descriptor (heap, group, set) triples").
type DescriptorBinding struct {
	Heap           DescriptorHeap
	Group          uint32
	Set            uint32
	DynamicOffsets []uint32
}

// CommandEncoder records commands into one primary command buffer,
// deriving pipeline barriers from each touched resource's access history
// (§4.4). Every method is a no-op once the cumulative Status is fatal
// (§4.4 command contract step 2); callers observe the final status by
// calling End or Status.
type CommandEncoder interface {
	Resource

	// Begin transitions Initial/Executable -> Recording, implicitly
	// calling Reset if not already Initial.
	Begin() Status
	// End transitions Recording -> Executable and returns the cumulative
	// status accumulated during recording.
	End() Status
	// Reset clears all recorded state (bound pipeline, render pass,
	// vertex/index buffers, descriptor bindings, status) and re-arms the
	// underlying command pool, transitioning to Initial.
	Reset()

	State() EncoderState
	Status() Status

	// Buffer commands (Outside a render pass).
	FillBuffer(dst Buffer, offset, size uint64, data uint32)
	UpdateBuffer(dst Buffer, offset uint64, data []byte)
	CopyBuffer(src, dst Buffer, regions []BufferCopyRegion)

	// Image commands (Outside a render pass).
	ClearColorImage(dst Image, layout types.ImageLayout, value ClearColorValue, ranges []ImageSubresourceLayers)
	ClearDepthStencilImage(dst Image, layout types.ImageLayout, value ClearDepthStencilValue, ranges []ImageSubresourceLayers)
	CopyImage(src, dst Image, regions []ImageCopyRegion)
	CopyBufferToImage(src Buffer, dst Image, regions []BufferImageCopyRegion)
	CopyImageToBuffer(src Image, dst Buffer, regions []BufferImageCopyRegion)
	BlitImage(src, dst Image, regions []ImageBlitRegion, filter types.Filter)
	ResolveImage(src, dst Image, regions []ImageResolveRegion)

	// Render pass.
	BeginRenderPass(pass RenderPass, fb Framebuffer, renderArea Rect2D, clearValues []ClearValue)
	EndRenderPass()

	// Pipeline & descriptor binding.
	BindComputePipeline(p ComputePipeline)
	BindGraphicsPipeline(p GraphicsPipeline)
	BindDescriptorSets(bindPoint BoundPipelineKind, layouts []DescriptorSetLayout, bindings []DescriptorBinding)
	PushConstants(offset uint32, data []byte)

	// Dispatch.
	Dispatch(groupCountX, groupCountY, groupCountZ uint32)
	DispatchIndirect(buf Buffer, offset uint64)

	// Dynamic state (Inside a render pass).
	SetViewport(v Viewport)
	SetScissor(r Rect2D)
	SetBlendConstants(constants [4]float32)
	SetStencilCompareMask(front, back uint32)
	SetStencilReference(front, back uint32)
	SetStencilWriteMask(front, back uint32)

	// Vertex/index input and draw (Inside a render pass).
	BindVertexBuffers(firstBinding uint32, buffers []Buffer, offsets []uint64)
	BindIndexBuffer(buf Buffer, offset uint64, indexType types.IndexType)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndirect(buf Buffer, offset uint64, drawCount, stride uint32)

	// Debug markers.
	DebugMarkerBegin(label string, color [4]float32)
	DebugMarkerEnd()
}
