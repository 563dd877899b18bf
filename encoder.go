package gal

import (
	"github.com/ashura-engine/gal/hal"
)

// DescriptorBinding names one bound (heap, group, set) triple passed to
// CommandEncoder.BindDescriptorSets (§3 "bound descriptor (heap, group,
// set) triples").
type DescriptorBinding struct {
	Heap           DescriptorHeap
	Group          uint32
	Set            uint32
	DynamicOffsets []uint32
}

// CommandEncoder records commands into one primary command buffer,
// deriving pipeline barriers from each touched resource's access history
// (§4.4). Every method is a no-op once the cumulative Status is fatal;
// callers observe the final status via End or Status.
type CommandEncoder struct {
	device *Device
	h      CommandEncoderHandle
	hal    hal.CommandEncoder
}

// IsZero reports whether e is the zero (absent) encoder.
func (e *CommandEncoder) IsZero() bool { return e == nil || e.h.IsZero() }

// Release decrements e's refcount (unref_command_encoder).
func (e *CommandEncoder) Release() {
	if e.device != nil {
		releaseHandle(e.device, e.device.commandEncoders, e.h)
	}
}

// Begin transitions Initial/Executable -> Recording, implicitly calling
// Reset if not already Initial.
func (e *CommandEncoder) Begin() Status { return e.hal.Begin() }

// End transitions Recording -> Executable and returns the cumulative
// status accumulated during recording.
func (e *CommandEncoder) End() Status { return e.hal.End() }

// Reset clears all recorded state and re-arms the underlying command
// pool, transitioning to Initial.
func (e *CommandEncoder) Reset() { e.hal.Reset() }

func (e *CommandEncoder) State() EncoderState { return e.hal.State() }
func (e *CommandEncoder) Status() Status      { return e.hal.Status() }

func (e *CommandEncoder) buf(b Buffer) (hal.Buffer, bool) {
	v, ok := e.device.buffers.Get(b.h)
	if !ok {
		return nil, false
	}
	return *v, true
}

func (e *CommandEncoder) img(i Image) (hal.Image, bool) {
	v, ok := e.device.images.Get(i.h)
	if !ok {
		return nil, false
	}
	return *v, true
}

// FillBuffer records a buffer fill (outside a render pass).
func (e *CommandEncoder) FillBuffer(dst Buffer, offset, size uint64, data uint32) {
	v, ok := e.buf(dst)
	if !ok {
		return
	}
	e.hal.FillBuffer(v, offset, size, data)
}

// UpdateBuffer records a small, CPU-sourced buffer update.
func (e *CommandEncoder) UpdateBuffer(dst Buffer, offset uint64, data []byte) {
	v, ok := e.buf(dst)
	if !ok {
		return
	}
	e.hal.UpdateBuffer(v, offset, data)
}

// CopyBuffer records a buffer-to-buffer copy.
func (e *CommandEncoder) CopyBuffer(src, dst Buffer, regions []BufferCopyRegion) {
	sv, ok := e.buf(src)
	if !ok {
		return
	}
	dv, ok := e.buf(dst)
	if !ok {
		return
	}
	e.hal.CopyBuffer(sv, dv, regions)
}

// ClearColorImage records a color image clear.
func (e *CommandEncoder) ClearColorImage(dst Image, layout ImageLayout, value ClearColorValue, ranges []ImageSubresourceLayers) {
	v, ok := e.img(dst)
	if !ok {
		return
	}
	e.hal.ClearColorImage(v, layout, value, ranges)
}

// ClearDepthStencilImage records a depth/stencil image clear.
func (e *CommandEncoder) ClearDepthStencilImage(dst Image, layout ImageLayout, value ClearDepthStencilValue, ranges []ImageSubresourceLayers) {
	v, ok := e.img(dst)
	if !ok {
		return
	}
	e.hal.ClearDepthStencilImage(v, layout, value, ranges)
}

// CopyImage records an image-to-image copy.
func (e *CommandEncoder) CopyImage(src, dst Image, regions []ImageCopyRegion) {
	sv, ok := e.img(src)
	if !ok {
		return
	}
	dv, ok := e.img(dst)
	if !ok {
		return
	}
	e.hal.CopyImage(sv, dv, regions)
}

// CopyBufferToImage records a buffer-to-image copy.
func (e *CommandEncoder) CopyBufferToImage(src Buffer, dst Image, regions []BufferImageCopyRegion) {
	sv, ok := e.buf(src)
	if !ok {
		return
	}
	dv, ok := e.img(dst)
	if !ok {
		return
	}
	e.hal.CopyBufferToImage(sv, dv, regions)
}

// CopyImageToBuffer records an image-to-buffer copy.
func (e *CommandEncoder) CopyImageToBuffer(src Image, dst Buffer, regions []BufferImageCopyRegion) {
	sv, ok := e.img(src)
	if !ok {
		return
	}
	dv, ok := e.buf(dst)
	if !ok {
		return
	}
	e.hal.CopyImageToBuffer(sv, dv, regions)
}

// BlitImage records a filtered image blit.
func (e *CommandEncoder) BlitImage(src, dst Image, regions []ImageBlitRegion, filter Filter) {
	sv, ok := e.img(src)
	if !ok {
		return
	}
	dv, ok := e.img(dst)
	if !ok {
		return
	}
	e.hal.BlitImage(sv, dv, regions, filter)
}

// ResolveImage records a multisample resolve.
func (e *CommandEncoder) ResolveImage(src, dst Image, regions []ImageResolveRegion) {
	sv, ok := e.img(src)
	if !ok {
		return
	}
	dv, ok := e.img(dst)
	if !ok {
		return
	}
	e.hal.ResolveImage(sv, dv, regions)
}

// BeginRenderPass begins recording draw commands.
func (e *CommandEncoder) BeginRenderPass(pass RenderPass, fb Framebuffer, renderArea Rect2D, clearValues []ClearValue) {
	pv, ok := e.device.renderPasses.Get(pass.h)
	if !ok {
		return
	}
	fv, ok := e.device.framebuffers.Get(fb.h)
	if !ok {
		return
	}
	e.hal.BeginRenderPass(*pv, *fv, renderArea, clearValues)
}

// EndRenderPass ends the current render pass.
func (e *CommandEncoder) EndRenderPass() { e.hal.EndRenderPass() }

// BindComputePipeline binds p for subsequent Dispatch calls.
func (e *CommandEncoder) BindComputePipeline(p ComputePipeline) {
	v, ok := e.device.computePipelines.Get(p.h)
	if !ok {
		return
	}
	e.hal.BindComputePipeline(*v)
}

// BindGraphicsPipeline binds p for subsequent Draw calls.
func (e *CommandEncoder) BindGraphicsPipeline(p GraphicsPipeline) {
	v, ok := e.device.graphicsPipelines.Get(p.h)
	if !ok {
		return
	}
	e.hal.BindGraphicsPipeline(*v)
}

// BindDescriptorSets binds descriptor sets for the currently bound
// pipeline kind.
func (e *CommandEncoder) BindDescriptorSets(bindPoint BoundPipelineKind, layouts []DescriptorSetLayout, bindings []DescriptorBinding) {
	halLayouts, ok := e.device.setLayoutsToHAL(layouts)
	if !ok {
		return
	}
	halBindings := make([]hal.DescriptorBinding, 0, len(bindings))
	for _, b := range bindings {
		heap, ok := e.device.descriptorHeaps.Get(b.Heap.h)
		if !ok {
			return
		}
		halBindings = append(halBindings, hal.DescriptorBinding{
			Heap:           *heap,
			Group:          b.Group,
			Set:            b.Set,
			DynamicOffsets: b.DynamicOffsets,
		})
	}
	e.hal.BindDescriptorSets(bindPoint, halLayouts, halBindings)
}

// PushConstants updates the push-constant block shared by the bound
// pipeline.
func (e *CommandEncoder) PushConstants(offset uint32, data []byte) { e.hal.PushConstants(offset, data) }

// Dispatch records a compute dispatch.
func (e *CommandEncoder) Dispatch(groupCountX, groupCountY, groupCountZ uint32) {
	e.hal.Dispatch(groupCountX, groupCountY, groupCountZ)
}

// DispatchIndirect records a compute dispatch with GPU-sourced parameters.
func (e *CommandEncoder) DispatchIndirect(buf Buffer, offset uint64) {
	v, ok := e.buf(buf)
	if !ok {
		return
	}
	e.hal.DispatchIndirect(v, offset)
}

func (e *CommandEncoder) SetViewport(v Viewport) { e.hal.SetViewport(v) }
func (e *CommandEncoder) SetScissor(r Rect2D)    { e.hal.SetScissor(r) }
func (e *CommandEncoder) SetBlendConstants(constants [4]float32) {
	e.hal.SetBlendConstants(constants)
}
func (e *CommandEncoder) SetStencilCompareMask(front, back uint32) {
	e.hal.SetStencilCompareMask(front, back)
}
func (e *CommandEncoder) SetStencilReference(front, back uint32) {
	e.hal.SetStencilReference(front, back)
}
func (e *CommandEncoder) SetStencilWriteMask(front, back uint32) {
	e.hal.SetStencilWriteMask(front, back)
}

// BindVertexBuffers binds a contiguous range of vertex buffer bindings.
func (e *CommandEncoder) BindVertexBuffers(firstBinding uint32, buffers []Buffer, offsets []uint64) {
	halBuffers := make([]hal.Buffer, 0, len(buffers))
	for _, b := range buffers {
		v, ok := e.buf(b)
		if !ok {
			return
		}
		halBuffers = append(halBuffers, v)
	}
	e.hal.BindVertexBuffers(firstBinding, halBuffers, offsets)
}

// BindIndexBuffer binds the index buffer used by subsequent indexed draws.
func (e *CommandEncoder) BindIndexBuffer(buf Buffer, offset uint64, indexType IndexType) {
	v, ok := e.buf(buf)
	if !ok {
		return
	}
	e.hal.BindIndexBuffer(v, offset, indexType)
}

// Draw records a draw call.
func (e *CommandEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	e.hal.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndirect records a draw call with GPU-sourced parameters.
func (e *CommandEncoder) DrawIndirect(buf Buffer, offset uint64, drawCount, stride uint32) {
	v, ok := e.buf(buf)
	if !ok {
		return
	}
	e.hal.DrawIndirect(v, offset, drawCount, stride)
}

// DebugMarkerBegin opens a labeled debug region visible in GPU tooling.
func (e *CommandEncoder) DebugMarkerBegin(label string, color [4]float32) {
	e.hal.DebugMarkerBegin(label, color)
}

// DebugMarkerEnd closes the most recently opened debug region.
func (e *CommandEncoder) DebugMarkerEnd() { e.hal.DebugMarkerEnd() }
