// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/internal/access"
	"github.com/ashura-engine/gal/types"
)

// Raw per-face bits for vkCmdSetStencilXxx; vk.StencilFaceFlags only names
// the combined FrontAndBack value, since nothing else in this codebase
// needs to address a single face.
const (
	stencilFaceFrontBit vk.StencilFaceFlags = 0x00000001
	stencilFaceBackBit  vk.StencilFaceFlags = 0x00000002
)

// CommandEncoder implements hal.CommandEncoder for Vulkan, recording into a
// single primary command buffer allocated from the device's shared pool.
// Every resource it touches is consulted through trackAccess first
// (§4.4); a non-nil barrier is emitted via vkCmdPipelineBarrier before the
// actual recording call.
type CommandEncoder struct {
	device    *Device
	cmdBuffer vk.CommandBuffer
	label     string

	state      hal.EncoderState
	status     hal.Status
	renderPass hal.RenderPassState

	boundKind         hal.BoundPipelineKind
	pipelineLayout    vk.PipelineLayout
	pipelineBindPoint vk.PipelineBindPoint
	pipelineStages    vk.ShaderStageFlags
}

// blocked reports whether recording should no-op per the cumulative status
// contract (§4.4 command contract step 2).
func (e *CommandEncoder) blocked() bool { return e.status.Fatal() }

// fail latches the first fatal status seen during recording; later errors
// never overwrite an already-fatal status.
func (e *CommandEncoder) fail(s hal.Status) {
	if s.Fatal() && !e.status.Fatal() {
		e.status = s
	}
}

// Begin implements hal.CommandEncoder.Begin.
func (e *CommandEncoder) Begin() hal.Status {
	if e.state != hal.EncoderInitial {
		e.Reset()
	}
	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageOneTimeSubmitBit,
	}
	result := vkBeginCommandBuffer(e.device.cmds, e.cmdBuffer, &beginInfo)
	e.status = statusFromResult(result)
	if result == vk.Success {
		e.state = hal.EncoderRecording
	}
	return e.status
}

// End implements hal.CommandEncoder.End.
func (e *CommandEncoder) End() hal.Status {
	if e.state == hal.EncoderRecording {
		result := vkEndCommandBuffer(e.device.cmds, e.cmdBuffer)
		e.fail(statusFromResult(result))
		e.state = hal.EncoderExecutable
	}
	return e.status
}

// Reset implements hal.CommandEncoder.Reset.
func (e *CommandEncoder) Reset() {
	vkResetCommandBuffer(e.device.cmds, e.cmdBuffer, 0)
	e.state = hal.EncoderInitial
	e.status = hal.StatusSuccess
	e.renderPass = hal.RenderPassOutside
	e.boundKind = hal.BoundPipelineNone
	e.pipelineLayout = 0
	e.pipelineBindPoint = 0
	e.pipelineStages = 0
}

func (e *CommandEncoder) State() hal.EncoderState { return e.state }
func (e *CommandEncoder) Status() hal.Status      { return e.status }

// Destroy implements hal.Resource via hal.CommandEncoder.
func (e *CommandEncoder) Destroy() {
	if e.cmdBuffer != 0 {
		vkFreeCommandBuffers(e.device.cmds, e.device.handle, e.device.commandPool, 1, &e.cmdBuffer)
		e.cmdBuffer = 0
	}
}

// barrierBuffer runs buf's access-history state machine and, if a hazard
// exists, emits the pipeline barrier it derives before the caller's
// recording call.
func (e *CommandEncoder) barrierBuffer(buf *Buffer, stage types.PipelineStage, mask types.AccessMask) {
	b := buf.trackAccess(access.Access{Stage: stage, Mask: mask})
	if b == nil {
		return
	}
	barrier := vk.BufferMemoryBarrier{
		SType:               vk.StructureTypeBufferMemoryBarrier,
		SrcAccessMask:       accessMaskToVk(b.Src.Mask),
		DstAccessMask:       accessMaskToVk(b.Dst.Mask),
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Buffer:              buf.handle,
		Offset:              0,
		Size:                vk.DeviceSize(buf.size),
	}
	vk.CmdPipelineBarrier(e.cmdBuffer, pipelineStageToVk(b.Src.Stage), pipelineStageToVk(b.Dst.Stage),
		0, 0, nil, 1, &barrier, 0, nil)
}

// barrierImage runs img's access-history state machine (including layout
// transitions) and emits the derived barrier, covering the whole resource —
// access.ImageState tracks one layout per image, not per-subresource.
func (e *CommandEncoder) barrierImage(img *Image, stage types.PipelineStage, mask types.AccessMask, layout types.ImageLayout) {
	b := img.trackAccess(access.ImageAccess{Access: access.Access{Stage: stage, Mask: mask}, Layout: layout})
	if b == nil {
		return
	}
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		SrcAccessMask:       accessMaskToVk(b.Src.Mask),
		DstAccessMask:       accessMaskToVk(b.Dst.Mask),
		OldLayout:           imageLayoutToVk(b.OldLayout),
		NewLayout:           imageLayoutToVk(b.NewLayout),
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               img.handle,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     imageAspectsToVk(aspectsForFormat(img.format)),
			BaseMipLevel:   0,
			LevelCount:     vk.RemainingMipLevels,
			BaseArrayLayer: 0,
			LayerCount:     vk.RemainingArrayLayers,
		},
	}
	vk.CmdPipelineBarrier(e.cmdBuffer, pipelineStageToVk(b.Src.Stage), pipelineStageToVk(b.Dst.Stage),
		0, 0, nil, 0, nil, 1, &barrier)
}

func subresourceLayersToVk(s hal.ImageSubresourceLayers) vk.ImageSubresourceLayers {
	return vk.ImageSubresourceLayers{
		AspectMask:     imageAspectsToVk(s.Aspects),
		MipLevel:       s.MipLevel,
		BaseArrayLayer: s.BaseArrayLayer,
		LayerCount:     s.LayerCount,
	}
}

func subresourceRangeToVk(s hal.ImageSubresourceLayers) vk.ImageSubresourceRange {
	return vk.ImageSubresourceRange{
		AspectMask:     imageAspectsToVk(s.Aspects),
		BaseMipLevel:   s.MipLevel,
		LevelCount:     1,
		BaseArrayLayer: s.BaseArrayLayer,
		LayerCount:     s.LayerCount,
	}
}

func offset3D(o [3]int32) vk.Offset3D { return vk.Offset3D{X: o[0], Y: o[1], Z: o[2]} }
func extent3D(e [3]uint32) vk.Extent3D {
	return vk.Extent3D{Width: e[0], Height: e[1], Depth: e[2]}
}

// FillBuffer implements hal.CommandEncoder.FillBuffer.
func (e *CommandEncoder) FillBuffer(dst hal.Buffer, offset, size uint64, data uint32) {
	if e.blocked() {
		return
	}
	b, ok := dst.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierBuffer(b, types.PipelineStageTransfer, types.AccessTransferWrite)
	vk.CmdFillBuffer(e.cmdBuffer, b.handle, vk.DeviceSize(offset), vk.DeviceSize(size), data)
}

// UpdateBuffer implements hal.CommandEncoder.UpdateBuffer.
func (e *CommandEncoder) UpdateBuffer(dst hal.Buffer, offset uint64, data []byte) {
	if e.blocked() || len(data) == 0 {
		return
	}
	b, ok := dst.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierBuffer(b, types.PipelineStageTransfer, types.AccessTransferWrite)
	vk.CmdUpdateBuffer(e.cmdBuffer, b.handle, vk.DeviceSize(offset), uintptr(len(data)), unsafe.Pointer(&data[0]))
	runtime.KeepAlive(data)
}

// CopyBuffer implements hal.CommandEncoder.CopyBuffer.
func (e *CommandEncoder) CopyBuffer(src, dst hal.Buffer, regions []hal.BufferCopyRegion) {
	if e.blocked() || len(regions) == 0 {
		return
	}
	sb, ok := src.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	db, ok := dst.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierBuffer(sb, types.PipelineStageTransfer, types.AccessTransferRead)
	e.barrierBuffer(db, types.PipelineStageTransfer, types.AccessTransferWrite)

	vkRegions := make([]vk.BufferCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferCopy{SrcOffset: vk.DeviceSize(r.SrcOffset), DstOffset: vk.DeviceSize(r.DstOffset), Size: vk.DeviceSize(r.Size)}
	}
	vk.CmdCopyBuffer(e.cmdBuffer, sb.handle, db.handle, uint32(len(vkRegions)), &vkRegions[0])
	runtime.KeepAlive(vkRegions)
}

// ClearColorImage implements hal.CommandEncoder.ClearColorImage.
func (e *CommandEncoder) ClearColorImage(dst hal.Image, layout types.ImageLayout, value hal.ClearColorValue, ranges []hal.ImageSubresourceLayers) {
	if e.blocked() {
		return
	}
	img, ok := dst.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierImage(img, types.PipelineStageTransfer, types.AccessTransferWrite, layout)

	clearValue := vk.ClearValueColor(value.Float32[0], value.Float32[1], value.Float32[2], value.Float32[3])
	vkRanges := make([]vk.ImageSubresourceRange, len(ranges))
	for i, r := range ranges {
		vkRanges[i] = subresourceRangeToVk(r)
	}
	if len(vkRanges) == 0 {
		vkRanges = []vk.ImageSubresourceRange{{
			AspectMask: imageAspectsToVk(aspectsForFormat(img.format)),
			LevelCount: vk.RemainingMipLevels, LayerCount: vk.RemainingArrayLayers,
		}}
	}
	vk.CmdClearColorImage(e.cmdBuffer, img.handle, imageLayoutToVk(layout), &clearValue, uint32(len(vkRanges)), &vkRanges[0])
	runtime.KeepAlive(vkRanges)
}

// ClearDepthStencilImage implements hal.CommandEncoder.ClearDepthStencilImage.
func (e *CommandEncoder) ClearDepthStencilImage(dst hal.Image, layout types.ImageLayout, value hal.ClearDepthStencilValue, ranges []hal.ImageSubresourceLayers) {
	if e.blocked() {
		return
	}
	img, ok := dst.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierImage(img, types.PipelineStageTransfer, types.AccessTransferWrite, layout)

	clearValue := vk.ClearValueDepthStencil(value.Depth, value.Stencil)
	vkRanges := make([]vk.ImageSubresourceRange, len(ranges))
	for i, r := range ranges {
		vkRanges[i] = subresourceRangeToVk(r)
	}
	if len(vkRanges) == 0 {
		vkRanges = []vk.ImageSubresourceRange{{
			AspectMask: imageAspectsToVk(aspectsForFormat(img.format)),
			LevelCount: vk.RemainingMipLevels, LayerCount: vk.RemainingArrayLayers,
		}}
	}
	vk.CmdClearDepthStencilImage(e.cmdBuffer, img.handle, imageLayoutToVk(layout), &clearValue, uint32(len(vkRanges)), &vkRanges[0])
	runtime.KeepAlive(vkRanges)
}

// CopyImage implements hal.CommandEncoder.CopyImage.
func (e *CommandEncoder) CopyImage(src, dst hal.Image, regions []hal.ImageCopyRegion) {
	if e.blocked() || len(regions) == 0 {
		return
	}
	si, ok := src.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	di, ok := dst.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierImage(si, types.PipelineStageTransfer, types.AccessTransferRead, types.ImageLayoutTransferSrcOptimal)
	e.barrierImage(di, types.PipelineStageTransfer, types.AccessTransferWrite, types.ImageLayoutTransferDstOptimal)

	vkRegions := make([]vk.ImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.ImageCopy{
			SrcSubresource: subresourceLayersToVk(r.SrcSubresource),
			SrcOffset:      offset3D(r.SrcOffset),
			DstSubresource: subresourceLayersToVk(r.DstSubresource),
			DstOffset:      offset3D(r.DstOffset),
			Extent:         extent3D(r.Extent),
		}
	}
	vk.CmdCopyImage(e.cmdBuffer, si.handle, vk.ImageLayoutTransferSrcOptimal, di.handle, vk.ImageLayoutTransferDstOptimal, uint32(len(vkRegions)), &vkRegions[0])
	runtime.KeepAlive(vkRegions)
}

// CopyBufferToImage implements hal.CommandEncoder.CopyBufferToImage.
func (e *CommandEncoder) CopyBufferToImage(src hal.Buffer, dst hal.Image, regions []hal.BufferImageCopyRegion) {
	if e.blocked() || len(regions) == 0 {
		return
	}
	sb, ok := src.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	di, ok := dst.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierBuffer(sb, types.PipelineStageTransfer, types.AccessTransferRead)
	e.barrierImage(di, types.PipelineStageTransfer, types.AccessTransferWrite, types.ImageLayoutTransferDstOptimal)

	vkRegions := make([]vk.BufferImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferImageCopy{
			BufferOffset:      vk.DeviceSize(r.BufferOffset),
			BufferRowLength:   r.BufferRowLength,
			BufferImageHeight: r.BufferImageHeight,
			ImageSubresource:  subresourceLayersToVk(r.ImageSubresource),
			ImageOffset:       offset3D(r.ImageOffset),
			ImageExtent:       extent3D(r.ImageExtent),
		}
	}
	vk.CmdCopyBufferToImage(e.cmdBuffer, sb.handle, di.handle, vk.ImageLayoutTransferDstOptimal, uint32(len(vkRegions)), &vkRegions[0])
	runtime.KeepAlive(vkRegions)
}

// CopyImageToBuffer implements hal.CommandEncoder.CopyImageToBuffer.
func (e *CommandEncoder) CopyImageToBuffer(src hal.Image, dst hal.Buffer, regions []hal.BufferImageCopyRegion) {
	if e.blocked() || len(regions) == 0 {
		return
	}
	si, ok := src.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	db, ok := dst.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierImage(si, types.PipelineStageTransfer, types.AccessTransferRead, types.ImageLayoutTransferSrcOptimal)
	e.barrierBuffer(db, types.PipelineStageTransfer, types.AccessTransferWrite)

	vkRegions := make([]vk.BufferImageCopy, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.BufferImageCopy{
			BufferOffset:      vk.DeviceSize(r.BufferOffset),
			BufferRowLength:   r.BufferRowLength,
			BufferImageHeight: r.BufferImageHeight,
			ImageSubresource:  subresourceLayersToVk(r.ImageSubresource),
			ImageOffset:       offset3D(r.ImageOffset),
			ImageExtent:       extent3D(r.ImageExtent),
		}
	}
	vk.CmdCopyImageToBuffer(e.cmdBuffer, si.handle, vk.ImageLayoutTransferSrcOptimal, db.handle, uint32(len(vkRegions)), &vkRegions[0])
	runtime.KeepAlive(vkRegions)
}

// BlitImage implements hal.CommandEncoder.BlitImage.
func (e *CommandEncoder) BlitImage(src, dst hal.Image, regions []hal.ImageBlitRegion, filter types.Filter) {
	if e.blocked() || len(regions) == 0 {
		return
	}
	si, ok := src.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	di, ok := dst.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierImage(si, types.PipelineStageTransfer, types.AccessTransferRead, types.ImageLayoutTransferSrcOptimal)
	e.barrierImage(di, types.PipelineStageTransfer, types.AccessTransferWrite, types.ImageLayoutTransferDstOptimal)

	vkRegions := make([]vk.ImageBlit, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.ImageBlit{
			SrcSubresource: subresourceLayersToVk(r.SrcSubresource),
			SrcOffsets:     [2]vk.Offset3D{offset3D(r.SrcOffsets[0]), offset3D(r.SrcOffsets[1])},
			DstSubresource: subresourceLayersToVk(r.DstSubresource),
			DstOffsets:     [2]vk.Offset3D{offset3D(r.DstOffsets[0]), offset3D(r.DstOffsets[1])},
		}
	}
	vk.CmdBlitImage(e.cmdBuffer, si.handle, vk.ImageLayoutTransferSrcOptimal, di.handle, vk.ImageLayoutTransferDstOptimal,
		uint32(len(vkRegions)), &vkRegions[0], filterToVk(filter))
	runtime.KeepAlive(vkRegions)
}

// ResolveImage implements hal.CommandEncoder.ResolveImage.
func (e *CommandEncoder) ResolveImage(src, dst hal.Image, regions []hal.ImageResolveRegion) {
	if e.blocked() || len(regions) == 0 {
		return
	}
	si, ok := src.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	di, ok := dst.(*Image)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierImage(si, types.PipelineStageTransfer, types.AccessTransferRead, types.ImageLayoutTransferSrcOptimal)
	e.barrierImage(di, types.PipelineStageTransfer, types.AccessTransferWrite, types.ImageLayoutTransferDstOptimal)

	vkRegions := make([]vk.ImageResolve, len(regions))
	for i, r := range regions {
		vkRegions[i] = vk.ImageResolve{
			SrcSubresource: subresourceLayersToVk(r.SrcSubresource),
			SrcOffset:      offset3D(r.SrcOffset),
			DstSubresource: subresourceLayersToVk(r.DstSubresource),
			DstOffset:      offset3D(r.DstOffset),
			Extent:         extent3D(r.Extent),
		}
	}
	vk.CmdResolveImage(e.cmdBuffer, si.handle, vk.ImageLayoutTransferSrcOptimal, di.handle, vk.ImageLayoutTransferDstOptimal, uint32(len(vkRegions)), &vkRegions[0])
	runtime.KeepAlive(vkRegions)
}

// BeginRenderPass implements hal.CommandEncoder.BeginRenderPass. Attachment
// layout transitions are baked into the render pass's attachment
// descriptions (initial/final layout) rather than tracked through
// trackAccess — the render pass instance itself performs them.
func (e *CommandEncoder) BeginRenderPass(pass hal.RenderPass, fb hal.Framebuffer, renderArea hal.Rect2D, clearValues []hal.ClearValue) {
	if e.blocked() {
		return
	}
	rp, ok := pass.(*RenderPass)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	vfb, ok := fb.(*Framebuffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}

	vkClears := make([]vk.ClearValue, len(clearValues))
	for i, cv := range clearValues {
		if rp.hasDepthStencil && i == len(rp.colorFormats) {
			vkClears[i] = vk.ClearValueDepthStencil(cv.DepthStencil.Depth, cv.DepthStencil.Stencil)
		} else {
			vkClears[i] = vk.ClearValueColor(cv.Color.Float32[0], cv.Color.Float32[1], cv.Color.Float32[2], cv.Color.Float32[3])
		}
	}
	beginInfo := vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  rp.handle,
		Framebuffer: vfb.handle,
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: renderArea.X, Y: renderArea.Y},
			Extent: vk.Extent2D{Width: renderArea.Width, Height: renderArea.Height},
		},
		ClearValueCount: uint32(len(vkClears)),
	}
	if len(vkClears) > 0 {
		beginInfo.PClearValues = &vkClears[0]
	}
	const subpassContentsInline = 0
	vk.CmdBeginRenderPass(e.cmdBuffer, &beginInfo, subpassContentsInline)
	runtime.KeepAlive(vkClears)
	e.renderPass = hal.RenderPassInside
}

// EndRenderPass implements hal.CommandEncoder.EndRenderPass.
func (e *CommandEncoder) EndRenderPass() {
	if e.blocked() {
		return
	}
	vk.CmdEndRenderPass(e.cmdBuffer)
	e.renderPass = hal.RenderPassOutside
}

// BindComputePipeline implements hal.CommandEncoder.BindComputePipeline.
func (e *CommandEncoder) BindComputePipeline(p hal.ComputePipeline) {
	if e.blocked() {
		return
	}
	cp, ok := p.(*ComputePipeline)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	vk.CmdBindPipeline(e.cmdBuffer, vk.PipelineBindPointCompute, cp.handle)
	e.boundKind = hal.BoundPipelineCompute
	e.pipelineLayout = cp.layout
	e.pipelineBindPoint = vk.PipelineBindPointCompute
	e.pipelineStages = vk.ShaderStageComputeBit
}

// BindGraphicsPipeline implements hal.CommandEncoder.BindGraphicsPipeline.
func (e *CommandEncoder) BindGraphicsPipeline(p hal.GraphicsPipeline) {
	if e.blocked() {
		return
	}
	gp, ok := p.(*GraphicsPipeline)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	vk.CmdBindPipeline(e.cmdBuffer, vk.PipelineBindPointGraphics, gp.handle)
	e.boundKind = hal.BoundPipelineGraphics
	e.pipelineLayout = gp.layout
	e.pipelineBindPoint = vk.PipelineBindPointGraphics
	e.pipelineStages = vk.ShaderStageVertexBit | vk.ShaderStageFragmentBit
}

// BindDescriptorSets implements hal.CommandEncoder.BindDescriptorSets. Each
// binding names its own (heap, group, set) triple, so one
// vkCmdBindDescriptorSets call is issued per binding rather than one
// batched call — bindings are free to reference different heaps.
func (e *CommandEncoder) BindDescriptorSets(bindPoint hal.BoundPipelineKind, layouts []hal.DescriptorSetLayout, bindings []hal.DescriptorBinding) {
	if e.blocked() || e.pipelineLayout == 0 {
		return
	}
	_ = layouts // set layouts are already baked into the bound pipeline's layout
	for _, bd := range bindings {
		heap, ok := bd.Heap.(*DescriptorHeap)
		if !ok {
			e.fail(hal.StatusUnknown)
			return
		}
		set := heap.set(bd.Group, bd.Set)
		var dynOffsets *uint32
		if len(bd.DynamicOffsets) > 0 {
			dynOffsets = &bd.DynamicOffsets[0]
		}
		vk.CmdBindDescriptorSets(e.cmdBuffer, e.pipelineBindPoint, e.pipelineLayout, bd.Set, 1, &set, uint32(len(bd.DynamicOffsets)), dynOffsets)
	}
}

// PushConstants implements hal.CommandEncoder.PushConstants.
func (e *CommandEncoder) PushConstants(offset uint32, data []byte) {
	if e.blocked() || len(data) == 0 || e.pipelineLayout == 0 {
		return
	}
	vk.CmdPushConstants(e.cmdBuffer, e.pipelineLayout, e.pipelineStages, offset, uint32(len(data)), unsafe.Pointer(&data[0]))
	runtime.KeepAlive(data)
}

// Dispatch implements hal.CommandEncoder.Dispatch.
func (e *CommandEncoder) Dispatch(groupCountX, groupCountY, groupCountZ uint32) {
	if e.blocked() {
		return
	}
	vk.CmdDispatch(e.cmdBuffer, groupCountX, groupCountY, groupCountZ)
}

// DispatchIndirect implements hal.CommandEncoder.DispatchIndirect.
func (e *CommandEncoder) DispatchIndirect(buf hal.Buffer, offset uint64) {
	if e.blocked() {
		return
	}
	b, ok := buf.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierBuffer(b, types.PipelineStageDrawIndirect, types.AccessIndirectCommandRead)
	vk.CmdDispatchIndirect(e.cmdBuffer, b.handle, vk.DeviceSize(offset))
}

// SetViewport implements hal.CommandEncoder.SetViewport.
func (e *CommandEncoder) SetViewport(v hal.Viewport) {
	if e.blocked() {
		return
	}
	vv := vk.Viewport{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, MinDepth: v.MinDepth, MaxDepth: v.MaxDepth}
	vk.CmdSetViewport(e.cmdBuffer, 0, 1, &vv)
}

// SetScissor implements hal.CommandEncoder.SetScissor.
func (e *CommandEncoder) SetScissor(r hal.Rect2D) {
	if e.blocked() {
		return
	}
	rr := vk.Rect2D{Offset: vk.Offset2D{X: r.X, Y: r.Y}, Extent: vk.Extent2D{Width: r.Width, Height: r.Height}}
	vk.CmdSetScissor(e.cmdBuffer, 0, 1, &rr)
}

// SetBlendConstants implements hal.CommandEncoder.SetBlendConstants.
func (e *CommandEncoder) SetBlendConstants(constants [4]float32) {
	if e.blocked() {
		return
	}
	vk.CmdSetBlendConstants(e.cmdBuffer, &constants)
}

// SetStencilCompareMask implements hal.CommandEncoder.SetStencilCompareMask.
func (e *CommandEncoder) SetStencilCompareMask(front, back uint32) {
	if e.blocked() {
		return
	}
	vk.CmdSetStencilCompareMask(e.cmdBuffer, stencilFaceFrontBit, front)
	vk.CmdSetStencilCompareMask(e.cmdBuffer, stencilFaceBackBit, back)
}

// SetStencilReference implements hal.CommandEncoder.SetStencilReference.
func (e *CommandEncoder) SetStencilReference(front, back uint32) {
	if e.blocked() {
		return
	}
	vk.CmdSetStencilReferenceMasked(e.cmdBuffer, stencilFaceFrontBit, front)
	vk.CmdSetStencilReferenceMasked(e.cmdBuffer, stencilFaceBackBit, back)
}

// SetStencilWriteMask implements hal.CommandEncoder.SetStencilWriteMask.
func (e *CommandEncoder) SetStencilWriteMask(front, back uint32) {
	if e.blocked() {
		return
	}
	vk.CmdSetStencilWriteMask(e.cmdBuffer, stencilFaceFrontBit, front)
	vk.CmdSetStencilWriteMask(e.cmdBuffer, stencilFaceBackBit, back)
}

// BindVertexBuffers implements hal.CommandEncoder.BindVertexBuffers.
func (e *CommandEncoder) BindVertexBuffers(firstBinding uint32, buffers []hal.Buffer, offsets []uint64) {
	if e.blocked() || len(buffers) == 0 {
		return
	}
	handles := make([]vk.Buffer, len(buffers))
	vkOffsets := make([]vk.DeviceSize, len(buffers))
	for i, buf := range buffers {
		b, ok := buf.(*Buffer)
		if !ok {
			e.fail(hal.StatusUnknown)
			return
		}
		e.barrierBuffer(b, types.PipelineStageVertexInput, types.AccessVertexAttributeRead)
		handles[i] = b.handle
		vkOffsets[i] = vk.DeviceSize(offsets[i])
	}
	vk.CmdBindVertexBuffers(e.cmdBuffer, firstBinding, uint32(len(handles)), &handles[0], &vkOffsets[0])
	runtime.KeepAlive(handles)
	runtime.KeepAlive(vkOffsets)
}

// BindIndexBuffer implements hal.CommandEncoder.BindIndexBuffer.
func (e *CommandEncoder) BindIndexBuffer(buf hal.Buffer, offset uint64, indexType types.IndexType) {
	if e.blocked() {
		return
	}
	b, ok := buf.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierBuffer(b, types.PipelineStageVertexInput, types.AccessIndexRead)
	vk.CmdBindIndexBuffer(e.cmdBuffer, b.handle, vk.DeviceSize(offset), indexTypeToVk(indexType))
}

// Draw implements hal.CommandEncoder.Draw.
func (e *CommandEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if e.blocked() {
		return
	}
	vk.CmdDraw(e.cmdBuffer, vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndirect implements hal.CommandEncoder.DrawIndirect.
func (e *CommandEncoder) DrawIndirect(buf hal.Buffer, offset uint64, drawCount, stride uint32) {
	if e.blocked() {
		return
	}
	b, ok := buf.(*Buffer)
	if !ok {
		e.fail(hal.StatusUnknown)
		return
	}
	e.barrierBuffer(b, types.PipelineStageDrawIndirect, types.AccessIndirectCommandRead)
	vk.CmdDrawIndirect(e.cmdBuffer, b.handle, vk.DeviceSize(offset), drawCount, stride)
}

// DebugMarkerBegin implements hal.CommandEncoder.DebugMarkerBegin. No-op
// when VK_EXT_debug_utils command-buffer labels are not available.
func (e *CommandEncoder) DebugMarkerBegin(label string, color [4]float32) {
	if e.blocked() || !e.device.cmds.HasDebugUtilsLabels() {
		return
	}
	nameBytes := append([]byte(label), 0)
	labelInfo := vk.DebugUtilsLabelEXT{
		SType:      vk.StructureTypeDebugUtilsLabelExt,
		PLabelName: &nameBytes[0],
		Color:      color,
	}
	e.device.cmds.CmdBeginDebugUtilsLabelEXT(e.cmdBuffer, &labelInfo)
	runtime.KeepAlive(nameBytes)
}

// DebugMarkerEnd implements hal.CommandEncoder.DebugMarkerEnd.
func (e *CommandEncoder) DebugMarkerEnd() {
	if e.blocked() || !e.device.cmds.HasDebugUtilsLabels() {
		return
	}
	e.device.cmds.CmdEndDebugUtilsLabelEXT(e.cmdBuffer)
}

// --- Vulkan function wrappers (command-buffer lifecycle has no typed
// vk.Commands method or package-level helper; these use the raw-getter
// methods in commands_ext.go, same as device.go's command-pool wrappers) ---

func vkBeginCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, beginInfo *vk.CommandBufferBeginInfo) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.BeginCommandBuffer(), uintptr(cmdBuffer), uintptr(unsafe.Pointer(beginInfo)))
	return vk.Result(ret)
}

func vkEndCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.EndCommandBuffer(), uintptr(cmdBuffer))
	return vk.Result(ret)
}

func vkResetCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, flags uint32) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.ResetCommandBuffer(), uintptr(cmdBuffer), uintptr(flags))
	return vk.Result(ret)
}

func vkFreeCommandBuffers(cmds *vk.Commands, device vk.Device, pool vk.CommandPool, count uint32, cmdBuffers *vk.CommandBuffer) {
	syscall.SyscallN(cmds.FreeCommandBuffers(), uintptr(device), uintptr(pool), uintptr(count), uintptr(unsafe.Pointer(cmdBuffers)))
}
