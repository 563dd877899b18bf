// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

// CreateRenderPass implements hal.Device.CreateRenderPass. Attachments are
// laid out in the fixed order the descriptor documents — color attachments,
// then the optional depth-stencil attachment, then input attachments
// (§4.2) — and CreateFramebuffer's Attachments must list image views in
// that same order.
func (d *Device) CreateRenderPass(desc hal.RenderPassDescriptor) (hal.RenderPass, hal.Status) {
	total := len(desc.ColorAttachments) + len(desc.InputAttachments)
	if desc.DepthStencil != nil {
		total++
	}
	attachments := make([]vk.AttachmentDescription, 0, total)
	colorRefs := make([]vk.AttachmentReference, 0, len(desc.ColorAttachments))

	colorFormats := make([]types.Format, len(desc.ColorAttachments))
	for i, a := range desc.ColorAttachments {
		colorFormats[i] = a.Format
		initial := vk.ImageLayoutUndefined
		if a.LoadOp == types.LoadOpLoad {
			initial = vk.ImageLayoutColorAttachmentOptimal
		}
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         formatToVk(a.Format),
			Samples:        sampleCountToVk(a.SampleCount),
			LoadOp:         loadOpToVk(a.LoadOp),
			StoreOp:        storeOpToVk(a.StoreOp),
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  initial,
			FinalLayout:    vk.ImageLayoutColorAttachmentOptimal,
		})
		colorRefs = append(colorRefs, vk.AttachmentReference{
			Attachment: uint32(len(attachments) - 1),
			Layout:     vk.ImageLayoutColorAttachmentOptimal,
		})
	}

	var depthRef *vk.AttachmentReference
	var depthStencilFormat types.Format
	if ds := desc.DepthStencil; ds != nil {
		depthStencilFormat = ds.Format
		initial := vk.ImageLayoutUndefined
		if ds.LoadOp == types.LoadOpLoad || ds.StencilLoadOp == types.LoadOpLoad {
			initial = vk.ImageLayoutDepthStencilAttachmentOptimal
		}
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         formatToVk(ds.Format),
			Samples:        sampleCountToVk(ds.SampleCount),
			LoadOp:         loadOpToVk(ds.LoadOp),
			StoreOp:        storeOpToVk(ds.StoreOp),
			StencilLoadOp:  loadOpToVk(ds.StencilLoadOp),
			StencilStoreOp: storeOpToVk(ds.StencilStoreOp),
			InitialLayout:  initial,
			FinalLayout:    vk.ImageLayoutDepthStencilAttachmentOptimal,
		})
		depthRef = &vk.AttachmentReference{
			Attachment: uint32(len(attachments) - 1),
			Layout:     vk.ImageLayoutDepthStencilAttachmentOptimal,
		}
	}

	inputRefs := make([]vk.AttachmentReference, 0, len(desc.InputAttachments))
	for _, a := range desc.InputAttachments {
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         formatToVk(a.Format),
			Samples:        sampleCountToVk(a.SampleCount),
			LoadOp:         loadOpToVk(a.LoadOp),
			StoreOp:        storeOpToVk(a.StoreOp),
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			InitialLayout:  vk.ImageLayoutShaderReadOnlyOptimal,
			FinalLayout:    vk.ImageLayoutShaderReadOnlyOptimal,
		})
		inputRefs = append(inputRefs, vk.AttachmentReference{
			Attachment: uint32(len(attachments) - 1),
			Layout:     vk.ImageLayoutShaderReadOnlyOptimal,
		})
	}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:       vk.PipelineBindPointGraphics,
		ColorAttachmentCount:    uint32(len(colorRefs)),
		PDepthStencilAttachment: depthRef,
		InputAttachmentCount:    uint32(len(inputRefs)),
	}
	if len(colorRefs) > 0 {
		subpass.PColorAttachments = &colorRefs[0]
	}
	if len(inputRefs) > 0 {
		subpass.PInputAttachments = &inputRefs[0]
	}

	createInfo := vk.RenderPassCreateInfo{
		SType:        vk.StructureTypeRenderPassCreateInfo,
		SubpassCount: 1,
		PSubpasses:   &subpass,
	}
	createInfo.AttachmentCount = uint32(len(attachments))
	if len(attachments) > 0 {
		createInfo.PAttachments = &attachments[0]
	}

	var handle vk.RenderPass
	result := d.cmds.CreateRenderPass(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	rp := &RenderPass{
		handle:             handle,
		device:             d,
		colorFormats:       colorFormats,
		depthStencilFormat: depthStencilFormat,
		hasDepthStencil:    desc.DepthStencil != nil,
	}
	d.setObjectName(vk.ObjectTypeRenderPass, uint64(handle), desc.Label)
	return rp, hal.StatusSuccess
}

// CreateFramebuffer implements hal.Device.CreateFramebuffer. Attachments
// must be ordered to match the render pass's attachment list (the order
// CreateRenderPass built it in).
func (d *Device) CreateFramebuffer(desc hal.FramebufferDescriptor) (hal.Framebuffer, hal.Status) {
	rp, ok := desc.RenderPass.(*RenderPass)
	if !ok || rp == nil || rp.handle == 0 {
		return nil, hal.StatusUnknown
	}

	views := make([]vk.ImageView, len(desc.Attachments))
	for i, a := range desc.Attachments {
		v, ok := a.(*ImageView)
		if !ok || v == nil {
			return nil, hal.StatusUnknown
		}
		views[i] = v.handle
	}

	createInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      rp.handle,
		AttachmentCount: uint32(len(views)),
		Width:           desc.Width,
		Height:          desc.Height,
		Layers:          desc.Layers,
	}
	if len(views) > 0 {
		createInfo.PAttachments = &views[0]
	}
	if createInfo.Layers == 0 {
		createInfo.Layers = 1
	}

	var handle vk.Framebuffer
	result := d.cmds.CreateFramebuffer(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	fb := &Framebuffer{
		handle:             handle,
		device:             d,
		colorFormats:       rp.colorFormats,
		depthStencilFormat: rp.depthStencilFormat,
		hasDepthStencil:    rp.hasDepthStencil,
		width:              desc.Width,
		height:             desc.Height,
	}
	d.setObjectName(vk.ObjectTypeFramebuffer, uint64(handle), desc.Label)
	return fb, hal.StatusSuccess
}
