// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

const defaultEntryPoint = "main"

// buildPipelineLayout creates a VkPipelineLayout from a descriptor set
// layout list and a single push-constant range (§4.5), shared by
// CreateComputePipeline and CreateGraphicsPipeline — both pipeline kinds
// own and destroy their layout alongside the VkPipeline itself.
func (d *Device) buildPipelineLayout(setLayouts []hal.DescriptorSetLayout, pcRange hal.PushConstantRange, stages vk.ShaderStageFlags) (vk.PipelineLayout, hal.Status) {
	vkLayouts := make([]vk.DescriptorSetLayout, len(setLayouts))
	for i, l := range setLayouts {
		vl, ok := l.(*DescriptorSetLayout)
		if !ok || vl == nil {
			return 0, hal.StatusUnknown
		}
		vkLayouts[i] = vl.handle
	}

	createInfo := vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: uint32(len(vkLayouts)),
	}
	if len(vkLayouts) > 0 {
		createInfo.PSetLayouts = &vkLayouts[0]
	}

	var pcr vk.PushConstantRange
	if pcRange.Size > 0 {
		pcr = vk.PushConstantRange{StageFlags: stages, Offset: pcRange.Offset, Size: pcRange.Size}
		createInfo.PushConstantRangeCount = 1
		createInfo.PPushConstantRanges = &pcr
	}

	var handle vk.PipelineLayout
	result := vk.CreatePipelineLayout(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return 0, statusFromResult(result)
	}
	return handle, hal.StatusSuccess
}

// CreateComputePipeline implements hal.Device.CreateComputePipeline.
func (d *Device) CreateComputePipeline(desc hal.ComputePipelineDescriptor) (hal.ComputePipeline, hal.Status) {
	shader, ok := desc.Shader.(*Shader)
	if !ok || shader == nil {
		return nil, hal.StatusUnknown
	}

	layout, status := d.buildPipelineLayout(desc.SetLayouts, desc.PushConstantRange, vk.ShaderStageComputeBit)
	if !status.OK() {
		return nil, status
	}

	entryPoint := desc.EntryPoint
	if entryPoint == "" {
		entryPoint = defaultEntryPoint
	}
	entryPointBytes := append([]byte(entryPoint), 0)

	var cache vk.PipelineCache
	if desc.Cache != nil {
		c, ok := desc.Cache.(*PipelineCache)
		if ok && c != nil {
			cache = c.handle
		}
	}

	createInfo := vk.ComputePipelineCreateInfo{
		SType: vk.StructureTypeComputePipelineCreateInfo,
		Stage: vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageComputeBit,
			Module: shader.handle,
			PName:  bytePtr(entryPointBytes),
		},
		Layout: layout,
	}

	var handle vk.Pipeline
	result := vk.CreateComputePipelines(d.handle, cache, 1, &createInfo, nil, &handle)
	if result != vk.Success {
		vk.DestroyPipelineLayout(d.handle, layout, nil)
		return nil, statusFromResult(result)
	}

	p := &ComputePipeline{handle: handle, layout: layout, device: d}
	d.setObjectName(vk.ObjectTypePipeline, uint64(handle), desc.Label)
	return p, hal.StatusSuccess
}

// CreateGraphicsPipeline implements hal.Device.CreateGraphicsPipeline.
//
//nolint:maintidx // Pipeline creation is inherently complex due to all the state it configures.
func (d *Device) CreateGraphicsPipeline(desc hal.GraphicsPipelineDescriptor) (hal.GraphicsPipeline, hal.Status) {
	vertexShader, ok := desc.VertexShader.(*Shader)
	if !ok || vertexShader == nil {
		return nil, hal.StatusUnknown
	}
	rp, ok := desc.RenderPass.(*RenderPass)
	if !ok || rp == nil {
		return nil, hal.StatusUnknown
	}

	stages := vk.ShaderStageVertexBit
	if desc.FragmentShader != nil {
		stages |= vk.ShaderStageFragmentBit
	}
	layout, status := d.buildPipelineLayout(desc.SetLayouts, desc.PushConstantRange, stages)
	if !status.OK() {
		return nil, status
	}

	vertexEntry := desc.VertexEntryPoint
	if vertexEntry == "" {
		vertexEntry = defaultEntryPoint
	}
	vertexEntryBytes := append([]byte(vertexEntry), 0)

	shaderStages := []vk.PipelineShaderStageCreateInfo{{
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  vk.ShaderStageVertexBit,
		Module: vertexShader.handle,
		PName:  bytePtr(vertexEntryBytes),
	}}

	var fragmentEntryBytes []byte
	if desc.FragmentShader != nil {
		fragmentShader, ok := desc.FragmentShader.(*Shader)
		if !ok || fragmentShader == nil {
			vk.DestroyPipelineLayout(d.handle, layout, nil)
			return nil, hal.StatusUnknown
		}
		fragmentEntry := desc.FragmentEntryPoint
		if fragmentEntry == "" {
			fragmentEntry = defaultEntryPoint
		}
		fragmentEntryBytes = append([]byte(fragmentEntry), 0)
		shaderStages = append(shaderStages, vk.PipelineShaderStageCreateInfo{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageFragmentBit,
			Module: fragmentShader.handle,
			PName:  bytePtr(fragmentEntryBytes),
		})
	}

	vertexBindings := make([]vk.VertexInputBindingDescription, len(desc.VertexBindings))
	for i, b := range desc.VertexBindings {
		rate := vk.VertexInputRateVertex
		if !b.PerVertex {
			rate = vk.VertexInputRateInstance
		}
		vertexBindings[i] = vk.VertexInputBindingDescription{
			Binding:   b.Binding,
			Stride:    b.Stride,
			InputRate: rate,
		}
	}
	vertexAttribs := make([]vk.VertexInputAttributeDescription, len(desc.VertexAttributes))
	for i, a := range desc.VertexAttributes {
		vertexAttribs[i] = vk.VertexInputAttributeDescription{
			Location: a.Location,
			Binding:  a.Binding,
			Format:   formatToVk(a.Format),
			Offset:   a.Offset,
		}
	}
	vertexInputState := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   uint32(len(vertexBindings)),
		VertexAttributeDescriptionCount: uint32(len(vertexAttribs)),
	}
	if len(vertexBindings) > 0 {
		vertexInputState.PVertexBindingDescriptions = &vertexBindings[0]
	}
	if len(vertexAttribs) > 0 {
		vertexInputState.PVertexAttributeDescriptions = &vertexAttribs[0]
	}

	inputAssemblyState := vk.PipelineInputAssemblyStateCreateInfo{
		SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology: primitiveTopologyToVk(desc.Topology),
	}

	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}

	rasterizationState := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        boolToVk(desc.Rasterization.DepthClampEnable),
		PolygonMode:             polygonModeToVk(desc.Rasterization.PolygonMode),
		CullMode:                cullModeToVk(desc.Rasterization.CullMode),
		FrontFace:               frontFaceToVk(desc.Rasterization.FrontFace),
		DepthBiasEnable:         boolToVk(desc.Rasterization.DepthBiasEnable),
		DepthBiasConstantFactor: desc.Rasterization.DepthBiasConstantFactor,
		DepthBiasClamp:          desc.Rasterization.DepthBiasClamp,
		DepthBiasSlopeFactor:    desc.Rasterization.DepthBiasSlopeFactor,
		LineWidth:               1.0,
	}

	sampleCount := vk.SampleCountFlagBits(1)
	if len(rp.colorFormats) > 0 || rp.hasDepthStencil {
		// The pipeline always uses one sample. RenderPass records only
		// attachment formats, not sample counts, and CreateRenderPass does
		// not check that attachment sample counts match this value.
		sampleCount = vk.SampleCountFlagBits(1)
	}
	multisampleState := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: sampleCount,
		MinSampleShading:     1.0,
	}

	var depthStencilState *vk.PipelineDepthStencilStateCreateInfo
	if rp.hasDepthStencil {
		ds := desc.DepthStencil
		depthStencilState = &vk.PipelineDepthStencilStateCreateInfo{
			SType:                 vk.StructureTypePipelineDepthStencilStateCreateInfo,
			DepthTestEnable:       boolToVk(ds.DepthTestEnable),
			DepthWriteEnable:      boolToVk(ds.DepthWriteEnable),
			DepthCompareOp:        compareOpToVk(ds.DepthCompareOp),
			DepthBoundsTestEnable: boolToVk(ds.DepthBoundsEnable),
			MinDepthBounds:        ds.MinDepthBounds,
			MaxDepthBounds:        ds.MaxDepthBounds,
			StencilTestEnable:     boolToVk(ds.Front != (hal.StencilOpState{}) || ds.Back != (hal.StencilOpState{})),
			Front:                 stencilOpStateToVk(ds.Front),
			Back:                  stencilOpStateToVk(ds.Back),
		}
	}

	colorBlendAttachments := make([]vk.PipelineColorBlendAttachmentState, len(desc.ColorBlend))
	for i, b := range desc.ColorBlend {
		colorBlendAttachments[i] = vk.PipelineColorBlendAttachmentState{
			BlendEnable:         boolToVk(b.BlendEnable),
			SrcColorBlendFactor: blendFactorToVk(b.SrcColorBlendFactor),
			DstColorBlendFactor: blendFactorToVk(b.DstColorBlendFactor),
			ColorBlendOp:        blendOpToVk(b.ColorBlendOp),
			SrcAlphaBlendFactor: blendFactorToVk(b.SrcAlphaBlendFactor),
			DstAlphaBlendFactor: blendFactorToVk(b.DstAlphaBlendFactor),
			AlphaBlendOp:        blendOpToVk(b.AlphaBlendOp),
			ColorWriteMask:      colorComponentsToVk(b.ColorWriteMask),
		}
	}
	colorBlendState := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   boolToVk(desc.LogicOpEnable),
		LogicOp:         blendOpToLogicOp(desc.LogicOp),
		AttachmentCount: uint32(len(colorBlendAttachments)),
		BlendConstants:  desc.BlendConstants,
	}
	if len(colorBlendAttachments) > 0 {
		colorBlendState.PAttachments = &colorBlendAttachments[0]
	}

	dynamicStates := []vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateScissor}
	dynamicState := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: uint32(len(dynamicStates)),
		PDynamicStates:    &dynamicStates[0],
	}

	createInfo := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(shaderStages)),
		PStages:             &shaderStages[0],
		PVertexInputState:   &vertexInputState,
		PInputAssemblyState: &inputAssemblyState,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterizationState,
		PMultisampleState:   &multisampleState,
		PDepthStencilState:  depthStencilState,
		PColorBlendState:    &colorBlendState,
		PDynamicState:       &dynamicState,
		Layout:              layout,
		RenderPass:          rp.handle,
	}

	var cache vk.PipelineCache
	if desc.Cache != nil {
		c, ok := desc.Cache.(*PipelineCache)
		if ok && c != nil {
			cache = c.handle
		}
	}

	var handle vk.Pipeline
	result := vk.CreateGraphicsPipelines(d.handle, cache, 1, &createInfo, nil, &handle)
	if result != vk.Success {
		vk.DestroyPipelineLayout(d.handle, layout, nil)
		return nil, statusFromResult(result)
	}

	p := &GraphicsPipeline{handle: handle, layout: layout, device: d}
	d.setObjectName(vk.ObjectTypePipeline, uint64(handle), desc.Label)
	return p, hal.StatusSuccess
}

// CreatePipelineCache implements hal.Device.CreatePipelineCache.
func (d *Device) CreatePipelineCache(desc hal.PipelineCacheDescriptor) (hal.PipelineCache, hal.Status) {
	createInfo := vk.PipelineCacheCreateInfo{
		SType:           vk.StructureTypePipelineCacheCreateInfo,
		InitialDataSize: uintptr(len(desc.InitialData)),
	}
	if len(desc.InitialData) > 0 {
		createInfo.PInitialData = uintptrFromBytes(desc.InitialData)
	}

	var handle vk.PipelineCache
	result := vk.CreatePipelineCache(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	c := &PipelineCache{handle: handle, device: d}
	d.setObjectName(vk.ObjectTypePipelineCache, uint64(handle), desc.Label)
	return c, hal.StatusSuccess
}

func stencilOpStateToVk(s hal.StencilOpState) vk.StencilOpState {
	return vk.StencilOpState{
		FailOp:      stencilOpToVk(s.FailOp),
		PassOp:      stencilOpToVk(s.PassOp),
		DepthFailOp: stencilOpToVk(s.DepthFailOp),
		CompareOp:   compareOpToVk(s.CompareOp),
		CompareMask: s.CompareMask,
		WriteMask:   s.WriteMask,
		Reference:   s.Reference,
	}
}

// blendOpToLogicOp ignores its argument and always returns LogicOpCopy;
// GraphicsPipelineDescriptor.LogicOp is typed as
// types.BlendOp since the GAL does not expose a separate logic-op
// enumeration (§4.5 Open Question, resolved in DESIGN.md).
func blendOpToLogicOp(_ types.BlendOp) vk.LogicOp { return vk.LogicOpCopy }

func bytePtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func uintptrFromBytes(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}
