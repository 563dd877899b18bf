package gal

import "github.com/ashura-engine/gal/hal"

// PipelineCache wraps an opaque, persistable pipeline-cache blob store.
type PipelineCache struct {
	device *Device
	h      PipelineCacheHandle
}

func (c PipelineCache) IsZero() bool { return c.h.IsZero() }

func (c PipelineCache) Ref() PipelineCache {
	if c.device != nil {
		c.device.pipelineCaches.Ref(c.h)
	}
	return c
}

func (c PipelineCache) Release() {
	if c.device != nil {
		releaseHandle(c.device, c.device.pipelineCaches, c.h)
	}
}

// Data returns the current serialized cache contents (testable property
// 7: round-trips byte-exact through create/merge).
func (c PipelineCache) Data() ([]byte, Status) {
	v, ok := c.device.pipelineCaches.Get(c.h)
	if !ok {
		return nil, hal.StatusUnknown
	}
	return (*v).Data()
}

func (d *Device) CreatePipelineCache(desc PipelineCacheDescriptor) (PipelineCache, Status) {
	c, status := d.hal.CreatePipelineCache(desc)
	if !status.OK() {
		return PipelineCache{}, status
	}
	return PipelineCache{device: d, h: d.pipelineCaches.Insert(c)}, status
}

// ComputePipeline wraps a backend compute pipeline.
type ComputePipeline struct {
	device *Device
	h      ComputePipelineHandle
}

func (p ComputePipeline) IsZero() bool { return p.h.IsZero() }

func (p ComputePipeline) Ref() ComputePipeline {
	if p.device != nil {
		p.device.computePipelines.Ref(p.h)
	}
	return p
}

func (p ComputePipeline) Release() {
	if p.device != nil {
		releaseHandle(p.device, p.device.computePipelines, p.h)
	}
}

// ComputePipelineDescriptor is the create-info for
// Device.CreateComputePipeline (§4.5).
type ComputePipelineDescriptor struct {
	Label             string
	Shader            Shader
	EntryPoint        string
	SetLayouts        []DescriptorSetLayout
	PushConstantRange PushConstantRange
	Cache             PipelineCache
}

func (d *Device) setLayoutsToHAL(layouts []DescriptorSetLayout) ([]hal.DescriptorSetLayout, bool) {
	out := make([]hal.DescriptorSetLayout, 0, len(layouts))
	for _, l := range layouts {
		v, ok := d.setLayouts.Get(l.h)
		if !ok {
			return nil, false
		}
		out = append(out, *v)
	}
	return out, true
}

func (d *Device) CreateComputePipeline(desc ComputePipelineDescriptor) (ComputePipeline, Status) {
	shader, ok := d.shaders.Get(desc.Shader.h)
	if !ok {
		return ComputePipeline{}, hal.StatusUnknown
	}
	layouts, ok := d.setLayoutsToHAL(desc.SetLayouts)
	if !ok {
		return ComputePipeline{}, hal.StatusUnknown
	}
	var cache hal.PipelineCache
	if !desc.Cache.IsZero() {
		c, ok := d.pipelineCaches.Get(desc.Cache.h)
		if !ok {
			return ComputePipeline{}, hal.StatusUnknown
		}
		cache = *c
	}
	p, status := d.hal.CreateComputePipeline(hal.ComputePipelineDescriptor{
		Label:             desc.Label,
		Shader:            *shader,
		EntryPoint:        desc.EntryPoint,
		SetLayouts:        layouts,
		PushConstantRange: desc.PushConstantRange,
		Cache:             cache,
	})
	if !status.OK() {
		return ComputePipeline{}, status
	}
	return ComputePipeline{device: d, h: d.computePipelines.Insert(p)}, status
}

// GraphicsPipeline wraps a backend graphics pipeline.
type GraphicsPipeline struct {
	device *Device
	h      GraphicsPipelineHandle
}

func (p GraphicsPipeline) IsZero() bool { return p.h.IsZero() }

func (p GraphicsPipeline) Ref() GraphicsPipeline {
	if p.device != nil {
		p.device.graphicsPipelines.Ref(p.h)
	}
	return p
}

func (p GraphicsPipeline) Release() {
	if p.device != nil {
		releaseHandle(p.device, p.device.graphicsPipelines, p.h)
	}
}

// GraphicsPipelineDescriptor is the create-info for
// Device.CreateGraphicsPipeline (§4.5).
type GraphicsPipelineDescriptor struct {
	Label              string
	VertexShader       Shader
	VertexEntryPoint   string
	FragmentShader     Shader
	FragmentEntryPoint string
	SetLayouts         []DescriptorSetLayout
	PushConstantRange  PushConstantRange
	RenderPass         RenderPass

	VertexBindings   []VertexBindingDescriptor
	VertexAttributes []VertexAttributeDescriptor
	Topology         PrimitiveTopology

	Rasterization  RasterizationState
	DepthStencil   DepthStencilState
	ColorBlend     []ColorBlendAttachmentState
	BlendConstants [4]float32
	LogicOpEnable  bool
	LogicOp        BlendOp

	Cache PipelineCache
}

func (d *Device) CreateGraphicsPipeline(desc GraphicsPipelineDescriptor) (GraphicsPipeline, Status) {
	vs, ok := d.shaders.Get(desc.VertexShader.h)
	if !ok {
		return GraphicsPipeline{}, hal.StatusUnknown
	}
	fs, ok := d.shaders.Get(desc.FragmentShader.h)
	if !ok {
		return GraphicsPipeline{}, hal.StatusUnknown
	}
	layouts, ok := d.setLayoutsToHAL(desc.SetLayouts)
	if !ok {
		return GraphicsPipeline{}, hal.StatusUnknown
	}
	pass, ok := d.renderPasses.Get(desc.RenderPass.h)
	if !ok {
		return GraphicsPipeline{}, hal.StatusUnknown
	}
	var cache hal.PipelineCache
	if !desc.Cache.IsZero() {
		c, ok := d.pipelineCaches.Get(desc.Cache.h)
		if !ok {
			return GraphicsPipeline{}, hal.StatusUnknown
		}
		cache = *c
	}
	p, status := d.hal.CreateGraphicsPipeline(hal.GraphicsPipelineDescriptor{
		Label:              desc.Label,
		VertexShader:       *vs,
		VertexEntryPoint:   desc.VertexEntryPoint,
		FragmentShader:     *fs,
		FragmentEntryPoint: desc.FragmentEntryPoint,
		SetLayouts:         layouts,
		PushConstantRange:  desc.PushConstantRange,
		RenderPass:         *pass,
		VertexBindings:     desc.VertexBindings,
		VertexAttributes:   desc.VertexAttributes,
		Topology:           desc.Topology,
		Rasterization:      desc.Rasterization,
		DepthStencil:       desc.DepthStencil,
		ColorBlend:         desc.ColorBlend,
		BlendConstants:     desc.BlendConstants,
		LogicOpEnable:      desc.LogicOpEnable,
		LogicOp:            desc.LogicOp,
		Cache:              cache,
	})
	if !status.OK() {
		return GraphicsPipeline{}, status
	}
	return GraphicsPipeline{device: d, h: d.graphicsPipelines.Insert(p)}, status
}
