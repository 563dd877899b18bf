// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"sync"
	"unsafe"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/memory"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/internal/access"
	"github.com/ashura-engine/gal/types"
)

// sliceFromMappedMemory views a vkMapMemory-returned pointer as a []byte of
// size bytes, using the same double-pointer-indirection trick ptrFromUintptr
// uses to keep go vet quiet about uintptr-to-pointer conversions.
func sliceFromMappedMemory(ptr uintptr, size uint64) []byte {
	if ptr == 0 || size == 0 {
		return nil
	}
	return unsafe.Slice(ptrFromUintptr(ptr), size)
}

// Buffer implements hal.Buffer.
type Buffer struct {
	handle vk.Buffer
	device *Device
	block  *memory.MemoryBlock
	size   uint64
	mapped []byte
	usage  types.BufferUsage

	// syncMu guards state, consulted by CommandEncoder before every access
	// to derive pipeline barriers (§4.4).
	syncMu sync.Mutex
	state  access.BufferState
}

func (b *Buffer) Destroy() {
	if b.handle != 0 {
		vk.DestroyBuffer(b.device.handle, b.handle, nil)
		b.handle = 0
	}
	if b.block != nil {
		_ = b.device.allocator.Free(b.block)
		b.block = nil
	}
}

func (b *Buffer) Size() uint64             { return b.size }
func (b *Buffer) HostMap() []byte          { return b.mapped }
func (b *Buffer) Usage() types.BufferUsage { return b.usage }

// trackAccess runs the buffer's access-history state machine for an
// incoming command and returns the barrier to emit first, if any.
func (b *Buffer) trackAccess(incoming access.Access) *access.Barrier {
	b.syncMu.Lock()
	defer b.syncMu.Unlock()
	return b.state.Access(incoming)
}

// Image implements hal.Image.
type Image struct {
	handle         vk.Image
	device         *Device
	block          *memory.MemoryBlock
	width          uint32
	height         uint32
	depth          uint32
	mipLevels      uint32
	arrayLayers    uint32
	sampleCount    types.SampleCount
	format         types.Format
	usage          types.ImageUsage
	swapchainOwned bool

	// syncMu guards state, consulted by CommandEncoder before every access
	// to derive pipeline barriers and layout transitions (§4.4).
	syncMu sync.Mutex
	state  access.ImageState
}

func (i *Image) Destroy() {
	if i.swapchainOwned {
		return
	}
	if i.handle != 0 {
		vk.DestroyImage(i.device.handle, i.handle, nil)
		i.handle = 0
	}
	if i.block != nil {
		_ = i.device.allocator.Free(i.block)
		i.block = nil
	}
}

func (i *Image) Extent() (width, height, depth uint32) { return i.width, i.height, i.depth }
func (i *Image) MipLevels() uint32                      { return i.mipLevels }
func (i *Image) ArrayLayers() uint32                    { return i.arrayLayers }
func (i *Image) SampleCount() types.SampleCount         { return i.sampleCount }
func (i *Image) Format() types.Format                   { return i.format }
func (i *Image) IsSwapchainOwned() bool                 { return i.swapchainOwned }
func (i *Image) Usage() types.ImageUsage                { return i.usage }

// trackAccess runs the image's access-history state machine for an
// incoming command and returns the barrier (including any layout
// transition) to emit first, if any.
func (i *Image) trackAccess(incoming access.ImageAccess) *access.ImageBarrier {
	i.syncMu.Lock()
	defer i.syncMu.Unlock()
	return i.state.Access(incoming)
}

// currentLayout returns the image's last-known layout without recording a
// new access, used when a command needs the layout but tracks access via a
// different resource (e.g. framebuffer attachments tracked by RenderPass).
func (i *Image) currentLayout() types.ImageLayout {
	i.syncMu.Lock()
	defer i.syncMu.Unlock()
	return i.state.Layout
}

// BufferView implements hal.BufferView.
type BufferView struct {
	handle vk.BufferView
	device *Device
	usage  types.BufferUsage
}

func (v *BufferView) Destroy() {
	if v.handle != 0 {
		vk.DestroyBufferView(v.device.handle, v.handle, nil)
		v.handle = 0
	}
}

func (v *BufferView) Usage() types.BufferUsage { return v.usage }

// ImageView implements hal.ImageView.
type ImageView struct {
	handle vk.ImageView
	device *Device
	usage  types.ImageUsage
}

func (v *ImageView) Destroy() {
	if v.handle != 0 {
		vk.DestroyImageView(v.device.handle, v.handle, nil)
		v.handle = 0
	}
}

func (v *ImageView) Usage() types.ImageUsage { return v.usage }

// Sampler implements hal.Sampler.
type Sampler struct {
	handle vk.Sampler
	device *Device
}

func (s *Sampler) Destroy() {
	if s.handle != 0 {
		vk.DestroySampler(s.device.handle, s.handle, nil)
		s.handle = 0
	}
}

// Shader implements hal.Shader.
type Shader struct {
	handle vk.ShaderModule
	device *Device
}

func (s *Shader) Destroy() {
	if s.handle != 0 {
		vk.DestroyShaderModule(s.device.handle, s.handle, nil)
		s.handle = 0
	}
}

// Semaphore implements hal.Semaphore.
type Semaphore struct {
	handle vk.Semaphore
	device *Device
}

func (s *Semaphore) Destroy() {
	if s.handle != 0 {
		vk.DestroySemaphore(s.device.handle, s.handle, nil)
		s.handle = 0
	}
}

// RenderPass implements hal.RenderPass.
type RenderPass struct {
	handle             vk.RenderPass
	device             *Device
	colorFormats       []types.Format
	depthStencilFormat types.Format
	hasDepthStencil    bool
}

func (p *RenderPass) Destroy() {
	if p.handle != 0 {
		p.device.cmds.DestroyRenderPass(p.device.handle, p.handle, nil)
		p.handle = 0
	}
}

func (p *RenderPass) ColorFormats() []types.Format { return p.colorFormats }
func (p *RenderPass) DepthStencilFormat() (types.Format, bool) {
	return p.depthStencilFormat, p.hasDepthStencil
}

// Framebuffer implements hal.Framebuffer.
type Framebuffer struct {
	handle             vk.Framebuffer
	device             *Device
	colorFormats       []types.Format
	depthStencilFormat types.Format
	hasDepthStencil    bool
	width, height      uint32
}

func (f *Framebuffer) Destroy() {
	if f.handle != 0 {
		f.device.cmds.DestroyFramebuffer(f.device.handle, f.handle, nil)
		f.handle = 0
	}
}

func (f *Framebuffer) ColorFormats() []types.Format { return f.colorFormats }
func (f *Framebuffer) DepthStencilFormat() (types.Format, bool) {
	return f.depthStencilFormat, f.hasDepthStencil
}
func (f *Framebuffer) Extent() (width, height uint32) { return f.width, f.height }

// PipelineCache implements hal.PipelineCache.
type PipelineCache struct {
	handle vk.PipelineCache
	device *Device
}

func (c *PipelineCache) Destroy() {
	if c.handle != 0 {
		vk.DestroyPipelineCache(c.device.handle, c.handle, nil)
		c.handle = 0
	}
}

func (c *PipelineCache) Data() ([]byte, hal.Status) {
	var size uintptr
	result := vk.GetPipelineCacheData(c.device.handle, c.handle, &size, nil)
	if !statusFromResult(result).OK() {
		return nil, statusFromResult(result)
	}
	if size == 0 {
		return nil, hal.StatusSuccess
	}
	data := make([]byte, size)
	result = vk.GetPipelineCacheData(c.device.handle, c.handle, &size, unsafe.Pointer(&data[0]))
	return data, statusFromResult(result)
}

// ComputePipeline implements hal.ComputePipeline.
type ComputePipeline struct {
	handle vk.Pipeline
	layout vk.PipelineLayout
	device *Device
}

func (p *ComputePipeline) Destroy() {
	if p.handle != 0 {
		vk.DestroyPipeline(p.device.handle, p.handle, nil)
		p.handle = 0
	}
	if p.layout != 0 {
		vk.DestroyPipelineLayout(p.device.handle, p.layout, nil)
		p.layout = 0
	}
}

// GraphicsPipeline implements hal.GraphicsPipeline.
type GraphicsPipeline struct {
	handle vk.Pipeline
	layout vk.PipelineLayout
	device *Device
}

func (p *GraphicsPipeline) Destroy() {
	if p.handle != 0 {
		vk.DestroyPipeline(p.device.handle, p.handle, nil)
		p.handle = 0
	}
	if p.layout != 0 {
		vk.DestroyPipelineLayout(p.device.handle, p.layout, nil)
		p.layout = 0
	}
}

// DescriptorSetLayout implements hal.DescriptorSetLayout.
type DescriptorSetLayout struct {
	handle   vk.DescriptorSetLayout
	device   *Device
	bindings []hal.DescriptorBindingDescriptor
}

func (l *DescriptorSetLayout) Destroy() {
	if l.handle != 0 {
		vk.DestroyDescriptorSetLayout(l.device.handle, l.handle, nil)
		l.handle = 0
	}
}

func (l *DescriptorSetLayout) Bindings() []hal.DescriptorBindingDescriptor { return l.bindings }
