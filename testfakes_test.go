package gal

import (
	"time"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/types"
)

// The fakes in this file stand in for hal.Device and friends so gal's
// public surface (handle lifecycle, FrameContext's acquire/submit/present
// cycle, DescriptorHeap's validation forwarding) can be exercised without
// a real Vulkan driver, the same way hal/vulkan's own tests construct
// structs directly rather than calling into the driver.

type fakeResource struct{ destroyed bool }

func (r *fakeResource) Destroy() { r.destroyed = true }

type fakeBuffer struct {
	fakeResource
	size  uint64
	usage types.BufferUsage
}

func (b *fakeBuffer) Size() uint64             { return b.size }
func (b *fakeBuffer) HostMap() []byte          { return nil }
func (b *fakeBuffer) Usage() types.BufferUsage { return b.usage }

type fakeImage struct {
	fakeResource
	usage types.ImageUsage
}

func (i *fakeImage) Extent() (uint32, uint32, uint32)  { return 1, 1, 1 }
func (i *fakeImage) MipLevels() uint32                 { return 1 }
func (i *fakeImage) ArrayLayers() uint32               { return 1 }
func (i *fakeImage) SampleCount() types.SampleCount    { return types.SampleCount1 }
func (i *fakeImage) Format() types.Format              { return types.FormatR8G8B8A8Unorm }
func (i *fakeImage) IsSwapchainOwned() bool            { return false }
func (i *fakeImage) Usage() types.ImageUsage           { return i.usage }

type fakeBufferView struct {
	fakeResource
	usage types.BufferUsage
}

func (v *fakeBufferView) Usage() types.BufferUsage { return v.usage }

type fakeImageView struct {
	fakeResource
	usage types.ImageUsage
}

func (v *fakeImageView) Usage() types.ImageUsage { return v.usage }

type fakeSampler struct{ fakeResource }
type fakeShader struct{ fakeResource }
type fakeFence struct{ fakeResource }
type fakeSemaphore struct{ fakeResource }

type fakeRenderPass struct{ fakeResource }

func (p *fakeRenderPass) ColorFormats() []types.Format { return nil }
func (p *fakeRenderPass) DepthStencilFormat() (types.Format, bool) {
	return types.Format(0), false
}

type fakeFramebuffer struct{ fakeResource }

func (f *fakeFramebuffer) ColorFormats() []types.Format { return nil }
func (f *fakeFramebuffer) DepthStencilFormat() (types.Format, bool) {
	return types.Format(0), false
}
func (f *fakeFramebuffer) Extent() (uint32, uint32) { return 0, 0 }

type fakePipelineCache struct{ fakeResource }

func (c *fakePipelineCache) Data() ([]byte, hal.Status) { return nil, hal.StatusSuccess }

type fakeComputePipeline struct{ fakeResource }
type fakeGraphicsPipeline struct{ fakeResource }

type fakeDescriptorSetLayout struct {
	fakeResource
	bindings []hal.DescriptorBindingDescriptor
}

func (l *fakeDescriptorSetLayout) Bindings() []hal.DescriptorBindingDescriptor { return l.bindings }

// fakeDescriptorHeap records every AddGroup/Write call so tests can assert
// on forwarding and Status propagation through the gal.DescriptorHeap
// wrapper without reimplementing §4.3's pool/shadow bookkeeping.
type fakeDescriptorHeap struct {
	fakeResource
	nextGroup     uint32
	addGroupError hal.Status // zero (StatusSuccess) means AddGroup succeeds
	released      []uint32
	markedInUse   map[uint32]uint64
	lastWrite     string
	writeStatus   hal.Status
}

func (h *fakeDescriptorHeap) AddGroup(trailingFrame uint64) (uint32, hal.Status) {
	if !h.addGroupError.OK() {
		return 0, h.addGroupError
	}
	g := h.nextGroup
	h.nextGroup++
	return g, hal.StatusSuccess
}

func (h *fakeDescriptorHeap) Release(group uint32) { h.released = append(h.released, group) }

func (h *fakeDescriptorHeap) MarkInUse(group uint32, currentFrame uint64) {
	if h.markedInUse == nil {
		h.markedInUse = make(map[uint32]uint64)
	}
	h.markedInUse[group] = currentFrame
}

func (h *fakeDescriptorHeap) IsInUse(group uint32, trailingFrame uint64) bool {
	return h.markedInUse[group] >= trailingFrame
}

func (h *fakeDescriptorHeap) WriteSamplers(group, set, binding uint32, samplers []hal.Sampler) hal.Status {
	h.lastWrite = "samplers"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteCombinedImageSamplers(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	h.lastWrite = "combined"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteSampledImages(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	h.lastWrite = "sampled"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteStorageImages(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	h.lastWrite = "storageImage"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteUniformTexelBuffers(group, set, binding uint32, writes []hal.TexelBufferDescriptorWrite) hal.Status {
	h.lastWrite = "uniformTexel"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteStorageTexelBuffers(group, set, binding uint32, writes []hal.TexelBufferDescriptorWrite) hal.Status {
	h.lastWrite = "storageTexel"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteUniformBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	h.lastWrite = "uniformBuffer"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteStorageBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	h.lastWrite = "storageBuffer"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteDynamicUniformBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	h.lastWrite = "dynamicUniform"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteDynamicStorageBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	h.lastWrite = "dynamicStorage"
	return h.writeStatus
}
func (h *fakeDescriptorHeap) WriteInputAttachments(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	h.lastWrite = "inputAttachment"
	return h.writeStatus
}

func (h *fakeDescriptorHeap) Stats() hal.DescriptorHeapStats { return hal.DescriptorHeapStats{} }

// fakeCommandEncoder implements hal.CommandEncoder as a no-op recorder;
// FrameContext only touches Reset before a command is ever recorded.
type fakeCommandEncoder struct {
	fakeResource
	resetCount int
	state      hal.EncoderState
	status     hal.Status
}

func (e *fakeCommandEncoder) Begin() hal.Status { e.state = hal.EncoderRecording; return hal.StatusSuccess }
func (e *fakeCommandEncoder) End() hal.Status   { e.state = hal.EncoderExecutable; return e.status }
func (e *fakeCommandEncoder) Reset() {
	e.resetCount++
	e.state = hal.EncoderInitial
	e.status = hal.StatusSuccess
}
func (e *fakeCommandEncoder) State() hal.EncoderState { return e.state }
func (e *fakeCommandEncoder) Status() hal.Status      { return e.status }

func (e *fakeCommandEncoder) FillBuffer(dst hal.Buffer, offset, size uint64, data uint32)    {}
func (e *fakeCommandEncoder) UpdateBuffer(dst hal.Buffer, offset uint64, data []byte)        {}
func (e *fakeCommandEncoder) CopyBuffer(src, dst hal.Buffer, regions []hal.BufferCopyRegion) {}

func (e *fakeCommandEncoder) ClearColorImage(dst hal.Image, layout types.ImageLayout, value hal.ClearColorValue, ranges []hal.ImageSubresourceLayers) {
}
func (e *fakeCommandEncoder) ClearDepthStencilImage(dst hal.Image, layout types.ImageLayout, value hal.ClearDepthStencilValue, ranges []hal.ImageSubresourceLayers) {
}
func (e *fakeCommandEncoder) CopyImage(src, dst hal.Image, regions []hal.ImageCopyRegion) {}
func (e *fakeCommandEncoder) CopyBufferToImage(src hal.Buffer, dst hal.Image, regions []hal.BufferImageCopyRegion) {
}
func (e *fakeCommandEncoder) CopyImageToBuffer(src hal.Image, dst hal.Buffer, regions []hal.BufferImageCopyRegion) {
}
func (e *fakeCommandEncoder) BlitImage(src, dst hal.Image, regions []hal.ImageBlitRegion, filter types.Filter) {
}
func (e *fakeCommandEncoder) ResolveImage(src, dst hal.Image, regions []hal.ImageResolveRegion) {}

func (e *fakeCommandEncoder) BeginRenderPass(pass hal.RenderPass, fb hal.Framebuffer, renderArea hal.Rect2D, clearValues []hal.ClearValue) {
}
func (e *fakeCommandEncoder) EndRenderPass() {}

func (e *fakeCommandEncoder) BindComputePipeline(p hal.ComputePipeline)   {}
func (e *fakeCommandEncoder) BindGraphicsPipeline(p hal.GraphicsPipeline) {}
func (e *fakeCommandEncoder) BindDescriptorSets(bindPoint hal.BoundPipelineKind, layouts []hal.DescriptorSetLayout, bindings []hal.DescriptorBinding) {
}
func (e *fakeCommandEncoder) PushConstants(offset uint32, data []byte) {}

func (e *fakeCommandEncoder) Dispatch(x, y, z uint32)                    {}
func (e *fakeCommandEncoder) DispatchIndirect(buf hal.Buffer, offset uint64) {}

func (e *fakeCommandEncoder) SetViewport(v hal.Viewport)                      {}
func (e *fakeCommandEncoder) SetScissor(r hal.Rect2D)                         {}
func (e *fakeCommandEncoder) SetBlendConstants(constants [4]float32)         {}
func (e *fakeCommandEncoder) SetStencilCompareMask(front, back uint32)       {}
func (e *fakeCommandEncoder) SetStencilReference(front, back uint32)         {}
func (e *fakeCommandEncoder) SetStencilWriteMask(front, back uint32)         {}

func (e *fakeCommandEncoder) BindVertexBuffers(firstBinding uint32, buffers []hal.Buffer, offsets []uint64) {
}
func (e *fakeCommandEncoder) BindIndexBuffer(buf hal.Buffer, offset uint64, indexType types.IndexType) {
}
func (e *fakeCommandEncoder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {}
func (e *fakeCommandEncoder) DrawIndirect(buf hal.Buffer, offset uint64, drawCount, stride uint32) {
}

func (e *fakeCommandEncoder) DebugMarkerBegin(label string, color [4]float32) {}
func (e *fakeCommandEncoder) DebugMarkerEnd()                                 {}

// fakeQueue records every Submit/Present call for assertions.
type fakeQueue struct {
	submitCount  int
	presentCount int
	presentStatus hal.Status
}

func (q *fakeQueue) Submit(cmd hal.CommandEncoder, wait, signal hal.Semaphore, fence hal.Fence) hal.Status {
	q.submitCount++
	return hal.StatusSuccess
}

func (q *fakeQueue) Present(sc hal.Swapchain, imageIndex uint32, wait hal.Semaphore) hal.Status {
	q.presentCount++
	return q.presentStatus
}

func (q *fakeQueue) WaitIdle() hal.Status { return hal.StatusSuccess }

// fakeSwapchain always hands back image index 0 from a single fake image,
// and reports whatever acquireStatus/valid a test configures.
type fakeSwapchain struct {
	fakeResource
	acquireStatus hal.Status
	acquireCalls  int
	valid         bool
	generation    uint64
	images        []hal.Image
}

func (s *fakeSwapchain) IsValid() bool                    { return s.valid }
func (s *fakeSwapchain) IsOptimal() bool                  { return true }
func (s *fakeSwapchain) CurrentExtent() (uint32, uint32)  { return 640, 480 }
func (s *fakeSwapchain) Generation() uint64               { return s.generation }
func (s *fakeSwapchain) Images() []hal.Image              { return s.images }
func (s *fakeSwapchain) CurrentImageIndex() uint32        { return 0 }

func (s *fakeSwapchain) AcquireNextImage(acquireSem hal.Semaphore, fence hal.Fence) (uint32, hal.Status) {
	s.acquireCalls++
	return 0, s.acquireStatus
}

func (s *fakeSwapchain) Recreate(desc hal.SwapchainDescriptor) hal.Status {
	s.valid = true
	s.generation++
	return hal.StatusSuccess
}

// fakeDevice implements hal.Device. Every Create* returns a fresh fake
// resource; WaitForFences/WaitIdle succeed unconditionally unless a test
// overrides waitForFencesStatus.
type fakeDevice struct {
	queue              fakeQueue
	waitForFencesStatus hal.Status
	waitForFencesCalls  int
	lastWaitAll         bool
	lastTimeout         time.Duration
	descriptorHeap      *fakeDescriptorHeap
	swapchainImages     []hal.Image
}

func (d *fakeDevice) Queue() hal.Queue { return &d.queue }

func (d *fakeDevice) CreateBuffer(desc hal.BufferDescriptor) (hal.Buffer, hal.Status) {
	return &fakeBuffer{size: desc.Size, usage: desc.Usage}, hal.StatusSuccess
}
func (d *fakeDevice) CreateImage(desc hal.ImageDescriptor) (hal.Image, hal.Status) {
	return &fakeImage{usage: desc.Usage}, hal.StatusSuccess
}
func (d *fakeDevice) CreateBufferView(buf hal.Buffer, desc hal.BufferViewDescriptor) (hal.BufferView, hal.Status) {
	usage := types.BufferUsage(0)
	if b, ok := buf.(*fakeBuffer); ok {
		usage = b.usage
	}
	return &fakeBufferView{usage: usage}, hal.StatusSuccess
}
func (d *fakeDevice) CreateImageView(img hal.Image, desc hal.ImageViewDescriptor) (hal.ImageView, hal.Status) {
	usage := types.ImageUsage(0)
	if i, ok := img.(*fakeImage); ok {
		usage = i.usage
	}
	return &fakeImageView{usage: usage}, hal.StatusSuccess
}
func (d *fakeDevice) CreateSampler(desc hal.SamplerDescriptor) (hal.Sampler, hal.Status) {
	return &fakeSampler{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateShader(desc hal.ShaderDescriptor) (hal.Shader, hal.Status) {
	return &fakeShader{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateRenderPass(desc hal.RenderPassDescriptor) (hal.RenderPass, hal.Status) {
	return &fakeRenderPass{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateFramebuffer(desc hal.FramebufferDescriptor) (hal.Framebuffer, hal.Status) {
	return &fakeFramebuffer{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateDescriptorSetLayout(bindings []hal.DescriptorBindingDescriptor) (hal.DescriptorSetLayout, hal.Status) {
	return &fakeDescriptorSetLayout{bindings: bindings}, hal.StatusSuccess
}
func (d *fakeDevice) CreateDescriptorHeap(desc hal.DescriptorHeapDescriptor) (hal.DescriptorHeap, hal.Status) {
	if d.descriptorHeap == nil {
		d.descriptorHeap = &fakeDescriptorHeap{}
	}
	return d.descriptorHeap, hal.StatusSuccess
}
func (d *fakeDevice) CreatePipelineCache(desc hal.PipelineCacheDescriptor) (hal.PipelineCache, hal.Status) {
	return &fakePipelineCache{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateComputePipeline(desc hal.ComputePipelineDescriptor) (hal.ComputePipeline, hal.Status) {
	return &fakeComputePipeline{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateGraphicsPipeline(desc hal.GraphicsPipelineDescriptor) (hal.GraphicsPipeline, hal.Status) {
	return &fakeGraphicsPipeline{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateFence(desc hal.FenceDescriptor) (hal.Fence, hal.Status) {
	return &fakeFence{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateSemaphore(label string) (hal.Semaphore, hal.Status) {
	return &fakeSemaphore{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateCommandEncoder(label string) (hal.CommandEncoder, hal.Status) {
	return &fakeCommandEncoder{}, hal.StatusSuccess
}
func (d *fakeDevice) CreateSwapchain(desc hal.SwapchainDescriptor) (hal.Swapchain, hal.Status) {
	return &fakeSwapchain{valid: true, images: d.swapchainImages}, hal.StatusSuccess
}

func (d *fakeDevice) WaitForFences(fences []hal.Fence, waitAll bool, timeout time.Duration) hal.Status {
	d.waitForFencesCalls++
	d.lastWaitAll = waitAll
	d.lastTimeout = timeout
	if d.waitForFencesStatus.OK() {
		return hal.StatusSuccess
	}
	return d.waitForFencesStatus
}

func (d *fakeDevice) WaitIdle() hal.Status { return hal.StatusSuccess }

func (d *fakeDevice) Destroy() {}
