package gal

import (
	"math"
	"time"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/internal/registry"
	"github.com/ashura-engine/gal/internal/thread"
)

// InfiniteTimeout blocks WaitForFences until every fence signals, with no
// timeout. Passing 0 means "poll and return immediately" (§5) — callers
// that need to block until retirement, such as FrameContext.SubmitFrame's
// per-slot fence wait, must use this instead.
const InfiniteTimeout time.Duration = math.MaxInt64

// Device is the logical GPU device: the resource factory for every object
// kind and the exclusive owner of the arenas that back their handles
// (§4.2). A Device is not safe for concurrent use; one host thread drives
// it for the duration of a frame (§5).
type Device struct {
	hal hal.Device

	buffers           *registry.Arena[hal.Buffer, bufferMarker]
	images            *registry.Arena[hal.Image, imageMarker]
	bufferViews       *registry.Arena[hal.BufferView, bufferViewMarker]
	imageViews        *registry.Arena[hal.ImageView, imageViewMarker]
	samplers          *registry.Arena[hal.Sampler, samplerMarker]
	shaders           *registry.Arena[hal.Shader, shaderMarker]
	renderPasses      *registry.Arena[hal.RenderPass, renderPassMarker]
	framebuffers      *registry.Arena[hal.Framebuffer, framebufferMarker]
	pipelineCaches    *registry.Arena[hal.PipelineCache, pipelineCacheMarker]
	computePipelines  *registry.Arena[hal.ComputePipeline, computePipelineMarker]
	graphicsPipelines *registry.Arena[hal.GraphicsPipeline, graphicsPipelineMarker]
	fences            *registry.Arena[hal.Fence, fenceMarker]
	semaphores        *registry.Arena[hal.Semaphore, semaphoreMarker]
	setLayouts        *registry.Arena[hal.DescriptorSetLayout, descriptorSetLayoutMarker]
	descriptorHeaps   *registry.Arena[hal.DescriptorHeap, descriptorHeapMarker]
	commandEncoders   *registry.Arena[hal.CommandEncoder, commandEncoderMarker]
	swapchains        *registry.Arena[hal.Swapchain, swapchainMarker]

	// frame is the device's attached FrameContext, if any. Resources
	// released while a frame is in flight are deferred to it instead of
	// being destroyed immediately (§4.2 "unless... in a per-frame
	// released queue", §4.6).
	frame *FrameContext

	// renderLoop is the instance's dedicated render thread, shared by
	// every device it opens; Swapchain.AcquireNextImage and Queue.Present
	// run on it, and FrameContext consumes its pending-resize queue.
	renderLoop *thread.RenderLoop
}

func newDevice(h hal.Device, renderLoop *thread.RenderLoop) *Device {
	return &Device{
		hal:               h,
		renderLoop:        renderLoop,
		buffers:           registry.New[hal.Buffer, bufferMarker](),
		images:            registry.New[hal.Image, imageMarker](),
		bufferViews:       registry.New[hal.BufferView, bufferViewMarker](),
		imageViews:        registry.New[hal.ImageView, imageViewMarker](),
		samplers:          registry.New[hal.Sampler, samplerMarker](),
		shaders:           registry.New[hal.Shader, shaderMarker](),
		renderPasses:      registry.New[hal.RenderPass, renderPassMarker](),
		framebuffers:      registry.New[hal.Framebuffer, framebufferMarker](),
		pipelineCaches:    registry.New[hal.PipelineCache, pipelineCacheMarker](),
		computePipelines:  registry.New[hal.ComputePipeline, computePipelineMarker](),
		graphicsPipelines: registry.New[hal.GraphicsPipeline, graphicsPipelineMarker](),
		fences:            registry.New[hal.Fence, fenceMarker](),
		semaphores:        registry.New[hal.Semaphore, semaphoreMarker](),
		setLayouts:        registry.New[hal.DescriptorSetLayout, descriptorSetLayoutMarker](),
		descriptorHeaps:   registry.New[hal.DescriptorHeap, descriptorHeapMarker](),
		commandEncoders:   registry.New[hal.CommandEncoder, commandEncoderMarker](),
		swapchains:        registry.New[hal.Swapchain, swapchainMarker](),
	}
}

// retire destroys v immediately when no FrameContext is attached; while
// one is attached, destruction is always deferred to its current slot
// (§4.2, §4.6).
func (d *Device) retire(v hal.Resource) {
	if v == nil {
		return
	}
	if d.frame != nil {
		d.frame.deferDestroy(v)
		return
	}
	v.Destroy()
}

// releaseHandle implements unref_X generically across every resource
// arena: decrement, and on the transition to zero hand the backend object
// to retire.
func releaseHandle[T hal.Resource, M registry.Marker](d *Device, arena *registry.Arena[T, M], h registry.Handle[M]) {
	v, destroyed, ok := arena.Unref(h)
	if !ok || !destroyed {
		return
	}
	d.retire(v)
}

// Queue returns the device's single graphics+present queue (§4.1).
func (d *Device) Queue() *Queue { return &Queue{device: d, hal: d.hal.Queue()} }

func (d *Device) CreateBuffer(desc BufferDescriptor) (Buffer, Status) {
	b, status := d.hal.CreateBuffer(desc)
	if !status.OK() {
		return Buffer{}, status
	}
	return Buffer{device: d, h: d.buffers.Insert(b)}, status
}

func (d *Device) CreateImage(desc ImageDescriptor) (Image, Status) {
	img, status := d.hal.CreateImage(desc)
	if !status.OK() {
		return Image{}, status
	}
	return Image{device: d, h: d.images.Insert(img)}, status
}

func (d *Device) CreateBufferView(buf Buffer, desc BufferViewDescriptor) (BufferView, Status) {
	halBuf, ok := d.buffers.Get(buf.h)
	if !ok {
		return BufferView{}, hal.StatusUnknown
	}
	v, status := d.hal.CreateBufferView(*halBuf, desc)
	if !status.OK() {
		return BufferView{}, status
	}
	return BufferView{device: d, h: d.bufferViews.Insert(v)}, status
}

func (d *Device) CreateImageView(img Image, desc ImageViewDescriptor) (ImageView, Status) {
	halImg, ok := d.images.Get(img.h)
	if !ok {
		return ImageView{}, hal.StatusUnknown
	}
	v, status := d.hal.CreateImageView(*halImg, desc)
	if !status.OK() {
		return ImageView{}, status
	}
	return ImageView{device: d, h: d.imageViews.Insert(v)}, status
}

func (d *Device) CreateSampler(desc SamplerDescriptor) (Sampler, Status) {
	s, status := d.hal.CreateSampler(desc)
	if !status.OK() {
		return Sampler{}, status
	}
	return Sampler{device: d, h: d.samplers.Insert(s)}, status
}

func (d *Device) CreateShader(desc ShaderDescriptor) (Shader, Status) {
	s, status := d.hal.CreateShader(desc)
	if !status.OK() {
		return Shader{}, status
	}
	return Shader{device: d, h: d.shaders.Insert(s)}, status
}

func (d *Device) CreateFence(desc FenceDescriptor) (Fence, Status) {
	f, status := d.hal.CreateFence(desc)
	if !status.OK() {
		return Fence{}, status
	}
	return Fence{device: d, h: d.fences.Insert(f)}, status
}

func (d *Device) CreateSemaphore(label string) (Semaphore, Status) {
	s, status := d.hal.CreateSemaphore(label)
	if !status.OK() {
		return Semaphore{}, status
	}
	return Semaphore{device: d, h: d.semaphores.Insert(s)}, status
}

func (d *Device) CreateCommandEncoder(label string) (*CommandEncoder, Status) {
	e, status := d.hal.CreateCommandEncoder(label)
	if !status.OK() {
		return nil, status
	}
	return &CommandEncoder{device: d, h: d.commandEncoders.Insert(e), hal: e}, status
}

// WaitForFences blocks until all (or any, if waitAll is false) fences are
// signaled or timeout elapses (§5 "Suspension/blocking points").
func (d *Device) WaitForFences(fences []Fence, waitAll bool, timeout time.Duration) Status {
	halFences := make([]hal.Fence, 0, len(fences))
	for _, f := range fences {
		if hf, ok := d.fences.Get(f.h); ok {
			halFences = append(halFences, *hf)
		}
	}
	return d.hal.WaitForFences(halFences, waitAll, timeout)
}

// WaitIdle blocks until all queued work on the device completes.
func (d *Device) WaitIdle() Status { return d.hal.WaitIdle() }

// Destroy tears down the device and every live backend object reachable
// through it. Release individual resources first in normal operation;
// Destroy is a last-resort teardown for shutdown.
func (d *Device) Destroy() { d.hal.Destroy() }
