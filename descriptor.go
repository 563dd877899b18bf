package gal

import "github.com/ashura-engine/gal/hal"

// DescriptorSetLayout is an ordered sequence of binding descriptors (§3).
type DescriptorSetLayout struct {
	device *Device
	h      DescriptorSetLayoutHandle
}

func (l DescriptorSetLayout) IsZero() bool { return l.h.IsZero() }

func (l DescriptorSetLayout) Ref() DescriptorSetLayout {
	if l.device != nil {
		l.device.setLayouts.Ref(l.h)
	}
	return l
}

func (l DescriptorSetLayout) Release() {
	if l.device != nil {
		releaseHandle(l.device, l.device.setLayouts, l.h)
	}
}

func (l DescriptorSetLayout) Bindings() []DescriptorBindingDescriptor {
	v, ok := l.device.setLayouts.Get(l.h)
	if !ok {
		return nil
	}
	return (*v).Bindings()
}

func (d *Device) CreateDescriptorSetLayout(bindings []DescriptorBindingDescriptor) (DescriptorSetLayout, Status) {
	l, status := d.hal.CreateDescriptorSetLayout(bindings)
	if !status.OK() {
		return DescriptorSetLayout{}, status
	}
	return DescriptorSetLayout{device: d, h: d.setLayouts.Insert(l)}, status
}

// DescriptorHeapDescriptor is the create-info for Device.CreateDescriptorHeap
// (§3 "DescriptorHeap", §4.3).
type DescriptorHeapDescriptor struct {
	Label            string
	SetLayouts       []DescriptorSetLayout
	NumGroupsPerPool uint32
}

// ImageDescriptorWrite binds one image-kind descriptor element
// (sampled-image, storage-image, combined-image-sampler, input-attachment).
type ImageDescriptorWrite struct {
	View   ImageView
	Layout ImageLayout
	// Sampler is set only for CombinedImageSampler writes.
	Sampler Sampler
}

// BufferDescriptorWrite binds one buffer-kind descriptor element
// (uniform/storage-buffer, dynamic uniform/storage-buffer).
type BufferDescriptorWrite struct {
	Buffer Buffer
	Offset uint64
	Range  uint64
}

// TexelBufferDescriptorWrite binds one uniform/storage-texel-buffer
// descriptor element.
type TexelBufferDescriptorWrite struct {
	View BufferView
}

// DescriptorHeap owns an array of pools of fixed-size descriptor-set
// groups, amortizing backend pool/set creation and reclaiming sets only
// after their last-use frame is retired (§4.3).
type DescriptorHeap struct {
	device *Device
	h      DescriptorHeapHandle
}

func (heap DescriptorHeap) IsZero() bool { return heap.h.IsZero() }

func (heap DescriptorHeap) Ref() DescriptorHeap {
	if heap.device != nil {
		heap.device.descriptorHeaps.Ref(heap.h)
	}
	return heap
}

func (heap DescriptorHeap) Release() {
	if heap.device != nil {
		releaseHandle(heap.device, heap.device.descriptorHeaps, heap.h)
	}
}

func (heap DescriptorHeap) get() (hal.DescriptorHeap, bool) {
	if heap.device == nil {
		return nil, false
	}
	v, ok := heap.device.descriptorHeaps.Get(heap.h)
	if !ok {
		return nil, false
	}
	return *v, true
}

// AddGroup promotes released groups whose last-use precedes trailingFrame
// to free, then reuses or allocates a group, returning its dense id
// (§4.3 steps 1-3).
func (heap DescriptorHeap) AddGroup(trailingFrame uint64) (uint32, Status) {
	h, ok := heap.get()
	if !ok {
		return 0, hal.StatusUnknown
	}
	return h.AddGroup(trailingFrame)
}

// ReleaseGroup appends group to the released list; it remains allocated until
// its last-use frame is retired.
func (heap DescriptorHeap) ReleaseGroup(group uint32) {
	if h, ok := heap.get(); ok {
		h.Release(group)
	}
}

// MarkInUse sets group's last-use frame. currentFrame must be
// monotonically non-decreasing across calls for the same group.
func (heap DescriptorHeap) MarkInUse(group uint32, currentFrame uint64) {
	if h, ok := heap.get(); ok {
		h.MarkInUse(group, currentFrame)
	}
}

// IsInUse reports last_use(group) >= trailingFrame.
func (heap DescriptorHeap) IsInUse(group uint32, trailingFrame uint64) bool {
	h, ok := heap.get()
	if !ok {
		return false
	}
	return h.IsInUse(group, trailingFrame)
}

func (heap DescriptorHeap) WriteSamplers(group, set, binding uint32, samplers []Sampler) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	halSamplers := make([]hal.Sampler, 0, len(samplers))
	for _, s := range samplers {
		if v, ok := heap.device.samplers.Get(s.h); ok {
			halSamplers = append(halSamplers, *v)
		}
	}
	return h.WriteSamplers(group, set, binding, halSamplers)
}

func (heap DescriptorHeap) imageWritesToHAL(writes []ImageDescriptorWrite) []hal.ImageDescriptorWrite {
	out := make([]hal.ImageDescriptorWrite, 0, len(writes))
	for _, w := range writes {
		view, ok := heap.device.imageViews.Get(w.View.h)
		if !ok {
			continue
		}
		var sampler hal.Sampler
		if !w.Sampler.IsZero() {
			if s, ok := heap.device.samplers.Get(w.Sampler.h); ok {
				sampler = *s
			}
		}
		out = append(out, hal.ImageDescriptorWrite{View: *view, Layout: w.Layout, Sampler: sampler})
	}
	return out
}

func (heap DescriptorHeap) bufferWritesToHAL(writes []BufferDescriptorWrite) []hal.BufferDescriptorWrite {
	out := make([]hal.BufferDescriptorWrite, 0, len(writes))
	for _, w := range writes {
		buf, ok := heap.device.buffers.Get(w.Buffer.h)
		if !ok {
			continue
		}
		out = append(out, hal.BufferDescriptorWrite{Buffer: *buf, Offset: w.Offset, Range: w.Range})
	}
	return out
}

func (heap DescriptorHeap) texelBufferWritesToHAL(writes []TexelBufferDescriptorWrite) []hal.TexelBufferDescriptorWrite {
	out := make([]hal.TexelBufferDescriptorWrite, 0, len(writes))
	for _, w := range writes {
		view, ok := heap.device.bufferViews.Get(w.View.h)
		if !ok {
			continue
		}
		out = append(out, hal.TexelBufferDescriptorWrite{View: *view})
	}
	return out
}

func (heap DescriptorHeap) WriteCombinedImageSamplers(group, set, binding uint32, writes []ImageDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteCombinedImageSamplers(group, set, binding, heap.imageWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteSampledImages(group, set, binding uint32, writes []ImageDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteSampledImages(group, set, binding, heap.imageWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteStorageImages(group, set, binding uint32, writes []ImageDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteStorageImages(group, set, binding, heap.imageWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteUniformTexelBuffers(group, set, binding uint32, writes []TexelBufferDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteUniformTexelBuffers(group, set, binding, heap.texelBufferWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteStorageTexelBuffers(group, set, binding uint32, writes []TexelBufferDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteStorageTexelBuffers(group, set, binding, heap.texelBufferWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteUniformBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteUniformBuffers(group, set, binding, heap.bufferWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteStorageBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteStorageBuffers(group, set, binding, heap.bufferWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteDynamicUniformBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteDynamicUniformBuffers(group, set, binding, heap.bufferWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteDynamicStorageBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteDynamicStorageBuffers(group, set, binding, heap.bufferWritesToHAL(writes))
}

func (heap DescriptorHeap) WriteInputAttachments(group, set, binding uint32, writes []ImageDescriptorWrite) Status {
	h, ok := heap.get()
	if !ok {
		return hal.StatusUnknown
	}
	return h.WriteInputAttachments(group, set, binding, heap.imageWritesToHAL(writes))
}

// Stats returns the per-pool allocation breakdown, for diagnostics.
func (heap DescriptorHeap) Stats() DescriptorHeapStats {
	h, ok := heap.get()
	if !ok {
		return DescriptorHeapStats{}
	}
	return h.Stats()
}

func (d *Device) CreateDescriptorHeap(desc DescriptorHeapDescriptor) (DescriptorHeap, Status) {
	layouts, ok := d.setLayoutsToHAL(desc.SetLayouts)
	if !ok {
		return DescriptorHeap{}, hal.StatusUnknown
	}
	h, status := d.hal.CreateDescriptorHeap(hal.DescriptorHeapDescriptor{
		Label:            desc.Label,
		SetLayouts:       layouts,
		NumGroupsPerPool: desc.NumGroupsPerPool,
	})
	if !status.OK() {
		return DescriptorHeap{}, status
	}
	return DescriptorHeap{device: d, h: d.descriptorHeaps.Insert(h)}, status
}
