// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "github.com/ashura-engine/gal/types"

// DescriptorHeapDescriptor is the create-info for Device.CreateDescriptorHeap
// (§3 "DescriptorHeap", §4.3).
type DescriptorHeapDescriptor struct {
	Label            string
	SetLayouts       []DescriptorSetLayout
	NumGroupsPerPool uint32
}

// DescriptorHeapStats is the per-pool diagnostic breakdown Stats returns,
// supplementing the distilled spec's one-line "returns totals for
// diagnostics" with the per-pool granularity the original source exposes
// (SPEC_FULL.md §12).
type DescriptorHeapStats struct {
	NumPools         uint32
	NumGroupsPerPool uint32
	Pools            []DescriptorPoolStats
}

// DescriptorPoolStats is the allocation breakdown for one pool.
type DescriptorPoolStats struct {
	Free     uint32
	Released uint32
	InUse    uint32
}

// ImageDescriptorWrite binds one image-kind descriptor element
// (sampled-image, storage-image, combined-image-sampler, input-attachment).
type ImageDescriptorWrite struct {
	View   ImageView
	Layout types.ImageLayout
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
type DescriptorHeap interface {
	Resource

	// AddGroup promotes released groups whose last-use precedes
	// trailingFrame to free, then reuses or allocates a group, returning
	// its dense id (§4.3 steps 1-3).
	AddGroup(trailingFrame uint64) (group uint32, status Status)

	// Release appends group to the released list; it remains allocated
	// until its last-use frame is retired.
	Release(group uint32)

	// MarkInUse sets group's last-use frame. currentFrame must be
	// monotonically non-decreasing across calls for the same group.
	MarkInUse(group uint32, currentFrame uint64)
	// IsInUse reports last_use(group) >= trailingFrame.
	IsInUse(group uint32, trailingFrame uint64) bool

	// Each write op validates (group, set, binding) is in range, the
	// binding's declared type matches, the element count equals the
	// binding's declared count, and every resource carries the usage flag
	// its descriptor type requires, before copying the elements into the
	// group's CPU shadow at their precomputed offset and issuing the
	// backend update-descriptor-set call (§4.3 "Write operations").
	WriteSamplers(group, set, binding uint32, samplers []Sampler) Status
	WriteCombinedImageSamplers(group, set, binding uint32, writes []ImageDescriptorWrite) Status
	WriteSampledImages(group, set, binding uint32, writes []ImageDescriptorWrite) Status
	WriteStorageImages(group, set, binding uint32, writes []ImageDescriptorWrite) Status
	WriteUniformTexelBuffers(group, set, binding uint32, writes []TexelBufferDescriptorWrite) Status
	WriteStorageTexelBuffers(group, set, binding uint32, writes []TexelBufferDescriptorWrite) Status
	WriteUniformBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status
	WriteStorageBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status
	WriteDynamicUniformBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status
	WriteDynamicStorageBuffers(group, set, binding uint32, writes []BufferDescriptorWrite) Status
	WriteInputAttachments(group, set, binding uint32, writes []ImageDescriptorWrite) Status

	Stats() DescriptorHeapStats
}
