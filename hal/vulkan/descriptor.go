// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"sync"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

// descriptorGroup is one allocated (set-per-layout) group within a pool.
// free/released/lastUse implement the promote-then-reuse reclamation cycle
// of §4.3: a group goes Released -> (once its last-use frame retires) Free
// -> reused by the next AddGroup. shadow is the CPU mirror of the group's
// current binding values, indexed by each binding's precomputed offset
// (§3 "DescriptorHeap").
type descriptorGroup struct {
	sets     []vk.DescriptorSet // one per DescriptorHeapDescriptor.SetLayouts entry
	free     bool
	released bool
	lastUse  uint64
	shadow   []any
}

// bindingSlot is the precomputed location and declared shape of one
// (set, binding) pair within a group's shadow, fixed for the lifetime of
// the heap since SetLayouts never change after creation (§4.3 step "Write
// operations").
type bindingSlot struct {
	declType types.DescriptorType
	count    uint32
	offset   int
}

// requiredImageUsage returns the usage flag a sampled/storage/input-
// attachment descriptor type requires of every image it binds (§4.3
// "every resource carries the usage flag the descriptor type requires").
func requiredImageUsage(t types.DescriptorType) types.ImageUsage {
	switch t {
	case types.DescriptorTypeCombinedImageSampler, types.DescriptorTypeSampledImage:
		return types.ImageUsageSampled
	case types.DescriptorTypeStorageImage:
		return types.ImageUsageStorage
	case types.DescriptorTypeInputAttachment:
		return types.ImageUsageInputAttachment
	default:
		return 0
	}
}

// requiredBufferUsage is requiredImageUsage's buffer-kind counterpart.
func requiredBufferUsage(t types.DescriptorType) types.BufferUsage {
	switch t {
	case types.DescriptorTypeUniformBuffer, types.DescriptorTypeUniformBufferDynamic:
		return types.BufferUsageUniformBuffer
	case types.DescriptorTypeStorageBuffer, types.DescriptorTypeStorageBufferDynamic:
		return types.BufferUsageStorageBuffer
	case types.DescriptorTypeUniformTexelBuffer:
		return types.BufferUsageUniformTexel
	case types.DescriptorTypeStorageTexelBuffer:
		return types.BufferUsageStorageTexel
	default:
		return 0
	}
}

// descriptorPool is one VkDescriptorPool sized for exactly
// NumGroupsPerPool groups.
type descriptorPool struct {
	handle vk.DescriptorPool
	groups []descriptorGroup
}

// DescriptorHeap implements hal.DescriptorHeap as an array of fixed-size
// descriptor pools, amortizing vkCreateDescriptorPool/vkAllocateDescriptorSets
// calls across many logical descriptor-set groups (§4.3).
type DescriptorHeap struct {
	mu sync.Mutex

	device           *Device
	setLayouts       []*DescriptorSetLayout
	vkSetLayouts     []vk.DescriptorSetLayout
	numGroupsPerPool uint32
	poolSizes        []vk.DescriptorPoolSize

	// slots maps (set, binding) to its precomputed shadow location and
	// declared shape; shadowStride is the total shadow length every group
	// allocates (§3 "group_binding_stride").
	slots        map[[2]uint32]bindingSlot
	shadowStride int

	pools    []*descriptorPool
	freeList []uint32
}

// CreateDescriptorHeap implements hal.Device.CreateDescriptorHeap.
func (d *Device) CreateDescriptorHeap(desc hal.DescriptorHeapDescriptor) (hal.DescriptorHeap, hal.Status) {
	if len(desc.SetLayouts) == 0 || desc.NumGroupsPerPool == 0 {
		return nil, hal.StatusUnknown
	}

	layouts := make([]*DescriptorSetLayout, len(desc.SetLayouts))
	vkLayouts := make([]vk.DescriptorSetLayout, len(desc.SetLayouts))
	for i, l := range desc.SetLayouts {
		vl, ok := l.(*DescriptorSetLayout)
		if !ok {
			return nil, hal.StatusUnknown
		}
		layouts[i] = vl
		vkLayouts[i] = vl.handle
	}

	slots, stride := bindingSlotsForLayouts(layouts)

	h := &DescriptorHeap{
		device:           d,
		setLayouts:       layouts,
		vkSetLayouts:     vkLayouts,
		numGroupsPerPool: desc.NumGroupsPerPool,
		poolSizes:        poolSizesForLayouts(layouts, desc.NumGroupsPerPool),
		slots:            slots,
		shadowStride:     stride,
	}

	if status := h.growPool(); !status.OK() {
		return nil, status
	}

	return h, hal.StatusSuccess
}

// bindingSlotsForLayouts precomputes each (set, binding) pair's shadow
// offset and declared type/count from the set layouts bound at heap
// creation (§3 "offsets per (set, binding) precomputed once").
func bindingSlotsForLayouts(layouts []*DescriptorSetLayout) (map[[2]uint32]bindingSlot, int) {
	slots := make(map[[2]uint32]bindingSlot)
	offset := 0
	for set, l := range layouts {
		for binding, b := range l.bindings {
			slots[[2]uint32{uint32(set), uint32(binding)}] = bindingSlot{
				declType: b.Type,
				count:    b.Count,
				offset:   offset,
			}
			offset += int(b.Count)
		}
	}
	return slots, offset
}

func poolSizesForLayouts(layouts []*DescriptorSetLayout, groupsPerPool uint32) []vk.DescriptorPoolSize {
	counts := make(map[vk.DescriptorType]uint32)
	for _, l := range layouts {
		for _, b := range l.bindings {
			counts[descriptorTypeToVk(b.Type)] += b.Count * groupsPerPool
		}
	}
	sizes := make([]vk.DescriptorPoolSize, 0, len(counts))
	for t, c := range counts {
		sizes = append(sizes, vk.DescriptorPoolSize{Type: t, DescriptorCount: c})
	}
	return sizes
}

// growPool allocates one new VkDescriptorPool and all its groups' descriptor
// sets in a single vkAllocateDescriptorSets call, then appends every new
// group's dense id to freeList.
func (h *DescriptorHeap) growPool() hal.Status {
	setsPerGroup := uint32(len(h.vkSetLayouts))

	poolInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       setsPerGroup * h.numGroupsPerPool,
		PoolSizeCount: uint32(len(h.poolSizes)),
	}
	if len(h.poolSizes) > 0 {
		poolInfo.PPoolSizes = &h.poolSizes[0]
	}

	var poolHandle vk.DescriptorPool
	result := vk.CreateDescriptorPool(h.device.handle, &poolInfo, nil, &poolHandle)
	if result != vk.Success {
		return statusFromResult(result)
	}

	totalSets := setsPerGroup * h.numGroupsPerPool
	layoutsRepeated := make([]vk.DescriptorSetLayout, 0, totalSets)
	for g := uint32(0); g < h.numGroupsPerPool; g++ {
		layoutsRepeated = append(layoutsRepeated, h.vkSetLayouts...)
	}

	allSets := make([]vk.DescriptorSet, totalSets)
	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     poolHandle,
		DescriptorSetCount: totalSets,
		PSetLayouts:        &layoutsRepeated[0],
	}
	result = vk.AllocateDescriptorSets(h.device.handle, &allocInfo, &allSets[0])
	if result != vk.Success {
		vk.DestroyDescriptorPool(h.device.handle, poolHandle, nil)
		return statusFromResult(result)
	}

	pool := &descriptorPool{handle: poolHandle, groups: make([]descriptorGroup, h.numGroupsPerPool)}
	poolIndex := uint32(len(h.pools))
	for g := uint32(0); g < h.numGroupsPerPool; g++ {
		pool.groups[g] = descriptorGroup{
			sets:   allSets[g*setsPerGroup : (g+1)*setsPerGroup],
			free:   true,
			shadow: make([]any, h.shadowStride),
		}
		h.freeList = append(h.freeList, poolIndex*h.numGroupsPerPool+g)
	}
	h.pools = append(h.pools, pool)

	return hal.StatusSuccess
}

func (h *DescriptorHeap) groupAt(id uint32) *descriptorGroup {
	poolIndex := id / h.numGroupsPerPool
	local := id % h.numGroupsPerPool
	if int(poolIndex) >= len(h.pools) {
		return nil
	}
	return &h.pools[poolIndex].groups[local]
}

// AddGroup implements hal.DescriptorHeap.AddGroup (§4.3 steps 1-3).
func (h *DescriptorHeap) AddGroup(trailingFrame uint64) (uint32, hal.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, pool := range h.pools {
		for i := range pool.groups {
			g := &pool.groups[i]
			if g.released && !g.free && g.lastUse < trailingFrame {
				g.released = false
				g.free = true
			}
		}
	}
	h.freeList = h.freeList[:0]
	for poolIndex, pool := range h.pools {
		for local, g := range pool.groups {
			if g.free {
				h.freeList = append(h.freeList, uint32(poolIndex)*h.numGroupsPerPool+uint32(local))
			}
		}
	}

	if len(h.freeList) == 0 {
		if status := h.growPool(); !status.OK() {
			return 0, status
		}
	}

	// freeList is ascending (rebuilt in pool/local order above, or appended
	// in pool/local order by growPool): pop the front so ids are handed out
	// smallest-first and therefore predictable (§4.3 step 3).
	id := h.freeList[0]
	h.freeList = h.freeList[1:]
	g := h.groupAt(id)
	g.free = false
	for i := range g.shadow {
		g.shadow[i] = nil
	}
	return id, hal.StatusSuccess
}

// Release implements hal.DescriptorHeap.Release.
func (h *DescriptorHeap) Release(group uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if g := h.groupAt(group); g != nil {
		g.released = true
	}
}

// MarkInUse implements hal.DescriptorHeap.MarkInUse.
func (h *DescriptorHeap) MarkInUse(group uint32, currentFrame uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if g := h.groupAt(group); g != nil {
		g.lastUse = currentFrame
	}
}

// IsInUse implements hal.DescriptorHeap.IsInUse.
func (h *DescriptorHeap) IsInUse(group uint32, trailingFrame uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	g := h.groupAt(group)
	return g != nil && g.lastUse >= trailingFrame
}

// Stats implements hal.DescriptorHeap.Stats.
func (h *DescriptorHeap) Stats() hal.DescriptorHeapStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := hal.DescriptorHeapStats{
		NumPools:         uint32(len(h.pools)),
		NumGroupsPerPool: h.numGroupsPerPool,
		Pools:            make([]hal.DescriptorPoolStats, len(h.pools)),
	}
	for i, pool := range h.pools {
		var s hal.DescriptorPoolStats
		for _, g := range pool.groups {
			switch {
			case g.free:
				s.Free++
			case g.released:
				s.Released++
			default:
				s.InUse++
			}
		}
		stats.Pools[i] = s
	}
	return stats
}

// Destroy implements hal.Resource.
func (h *DescriptorHeap) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, pool := range h.pools {
		vk.DestroyDescriptorPool(h.device.handle, pool.handle, nil)
	}
	h.pools = nil
}

func (h *DescriptorHeap) set(group, set uint32) vk.DescriptorSet {
	g := h.groupAt(group)
	if g == nil || int(set) >= len(g.sets) {
		return 0
	}
	return g.sets[set]
}

// validateWrite implements §4.3's common write-time checks: (group, set,
// binding) resolves to a bound slot, the slot's declared type matches
// declType, and n equals the slot's declared count. It holds h.mu for the
// duration of the write it backs.
func (h *DescriptorHeap) validateWrite(group, set, binding uint32, declType types.DescriptorType, n int) (*descriptorGroup, bindingSlot, hal.Status) {
	g := h.groupAt(group)
	if g == nil || int(set) >= len(g.sets) {
		return nil, bindingSlot{}, hal.StatusUnknown
	}
	slot, ok := h.slots[[2]uint32{set, binding}]
	if !ok || slot.declType != declType {
		return nil, bindingSlot{}, hal.StatusUnknown
	}
	if uint32(n) != slot.count {
		return nil, bindingSlot{}, hal.StatusUnknown
	}
	return g, slot, hal.StatusSuccess
}

func (h *DescriptorHeap) writeImages(group, set, binding uint32, declType types.DescriptorType, writes []hal.ImageDescriptorWrite) hal.Status {
	if len(writes) == 0 {
		return hal.StatusSuccess
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	g, slot, status := h.validateWrite(group, set, binding, declType, len(writes))
	if !status.OK() {
		return status
	}
	requiredUsage := requiredImageUsage(declType)
	infos := make([]vk.DescriptorImageInfo, len(writes))
	for i, w := range writes {
		v, ok := w.View.(*ImageView)
		if !ok || (requiredUsage != 0 && !v.usage.Contains(requiredUsage)) {
			return hal.StatusUnknown
		}
		var info vk.DescriptorImageInfo
		info.ImageView = v.handle
		if s, ok := w.Sampler.(*Sampler); ok {
			info.Sampler = s.handle
		}
		info.ImageLayout = imageLayoutToVk(w.Layout)
		infos[i] = info
		g.shadow[slot.offset+i] = w
	}
	write := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          h.set(group, set),
		DstBinding:      binding,
		DescriptorCount: uint32(len(infos)),
		DescriptorType:  descriptorTypeToVk(declType),
		PImageInfo:      &infos[0],
	}
	vk.UpdateDescriptorSets(h.device.handle, 1, &write, 0, nil)
	return hal.StatusSuccess
}

func (h *DescriptorHeap) writeBuffers(group, set, binding uint32, declType types.DescriptorType, writes []hal.BufferDescriptorWrite) hal.Status {
	if len(writes) == 0 {
		return hal.StatusSuccess
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	g, slot, status := h.validateWrite(group, set, binding, declType, len(writes))
	if !status.OK() {
		return status
	}
	requiredUsage := requiredBufferUsage(declType)
	infos := make([]vk.DescriptorBufferInfo, len(writes))
	for i, w := range writes {
		b, ok := w.Buffer.(*Buffer)
		if !ok || (requiredUsage != 0 && !b.usage.Contains(requiredUsage)) {
			return hal.StatusUnknown
		}
		var info vk.DescriptorBufferInfo
		info.Buffer = b.handle
		info.Offset = vk.DeviceSize(w.Offset)
		info.Range = vk.DeviceSize(w.Range)
		infos[i] = info
		g.shadow[slot.offset+i] = w
	}
	write := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          h.set(group, set),
		DstBinding:      binding,
		DescriptorCount: uint32(len(infos)),
		DescriptorType:  descriptorTypeToVk(declType),
		PBufferInfo:     &infos[0],
	}
	vk.UpdateDescriptorSets(h.device.handle, 1, &write, 0, nil)
	return hal.StatusSuccess
}

func (h *DescriptorHeap) writeTexelBuffers(group, set, binding uint32, declType types.DescriptorType, writes []hal.TexelBufferDescriptorWrite) hal.Status {
	if len(writes) == 0 {
		return hal.StatusSuccess
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	g, slot, status := h.validateWrite(group, set, binding, declType, len(writes))
	if !status.OK() {
		return status
	}
	requiredUsage := requiredBufferUsage(declType)
	views := make([]vk.BufferView, len(writes))
	for i, w := range writes {
		v, ok := w.View.(*BufferView)
		if !ok || (requiredUsage != 0 && !v.usage.Contains(requiredUsage)) {
			return hal.StatusUnknown
		}
		views[i] = v.handle
		g.shadow[slot.offset+i] = w
	}
	write := vk.WriteDescriptorSet{
		SType:            vk.StructureTypeWriteDescriptorSet,
		DstSet:           h.set(group, set),
		DstBinding:       binding,
		DescriptorCount:  uint32(len(views)),
		DescriptorType:   descriptorTypeToVk(declType),
		PTexelBufferView: &views[0],
	}
	vk.UpdateDescriptorSets(h.device.handle, 1, &write, 0, nil)
	return hal.StatusSuccess
}

func (h *DescriptorHeap) WriteSamplers(group, set, binding uint32, samplers []hal.Sampler) hal.Status {
	if len(samplers) == 0 {
		return hal.StatusSuccess
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	g, slot, status := h.validateWrite(group, set, binding, types.DescriptorTypeSampler, len(samplers))
	if !status.OK() {
		return status
	}
	infos := make([]vk.DescriptorImageInfo, len(samplers))
	for i, s := range samplers {
		vs, ok := s.(*Sampler)
		if !ok {
			return hal.StatusUnknown
		}
		infos[i].Sampler = vs.handle
		g.shadow[slot.offset+i] = s
	}
	write := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          h.set(group, set),
		DstBinding:      binding,
		DescriptorCount: uint32(len(infos)),
		DescriptorType:  vk.DescriptorTypeSampler,
		PImageInfo:      &infos[0],
	}
	vk.UpdateDescriptorSets(h.device.handle, 1, &write, 0, nil)
	return hal.StatusSuccess
}

func (h *DescriptorHeap) WriteCombinedImageSamplers(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	return h.writeImages(group, set, binding, types.DescriptorTypeCombinedImageSampler, writes)
}

func (h *DescriptorHeap) WriteSampledImages(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	return h.writeImages(group, set, binding, types.DescriptorTypeSampledImage, writes)
}

func (h *DescriptorHeap) WriteStorageImages(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	return h.writeImages(group, set, binding, types.DescriptorTypeStorageImage, writes)
}

func (h *DescriptorHeap) WriteUniformTexelBuffers(group, set, binding uint32, writes []hal.TexelBufferDescriptorWrite) hal.Status {
	return h.writeTexelBuffers(group, set, binding, types.DescriptorTypeUniformTexelBuffer, writes)
}

func (h *DescriptorHeap) WriteStorageTexelBuffers(group, set, binding uint32, writes []hal.TexelBufferDescriptorWrite) hal.Status {
	return h.writeTexelBuffers(group, set, binding, types.DescriptorTypeStorageTexelBuffer, writes)
}

func (h *DescriptorHeap) WriteUniformBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	return h.writeBuffers(group, set, binding, types.DescriptorTypeUniformBuffer, writes)
}

func (h *DescriptorHeap) WriteStorageBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	return h.writeBuffers(group, set, binding, types.DescriptorTypeStorageBuffer, writes)
}

func (h *DescriptorHeap) WriteDynamicUniformBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	return h.writeBuffers(group, set, binding, types.DescriptorTypeUniformBufferDynamic, writes)
}

func (h *DescriptorHeap) WriteDynamicStorageBuffers(group, set, binding uint32, writes []hal.BufferDescriptorWrite) hal.Status {
	return h.writeBuffers(group, set, binding, types.DescriptorTypeStorageBufferDynamic, writes)
}

func (h *DescriptorHeap) WriteInputAttachments(group, set, binding uint32, writes []hal.ImageDescriptorWrite) hal.Status {
	return h.writeImages(group, set, binding, types.DescriptorTypeInputAttachment, writes)
}

// CreateDescriptorSetLayout implements hal.Device.CreateDescriptorSetLayout.
func (d *Device) CreateDescriptorSetLayout(bindings []hal.DescriptorBindingDescriptor) (hal.DescriptorSetLayout, hal.Status) {
	vkBindings := make([]vk.DescriptorSetLayoutBinding, len(bindings))
	for i, b := range bindings {
		vkBindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         uint32(i),
			DescriptorType:  descriptorTypeToVk(b.Type),
			DescriptorCount: b.Count,
			StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit | vk.ShaderStageFragmentBit |
				vk.ShaderStageComputeBit),
		}
	}

	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(vkBindings)),
	}
	if len(vkBindings) > 0 {
		createInfo.PBindings = &vkBindings[0]
	}

	var handle vk.DescriptorSetLayout
	result := vk.CreateDescriptorSetLayout(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	return &DescriptorSetLayout{handle: handle, device: d, bindings: bindings}, hal.StatusSuccess
}
