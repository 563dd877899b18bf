package types

// BufferUsage describes the ways a buffer may be bound. Values match
// VkBufferUsageFlagBits.
type BufferUsage uint32

const (
	BufferUsageTransferSrc      BufferUsage = 0x1
	BufferUsageTransferDst      BufferUsage = 0x2
	BufferUsageUniformTexel     BufferUsage = 0x4
	BufferUsageStorageTexel     BufferUsage = 0x8
	BufferUsageUniformBuffer    BufferUsage = 0x10
	BufferUsageStorageBuffer    BufferUsage = 0x20
	BufferUsageIndexBuffer      BufferUsage = 0x40
	BufferUsageVertexBuffer     BufferUsage = 0x80
	BufferUsageIndirectBuffer   BufferUsage = 0x100
)

// Contains reports whether all bits of other are set in u.
func (u BufferUsage) Contains(other BufferUsage) bool { return u&other == other }

// ImageUsage describes the ways an image may be bound. Values match
// VkImageUsageFlagBits.
type ImageUsage uint32

const (
	ImageUsageTransferSrc            ImageUsage = 0x1
	ImageUsageTransferDst            ImageUsage = 0x2
	ImageUsageSampled                ImageUsage = 0x4
	ImageUsageStorage                ImageUsage = 0x8
	ImageUsageColorAttachment        ImageUsage = 0x10
	ImageUsageDepthStencilAttachment ImageUsage = 0x20
	ImageUsageTransientAttachment    ImageUsage = 0x40
	ImageUsageInputAttachment        ImageUsage = 0x80
)

// Contains reports whether all bits of other are set in u.
func (u ImageUsage) Contains(other ImageUsage) bool { return u&other == other }

// MemoryProperties describes the properties of a memory heap/allocation.
// Values match VkMemoryPropertyFlagBits.
type MemoryProperties uint32

const (
	MemoryPropertyDeviceLocal     MemoryProperties = 0x1
	MemoryPropertyHostVisible     MemoryProperties = 0x2
	MemoryPropertyHostCoherent    MemoryProperties = 0x4
	MemoryPropertyHostCached      MemoryProperties = 0x8
	MemoryPropertyLazilyAllocated MemoryProperties = 0x10
)

// Contains reports whether all bits of other are set in m.
func (m MemoryProperties) Contains(other MemoryProperties) bool { return m&other == other }

// IsHostMapped reports whether any of the host-visibility bits are set,
// meaning a buffer created with this memory must carry a live host map per
// the Buffer invariant in §3.
func (m MemoryProperties) IsHostMapped() bool {
	return m.Contains(MemoryPropertyHostVisible) || m.Contains(MemoryPropertyHostCoherent) || m.Contains(MemoryPropertyHostCached)
}

// DeviceType identifies the kind of physical device behind an adapter.
// Values match VkPhysicalDeviceType.
type DeviceType uint32

const (
	DeviceTypeOther         DeviceType = 0
	DeviceTypeIntegratedGPU DeviceType = 1
	DeviceTypeDiscreteGPU   DeviceType = 2
	DeviceTypeVirtualGPU    DeviceType = 3
	DeviceTypeCPU           DeviceType = 4
)
