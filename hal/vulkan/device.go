// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/memory"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

// setObjectName labels a Vulkan object for validation/RenderDoc captures.
// No-op when VK_EXT_debug_utils is not available (§3 "Label").
func (d *Device) setObjectName(objectType vk.ObjectType, handle uint64, name string) {
	if name == "" || handle == 0 || !d.cmds.HasDebugUtils() {
		return
	}
	nameBytes := append([]byte(name), 0)
	nameInfo := vk.DebugUtilsObjectNameInfoEXT{
		SType:        vk.StructureTypeDebugUtilsObjectNameInfoExt,
		ObjectType:   objectType,
		ObjectHandle: handle,
		PObjectName:  &nameBytes[0],
	}
	_ = d.cmds.SetDebugUtilsObjectNameEXT(d.handle, &nameInfo)
	runtime.KeepAlive(nameBytes)
}

// Device implements hal.Device for Vulkan.
type Device struct {
	handle         vk.Device
	physicalDevice vk.PhysicalDevice
	instance       *Instance
	graphicsFamily uint32
	allocator      *memory.GpuAllocator
	cmds           *vk.Commands
	commandPool    vk.CommandPool // primary pool encoders allocate from
	queue          *Queue
}

// initAllocator builds the device's memory allocator from the physical
// device's memory properties and arms vk's package-level allocation
// wrappers (memory.go) to target this device (§4.2 "exclusive owner of...
// the device allocator").
func (d *Device) initAllocator() error {
	var vkProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(&d.instance.cmds, d.physicalDevice, &vkProps)

	props := memory.DeviceMemoryProperties{
		MemoryTypes: make([]memory.MemoryType, vkProps.MemoryTypeCount),
		MemoryHeaps: make([]memory.MemoryHeap, vkProps.MemoryHeapCount),
	}
	for i := uint32(0); i < vkProps.MemoryTypeCount; i++ {
		props.MemoryTypes[i] = memory.MemoryType{
			PropertyFlags: vkProps.MemoryTypes[i].PropertyFlags,
			HeapIndex:     vkProps.MemoryTypes[i].HeapIndex,
		}
	}
	for i := uint32(0); i < vkProps.MemoryHeapCount; i++ {
		props.MemoryHeaps[i] = memory.MemoryHeap{
			Size:  uint64(vkProps.MemoryHeaps[i].Size),
			Flags: vkProps.MemoryHeaps[i].Flags,
		}
	}

	allocator, err := memory.NewGpuAllocator(d.handle, props, memory.DefaultConfig())
	if err != nil {
		return fmt.Errorf("vulkan: create memory allocator: %w", err)
	}
	d.allocator = allocator
	vk.SetDeviceCommands(d.cmds)
	return nil
}

// initCommandPool lazily creates the primary command pool command encoders
// allocate their command buffers from.
func (d *Device) initCommandPool() hal.Status {
	if d.commandPool != 0 {
		return hal.StatusSuccess
	}
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.graphicsFamily,
	}
	var pool vk.CommandPool
	result := vkCreateCommandPool(d.cmds, d.handle, &createInfo, nil, &pool)
	if result != vk.Success {
		return statusFromResult(result)
	}
	d.commandPool = pool
	return hal.StatusSuccess
}

// Queue implements hal.Device.Queue.
func (d *Device) Queue() hal.Queue { return d.queue }

// memoryUsageForBuffer derives the memory.UsageFlags matching a buffer's
// declared host-access intent (§3 "Buffer" host-visible invariant).
func memoryUsageForBuffer(props types.MemoryProperties) memory.UsageFlags {
	if props&(types.MemoryPropertyHostVisible) == 0 {
		return memory.UsageFastDeviceAccess
	}
	usage := memory.UsageHostAccess
	if props&types.MemoryPropertyHostCached != 0 {
		usage |= memory.UsageDownload
	} else {
		usage |= memory.UsageUpload
	}
	return usage
}

// CreateBuffer implements hal.Device.CreateBuffer.
func (d *Device) CreateBuffer(desc hal.BufferDescriptor) (hal.Buffer, hal.Status) {
	if desc.Size == 0 {
		return nil, hal.StatusUnknown
	}

	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       bufferUsageToVk(desc.Usage),
		SharingMode: vk.SharingModeExclusive,
	}

	var handle vk.Buffer
	result := vk.CreateBuffer(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(d.handle, handle, &memReqs)

	block, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memoryUsageForBuffer(desc.MemoryProperties),
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyBuffer(d.handle, handle, nil)
		return nil, hal.StatusOutOfDeviceMemory
	}

	if result = vk.BindBufferMemory(d.handle, handle, block.Memory, block.Offset); result != vk.Success {
		_ = d.allocator.Free(block)
		vk.DestroyBuffer(d.handle, handle, nil)
		return nil, statusFromResult(result)
	}

	var mapped []byte
	if desc.MemoryProperties&types.MemoryPropertyHostVisible != 0 {
		var ptr uintptr
		if result = vk.MapMemory(d.handle, block.Memory, block.Offset, block.Size, 0, &ptr); result == vk.Success {
			block.MappedPtr = ptr
			mapped = sliceFromMappedMemory(ptr, desc.Size)
		}
	}

	b := &Buffer{handle: handle, device: d, block: block, size: desc.Size, mapped: mapped, usage: desc.Usage}
	d.setObjectName(vk.ObjectTypeBuffer, uint64(handle), desc.Label)
	return b, hal.StatusSuccess
}

// CreateImage implements hal.Device.CreateImage.
func (d *Device) CreateImage(desc hal.ImageDescriptor) (hal.Image, hal.Status) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, hal.StatusUnknown
	}
	depth := desc.Depth
	if depth == 0 {
		depth = 1
	}
	mipLevels := desc.MipLevels
	if mipLevels == 0 {
		mipLevels = 1
	}
	arrayLayers := desc.ArrayLayers
	if arrayLayers == 0 {
		arrayLayers = 1
	}
	sampleCount := desc.SampleCount
	if sampleCount == 0 {
		sampleCount = types.SampleCount1
	}

	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		ImageType: imageTypeToVk(desc.Type),
		Format:    formatToVk(desc.Format),
		Extent: vk.Extent3D{
			Width:  desc.Width,
			Height: desc.Height,
			Depth:  depth,
		},
		MipLevels:     mipLevels,
		ArrayLayers:   arrayLayers,
		Samples:       sampleCountToVk(sampleCount),
		Tiling:        vk.ImageTilingOptimal,
		Usage:         imageUsageToVk(desc.Usage),
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var handle vk.Image
	result := vk.CreateImage(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	var memReqs vk.MemoryRequirements
	vk.GetImageMemoryRequirements(d.handle, handle, &memReqs)

	block, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyImage(d.handle, handle, nil)
		return nil, hal.StatusOutOfDeviceMemory
	}

	if result = vk.BindImageMemory(d.handle, handle, block.Memory, block.Offset); result != vk.Success {
		_ = d.allocator.Free(block)
		vk.DestroyImage(d.handle, handle, nil)
		return nil, statusFromResult(result)
	}

	img := &Image{
		handle:      handle,
		device:      d,
		block:       block,
		width:       desc.Width,
		height:      desc.Height,
		depth:       depth,
		mipLevels:   mipLevels,
		arrayLayers: arrayLayers,
		sampleCount: sampleCount,
		format:      desc.Format,
		usage:       desc.Usage,
	}
	d.setObjectName(vk.ObjectTypeImage, uint64(handle), desc.Label)
	return img, hal.StatusSuccess
}

// CreateBufferView implements hal.Device.CreateBufferView.
func (d *Device) CreateBufferView(buf hal.Buffer, desc hal.BufferViewDescriptor) (hal.BufferView, hal.Status) {
	vb, ok := buf.(*Buffer)
	if !ok {
		return nil, hal.StatusUnknown
	}
	createInfo := vk.BufferViewCreateInfo{
		SType:  vk.StructureTypeBufferViewCreateInfo,
		Buffer: vb.handle,
		Format: formatToVk(desc.Format),
		Offset: vk.DeviceSize(desc.Offset),
		Range:  vk.DeviceSize(desc.Range),
	}
	var handle vk.BufferView
	result := vk.CreateBufferView(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}
	return &BufferView{handle: handle, device: d, usage: vb.usage}, hal.StatusSuccess
}

// CreateImageView implements hal.Device.CreateImageView.
func (d *Device) CreateImageView(img hal.Image, desc hal.ImageViewDescriptor) (hal.ImageView, hal.Status) {
	vi, ok := img.(*Image)
	if !ok {
		return nil, hal.StatusUnknown
	}
	mipLevelCount := desc.MipLevelCount
	if mipLevelCount == 0 {
		mipLevelCount = vk.RemainingMipLevels
	}
	layerCount := desc.ArrayLayerCount
	if layerCount == 0 {
		layerCount = vk.RemainingArrayLayers
	}

	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    vi.handle,
		ViewType: imageViewTypeFor(desc.ViewType),
		Format:   formatToVk(desc.Format),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     imageAspectsToVk(desc.Aspects),
			BaseMipLevel:   desc.BaseMipLevel,
			LevelCount:     mipLevelCount,
			BaseArrayLayer: desc.BaseArrayLayer,
			LayerCount:     layerCount,
		},
	}
	var handle vk.ImageView
	result := vk.CreateImageView(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}
	return &ImageView{handle: handle, device: d, usage: vi.usage}, hal.StatusSuccess
}

func imageViewTypeFor(t types.ImageType) vk.ImageViewType {
	switch t {
	case types.ImageType1D:
		return vk.ImageViewType1d
	case types.ImageType3D:
		return vk.ImageViewType3d
	default:
		return vk.ImageViewType2d
	}
}

// CreateSampler implements hal.Device.CreateSampler.
func (d *Device) CreateSampler(desc hal.SamplerDescriptor) (hal.Sampler, hal.Status) {
	createInfo := vk.SamplerCreateInfo{
		SType:                   vk.StructureTypeSamplerCreateInfo,
		MagFilter:               filterToVk(desc.MagFilter),
		MinFilter:               filterToVk(desc.MinFilter),
		MipmapMode:              mipmapModeToVk(desc.MipmapMode),
		AddressModeU:            addressModeToVk(desc.AddressModeU),
		AddressModeV:            addressModeToVk(desc.AddressModeV),
		AddressModeW:            addressModeToVk(desc.AddressModeW),
		MipLodBias:              desc.MipLodBias,
		AnisotropyEnable:        boolToVk(desc.AnisotropyEnable),
		MaxAnisotropy:           desc.MaxAnisotropy,
		CompareEnable:           boolToVk(desc.CompareEnable),
		CompareOp:               compareOpToVk(desc.CompareOp),
		MinLod:                  desc.MinLod,
		MaxLod:                  desc.MaxLod,
		BorderColor:             borderColorToVk(desc.BorderColor),
		UnnormalizedCoordinates: vk.False,
	}
	var handle vk.Sampler
	result := vk.CreateSampler(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}
	return &Sampler{handle: handle, device: d}, hal.StatusSuccess
}

// CreateShader implements hal.Device.CreateShader.
func (d *Device) CreateShader(desc hal.ShaderDescriptor) (hal.Shader, hal.Status) {
	if len(desc.Code) == 0 {
		return nil, hal.StatusUnknown
	}
	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(desc.Code)) * 4,
		PCode:    &desc.Code[0],
	}
	var handle vk.ShaderModule
	result := vk.CreateShaderModule(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}
	s := &Shader{handle: handle, device: d}
	d.setObjectName(vk.ObjectTypeUnknown, uint64(handle), desc.Label)
	return s, hal.StatusSuccess
}

// CreateSemaphore implements hal.Device.CreateSemaphore.
func (d *Device) CreateSemaphore(label string) (hal.Semaphore, hal.Status) {
	createInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	var handle vk.Semaphore
	result := vk.CreateSemaphore(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}
	s := &Semaphore{handle: handle, device: d}
	d.setObjectName(vk.ObjectTypeUnknown, uint64(handle), label)
	return s, hal.StatusSuccess
}

// CreateCommandEncoder implements hal.Device.CreateCommandEncoder.
func (d *Device) CreateCommandEncoder(label string) (hal.CommandEncoder, hal.Status) {
	if status := d.initCommandPool(); !status.OK() {
		return nil, status
	}

	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.commandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}
	var cmdBuffer vk.CommandBuffer
	result := vkAllocateCommandBuffers(d.cmds, d.handle, &allocInfo, &cmdBuffer)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	e := &CommandEncoder{
		device:    d,
		cmdBuffer: cmdBuffer,
		label:     label,
	}
	return e, hal.StatusSuccess
}

// WaitIdle implements hal.Device.WaitIdle.
func (d *Device) WaitIdle() hal.Status {
	return statusFromResult(vk.DeviceWaitIdle(d.handle))
}

// Destroy implements hal.Resource via hal.Device.
func (d *Device) Destroy() {
	if d.commandPool != 0 {
		vkDestroyCommandPool(d.cmds, d.handle, d.commandPool, nil)
		d.commandPool = 0
	}
	if d.allocator != nil {
		d.allocator.Destroy()
		d.allocator = nil
	}
	if d.handle != 0 {
		vkDestroyDevice(d.handle, nil)
		d.handle = 0
	}
}

// --- Vulkan function wrappers (no typed vk.Commands method or package-level
// helper exists for these four entry points) ---

func vkDestroyDevice(device vk.Device, allocator unsafe.Pointer) {
	proc := vk.GetInstanceProcAddr(0, "vkDestroyDevice")
	if proc == nil {
		return
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(uintptr(proc),
		uintptr(device),
		uintptr(allocator))
}

func vkCreateCommandPool(cmds *vk.Commands, device vk.Device, createInfo *vk.CommandPoolCreateInfo, allocator unsafe.Pointer, pool *vk.CommandPool) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateCommandPool(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(pool)))
	return vk.Result(ret)
}

func vkDestroyCommandPool(cmds *vk.Commands, device vk.Device, pool vk.CommandPool, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyCommandPool(),
		uintptr(device),
		uintptr(pool),
		uintptr(allocator))
}

func vkAllocateCommandBuffers(cmds *vk.Commands, device vk.Device, allocInfo *vk.CommandBufferAllocateInfo, cmdBuffers *vk.CommandBuffer) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.AllocateCommandBuffers(),
		uintptr(device),
		uintptr(unsafe.Pointer(allocInfo)),
		uintptr(unsafe.Pointer(cmdBuffers)))
	return vk.Result(ret)
}
