// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

// Backend implements hal.Backend for Vulkan.
type Backend struct{}

// CreateInstance implements hal.Backend.
func (Backend) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, hal.Status) {
	if err := vk.Init(); err != nil {
		hal.Logger().Error("vulkan: failed to load loader", "error", err)
		return nil, hal.StatusInitializationFailed
	}

	var cmds vk.Commands
	if err := cmds.LoadGlobal(); err != nil {
		hal.Logger().Error("vulkan: failed to load global commands", "error", err)
		return nil, hal.StatusInitializationFailed
	}

	appName := desc.AppName
	if appName == "" {
		appName = "gogpu"
	}
	appNameBytes := append([]byte(appName), 0)
	engineName := []byte("ashura-engine/gal\x00")

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   &appNameBytes[0],
		ApplicationVersion: vkMakeVersion(1, 0, 0),
		PEngineName:        &engineName[0],
		EngineVersion:      vkMakeVersion(0, 1, 0),
		ApiVersion:         vkMakeVersion(1, 2, 0),
	}

	extensions := []string{"VK_KHR_surface\x00", platformSurfaceExtension()}
	wantDebugUtils := desc.EnableValidation || desc.EnableDebugMarkers
	if wantDebugUtils {
		extensions = append(extensions, "VK_EXT_debug_utils\x00")
	}

	var layers []string
	if desc.EnableValidation {
		layers = append(layers, "VK_LAYER_KHRONOS_validation\x00")
	}

	extensionPtrs := make([]uintptr, len(extensions))
	for i, ext := range extensions {
		extensionPtrs[i] = uintptr(unsafe.Pointer(unsafe.StringData(ext)))
	}
	layerPtrs := make([]uintptr, len(layers))
	for i, layer := range layers {
		layerPtrs[i] = uintptr(unsafe.Pointer(unsafe.StringData(layer)))
	}

	createInfo := vk.InstanceCreateInfo{
		SType:                 vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:      &appInfo,
		EnabledExtensionCount: uint32(len(extensionPtrs)),
		EnabledLayerCount:     uint32(len(layerPtrs)),
	}
	if len(extensionPtrs) > 0 {
		createInfo.PpEnabledExtensionNames = &extensionPtrs[0]
	}
	if len(layerPtrs) > 0 {
		createInfo.PpEnabledLayerNames = &layerPtrs[0]
	}

	var handle vk.Instance
	result := vkCreateInstance(&cmds, &createInfo, nil, &handle)
	runtime.KeepAlive(appNameBytes)
	runtime.KeepAlive(engineName)
	runtime.KeepAlive(extensions)
	runtime.KeepAlive(layers)
	runtime.KeepAlive(extensionPtrs)
	runtime.KeepAlive(layerPtrs)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	cmds.LoadInstance(handle)

	instance := &Instance{handle: handle, cmds: cmds}
	if wantDebugUtils {
		instance.messenger = createDebugMessenger(instance)
	}
	return instance, hal.StatusSuccess
}

// Instance implements hal.Instance for Vulkan. CreateSurface is declared
// per-platform (api_windows.go, api_linux.go, api_darwin.go) since each
// needs a different native window handle shape.
type Instance struct {
	handle    vk.Instance
	cmds      vk.Commands
	messenger vk.DebugUtilsMessengerEXT
}

// EnumerateAdapters implements hal.Instance.
func (i *Instance) EnumerateAdapters(surfaceHint hal.Surface) []hal.Adapter {
	adapters := i.enumeratePhysicalDevices()
	result := make([]hal.Adapter, 0, len(adapters))
	for _, a := range adapters {
		if surfaceHint != nil && !a.SupportsPresent(surfaceHint) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// OpenDevice implements hal.Instance. It picks the first adapter matching
// preference (in order; no preference falls back to enumeration order)
// that can present to every surface in mustPresentTo, then creates a
// logical device with a single combined graphics/present queue.
func (i *Instance) OpenDevice(preference []types.DeviceType, mustPresentTo []hal.Surface) (hal.Device, hal.Status) {
	adapter := pickAdapter(i.enumeratePhysicalDevices(), preference, mustPresentTo)
	if adapter == nil {
		return nil, hal.StatusFeatureNotPresent
	}

	var presentSurface vk.SurfaceKHR
	if len(mustPresentTo) > 0 {
		if s, ok := mustPresentTo[0].(*Surface); ok {
			presentSurface = s.handle
		}
	}
	family, ok := adapter.graphicsPresentFamily(presentSurface)
	if !ok {
		return nil, hal.StatusInitializationFailed
	}

	priority := float32(1.0)
	queueInfo := vk.DeviceQueueCreateInfo{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: family,
		QueueCount:       1,
		PQueuePriorities: &priority,
	}

	extensions := []string{"VK_KHR_swapchain\x00"}
	extPtrs := make([]uintptr, len(extensions))
	for idx, ext := range extensions {
		extPtrs[idx] = uintptr(unsafe.Pointer(unsafe.StringData(ext)))
	}

	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                 vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:  1,
		PQueueCreateInfos:     &queueInfo,
		EnabledExtensionCount: uint32(len(extPtrs)),
		PEnabledFeatures:      &adapter.features,
	}
	if len(extPtrs) > 0 {
		deviceCreateInfo.PpEnabledExtensionNames = &extPtrs[0]
	}

	var handle vk.Device
	result := vkCreateDevice(i, adapter.physicalDevice, &deviceCreateInfo, nil, &handle)
	runtime.KeepAlive(extensions)
	runtime.KeepAlive(extPtrs)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	cmds := vk.NewCommands()
	cmds.LoadInstance(i.handle)
	if err := cmds.LoadDevice(handle); err != nil {
		vkDestroyDevice(handle, nil)
		return nil, hal.StatusInitializationFailed
	}

	d := &Device{
		handle:         handle,
		physicalDevice: adapter.physicalDevice,
		instance:       i,
		graphicsFamily: family,
		cmds:           cmds,
	}
	if err := d.initAllocator(); err != nil {
		vkDestroyDevice(handle, nil)
		return nil, hal.StatusInitializationFailed
	}

	var queueHandle vk.Queue
	vkGetDeviceQueue(cmds, handle, family, 0, &queueHandle)
	d.queue = &Queue{handle: queueHandle, device: d, familyIndex: family}

	return d, hal.StatusSuccess
}

// pickAdapter returns the first adapter matching a preferred device type (in
// preference order) that can present to every surface in mustPresentTo;
// falling back to enumeration order when preference is empty or exhausted.
func pickAdapter(adapters []*Adapter, preference []types.DeviceType, mustPresentTo []hal.Surface) *Adapter {
	presents := func(a *Adapter) bool {
		for _, s := range mustPresentTo {
			if !a.SupportsPresent(s) {
				return false
			}
		}
		return true
	}
	for _, want := range preference {
		for _, a := range adapters {
			if deviceTypeFromVk(a.properties.DeviceType) == want && presents(a) {
				return a
			}
		}
	}
	for _, a := range adapters {
		if presents(a) {
			return a
		}
	}
	return nil
}

// enumeratePhysicalDevices lists every VkPhysicalDevice as an *Adapter,
// unfiltered. Both EnumerateAdapters and OpenDevice build on this.
func (i *Instance) enumeratePhysicalDevices() []*Adapter {
	var count uint32
	vkEnumeratePhysicalDevices(i, &count, nil)
	if count == 0 {
		return nil
	}
	devices := make([]vk.PhysicalDevice, count)
	vkEnumeratePhysicalDevices(i, &count, &devices[0])

	adapters := make([]*Adapter, 0, count)
	for _, device := range devices {
		var props vk.PhysicalDeviceProperties
		vkGetPhysicalDeviceProperties(i, device, &props)
		var features vk.PhysicalDeviceFeatures
		vkGetPhysicalDeviceFeatures(i, device, &features)
		adapters = append(adapters, &Adapter{
			instance:       i,
			physicalDevice: device,
			properties:     props,
			features:       features,
		})
	}
	return adapters
}

// Destroy implements hal.Instance.
func (i *Instance) Destroy() {
	if i.messenger != 0 {
		destroyDebugMessenger(i, i.messenger)
		i.messenger = 0
	}
	if i.handle != 0 {
		vkDestroyInstance(i, i.handle, nil)
		i.handle = 0
	}
}

// Surface implements hal.Surface for Vulkan. Its only state is the
// VkSurfaceKHR handle; presentation capabilities and the owning swapchain
// live on Swapchain, queried fresh on every Recreate.
type Surface struct {
	handle   vk.SurfaceKHR
	instance *Instance
}

// Handle implements hal.Surface.
func (s *Surface) Handle() uintptr { return uintptr(s.handle) }

// Destroy releases the underlying VkSurfaceKHR. Callers must destroy any
// Swapchain built on this surface first.
func (s *Surface) Destroy() {
	if s.handle != 0 && s.instance != nil {
		s.instance.cmds.DestroySurfaceKHR(s.instance.handle, s.handle, nil)
		s.handle = 0
	}
}

// Helper functions

func vkMakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}

func vkVersionMajor(version uint32) uint32 { return version >> 22 }
func vkVersionMinor(version uint32) uint32 { return (version >> 12) & 0x3FF }
func vkVersionPatch(version uint32) uint32 { return version & 0xFFF }

func cStringToGo(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func vendorIDToName(id uint32) string {
	switch id {
	case 0x1002:
		return "AMD"
	case 0x10DE:
		return "NVIDIA"
	case 0x8086:
		return "Intel"
	case 0x13B5:
		return "ARM"
	case 0x5143:
		return "Qualcomm"
	case 0x1010:
		return "ImgTec"
	default:
		return fmt.Sprintf("0x%04X", id)
	}
}

// Vulkan function wrappers using syscall.SyscallN

func vkCreateInstance(cmds *vk.Commands, createInfo *vk.InstanceCreateInfo, allocator unsafe.Pointer, instance *vk.Instance) vk.Result {
	r, _, _ := syscall.SyscallN(cmds.CreateInstance(),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(instance)))
	return vk.Result(r)
}

func vkDestroyInstance(i *Instance, instance vk.Instance, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(i.cmds.DestroyInstance(),
		uintptr(instance),
		uintptr(allocator))
}

func vkEnumeratePhysicalDevices(i *Instance, count *uint32, devices *vk.PhysicalDevice) vk.Result {
	r, _, _ := syscall.SyscallN(i.cmds.EnumeratePhysicalDevices(),
		uintptr(i.handle),
		uintptr(unsafe.Pointer(count)),
		uintptr(unsafe.Pointer(devices)))
	return vk.Result(r)
}

func vkGetPhysicalDeviceProperties(i *Instance, device vk.PhysicalDevice, props *vk.PhysicalDeviceProperties) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(i.cmds.GetPhysicalDeviceProperties(),
		uintptr(device),
		uintptr(unsafe.Pointer(props)))
}

func vkGetPhysicalDeviceFeatures(i *Instance, device vk.PhysicalDevice, features *vk.PhysicalDeviceFeatures) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(i.cmds.GetPhysicalDeviceFeatures(),
		uintptr(device),
		uintptr(unsafe.Pointer(features)))
}

func vkCreateDevice(i *Instance, physicalDevice vk.PhysicalDevice, createInfo *vk.DeviceCreateInfo, allocator unsafe.Pointer, device *vk.Device) vk.Result {
	r, _, _ := syscall.SyscallN(i.cmds.CreateDevice(),
		uintptr(physicalDevice),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(device)))
	return vk.Result(r)
}

func vkGetDeviceQueue(cmds *vk.Commands, device vk.Device, queueFamilyIndex, queueIndex uint32, queue *vk.Queue) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.GetDeviceQueue(),
		uintptr(device),
		uintptr(queueFamilyIndex),
		uintptr(queueIndex),
		uintptr(unsafe.Pointer(queue)))
}
