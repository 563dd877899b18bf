// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"syscall"
	"unsafe"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
)

// Adapter implements hal.Adapter for Vulkan, wrapping one enumerated
// VkPhysicalDevice. It carries no open device state — logical device
// creation happens on Instance.OpenDevice, which re-derives the queue
// family an Adapter only probes here.
type Adapter struct {
	instance       *Instance
	physicalDevice vk.PhysicalDevice
	properties     vk.PhysicalDeviceProperties
	features       vk.PhysicalDeviceFeatures
}

// Info implements hal.Adapter.
func (a *Adapter) Info() hal.AdapterInfo {
	return hal.AdapterInfo{
		Name:       cStringToGo(a.properties.DeviceName[:]),
		DeviceType: deviceTypeFromVk(a.properties.DeviceType),
		VendorID:   a.properties.VendorID,
		DeviceID:   a.properties.DeviceID,
	}
}

// SupportsPresent implements hal.Adapter.
func (a *Adapter) SupportsPresent(surface hal.Surface) bool {
	s, ok := surface.(*Surface)
	if !ok || s == nil || s.handle == 0 {
		return false
	}
	_, ok = a.graphicsPresentFamily(s.handle)
	return ok
}

// graphicsPresentFamily finds the first queue family on this physical
// device that supports graphics and, when surface is non-zero,
// presentation to it. A single combined family is all the rest of the
// backend (Device.graphicsFamily, CommandEncoder) is built to use.
func (a *Adapter) graphicsPresentFamily(surface vk.SurfaceKHR) (uint32, bool) {
	var count uint32
	vkGetPhysicalDeviceQueueFamilyProperties(a.instance, a.physicalDevice, &count, nil)
	if count == 0 {
		return 0, false
	}
	families := make([]vk.QueueFamilyProperties, count)
	vkGetPhysicalDeviceQueueFamilyProperties(a.instance, a.physicalDevice, &count, &families[0])

	for i, family := range families {
		if family.QueueFlags&vk.QueueGraphicsBit == 0 {
			continue
		}
		if surface == 0 {
			return uint32(i), true
		}
		var supported vk.Bool32
		vk.GetPhysicalDeviceSurfaceSupportKHR(&a.instance.cmds, a.physicalDevice, uint32(i), surface, &supported)
		if supported == vk.True {
			return uint32(i), true
		}
	}
	return 0, false
}

func vkGetPhysicalDeviceQueueFamilyProperties(i *Instance, device vk.PhysicalDevice, count *uint32, props *vk.QueueFamilyProperties) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(i.cmds.GetPhysicalDeviceQueueFamilyProperties(),
		uintptr(device),
		uintptr(unsafe.Pointer(count)),
		uintptr(unsafe.Pointer(props)))
}
