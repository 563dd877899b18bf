// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
)

// statusFromResult maps a VkResult onto the GAL's closed hal.Status
// taxonomy. Codes with no dedicated Status member (Timeout, driver-specific
// errors) collapse to hal.StatusUnknown rather than growing the taxonomy.
func statusFromResult(result vk.Result) hal.Status {
	switch result {
	case vk.Success, vk.NotReady, vk.EventSet, vk.EventReset, vk.Incomplete:
		return hal.StatusSuccess
	case vk.SuboptimalKhr:
		return hal.StatusSuboptimalSwapchain
	case vk.ErrorOutOfHostMemory:
		return hal.StatusOutOfHostMemory
	case vk.ErrorOutOfDeviceMemory:
		return hal.StatusOutOfDeviceMemory
	case vk.ErrorDeviceLost:
		return hal.StatusDeviceLost
	case vk.ErrorSurfaceLostKhr:
		return hal.StatusSurfaceLost
	case vk.ErrorOutOfDateKhr:
		return hal.StatusOutOfDate
	case vk.ErrorInitializationFailed:
		return hal.StatusInitializationFailed
	case vk.ErrorLayerNotPresent:
		return hal.StatusLayerNotPresent
	case vk.ErrorExtensionNotPresent:
		return hal.StatusExtensionNotPresent
	case vk.ErrorFeatureNotPresent:
		return hal.StatusFeatureNotPresent
	case vk.ErrorFormatNotSupported:
		return hal.StatusFormatNotSupported
	case vk.ErrorFragmentedPool:
		return hal.StatusFragmentedPool
	case vk.ErrorOutOfPoolMemory:
		return hal.StatusOutOfPoolMemory
	default:
		return hal.StatusUnknown
	}
}
