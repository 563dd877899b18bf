package gal

import "github.com/ashura-engine/gal/hal"

// Status is the closed error taxonomy (§7) every factory and query
// returns, re-exported so callers never need to import hal directly.
type Status = hal.Status

const (
	StatusSuccess               = hal.StatusSuccess
	StatusOutOfHostMemory       = hal.StatusOutOfHostMemory
	StatusOutOfDeviceMemory     = hal.StatusOutOfDeviceMemory
	StatusDeviceLost            = hal.StatusDeviceLost
	StatusSurfaceLost           = hal.StatusSurfaceLost
	StatusOutOfDate             = hal.StatusOutOfDate
	StatusSuboptimalSwapchain   = hal.StatusSuboptimalSwapchain
	StatusInitializationFailed  = hal.StatusInitializationFailed
	StatusLayerNotPresent       = hal.StatusLayerNotPresent
	StatusExtensionNotPresent   = hal.StatusExtensionNotPresent
	StatusFeatureNotPresent     = hal.StatusFeatureNotPresent
	StatusFormatNotSupported    = hal.StatusFormatNotSupported
	StatusFragmentedPool        = hal.StatusFragmentedPool
	StatusOutOfPoolMemory       = hal.StatusOutOfPoolMemory
	StatusUnknown               = hal.StatusUnknown
)
