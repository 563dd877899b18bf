package gal

import "github.com/ashura-engine/gal/hal"

// Adapter is an enumerated physical device, the unit device-selection
// preference matches against (§4.1).
type Adapter struct {
	hal hal.Adapter
}

// Info returns the adapter's name, type and vendor/device IDs.
func (a Adapter) Info() AdapterInfo { return a.hal.Info() }

// SupportsPresent reports whether a can present to surface.
func (a Adapter) SupportsPresent(surface Surface) bool { return a.hal.SupportsPresent(surface.hal) }
