package gal

import "github.com/ashura-engine/gal/hal"

// Surface is an opaque, platform-provided presentation target. The GAL
// never creates a Surface on its own initiative (§6); a window-system
// module hands one in through Instance.CreateSurface and owns calling
// Destroy, typically after every Swapchain built on it is gone.
type Surface struct {
	hal hal.Surface
}

// IsZero reports whether s is the absent surface.
func (s Surface) IsZero() bool { return s.hal == nil }

// Handle returns the backend-native handle for diagnostics only.
func (s Surface) Handle() uintptr {
	if s.hal == nil {
		return 0
	}
	return s.hal.Handle()
}

// destroyer is implemented by the Vulkan backend's concrete Surface.
// Destroy is absent from hal.Surface itself since the interface is also
// used as a bare lookup key before a surface exists.
type destroyer interface {
	Destroy()
}

// Destroy releases the underlying platform surface. Destroy every
// Swapchain built on s first.
func (s Surface) Destroy() {
	if d, ok := s.hal.(destroyer); ok {
		d.Destroy()
	}
}
