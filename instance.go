package gal

import (
	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/internal/thread"
)

// surfaceCreator is implemented by the Vulkan backend's concrete Instance.
// CreateSurface takes a platform-specific (display, window) handle pair
// and is intentionally absent from hal.Instance — window-system modules
// reach it through gal.Instance.CreateSurface instead (§6).
type surfaceCreator interface {
	CreateSurface(display, window uintptr) (hal.Surface, error)
}

// Instance is the Vulkan driver entry point (§4.1). Surface creation here,
// and swapchain acquire/present on the devices it opens, are routed
// through renderLoop's dedicated OS thread, so those calls stay pinned to
// one thread whatever goroutine the caller is on. Other driver calls
// (adapter enumeration, device creation, queue submit) run on the
// caller's goroutine.
type Instance struct {
	hal        hal.Instance
	renderLoop *thread.RenderLoop
}

// CreateInstance creates a new driver instance through the registered
// backend (exactly one, Vulkan — §1 Non-goals).
func CreateInstance(desc InstanceDescriptor) (*Instance, Status) {
	backend := hal.GetBackend()
	if backend == nil {
		return nil, hal.StatusInitializationFailed
	}
	h, status := backend.CreateInstance(&desc)
	if !status.OK() {
		return nil, status
	}
	return &Instance{hal: h, renderLoop: thread.NewRenderLoop()}, status
}

// CreateSurface wraps a platform-native (display, window) handle pair as
// a Surface. displayHandle is unused on platforms with no separate
// display object (Windows, macOS). Runs on the instance's render thread.
func (i *Instance) CreateSurface(displayHandle, windowHandle uintptr) (Surface, error) {
	sc, ok := i.hal.(surfaceCreator)
	if !ok {
		return Surface{}, StatusInitializationFailed
	}
	type result struct {
		s   hal.Surface
		err error
	}
	r := i.renderLoop.RunOnRenderThread(func() any {
		s, err := sc.CreateSurface(displayHandle, windowHandle)
		return result{s, err}
	}).(result)
	if r.err != nil {
		return Surface{}, r.err
	}
	return Surface{hal: r.s}, nil
}

// EnumerateAdapters enumerates physical devices, optionally filtered to
// those that can present to surfaceHint (pass the zero Surface for no
// filter).
func (i *Instance) EnumerateAdapters(surfaceHint Surface) []Adapter {
	halAdapters := i.hal.EnumerateAdapters(surfaceHint.hal)
	out := make([]Adapter, len(halAdapters))
	for idx, a := range halAdapters {
		out[idx] = Adapter{hal: a}
	}
	return out
}

// OpenDevice selects the first adapter matching preference that can
// present to every surface in mustPresentTo, and opens a logical device
// with exactly one graphics+present queue (§4.1).
func (i *Instance) OpenDevice(preference []DeviceType, mustPresentTo []Surface) (*Device, Status) {
	halSurfaces := make([]hal.Surface, len(mustPresentTo))
	for idx, s := range mustPresentTo {
		halSurfaces[idx] = s.hal
	}
	d, status := i.hal.OpenDevice(preference, halSurfaces)
	if !status.OK() {
		return nil, status
	}
	return newDevice(d, i.renderLoop), status
}

// Destroy tears down the instance. Destroy every device and surface
// opened through it first.
func (i *Instance) Destroy() {
	i.renderLoop.Stop()
	i.hal.Destroy()
}
