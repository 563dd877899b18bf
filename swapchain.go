package gal

import "github.com/ashura-engine/gal/hal"

// SwapchainDescriptor is the create-info for Device.CreateSwapchain and
// the input to Swapchain.Recreate (§4.6). Surface is a gal Surface rather
// than the raw hal.Surface the underlying descriptor needs.
type SwapchainDescriptor struct {
	Label              string
	Surface            Surface
	PreferredExtent    [2]uint32
	PreferredBuffering uint32
	Usage              ImageUsage
	Format             Format
	ColorSpace         ColorSpace
	PresentMode        PresentMode
	CompositeAlpha     CompositeAlpha
}

func (d SwapchainDescriptor) toHAL() hal.SwapchainDescriptor {
	return hal.SwapchainDescriptor{
		Label:              d.Label,
		Surface:            d.Surface.hal,
		PreferredExtent:    d.PreferredExtent,
		PreferredBuffering: d.PreferredBuffering,
		Usage:              d.Usage,
		Format:             d.Format,
		ColorSpace:         d.ColorSpace,
		PresentMode:        d.PresentMode,
		CompositeAlpha:     d.CompositeAlpha,
	}
}

// Swapchain owns the present-able image array and tracks the generation
// counter that is ground truth for image identity across recreations
// (§3 "Swapchain").
type Swapchain struct {
	device *Device
	h      SwapchainHandle

	// images caches the current generation's swapchain-owned Images,
	// wrapped once per Recreate/CreateSwapchain rather than re-inserted
	// into the device's image arena on every Images() call.
	images []Image
}

func (s *Swapchain) IsZero() bool { return s == nil || s.h.IsZero() }

func (s *Swapchain) get() (hal.Swapchain, bool) {
	v, ok := s.device.swapchains.Get(s.h)
	if !ok {
		return nil, false
	}
	return *v, true
}

// Release decrements s's refcount.
func (s *Swapchain) Release() {
	if s.device != nil {
		releaseHandle(s.device, s.device.swapchains, s.h)
	}
}

func (s *Swapchain) IsValid() bool {
	v, ok := s.get()
	return ok && v.IsValid()
}

func (s *Swapchain) IsOptimal() bool {
	v, ok := s.get()
	return ok && v.IsOptimal()
}

func (s *Swapchain) CurrentExtent() (width, height uint32) {
	v, ok := s.get()
	if !ok {
		return 0, 0
	}
	return v.CurrentExtent()
}

// Generation is the ground truth for image identity across recreations;
// callers must discard cached per-image state (framebuffers, descriptor
// writes) keyed on an older generation (§3).
func (s *Swapchain) Generation() uint64 {
	v, ok := s.get()
	if !ok {
		return 0
	}
	return v.Generation()
}

// Images returns the current generation's swapchain-owned images, as
// wrapped gal Images sharing s's device.
func (s *Swapchain) Images() []Image { return s.images }

func (s *Swapchain) CurrentImageIndex() uint32 {
	v, ok := s.get()
	if !ok {
		return 0
	}
	return v.CurrentImageIndex()
}

// AcquireNextImage signals acquireSem once the returned image index is
// ready to be rendered into. A StatusOutOfDate result invalidates s; the
// caller must Recreate before the next begin_frame (§4.6). Runs on the
// device's render thread.
func (s *Swapchain) AcquireNextImage(acquireSem Semaphore, fence Fence) (uint32, Status) {
	v, ok := s.get()
	if !ok {
		return 0, hal.StatusUnknown
	}
	var sem hal.Semaphore
	if !acquireSem.IsZero() {
		sv, ok := s.device.semaphores.Get(acquireSem.h)
		if !ok {
			return 0, hal.StatusUnknown
		}
		sem = *sv
	}
	var f hal.Fence
	if !fence.IsZero() {
		fv, ok := s.device.fences.Get(fence.h)
		if !ok {
			return 0, hal.StatusUnknown
		}
		f = *fv
	}
	type result struct {
		idx    uint32
		status Status
	}
	r := s.device.renderLoop.RunOnRenderThread(func() any {
		idx, status := v.AcquireNextImage(sem, f)
		return result{idx, status}
	}).(result)
	return r.idx, r.status
}

// wrapImages rebuilds s.images from the backend's current Images(). Each
// is inserted into the device's image arena like any other Image; their
// Destroy is a no-op for the swapchain-owned case (hal/vulkan), so a
// stray Release from application code cannot free backend memory the
// swapchain still owns.
func (s *Swapchain) wrapImages() {
	v, ok := s.get()
	if !ok {
		s.images = nil
		return
	}
	raw := v.Images()
	s.images = make([]Image, len(raw))
	for i, img := range raw {
		s.images[i] = Image{device: s.device, h: s.device.images.Insert(img)}
	}
}

// Recreate queries the surface's current capabilities and rebuilds the
// swapchain in place, bumping Generation on success (§4.6).
func (s *Swapchain) Recreate(desc SwapchainDescriptor) Status {
	v, ok := s.get()
	if !ok {
		return hal.StatusUnknown
	}
	status := v.Recreate(desc.toHAL())
	if status.OK() {
		s.wrapImages()
	}
	return status
}

// CreateSwapchain creates a swapchain presenting to desc.Surface (§4.6).
func (d *Device) CreateSwapchain(desc SwapchainDescriptor) (*Swapchain, Status) {
	sc, status := d.hal.CreateSwapchain(desc.toHAL())
	if !status.OK() {
		return nil, status
	}
	s := &Swapchain{device: d, h: d.swapchains.Insert(sc)}
	s.wrapImages()
	return s, status
}
