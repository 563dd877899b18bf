package gal

// Fence is a CPU-GPU synchronization primitive (§3 "FrameContext" slot
// fields).
type Fence struct {
	device *Device
	h      FenceHandle
}

func (f Fence) IsZero() bool { return f.h.IsZero() }

func (f Fence) Ref() Fence {
	if f.device != nil {
		f.device.fences.Ref(f.h)
	}
	return f
}

func (f Fence) Release() {
	if f.device != nil {
		releaseHandle(f.device, f.device.fences, f.h)
	}
}

// Semaphore is a GPU-GPU ordering primitive (acquire/submit semaphores in
// §3 "FrameContext").
type Semaphore struct {
	device *Device
	h      SemaphoreHandle
}

func (s Semaphore) IsZero() bool { return s.h.IsZero() }

func (s Semaphore) Ref() Semaphore {
	if s.device != nil {
		s.device.semaphores.Ref(s.h)
	}
	return s
}

func (s Semaphore) Release() {
	if s.device != nil {
		releaseHandle(s.device, s.device.semaphores, s.h)
	}
}
