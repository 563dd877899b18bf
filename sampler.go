package gal

// Sampler wraps a backend sampler object.
type Sampler struct {
	device *Device
	h      SamplerHandle
}

func (s Sampler) IsZero() bool { return s.h.IsZero() }

func (s Sampler) Ref() Sampler {
	if s.device != nil {
		s.device.samplers.Ref(s.h)
	}
	return s
}

func (s Sampler) Release() {
	if s.device != nil {
		releaseHandle(s.device, s.device.samplers, s.h)
	}
}
