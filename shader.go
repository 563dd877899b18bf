package gal

// Shader wraps a backend shader module created from a pre-compiled
// SPIR-V blob. The GAL never compiles or translates shader source
// (§1 Out of scope: "shader compilation driver").
type Shader struct {
	device *Device
	h      ShaderHandle
}

func (s Shader) IsZero() bool { return s.h.IsZero() }

func (s Shader) Ref() Shader {
	if s.device != nil {
		s.device.shaders.Ref(s.h)
	}
	return s
}

func (s Shader) Release() {
	if s.device != nil {
		releaseHandle(s.device, s.device.shaders, s.h)
	}
}
