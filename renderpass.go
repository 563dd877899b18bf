package gal

import "github.com/ashura-engine/gal/hal"

// RenderPass wraps a backend render pass and caches the attachment
// formats it was created against, for compatibility checks against a
// Framebuffer or a GraphicsPipeline (§4.2).
type RenderPass struct {
	device *Device
	h      RenderPassHandle
}

func (p RenderPass) IsZero() bool { return p.h.IsZero() }

func (p RenderPass) Ref() RenderPass {
	if p.device != nil {
		p.device.renderPasses.Ref(p.h)
	}
	return p
}

func (p RenderPass) Release() {
	if p.device != nil {
		releaseHandle(p.device, p.device.renderPasses, p.h)
	}
}

func (p RenderPass) ColorFormats() []Format {
	v, ok := p.device.renderPasses.Get(p.h)
	if !ok {
		return nil
	}
	return (*v).ColorFormats()
}

func (p RenderPass) DepthStencilFormat() (Format, bool) {
	v, ok := p.device.renderPasses.Get(p.h)
	if !ok {
		return 0, false
	}
	return (*v).DepthStencilFormat()
}

// CompatibleWithFramebuffer reports whether p's attachment formats match
// fb's, the compatibility rule a BeginRenderPass call must satisfy (§4.2).
func (p RenderPass) CompatibleWithFramebuffer(fb Framebuffer) bool {
	pColors, fbColors := p.ColorFormats(), fb.ColorFormats()
	if len(pColors) != len(fbColors) {
		return false
	}
	for i := range pColors {
		if pColors[i] != fbColors[i] {
			return false
		}
	}
	pDS, pHasDS := p.DepthStencilFormat()
	fbDS, fbHasDS := fb.DepthStencilFormat()
	return pHasDS == fbHasDS && (!pHasDS || pDS == fbDS)
}

func (d *Device) CreateRenderPass(desc RenderPassDescriptor) (RenderPass, Status) {
	p, status := d.hal.CreateRenderPass(desc)
	if !status.OK() {
		return RenderPass{}, status
	}
	return RenderPass{device: d, h: d.renderPasses.Insert(p)}, status
}

// Framebuffer wraps a backend framebuffer and caches the attachment
// formats it was created against.
type Framebuffer struct {
	device *Device
	h      FramebufferHandle
}

func (f Framebuffer) IsZero() bool { return f.h.IsZero() }

func (f Framebuffer) Ref() Framebuffer {
	if f.device != nil {
		f.device.framebuffers.Ref(f.h)
	}
	return f
}

func (f Framebuffer) Release() {
	if f.device != nil {
		releaseHandle(f.device, f.device.framebuffers, f.h)
	}
}

func (f Framebuffer) ColorFormats() []Format {
	v, ok := f.device.framebuffers.Get(f.h)
	if !ok {
		return nil
	}
	return (*v).ColorFormats()
}

func (f Framebuffer) DepthStencilFormat() (Format, bool) {
	v, ok := f.device.framebuffers.Get(f.h)
	if !ok {
		return 0, false
	}
	return (*v).DepthStencilFormat()
}

func (f Framebuffer) Extent() (width, height uint32) {
	v, ok := f.device.framebuffers.Get(f.h)
	if !ok {
		return 0, 0
	}
	return (*v).Extent()
}

// FramebufferDescriptor is the create-info for Device.CreateFramebuffer.
type FramebufferDescriptor struct {
	Label       string
	RenderPass  RenderPass
	Attachments []ImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}

func (d *Device) CreateFramebuffer(desc FramebufferDescriptor) (Framebuffer, Status) {
	pass, ok := d.renderPasses.Get(desc.RenderPass.h)
	if !ok {
		return Framebuffer{}, hal.StatusUnknown
	}
	attachments := make([]hal.ImageView, 0, len(desc.Attachments))
	for _, a := range desc.Attachments {
		v, ok := d.imageViews.Get(a.h)
		if !ok {
			return Framebuffer{}, hal.StatusUnknown
		}
		attachments = append(attachments, *v)
	}
	fb, status := d.hal.CreateFramebuffer(hal.FramebufferDescriptor{
		Label:       desc.Label,
		RenderPass:  *pass,
		Attachments: attachments,
		Width:       desc.Width,
		Height:      desc.Height,
		Layers:      desc.Layers,
	})
	if !status.OK() {
		return Framebuffer{}, status
	}
	return Framebuffer{device: d, h: d.framebuffers.Insert(fb)}, status
}
