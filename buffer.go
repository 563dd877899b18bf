package gal

// Buffer is a lightweight, copyable handle to a backend buffer object
// (§3 "Buffer"). The zero Buffer never refers to a live object.
type Buffer struct {
	device *Device
	h      BufferHandle
}

// IsZero reports whether b is the zero Buffer.
func (b Buffer) IsZero() bool { return b.h.IsZero() }

// Ref increments b's refcount (ref_buffer) and returns b unchanged, so
// callers can chain it: kept := buf.Ref().
func (b Buffer) Ref() Buffer {
	if b.device != nil {
		b.device.buffers.Ref(b.h)
	}
	return b
}

// Release decrements b's refcount (unref_buffer), destroying the backend
// buffer when it reaches zero — deferred to the attached FrameContext if
// one is in flight (§4.2, §4.6).
func (b Buffer) Release() {
	if b.device != nil {
		releaseHandle(b.device, b.device.buffers, b.h)
	}
}

// Size returns the buffer's fixed byte size.
func (b Buffer) Size() uint64 {
	v, ok := b.device.buffers.Get(b.h)
	if !ok {
		return 0
	}
	return (*v).Size()
}

// HostMap returns the persistently mapped range if the buffer is
// host-visible, or nil otherwise (§3 invariant).
func (b Buffer) HostMap() []byte {
	v, ok := b.device.buffers.Get(b.h)
	if !ok {
		return nil
	}
	return (*v).HostMap()
}

// BufferView ties a subrange of a buffer to a format (§3 "Views").
type BufferView struct {
	device *Device
	h      BufferViewHandle
}

func (v BufferView) IsZero() bool { return v.h.IsZero() }

func (v BufferView) Ref() BufferView {
	if v.device != nil {
		v.device.bufferViews.Ref(v.h)
	}
	return v
}

func (v BufferView) Release() {
	if v.device != nil {
		releaseHandle(v.device, v.device.bufferViews, v.h)
	}
}
