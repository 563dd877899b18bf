package gal

import (
	"testing"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/internal/thread"
)

func newTestDevice() (*Device, *fakeDevice) {
	fd := &fakeDevice{}
	return newDevice(fd, thread.NewRenderLoop()), fd
}

// TestCreateBufferRefcountStartsAtOne covers testable property 1: a
// freshly created resource has refcount 1 and resolves.
func TestCreateBufferRefcountStartsAtOne(t *testing.T) {
	d, _ := newTestDevice()
	buf, status := d.CreateBuffer(BufferDescriptor{Size: 256, Usage: BufferUsageUniformBuffer})
	if !status.OK() {
		t.Fatalf("CreateBuffer status = %v, want success", status)
	}
	if got := d.buffers.RefCount(buf.h); got != 1 {
		t.Fatalf("RefCount() = %d, want 1", got)
	}
	if buf.Size() != 256 {
		t.Fatalf("Size() = %d, want 256", buf.Size())
	}
}

// TestBufferRefDelaysDestroy covers testable property 1's other half:
// Ref/Release pairs nest, and the backend object is destroyed on exactly
// the release that drops the count to zero.
func TestBufferRefDelaysDestroy(t *testing.T) {
	d, _ := newTestDevice()
	buf, status := d.CreateBuffer(BufferDescriptor{Size: 64})
	if !status.OK() {
		t.Fatalf("CreateBuffer status = %v", status)
	}
	kept := buf.Ref()
	if got := d.buffers.RefCount(buf.h); got != 2 {
		t.Fatalf("RefCount() after Ref = %d, want 2", got)
	}

	backing, ok := d.buffers.Get(buf.h)
	if !ok {
		t.Fatal("Get() after Ref should still resolve")
	}
	fb := (*backing).(*fakeBuffer)

	buf.Release()
	if fb.destroyed {
		t.Fatal("Release before refcount reaches zero must not destroy")
	}
	if _, ok := d.buffers.Get(buf.h); !ok {
		t.Fatal("handle should still resolve with one ref outstanding")
	}

	kept.Release()
	if !fb.destroyed {
		t.Fatal("Release dropping refcount to zero must destroy the backend buffer")
	}
	if _, ok := d.buffers.Get(buf.h); ok {
		t.Fatal("Get() after final Release should fail")
	}
}

// TestCreateBufferPropagatesFailure ensures a non-success backend status
// never inserts a handle into the arena.
func TestCreateBufferPropagatesFailure(t *testing.T) {
	d, fd := newTestDevice()
	_ = fd
	// Force the underlying arena empty by rejecting via a zero-size
	// descriptor is backend-specific; instead assert directly that a
	// failing CreateBuffer (simulated at the hal layer) returns the zero
	// handle and does not grow the arena.
	before := d.buffers.Len()
	d.hal = failingDevice{fakeDevice: fd}
	buf, status := d.CreateBuffer(BufferDescriptor{Size: 1})
	if status.OK() {
		t.Fatal("expected failure status")
	}
	if !buf.IsZero() {
		t.Fatal("expected zero Buffer on failure")
	}
	if d.buffers.Len() != before {
		t.Fatalf("arena grew on failed CreateBuffer: before=%d after=%d", before, d.buffers.Len())
	}
}

// failingDevice wraps fakeDevice and rejects every CreateBuffer call,
// for exercising gal's failure-propagation path.
type failingDevice struct {
	*fakeDevice
}

func (f failingDevice) CreateBuffer(desc hal.BufferDescriptor) (hal.Buffer, hal.Status) {
	return nil, hal.StatusOutOfDeviceMemory
}
