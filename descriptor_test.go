package gal

import (
	"testing"

	"github.com/ashura-engine/gal/hal"
)

func newTestDescriptorHeap(t *testing.T) (*Device, DescriptorHeap, *fakeDescriptorHeap) {
	t.Helper()
	d, fd := newTestDevice()
	layout, status := d.CreateDescriptorSetLayout([]DescriptorBindingDescriptor{
		{Type: DescriptorTypeUniformBuffer, Count: 1},
	})
	if !status.OK() {
		t.Fatalf("CreateDescriptorSetLayout status = %v", status)
	}
	heap, status := d.CreateDescriptorHeap(DescriptorHeapDescriptor{
		SetLayouts:       []DescriptorSetLayout{layout},
		NumGroupsPerPool: 4,
	})
	if !status.OK() {
		t.Fatalf("CreateDescriptorHeap status = %v", status)
	}
	return d, heap, fd.descriptorHeap
}

// TestDescriptorHeapAddGroupForwardsGroupAndStatus covers scenario S3's
// happy path through the gal wrapper.
func TestDescriptorHeapAddGroupForwardsGroupAndStatus(t *testing.T) {
	_, heap, fh := newTestDescriptorHeap(t)

	g0, status := heap.AddGroup(0)
	if !status.OK() || g0 != 0 {
		t.Fatalf("AddGroup() = (%d, %v), want (0, success)", g0, status)
	}
	g1, status := heap.AddGroup(0)
	if !status.OK() || g1 != 1 {
		t.Fatalf("AddGroup() = (%d, %v), want (1, success)", g1, status)
	}

	fh.addGroupError = hal.StatusOutOfPoolMemory
	if _, status := heap.AddGroup(0); status != hal.StatusOutOfPoolMemory {
		t.Fatalf("AddGroup() status = %v, want StatusOutOfPoolMemory", status)
	}
}

// TestDescriptorHeapReleaseMarkInUseForward checks Release/MarkInUse/IsInUse
// reach the backend heap with the exact arguments passed in.
func TestDescriptorHeapReleaseMarkInUseForward(t *testing.T) {
	_, heap, fh := newTestDescriptorHeap(t)

	g, _ := heap.AddGroup(0)
	heap.MarkInUse(g, 5)
	if !heap.IsInUse(g, 5) {
		t.Fatal("IsInUse(group, 5) should be true right after MarkInUse(group, 5)")
	}
	if heap.IsInUse(g, 6) {
		t.Fatal("IsInUse(group, 6) should be false: last-use (5) < trailingFrame (6)")
	}

	heap.ReleaseGroup(g)
	if len(fh.released) != 1 || fh.released[0] != g {
		t.Fatalf("Release forwarding: released = %v, want [%d]", fh.released, g)
	}
}

// TestDescriptorHeapWriteMethodsPropagateStatus covers reviewer-mandated
// Status propagation through WriteUniformBuffers: the gal wrapper must
// surface whatever the backend heap returns, not silently discard it.
func TestDescriptorHeapWriteMethodsPropagateStatus(t *testing.T) {
	d, heap, fh := newTestDescriptorHeap(t)
	buf, status := d.CreateBuffer(BufferDescriptor{Size: 256, Usage: BufferUsageUniformBuffer})
	if !status.OK() {
		t.Fatalf("CreateBuffer status = %v", status)
	}
	g, _ := heap.AddGroup(0)

	fh.writeStatus = hal.StatusSuccess
	if status := heap.WriteUniformBuffers(g, 0, 0, []BufferDescriptorWrite{{Buffer: buf, Range: 256}}); !status.OK() {
		t.Fatalf("WriteUniformBuffers() = %v, want success", status)
	}
	if fh.lastWrite != "uniformBuffer" {
		t.Fatalf("lastWrite = %q, want uniformBuffer", fh.lastWrite)
	}

	fh.writeStatus = hal.StatusUnknown
	if status := heap.WriteUniformBuffers(g, 0, 0, []BufferDescriptorWrite{{Buffer: buf, Range: 256}}); status.OK() {
		t.Fatal("WriteUniformBuffers() should propagate the backend's failure status")
	}
}

// TestDescriptorHeapZeroValueMethodsFail exercises every exported method
// on the zero-value DescriptorHeap: each must report failure rather than
// panic on a nil backend heap.
func TestDescriptorHeapZeroValueMethodsFail(t *testing.T) {
	var heap DescriptorHeap

	if _, status := heap.AddGroup(0); status.OK() {
		t.Error("AddGroup on zero heap should fail")
	}
	if status := heap.WriteSamplers(0, 0, 0, nil); status.OK() {
		t.Error("WriteSamplers on zero heap should fail")
	}
	if status := heap.WriteCombinedImageSamplers(0, 0, 0, nil); status.OK() {
		t.Error("WriteCombinedImageSamplers on zero heap should fail")
	}
	if status := heap.WriteSampledImages(0, 0, 0, nil); status.OK() {
		t.Error("WriteSampledImages on zero heap should fail")
	}
	if status := heap.WriteStorageImages(0, 0, 0, nil); status.OK() {
		t.Error("WriteStorageImages on zero heap should fail")
	}
	if status := heap.WriteUniformTexelBuffers(0, 0, 0, nil); status.OK() {
		t.Error("WriteUniformTexelBuffers on zero heap should fail")
	}
	if status := heap.WriteStorageTexelBuffers(0, 0, 0, nil); status.OK() {
		t.Error("WriteStorageTexelBuffers on zero heap should fail")
	}
	if status := heap.WriteUniformBuffers(0, 0, 0, nil); status.OK() {
		t.Error("WriteUniformBuffers on zero heap should fail")
	}
	if status := heap.WriteStorageBuffers(0, 0, 0, nil); status.OK() {
		t.Error("WriteStorageBuffers on zero heap should fail")
	}
	if status := heap.WriteDynamicUniformBuffers(0, 0, 0, nil); status.OK() {
		t.Error("WriteDynamicUniformBuffers on zero heap should fail")
	}
	if status := heap.WriteDynamicStorageBuffers(0, 0, 0, nil); status.OK() {
		t.Error("WriteDynamicStorageBuffers on zero heap should fail")
	}
	if status := heap.WriteInputAttachments(0, 0, 0, nil); status.OK() {
		t.Error("WriteInputAttachments on zero heap should fail")
	}
	// Must not panic.
	heap.ReleaseGroup(0)
	heap.MarkInUse(0, 0)
	if heap.IsInUse(0, 0) {
		t.Error("IsInUse on zero heap should report false")
	}
	if stats := heap.Stats(); stats.NumPools != 0 {
		t.Error("Stats on zero heap should be the zero value")
	}
}
