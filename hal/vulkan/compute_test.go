// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
)

// TestComputePipelineStructFields exercises the plain field layout of
// ComputePipeline without touching the driver.
func TestComputePipelineStructFields(t *testing.T) {
	pipeline := &ComputePipeline{
		handle: vk.Pipeline(12345),
		layout: vk.PipelineLayout(67890),
	}
	if pipeline.handle != vk.Pipeline(12345) {
		t.Errorf("handle = %v, want 12345", pipeline.handle)
	}
	if pipeline.layout != vk.PipelineLayout(67890) {
		t.Errorf("layout = %v, want 67890", pipeline.layout)
	}
}

func TestComputePipelineDestroyNilDevice(t *testing.T) {
	pipeline := &ComputePipeline{handle: vk.Pipeline(100), device: nil}
	pipeline.Destroy() // must not panic
	if pipeline.handle != vk.Pipeline(100) {
		t.Error("handle should remain unchanged after Destroy with nil device")
	}
}

// TestCreateComputePipelineRejectsBadDescriptor checks the type-assertion
// guards in CreateComputePipeline without a live device.
func TestCreateComputePipelineRejectsBadDescriptor(t *testing.T) {
	device := &Device{}

	if _, status := device.CreateComputePipeline(hal.ComputePipelineDescriptor{}); status.OK() {
		t.Error("expected failure for nil shader")
	}
}

// TestDispatchNoOpWhenBlocked verifies Dispatch is a no-op once the encoder
// has latched a fatal status (§4.4 command contract step 2).
func TestDispatchNoOpWhenBlocked(t *testing.T) {
	e := &CommandEncoder{status: hal.StatusOutOfDeviceMemory}
	e.Dispatch(8, 8, 1) // must not panic; blocked() short-circuits before any syscall
	if e.status != hal.StatusOutOfDeviceMemory {
		t.Errorf("status changed to %v, want unchanged StatusOutOfDeviceMemory", e.status)
	}
}

func TestDispatchIndirectRejectsNonBufferType(t *testing.T) {
	e := &CommandEncoder{}
	e.DispatchIndirect(nil, 0) // must not panic on nil hal.Buffer
}

// TestBindComputePipelineRejectsForeignType checks BindComputePipeline's
// type assertion against a value that does not implement *ComputePipeline.
func TestBindComputePipelineRejectsForeignType(t *testing.T) {
	e := &CommandEncoder{}
	e.BindComputePipeline(nil)
	if e.boundKind == hal.BoundPipelineCompute {
		t.Error("boundKind should not be set for a nil pipeline")
	}
}

func TestPushConstantsNoOpWithoutLayout(t *testing.T) {
	e := &CommandEncoder{}
	e.PushConstants(0, []byte{1, 2, 3, 4}) // must not panic with zero pipelineLayout
}

func TestBindDescriptorSetsEmpty(t *testing.T) {
	e := &CommandEncoder{}
	e.BindDescriptorSets(hal.BoundPipelineCompute, nil, nil) // must not panic
}
