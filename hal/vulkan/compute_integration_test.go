// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"
	"time"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

// fillOneSPIRV is a minimal SPIR-V 1.0 compute module: local_size_x=1 entry
// point "main" that does no work beyond OpReturn. It exists purely to give
// CreateShader a module VkShaderModule will accept — the integration test
// below only asserts on pipeline/dispatch/fence plumbing, not on the value a
// dispatched shader produces.
var fillOneSPIRV = []uint32{
	0x07230203, 0x00010000, 0x0008000a, 0x0000000d, 0x00000000,
	0x00020011, 0x00000001,
	0x0006000b, 0x00000001, 0x4c534c47, 0x6474732e, 0x3035342e, 0x00000000,
	0x0003000e, 0x00000000, 0x00000001,
	0x0005000f, 0x00000005, 0x00000004, 0x6e69616d, 0x00000000,
	0x0006000c, 0x00000004, 0x00000001, 0x00010000, 0x00000001, 0x00000001,
	0x00030003, 0x00000002, 0x000001c2,
	0x00050048, 0x00000005, 0x00000000, 0x0000000b, 0x00000019,
	0x00030047, 0x00000005, 0x00000002,
	0x00020013, 0x00000002,
	0x00030021, 0x00000003, 0x00000002,
	0x00050036, 0x00000002, 0x00000004, 0x00000000, 0x00000003,
	0x000200f8, 0x00000005,
	0x000100fd,
	0x00010038,
}

// tryOpenVulkanDevice attempts to create an instance and open a device for
// testing, skipping (not failing) the calling test when no Vulkan ICD is
// available — the common case in headless CI.
func tryOpenVulkanDevice(t *testing.T) (hal.Instance, hal.Device) {
	t.Helper()

	if err := vk.Init(); err != nil {
		t.Skipf("vulkan loader unavailable: %v", err)
		return nil, nil
	}

	backend := Backend{}
	instance, status := backend.CreateInstance(&hal.InstanceDescriptor{AppName: "gal-compute-test"})
	if !status.OK() {
		t.Skipf("CreateInstance failed: %v", status)
		return nil, nil
	}

	device, status := instance.OpenDevice(nil, nil)
	if !status.OK() {
		instance.Destroy()
		t.Skipf("OpenDevice failed: %v", status)
		return nil, nil
	}
	return instance, device
}

// TestComputeDispatchEndToEnd builds a trivial compute pipeline, records a
// dispatch plus a buffer-to-buffer copy for readback, submits it with a
// fence, and waits for completion. It exercises CreateShader,
// CreateDescriptorSetLayout, CreateComputePipeline, CreateCommandEncoder,
// Queue.Submit and Device.WaitForFences against a real driver; it is
// skipped wherever no Vulkan device is present.
func TestComputeDispatchEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping GPU integration test in short mode")
	}

	instance, device := tryOpenVulkanDevice(t)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()

	const bufferSize = 256

	shader, status := device.CreateShader(hal.ShaderDescriptor{Label: "fill-one", Code: fillOneSPIRV})
	if !status.OK() {
		t.Fatalf("CreateShader failed: %v", status)
	}
	defer shader.Destroy()

	setLayout, status := device.CreateDescriptorSetLayout([]hal.DescriptorBindingDescriptor{
		{Type: types.DescriptorTypeStorageBuffer, Count: 1},
	})
	if !status.OK() {
		t.Fatalf("CreateDescriptorSetLayout failed: %v", status)
	}
	defer setLayout.Destroy()

	pipeline, status := device.CreateComputePipeline(hal.ComputePipelineDescriptor{
		Label:      "fill-one-pipeline",
		Shader:     shader,
		EntryPoint: "main",
		SetLayouts: []hal.DescriptorSetLayout{setLayout},
	})
	if !status.OK() {
		t.Fatalf("CreateComputePipeline failed: %v", status)
	}
	defer pipeline.Destroy()

	storageBuffer, status := device.CreateBuffer(hal.BufferDescriptor{
		Label: "storage",
		Size:  bufferSize,
		Usage: types.BufferUsageStorageBuffer | types.BufferUsageTransferSrc,
	})
	if !status.OK() {
		t.Fatalf("CreateBuffer (storage) failed: %v", status)
	}
	defer storageBuffer.Destroy()

	stagingBuffer, status := device.CreateBuffer(hal.BufferDescriptor{
		Label:            "staging",
		Size:             bufferSize,
		Usage:            types.BufferUsageTransferDst,
		MemoryProperties: types.MemoryPropertyHostVisible | types.MemoryPropertyHostCoherent,
	})
	if !status.OK() {
		t.Fatalf("CreateBuffer (staging) failed: %v", status)
	}
	defer stagingBuffer.Destroy()

	encoder, status := device.CreateCommandEncoder("fill-one-encoder")
	if !status.OK() {
		t.Fatalf("CreateCommandEncoder failed: %v", status)
	}
	defer encoder.Destroy()

	if status := encoder.Begin(); !status.OK() {
		t.Fatalf("Begin failed: %v", status)
	}

	encoder.BindComputePipeline(pipeline)
	encoder.Dispatch(1, 1, 1)
	encoder.CopyBuffer(storageBuffer, stagingBuffer, []hal.BufferCopyRegion{
		{SrcOffset: 0, DstOffset: 0, Size: bufferSize},
	})

	status = encoder.End()
	if !status.OK() {
		t.Fatalf("End failed: %v", status)
	}

	fence, status := device.CreateFence(hal.FenceDescriptor{Label: "fill-one-fence"})
	if !status.OK() {
		t.Fatalf("CreateFence failed: %v", status)
	}
	defer fence.Destroy()

	if status := device.Queue().Submit(encoder, nil, nil, fence); !status.OK() {
		t.Fatalf("Submit failed: %v", status)
	}

	if status := device.WaitForFences([]hal.Fence{fence}, true, 5*time.Second); !status.OK() {
		t.Fatalf("WaitForFences failed: %v", status)
	}
}

// TestCreateComputePipelineValidatesDescriptor exercises the descriptor
// validation path without requiring a live driver.
func TestCreateComputePipelineValidatesDescriptor(t *testing.T) {
	device := &Device{}

	if _, status := device.CreateComputePipeline(hal.ComputePipelineDescriptor{}); status.OK() {
		t.Error("expected failure for a descriptor with no shader")
	}
}
