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

// benchSink prevents the compiler from optimizing away benchmark results.
var benchSink any

const benchWaitTimeout = 5 * time.Second

// tryOpenVulkanDeviceForBench is the benchmark variant of tryOpenVulkanDevice
// in compute_integration_test.go — skips instead of failing when no Vulkan
// device is present (headless CI).
func tryOpenVulkanDeviceForBench(b *testing.B) (hal.Instance, hal.Device) {
	b.Helper()

	if err := vk.Init(); err != nil {
		b.Skipf("vulkan loader unavailable: %v", err)
		return nil, nil
	}

	backend := Backend{}
	instance, status := backend.CreateInstance(&hal.InstanceDescriptor{AppName: "gal-bench"})
	if !status.OK() {
		b.Skipf("CreateInstance failed: %v", status)
		return nil, nil
	}

	device, status := instance.OpenDevice(nil, nil)
	if !status.OK() {
		instance.Destroy()
		b.Skipf("OpenDevice failed: %v", status)
		return nil, nil
	}
	return instance, device
}

// BenchmarkVulkanQueueWaitIdle measures the overhead of an idle queue wait
// with no outstanding work — the mutex-free floor for the hot submit path.
func BenchmarkVulkanQueueWaitIdle(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()
	queue := device.Queue()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if status := queue.WaitIdle(); !status.OK() {
			b.Fatalf("WaitIdle failed: %v", status)
		}
	}
}

// BenchmarkVulkanBeginEndEncoding measures a full encode cycle:
// CreateCommandEncoder -> Begin -> End. This is the per-frame minimum cost
// for recording any GPU work.
func BenchmarkVulkanBeginEndEncoding(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		encoder, status := device.CreateCommandEncoder("bench-encoder")
		if !status.OK() {
			b.Fatalf("CreateCommandEncoder failed: %v", status)
		}
		if status := encoder.Begin(); !status.OK() {
			b.Fatalf("Begin failed: %v", status)
		}
		if status := encoder.End(); !status.OK() {
			b.Fatalf("End failed: %v", status)
		}
		benchSink = encoder
		encoder.Destroy()
	}
}

// BenchmarkVulkanSubmitSingle measures Submit with a single recorded,
// unsignaled-fence command buffer — the most common per-frame path.
func BenchmarkVulkanSubmitSingle(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()
	queue := device.Queue()

	fence, status := device.CreateFence(hal.FenceDescriptor{Label: "bench-fence"})
	if !status.OK() {
		b.Fatalf("CreateFence failed: %v", status)
	}
	defer fence.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		encoder, _ := device.CreateCommandEncoder("bench")
		_ = encoder.Begin()
		_ = encoder.End()

		if status := queue.Submit(encoder, nil, nil, fence); !status.OK() {
			b.Fatalf("Submit failed: %v", status)
		}
		if status := device.WaitForFences([]hal.Fence{fence}, true, benchWaitTimeout); !status.OK() {
			b.Fatalf("WaitForFences failed: %v", status)
		}
		encoder.Destroy()
	}
}

// BenchmarkVulkanComputeDispatchRecording measures recording a bound compute
// pipeline and dispatch into an otherwise empty command buffer, without
// submitting — the pure recording-side cost.
func BenchmarkVulkanComputeDispatchRecording(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()

	shader, status := device.CreateShader(hal.ShaderDescriptor{Label: "bench-shader", Code: fillOneSPIRV})
	if !status.OK() {
		b.Fatalf("CreateShader failed: %v", status)
	}
	defer shader.Destroy()

	pipeline, status := device.CreateComputePipeline(hal.ComputePipelineDescriptor{
		Label:      "bench-pipeline",
		Shader:     shader,
		EntryPoint: "main",
	})
	if !status.OK() {
		b.Fatalf("CreateComputePipeline failed: %v", status)
	}
	defer pipeline.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		encoder, _ := device.CreateCommandEncoder("bench")
		_ = encoder.Begin()
		encoder.BindComputePipeline(pipeline)
		encoder.Dispatch(64, 1, 1)
		_ = encoder.End()
		encoder.Destroy()
	}
}

// BenchmarkVulkanCreateDestroyBuffer measures Vulkan buffer create/destroy
// overhead, including real device-memory allocation, across buffer sizes.
func BenchmarkVulkanCreateDestroyBuffer(b *testing.B) {
	sizes := []struct {
		name string
		size uint64
	}{
		{"256B", 256},
		{"4KB", 4096},
		{"64KB", 65536},
		{"1MB", 1 << 20},
	}

	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			instance, device := tryOpenVulkanDeviceForBench(b)
			if device == nil {
				return
			}
			defer instance.Destroy()
			defer device.Destroy()

			desc := hal.BufferDescriptor{
				Label: "bench-buffer",
				Size:  s.size,
				Usage: types.BufferUsageVertexBuffer | types.BufferUsageTransferDst,
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf, status := device.CreateBuffer(desc)
				if !status.OK() {
					b.Fatalf("CreateBuffer failed: %v", status)
				}
				buf.Destroy()
			}
		})
	}
}

// BenchmarkVulkanCreateDestroyFence measures fence lifecycle overhead.
func BenchmarkVulkanCreateDestroyFence(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fence, status := device.CreateFence(hal.FenceDescriptor{Label: "bench-fence"})
		if !status.OK() {
			b.Fatalf("CreateFence failed: %v", status)
		}
		fence.Destroy()
	}
}
