// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/types"
)

// BenchmarkVulkanCreateDescriptorSetLayout measures descriptor set layout
// creation overhead for a representative uniform+sampler binding pair.
func BenchmarkVulkanCreateDescriptorSetLayout(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()

	bindings := []hal.DescriptorBindingDescriptor{
		{Type: types.DescriptorTypeUniformBuffer, Count: 1},
		{Type: types.DescriptorTypeCombinedImageSampler, Count: 1},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		layout, status := device.CreateDescriptorSetLayout(bindings)
		if !status.OK() {
			b.Fatalf("CreateDescriptorSetLayout failed: %v", status)
		}
		layout.Destroy()
	}
}

// BenchmarkVulkanCreateDescriptorHeap measures descriptor heap creation
// overhead across a range of set-layout counts per pool.
func BenchmarkVulkanCreateDescriptorHeap(b *testing.B) {
	layoutCounts := []struct {
		name  string
		count int
	}{
		{"0_layouts", 0},
		{"1_layout", 1},
		{"4_layouts", 4},
	}

	for _, lc := range layoutCounts {
		b.Run(lc.name, func(b *testing.B) {
			b.ReportAllocs()
			instance, device := tryOpenVulkanDeviceForBench(b)
			if device == nil {
				return
			}
			defer instance.Destroy()
			defer device.Destroy()

			layouts := make([]hal.DescriptorSetLayout, lc.count)
			for j := 0; j < lc.count; j++ {
				layout, status := device.CreateDescriptorSetLayout([]hal.DescriptorBindingDescriptor{
					{Type: types.DescriptorTypeUniformBuffer, Count: 1},
				})
				if !status.OK() {
					b.Fatalf("CreateDescriptorSetLayout failed: %v", status)
				}
				layouts[j] = layout
			}
			defer func() {
				for _, l := range layouts {
					l.Destroy()
				}
			}()

			desc := hal.DescriptorHeapDescriptor{
				Label:            "bench-heap",
				SetLayouts:       layouts,
				NumGroupsPerPool: 16,
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				heap, status := device.CreateDescriptorHeap(desc)
				if !status.OK() {
					b.Fatalf("CreateDescriptorHeap failed: %v", status)
				}
				heap.Destroy()
			}
		})
	}
}

// BenchmarkVulkanDescriptorHeapAddGroup measures the steady-state cost of
// AddGroup against a warm heap — the per-frame allocation path frame
// contexts exercise when binding per-draw descriptor data (§4.3).
func BenchmarkVulkanDescriptorHeapAddGroup(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()

	layout, status := device.CreateDescriptorSetLayout([]hal.DescriptorBindingDescriptor{
		{Type: types.DescriptorTypeUniformBuffer, Count: 1},
	})
	if !status.OK() {
		b.Fatalf("CreateDescriptorSetLayout failed: %v", status)
	}
	defer layout.Destroy()

	heap, status := device.CreateDescriptorHeap(hal.DescriptorHeapDescriptor{
		Label:            "bench-heap",
		SetLayouts:       []hal.DescriptorSetLayout{layout},
		NumGroupsPerPool: 256,
	})
	if !status.OK() {
		b.Fatalf("CreateDescriptorHeap failed: %v", status)
	}
	defer heap.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trailingFrame := uint64(0)
		if i > 256 {
			trailingFrame = uint64(i - 256)
		}
		group, status := heap.AddGroup(trailingFrame)
		if !status.OK() {
			b.Fatalf("AddGroup failed: %v", status)
		}
		heap.MarkInUse(group, uint64(i))
		heap.Release(group)
	}
}

// BenchmarkVulkanDescriptorHeapStats measures Stats overhead from a
// single goroutine.
func BenchmarkVulkanDescriptorHeapStats(b *testing.B) {
	b.ReportAllocs()
	instance, device := tryOpenVulkanDeviceForBench(b)
	if device == nil {
		return
	}
	defer instance.Destroy()
	defer device.Destroy()

	layout, status := device.CreateDescriptorSetLayout([]hal.DescriptorBindingDescriptor{
		{Type: types.DescriptorTypeUniformBuffer, Count: 1},
	})
	if !status.OK() {
		b.Fatalf("CreateDescriptorSetLayout failed: %v", status)
	}
	defer layout.Destroy()

	heap, status := device.CreateDescriptorHeap(hal.DescriptorHeapDescriptor{
		Label:            "bench-heap",
		SetLayouts:       []hal.DescriptorSetLayout{layout},
		NumGroupsPerPool: 64,
	})
	if !status.OK() {
		b.Fatalf("CreateDescriptorHeap failed: %v", status)
	}
	defer heap.Destroy()

	b.ResetTimer()
	var sink hal.DescriptorHeapStats
	for i := 0; i < b.N; i++ {
		sink = heap.Stats()
	}
	benchSink = sink
}
