// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"time"

	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
)

// Fence wraps a single VkFence. Submit fences and FrameContext submit
// fences (§3 "Fence", §4.6) are both plain instances of this type — the
// GAL keeps no internal fence-recycling pool; every Fence is a first-class
// handle-arena resource the caller creates, waits on and destroys.
type Fence struct {
	device *Device
	handle vk.Fence
}

// Destroy releases the underlying VkFence.
func (f *Fence) Destroy() {
	if f.handle != 0 && f.device != nil {
		f.device.cmds.DestroyFence(f.device.handle, f.handle, nil)
		f.handle = 0
	}
}

// CreateFence creates a VkFence, optionally pre-signaled so the first
// WaitForFences on a brand-new frame slot does not block (§4.6).
func (d *Device) CreateFence(desc hal.FenceDescriptor) (hal.Fence, hal.Status) {
	var flags uint32
	if desc.Signaled {
		flags = vk.FenceCreateSignaledBit
	}

	createInfo := vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: flags,
	}

	var handle vk.Fence
	result := d.cmds.CreateFence(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, statusFromResult(result)
	}

	f := &Fence{device: d, handle: handle}
	d.setObjectName(vk.ObjectTypeUnknown, uint64(handle), desc.Label)
	return f, hal.StatusSuccess
}

// WaitForFences blocks on one or more fences and resets every fence that
// was waited on successfully (§4.6, §5 "Suspension/blocking points").
func (d *Device) WaitForFences(fences []hal.Fence, waitAll bool, timeout time.Duration) hal.Status {
	if len(fences) == 0 {
		return hal.StatusSuccess
	}

	handles := make([]vk.Fence, len(fences))
	for i, f := range fences {
		vf, ok := f.(*Fence)
		if !ok || vf == nil || vf.handle == 0 {
			return hal.StatusUnknown
		}
		handles[i] = vf.handle
	}

	waitAllFlag := vk.False
	if waitAll {
		waitAllFlag = vk.True
	}

	result := d.cmds.WaitForFences(d.handle, uint32(len(handles)), &handles[0], waitAllFlag, uint64(timeout.Nanoseconds()))
	if result != vk.Success {
		return statusFromResult(result)
	}

	_ = d.cmds.ResetFences(d.handle, uint32(len(handles)), &handles[0])
	return hal.StatusSuccess
}
