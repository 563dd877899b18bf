// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/ashura-engine/gal/hal"
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

// Swapchain implements hal.Swapchain for Vulkan. generation increments on
// every successful Recreate (§3 "Swapchain"); callers use it to invalidate
// stale Image references held across a resize.
type Swapchain struct {
	device  *Device
	surface *Surface

	handle      vk.SwapchainKHR
	format      types.Format
	extent      vk.Extent2D
	presentMode vk.PresentModeKHR

	images     []*Image
	imageViews []*ImageView

	currentImageIndex uint32
	generation        uint64
	valid             bool
	optimal           bool
}

// CreateSwapchain implements hal.Device.CreateSwapchain.
func (d *Device) CreateSwapchain(desc hal.SwapchainDescriptor) (hal.Swapchain, hal.Status) {
	sc := &Swapchain{device: d}
	status := sc.Recreate(desc)
	if !status.OK() {
		return nil, status
	}
	return sc, hal.StatusSuccess
}

// IsValid implements hal.Swapchain.
func (sc *Swapchain) IsValid() bool { return sc.valid }

// IsOptimal implements hal.Swapchain.
func (sc *Swapchain) IsOptimal() bool { return sc.optimal }

// CurrentExtent implements hal.Swapchain.
func (sc *Swapchain) CurrentExtent() (width, height uint32) {
	return sc.extent.Width, sc.extent.Height
}

// Generation implements hal.Swapchain.
func (sc *Swapchain) Generation() uint64 { return sc.generation }

// Images implements hal.Swapchain.
func (sc *Swapchain) Images() []hal.Image {
	images := make([]hal.Image, len(sc.images))
	for i, img := range sc.images {
		images[i] = img
	}
	return images
}

// CurrentImageIndex implements hal.Swapchain.
func (sc *Swapchain) CurrentImageIndex() uint32 { return sc.currentImageIndex }

// AcquireNextImage implements hal.Swapchain.
func (sc *Swapchain) AcquireNextImage(acquireSem hal.Semaphore, fence hal.Fence) (uint32, hal.Status) {
	var semHandle vk.Semaphore
	if acquireSem != nil {
		s, ok := acquireSem.(*Semaphore)
		if !ok || s == nil {
			return 0, hal.StatusUnknown
		}
		semHandle = s.handle
	}
	var fenceHandle vk.Fence
	if fence != nil {
		f, ok := fence.(*Fence)
		if !ok || f == nil {
			return 0, hal.StatusUnknown
		}
		fenceHandle = f.handle
	}

	var imageIndex uint32
	result := vk.AcquireNextImageKHR(sc.device.handle, sc.handle, ^uint64(0), semHandle, fenceHandle, &imageIndex)
	switch result {
	case vk.Success:
		sc.currentImageIndex = imageIndex
		return imageIndex, hal.StatusSuccess
	case vk.SuboptimalKhr:
		sc.currentImageIndex = imageIndex
		sc.optimal = false
		return imageIndex, hal.StatusSuboptimalSwapchain
	case vk.ErrorOutOfDateKhr:
		sc.valid = false
		return 0, hal.StatusOutOfDate
	default:
		return 0, statusFromResult(result)
	}
}

// Recreate implements hal.Swapchain. It queries surface capabilities,
// clamps the requested extent/buffering, builds the new VkSwapchainKHR
// with the current handle as oldSwapchain, then tears down the old
// resources only after the new swapchain exists (§4.6).
func (sc *Swapchain) Recreate(desc hal.SwapchainDescriptor) hal.Status {
	surface, ok := desc.Surface.(*Surface)
	if !ok || surface == nil || surface.handle == 0 {
		return hal.StatusUnknown
	}
	d := sc.device
	instance := d.instance

	var caps vk.SurfaceCapabilitiesKHR
	result := vk.GetPhysicalDeviceSurfaceCapabilitiesKHR(&instance.cmds, d.physicalDevice, surface.handle, &caps)
	if result != vk.Success {
		return statusFromResult(result)
	}

	imageCount := caps.MinImageCount
	if desc.PreferredBuffering > imageCount {
		imageCount = desc.PreferredBuffering
	}
	if caps.MaxImageCount > 0 && imageCount > caps.MaxImageCount {
		imageCount = caps.MaxImageCount
	}

	extent := caps.CurrentExtent
	if extent.Width == 0xFFFFFFFF {
		extent = vk.Extent2D{Width: desc.PreferredExtent[0], Height: desc.PreferredExtent[1]}
		if extent.Width < caps.MinImageExtent.Width {
			extent.Width = caps.MinImageExtent.Width
		}
		if extent.Width > caps.MaxImageExtent.Width {
			extent.Width = caps.MaxImageExtent.Width
		}
		if extent.Height < caps.MinImageExtent.Height {
			extent.Height = caps.MinImageExtent.Height
		}
		if extent.Height > caps.MaxImageExtent.Height {
			extent.Height = caps.MaxImageExtent.Height
		}
	}

	vkFormat := formatToVk(desc.Format)
	presentMode := choosePresentMode(&instance.cmds, d.physicalDevice, surface.handle, desc.PresentMode)

	imageUsage := imageUsageToVk(desc.Usage)
	composite := compositeAlphaToVk(desc.CompositeAlpha)
	colorSpace := colorSpaceToVk(desc.ColorSpace)

	createInfo := vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKhr,
		Surface:          surface.handle,
		MinImageCount:    imageCount,
		ImageFormat:      vkFormat,
		ImageColorSpace:  colorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       imageUsage,
		ImageSharingMode: vk.SharingModeExclusive,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   composite,
		PresentMode:      presentMode,
		Clipped:          vk.True,
		OldSwapchain:     sc.handle,
	}

	var handle vk.SwapchainKHR
	result = vk.CreateSwapchainKHR(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return statusFromResult(result)
	}

	var imageCountOut uint32
	result = vk.GetSwapchainImagesKHR(d.handle, handle, &imageCountOut, nil)
	if result != vk.Success {
		vk.DestroySwapchainKHR(d.handle, handle, nil)
		return statusFromResult(result)
	}
	rawImages := make([]vk.Image, imageCountOut)
	result = vk.GetSwapchainImagesKHR(d.handle, handle, &imageCountOut, &rawImages[0])
	if result != vk.Success {
		vk.DestroySwapchainKHR(d.handle, handle, nil)
		return statusFromResult(result)
	}

	images := make([]*Image, len(rawImages))
	views := make([]*ImageView, len(rawImages))
	for i, raw := range rawImages {
		viewCreateInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    raw,
			ViewType: vk.ImageViewType2d,
			Format:   vkFormat,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity,
				G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity,
				A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		}
		var view vk.ImageView
		result = vk.CreateImageView(d.handle, &viewCreateInfo, nil, &view)
		if result != vk.Success {
			for j := 0; j < i; j++ {
				vk.DestroyImageView(d.handle, views[j].handle, nil)
			}
			vk.DestroySwapchainKHR(d.handle, handle, nil)
			return statusFromResult(result)
		}
		images[i] = &Image{
			handle:         raw,
			device:         d,
			width:          extent.Width,
			height:         extent.Height,
			depth:          1,
			mipLevels:      1,
			arrayLayers:    1,
			sampleCount:    types.SampleCount1,
			format:         desc.Format,
			swapchainOwned: true,
		}
		views[i] = &ImageView{handle: view, device: d}
	}

	// Tear down the old swapchain only after the new one exists.
	sc.destroyResources()

	sc.surface = surface
	sc.handle = handle
	sc.format = desc.Format
	sc.extent = extent
	sc.presentMode = presentMode
	sc.images = images
	sc.imageViews = views
	sc.currentImageIndex = 0
	sc.generation++
	sc.valid = true
	sc.optimal = true
	return hal.StatusSuccess
}

// destroyResources releases the swapchain's images, views and handle
// without touching the Swapchain's bookkeeping fields.
func (sc *Swapchain) destroyResources() {
	if sc.device == nil {
		return
	}
	for _, view := range sc.imageViews {
		if view != nil && view.handle != 0 {
			vk.DestroyImageView(sc.device.handle, view.handle, nil)
		}
	}
	sc.imageViews = nil
	sc.images = nil
	if sc.handle != 0 {
		vk.DestroySwapchainKHR(sc.device.handle, sc.handle, nil)
		sc.handle = 0
	}
}

// Destroy implements hal.Resource via hal.Swapchain.
func (sc *Swapchain) Destroy() {
	if sc.device != nil {
		vk.DeviceWaitIdle(sc.device.handle)
	}
	sc.destroyResources()
	sc.valid = false
}

// choosePresentMode queries the surface's supported present modes and
// returns desired when supported, falling back to FIFO (always
// guaranteed present, per the Vulkan spec) otherwise.
func choosePresentMode(cmds *vk.Commands, physicalDevice vk.PhysicalDevice, surface vk.SurfaceKHR, desired types.PresentMode) vk.PresentModeKHR {
	wanted := presentModeToVk(desired)

	var count uint32
	vk.GetPhysicalDeviceSurfacePresentModesKHR(cmds, physicalDevice, surface, &count, nil)
	if count == 0 {
		return vk.PresentModeFifoKhr
	}
	modes := make([]vk.PresentModeKHR, count)
	vk.GetPhysicalDeviceSurfacePresentModesKHR(cmds, physicalDevice, surface, &count, &modes[0])

	for _, m := range modes {
		if m == wanted {
			return wanted
		}
	}
	return vk.PresentModeFifoKhr
}
