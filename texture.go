package gal

// Image is a lightweight, copyable handle to a backend image object
// (§3 "Image"). The zero Image never refers to a live object.
type Image struct {
	device *Device
	h      ImageHandle
}

func (img Image) IsZero() bool { return img.h.IsZero() }

// Ref increments img's refcount (ref_image).
func (img Image) Ref() Image {
	if img.device != nil {
		img.device.images.Ref(img.h)
	}
	return img
}

// Release decrements img's refcount (unref_image), destroying the backend
// image when it reaches zero — deferred to the attached FrameContext if
// one is in flight. Swapchain images are owned by their Swapchain and are
// released when the swapchain is recreated or destroyed, not here.
func (img Image) Release() {
	if img.device != nil {
		releaseHandle(img.device, img.device.images, img.h)
	}
}

// Extent returns the image's width, height and depth.
func (img Image) Extent() (width, height, depth uint32) {
	v, ok := img.device.images.Get(img.h)
	if !ok {
		return 0, 0, 0
	}
	return (*v).Extent()
}

func (img Image) MipLevels() uint32 {
	v, ok := img.device.images.Get(img.h)
	if !ok {
		return 0
	}
	return (*v).MipLevels()
}

func (img Image) ArrayLayers() uint32 {
	v, ok := img.device.images.Get(img.h)
	if !ok {
		return 0
	}
	return (*v).ArrayLayers()
}

func (img Image) SampleCount() SampleCount {
	v, ok := img.device.images.Get(img.h)
	if !ok {
		return 0
	}
	return (*v).SampleCount()
}

func (img Image) Format() Format {
	v, ok := img.device.images.Get(img.h)
	if !ok {
		return 0
	}
	return (*v).Format()
}

// IsSwapchainOwned reports whether the backend object is a swapchain
// image the device does not allocate or destroy directly.
func (img Image) IsSwapchainOwned() bool {
	v, ok := img.device.images.Get(img.h)
	if !ok {
		return false
	}
	return (*v).IsSwapchainOwned()
}

// ImageView ties a subrange of an image to a format (§3 "Views").
type ImageView struct {
	device *Device
	h      ImageViewHandle
}

func (v ImageView) IsZero() bool { return v.h.IsZero() }

func (v ImageView) Ref() ImageView {
	if v.device != nil {
		v.device.imageViews.Ref(v.h)
	}
	return v
}

func (v ImageView) Release() {
	if v.device != nil {
		releaseHandle(v.device, v.device.imageViews, v.h)
	}
}
