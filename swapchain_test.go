package gal

import (
	"testing"

	"github.com/ashura-engine/gal/hal"
)

// TestCreateSwapchainWrapsImages checks that the images the backend
// reports at creation time are wrapped into the device's image arena and
// exposed through Images().
func TestCreateSwapchainWrapsImages(t *testing.T) {
	d, fd := newTestDevice()
	fd.swapchainImages = []hal.Image{&fakeImage{}, &fakeImage{}}

	sc, status := d.CreateSwapchain(SwapchainDescriptor{})
	if !status.OK() {
		t.Fatalf("CreateSwapchain status = %v", status)
	}
	if len(sc.Images()) != 2 {
		t.Fatalf("Images() len = %d, want 2", len(sc.Images()))
	}
	for _, img := range sc.Images() {
		if _, ok := d.images.Get(img.h); !ok {
			t.Error("each swapchain image should resolve through the device's image arena")
		}
	}
}

// TestAcquireNextImageRunsOnRenderThread checks AcquireNextImage reaches
// the backend and forwards its (index, status) pair unchanged.
func TestAcquireNextImageRunsOnRenderThread(t *testing.T) {
	d, _ := newTestDevice()
	sc, status := d.CreateSwapchain(SwapchainDescriptor{})
	if !status.OK() {
		t.Fatalf("CreateSwapchain status = %v", status)
	}
	backing, _ := d.swapchains.Get(sc.h)
	fsc := (*backing).(*fakeSwapchain)
	fsc.acquireStatus = hal.StatusSuboptimalSwapchain

	idx, status := sc.AcquireNextImage(Semaphore{}, Fence{})
	if idx != 0 {
		t.Fatalf("AcquireNextImage idx = %d, want 0", idx)
	}
	if status != hal.StatusSuboptimalSwapchain {
		t.Fatalf("AcquireNextImage status = %v, want StatusSuboptimalSwapchain", status)
	}
	if fsc.acquireCalls != 1 {
		t.Fatalf("acquireCalls = %d, want 1", fsc.acquireCalls)
	}
}

// TestRecreateBumpsGenerationAndRewrapsImages covers the "generation is
// the ground truth for image identity across recreations" invariant:
// Recreate must both bump Generation() and refresh Images() from
// whatever the backend now reports.
func TestRecreateBumpsGenerationAndRewrapsImages(t *testing.T) {
	d, fd := newTestDevice()
	fd.swapchainImages = []hal.Image{&fakeImage{}}

	sc, status := d.CreateSwapchain(SwapchainDescriptor{})
	if !status.OK() {
		t.Fatalf("CreateSwapchain status = %v", status)
	}
	startGen := sc.Generation()
	if len(sc.Images()) != 1 {
		t.Fatalf("Images() len = %d, want 1 before Recreate", len(sc.Images()))
	}

	backing, _ := d.swapchains.Get(sc.h)
	fsc := (*backing).(*fakeSwapchain)
	fsc.images = []hal.Image{&fakeImage{}, &fakeImage{}, &fakeImage{}}

	if status := sc.Recreate(SwapchainDescriptor{}); !status.OK() {
		t.Fatalf("Recreate status = %v", status)
	}
	if sc.Generation() != startGen+1 {
		t.Fatalf("Generation() = %d, want %d after Recreate", sc.Generation(), startGen+1)
	}
	if len(sc.Images()) != 3 {
		t.Fatalf("Images() len = %d, want 3 after Recreate", len(sc.Images()))
	}
}

// TestSwapchainIsValidReflectsBackend ties IsValid to the backend flag a
// failed present would clear.
func TestSwapchainIsValidReflectsBackend(t *testing.T) {
	d, _ := newTestDevice()
	sc, status := d.CreateSwapchain(SwapchainDescriptor{})
	if !status.OK() {
		t.Fatalf("CreateSwapchain status = %v", status)
	}
	if !sc.IsValid() {
		t.Fatal("freshly created swapchain should be valid")
	}

	backing, _ := d.swapchains.Get(sc.h)
	fsc := (*backing).(*fakeSwapchain)
	fsc.valid = false
	if sc.IsValid() {
		t.Fatal("IsValid should reflect the backend's invalidation")
	}
}
