package registry

import "testing"

type widgetMarker struct{}

func (widgetMarker) marker() {}

func TestInsertAssignsRefcountOne(t *testing.T) {
	a := New[int, widgetMarker]()
	h := a.Insert(42)
	if got := a.RefCount(h); got != 1 {
		t.Fatalf("RefCount() = %d, want 1", got)
	}
	v, ok := a.Get(h)
	if !ok || *v != 42 {
		t.Fatalf("Get() = (%v, %v), want (42, true)", v, ok)
	}
}

func TestUnrefDestroysExactlyOnce(t *testing.T) {
	a := New[int, widgetMarker]()
	h := a.Insert(7)
	a.Ref(h)
	a.Ref(h) // refcount now 3

	if _, destroyed, ok := a.Unref(h); destroyed || !ok {
		t.Fatalf("first Unref: destroyed=%v ok=%v, want false true", destroyed, ok)
	}
	if _, destroyed, ok := a.Unref(h); destroyed || !ok {
		t.Fatalf("second Unref: destroyed=%v ok=%v, want false true", destroyed, ok)
	}
	v, destroyed, ok := a.Unref(h)
	if !destroyed || !ok || v != 7 {
		t.Fatalf("third Unref: v=%v destroyed=%v ok=%v, want 7 true true", v, destroyed, ok)
	}

	if _, ok := a.Get(h); ok {
		t.Fatalf("Get() after destroy should fail")
	}
	if _, _, ok := a.Unref(h); ok {
		t.Fatalf("Unref() after destroy should report ok=false, not double-destroy")
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	a := New[int, widgetMarker]()
	h1 := a.Insert(1)
	if _, destroyed, ok := a.Unref(h1); !destroyed || !ok {
		t.Fatalf("expected h1 to be destroyed")
	}

	h2 := a.Insert(2)
	if h2.index != h1.index {
		t.Fatalf("expected slot reuse: h1.index=%d h2.index=%d", h1.index, h2.index)
	}
	if h2.generation == h1.generation {
		t.Fatalf("expected generation bump on reuse, both are %d", h1.generation)
	}

	if _, ok := a.Get(h1); ok {
		t.Fatalf("stale handle h1 must not resolve after slot reuse")
	}
	v, ok := a.Get(h2)
	if !ok || *v != 2 {
		t.Fatalf("Get(h2) = (%v, %v), want (2, true)", v, ok)
	}
}

func TestLenCountsOnlyOccupiedSlots(t *testing.T) {
	a := New[int, widgetMarker]()
	h1 := a.Insert(1)
	_ = a.Insert(2)
	if got := a.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	a.Unref(h1)
	if got := a.Len(); got != 1 {
		t.Fatalf("Len() after unref = %d, want 1", got)
	}
}
