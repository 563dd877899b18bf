// Package registry implements the generation+slot arena that backs every
// handle the GAL hands to callers (§9 design note: "typed index handles
// held in arena tables owned by the Device" replacing the source's
// typedef-struct-pointer pattern).
//
// An Arena owns a dense slice of entries. Handle.index selects a slot;
// Handle.generation must match the slot's current generation or the
// handle refers to a destroyed object and every lookup fails closed. Slots
// are only ever reused after their refcount has dropped to zero, at which
// point the generation is bumped so stale handles never alias a new
// object.
//
// Per §5, the GAL is not thread-safe by design — a single host thread owns
// the Device for the duration of a frame — so only the refcount itself is
// atomic (mirroring ref_X/unref_X being the one piece of state the source
// treats as concurrency-safe); slot storage and the free list are not
// guarded by a mutex, unlike the hub/registry the teacher built for a
// multi-goroutine WebGPU front end (see DESIGN.md).
package registry

import "sync/atomic"

// Marker is the constraint on a handle's phantom type parameter. Each
// resource kind instantiates Handle with its own distinct marker type, so
// a BufferHandle can never be passed where an ImageHandle is expected,
// even though both are backed by the same (index, generation) pair.
type Marker interface{}

// Handle identifies a slot in an Arena. The zero Handle never refers to a
// live object (generation 0 is never issued).
type Handle[M Marker] struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle[M]) IsZero() bool { return h.generation == 0 }

// entry is one arena slot.
type entry[T any] struct {
	value      T
	generation uint32
	refcount   atomic.Int32
	occupied   bool
}

// Arena stores values of type T behind handles tagged with marker M.
type Arena[T any, M Marker] struct {
	slots []entry[T]
	free  []uint32
}

// New creates an empty arena.
func New[T any, M Marker]() *Arena[T, M] {
	return &Arena[T, M]{}
}

// Insert stores value in a free slot (or grows the arena) and returns a
// handle with refcount 1, matching the factory contract in §4.2: "returns
// the handle with refcount=1".
func (a *Arena[T, M]) Insert(value T) Handle[M] {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, entry[T]{})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.value = value
	s.generation++
	s.occupied = true
	s.refcount.Store(1)

	return Handle[M]{index: idx, generation: s.generation}
}

// valid reports whether h currently refers to an occupied slot.
func (a *Arena[T, M]) valid(h Handle[M]) bool {
	if h.generation == 0 || int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	return s.occupied && s.generation == h.generation
}

// Get returns a pointer to the stored value for in-place mutation (e.g.
// updating a BufferState's access history). The pointer is invalidated by
// the next Insert that reuses this slot; never retain it past the call
// that touches it.
func (a *Arena[T, M]) Get(h Handle[M]) (*T, bool) {
	if !a.valid(h) {
		return nil, false
	}
	return &a.slots[h.index].value, true
}

// Ref increments h's refcount, implementing ref_X. Returns false if h is
// already destroyed.
func (a *Arena[T, M]) Ref(h Handle[M]) bool {
	if !a.valid(h) {
		return false
	}
	a.slots[h.index].refcount.Add(1)
	return true
}

// Unref decrements h's refcount, implementing unref_X. When the count
// reaches zero the slot is retired (its value is returned so the caller
// can tear down the backend object) and the index is pushed onto the free
// list; the next Insert that reuses it bumps its generation. Returns
// (value, true, true) on the transition to zero; (_, false, true) if the
// object is still referenced; (_, _, false) if h was already invalid.
func (a *Arena[T, M]) Unref(h Handle[M]) (value T, destroyed bool, ok bool) {
	if !a.valid(h) {
		return value, false, false
	}
	s := &a.slots[h.index]
	remaining := s.refcount.Add(-1)
	if remaining > 0 {
		return value, false, true
	}
	value = s.value
	var zero T
	s.value = zero
	s.occupied = false
	a.free = append(a.free, h.index)
	return value, true, true
}

// RefCount returns h's current refcount, or 0 if h is invalid.
func (a *Arena[T, M]) RefCount(h Handle[M]) int32 {
	if !a.valid(h) {
		return 0
	}
	return a.slots[h.index].refcount.Load()
}

// Len returns the number of live (occupied) slots.
func (a *Arena[T, M]) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			n++
		}
	}
	return n
}
