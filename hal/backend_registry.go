// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "sync"

// backendMu guards backendImpl. A Backend registers itself from its
// package init (§1 Non-goals: exactly one Backend value, Vulkan, but the
// registration indirection keeps hal/vulkan's init from reaching into hal
// internals directly).
var (
	backendMu   sync.Mutex
	backendImpl Backend
)

// RegisterBackend installs b as the active Backend. Called from the
// Vulkan backend's package init; a second call overwrites the first,
// which only matters in tests that construct more than one backend value.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backendImpl = b
}

// GetBackend returns the registered Backend, or nil if no backend package
// has been imported for its init side effect.
func GetBackend() Backend {
	backendMu.Lock()
	defer backendMu.Unlock()
	return backendImpl
}
