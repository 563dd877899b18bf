// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hal defines the backend-neutral contracts the GAL's public API
// (package gal) is built on: resource interfaces, create-info descriptors,
// the command encoder surface, the descriptor heap surface, and the
// Status error taxonomy (§7). Exactly one implementation exists,
// hal/vulkan — the interfaces exist to keep domain logic (reference
// counting, synchronization, descriptor-group lifecycle) decoupled from
// raw Vulkan calls, not to support swapping backends.
package hal
