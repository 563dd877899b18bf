// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gal is a reference-counted, handle-based graphics abstraction
// layer over a single Vulkan device. It owns resource lifetime (buffers,
// images, views, samplers, shaders, render passes, pipelines, descriptor
// heaps), derives synchronization barriers from each resource's access
// history, and drives a fixed-size ring of frame-in-flight slots.
//
// Every resource is a small value wrapping a generation-checked handle
// (internal/registry); copying a handle is cheap and safe, and a stale
// handle fails closed rather than aliasing a reused backend object. The
// package never creates platform surfaces or compiles shaders — callers
// hand in a platform Surface and pre-compiled SPIR-V.
//
// The only backend is Vulkan (hal/vulkan); hal's interfaces exist to keep
// reference counting, synchronization and descriptor-group bookkeeping
// decoupled from raw Vulkan calls, not to support swapping implementations.
//
// # Thread safety
//
// A Device and everything created from it is owned by a single host
// thread for the duration of a frame (§5): only handle refcounts are
// atomic. Do not share a Device across goroutines without external
// synchronization.
package gal
