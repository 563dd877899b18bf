// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build !android && !js

package vulkan

import "github.com/ashura-engine/gal/hal"

// init registers the Vulkan backend with the HAL registry.
// This is called automatically on package import.
//
// The Vulkan backend builds on Windows only: the vk and memory packages'
// call wrappers carry a windows build tag. Linux and macOS have surface
// files (api_linux.go, api_darwin.go) but no call wrappers.
//   - Android (excluded via build tag - uses different loader)
//
// Note: Android requires platform-specific Vulkan loader initialization.
func init() {
	hal.RegisterBackend(Backend{})
}
