// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/ashura-engine/gal/hal/vulkan/vk"
	"github.com/ashura-engine/gal/types"
)

// Every GAL enum and flag type in package types is numbered to match its
// VkXxx counterpart one-for-one (DESIGN.md, types/doc.go), so the backend
// never needs a translation table between GAL and Vulkan vocabularies —
// only a numeric cast. This file is that cast layer.

func bufferUsageToVk(usage types.BufferUsage) vk.BufferUsageFlags { return vk.BufferUsageFlags(usage) }
func imageUsageToVk(usage types.ImageUsage) vk.ImageUsageFlags     { return vk.ImageUsageFlags(usage) }
func imageTypeToVk(t types.ImageType) vk.ImageType                 { return vk.ImageType(t) }
func formatToVk(f types.Format) vk.Format                          { return vk.Format(f) }
func imageAspectsToVk(a types.ImageAspects) vk.ImageAspectFlags    { return vk.ImageAspectFlags(a) }
func sampleCountToVk(s types.SampleCount) vk.SampleCountFlagBits   { return vk.SampleCountFlagBits(s) }
func imageLayoutToVk(l types.ImageLayout) vk.ImageLayout           { return vk.ImageLayout(l) }
func pipelineStageToVk(s types.PipelineStage) vk.PipelineStageFlags {
	return vk.PipelineStageFlags(s)
}
func accessMaskToVk(a types.AccessMask) vk.AccessFlags { return vk.AccessFlags(a) }
func filterToVk(f types.Filter) vk.Filter              { return vk.Filter(f) }
func addressModeToVk(m types.SamplerAddressMode) vk.SamplerAddressMode {
	return vk.SamplerAddressMode(m)
}
func mipmapModeToVk(f types.Filter) vk.SamplerMipmapMode   { return vk.SamplerMipmapMode(f) }
func borderColorToVk(c types.BorderColor) vk.BorderColor   { return vk.BorderColor(c) }
func compareOpToVk(c types.CompareOp) vk.CompareOp         { return vk.CompareOp(c) }
func blendFactorToVk(f types.BlendFactor) vk.BlendFactor   { return vk.BlendFactor(f) }
func blendOpToVk(o types.BlendOp) vk.BlendOp               { return vk.BlendOp(o) }
func colorComponentsToVk(c types.ColorComponents) vk.ColorComponentFlags {
	return vk.ColorComponentFlags(c)
}
func stencilOpToVk(o types.StencilOp) vk.StencilOp                   { return vk.StencilOp(o) }
func cullModeToVk(c types.CullMode) vk.CullModeFlags                 { return vk.CullModeFlags(c) }
func frontFaceToVk(f types.FrontFace) vk.FrontFace                   { return vk.FrontFace(f) }
func polygonModeToVk(p types.PolygonMode) vk.PolygonMode             { return vk.PolygonMode(p) }
func primitiveTopologyToVk(t types.PrimitiveTopology) vk.PrimitiveTopology {
	return vk.PrimitiveTopology(t)
}
func indexTypeToVk(t types.IndexType) vk.IndexType             { return vk.IndexType(t) }
func descriptorTypeToVk(t types.DescriptorType) vk.DescriptorType { return vk.DescriptorType(t) }
func loadOpToVk(op types.LoadOp) vk.AttachmentLoadOp           { return vk.AttachmentLoadOp(op) }
func storeOpToVk(op types.StoreOp) vk.AttachmentStoreOp        { return vk.AttachmentStoreOp(op) }
func presentModeToVk(m types.PresentMode) vk.PresentModeKHR    { return vk.PresentModeKHR(m) }
func compositeAlphaToVk(c types.CompositeAlpha) vk.CompositeAlphaFlagBitsKHR {
	return vk.CompositeAlphaFlagBitsKHR(c)
}
func colorSpaceToVk(c types.ColorSpace) vk.ColorSpaceKHR { return vk.ColorSpaceKHR(c) }

func deviceTypeFromVk(t vk.PhysicalDeviceType) types.DeviceType { return types.DeviceType(t) }

// aspectsForFormat derives the default image aspect mask for a format, used
// when a command needs a full-resource subresource range and the caller did
// not narrow it explicitly (§4.4 barrier derivation).
func aspectsForFormat(f types.Format) types.ImageAspects {
	switch f {
	case types.FormatD16Unorm, types.FormatD32Sfloat:
		return types.ImageAspectDepth
	case types.FormatS8Uint:
		return types.ImageAspectStencil
	case types.FormatD24UnormS8Uint, types.FormatD32SfloatS8Uint:
		return types.ImageAspectDepth | types.ImageAspectStencil
	default:
		return types.ImageAspectColor
	}
}

func boolToVk(b bool) vk.Bool32 {
	if b {
		return vk.True
	}
	return vk.False
}
