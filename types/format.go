package types

// Format identifies the layout and interpretation of buffer/image texel
// data. Values match VkFormat one-for-one.
type Format uint32

// Formats actually exercised by the resource factory and render pass
// packing rules. This is a deliberate subset of VkFormat (§6 only requires
// the enum's numbering to be backend-stable, not exhaustive); VkFormat
// values not listed here have no named constant.
const (
	FormatUndefined Format = 0

	FormatR8Unorm Format = 9
	FormatR8Snorm Format = 10
	FormatR8Uint  Format = 13
	FormatR8Sint  Format = 14

	FormatR8G8Unorm Format = 16
	FormatR8G8Uint  Format = 20

	FormatR8G8B8A8Unorm Format = 37
	FormatR8G8B8A8Snorm Format = 38
	FormatR8G8B8A8Srgb  Format = 43
	FormatB8G8R8A8Unorm Format = 44
	FormatB8G8R8A8Srgb  Format = 50

	FormatA2B10G10R10UnormPack32 Format = 64

	FormatR16Uint      Format = 74
	FormatR16Sfloat    Format = 76
	FormatR16G16Sfloat Format = 83

	FormatR16G16B16A16Sfloat Format = 97

	FormatR32Uint          Format = 98
	FormatR32Sint          Format = 99
	FormatR32Sfloat        Format = 100
	FormatR32G32Sfloat     Format = 103
	FormatR32G32B32Sfloat  Format = 106
	FormatR32G32B32A32Sfloat Format = 109

	FormatD16Unorm        Format = 124
	FormatD32Sfloat       Format = 126
	FormatS8Uint          Format = 127
	FormatD24UnormS8Uint  Format = 129
	FormatD32SfloatS8Uint Format = 130
)

// IsDepthStencil reports whether the format carries a depth and/or stencil
// aspect rather than a color aspect.
func (f Format) IsDepthStencil() bool {
	switch f {
	case FormatD16Unorm, FormatD32Sfloat, FormatS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	default:
		return false
	}
}

// HasStencil reports whether the format carries a stencil aspect.
func (f Format) HasStencil() bool {
	switch f {
	case FormatS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	default:
		return false
	}
}

// ImageType identifies the dimensionality of an image. Values match
// VkImageType.
type ImageType uint32

const (
	ImageType1D ImageType = 0
	ImageType2D ImageType = 1
	ImageType3D ImageType = 2
)

// ImageAspects identifies which planes of an image a view or barrier
// addresses. Values match VkImageAspectFlagBits.
type ImageAspects uint32

const (
	ImageAspectColor    ImageAspects = 0x1
	ImageAspectDepth    ImageAspects = 0x2
	ImageAspectStencil  ImageAspects = 0x4
	ImageAspectMetadata ImageAspects = 0x8
)

// SampleCount is the multisample count of an image. Values match
// VkSampleCountFlagBits.
type SampleCount uint32

const (
	SampleCount1  SampleCount = 0x1
	SampleCount2  SampleCount = 0x2
	SampleCount4  SampleCount = 0x4
	SampleCount8  SampleCount = 0x8
	SampleCount16 SampleCount = 0x10
	SampleCount32 SampleCount = 0x20
	SampleCount64 SampleCount = 0x40
)
