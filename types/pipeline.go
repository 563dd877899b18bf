package types

// Filter selects the texel filtering mode. Values match VkFilter.
type Filter uint32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

// SamplerAddressMode selects how out-of-range texture coordinates are
// resolved. Values match VkSamplerAddressMode.
type SamplerAddressMode uint32

const (
	AddressModeRepeat            SamplerAddressMode = 0
	AddressModeMirroredRepeat    SamplerAddressMode = 1
	AddressModeClampToEdge       SamplerAddressMode = 2
	AddressModeClampToBorder     SamplerAddressMode = 3
	AddressModeMirrorClampToEdge SamplerAddressMode = 4
)

// BorderColor selects a sampler's border color. Values match
// VkBorderColor.
type BorderColor uint32

const (
	BorderColorFloatTransparentBlack BorderColor = 0
	BorderColorIntTransparentBlack   BorderColor = 1
	BorderColorFloatOpaqueBlack      BorderColor = 2
	BorderColorIntOpaqueBlack        BorderColor = 3
	BorderColorFloatOpaqueWhite      BorderColor = 4
	BorderColorIntOpaqueWhite        BorderColor = 5
)

// CompareOp selects a depth/stencil/sampler comparison function. Values
// match VkCompareOp.
type CompareOp uint32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

// BlendFactor selects a source/destination blend factor. Values match
// VkBlendFactor.
type BlendFactor uint32

const (
	BlendFactorZero                  BlendFactor = 0
	BlendFactorOne                   BlendFactor = 1
	BlendFactorSrcColor              BlendFactor = 2
	BlendFactorOneMinusSrcColor      BlendFactor = 3
	BlendFactorDstColor              BlendFactor = 4
	BlendFactorOneMinusDstColor      BlendFactor = 5
	BlendFactorSrcAlpha              BlendFactor = 6
	BlendFactorOneMinusSrcAlpha      BlendFactor = 7
	BlendFactorDstAlpha              BlendFactor = 8
	BlendFactorOneMinusDstAlpha      BlendFactor = 9
	BlendFactorConstantColor         BlendFactor = 10
	BlendFactorOneMinusConstantColor BlendFactor = 11
	BlendFactorConstantAlpha         BlendFactor = 12
	BlendFactorOneMinusConstantAlpha BlendFactor = 13
	BlendFactorSrcAlphaSaturate      BlendFactor = 14
)

// BlendOp selects the blend combine operator. Values match VkBlendOp.
type BlendOp uint32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

// ColorComponents is a write mask over the four color channels. Values
// match VkColorComponentFlagBits.
type ColorComponents uint32

const (
	ColorComponentR ColorComponents = 0x1
	ColorComponentG ColorComponents = 0x2
	ColorComponentB ColorComponents = 0x4
	ColorComponentA ColorComponents = 0x8
)

// StencilOp selects a stencil test action. Values match VkStencilOp.
type StencilOp uint32

const (
	StencilOpKeep              StencilOp = 0
	StencilOpZero              StencilOp = 1
	StencilOpReplace           StencilOp = 2
	StencilOpIncrementAndClamp StencilOp = 3
	StencilOpDecrementAndClamp StencilOp = 4
	StencilOpInvert            StencilOp = 5
	StencilOpIncrementAndWrap  StencilOp = 6
	StencilOpDecrementAndWrap  StencilOp = 7
)

// CullMode selects which triangle faces are culled. Values match
// VkCullModeFlagBits.
type CullMode uint32

const (
	CullModeNone         CullMode = 0x0
	CullModeFront        CullMode = 0x1
	CullModeBack         CullMode = 0x2
	CullModeFrontAndBack CullMode = 0x3
)

// FrontFace selects the winding order considered front-facing. Values
// match VkFrontFace.
type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

// PolygonMode selects the rasterizer fill mode. Values match
// VkPolygonMode.
type PolygonMode uint32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

// PrimitiveTopology selects how vertices assemble into primitives. Values
// match VkPrimitiveTopology.
type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
	PrimitiveTopologyTriangleFan   PrimitiveTopology = 5
)

// IndexType selects the index buffer element width. Values match
// VkIndexType.
type IndexType uint32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

// DescriptorType identifies a descriptor binding's resource kind. Values
// match VkDescriptorType.
type DescriptorType uint32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

// LoadOp selects an attachment's load behavior at render pass begin.
// Values match VkAttachmentLoadOp.
type LoadOp uint32

const (
	LoadOpLoad     LoadOp = 0
	LoadOpClear    LoadOp = 1
	LoadOpDontCare LoadOp = 2
)

// StoreOp selects an attachment's store behavior at render pass end.
// Values match VkAttachmentStoreOp.
type StoreOp uint32

const (
	StoreOpStore    StoreOp = 0
	StoreOpDontCare StoreOp = 1
)

// ComponentSwizzle remaps a view's color channels. Values match
// VkComponentSwizzle.
type ComponentSwizzle uint32

const (
	ComponentSwizzleIdentity ComponentSwizzle = 0
	ComponentSwizzleZero     ComponentSwizzle = 1
	ComponentSwizzleOne      ComponentSwizzle = 2
	ComponentSwizzleR        ComponentSwizzle = 3
	ComponentSwizzleG        ComponentSwizzle = 4
	ComponentSwizzleB        ComponentSwizzle = 5
	ComponentSwizzleA        ComponentSwizzle = 6
)

// PresentMode selects the swapchain presentation engine behavior. Values
// match VkPresentModeKHR.
type PresentMode uint32

const (
	PresentModeImmediate   PresentMode = 0
	PresentModeMailbox     PresentMode = 1
	PresentModeFIFO        PresentMode = 2
	PresentModeFIFORelaxed PresentMode = 3
)

// CompositeAlpha selects how the surface composites against other windows.
// Values match VkCompositeAlphaFlagBitsKHR.
type CompositeAlpha uint32

const (
	CompositeAlphaOpaque         CompositeAlpha = 0x1
	CompositeAlphaPreMultiplied  CompositeAlpha = 0x2
	CompositeAlphaPostMultiplied CompositeAlpha = 0x4
	CompositeAlphaInherit        CompositeAlpha = 0x8
)

// ColorSpace selects a swapchain's color space. Values match
// VkColorSpaceKHR.
type ColorSpace uint32

const (
	ColorSpaceSRGBNonlinear ColorSpace = 0
)
