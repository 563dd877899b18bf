package types

// PipelineStage identifies a point in the logical graphics/compute
// pipeline for barrier scheduling. Values match VkPipelineStageFlagBits.
type PipelineStage uint32

const (
	PipelineStageTopOfPipe          PipelineStage = 0x1
	PipelineStageDrawIndirect       PipelineStage = 0x2
	PipelineStageVertexInput        PipelineStage = 0x4
	PipelineStageVertexShader       PipelineStage = 0x8
	PipelineStageFragmentShader     PipelineStage = 0x80
	PipelineStageEarlyFragmentTests PipelineStage = 0x100
	PipelineStageLateFragmentTests  PipelineStage = 0x200
	PipelineStageColorAttachmentOut PipelineStage = 0x400
	PipelineStageComputeShader      PipelineStage = 0x800
	PipelineStageTransfer           PipelineStage = 0x1000
	PipelineStageBottomOfPipe       PipelineStage = 0x2000
	PipelineStageHost               PipelineStage = 0x4000
	PipelineStageAllGraphics        PipelineStage = 0x8000
	PipelineStageAllCommands        PipelineStage = 0x10000
)

// AccessMask identifies the kind of memory access a command performs.
// Values match VkAccessFlagBits.
type AccessMask uint32

const (
	AccessIndirectCommandRead       AccessMask = 0x1
	AccessIndexRead                 AccessMask = 0x2
	AccessVertexAttributeRead       AccessMask = 0x4
	AccessUniformRead               AccessMask = 0x8
	AccessInputAttachmentRead       AccessMask = 0x10
	AccessShaderRead                AccessMask = 0x20
	AccessShaderWrite               AccessMask = 0x40
	AccessColorAttachmentRead       AccessMask = 0x80
	AccessColorAttachmentWrite      AccessMask = 0x100
	AccessDepthStencilAttachmentRead  AccessMask = 0x200
	AccessDepthStencilAttachmentWrite AccessMask = 0x400
	AccessTransferRead              AccessMask = 0x800
	AccessTransferWrite             AccessMask = 0x1000
	AccessHostRead                  AccessMask = 0x2000
	AccessHostWrite                 AccessMask = 0x4000
	AccessMemoryRead                AccessMask = 0x8000
	AccessMemoryWrite               AccessMask = 0x10000
)

// writeMask is every AccessMask bit the sync state machine in §4.4 treats
// as a write for the purpose of classifying an incoming access.
const writeMask = AccessShaderWrite | AccessColorAttachmentWrite |
	AccessDepthStencilAttachmentWrite | AccessTransferWrite |
	AccessHostWrite | AccessMemoryWrite

// IsWrite reports whether any bit of m is a write access.
func (m AccessMask) IsWrite() bool { return m&writeMask != 0 }

// ImageLayout identifies an image's current layout for barrier and
// attachment purposes. Values match VkImageLayout.
type ImageLayout uint32

const (
	ImageLayoutUndefined                    ImageLayout = 0
	ImageLayoutGeneral                      ImageLayout = 1
	ImageLayoutColorAttachmentOptimal       ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
)
