// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Commands holds every Vulkan function pointer the backend resolves via
// vkGetInstanceProcAddr/vkGetDeviceProcAddr. Each field is the raw entry
// point uintptr; the package's call wrappers invoke it with
// syscall.SyscallN.
type Commands struct {
	acquireNextImageKHR uintptr
	allocateCommandBuffers uintptr
	allocateDescriptorSets uintptr
	allocateMemory uintptr
	beginCommandBuffer uintptr
	bindBufferMemory uintptr
	bindImageMemory uintptr
	cmdBeginQuery uintptr
	cmdBeginRenderPass uintptr
	cmdBeginRendering uintptr
	cmdBindDescriptorSets uintptr
	cmdBindIndexBuffer uintptr
	cmdBindPipeline uintptr
	cmdBindVertexBuffers uintptr
	cmdBlitImage uintptr
	cmdClearAttachments uintptr
	cmdClearColorImage uintptr
	cmdClearDepthStencilImage uintptr
	cmdCopyBuffer uintptr
	cmdCopyBufferToImage uintptr
	cmdCopyImage uintptr
	cmdCopyImageToBuffer uintptr
	cmdCopyQueryPoolResults uintptr
	cmdDispatch uintptr
	cmdDispatchIndirect uintptr
	cmdDraw uintptr
	cmdDrawIndexed uintptr
	cmdDrawIndexedIndirect uintptr
	cmdDrawIndirect uintptr
	cmdEndQuery uintptr
	cmdEndRenderPass uintptr
	cmdEndRendering uintptr
	cmdExecuteCommands uintptr
	cmdFillBuffer uintptr
	cmdNextSubpass uintptr
	cmdPipelineBarrier uintptr
	cmdPipelineBarrier2 uintptr
	cmdPushConstants uintptr
	cmdResetEvent uintptr
	cmdResetQueryPool uintptr
	cmdResolveImage uintptr
	cmdSetBlendConstants uintptr
	cmdSetDepthBias uintptr
	cmdSetDepthBounds uintptr
	cmdSetEvent uintptr
	cmdSetLineWidth uintptr
	cmdSetScissor uintptr
	cmdSetStencilCompareMask uintptr
	cmdSetStencilReference uintptr
	cmdSetStencilWriteMask uintptr
	cmdSetViewport uintptr
	cmdUpdateBuffer uintptr
	cmdWaitEvents uintptr
	cmdWriteTimestamp uintptr
	createBuffer uintptr
	createBufferView uintptr
	createCommandPool uintptr
	createComputePipelines uintptr
	createDescriptorPool uintptr
	createDescriptorSetLayout uintptr
	createDevice uintptr
	createEvent uintptr
	createFence uintptr
	createFramebuffer uintptr
	createGraphicsPipelines uintptr
	createImage uintptr
	createImageView uintptr
	createInstance uintptr
	createPipelineCache uintptr
	createPipelineLayout uintptr
	createQueryPool uintptr
	createRenderPass uintptr
	createSampler uintptr
	createSemaphore uintptr
	createShaderModule uintptr
	createSwapchainKHR uintptr
	createWin32SurfaceKHR uintptr
	createXlibSurfaceKHR uintptr
	createWaylandSurfaceKHR uintptr
	createMetalSurfaceEXT uintptr
	createDebugUtilsMessengerEXT uintptr
	destroyDebugUtilsMessengerEXT uintptr
	setDebugUtilsObjectNameEXT uintptr
	cmdBeginDebugUtilsLabelEXT uintptr
	cmdEndDebugUtilsLabelEXT uintptr
	destroyBuffer uintptr
	destroyBufferView uintptr
	destroyCommandPool uintptr
	destroyDescriptorPool uintptr
	destroyDescriptorSetLayout uintptr
	destroyDevice uintptr
	destroyEvent uintptr
	destroyFence uintptr
	destroyFramebuffer uintptr
	destroyImage uintptr
	destroyImageView uintptr
	destroyInstance uintptr
	destroyPipeline uintptr
	destroyPipelineCache uintptr
	destroyPipelineLayout uintptr
	destroyQueryPool uintptr
	destroyRenderPass uintptr
	destroySampler uintptr
	destroySemaphore uintptr
	destroyShaderModule uintptr
	destroySurfaceKHR uintptr
	destroySwapchainKHR uintptr
	deviceWaitIdle uintptr
	endCommandBuffer uintptr
	enumerateDeviceExtensionProperties uintptr
	enumerateDeviceLayerProperties uintptr
	enumerateInstanceExtensionProperties uintptr
	enumerateInstanceLayerProperties uintptr
	enumerateInstanceVersion uintptr
	enumeratePhysicalDevices uintptr
	flushMappedMemoryRanges uintptr
	freeCommandBuffers uintptr
	freeDescriptorSets uintptr
	freeMemory uintptr
	getBufferMemoryRequirements uintptr
	getDeviceMemoryCommitment uintptr
	getDeviceProcAddr uintptr
	getDeviceQueue uintptr
	getEventStatus uintptr
	getFenceStatus uintptr
	getImageMemoryRequirements uintptr
	getImageSparseMemoryRequirements uintptr
	getImageSubresourceLayout uintptr
	getPhysicalDeviceFeatures uintptr
	getPhysicalDeviceFeatures2 uintptr
	getPhysicalDeviceFormatProperties uintptr
	getPhysicalDeviceImageFormatProperties uintptr
	getPhysicalDeviceMemoryProperties uintptr
	getPhysicalDeviceProperties uintptr
	getPhysicalDeviceProperties2 uintptr
	getPhysicalDeviceQueueFamilyProperties uintptr
	getPhysicalDeviceSparseImageFormatProperties uintptr
	getPhysicalDeviceSurfaceCapabilitiesKHR uintptr
	getPhysicalDeviceSurfaceFormatsKHR uintptr
	getPhysicalDeviceSurfacePresentModesKHR uintptr
	getPhysicalDeviceSurfaceSupportKHR uintptr
	getPipelineCacheData uintptr
	getQueryPoolResults uintptr
	getRenderAreaGranularity uintptr
	getSemaphoreCounterValue uintptr
	getSwapchainImagesKHR uintptr
	invalidateMappedMemoryRanges uintptr
	mapMemory uintptr
	mergePipelineCaches uintptr
	queueBindSparse uintptr
	queuePresentKHR uintptr
	queueSubmit uintptr
	queueWaitIdle uintptr
	resetCommandBuffer uintptr
	resetCommandPool uintptr
	resetDescriptorPool uintptr
	resetEvent uintptr
	resetFences uintptr
	resetQueryPool uintptr
	setEvent uintptr
	signalSemaphore uintptr
	unmapMemory uintptr
	updateDescriptorSets uintptr
	waitForFences uintptr
	waitSemaphores uintptr
}
