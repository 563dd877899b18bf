// Package types defines the stable, backend-matching vocabulary shared by
// every layer of the GAL: pixel/buffer formats, usage and aspect masks,
// pipeline state enums, and the size limits the rest of the package
// validates against.
//
// Every enum's numeric value matches its Vulkan 1.0 counterpart one-for-one
// so conversion to and from the wire types in hal/vulkan/vk is a plain cast,
// never a lookup table. Do not renumber these constants.
package types
