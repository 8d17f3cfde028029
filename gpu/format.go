// Package gpu mirrors host texel data into device-resident textures with
// configured sampling semantics. A Texture owns its device storage and
// sampler; kernels share read access through the non-owning Ref.
package gpu

import (
	"fmt"

	types "github.com/gogpu/gputypes"
)

// Format is the texel format of a texture mirror.
type Format uint8

const (
	// FormatR8Unorm is single-channel 8-bit normalized, used for masks
	// and grayscale data.
	FormatR8Unorm Format = iota

	// FormatRGBA8Unorm is the standard RGBA format with 8 bits per channel.
	FormatRGBA8Unorm

	// FormatR32Float is single-channel 32-bit float, used for scalar
	// fields (density volumes, heightmaps).
	FormatR32Float

	// FormatRGBA32Float is four-channel 32-bit float, used for HDR data.
	FormatRGBA32Float
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatR8Unorm:
		return "R8Unorm"
	case FormatRGBA8Unorm:
		return "RGBA8Unorm"
	case FormatR32Float:
		return "R32Float"
	case FormatRGBA32Float:
		return "RGBA32Float"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// BytesPerTexel returns the storage size of one texel.
func (f Format) BytesPerTexel() int {
	switch f {
	case FormatR8Unorm:
		return 1
	case FormatRGBA8Unorm, FormatR32Float:
		return 4
	case FormatRGBA32Float:
		return 16
	default:
		return 4
	}
}

// ToWGPUFormat converts to the wgpu texture format.
func (f Format) ToWGPUFormat() types.TextureFormat {
	switch f {
	case FormatR8Unorm:
		return types.TextureFormatR8Unorm
	case FormatRGBA8Unorm:
		return types.TextureFormatRGBA8Unorm
	case FormatR32Float:
		return types.TextureFormatR32Float
	case FormatRGBA32Float:
		return types.TextureFormatRGBA32Float
	default:
		return types.TextureFormatRGBA8Unorm
	}
}
