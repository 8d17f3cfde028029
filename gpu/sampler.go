package gpu

import "github.com/gogpu/gputypes"

// AddressMode controls how texture coordinates outside [0,1] are resolved,
// configurable per axis.
type AddressMode uint8

const (
	// AddressWrap tiles the texture (fractional coordinate repeat).
	AddressWrap AddressMode = iota

	// AddressMirror tiles the texture, flipping every other repetition.
	AddressMirror

	// AddressClamp clamps coordinates to the edge texel.
	AddressClamp

	// AddressBorder resolves out-of-range reads to the border color.
	// WebGPU has no border mode; it degrades to clamp-to-edge on this
	// back-end.
	AddressBorder
)

// String returns a human-readable name for the address mode.
func (m AddressMode) String() string {
	switch m {
	case AddressWrap:
		return "Wrap"
	case AddressMirror:
		return "Mirror"
	case AddressClamp:
		return "Clamp"
	case AddressBorder:
		return "Border"
	default:
		return "Unknown"
	}
}

// ToWGPUAddressMode converts to the wgpu sampler address mode.
func (m AddressMode) ToWGPUAddressMode() gputypes.AddressMode {
	switch m {
	case AddressWrap:
		return gputypes.AddressModeRepeat
	case AddressMirror:
		return gputypes.AddressModeMirrorRepeat
	case AddressClamp, AddressBorder:
		return gputypes.AddressModeClampToEdge
	default:
		return gputypes.AddressModeClampToEdge
	}
}

// FilterMode controls texel interpolation during sampling.
type FilterMode uint8

const (
	// FilterNearest reads the nearest texel without interpolation.
	FilterNearest FilterMode = iota

	// FilterLinear interpolates between neighboring texels.
	FilterLinear
)

// String returns a human-readable name for the filter mode.
func (m FilterMode) String() string {
	switch m {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// ToWGPUFilterMode converts to the wgpu sampler filter mode.
func (m FilterMode) ToWGPUFilterMode() gputypes.FilterMode {
	switch m {
	case FilterNearest:
		return gputypes.FilterModeNearest
	case FilterLinear:
		return gputypes.FilterModeLinear
	default:
		return gputypes.FilterModeNearest
	}
}

// ColorSpace flags whether texel values are linear or display-gamma
// encoded. Sampling hardware on this back-end does not decode sRGB for
// the formats the mirror supports; the flag is carried for shaders to
// consult.
type ColorSpace uint8

const (
	// ColorSpaceLinear marks texel values as linear.
	ColorSpaceLinear ColorSpace = iota

	// ColorSpaceSRGB marks texel values as sRGB gamma encoded.
	ColorSpaceSRGB
)

// String returns a human-readable name for the color space.
func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceLinear:
		return "Linear"
	case ColorSpaceSRGB:
		return "sRGB"
	default:
		return "Unknown"
	}
}
