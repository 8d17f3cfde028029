package gpu

// HostTexture is a host-side texel grid carrying the same sampling
// configuration surface as the device mirror. It is the upload source for
// NewFromHost, which copies both the texels and the configuration.
type HostTexture struct {
	Width  int
	Height int
	Depth  int
	Format Format

	// Data holds Width*Height*Depth texels in the format's byte layout,
	// x-major.
	Data []byte

	AddressMode [3]AddressMode
	FilterMode  FilterMode
	ColorSpace  ColorSpace
	Normalized  bool
}

// NewHostTexture allocates a zeroed host grid with default sampling
// configuration (clamp, nearest, linear color space, normalized
// coordinates).
func NewHostTexture(width, height, depth int, format Format) *HostTexture {
	h := &HostTexture{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Format:      format,
		AddressMode: [3]AddressMode{AddressClamp, AddressClamp, AddressClamp},
		FilterMode:  FilterNearest,
		Normalized:  true,
	}
	if width > 0 && height > 0 && depth > 0 {
		h.Data = make([]byte, width*height*depth*format.BytesPerTexel())
	}
	return h
}

// TexelCount returns the number of texels in the grid.
func (h *HostTexture) TexelCount() int {
	return h.Width * h.Height * h.Depth
}
