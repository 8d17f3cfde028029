package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

// Texture mirror errors. Constructors and mutators return these wrapped
// with context; a caller may also deliberately ignore them, in which case
// the texture is left in a detectably-invalid but inert state.
var (
	// ErrAllocFailed is returned when device storage allocation fails.
	ErrAllocFailed = errors.New("gpu: texture allocation failed")

	// ErrUploadFailed is returned when texel upload cannot proceed.
	ErrUploadFailed = errors.New("gpu: texture upload failed")

	// ErrSamplerFailed is returned when sampler construction fails.
	ErrSamplerFailed = errors.New("gpu: sampler build failed")

	// ErrSizeMismatch is returned when upload data does not match the
	// texture extent.
	ErrSizeMismatch = errors.New("gpu: data size does not match texture")
)

// textureUsage is the fixed usage of every mirror: populated once by
// upload, then bound read-only by sampling kernels.
const textureUsage = types.TextureUsageCopyDst | types.TextureUsageTextureBinding

// Texture owns a device-resident copy of a texel grid plus its sampler.
// It is a single-owner resource: hand it around by pointer and never
// duplicate ownership — Ref is the sanctioned way to share read access
// across concurrent kernel invocations.
//
// A zero-sized request (any dimension 0) produces a permanently invalid,
// inert object rather than an error, so optional textures can be declared
// without branching at call sites.
type Texture struct {
	device hal.Device
	queue  hal.Queue

	tex     hal.Texture
	sampler hal.Sampler

	width  int
	height int
	depth  int
	dim    types.TextureDimension
	format Format

	addressMode [3]AddressMode
	filterMode  FilterMode
	colorSpace  ColorSpace
	normalized  bool

	// samplerErr records a failed sampler build. Valid() deliberately
	// reports storage only; this asymmetry is part of the contract.
	samplerErr error
}

// New1D allocates an uninitialized 1-D mirror of the given width.
func New1D(device hal.Device, queue hal.Queue, width int, format Format) (*Texture, error) {
	return newTexture(device, queue, width, 1, 1, types.TextureDimension1D, format)
}

// New2D allocates an uninitialized 2-D mirror.
func New2D(device hal.Device, queue hal.Queue, width, height int, format Format) (*Texture, error) {
	return newTexture(device, queue, width, height, 1, types.TextureDimension2D, format)
}

// New3D allocates an uninitialized 3-D mirror.
func New3D(device hal.Device, queue hal.Queue, width, height, depth int, format Format) (*Texture, error) {
	return newTexture(device, queue, width, height, depth, types.TextureDimension3D, format)
}

func newTexture(device hal.Device, queue hal.Queue, w, h, d int, dim types.TextureDimension, format Format) (*Texture, error) {
	t := &Texture{
		device:      device,
		queue:       queue,
		width:       w,
		height:      h,
		depth:       d,
		dim:         dim,
		format:      format,
		addressMode: [3]AddressMode{AddressClamp, AddressClamp, AddressClamp},
		filterMode:  FilterNearest,
		normalized:  true,
	}

	// Zero-sized: permanently invalid, no device interaction.
	if w <= 0 || h <= 0 || d <= 0 {
		return t, nil
	}

	if err := t.allocate(); err != nil {
		return t, err
	}
	if err := t.buildSampler(); err != nil {
		return t, err
	}
	return t, nil
}

// NewFromData allocates a mirror, uploads data, and builds the sampler in
// one step. The data length must match the extent for the format.
func NewFromData(device hal.Device, queue hal.Queue, width, height, depth int, format Format, data []byte) (*Texture, error) {
	dim := types.TextureDimension3D
	switch {
	case height == 1 && depth == 1:
		dim = types.TextureDimension1D
	case depth == 1:
		dim = types.TextureDimension2D
	}
	t, err := newTexture(device, queue, width, height, depth, dim, format)
	if err != nil || !t.Valid() {
		return t, err
	}
	if err := t.Reset(data); err != nil {
		return t, err
	}
	return t, nil
}

// NewFromHost mirrors a host texture, copying its texels and sampling
// configuration.
func NewFromHost(device hal.Device, queue hal.Queue, host *HostTexture) (*Texture, error) {
	t, err := newTexture(device, queue, host.Width, host.Height, host.Depth, dimensionFor(host), host.Format)
	t.addressMode = host.AddressMode
	t.filterMode = host.FilterMode
	t.colorSpace = host.ColorSpace
	t.normalized = host.Normalized
	if err != nil || !t.Valid() {
		return t, err
	}
	if err := t.buildSampler(); err != nil {
		return t, err
	}
	if len(host.Data) > 0 {
		if err := t.upload(host.Data); err != nil {
			return t, err
		}
	}
	return t, nil
}

func dimensionFor(host *HostTexture) types.TextureDimension {
	switch {
	case host.Height == 1 && host.Depth == 1:
		return types.TextureDimension1D
	case host.Depth == 1:
		return types.TextureDimension2D
	default:
		return types.TextureDimension3D
	}
}

func (t *Texture) allocate() error {
	tex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label: "raykit_texture",
		Size: hal.Extent3D{
			Width:              uint32(t.width),
			Height:             uint32(t.height),
			DepthOrArrayLayers: uint32(t.depth),
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     t.dim,
		Format:        t.format.ToWGPUFormat(),
		Usage:         textureUsage,
	})
	if err != nil {
		return fmt.Errorf("%w: %dx%dx%d %s: %w", ErrAllocFailed, t.width, t.height, t.depth, t.format, err)
	}
	t.tex = tex
	return nil
}

// buildSampler rebuilds the sampler from the current configuration. The
// previous sampler, if any, is destroyed first.
func (t *Texture) buildSampler() error {
	if t.sampler != nil {
		t.device.DestroySampler(t.sampler)
		t.sampler = nil
	}
	s, err := t.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "raykit_sampler",
		AddressModeU: t.addressMode[0].ToWGPUAddressMode(),
		AddressModeV: t.addressMode[1].ToWGPUAddressMode(),
		AddressModeW: t.addressMode[2].ToWGPUAddressMode(),
		MagFilter:    t.filterMode.ToWGPUFilterMode(),
		MinFilter:    t.filterMode.ToWGPUFilterMode(),
		MipmapFilter: t.filterMode.ToWGPUFilterMode(),
	})
	if err != nil {
		t.samplerErr = fmt.Errorf("%w: %w", ErrSamplerFailed, err)
		return t.samplerErr
	}
	t.sampler = s
	t.samplerErr = nil
	return nil
}

func (t *Texture) upload(data []byte) error {
	want := t.width * t.height * t.depth * t.format.BytesPerTexel()
	if len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(data), want)
	}
	if t.queue == nil {
		return fmt.Errorf("%w: no queue", ErrUploadFailed)
	}
	t.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: 0,
			Origin:   hal.Origin3D{},
			Aspect:   types.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(t.width * t.format.BytesPerTexel()),
			RowsPerImage: uint32(t.height),
		},
		&hal.Extent3D{
			Width:              uint32(t.width),
			Height:             uint32(t.height),
			DepthOrArrayLayers: uint32(t.depth),
		},
	)
	return nil
}

// Valid reports whether device storage is allocated. It does not account
// for sampler state; a storage-allocated-but-sampler-failed texture still
// reports valid. Check SamplerErr for the sampler side.
func (t *Texture) Valid() bool {
	return t.tex != nil
}

// SamplerErr returns the error from the most recent sampler build, or nil.
func (t *Texture) SamplerErr() error {
	return t.samplerErr
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Depth returns the texture depth in texels.
func (t *Texture) Depth() int { return t.depth }

// Format returns the texel format.
func (t *Texture) Format() Format { return t.format }

// Resize reallocates device storage for the new extent. Old contents are
// dropped and not re-uploaded; follow with Reset to repopulate. Resizing
// to a zero extent releases storage and leaves the texture invalid.
func (t *Texture) Resize(width, height, depth int) error {
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
	t.width, t.height, t.depth = width, height, depth
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil
	}
	return t.allocate()
}

// Reset uploads new texel data and rebuilds the sampler, so the current
// sampling configuration takes effect on the next read. The data length
// must match the extent for the format.
func (t *Texture) Reset(data []byte) error {
	if !t.Valid() {
		return fmt.Errorf("%w: invalid texture", ErrUploadFailed)
	}
	if err := t.upload(data); err != nil {
		return err
	}
	return t.buildSampler()
}

// ResetFloat32 uploads float texel data, converting element-wise to the
// texture's byte layout. Only valid for the float formats.
func (t *Texture) ResetFloat32(data []float32) error {
	if t.format != FormatR32Float && t.format != FormatRGBA32Float {
		return fmt.Errorf("%w: float upload to %s texture", ErrUploadFailed, t.format)
	}
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return t.Reset(buf)
}

// SetAddressMode sets the address mode of one axis and rebuilds the
// sampler.
func (t *Texture) SetAddressMode(axis int, mode AddressMode) error {
	if axis < 0 || axis > 2 {
		return fmt.Errorf("%w: axis %d out of range", ErrSamplerFailed, axis)
	}
	t.addressMode[axis] = mode
	return t.rebuildIfValid()
}

// SetAddressModes sets the same address mode on all three axes and
// rebuilds the sampler.
func (t *Texture) SetAddressModes(mode AddressMode) error {
	t.addressMode = [3]AddressMode{mode, mode, mode}
	return t.rebuildIfValid()
}

// SetFilterMode sets the filter mode and rebuilds the sampler.
func (t *Texture) SetFilterMode(mode FilterMode) error {
	t.filterMode = mode
	return t.rebuildIfValid()
}

// SetColorSpace sets the color space flag and rebuilds the sampler.
func (t *Texture) SetColorSpace(cs ColorSpace) error {
	t.colorSpace = cs
	return t.rebuildIfValid()
}

// SetNormalizedCoords sets whether sampling coordinates are normalized to
// [0,1] and rebuilds the sampler.
func (t *Texture) SetNormalizedCoords(normalized bool) error {
	t.normalized = normalized
	return t.rebuildIfValid()
}

func (t *Texture) rebuildIfValid() error {
	if !t.Valid() {
		return nil
	}
	return t.buildSampler()
}

// AddressMode returns the address mode of one axis.
func (t *Texture) AddressMode(axis int) AddressMode {
	if axis < 0 || axis > 2 {
		return AddressClamp
	}
	return t.addressMode[axis]
}

// FilterMode returns the filter mode.
func (t *Texture) FilterMode() FilterMode { return t.filterMode }

// ColorSpace returns the color space flag.
func (t *Texture) ColorSpace() ColorSpace { return t.colorSpace }

// NormalizedCoords reports whether sampling coordinates are normalized.
func (t *Texture) NormalizedCoords() bool { return t.normalized }

// Ref returns a non-owning reference for use inside kernels. The
// reference copies only handles and dimensions; it dangles if the owning
// texture is closed, resized, or reset — the caller keeps the owner alive
// for as long as any reference is in flight.
func (t *Texture) Ref() Ref {
	return Ref{
		texture: t.tex,
		sampler: t.sampler,
		width:   t.width,
		height:  t.height,
		depth:   t.depth,
	}
}

// Close releases the device texture and sampler. The texture is invalid
// afterwards; Close is idempotent.
func (t *Texture) Close() {
	if t.sampler != nil {
		t.device.DestroySampler(t.sampler)
		t.sampler = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

// String returns a short description of the texture.
func (t *Texture) String() string {
	status := "invalid"
	if t.Valid() {
		status = "valid"
	}
	return fmt.Sprintf("Texture[%dx%dx%d %s %s]", t.width, t.height, t.depth, t.format, status)
}
