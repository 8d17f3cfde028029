package gpu

import "github.com/gogpu/wgpu/hal"

// Ref is a non-owning reference to a texture mirror: the device handles
// plus dimensions, nothing else. It is freely copyable and is the
// sanctioned way to share read-only sampling access across concurrent
// kernel invocations. A Ref must not outlive its owning Texture; there is
// no lifetime tracking.
type Ref struct {
	texture hal.Texture
	sampler hal.Sampler
	width   int
	height  int
	depth   int
}

// Valid reports whether the reference points at allocated storage.
func (r Ref) Valid() bool {
	return r.texture != nil
}

// Texture returns the raw device texture handle.
func (r Ref) Texture() hal.Texture { return r.texture }

// Sampler returns the raw sampler handle. Nil if the owner's sampler
// build failed.
func (r Ref) Sampler() hal.Sampler { return r.sampler }

// Width returns the referenced texture width in texels.
func (r Ref) Width() int { return r.width }

// Height returns the referenced texture height in texels.
func (r Ref) Height() int { return r.height }

// Depth returns the referenced texture depth in texels.
func (r Ref) Depth() int { return r.depth }
