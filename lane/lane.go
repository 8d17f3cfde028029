// Package lane provides fixed-width SIMD-style value lanes for ray-tracing
// kernels: vectors of float or integer scalars processed in lockstep, plus a
// per-lane boolean mask for branch-free selection.
//
// The lane width is chosen once at process start from the widest SIMD register
// width the CPU supports (see CurrentWidth); calling code stays width-agnostic.
// All operations are total functions with value semantics -- lane i of a
// result depends only on lane i of each operand, except for the explicitly
// named data-movement operations (Shuffle, MoveLo, InterleaveLo, ...).
//
// Basic usage:
//
//	a := lane.Load(data1)
//	b := lane.Load(data2)
//	m := lane.Less(a, b)
//	r := lane.Select(m, a, b)
//	r.Store(out)
package lane

// Floats is a constraint for floating-point lane element types.
type Floats interface {
	~float32 | ~float64
}

// Ints is a constraint for integer lane element types.
type Ints interface {
	~int32 | ~int64
}

// Lanes is a constraint for all lane element types.
type Lanes interface {
	Floats | Ints
}

// Vec is a fixed-width vector of W independent scalar lanes. W is determined
// by the dispatch layer (see MaxLanes); with AVX2 a Vec[float32] carries 8
// lanes, with AVX-512 16, and in scalar-fallback mode 4.
//
// Vec values are immutable: operations return new vectors. Create them with
// Set, Load, Of, or Zero rather than directly.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// Primarily for tests; not for performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask is a per-lane boolean companion to Vec, produced by comparisons and
// the NaN/Inf predicates and consumed by Select. On real hardware a true
// lane is all bits set and a false lane all bits clear; partial bit
// patterns are undefined, and this package never produces one.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane of the mask is true.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane of the mask is true.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of true lanes.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is true. Out-of-range lanes read false.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// And returns the lanewise conjunction of two masks.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	n := min(len(m.bits), len(o.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = m.bits[i] && o.bits[i]
	}
	return Mask[T]{bits: bits}
}

// Or returns the lanewise disjunction of two masks.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	n := min(len(m.bits), len(o.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = m.bits[i] || o.bits[i]
	}
	return Mask[T]{bits: bits}
}

// Xor returns the lanewise exclusive-or of two masks.
func (m Mask[T]) Xor(o Mask[T]) Mask[T] {
	n := min(len(m.bits), len(o.bits))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = m.bits[i] != o.bits[i]
	}
	return Mask[T]{bits: bits}
}

// Not returns the lanewise complement of the mask.
func (m Mask[T]) Not() Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = !bit
	}
	return Mask[T]{bits: bits}
}
