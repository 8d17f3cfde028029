package lane

// This file provides the data-movement operations: lane permutations and
// pairwise recombination. These are the named exceptions to per-lane
// independence; their main consumer is the AoS<->SoA transposition that
// feeds batched geometry kernels (see geom.SoA3).
//
// MoveLo/MoveHi/InterleaveLo/InterleaveHi follow the SSE
// movelh/movehl/unpacklo/unpackhi semantics at a lane width of 4, expressed
// over vector halves so they stay meaningful at wider emulated widths.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := range n {
		result[i] = v.data[n-1-i]
	}
	return Vec[T]{data: result}
}

// BroadcastLane broadcasts a single lane to all lanes of the vector.
// An out-of-range lane index yields the zero vector.
func BroadcastLane[T Lanes](v Vec[T], idx int) Vec[T] {
	n := len(v.data)
	if idx < 0 || idx >= n {
		return Zero[T]()
	}
	result := make([]T, n)
	for i := range result {
		result[i] = v.data[idx]
	}
	return Vec[T]{data: result}
}

func blockIndexOK(i0, i1, i2, i3 int) bool {
	return i0 >= 0 && i0 < 4 && i1 >= 0 && i1 < 4 &&
		i2 >= 0 && i2 < 4 && i3 >= 0 && i3 < 4
}

// Shuffle permutes each aligned 4-lane block of v according to the given
// lane indices (each in [0,3]). Shuffle(v, 3, 2, 1, 0) reverses each block.
// Any index outside [0,3] yields the zero vector, as in BroadcastLane.
func Shuffle[T Lanes](v Vec[T], i0, i1, i2, i3 int) Vec[T] {
	if !blockIndexOK(i0, i1, i2, i3) {
		return Zero[T]()
	}
	n := len(v.data)
	result := make([]T, n)
	for base := 0; base+4 <= n; base += 4 {
		result[base+0] = v.data[base+i0]
		result[base+1] = v.data[base+i1]
		result[base+2] = v.data[base+i2]
		result[base+3] = v.data[base+i3]
	}
	if rem := n % 4; rem != 0 {
		copy(result[n-rem:], v.data[n-rem:])
	}
	return Vec[T]{data: result}
}

// Shuffle2 is the dual-operand shuffle: within each aligned 4-lane block the
// low result pair is taken from u and the high pair from v, matching the
// _mm_shuffle_ps(u, v, ...) operand order. Any index outside [0,3] yields
// the zero vector.
func Shuffle2[T Lanes](u, v Vec[T], u0, u1, v2, v3 int) Vec[T] {
	if !blockIndexOK(u0, u1, v2, v3) {
		return Zero[T]()
	}
	n := min(len(u.data), len(v.data))
	result := make([]T, n)
	for base := 0; base+4 <= n; base += 4 {
		result[base+0] = u.data[base+u0]
		result[base+1] = u.data[base+u1]
		result[base+2] = v.data[base+v2]
		result[base+3] = v.data[base+v3]
	}
	if rem := n % 4; rem != 0 {
		copy(result[n-rem:], u.data[n-rem:])
	}
	return Vec[T]{data: result}
}

// MoveLo concatenates the lower half of u with the lower half of v.
// At width 4: [u0,u1,u2,u3],[v0,v1,v2,v3] -> [u0,u1,v0,v1].
func MoveLo[T Lanes](u, v Vec[T]) Vec[T] {
	n := min(len(u.data), len(v.data))
	half := n / 2
	result := make([]T, n)
	copy(result[:half], u.data[:half])
	copy(result[half:], v.data[:half])
	return Vec[T]{data: result}
}

// MoveHi concatenates the upper half of v with the upper half of u.
// At width 4: [u0,u1,u2,u3],[v0,v1,v2,v3] -> [v2,v3,u2,u3].
func MoveHi[T Lanes](u, v Vec[T]) Vec[T] {
	n := min(len(u.data), len(v.data))
	half := n / 2
	result := make([]T, n)
	copy(result[:half], v.data[half:n])
	copy(result[half:], u.data[half:n])
	return Vec[T]{data: result}
}

// InterleaveLo interleaves the lower halves of two vectors.
// At width 4: [u0,u1,u2,u3],[v0,v1,v2,v3] -> [u0,v0,u1,v1].
func InterleaveLo[T Lanes](u, v Vec[T]) Vec[T] {
	n := min(len(u.data), len(v.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = u.data[i]
		result[2*i+1] = v.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveHi interleaves the upper halves of two vectors.
// At width 4: [u0,u1,u2,u3],[v0,v1,v2,v3] -> [u2,v2,u3,v3].
func InterleaveHi[T Lanes](u, v Vec[T]) Vec[T] {
	n := min(len(u.data), len(v.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = u.data[half+i]
		result[2*i+1] = v.data[half+i]
	}
	return Vec[T]{data: result}
}

// Transpose4x4 transposes four 4-lane vectors in place of a 4x4 matrix,
// built from the interleave/move primitives the same way the SSE transpose
// macro is. Defined for 4-lane vectors; wider vectors apply the same
// half-recombination pattern.
func Transpose4x4[T Lanes](a, b, c, d Vec[T]) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	t0 := InterleaveLo(a, b)
	t1 := InterleaveLo(c, d)
	t2 := InterleaveHi(a, b)
	t3 := InterleaveHi(c, d)

	r0 := MoveLo(t0, t1)
	r1 := MoveHi(t1, t0)
	r2 := MoveLo(t2, t3)
	r3 := MoveHi(t3, t2)
	return r0, r1, r2, r3
}

// LoadInterleaved3 deinterleaves triplets from src into three vectors,
// converting Array-of-Structures to Structure-of-Arrays:
//
//	[x0,y0,z0, x1,y1,z1, ...] -> [x0,x1,...], [y0,y1,...], [z0,z1,...]
//
// Triplets beyond the available source (or lane width) read as zero.
func LoadInterleaved3[T Lanes](src []T) (Vec[T], Vec[T], Vec[T]) {
	n := MaxLanes[T]()
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)
	for i := range n {
		if 3*i+2 < len(src) {
			a[i] = src[3*i]
			b[i] = src[3*i+1]
			c[i] = src[3*i+2]
		}
	}
	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}
}

// StoreInterleaved3 interleaves three vectors back into AoS triplets:
//
//	[x0,x1,...], [y0,y1,...], [z0,z1,...] -> [x0,y0,z0, x1,y1,z1, ...]
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	for i := range n {
		if 3*i+2 >= len(dst) {
			return
		}
		dst[3*i] = a.data[i]
		dst[3*i+1] = b.data[i]
		dst[3*i+2] = c.data[i]
	}
}
