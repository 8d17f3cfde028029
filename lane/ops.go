package lane

import "math"

// This file provides the element-wise core: constructors, arithmetic,
// comparisons, selection, and bitwise operations. Everything here preserves
// per-lane independence.

// Load creates a vector from the first MaxLanes elements of src.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadU creates a vector from src without an alignment requirement.
// Go slices carry no alignment contract, so this is identical to Load; the
// distinct name is kept so call sites can preserve the aligned/unaligned
// distinction they carry against hardware intrinsics.
func LoadU[T Lanes](src []T) Vec[T] {
	return Load(src)
}

// Set creates a vector with all lanes set to the same value (broadcast).
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Of creates a vector from an explicit list of per-lane values. Missing
// lanes are zero; extra values beyond the lane width are dropped.
func Of[T Lanes](vals ...T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	copy(data, vals)
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	return Vec[T]{data: make([]T, n)}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// SignBit returns a vector with only the sign bit set in each lane:
// -0.0 for floats, the minimum value for signed integers.
func SignBit[T Lanes]() Vec[T] {
	var sign T
	switch any(sign).(type) {
	case float32:
		sign = any(math.Float32frombits(0x80000000)).(T)
	case float64:
		sign = any(math.Float64frombits(0x8000000000000000)).(T)
	case int32:
		sign = any(int32(math.MinInt32)).(T)
	case int64:
		sign = any(int64(math.MinInt64)).(T)
	}
	return Set(sign)
}

// GetLane extracts a single lane value. Out-of-range indices read zero.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a new vector with val placed at the given lane.
// Returns the original vector if the index is out of range.
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	n := len(v.data)
	if idx < 0 || idx >= n {
		return v
	}
	result := make([]T, n)
	copy(result, v.data)
	result[idx] = val
	return Vec[T]{data: result}
}

// Store writes a vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Add performs element-wise addition. Integer lanes wrap per Go semantics.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division. Float division follows IEEE-754
// (x/0 is Inf, 0/0 is NaN).
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// MulAdd computes a*b + c element-wise.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(a.data), len(b.data)))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual performs element-wise inequality comparison.
// Note that a NaN lane compares unequal to itself.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Less performs element-wise less-than comparison.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Greater performs element-wise greater-than comparison.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Select chooses per lane: a where mask is true, b otherwise. This is the
// primitive branch-free conditional; every other conditional lane operation
// is expressible in terms of it.
func Select[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), min(len(a.data), len(b.data)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// SelectZero returns a where mask is true, zero otherwise.
func SelectZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// ZeroSelect returns zero where mask is true, b otherwise.
func ZeroSelect[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(b.data))
	result := make([]T, n)
	for i := range n {
		if !mask.bits[i] {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskLoad loads from src only for lanes where the mask is true; the
// remaining lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	result := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore stores lanes to dst only where the mask is true; other
// destination elements are left untouched.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// And performs element-wise bitwise AND. Float lanes are combined by their
// bit patterns, which is what sign manipulation and masking need.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseAnd(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Or performs element-wise bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseOr(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Xor performs element-wise bitwise XOR.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseXor(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Not performs element-wise bitwise complement.
func Not[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = bitwiseNot(x)
	}
	return Vec[T]{data: result}
}

// AndNot computes (^a) & b element-wise.
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = bitwiseAnd(bitwiseNot(a.data[i]), b.data[i])
	}
	return Vec[T]{data: result}
}

func bitwiseAnd[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(av) & math.Float32bits(any(b).(float32)))).(T)
	case float64:
		return any(math.Float64frombits(math.Float64bits(av) & math.Float64bits(any(b).(float64)))).(T)
	case int32:
		return any(av & any(b).(int32)).(T)
	case int64:
		return any(av & any(b).(int64)).(T)
	default:
		return a
	}
}

func bitwiseOr[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(av) | math.Float32bits(any(b).(float32)))).(T)
	case float64:
		return any(math.Float64frombits(math.Float64bits(av) | math.Float64bits(any(b).(float64)))).(T)
	case int32:
		return any(av | any(b).(int32)).(T)
	case int64:
		return any(av | any(b).(int64)).(T)
	default:
		return a
	}
}

func bitwiseXor[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(av) ^ math.Float32bits(any(b).(float32)))).(T)
	case float64:
		return any(math.Float64frombits(math.Float64bits(av) ^ math.Float64bits(any(b).(float64)))).(T)
	case int32:
		return any(av ^ any(b).(int32)).(T)
	case int64:
		return any(av ^ any(b).(int64)).(T)
	default:
		return a
	}
}

func bitwiseNot[T Lanes](a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(^math.Float32bits(av))).(T)
	case float64:
		return any(math.Float64frombits(^math.Float64bits(av))).(T)
	case int32:
		return any(^av).(T)
	case int64:
		return any(^av).(T)
	default:
		return a
	}
}
