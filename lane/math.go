package lane

import "math"

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Saturate clamps each lane to [0, 1].
func Saturate[T Floats](v Vec[T]) Vec[T] {
	return Max(Zero[T](), Min(v, Set(T(1))))
}

// Abs clears the sign bit of each lane. For floats this is a pure
// bit operation, so Abs(-0.0) is +0.0 and NaN payloads are preserved.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		switch av := any(x).(type) {
		case float32:
			result[i] = any(math.Float32frombits(math.Float32bits(av) &^ (1 << 31))).(T)
		case float64:
			result[i] = any(math.Float64frombits(math.Float64bits(av) &^ (1 << 63))).(T)
		case int32:
			if av < 0 {
				result[i] = any(-av).(T)
			} else {
				result[i] = x
			}
		case int64:
			if av < 0 {
				result[i] = any(-av).(T)
			} else {
				result[i] = x
			}
		}
	}
	return Vec[T]{data: result}
}

// Round rounds each lane to the nearest integer, ties to even
// (the IEEE 754 default mode).
func Round[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.RoundToEven(float64(x)))
	}
	return Vec[T]{data: result}
}

// Ceil rounds each lane toward positive infinity.
func Ceil[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Ceil(float64(x)))
	}
	return Vec[T]{data: result}
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Floor(float64(x)))
	}
	return Vec[T]{data: result}
}

// Trunc truncates each lane toward zero.
func Trunc[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Trunc(float64(x)))
	}
	return Vec[T]{data: result}
}

// Sqrt computes the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Sqrt(float64(x)))
	}
	return Vec[T]{data: result}
}

// RoundBits rounds float32 lanes to nearest (ties to even) using the
// magic-number algorithm ISAs without a rounding instruction use: adding
// and subtracting a sign-matched 2^23 forces the mantissa to integer
// precision. Agrees with Round for |v| < 2^23.
func RoundBits(v Vec[float32]) Vec[float32] {
	bits := ReinterpretAsInt32(v)
	// Sign bits of v, OR'd onto the 2^23 magic number.
	sign := And(bits, Set[int32](int32(-1<<31)))
	m := ReinterpretAsFloat32(Or(sign, Set[int32](0x4B000000)))
	return Sub(Add(v, m), m)
}

// CeilBits rounds float32 lanes toward +Inf without a native rounding
// instruction: truncate via the int round trip, then add 1 where
// truncation landed below v. The correction is branch-free: the all-ones
// compare mask converts to -1.0, which is subtracted.
func CeilBits(v Vec[float32]) Vec[float32] {
	i := ConvertToFloat32(ConvertToInt32(v))
	t := Less(i, v)
	d := maskToFloat32(t) // 0.0 or -1.0 per lane
	return Sub(i, d)
}

// FloorBits rounds float32 lanes toward -Inf; the mirror of CeilBits.
func FloorBits(v Vec[float32]) Vec[float32] {
	i := ConvertToFloat32(ConvertToInt32(v))
	t := Greater(i, v)
	d := maskToFloat32(t)
	return Add(i, d)
}

// maskToFloat32 is the int-conversion of a comparison mask: an all-ones
// lane reads as the integer -1, hence -1.0 after conversion.
func maskToFloat32(m Mask[float32]) Vec[float32] {
	result := make([]float32, len(m.bits))
	for i, bit := range m.bits {
		if bit {
			result[i] = -1
		}
	}
	return Vec[float32]{data: result}
}

// ApproxRcp returns a fast reciprocal approximation of each float32 lane,
// standing in for the hardware estimate instruction (~12 bit precision).
// Refine with RcpN.
func ApproxRcp(v Vec[float32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		// Exponent-negation seed; relative error under 5%.
		result[i] = math.Float32frombits(0x7EF311C2 - math.Float32bits(x))
	}
	return Vec[float32]{data: result}
}

// ApproxRSqrt returns a fast reciprocal square root approximation of each
// float32 lane, standing in for the hardware estimate instruction.
// Refine with RSqrtN.
func ApproxRSqrt(v Vec[float32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float32frombits(0x5F3759DF - math.Float32bits(x)>>1)
	}
	return Vec[float32]{data: result}
}

// RcpN computes an approximate reciprocal refined by steps Newton-Raphson
// iterations. Each step applies x1 = x0*(2 - v*x0); steps == 0 returns the
// raw approximation. Precision roughly doubles per step.
func RcpN(v Vec[float32], steps int) Vec[float32] {
	x := ApproxRcp(v)
	two := Set[float32](2)
	for range steps {
		x = Mul(x, Sub(two, Mul(v, x)))
	}
	return x
}

// RSqrtN computes an approximate reciprocal square root refined by steps
// Newton-Raphson iterations. Each step applies x1 = x0*0.5*(3 - v*x0*x0);
// steps == 0 returns the raw approximation.
func RSqrtN(v Vec[float32], steps int) Vec[float32] {
	x := ApproxRSqrt(v)
	three := Set[float32](3)
	half := Set[float32](0.5)
	for range steps {
		x = Mul(Mul(x, half), Sub(three, Mul(v, Mul(x, x))))
	}
	return x
}

// Rcp computes an approximate reciprocal with one refinement step.
func Rcp(v Vec[float32]) Vec[float32] {
	return RcpN(v, 1)
}

// RSqrt computes an approximate reciprocal square root with one
// refinement step.
func RSqrt(v Vec[float32]) Vec[float32] {
	return RSqrtN(v, 1)
}

// IsNaN returns a mask of the lanes containing NaN. Comparisons alone
// cannot reliably detect NaN/Inf on every back-end, hence the explicit
// predicates.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = x != x
	}
	return Mask[T]{bits: bits}
}

// IsInf returns a mask of the lanes containing infinity.
// sign: 0 = either, > 0 = +Inf only, < 0 = -Inf only.
func IsInf[T Floats](v Vec[T], sign int) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = math.IsInf(float64(x), sign)
	}
	return Mask[T]{bits: bits}
}

// IsFinite returns a mask of the lanes that are neither NaN nor infinite.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	return IsInf(v, 0).Or(IsNaN(v)).Not()
}
