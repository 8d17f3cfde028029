package lane

import "math"

// This file provides value conversion and bit-pattern reinterpretation
// between float and integer lanes. The two are deliberately distinct named
// operations: Convert* changes the value representation, Reinterpret* keeps
// the bits and changes only the type. Confusing the two is the classic
// SIMD porting bug.

// ConvertToInt32 converts float32 lanes to int32, truncating toward zero.
// For values outside the int32 range the result is undefined.
func ConvertToInt32(v Vec[float32]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = int32(x)
	}
	return Vec[int32]{data: result}
}

// ConvertToInt64 converts float64 lanes to int64, truncating toward zero.
func ConvertToInt64(v Vec[float64]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i, x := range v.data {
		result[i] = int64(x)
	}
	return Vec[int64]{data: result}
}

// RoundToInt32 converts float32 lanes to int32, rounding to nearest.
func RoundToInt32(v Vec[float32]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = int32(math.RoundToEven(float64(x)))
	}
	return Vec[int32]{data: result}
}

// ConvertToFloat32 converts int32 lanes to float32.
func ConvertToFloat32(v Vec[int32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = float32(x)
	}
	return Vec[float32]{data: result}
}

// ConvertToFloat64 converts int64 lanes to float64. Large values may lose
// precision.
func ConvertToFloat64(v Vec[int64]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i, x := range v.data {
		result[i] = float64(x)
	}
	return Vec[float64]{data: result}
}

// ReinterpretAsInt32 reinterprets float32 lanes as int32 (bit cast, no
// value conversion).
func ReinterpretAsInt32(v Vec[float32]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = int32(math.Float32bits(x))
	}
	return Vec[int32]{data: result}
}

// ReinterpretAsFloat32 reinterprets int32 lanes as float32 (bit cast).
func ReinterpretAsFloat32(v Vec[int32]) Vec[float32] {
	result := make([]float32, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float32frombits(uint32(x))
	}
	return Vec[float32]{data: result}
}

// ReinterpretAsInt64 reinterprets float64 lanes as int64 (bit cast).
func ReinterpretAsInt64(v Vec[float64]) Vec[int64] {
	result := make([]int64, len(v.data))
	for i, x := range v.data {
		result[i] = int64(math.Float64bits(x))
	}
	return Vec[int64]{data: result}
}

// ReinterpretAsFloat64 reinterprets int64 lanes as float64 (bit cast).
func ReinterpretAsFloat64(v Vec[int64]) Vec[float64] {
	result := make([]float64, len(v.data))
	for i, x := range v.data {
		result[i] = math.Float64frombits(uint64(x))
	}
	return Vec[float64]{data: result}
}
