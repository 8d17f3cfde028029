package lane

import (
	"math"
	"testing"
)

func TestConvertTruncates(t *testing.T) {
	v := Load([]float32{1.9, -1.9, 0.5, -0.5, 2.0, -2.0, 7.99, -7.99, 1.9, -1.9, 0.5, -0.5, 2.0, -2.0, 7.99, -7.99})
	r := ConvertToInt32(v)

	for i := 0; i < r.NumLanes(); i++ {
		want := int32(math.Trunc(float64(GetLane(v, i))))
		if got := GetLane(r, i); got != want {
			t.Errorf("ConvertToInt32: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestRoundToInt32(t *testing.T) {
	v := Load([]float32{1.5, 2.5, -1.5, -2.5, 0.4, -0.4, 3.6, -3.6, 1.5, 2.5, -1.5, -2.5, 0.4, -0.4, 3.6, -3.6})
	r := RoundToInt32(v)

	for i := 0; i < r.NumLanes(); i++ {
		want := int32(math.RoundToEven(float64(GetLane(v, i))))
		if got := GetLane(r, i); got != want {
			t.Errorf("RoundToInt32: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestConvertIntToFloat(t *testing.T) {
	v := Load([]int32{0, 1, -1, 100, -100, 1 << 20, -(1 << 20), 7})
	r := ConvertToFloat32(v)

	for i := 0; i < r.NumLanes() && i < 8; i++ {
		if got, want := GetLane(r, i), float32(GetLane(v, i)); got != want {
			t.Errorf("ConvertToFloat32: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestReinterpretRoundTrip(t *testing.T) {
	v := Load([]float32{1.5, -2.25, 0, -0.0, 3.75, 1e10, -1e-10, 42, 1.5, -2.25, 0, -0.0, 3.75, 1e10, -1e-10, 42})

	bits := ReinterpretAsInt32(v)
	back := ReinterpretAsFloat32(bits)
	for i := 0; i < v.NumLanes(); i++ {
		if math.Float32bits(GetLane(back, i)) != math.Float32bits(GetLane(v, i)) {
			t.Errorf("Reinterpret round trip: lane %d: bits changed", i)
		}
	}

	// Reinterpret preserves bits, Convert does not: 1.0f is 0x3F800000.
	one := ReinterpretAsInt32(Set[float32](1))
	for i := 0; i < one.NumLanes(); i++ {
		if got := GetLane(one, i); got != 0x3F800000 {
			t.Errorf("ReinterpretAsInt32(1.0): lane %d: got %#x, want 0x3F800000", i, got)
		}
	}
}

func TestReinterpret64RoundTrip(t *testing.T) {
	v := Load([]float64{1.5, -2.25, 0, 1e300, -1e-300, 42, -0.0, 7.125})

	bits := ReinterpretAsInt64(v)
	back := ReinterpretAsFloat64(bits)
	for i := 0; i < v.NumLanes(); i++ {
		if math.Float64bits(GetLane(back, i)) != math.Float64bits(GetLane(v, i)) {
			t.Errorf("Reinterpret64 round trip: lane %d: bits changed", i)
		}
	}
}
