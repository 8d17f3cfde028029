package lane

import (
	"math"
	"testing"
)

func TestSetBroadcast(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() == 0 {
		t.Fatal("Set created empty vector")
	}
	for i := 0; i < v.NumLanes(); i++ {
		if got := GetLane(v, i); got != 42.0 {
			t.Errorf("Set: lane %d: got %v, want 42.0", i, got)
		}
	}
}

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Fatal("Load created empty vector")
	}
	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if got := GetLane(v, i); got != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, got, data[i])
		}
	}

	u := LoadU(data)
	for i := 0; i < u.NumLanes(); i++ {
		if GetLane(u, i) != GetLane(v, i) {
			t.Errorf("LoadU: lane %d differs from Load", i)
		}
	}
}

func TestOf(t *testing.T) {
	v := Of[int32](7, 8, 9)

	if got := GetLane(v, 0); got != 7 {
		t.Errorf("Of: lane 0: got %v, want 7", got)
	}
	if got := GetLane(v, 2); got != 9 {
		t.Errorf("Of: lane 2: got %v, want 9", got)
	}
	if v.NumLanes() > 3 {
		if got := GetLane(v, 3); got != 0 {
			t.Errorf("Of: lane 3: got %v, want 0", got)
		}
	}
}

// Scalar equivalence law: lane i of a binary operation equals the scalar
// operation applied to lane i of the operands.
func TestScalarEquivalence(t *testing.T) {
	as := []float32{1.5, -2.25, 0, 3.75, -0.5, 100, -64, 0.125}
	bs := []float32{2, 4, -1, 0.5, 8, -3, 2.5, -0.25}
	a := Load(as)
	b := Load(bs)

	tests := []struct {
		name   string
		vec    Vec[float32]
		scalar func(x, y float32) float32
	}{
		{"Add", Add(a, b), func(x, y float32) float32 { return x + y }},
		{"Sub", Sub(a, b), func(x, y float32) float32 { return x - y }},
		{"Mul", Mul(a, b), func(x, y float32) float32 { return x * y }},
		{"Div", Div(a, b), func(x, y float32) float32 { return x / y }},
	}
	for _, tt := range tests {
		for i := 0; i < tt.vec.NumLanes() && i < len(as); i++ {
			want := tt.scalar(as[i], bs[i])
			if got := GetLane(tt.vec, i); got != want {
				t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, got, want)
			}
		}
	}
}

func TestIntWraparound(t *testing.T) {
	a := Set[int32](math.MaxInt32)
	b := Set[int32](1)
	r := Add(a, b)

	for i := 0; i < r.NumLanes(); i++ {
		if got := GetLane(r, i); got != math.MinInt32 {
			t.Errorf("Add overflow: lane %d: got %v, want %v", i, got, math.MinInt32)
		}
	}
}

func TestNeg(t *testing.T) {
	v := Set[float32](42.0)
	r := Neg(v)

	for i := 0; i < r.NumLanes(); i++ {
		if got := GetLane(r, i); got != -42.0 {
			t.Errorf("Neg: lane %d: got %v, want -42.0", i, got)
		}
	}
}

func TestComparisonsProduceMasks(t *testing.T) {
	a := Load([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	b := Set[float32](4)

	m := Less(a, b)
	for i := 0; i < m.NumLanes(); i++ {
		want := GetLane(a, i) < 4
		if m.GetBit(i) != want {
			t.Errorf("Less: lane %d: got %v, want %v", i, m.GetBit(i), want)
		}
	}

	eq := Equal(b, b)
	if !eq.AllTrue() {
		t.Error("Equal(b, b): expected all lanes true")
	}
	ne := NotEqual(b, b)
	if ne.AnyTrue() {
		t.Error("NotEqual(b, b): expected no lanes true")
	}
}

func TestSelect(t *testing.T) {
	a := Load([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	b := Neg(a)
	m := Greater(a, Set[float32](4))

	r := Select(m, a, b)
	for i := 0; i < r.NumLanes(); i++ {
		want := GetLane(b, i)
		if m.GetBit(i) {
			want = GetLane(a, i)
		}
		if got := GetLane(r, i); got != want {
			t.Errorf("Select: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSelectZeroVariants(t *testing.T) {
	a := Set[float32](5)
	m := Greater(Iota[float32](), Set[float32](1)) // lanes 2.. true

	r := SelectZero(m, a)
	for i := 0; i < r.NumLanes(); i++ {
		want := float32(0)
		if m.GetBit(i) {
			want = 5
		}
		if got := GetLane(r, i); got != want {
			t.Errorf("SelectZero: lane %d: got %v, want %v", i, got, want)
		}
	}

	z := ZeroSelect(m, a)
	for i := 0; i < z.NumLanes(); i++ {
		want := float32(5)
		if m.GetBit(i) {
			want = 0
		}
		if got := GetLane(z, i); got != want {
			t.Errorf("ZeroSelect: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestMaskLogic(t *testing.T) {
	i := Iota[float32]()
	lo := Less(i, Set[float32](2))
	hi := GreaterEqual(i, Set[float32](1))

	and := lo.And(hi)
	or := lo.Or(hi)
	for k := 0; k < and.NumLanes(); k++ {
		if and.GetBit(k) != (lo.GetBit(k) && hi.GetBit(k)) {
			t.Errorf("Mask.And: lane %d wrong", k)
		}
		if or.GetBit(k) != (lo.GetBit(k) || hi.GetBit(k)) {
			t.Errorf("Mask.Or: lane %d wrong", k)
		}
		if lo.Not().GetBit(k) == lo.GetBit(k) {
			t.Errorf("Mask.Not: lane %d wrong", k)
		}
	}
	if got := lo.CountTrue(); got != 2 {
		t.Errorf("CountTrue: got %d, want 2", got)
	}
}

func TestBitwiseFloatSignManipulation(t *testing.T) {
	v := Set[float32](-3.5)

	// Clearing the sign bit via AndNot with -0.0 is the abs idiom.
	r := AndNot(SignBit[float32](), v)
	for i := 0; i < r.NumLanes(); i++ {
		if got := GetLane(r, i); got != 3.5 {
			t.Errorf("AndNot sign clear: lane %d: got %v, want 3.5", i, got)
		}
	}

	// Xor with -0.0 flips the sign.
	f := Xor(v, SignBit[float32]())
	for i := 0; i < f.NumLanes(); i++ {
		if got := GetLane(f, i); got != 3.5 {
			t.Errorf("Xor sign flip: lane %d: got %v, want 3.5", i, got)
		}
	}
}

func TestBitwiseInt(t *testing.T) {
	a := Set[int32](0b1100)
	b := Set[int32](0b1010)

	checks := []struct {
		name string
		vec  Vec[int32]
		want int32
	}{
		{"And", And(a, b), 0b1000},
		{"Or", Or(a, b), 0b1110},
		{"Xor", Xor(a, b), 0b0110},
		{"Not", Not(a), ^int32(0b1100)},
		{"AndNot", AndNot(a, b), ^int32(0b1100) & 0b1010},
	}
	for _, c := range checks {
		for i := 0; i < c.vec.NumLanes(); i++ {
			if got := GetLane(c.vec, i); got != c.want {
				t.Errorf("%s: lane %d: got %b, want %b", c.name, i, got, c.want)
			}
		}
	}
}

func TestMaskLoadStore(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	m := Less(Iota[float32](), Set[float32](2))

	v := MaskLoad(m, src)
	for i := 0; i < v.NumLanes(); i++ {
		want := float32(0)
		if m.GetBit(i) {
			want = src[i]
		}
		if got := GetLane(v, i); got != want {
			t.Errorf("MaskLoad: lane %d: got %v, want %v", i, got, want)
		}
	}

	dst := make([]float32, len(src))
	for i := range dst {
		dst[i] = -1
	}
	MaskStore(m, Load(src), dst)
	for i := 0; i < m.NumLanes(); i++ {
		want := float32(-1)
		if m.GetBit(i) {
			want = src[i]
		}
		if dst[i] != want {
			t.Errorf("MaskStore: element %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	src := []float64{1.5, -2.5, 3.5, -4.5, 5.5, -6.5, 7.5, -8.5}
	v := Load(src)
	dst := make([]float64, v.NumLanes())
	v.Store(dst)

	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("Store: element %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}
