package geom

import "math"

// Rect is the 2-D analog of AABB, used as the bounds type for planar
// triangles. It carries the same invalid-sentinel and empty semantics.
type Rect struct {
	Min Vec2
	Max Vec2
}

// NewRect returns the rectangle spanning the given corners.
func NewRect(min, max Vec2) Rect {
	return Rect{Min: min, Max: max}
}

// InvalidRect returns the sentinel rectangle, the identity for Insert.
func InvalidRect() Rect {
	r := Rect{}
	r.Invalidate()
	return r
}

// Invalidate resets the rectangle to the sentinel state.
func (r *Rect) Invalidate() {
	r.Min = XY(math.MaxFloat32, math.MaxFloat32)
	r.Max = XY(-math.MaxFloat32, -math.MaxFloat32)
}

// Valid reports whether min <= max on both axes.
func (r Rect) Valid() bool {
	return r.Min[0] <= r.Max[0] && r.Min[1] <= r.Max[1]
}

// Invalid is the negation of Valid.
func (r Rect) Invalid() bool {
	return !r.Valid()
}

// Empty reports whether min >= max on either axis.
func (r Rect) Empty() bool {
	return r.Min[0] >= r.Max[0] || r.Min[1] >= r.Max[1]
}

// ContainsPoint reports whether p lies in the rectangle, inclusive on all
// four edges.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] &&
		p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// InsertPoint grows the rectangle to cover p.
func (r *Rect) InsertPoint(p Vec2) {
	r.Min = MinVec2(r.Min, p)
	r.Max = MaxVec2(r.Max, p)
}

// InsertRect grows the rectangle to cover o.
func (r *Rect) InsertRect(o Rect) {
	r.Min = MinVec2(r.Min, o.Min)
	r.Max = MaxVec2(r.Max, o.Max)
}

// CombineRect returns the union of two rectangles.
func CombineRect(a, b Rect) Rect {
	return Rect{Min: MinVec2(a.Min, b.Min), Max: MaxVec2(a.Max, b.Max)}
}

// Size returns max - min per axis.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Area returns the product of the size components. Negative for inverted
// rectangles.
func (r Rect) Area() float32 {
	s := r.Size()
	return s[0] * s[1]
}
