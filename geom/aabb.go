package geom

import "math"

// AABB is an axis-aligned bounding box described by component-wise min/max
// corners. The zero value is a degenerate box at the origin; use NewAABB or
// InvalidAABB to construct one.
//
// A box may be in the invalid sentinel state (min = +max-float, max =
// -max-float), the identity element for Insert and Combine. Invalid and
// empty are distinct, independently testable notions: Valid checks min <=
// max on every axis, Empty checks min >= max on any axis.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB returns the box spanning the given corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// InvalidAABB returns the sentinel box that any point or box can be
// inserted into: min at the largest representable value, max at the lowest.
func InvalidAABB() AABB {
	b := AABB{}
	b.Invalidate()
	return b
}

// Invalidate resets the box to the sentinel state.
func (b *AABB) Invalidate() {
	b.Min = XYZ(math.MaxFloat32, math.MaxFloat32, math.MaxFloat32)
	b.Max = XYZ(-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32)
}

// Valid reports whether min <= max on every axis.
func (b AABB) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Invalid is the negation of Valid.
func (b AABB) Invalid() bool {
	return !b.Valid()
}

// Empty reports whether min >= max on any axis.
func (b AABB) Empty() bool {
	return b.Min[0] >= b.Max[0] || b.Min[1] >= b.Max[1] || b.Min[2] >= b.Max[2]
}

// ContainsPoint reports whether p lies in the box, inclusive on all six
// faces.
func (b AABB) ContainsPoint(p Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// ContainsBox reports whether both corners of o lie in the box.
func (b AABB) ContainsBox(o AABB) bool {
	return b.ContainsPoint(o.Min) && b.ContainsPoint(o.Max)
}

// InsertPoint grows the box to cover p. Insertion is commutative and
// associative, so points may be accumulated in any order.
func (b *AABB) InsertPoint(p Vec3) {
	b.Min = MinVec3(b.Min, p)
	b.Max = MaxVec3(b.Max, p)
}

// InsertBox grows the box to cover o.
func (b *AABB) InsertBox(o AABB) {
	b.Min = MinVec3(b.Min, o.Min)
	b.Max = MaxVec3(b.Max, o.Max)
}

// Combine returns the union of two boxes. Combining with the invalid
// sentinel is the identity.
func Combine(a, b AABB) AABB {
	return AABB{Min: MinVec3(a.Min, b.Min), Max: MaxVec3(a.Max, b.Max)}
}

// CombinePoint returns the box grown to cover p.
func CombinePoint(b AABB, p Vec3) AABB {
	return AABB{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

// Intersect returns the component-wise intersection of two boxes. The
// result may be Empty if a and b do not overlap; callers must check.
func Intersect(a, b AABB) AABB {
	return AABB{Min: MaxVec3(a.Min, b.Min), Max: MinVec3(a.Max, b.Max)}
}

// Size returns max - min per axis. Negative for inverted boxes.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// SafeSize returns the size vector with negative components clamped to 0.
func (b AABB) SafeSize() Vec3 {
	return MaxVec3(b.Size(), Vec3{})
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// HalfSurfaceArea returns xy + yz + zx of the size vector. Negative for
// inverted boxes; see SafeHalfSurfaceArea.
func (b AABB) HalfSurfaceArea() float32 {
	s := b.Size()
	return s[0]*s[1] + s[1]*s[2] + s[2]*s[0]
}

// SurfaceArea returns twice HalfSurfaceArea.
func (b AABB) SurfaceArea() float32 {
	return 2 * b.HalfSurfaceArea()
}

// SafeHalfSurfaceArea clamps negative size components to 0 first, so a
// degenerate or invalid box contributes 0 rather than a negative area.
// Partition cost heuristics must never see negative surface area.
func (b AABB) SafeHalfSurfaceArea() float32 {
	s := MaxVec3(b.Size(), Vec3{})
	return s[0]*s[1] + s[1]*s[2] + s[2]*s[0]
}

// SafeSurfaceArea returns twice SafeHalfSurfaceArea.
func (b AABB) SafeSurfaceArea() float32 {
	return 2 * b.SafeHalfSurfaceArea()
}

// Volume returns the product of the size components. Can be negative for
// an inverted or invalid box; callers needing non-negativity must check
// Valid first. There is no clamped variant.
func (b AABB) Volume() float32 {
	s := b.Size()
	return s[0] * s[1] * s[2]
}

// OverlapRatio measures how much two boxes overlap. It delegates to
// OverlapRatioMin, the more sensitive metric for partition quality
// heuristics.
func OverlapRatio(a, b AABB) float32 {
	return OverlapRatioMin(a, b)
}

// OverlapRatioMin returns the intersection volume divided by the smaller
// of the two input volumes. Returns 0 if either input is empty or the
// boxes do not intersect. Asymmetric: overlap relative to the smaller box.
func OverlapRatioMin(a, b AABB) float32 {
	if a.Empty() || b.Empty() {
		return 0
	}
	i := Intersect(a, b)
	if i.Empty() {
		return 0
	}
	va, vb := a.Volume(), b.Volume()
	if vb < va {
		va = vb
	}
	return i.Volume() / va
}

// OverlapRatioUnion returns the intersection volume divided by the volume
// of the union box (the combined bounds, not the measure of the union
// region). Returns 0 if either input is empty or the boxes do not
// intersect.
func OverlapRatioUnion(a, b AABB) float32 {
	if a.Empty() || b.Empty() {
		return 0
	}
	i := Intersect(a, b)
	if i.Empty() {
		return 0
	}
	return i.Volume() / Combine(a, b).Volume()
}

// Split cuts the box at position along axis, returning the two halves:
// the first keeps its max clamped to position on that axis, the second its
// min. Other axes are untouched. The position is not validated against the
// box range; an out-of-range split silently produces one empty half.
func Split(b AABB, axis Axis, position float32) (AABB, AABB) {
	first, second := b, b
	first.Max[axis] = position
	second.Min[axis] = position
	return first, second
}

// Vertices returns the 8 corner points in a fixed winding order, max
// corner first. Consumers index corners positionally, so the order is part
// of the contract.
func (b AABB) Vertices() [8]Vec3 {
	return [8]Vec3{
		XYZ(b.Max[0], b.Max[1], b.Max[2]),
		XYZ(b.Min[0], b.Max[1], b.Max[2]),
		XYZ(b.Min[0], b.Min[1], b.Max[2]),
		XYZ(b.Max[0], b.Min[1], b.Max[2]),
		XYZ(b.Min[0], b.Max[1], b.Min[2]),
		XYZ(b.Max[0], b.Max[1], b.Min[2]),
		XYZ(b.Max[0], b.Min[1], b.Min[2]),
		XYZ(b.Min[0], b.Min[1], b.Min[2]),
	}
}
