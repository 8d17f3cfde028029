package geom

import "math"

// Sampler produces a lazy sequence of uniform random values in [0,1).
// It is the external collaborator consumed by surface sampling; the
// geometry itself stays stateless.
type Sampler interface {
	Next() float32
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() float32

func (f SamplerFunc) Next() float32 { return f() }

// Triangle is the edge-vector representation of a 3-D triangle: an anchor
// vertex plus two edge vectors (v2 = V1+E1, v3 = V1+E2). Intersection and
// barycentric evaluation need the edges directly, so they are stored
// rather than recomputed per test. Immutable once constructed.
type Triangle struct {
	V1 Vec3
	E1 Vec3
	E2 Vec3
}

// NewTriangle constructs a triangle from three vertices, deriving the
// edge vectors.
func NewTriangle(v1, v2, v3 Vec3) Triangle {
	return Triangle{V1: v1, E1: v2.Sub(v1), E2: v3.Sub(v1)}
}

// TriangleFromEdges constructs a triangle directly from an anchor vertex
// and two edge vectors.
func TriangleFromEdges(v1, e1, e2 Vec3) Triangle {
	return Triangle{V1: v1, E1: e1, E2: e2}
}

// Vertices returns the three corner points.
func (t Triangle) Vertices() (Vec3, Vec3, Vec3) {
	return t.V1, t.V1.Add(t.E1), t.V1.Add(t.E2)
}

// Area returns half the magnitude of the edge cross product. A degenerate
// triangle (parallel edges) has area 0.
func (t Triangle) Area() float32 {
	return 0.5 * t.E1.Cross(t.E2).Len()
}

// Bounds returns the bounding box of the triangle: an invalidated box with
// the three vertices inserted.
func (t Triangle) Bounds() AABB {
	b := InvalidAABB()
	v1, v2, v3 := t.Vertices()
	b.InsertPoint(v1)
	b.InsertPoint(v2)
	b.InsertPoint(v3)
	return b
}

// SampleSurface draws a uniformly distributed point on the triangle using
// the square-root parameterization:
//
//	p = v1*(1-sqrt(u1)) + v2*sqrt(u1)*(1-u2) + v3*sqrt(u1)*u2
//
// Exactly two values are consumed from gen per sample. Undefined for a
// truly degenerate triangle.
func (t Triangle) SampleSurface(gen Sampler) Vec3 {
	u1 := gen.Next()
	u2 := gen.Next()
	s := float32(math.Sqrt(float64(u1)))

	v1, v2, v3 := t.Vertices()
	return v1.Mul(1 - s).Add(v2.Mul(s * (1 - u2))).Add(v3.Mul(s * u2))
}

// Triangle2 is the planar counterpart of Triangle, embedded in 2-D.
type Triangle2 struct {
	V1 Vec2
	E1 Vec2
	E2 Vec2
}

// NewTriangle2 constructs a planar triangle from three vertices.
func NewTriangle2(v1, v2, v3 Vec2) Triangle2 {
	return Triangle2{V1: v1, E1: v2.Sub(v1), E2: v3.Sub(v1)}
}

// Vertices returns the three corner points.
func (t Triangle2) Vertices() (Vec2, Vec2, Vec2) {
	return t.V1, t.V1.Add(t.E1), t.V1.Add(t.E2)
}

// Area returns half the absolute scalar cross product of the edges.
func (t Triangle2) Area() float32 {
	return 0.5 * float32(math.Abs(float64(t.E1.Cross(t.E2))))
}

// Bounds returns the bounding rectangle of the planar triangle.
func (t Triangle2) Bounds() Rect {
	r := InvalidRect()
	v1, v2, v3 := t.Vertices()
	r.InsertPoint(v1)
	r.InsertPoint(v2)
	r.InsertPoint(v3)
	return r
}
