package geom

import "github.com/goraykit/raykit/lane"

// SoA3 is a packet of 3-D vectors in structure-of-arrays layout: one lane
// vector per coordinate, so lane i across X/Y/Z holds the i-th point.
// This is the layout batched kernels consume; SplatSoA3 and LoadSoA3 are
// the transposition entry points from scalar and interleaved data.
type SoA3 struct {
	X lane.Vec[float32]
	Y lane.Vec[float32]
	Z lane.Vec[float32]
}

// SplatSoA3 broadcasts a single point across all lanes.
func SplatSoA3(v Vec3) SoA3 {
	return SoA3{
		X: lane.Set(v[0]),
		Y: lane.Set(v[1]),
		Z: lane.Set(v[2]),
	}
}

// LoadSoA3 deinterleaves packed [x0,y0,z0, x1,y1,z1, ...] data into a
// packet. Triplets beyond the source read as zero.
func LoadSoA3(src []float32) SoA3 {
	x, y, z := lane.LoadInterleaved3(src)
	return SoA3{X: x, Y: y, Z: z}
}

// GatherSoA3 transposes up to one lane width of points into a packet.
// Missing lanes read as zero.
func GatherSoA3(pts []Vec3) SoA3 {
	n := lane.MaxLanes[float32]()
	buf := make([]float32, 3*n)
	for i := 0; i < n && i < len(pts); i++ {
		buf[3*i] = pts[i][0]
		buf[3*i+1] = pts[i][1]
		buf[3*i+2] = pts[i][2]
	}
	return LoadSoA3(buf)
}

// Store interleaves the packet back into [x0,y0,z0, ...] order.
func (p SoA3) Store(dst []float32) {
	lane.StoreInterleaved3(p.X, p.Y, p.Z, dst)
}

// NumLanes returns the packet width.
func (p SoA3) NumLanes() int {
	return p.X.NumLanes()
}

// At extracts the point held in lane i.
func (p SoA3) At(i int) Vec3 {
	return XYZ(lane.GetLane(p.X, i), lane.GetLane(p.Y, i), lane.GetLane(p.Z, i))
}

// Add returns the lane-wise sum of two packets.
func (p SoA3) Add(q SoA3) SoA3 {
	return SoA3{
		X: lane.Add(p.X, q.X),
		Y: lane.Add(p.Y, q.Y),
		Z: lane.Add(p.Z, q.Z),
	}
}

// Sub returns the lane-wise difference of two packets.
func (p SoA3) Sub(q SoA3) SoA3 {
	return SoA3{
		X: lane.Sub(p.X, q.X),
		Y: lane.Sub(p.Y, q.Y),
		Z: lane.Sub(p.Z, q.Z),
	}
}

// Scale multiplies every point by a per-lane scalar.
func (p SoA3) Scale(s lane.Vec[float32]) SoA3 {
	return SoA3{
		X: lane.Mul(p.X, s),
		Y: lane.Mul(p.Y, s),
		Z: lane.Mul(p.Z, s),
	}
}

// Dot returns the per-lane dot product of two packets.
func (p SoA3) Dot(q SoA3) lane.Vec[float32] {
	return lane.MulAdd(p.X, q.X, lane.MulAdd(p.Y, q.Y, lane.Mul(p.Z, q.Z)))
}

// Cross returns the per-lane cross product of two packets.
func (p SoA3) Cross(q SoA3) SoA3 {
	return SoA3{
		X: lane.Sub(lane.Mul(p.Y, q.Z), lane.Mul(p.Z, q.Y)),
		Y: lane.Sub(lane.Mul(p.Z, q.X), lane.Mul(p.X, q.Z)),
		Z: lane.Sub(lane.Mul(p.X, q.Y), lane.Mul(p.Y, q.X)),
	}
}

// Normalize scales every point to unit length using the refined
// reciprocal square root. Zero-length lanes produce NaN, matching the
// scalar division they replace.
func (p SoA3) Normalize() SoA3 {
	return p.Scale(lane.RSqrtN(p.Dot(p), 2))
}

// Select chooses points from p where the mask is true, from q elsewhere.
func Select3(m lane.Mask[float32], p, q SoA3) SoA3 {
	return SoA3{
		X: lane.Select(m, p.X, q.X),
		Y: lane.Select(m, p.Y, q.Y),
		Z: lane.Select(m, p.Z, q.Z),
	}
}
