package triangles

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// Triple is three points: a base A and two points derived from it.
type Triple struct {
	A, B, C Point
}

// Fields flattens t into row order A.X … C.Z.
func (t Triple) Fields() [9]float64 {
	return [9]float64{
		t.A.X, t.A.Y, t.A.Z,
		t.B.X, t.B.Y, t.B.Z,
		t.C.X, t.C.Y, t.C.Z,
	}
}

// tripleFromFields is the inverse of Fields.
func tripleFromFields(f [9]float64) Triple {
	return Triple{
		A: Point{f[0], f[1], f[2]},
		B: Point{f[3], f[4], f[5]},
		C: Point{f[6], f[7], f[8]},
	}
}
