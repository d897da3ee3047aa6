// Package triangles generates random 3D point triples ("triangles") for
// geometric test fixtures and reads/writes them as text rows.
//
// Generative model (per row):
//
//	A = (U[0,Max), U[0,Max), U[0,Max))
//	B = A + (|N(0,σ)|, |N(0,σ)|, |N(0,σ)|)
//	C = A + (0,       |N(0,σ)|, |N(0,σ)|)
//
// so B dominates A on every axis and C shares A's X coordinate. σ is the
// Scale option (default 3), Max defaults to 100.
//
// Sampling uses gonum's distuv.Uniform and distuv.Normal over an explicit
// golang.org/x/exp/rand source; there is no process-global randomness.
//
// Row format: 9 space-separated values with two decimals,
//
//	A.X A.Y A.Z B.X B.Y B.Z C.X C.Y C.Z
package triangles
