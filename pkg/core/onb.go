package core

import "math"

// OrthonormalBasis is a local coordinate frame whose W axis follows a given
// direction. Used for cosine-weighted and cone sampling.
type OrthonormalBasis struct {
	U, V, W Vec3
}

// NewOrthonormalBasis builds a frame around normal, which must be non-zero.
func NewOrthonormalBasis(normal Vec3) OrthonormalBasis {
	w := normal.Unit()
	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}
	v := w.Cross(a).Unit()
	u := w.Cross(v)
	return OrthonormalBasis{U: u, V: v, W: w}
}

// Transform maps local coordinates (x along U, y along V, z along W) to world space
func (b OrthonormalBasis) Transform(local Vec3) Vec3 {
	return b.U.Multiply(local.X).Add(b.V.Multiply(local.Y)).Add(b.W.Multiply(local.Z))
}
