package vecedit

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-10

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Any values are legal. Invertibility is only required by Invert and the
// InverseTransform helpers.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// ScaleAbout creates a matrix scaling by (sx, sy) around origin.
func ScaleAbout(sx, sy float64, origin Point) Matrix {
	return Compose(
		Translate(origin.X, origin.Y),
		Scale(sx, sy),
		Translate(-origin.X, -origin.Y),
	)
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Compose multiplies the matrices left to right, so the last one is applied
// first. For nested spaces pass the outermost space first:
//
//	toScreen := vecedit.Compose(view, canvasFromNode)
//
// Compose with no arguments returns the identity.
func Compose(ms ...Matrix) Matrix {
	out := Identity()
	for _, m := range ms {
		out = out.Multiply(m)
	}
	return out
}

// TransformPoint applies the full transformation, including translation,
// to a position.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the linear part of the transformation to a
// displacement. Translation is dropped.
func (m Matrix) TransformVector(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// It returns ErrSingularTransform if the matrix is not invertible.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon || math.IsNaN(det) {
		return Matrix{}, fmt.Errorf("%w: determinant %g", ErrSingularTransform, det)
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// InverseTransformPoint maps a position from the output space of m back into
// its input space, e.g. a screen-space pointer position into model space.
func (m Matrix) InverseTransformPoint(p Point) (Point, error) {
	inv, err := m.Invert()
	if err != nil {
		return Point{}, err
	}
	return inv.TransformPoint(p), nil
}

// InverseTransformVector maps a displacement from the output space of m back
// into its input space, e.g. a screen-space pointer delta into model space.
func (m Matrix) InverseTransformVector(v Vec2) (Vec2, error) {
	inv, err := m.Invert()
	if err != nil {
		return Vec2{}, err
	}
	return inv.TransformVector(v), nil
}

// Translation returns the translation component.
func (m Matrix) Translation() Vec2 {
	return Vec2{X: m.C, Y: m.F}
}

// ScaleFactors returns the lengths of the transformed unit axes.
func (m Matrix) ScaleFactors() Vec2 {
	return Vec2{X: math.Hypot(m.A, m.D), Y: math.Hypot(m.B, m.E)}
}

// MaxScaleFactor returns the largest factor by which m stretches any
// direction (the largest singular value of the linear part).
func (m Matrix) MaxScaleFactor() float64 {
	// Eigenvalues of M^T * M.
	p := m.A*m.A + m.D*m.D
	q := m.B*m.B + m.E*m.E
	r := m.A*m.B + m.D*m.E
	half := (p - q) / 2
	maxEigen := (p+q)/2 + math.Sqrt(half*half+r*r)
	return math.Sqrt(maxEigen)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// Aff3 converts the matrix to the x/image affine representation.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// MatrixFromAff3 converts an x/image affine matrix to a Matrix.
func MatrixFromAff3(a f64.Aff3) Matrix {
	return Matrix{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}
