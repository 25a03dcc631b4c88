// Package affine implements 2D affine transforms in fixed-point arithmetic.
//
// Values use golang.org/x/image/math/fixed.Int52_12 so the math stays exact on
// targets without a floating-point unit.
package affine

import "golang.org/x/image/math/fixed"

// Num is the fixed-point scalar used by every transform.
type Num = fixed.Int52_12

const (
	fracBits = 12

	// One is 1.0.
	One Num = 1 << fracBits

	// epsilon is the smallest determinant treated as invertible.
	epsilon Num = 4
)

// I converts an integer to Num.
func I(v int) Num { return Num(int64(v) << fracBits) }

// Frac returns num/den as Num. A zero denominator yields 0.
func Frac(num, den int) Num {
	if den == 0 {
		return 0
	}
	return Num((int64(num) << fracBits) / int64(den))
}

// F converts a float to Num. Host-side helpers and animation curves use it.
func F(v float32) Num { return Num(v * float32(One)) }

// Div returns a/b, or 0 when b is 0.
func Div(a, b Num) Num {
	if b == 0 {
		return 0
	}
	return Num((int64(a) << fracBits) / int64(b))
}

// Floor returns the largest integer not above v.
func Floor(v Num) int { return int(int64(v) >> fracBits) }

func abs(v Num) Num {
	if v < 0 {
		return -v
	}
	return v
}

// Affine2 maps src to dst as dst = M·src + t with M = [m00 m01; m10 m11].
type Affine2 struct {
	M00, M01 Num
	M10, M11 Num
	TX, TY   Num
}

// Identity returns the identity transform.
func Identity() Affine2 {
	return Affine2{M00: One, M11: One}
}

// Mul returns a∘b: the transform that applies b first, then a.
func (a Affine2) Mul(b Affine2) Affine2 {
	return Affine2{
		M00: a.M00.Mul(b.M00) + a.M01.Mul(b.M10),
		M01: a.M00.Mul(b.M01) + a.M01.Mul(b.M11),
		M10: a.M10.Mul(b.M00) + a.M11.Mul(b.M10),
		M11: a.M10.Mul(b.M01) + a.M11.Mul(b.M11),
		TX:  a.M00.Mul(b.TX) + a.M01.Mul(b.TY) + a.TX,
		TY:  a.M10.Mul(b.TX) + a.M11.Mul(b.TY) + a.TY,
	}
}

// Then returns b∘a: a followed by b.
func (a Affine2) Then(b Affine2) Affine2 { return b.Mul(a) }

// Scale appends a scale about the origin.
func (a Affine2) Scale(sx, sy Num) Affine2 {
	return a.Then(Affine2{M00: sx, M11: sy})
}

// Rotate appends a counter-clockwise rotation by deg degrees about the origin.
func (a Affine2) Rotate(deg Num) Affine2 {
	s, c := Sin(deg), Cos(deg)
	return a.Then(Affine2{M00: c, M01: -s, M10: s, M11: c})
}

// Translate appends a translation.
func (a Affine2) Translate(dx, dy Num) Affine2 {
	return a.Then(Affine2{M00: One, M11: One, TX: dx, TY: dy})
}

// Origin applies f with (x, y) moved to the origin, then moves it back.
// It is how scale and rotation about a point are written:
//
//	a.Origin(cx, cy, func(a Affine2) Affine2 { return a.Rotate(deg) })
func (a Affine2) Origin(x, y Num, f func(Affine2) Affine2) Affine2 {
	return f(a.Translate(-x, -y)).Translate(x, y)
}

// Apply maps a point through the transform.
func (a Affine2) Apply(x, y Num) (Num, Num) {
	return a.M00.Mul(x) + a.M01.Mul(y) + a.TX,
		a.M10.Mul(x) + a.M11.Mul(y) + a.TY
}

// Det returns the determinant of the linear part.
func (a Affine2) Det() Num {
	return a.M00.Mul(a.M11) - a.M01.Mul(a.M10)
}

// Inverse returns the inverse transform. ok is false when the determinant is
// too close to zero for the result to be meaningful.
func (a Affine2) Inverse() (inv Affine2, ok bool) {
	det := a.Det()
	if abs(det) < epsilon {
		return Affine2{}, false
	}
	inv.M00 = Div(a.M11, det)
	inv.M01 = Div(-a.M01, det)
	inv.M10 = Div(-a.M10, det)
	inv.M11 = Div(a.M00, det)
	inv.TX = -(inv.M00.Mul(a.TX) + inv.M01.Mul(a.TY))
	inv.TY = -(inv.M10.Mul(a.TX) + inv.M11.Mul(a.TY))
	return inv, true
}
