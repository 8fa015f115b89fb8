package solver

import "math"

const eps = 2.220446049250313e-16

// Result is a converged root.
type Result struct {
	X          float64
	Residual   float64
	Iterations int
}

// Brent is Brent's bracketing root finder. It stops when the bracket is
// narrower than XTol relative to the larger end, when |f| <= FTol, and fails after
// MaxIter iterations with an *Error wrapping ErrMaxIterations.
type Brent struct {
	// XTol is relative to the larger bracket end.
	XTol    float64
	FTol    float64
	MaxIter int
}

func NewBrent() *Brent {
	return &Brent{
		XTol:    1e-12,
		FTol:    0,
		MaxIter: 100,
	}
}

// Solve finds x in [lo, hi] with f(x) = 0. f(lo) and f(hi) must differ in sign.
func (b *Brent) Solve(f func(float64) float64, lo, hi float64) (Result, error) {
	a, c := lo, hi
	fa, fb := f(lo), f(hi)
	bx := hi

	if !finite(fa) || !finite(fb) {
		x, fx := lo, fa
		if finite(fa) {
			x, fx = hi, fb
		}
		return Result{}, &Error{Method: "brent", Last: x, Residual: fx, Wrapped: ErrNotFinite}
	}
	if fa == 0 {
		return Result{X: lo}, nil
	}
	if fb == 0 {
		return Result{X: hi}, nil
	}
	if (fa > 0) == (fb > 0) {
		last, res := lo, fa
		if math.Abs(fb) < math.Abs(fa) {
			last, res = hi, fb
		}
		return Result{}, &Error{Method: "brent", Last: last, Residual: res, Wrapped: ErrNoBracket}
	}

	tol := b.XTol * math.Max(math.Abs(lo), math.Abs(hi))
	fc := fb
	var d, e float64

	for iter := 1; iter <= b.MaxIter; iter++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = bx - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, bx, c = bx, c, bx
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*eps*math.Abs(bx) + 0.5*tol
		xm := 0.5 * (c - bx)
		if math.Abs(xm) <= tol1 || fb == 0 || math.Abs(fb) <= b.FTol {
			return Result{X: bx, Residual: fb, Iterations: iter}, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (bx-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = bx, fb
		if math.Abs(d) > tol1 {
			bx += d
		} else {
			bx += math.Copysign(tol1, xm)
		}
		fb = f(bx)
		if !finite(fb) {
			return Result{}, &Error{Method: "brent", Iterations: iter, Last: bx, Residual: fb, Wrapped: ErrNotFinite}
		}
	}

	return Result{}, &Error{Method: "brent", Iterations: b.MaxIter, Last: bx, Residual: fb, Wrapped: ErrMaxIterations}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
