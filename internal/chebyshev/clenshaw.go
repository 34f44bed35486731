// Package chebyshev evaluates Chebyshev polynomial series and their first
// derivatives using the Clenshaw recurrence, as used by SPK Type 2/3
// segments. This is a from-scratch implementation of the standard,
// numerically well-known recurrence; there is no single-vendor reference
// to ground it beyond the textbook algorithm the original kernel reader
// (jpl_kernel) also relies on without reimplementing the math itself.
package chebyshev

// Eval evaluates sum_k coeffs[k] * T_k(x) for x in [-1, 1] via the
// Clenshaw recurrence, which is stable across the whole domain and
// avoids forming the T_k(x) values explicitly.
func Eval(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return coeffs[0]
	}

	var bk1, bk2 float64
	twoX := 2 * x
	for k := n - 1; k >= 1; k-- {
		bk := twoX*bk1 - bk2 + coeffs[k]
		bk2 = bk1
		bk1 = bk
	}
	return x*bk1 - bk2 + coeffs[0]
}

// EvalDerivative evaluates d/dx [sum_k coeffs[k] * T_k(x)] via the
// derivative Clenshaw recurrence. The caller is responsible for dividing
// by the interval radius to convert from normalized-time derivative to a
// physical-time derivative (velocity).
func EvalDerivative(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	if n <= 1 {
		return 0
	}

	// Standard recurrence for the derivative of a Chebyshev series:
	// d/dx T_k(x) series computed by differentiating the Clenshaw ladder.
	var dk1, dk2 float64
	var bk1, bk2 float64
	twoX := 2 * x
	for k := n - 1; k >= 1; k-- {
		bk := twoX*bk1 - bk2 + coeffs[k]
		dk := twoX*dk1 - dk2 + 2*bk1
		bk2 = bk1
		bk1 = bk
		dk2 = dk1
		dk1 = dk
	}
	return x*dk1 - dk2 + bk1
}
