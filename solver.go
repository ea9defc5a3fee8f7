package vecedit

import "math"

// solveQuadratic finds real roots of ax^2 + bx + c = 0, sorted ascending.
// A zero or vanishing a falls back to the linear equation.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		return nil
	}

	arg := sc1*sc1 - 4.0*sc0
	switch {
	case !isFinite(arg):
		// Discriminant overflow: one root from x^2 + sc1*x = 0.
		return sortedPair(-sc1, sc0/-sc1)
	case arg < 0.0:
		return nil
	case arg == 0.0:
		return []float64{-0.5 * sc1}
	}

	// Numerically stable form, avoids cancellation.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// solveQuadraticInUnitInterval returns roots of ax^2 + bx + c = 0 in [0, 1].
// Roots within 1e-12 of a boundary are clamped onto it.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r < -eps || r > 1.0+eps {
			continue
		}
		result = append(result, math.Min(math.Max(r, 0), 1))
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
