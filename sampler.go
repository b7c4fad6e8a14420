package glyphtrace

// Evaluates the Bézier curve defined by the given control points at
// the given number of parameter values, uniformly spaced over [0, 1]
// and including both ends. The curve order is len(controls) - 1.
//
// The first returned point is always exactly controls[0], and the last
// one exactly controls[len(controls) - 1], so consecutive arcs sharing
// an anchor can be stitched together without tolerance checks.
//
// Returns [ErrInvalidSampleCount] if samples < 2 and
// [ErrInvalidControlPoints] if len(controls) < 2.
func SampleBezier(controls []Point, samples int) ([]Point, error) {
	if samples < 2 { return nil, ErrInvalidSampleCount }
	if len(controls) < 2 { return nil, ErrInvalidControlPoints }

	order := len(controls) - 1
	weights := binomialRow(order)
	points := make([]Point, samples)
	points[0] = controls[0]
	points[samples - 1] = controls[order]
	last := float64(samples - 1)
	for i := 1; i < samples - 1; i++ {
		points[i] = evalBernstein(controls, weights, float64(i)/last)
	}
	return points, nil
}

// B(u) = sum_i C(n, i) * u^i * (1 - u)^(n - i) * P_i
func evalBernstein(controls []Point, weights []float64, u float64) Point {
	order := len(controls) - 1
	omu := 1 - u

	var point Point
	upow := 1.0
	for i, control := range controls {
		w := weights[i] * upow * intPow(omu, order - i)
		point.X += w * control.X
		point.Y += w * control.Y
		upow *= u
	}
	return point
}

// Returns the n-th row of Pascal's triangle. Values are exact for any
// order a glyph outline may need.
func binomialRow(n int) []float64 {
	row := make([]float64, n + 1)
	coeff := uint64(1)
	for k := 0; k <= n; k++ {
		row[k] = float64(coeff)
		coeff = coeff*uint64(n - k)/uint64(k + 1)
	}
	return row
}

func intPow(base float64, exp int) float64 {
	result := 1.0
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
