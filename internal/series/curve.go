// Package series turns rankings snapshots into chart-ready series and
// display rows. Everything in here is pure: same snapshot in, same
// data out, no I/O.
package series

import (
	"fmt"
	"math"
)

// Point is a single (x, y) chart sample.
type Point struct {
	X, Y float64
}

// curveSamples is the point count of a belief curve: 30 equal
// intervals over [mu-4σ, mu+4σ], both endpoints included.
const curveSamples = 31

// SampleCurve samples the normal probability density parameterized by
// mu and sigma. It emits exactly curveSamples points at start + i*step
// rather than accumulating the step, so the last sample lands on the
// upper bound with no floating-point drift.
func SampleCurve(mu, sigma float64) ([]Point, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("sigma must be > 0, got %g", sigma)
	}

	start := mu - 4.0*sigma
	step := 8.0 * sigma / (curveSamples - 1)

	ret := make([]Point, curveSamples)
	for i := range ret {
		x := start + float64(i)*step
		ret[i] = Point{x, normalDensity(x, mu, sigma)}
	}

	return ret, nil
}

func normalDensity(x, mu, sigma float64) float64 {
	d := x - mu
	return 1.0 / (sigma * math.Sqrt(2.0*math.Pi)) * math.Exp(-(d*d)/(2.0*sigma*sigma))
}
