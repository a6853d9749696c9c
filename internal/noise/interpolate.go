package noise

import "math"

// Interpolator blends a and b by t in [0, 1]; t=0 yields a and t=1 yields b.
type Interpolator interface {
	Interpolate(a, b, t float64) float64
}

// InterpolatorFunc adapts a plain function to Interpolator.
type InterpolatorFunc func(a, b, t float64) float64

// Interpolate calls f(a, b, t).
func (f InterpolatorFunc) Interpolate(a, b, t float64) float64 {
	return f(a, b, t)
}

var (
	// Linear is the fastest blend and the most jagged.
	Linear Interpolator = InterpolatorFunc(func(a, b, t float64) float64 {
		return a + t*(b-a)
	})

	Cosine Interpolator = InterpolatorFunc(func(a, b, t float64) float64 {
		f := (1 - math.Cos(t*math.Pi)) * 0.5
		return a*(1-f) + b*f
	})

	Smoothstep Interpolator = InterpolatorFunc(func(a, b, t float64) float64 {
		f := t * t * (3 - 2*t)
		return a*(1-f) + b*f
	})
)

// fade is the quintic ease curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func orLinear(interp Interpolator) Interpolator {
	if interp == nil {
		return Linear
	}
	return interp
}
