package noise

import (
	"math"

	"worldgen/internal/mathx"
)

// DistanceFunc measures the distance between an input point and a feature
// point. Both cellular fields accept any of them.
type DistanceFunc func(a, b mathx.Vector3) float64

// EuclideanSquared avoids the square root; it orders points the same way as
// Euclidean.
func EuclideanSquared(a, b mathx.Vector3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

func Euclidean(a, b mathx.Vector3) float64 {
	return a.Sub(b).Len()
}

func Manhattan(a, b mathx.Vector3) float64 {
	d := a.Sub(b)
	return math.Abs(d[0]) + math.Abs(d[1]) + math.Abs(d[2])
}

func Chebyshev(a, b mathx.Vector3) float64 {
	d := a.Sub(b)
	return math.Max(math.Abs(d[0]), math.Max(math.Abs(d[1]), math.Abs(d[2])))
}
