package noise

import (
	"math"

	"worldgen/internal/mathx"
)

// Gradient returns the position of the input along the segment from low to
// high, mapped onto [-1, 1]: points at or before low yield -1, points at or
// past high yield 1.
type Gradient struct {
	low           mathx.Vector3
	delta         mathx.Vector3
	lengthSquared float64
	interp        Interpolator
}

// NewGradient builds a gradient along low→high. A nil interpolator blends
// linearly. A zero-length segment is rejected.
func NewGradient(low, high mathx.Vector3, interp Interpolator) (*Gradient, error) {
	delta := high.Sub(low)
	lengthSquared := delta.Dot(delta)
	if lengthSquared == 0 {
		return nil, invalid("gradient low %v equals high %v", low, high)
	}
	return &Gradient{
		low:           low,
		delta:         delta,
		lengthSquared: lengthSquared,
		interp:        orLinear(interp),
	}, nil
}

func (g *Gradient) Get1D(x float64) float64 {
	dp := (x - g.low.X()) * g.delta.X()
	return g.blend(dp)
}

func (g *Gradient) Get2D(x, y float64) float64 {
	dp := (x-g.low.X())*g.delta.X() + (y-g.low.Y())*g.delta.Y()
	return g.blend(dp)
}

func (g *Gradient) Get3D(x, y, z float64) float64 {
	dp := (x-g.low.X())*g.delta.X() + (y-g.low.Y())*g.delta.Y() + (z-g.low.Z())*g.delta.Z()
	return g.blend(dp)
}

func (g *Gradient) blend(dp float64) float64 {
	t := math.Max(math.Min(dp/g.lengthSquared, 1), 0)
	return g.interp.Interpolate(-1, 1, t)
}
