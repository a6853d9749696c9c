package noise

// Value interpolates a source field sampled at integer lattice points.
// White noise is the usual source.
type Value struct {
	source Field
	interp Interpolator
}

// NewValue wraps source. A nil interpolator blends linearly.
func NewValue(source Field, interp Interpolator) *Value {
	return &Value{source: source, interp: orLinear(interp)}
}

func (v *Value) Get1D(x float64) float64 {
	ix := fastFloor(x)
	fx := x - float64(ix)

	x0 := float64(ix)
	return v.interp.Interpolate(v.source.Get1D(x0), v.source.Get1D(x0+1), fx)
}

func (v *Value) Get2D(x, y float64) float64 {
	ix, iy := fastFloor(x), fastFloor(y)
	fx, fy := x-float64(ix), y-float64(iy)

	x0, y0 := float64(ix), float64(iy)
	v1 := v.source.Get2D(x0, y0)
	v2 := v.source.Get2D(x0+1, y0)
	v3 := v.source.Get2D(x0, y0+1)
	v4 := v.source.Get2D(x0+1, y0+1)

	i1 := v.interp.Interpolate(v1, v2, fx)
	i2 := v.interp.Interpolate(v3, v4, fx)
	return v.interp.Interpolate(i1, i2, fy)
}

func (v *Value) Get3D(x, y, z float64) float64 {
	ix, iy, iz := fastFloor(x), fastFloor(y), fastFloor(z)
	fx, fy, fz := x-float64(ix), y-float64(iy), z-float64(iz)

	x0, y0, z0 := float64(ix), float64(iy), float64(iz)
	v1 := v.source.Get3D(x0, y0, z0)
	v2 := v.source.Get3D(x0+1, y0, z0)
	v3 := v.source.Get3D(x0, y0+1, z0)
	v4 := v.source.Get3D(x0+1, y0+1, z0)
	v5 := v.source.Get3D(x0, y0, z0+1)
	v6 := v.source.Get3D(x0+1, y0, z0+1)
	v7 := v.source.Get3D(x0, y0+1, z0+1)
	v8 := v.source.Get3D(x0+1, y0+1, z0+1)

	ii1 := v.interp.Interpolate(v1, v2, fx)
	ii2 := v.interp.Interpolate(v3, v4, fx)
	ii3 := v.interp.Interpolate(v5, v6, fx)
	ii4 := v.interp.Interpolate(v7, v8, fx)

	i1 := v.interp.Interpolate(ii1, ii2, fy)
	i2 := v.interp.Interpolate(ii3, ii4, fy)
	return v.interp.Interpolate(i1, i2, fz)
}

// Check reports whether the source supports dim.
func (v *Value) Check(dim Dimension) error {
	return Check(v.source, dim)
}
