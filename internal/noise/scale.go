package noise

import "worldgen/internal/mathx"

// Scale multiplies input coordinates per axis before sampling its source.
type Scale struct {
	source Field
	factor mathx.Vector3
}

func NewScale(source Field, factor mathx.Vector3) *Scale {
	return &Scale{source: source, factor: factor}
}

// NewUniformScale scales every axis by the same factor.
func NewUniformScale(source Field, factor float64) *Scale {
	return NewScale(source, mathx.Vec(factor, factor, factor))
}

func (s *Scale) Get1D(x float64) float64 {
	return s.source.Get1D(x * s.factor.X())
}

func (s *Scale) Get2D(x, y float64) float64 {
	return s.source.Get2D(x*s.factor.X(), y*s.factor.Y())
}

func (s *Scale) Get3D(x, y, z float64) float64 {
	return s.source.Get3D(x*s.factor.X(), y*s.factor.Y(), z*s.factor.Z())
}

func (s *Scale) Check(dim Dimension) error {
	return Check(s.source, dim)
}
