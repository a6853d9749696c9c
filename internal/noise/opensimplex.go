package noise

import "github.com/ojrac/opensimplex-go"

// OpenSimplex wraps the OpenSimplex implementation from
// github.com/ojrac/opensimplex-go. It has no native 1D form; Get1D samples
// the 2D form along y=0. Output lies roughly in [-1, 1].
type OpenSimplex struct {
	noise opensimplex.Noise
}

// NewOpenSimplex seeds the underlying generator.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.New(seed)}
}

func (o *OpenSimplex) Get1D(x float64) float64 {
	return o.noise.Eval2(x, 0)
}

func (o *OpenSimplex) Get2D(x, y float64) float64 {
	return o.noise.Eval2(x, y)
}

func (o *OpenSimplex) Get3D(x, y, z float64) float64 {
	return o.noise.Eval3(x, y, z)
}
