package noise

import perlin "github.com/aquilax/go-perlin"

// Harmonic is a multi-octave Perlin sum from github.com/aquilax/go-perlin.
// alpha divides the amplitude and beta multiplies the frequency at every
// octave. Unlike Perlin it has a native 1D form.
type Harmonic struct {
	p *perlin.Perlin
}

// NewHarmonic seeds the underlying generator with n octaves.
func NewHarmonic(alpha, beta float64, n int, seed int64) (*Harmonic, error) {
	if n < 1 {
		return nil, invalid("harmonic: octaves %d", n)
	}
	if alpha == 0 {
		return nil, invalid("harmonic: zero alpha")
	}
	return &Harmonic{p: perlin.NewPerlin(alpha, beta, int32(n), seed)}, nil
}

func (h *Harmonic) Get1D(x float64) float64 {
	return h.p.Noise1D(x)
}

func (h *Harmonic) Get2D(x, y float64) float64 {
	return h.p.Noise2D(x, y)
}

func (h *Harmonic) Get3D(x, y, z float64) float64 {
	return h.p.Noise3D(x, y, z)
}
