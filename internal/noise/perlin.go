package noise

import "math"

// Perlin is improved Perlin noise over a seeded permutation table. Output
// lies in [-1, 1]. There is no 1D form.
type Perlin struct {
	perm permutationTable
}

// NewPerlin builds the permutation table from rng. rng is only used during
// construction.
func NewPerlin(rng Shuffler) (*Perlin, error) {
	if rng == nil {
		return nil, invalid("perlin: nil random source")
	}
	return &Perlin{perm: newPermutationTable(rng)}, nil
}

// Get1D panics: Perlin noise has no 1D form. Pipelines are expected to be
// validated with Check before sampling.
func (p *Perlin) Get1D(float64) float64 {
	panic(unsupported("perlin", D1))
}

// Get2D samples the 3D lattice on the y=0 plane, so (x, z) here matches
// Get3D(x, 0, z) hashing on the first two axes.
func (p *Perlin) Get2D(x, z float64) float64 {
	fx, fz := math.Floor(x), math.Floor(z)
	xi := int(fx) & 255
	zi := int(fz) & 255
	x -= fx
	z -= fz

	u := fade(x)
	w := fade(z)

	a := p.perm[xi]
	aa := p.perm[a] + zi
	b := p.perm[xi+1]
	bb := p.perm[b] + zi

	return lerp(w,
		lerp(u, grad(p.perm[aa], x, 0, z), grad(p.perm[bb], x-1, 0, z)),
		lerp(u, grad(p.perm[aa+1], x, 0, z-1), grad(p.perm[bb+1], x-1, 0, z-1)))
}

func (p *Perlin) Get3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi := int(fx) & 255
	yi := int(fy) & 255
	zi := int(fz) & 255
	x -= fx
	y -= fy
	z -= fz

	u, v, w := fade(x), fade(y), fade(z)

	a := p.perm[xi] + yi
	aa := p.perm[a] + zi
	ab := p.perm[a+1] + zi
	b := p.perm[xi+1] + yi
	ba := p.perm[b] + zi
	bb := p.perm[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.perm[aa], x, y, z), grad(p.perm[ba], x-1, y, z)),
			lerp(u, grad(p.perm[ab], x, y-1, z), grad(p.perm[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p.perm[aa+1], x, y, z-1), grad(p.perm[ba+1], x-1, y, z-1)),
			lerp(u, grad(p.perm[ab+1], x, y-1, z-1), grad(p.perm[bb+1], x-1, y-1, z-1))))
}

// Check rejects D1.
func (p *Perlin) Check(dim Dimension) error {
	if dim == D1 {
		return unsupported("perlin", dim)
	}
	return nil
}

// grad dots (x, y, z) with one of 12 edge gradients picked by the low four
// bits of hash.
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
