package noise

import "math"

// Abs returns the absolute value of its source.
type Abs struct {
	source Field
}

func NewAbs(source Field) *Abs {
	return &Abs{source: source}
}

func (a *Abs) Get1D(x float64) float64       { return math.Abs(a.source.Get1D(x)) }
func (a *Abs) Get2D(x, y float64) float64    { return math.Abs(a.source.Get2D(x, y)) }
func (a *Abs) Get3D(x, y, z float64) float64 { return math.Abs(a.source.Get3D(x, y, z)) }

func (a *Abs) Check(dim Dimension) error {
	return Check(a.source, dim)
}

// Clamp limits its source to [lower, upper].
type Clamp struct {
	source       Field
	lower, upper float64
}

// NewClamp rejects lower > upper. The conventional bounds are [0, 1].
func NewClamp(source Field, lower, upper float64) (*Clamp, error) {
	if lower > upper {
		return nil, invalid("clamp: lower %g above upper %g", lower, upper)
	}
	return &Clamp{source: source, lower: lower, upper: upper}, nil
}

func (c *Clamp) Get1D(x float64) float64       { return c.clamp(c.source.Get1D(x)) }
func (c *Clamp) Get2D(x, y float64) float64    { return c.clamp(c.source.Get2D(x, y)) }
func (c *Clamp) Get3D(x, y, z float64) float64 { return c.clamp(c.source.Get3D(x, y, z)) }

func (c *Clamp) clamp(v float64) float64 {
	switch {
	case v < c.lower:
		return c.lower
	case v > c.upper:
		return c.upper
	default:
		return v
	}
}

func (c *Clamp) Check(dim Dimension) error {
	return Check(c.source, dim)
}

// Smooth3x3 averages the source over its immediate lattice neighbourhood
// with binomial-like weights that sum to one:
//
//	1D: center 1/2, 2 neighbours 1/4
//	2D: center 1/4, 4 edges 1/8, 4 corners 1/16
//	3D: center 1/8, 6 faces 1/16, 12 edges 1/48, 8 corners 1/32
type Smooth3x3 struct {
	source Field
}

func NewSmooth3x3(source Field) *Smooth3x3 {
	return &Smooth3x3{source: source}
}

func (s *Smooth3x3) Get1D(x float64) float64 {
	return s.source.Get1D(x)/2 + s.source.Get1D(x-1)/4 + s.source.Get1D(x+1)/4
}

func (s *Smooth3x3) Get2D(x, y float64) float64 {
	src := s.source
	corners := (src.Get2D(x-1, y-1) + src.Get2D(x+1, y-1) + src.Get2D(x-1, y+1) + src.Get2D(x+1, y+1)) / 16
	sides := (src.Get2D(x-1, y) + src.Get2D(x+1, y) + src.Get2D(x, y-1) + src.Get2D(x, y+1)) / 8
	center := src.Get2D(x, y) / 4
	return corners + sides + center
}

func (s *Smooth3x3) Get3D(x, y, z float64) float64 {
	src := s.source

	var edges float64
	edges += src.Get3D(x+1, y+1, z) + src.Get3D(x-1, y+1, z) + src.Get3D(x, y+1, z+1) + src.Get3D(x, y+1, z-1)
	edges += src.Get3D(x+1, y-1, z) + src.Get3D(x-1, y-1, z) + src.Get3D(x, y-1, z+1) + src.Get3D(x, y-1, z-1)
	edges += src.Get3D(x+1, y, z+1) + src.Get3D(x+1, y, z-1) + src.Get3D(x-1, y, z+1) + src.Get3D(x-1, y, z-1)
	edges /= 48

	var corners float64
	corners += src.Get3D(x-1, y-1, z-1) + src.Get3D(x-1, y-1, z+1) + src.Get3D(x-1, y+1, z-1) + src.Get3D(x-1, y+1, z+1)
	corners += src.Get3D(x+1, y-1, z-1) + src.Get3D(x+1, y-1, z+1) + src.Get3D(x+1, y+1, z-1) + src.Get3D(x+1, y+1, z+1)
	corners /= 32

	var sides float64
	sides += src.Get3D(x+1, y, z) + src.Get3D(x-1, y, z) + src.Get3D(x, y+1, z)
	sides += src.Get3D(x, y-1, z) + src.Get3D(x, y, z+1) + src.Get3D(x, y, z-1)
	sides /= 16

	center := src.Get3D(x, y, z) / 8
	return edges + corners + sides + center
}

func (s *Smooth3x3) Check(dim Dimension) error {
	return Check(s.source, dim)
}

const (
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
)

// FBM sums octaves of its source: octave k samples at frequency*lacunarity^k
// and is weighted by amplitude*persistence^k. The sum is not normalised.
type FBM struct {
	source      Field
	octaves     int
	frequency   float64
	amplitude   float64
	lacunarity  float64
	persistence float64
}

func NewFBM(source Field, octaves int, frequency, amplitude, lacunarity, persistence float64) (*FBM, error) {
	if octaves < 1 {
		return nil, invalid("fbm: octaves %d", octaves)
	}
	return &FBM{
		source:      source,
		octaves:     octaves,
		frequency:   frequency,
		amplitude:   amplitude,
		lacunarity:  lacunarity,
		persistence: persistence,
	}, nil
}

func (f *FBM) Get1D(x float64) float64 {
	total := 0.0
	freq, amp := f.frequency, f.amplitude
	for i := 0; i < f.octaves; i++ {
		total += f.source.Get1D(x*freq) * amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return total
}

func (f *FBM) Get2D(x, y float64) float64 {
	total := 0.0
	freq, amp := f.frequency, f.amplitude
	for i := 0; i < f.octaves; i++ {
		total += f.source.Get2D(x*freq, y*freq) * amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return total
}

func (f *FBM) Get3D(x, y, z float64) float64 {
	total := 0.0
	freq, amp := f.frequency, f.amplitude
	for i := 0; i < f.octaves; i++ {
		total += f.source.Get3D(x*freq, y*freq, z*freq) * amp
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return total
}

func (f *FBM) Check(dim Dimension) error {
	return Check(f.source, dim)
}

const DefaultWoodMultiplier = 4.0

// WoodBand keeps the fractional part of source*multiplier, truncating
// toward zero, which produces concentric growth-ring bands.
type WoodBand struct {
	source     Field
	multiplier float64
}

func NewWoodBand(source Field, multiplier float64) *WoodBand {
	return &WoodBand{source: source, multiplier: multiplier}
}

func (w *WoodBand) Get1D(x float64) float64       { return w.band(w.source.Get1D(x)) }
func (w *WoodBand) Get2D(x, y float64) float64    { return w.band(w.source.Get2D(x, y)) }
func (w *WoodBand) Get3D(x, y, z float64) float64 { return w.band(w.source.Get3D(x, y, z)) }

func (w *WoodBand) band(v float64) float64 {
	v *= w.multiplier
	return v - math.Trunc(v)
}

func (w *WoodBand) Check(dim Dimension) error {
	return Check(w.source, dim)
}
