package noise

import (
	"errors"
	"math"
	"testing"

	"worldgen/internal/mathx"
)

func TestAbs(t *testing.T) {
	a := NewAbs(lattice{})
	if got := a.Get1D(-3.5); got != 3.5 {
		t.Fatalf("abs(-3.5) = %v", got)
	}
	for _, p := range randomPoints(100) {
		if a.Get3D(p[0], p[1], p[2]) < 0 {
			t.Fatalf("abs negative at %v", p)
		}
	}
}

func TestClamp(t *testing.T) {
	c, err := NewClamp(lattice{}, 0, 1)
	if err != nil {
		t.Fatalf("NewClamp: %v", err)
	}
	tests := []struct {
		x    float64
		want float64
	}{
		{-2, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{7, 1},
	}
	for _, tt := range tests {
		if got := c.Get1D(tt.x); got != tt.want {
			t.Errorf("clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if _, err := NewClamp(lattice{}, 2, 1); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("NewClamp(2,1) = %v", err)
	}
}

func TestSmoothPreservesFlatInput(t *testing.T) {
	s := NewSmooth3x3(Constant(2.5))
	for _, p := range randomPoints(20) {
		if got := s.Get1D(p[0]); math.Abs(got-2.5) > 1e-12 {
			t.Fatalf("1D smooth of flat field = %v", got)
		}
		if got := s.Get2D(p[0], p[1]); math.Abs(got-2.5) > 1e-12 {
			t.Fatalf("2D smooth of flat field = %v", got)
		}
		if got := s.Get3D(p[0], p[1], p[2]); math.Abs(got-2.5) > 1e-12 {
			t.Fatalf("3D smooth of flat field = %v", got)
		}
	}
}

func TestSmoothPreservesLinearInput(t *testing.T) {
	// The kernels are symmetric, so a plane passes through unchanged.
	s := NewSmooth3x3(lattice{})
	if got := s.Get3D(1, 2, 3); math.Abs(got-6) > 1e-12 {
		t.Fatalf("3D smooth of plane = %v, want 6", got)
	}
	if got := s.Get2D(4, -1); math.Abs(got-3) > 1e-12 {
		t.Fatalf("2D smooth of plane = %v, want 3", got)
	}
}

func TestFBMSingleOctave(t *testing.T) {
	src := NewWhite(8)
	value := NewValue(src, Cosine)
	f, err := NewFBM(value, 1, 0.01, 80, DefaultLacunarity, DefaultPersistence)
	if err != nil {
		t.Fatalf("NewFBM: %v", err)
	}
	for _, p := range randomPoints(100) {
		want := 80 * value.Get1D(0.01*p[0])
		if got := f.Get1D(p[0]); math.Abs(got-want) > 1e-9 {
			t.Fatalf("fbm at %v = %v, want %v", p[0], got, want)
		}
	}
}

func TestFBMOctaveWeights(t *testing.T) {
	f, err := NewFBM(lattice{}, 3, 1, 1, 2, 0.5)
	if err != nil {
		t.Fatalf("NewFBM: %v", err)
	}
	// x + 0.5*2x + 0.25*4x
	if got := f.Get1D(3); math.Abs(got-9) > 1e-12 {
		t.Fatalf("fbm = %v, want 9", got)
	}
	if _, err := NewFBM(lattice{}, 0, 1, 1, 2, 0.5); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("NewFBM(0 octaves) = %v", err)
	}
}

func TestWoodBand(t *testing.T) {
	tests := []struct {
		in, mult, want float64
	}{
		{0.3, DefaultWoodMultiplier, 0.2},
		{0.1, DefaultWoodMultiplier, 0.4},
		{-0.3, DefaultWoodMultiplier, -0.2},
		{2, 1, 0},
	}
	for _, tt := range tests {
		w := NewWoodBand(Constant(tt.in), tt.mult)
		if got := w.Get1D(0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wood(%v*%v) = %v, want %v", tt.in, tt.mult, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	perlin := mustPerlin(t, 21)
	identity := NewUniformScale(perlin, 1)
	for _, p := range randomPoints(100) {
		if identity.Get3D(p[0], p[1], p[2]) != perlin.Get3D(p[0], p[1], p[2]) {
			t.Fatalf("unit scale changed output at %v", p)
		}
	}

	s := NewScale(lattice{}, mathx.Vec(2, 3, 4))
	if got := s.Get3D(1, 2, 3); got != 20 {
		t.Fatalf("scaled Get3D = %v, want 20", got)
	}
	if got := s.Get2D(1, 2); got != 8 {
		t.Fatalf("scaled Get2D = %v, want 8", got)
	}
	if got := s.Get1D(5); got != 10 {
		t.Fatalf("scaled Get1D = %v, want 10", got)
	}
}

func TestModifiersPropagateCheck(t *testing.T) {
	perlin := mustPerlin(t, 1)
	clamp, _ := NewClamp(perlin, -1, 1)
	fbm, _ := NewFBM(perlin, 2, 1, 1, 2, 0.5)
	fields := map[string]Field{
		"abs":    NewAbs(perlin),
		"clamp":  clamp,
		"smooth": NewSmooth3x3(perlin),
		"fbm":    fbm,
		"wood":   NewWoodBand(perlin, 4),
		"scale":  NewUniformScale(perlin, 2),
	}
	for name, f := range fields {
		if err := Check(f, D1); !errors.Is(err, ErrUnsupportedDimension) {
			t.Errorf("%s Check(D1) = %v", name, err)
		}
		if err := Check(f, D3); err != nil {
			t.Errorf("%s Check(D3) = %v", name, err)
		}
	}
}
