package noise

import "math"

var simplexGradients = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

var (
	skew2   = 0.5 * (math.Sqrt(3) - 1)
	unskew2 = (3 - math.Sqrt(3)) / 6
)

const (
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

// Simplex is simplex noise over a seeded permutation table. Output lies in
// [-1, 1]. There is no 1D form.
type Simplex struct {
	perm      permutationTable
	permMod12 [512]int
}

// NewSimplex builds the permutation tables from rng.
func NewSimplex(rng Shuffler) (*Simplex, error) {
	if rng == nil {
		return nil, invalid("simplex: nil random source")
	}
	s := &Simplex{perm: newPermutationTable(rng)}
	for i := range s.perm {
		s.permMod12[i] = s.perm[i] % 12
	}
	return s, nil
}

// Get1D panics: simplex noise has no 1D form.
func (s *Simplex) Get1D(float64) float64 {
	panic(unsupported("simplex", D1))
}

func (s *Simplex) Get2D(x, y float64) float64 {
	// Skew the input to find the simplex cell.
	sk := (x + y) * skew2
	i := fastFloor(x + sk)
	j := fastFloor(y + sk)
	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower triangle (1,0) first when x0 > y0, upper (0,1) otherwise.
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := i & 255
	jj := j & 255
	gi0 := s.permMod12[ii+s.perm[jj]]
	gi1 := s.permMod12[ii+i1+s.perm[jj+j1]]
	gi2 := s.permMod12[ii+1+s.perm[jj+1]]

	n := corner2(gi0, x0, y0) + corner2(gi1, x1, y1) + corner2(gi2, x2, y2)
	return 70 * n
}

func (s *Simplex) Get3D(x, y, z float64) float64 {
	sk := (x + y + z) * skew3
	i := fastFloor(x + sk)
	j := fastFloor(y + sk)
	k := fastFloor(z + sk)
	t := float64(i+j+k) * unskew3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Corner ordering follows the descending order of x0, y0, z0.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + unskew3
	y1 := y0 - float64(j1) + unskew3
	z1 := z0 - float64(k1) + unskew3
	x2 := x0 - float64(i2) + 2*unskew3
	y2 := y0 - float64(j2) + 2*unskew3
	z2 := z0 - float64(k2) + 2*unskew3
	x3 := x0 - 1 + 3*unskew3
	y3 := y0 - 1 + 3*unskew3
	z3 := z0 - 1 + 3*unskew3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := s.permMod12[ii+s.perm[jj+s.perm[kk]]]
	gi1 := s.permMod12[ii+i1+s.perm[jj+j1+s.perm[kk+k1]]]
	gi2 := s.permMod12[ii+i2+s.perm[jj+j2+s.perm[kk+k2]]]
	gi3 := s.permMod12[ii+1+s.perm[jj+1+s.perm[kk+1]]]

	n := corner3(gi0, x0, y0, z0) + corner3(gi1, x1, y1, z1) +
		corner3(gi2, x2, y2, z2) + corner3(gi3, x3, y3, z3)
	return 32 * n
}

// Check rejects D1.
func (s *Simplex) Check(dim Dimension) error {
	if dim == D1 {
		return unsupported("simplex", dim)
	}
	return nil
}

func corner2(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := simplexGradients[gi]
	return t * t * (g[0]*x + g[1]*y)
}

func corner3(gi int, x, y, z float64) float64 {
	t := 0.6 - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := simplexGradients[gi]
	return t * t * (g[0]*x + g[1]*y + g[2]*z)
}
