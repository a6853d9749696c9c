package noise

import (
	"math"

	"worldgen/internal/mathx"
)

// MaxWorleyOrder bounds how many nearest distances a Worley field tracks.
const MaxWorleyOrder = 9

// worleyUnset fills distance slots before any candidate arrives.
const worleyUnset = math.MaxFloat64

// InsertFunc records distance d into dists.
type InsertFunc func(dists []float64, d float64)

// InsertSorted keeps dists ascending, dropping the largest value when a
// closer candidate arrives.
func InsertSorted(dists []float64, d float64) {
	for i := len(dists) - 1; i >= 0; i-- {
		if d > dists[i] {
			break
		}
		prev := dists[i]
		dists[i] = d
		if i+1 < len(dists) {
			dists[i+1] = prev
		}
	}
}

// WorleyReducer resolves the tracked distances into the field value.
type WorleyReducer func(dists []float64) float64

// F1 is the distance to the nearest feature point.
func F1(dists []float64) float64 {
	return dists[0]
}

// F2 is the distance to the second nearest feature point, or F1 when only
// one distance is tracked.
func F2(dists []float64) float64 {
	if len(dists) < 2 {
		return dists[0]
	}
	return dists[1]
}

// F2MinusF1 is zero along cell borders and grows towards feature points'
// neighbourhoods, giving ridge lines.
func F2MinusF1(dists []float64) float64 {
	if len(dists) < 2 {
		return 0
	}
	return dists[1] - dists[0]
}

// Worley is Worley cellular noise: each unit cell holds a Poisson
// distributed number of feature points (1 to 9) placed by a hash-seeded
// linear congruential stream, and the closest distances across the 3^n
// surrounding cells are kept.
type Worley struct {
	dim      Dimension
	seed     uint32
	order    int
	distance DistanceFunc
	insert   InsertFunc
	reduce   WorleyReducer
}

// NewWorley builds a Worley field of dimensionality dim tracking the order
// nearest distances. A nil insert function uses InsertSorted.
func NewWorley(dim Dimension, seed int32, order int, distance DistanceFunc, insert InsertFunc, reduce WorleyReducer) (*Worley, error) {
	if !dim.valid() {
		return nil, invalid("worley: dimension %d", int(dim))
	}
	if order < 1 || order > MaxWorleyOrder {
		return nil, invalid("worley: order %d outside [1,%d]", order, MaxWorleyOrder)
	}
	if distance == nil {
		return nil, invalid("worley: nil distance function")
	}
	if reduce == nil {
		return nil, invalid("worley: nil reducer")
	}
	if insert == nil {
		insert = InsertSorted
	}
	return &Worley{
		dim:      dim,
		seed:     uint32(seed),
		order:    order,
		distance: distance,
		insert:   insert,
		reduce:   reduce,
	}, nil
}

func (w *Worley) Get1D(x float64) float64 {
	var buf [MaxWorleyOrder]float64
	dists := w.reset(buf[:])
	input := mathx.Vec(x, 0, 0)
	cx := int(math.Floor(x))
	for i := -1; i <= 1; i++ {
		w.scan(dists, input, D1, cx+i, 0, 0)
	}
	return w.reduce(dists)
}

func (w *Worley) Get2D(x, y float64) float64 {
	w.require(D2)
	var buf [MaxWorleyOrder]float64
	dists := w.reset(buf[:])
	input := mathx.Vec(x, y, 0)
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			w.scan(dists, input, D2, cx+i, cy+j, 0)
		}
	}
	return w.reduce(dists)
}

func (w *Worley) Get3D(x, y, z float64) float64 {
	w.require(D3)
	var buf [MaxWorleyOrder]float64
	dists := w.reset(buf[:])
	input := mathx.Vec(x, y, z)
	cx, cy, cz := int(math.Floor(x)), int(math.Floor(y)), int(math.Floor(z))
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				w.scan(dists, input, D3, cx+i, cy+j, cz+k)
			}
		}
	}
	return w.reduce(dists)
}

// Check rejects dimensions above the configured one.
func (w *Worley) Check(dim Dimension) error {
	if dim > w.dim {
		return unsupported("worley", dim)
	}
	return nil
}

func (w *Worley) require(dim Dimension) {
	if dim > w.dim {
		panic(unsupported("worley", dim))
	}
}

func (w *Worley) reset(buf []float64) []float64 {
	dists := buf[:w.order]
	for i := range dists {
		dists[i] = worleyUnset
	}
	return dists
}

// scan inserts the distances to every feature point of one cell. Unused
// axes stay at zero so lower dimensions reuse the 3D hashing.
func (w *Worley) scan(dists []float64, input mathx.Vector3, dim Dimension, cx, cy, cz int) {
	last := mathx.FNV3(uint32(cx)+w.seed, uint32(cy), uint32(cz))
	count := poissonCount(last)

	for n := 0; n < count; n++ {
		var offset [3]float64
		for axis := 0; axis < int(dim); axis++ {
			last = mathx.LCG(last)
			offset[axis] = mathx.Unit(last)
		}
		feature := mathx.Vec(float64(cx)+offset[0], float64(cy)+offset[1], float64(cz)+offset[2])
		w.insert(dists, w.distance(input, feature))
	}
}

// poissonCount maps a uniform 32-bit value onto a Poisson(mean 4) feature
// count clamped to [1, 9] using the cumulative table of the original
// cellular texture basis.
func poissonCount(v uint32) int {
	switch {
	case v < 393325350:
		return 1
	case v < 1022645910:
		return 2
	case v < 1861739990:
		return 3
	case v < 2700834071:
		return 4
	case v < 3372109335:
		return 5
	case v < 3819626178:
		return 6
	case v < 4075350088:
		return 7
	case v < 4203212043:
		return 8
	default:
		return 9
	}
}
