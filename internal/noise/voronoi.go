package noise

import (
	"math"

	"worldgen/internal/mathx"
)

// VoronoiReducer turns the nearest feature point into the field value.
type VoronoiReducer func(input, feature mathx.Vector3, distance float64) float64

// ReduceDistance returns the distance to the nearest feature point.
func ReduceDistance(_, _ mathx.Vector3, distance float64) float64 {
	return distance
}

// ReduceCellValue samples value at the nearest feature point, which is
// constant across a cell and yields flat polygonal plateaus.
func ReduceCellValue(value Field) VoronoiReducer {
	return func(_, feature mathx.Vector3, _ float64) float64 {
		return value.Get3D(feature.X(), feature.Y(), feature.Z())
	}
}

const voronoiReach = 2

// Voronoi is nearest-feature cellular noise: each unit cell holds one
// feature point displaced from the cell corner by per-axis seed fields, and
// the closest feature within two cells on every axis wins.
//
// Voronoi and Worley are distinct algorithms and produce different fields.
type Voronoi struct {
	dim      Dimension
	seeds    []Field
	distance DistanceFunc
	reduce   VoronoiReducer
}

// NewVoronoi builds a Voronoi field of dimensionality dim. seeds needs one
// displacement field per axis, so len(seeds) must equal dim.
func NewVoronoi(dim Dimension, seeds []Field, distance DistanceFunc, reduce VoronoiReducer) (*Voronoi, error) {
	if !dim.valid() {
		return nil, invalid("voronoi: dimension %d", int(dim))
	}
	if len(seeds) != int(dim) {
		return nil, invalid("voronoi: %s needs %d seed fields, got %d", dim, int(dim), len(seeds))
	}
	for i, s := range seeds {
		if s == nil {
			return nil, invalid("voronoi: seed field %d is nil", i)
		}
	}
	if distance == nil {
		return nil, invalid("voronoi: nil distance function")
	}
	if reduce == nil {
		return nil, invalid("voronoi: nil reducer")
	}
	return &Voronoi{
		dim:      dim,
		seeds:    append([]Field(nil), seeds...),
		distance: distance,
		reduce:   reduce,
	}, nil
}

func (v *Voronoi) Get1D(x float64) float64 {
	v.require(D1)
	input := mathx.Vec(x, 0, 0)
	xi := fastFloor(x)

	minDist := math.MaxFloat64
	var best mathx.Vector3
	for cx := xi - voronoiReach; cx <= xi+voronoiReach; cx++ {
		fx := float64(cx)
		p := mathx.Vec(fx+v.seeds[0].Get1D(fx), 0, 0)
		if d := v.distance(input, p); d < minDist {
			minDist = d
			best = p
		}
	}
	return v.reduce(input, best, minDist)
}

func (v *Voronoi) Get2D(x, y float64) float64 {
	v.require(D2)
	input := mathx.Vec(x, y, 0)
	xi, yi := fastFloor(x), fastFloor(y)

	minDist := math.MaxFloat64
	var best mathx.Vector3
	for cy := yi - voronoiReach; cy <= yi+voronoiReach; cy++ {
		for cx := xi - voronoiReach; cx <= xi+voronoiReach; cx++ {
			fx, fy := float64(cx), float64(cy)
			p := mathx.Vec(fx+v.seeds[0].Get2D(fx, fy), fy+v.seeds[1].Get2D(fx, fy), 0)
			if d := v.distance(input, p); d < minDist {
				minDist = d
				best = p
			}
		}
	}
	return v.reduce(input, best, minDist)
}

func (v *Voronoi) Get3D(x, y, z float64) float64 {
	v.require(D3)
	input := mathx.Vec(x, y, z)
	xi, yi, zi := fastFloor(x), fastFloor(y), fastFloor(z)

	minDist := math.MaxFloat64
	var best mathx.Vector3
	for cz := zi - voronoiReach; cz <= zi+voronoiReach; cz++ {
		for cy := yi - voronoiReach; cy <= yi+voronoiReach; cy++ {
			for cx := xi - voronoiReach; cx <= xi+voronoiReach; cx++ {
				fx, fy, fz := float64(cx), float64(cy), float64(cz)
				p := mathx.Vec(
					fx+v.seeds[0].Get3D(fx, fy, fz),
					fy+v.seeds[1].Get3D(fx, fy, fz),
					fz+v.seeds[2].Get3D(fx, fy, fz),
				)
				if d := v.distance(input, p); d < minDist {
					minDist = d
					best = p
				}
			}
		}
	}
	return v.reduce(input, best, minDist)
}

// Check rejects dimensions above the seed arity and checks the seed fields.
func (v *Voronoi) Check(dim Dimension) error {
	if dim > v.dim {
		return unsupported("voronoi", dim)
	}
	return checkAll(dim, v.seeds[:dim]...)
}

func (v *Voronoi) require(dim Dimension) {
	if dim > v.dim {
		panic(unsupported("voronoi", dim))
	}
}
