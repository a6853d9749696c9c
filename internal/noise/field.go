// Package noise provides composable scalar fields for terrain generation.
//
// A Field is a pure function from a 1D, 2D or 3D coordinate to a float64.
// Generators compute values directly from coordinates and tables fixed at
// construction; combinators, modifiers and transforms own child fields and
// combine their output. Fields never change after construction, so a single
// tree can be sampled from many goroutines at once.
package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDimension is reported when a field has no form for the
	// requested dimensionality.
	ErrUnsupportedDimension = errors.New("unsupported dimension")
	// ErrInvalidConfiguration is reported when a field is constructed with
	// parameters it cannot evaluate.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Field is a scalar field sampled at 1D, 2D and 3D coordinates.
type Field interface {
	Get1D(x float64) float64
	Get2D(x, y float64) float64
	Get3D(x, y, z float64) float64
}

// Dimension selects which form of a field is sampled.
type Dimension int

const (
	D1 Dimension = 1
	D2 Dimension = 2
	D3 Dimension = 3
)

func (d Dimension) String() string {
	return fmt.Sprintf("%dD", int(d))
}

func (d Dimension) valid() bool {
	return d >= D1 && d <= D3
}

// Checker is implemented by fields that can report, before sampling, whether
// they support a dimension. Fields with children check them too.
type Checker interface {
	Check(dim Dimension) error
}

// Check reports whether f, and everything below it, can be sampled in dim.
// Fields that do not implement Checker support every dimension.
func Check(f Field, dim Dimension) error {
	if f == nil {
		return fmt.Errorf("nil field: %w", ErrInvalidConfiguration)
	}
	if !dim.valid() {
		return fmt.Errorf("dimension %d: %w", int(dim), ErrUnsupportedDimension)
	}
	if c, ok := f.(Checker); ok {
		return c.Check(dim)
	}
	return nil
}

func checkAll(dim Dimension, fields ...Field) error {
	for _, f := range fields {
		if err := Check(f, dim); err != nil {
			return err
		}
	}
	return nil
}

func unsupported(name string, dim Dimension) error {
	return fmt.Errorf("%s %s: %w", name, dim, ErrUnsupportedDimension)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidConfiguration)...)
}

// fastFloor is the lattice floor shared by the lattice fields:
// values at or below zero step down one cell, so exact non-positive
// integers land in the cell below.
func fastFloor(x float64) int {
	if x > 0 {
		return int(x)
	}
	return int(x) - 1
}
