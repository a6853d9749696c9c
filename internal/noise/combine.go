package noise

// Add sums two fields pointwise.
type Add struct {
	left, right Field
}

func NewAdd(left, right Field) *Add {
	return &Add{left: left, right: right}
}

// AddConstant offsets source by value.
func AddConstant(source Field, value float64) *Add {
	return NewAdd(source, Constant(value))
}

func (a *Add) Get1D(x float64) float64 {
	return a.left.Get1D(x) + a.right.Get1D(x)
}

func (a *Add) Get2D(x, y float64) float64 {
	return a.left.Get2D(x, y) + a.right.Get2D(x, y)
}

func (a *Add) Get3D(x, y, z float64) float64 {
	return a.left.Get3D(x, y, z) + a.right.Get3D(x, y, z)
}

func (a *Add) Check(dim Dimension) error {
	return checkAll(dim, a.left, a.right)
}

// Multiply multiplies two fields pointwise.
type Multiply struct {
	left, right Field
}

func NewMultiply(left, right Field) *Multiply {
	return &Multiply{left: left, right: right}
}

// MultiplyConstant scales the output of source by value.
func MultiplyConstant(source Field, value float64) *Multiply {
	return NewMultiply(source, Constant(value))
}

func (m *Multiply) Get1D(x float64) float64 {
	return m.left.Get1D(x) * m.right.Get1D(x)
}

func (m *Multiply) Get2D(x, y float64) float64 {
	return m.left.Get2D(x, y) * m.right.Get2D(x, y)
}

func (m *Multiply) Get3D(x, y, z float64) float64 {
	return m.left.Get3D(x, y, z) * m.right.Get3D(x, y, z)
}

func (m *Multiply) Check(dim Dimension) error {
	return checkAll(dim, m.left, m.right)
}

// Select switches between low and high depending on where control falls
// relative to threshold. With a positive falloff the switch is smoothed
// over [threshold-falloff, threshold+falloff] using the quintic fade and
// the interpolator.
type Select struct {
	control, low, high, threshold, falloff Field
	interp                                 Interpolator
}

// NewSelect builds a Select whose every operand is a field. A nil
// interpolator blends linearly.
func NewSelect(control, low, high, threshold, falloff Field, interp Interpolator) *Select {
	return &Select{
		control:   control,
		low:       low,
		high:      high,
		threshold: threshold,
		falloff:   falloff,
		interp:    orLinear(interp),
	}
}

// SelectConstant picks between two constants with a constant threshold
// and falloff.
func SelectConstant(control Field, low, high, threshold, falloff float64) *Select {
	return NewSelect(control, Constant(low), Constant(high), Constant(threshold), Constant(falloff), Linear)
}

func (s *Select) Get1D(x float64) float64 {
	return s.pick(s.control.Get1D(x), s.threshold.Get1D(x), s.falloff.Get1D(x),
		func() float64 { return s.low.Get1D(x) },
		func() float64 { return s.high.Get1D(x) })
}

func (s *Select) Get2D(x, y float64) float64 {
	return s.pick(s.control.Get2D(x, y), s.threshold.Get2D(x, y), s.falloff.Get2D(x, y),
		func() float64 { return s.low.Get2D(x, y) },
		func() float64 { return s.high.Get2D(x, y) })
}

func (s *Select) Get3D(x, y, z float64) float64 {
	return s.pick(s.control.Get3D(x, y, z), s.threshold.Get3D(x, y, z), s.falloff.Get3D(x, y, z),
		func() float64 { return s.low.Get3D(x, y, z) },
		func() float64 { return s.high.Get3D(x, y, z) })
}

// pick evaluates only the branches it needs.
func (s *Select) pick(control, threshold, falloff float64, low, high func() float64) float64 {
	if falloff <= 0 {
		if control < threshold {
			return low()
		}
		return high()
	}

	lower := threshold - falloff
	upper := threshold + falloff
	switch {
	case control < lower:
		return low()
	case control > upper:
		return high()
	default:
		blend := fade((control - lower) / (upper - lower))
		return s.interp.Interpolate(low(), high(), blend)
	}
}

func (s *Select) Check(dim Dimension) error {
	return checkAll(dim, s.control, s.low, s.high, s.threshold, s.falloff)
}
