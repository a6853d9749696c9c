package noise

// Constant outputs the same value everywhere.
type Constant float64

func (c Constant) Get1D(float64) float64                   { return float64(c) }
func (c Constant) Get2D(float64, float64) float64          { return float64(c) }
func (c Constant) Get3D(float64, float64, float64) float64 { return float64(c) }
