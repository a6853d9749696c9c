package noise

const (
	whiteMagicX    int32 = 1619
	whiteMagicY    int32 = 31337
	whiteMagicZ    int32 = 52591
	whiteMagicSeed int32 = 1013
)

// White is integer (white) noise: every coordinate is truncated to an
// integer and hashed with the seed. There is no table and no coherence
// between neighbouring cells. Output lies in [-1, 1].
//
// The seed is multiplied into the last axis term only; existing worlds
// depend on that precedence.
type White struct {
	seed int32
}

// NewWhite returns white noise for seed.
func NewWhite(seed int32) *White {
	return &White{seed: seed}
}

func (w *White) Get1D(x float64) float64 {
	n := (int32(x)*whiteMagicX + whiteMagicSeed*w.seed) & 0x7fffffff
	return whiteValue(n)
}

func (w *White) Get2D(x, y float64) float64 {
	n := (int32(x)*whiteMagicX + int32(y)*whiteMagicY*whiteMagicSeed*w.seed) & 0x7fffffff
	return whiteValue(n)
}

func (w *White) Get3D(x, y, z float64) float64 {
	n := (int32(x)*whiteMagicX + int32(y)*whiteMagicY + int32(z)*whiteMagicZ*whiteMagicSeed*w.seed) & 0x7fffffff
	return whiteValue(n)
}

func whiteValue(n int32) float64 {
	n = (n << 13) ^ n
	return 1.0 - float64((n*(n*n*15731+789221)+1376312589)&0x7fffffff)/1073741824.0
}
