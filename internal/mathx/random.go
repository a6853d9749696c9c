package mathx

import "math"

const (
	legacyBig  = math.MaxInt32
	legacySeed = 161803398
)

// LegacyRandom is the seeded subtractive generator (Knuth, lagged
// Fibonacci with 55 words) behind many legacy seeded worlds.
// Permutation tables built from it are stable across releases for a seed.
//
// A LegacyRandom is not safe for concurrent use.
type LegacyRandom struct {
	seeds [56]int32
	next  int
	nextp int
}

// NewLegacyRandom seeds a generator.
func NewLegacyRandom(seed int32) *LegacyRandom {
	r := &LegacyRandom{}

	var subtraction int32
	if seed == math.MinInt32 {
		subtraction = legacyBig
	} else if seed < 0 {
		subtraction = -seed
	} else {
		subtraction = seed
	}

	mj := legacySeed - subtraction
	r.seeds[55] = mj
	mk := int32(1)
	for i := 1; i < 55; i++ {
		ii := (21 * i) % 55
		r.seeds[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += legacyBig
		}
		mj = r.seeds[ii]
	}
	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			r.seeds[i] -= r.seeds[1+(i+30)%55]
			if r.seeds[i] < 0 {
				r.seeds[i] += legacyBig
			}
		}
	}
	r.next = 0
	r.nextp = 21
	return r
}

func (r *LegacyRandom) sample() int32 {
	next := r.next + 1
	if next >= 56 {
		next = 1
	}
	nextp := r.nextp + 1
	if nextp >= 56 {
		nextp = 1
	}

	v := r.seeds[next] - r.seeds[nextp]
	if v == legacyBig {
		v--
	}
	if v < 0 {
		v += legacyBig
	}
	r.seeds[next] = v
	r.next = next
	r.nextp = nextp
	return v
}

// Float64 returns a value in [0, 1).
func (r *LegacyRandom) Float64() float64 {
	return float64(r.sample()) * (1.0 / legacyBig)
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (r *LegacyRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// Int31 returns a non-negative 31-bit value.
func (r *LegacyRandom) Int31() int32 {
	return r.sample()
}
