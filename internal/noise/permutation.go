package noise

// Shuffler draws uniform integers in [0, n). *rand.Rand and
// *mathx.LegacyRandom both satisfy it; the latter gives stable legacy
// permutation tables for a seed.
type Shuffler interface {
	Intn(n int) int
}

// permutationTable is 256 shuffled lattice indices mirrored into 512
// entries so lookups of i+1 never wrap.
type permutationTable [512]int

// newPermutationTable shuffles 0..255 by drawing j = rng.Intn(256-i) + i
// for each i in order. The draw order fixes the noise output and must not
// change.
func newPermutationTable(rng Shuffler) permutationTable {
	var p permutationTable
	for i := 0; i < 256; i++ {
		p[i] = i
	}
	for i := 0; i < 256; i++ {
		j := rng.Intn(256-i) + i
		p[i], p[j] = p[j], p[i]
		p[i+256] = p[i]
	}
	return p
}
