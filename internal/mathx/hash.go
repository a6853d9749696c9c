package mathx

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// FNV3 hashes three 32-bit words FNV-1a style (xor, then multiply).
func FNV3(x, y, z uint32) uint32 {
	h := fnvOffsetBasis
	h ^= x
	h *= fnvPrime
	h ^= y
	h *= fnvPrime
	h ^= z
	h *= fnvPrime
	return h
}

// LCG advances a 32-bit linear congruential stream by one step
// (1103515245*v + 12345 mod 2^32).
func LCG(v uint32) uint32 {
	return 1103515245*v + 12345
}

// Unit maps a 32-bit stream value onto [0, 1).
func Unit(v uint32) float64 {
	return float64(v) / 4294967296.0
}
