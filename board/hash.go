package board

// fingerprintSeed is the fixed starting value for every fingerprint.
const fingerprintSeed uint64 = 0x243f6a8885a308d3

// splitmix64 is the avalanche mixer applied to every value before it is
// folded into the running hash.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// combine folds k into h, boost hash_combine style.
func combine(h, k uint64) uint64 {
	k = splitmix64(k)
	return h ^ (k + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2))
}

// Fingerprint reduces the board's dimensions and current cells to a
// 64-bit value. Dimensions are mixed first so grids of different shape
// with identical flattened content still hash apart; cells are then
// packed 64 per word in row-major order, bit position = offset within
// the group, and each word (including a trailing partial one) is
// combined in sequence. Equal fingerprints are probabilistic evidence of
// equal states, not a guarantee.
func Fingerprint(b *Board) uint64 {
	h := combine(fingerprintSeed, uint64(b.rows))
	h = combine(h, uint64(b.cols))

	var word uint64
	bit := 0
	for _, c := range b.cur {
		if c == 1 {
			word |= 1 << bit
		}
		bit++
		if bit == 64 {
			h = combine(h, word)
			word = 0
			bit = 0
		}
	}
	if bit > 0 {
		h = combine(h, word)
	}
	return h
}
