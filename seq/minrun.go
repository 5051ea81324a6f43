package seq

// MinRun returns the minimum length of a run for a list of n
// elements. The result keeps the top bits of n (n is shifted right
// until it no longer exceeds 32) and ORs in 1 when any shifted-out bit
// was set, so that n/MinRun(n) is close to a power of two and the
// merges of the runs stay balanced. Lists of 32 or fewer elements
// become a single run.
func MinRun(n int) int {
	carry := 0
	for n > maxMinRun {
		carry |= n & 1
		n >>= 1
	}
	return n | carry
}

const maxMinRun = 32
