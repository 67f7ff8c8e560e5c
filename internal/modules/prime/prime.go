package prime

// IsPrime reports whether number is prime.
//
// Brute-force trial division is used on purpose: probabilistic tests can be
// wrong and heuristic ones are unproven. The bound is kept in the integer
// domain (i <= number/i) so the root is never skipped by float rounding and
// i*i cannot overflow.
func IsPrime(number uint64) bool {
	// 0 and 1 are not prime
	if number <= 1 {
		return false
	}

	for i := uint64(2); i <= number/i; i++ {
		if number%i == 0 {
			return false
		}
	}
	return true
}
