package prime

// IsPrime reports whether n is prime by trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Range returns the primes in [n, m] in ascending order.
func Range(n, m int) []int {
	if n < 2 {
		n = 2
	}
	var primes []int
	for i := n; i <= m; i++ {
		if IsPrime(i) {
			primes = append(primes, i)
		}
	}
	return primes
}

// Next returns the smallest prime not less than n.
func Next(n int) int {
	if n < 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}
	return n
}
