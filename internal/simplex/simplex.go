// Package simplex provides utilities over the probability simplex, the
// domain of ensemble weight vectors: non-negative entries summing to 1.
package simplex

import "math/rand"

// Uniform returns the barycenter [1/n, ..., 1/n]. n must be positive.
func Uniform(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

// Sample draws a random point on the n-simplex by drawing n independent
// uniforms and normalizing by their sum. Deterministic for a fixed rng
// state. A degenerate all-zero draw falls back to the barycenter.
func Sample(n int, rng *rand.Rand) []float64 {
	w := make([]float64, n)
	sum := 0.0
	for i := range w {
		w[i] = rng.Float64()
		sum += w[i]
	}
	if sum == 0 {
		return Uniform(n)
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// Project maps an arbitrary real vector onto the simplex: negative
// entries are clipped to zero and the remainder renormalized. A vector
// with no positive mass projects to the barycenter.
func Project(x []float64) []float64 {
	w := make([]float64, len(x))
	sum := 0.0
	for i, v := range x {
		if v > 0 {
			w[i] = v
			sum += v
		}
	}
	if sum == 0 {
		return Uniform(len(x))
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// Resolution converts a lattice step size to the number of quanta per
// unit mass, e.g. step 0.05 -> 20.
func Resolution(step float64) int {
	k := int(1/step + 0.5)
	if k < 1 {
		k = 1
	}
	return k
}

// LatticeSize returns the number of points on the n-member lattice with k
// quanta: C(k+n-1, n-1), the compositions of k into n non-negative parts.
func LatticeSize(n, k int) int {
	// Multiplicative binomial; sizes stay well inside int64 for the
	// member counts the grid strategy permits.
	size := 1
	for i := 1; i < n; i++ {
		size = size * (k + i) / i
	}
	return size
}

// Lattice enumerates every weight vector on the n-member lattice with k
// quanta, invoking yield with a fresh slice for each point. Enumeration
// stops early if yield returns false.
func Lattice(n, k int, yield func(w []float64) bool) {
	counts := make([]int, n)
	lattice(counts, 0, k, float64(k), yield)
}

func lattice(counts []int, pos, remaining int, k float64, yield func(w []float64) bool) bool {
	if pos == len(counts)-1 {
		counts[pos] = remaining
		w := make([]float64, len(counts))
		for i, c := range counts {
			w[i] = float64(c) / k
		}
		return yield(w)
	}
	for c := 0; c <= remaining; c++ {
		counts[pos] = c
		if !lattice(counts, pos+1, remaining-c, k, yield) {
			return false
		}
	}
	return true
}
