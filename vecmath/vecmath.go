package vecmath

import "math"

// Aggregate returns the element-wise mean of the non-nil vectors in vs. It
// returns nil if vs contains no non-nil vector (a fully-void neighbourhood
// aggregates to void, never to a divide-by-zero panic).
func Aggregate(vs []Vector) Vector {
	elemLen, count := 0, 0
	for _, v := range vs {
		if v != nil {
			elemLen = len(v)
			count++
		}
	}
	if count == 0 {
		return nil
	}
	sum := make(Vector, elemLen)
	for _, v := range vs {
		if v == nil {
			continue
		}
		for i, x := range v {
			sum[i] += x
		}
	}
	for i := range sum {
		sum[i] /= float64(count)
	}
	return sum
}

// WeightedAggregate returns the weighted mean of the non-nil vectors in vs,
// dividing by the sum of the weights of those non-nil entries only. It
// returns nil if every entry is nil or the total weight is zero.
func WeightedAggregate(vs []Vector, weights []float64) Vector {
	elemLen := 0
	var totalWeight float64
	for i, v := range vs {
		if v != nil {
			elemLen = len(v)
			totalWeight += weights[i]
		}
	}
	if elemLen == 0 || totalWeight == 0 {
		return nil
	}
	sum := make(Vector, elemLen)
	for i, v := range vs {
		if v == nil {
			continue
		}
		for k, x := range v {
			sum[k] += x * weights[i]
		}
	}
	for i := range sum {
		sum[i] /= totalWeight
	}
	return sum
}

// FindMin returns the index, within vs, of the vector minimizing the sum of
// distanceFn to every other non-nil vector in vs (the medoid). Nil entries
// are skipped as candidates but still contribute to every candidate's sum
// via distanceFn's zero-for-nil convention. Returns -1 if vs has no
// non-nil entry.
func FindMin(vs []Vector, distanceFn DistanceFunc) int {
	best, bestSum := -1, math.Inf(1)
	for i, candidate := range vs {
		if candidate == nil {
			continue
		}
		sum := 0.0
		for j, other := range vs {
			if i == j {
				continue
			}
			sum += distanceFn(candidate, other)
		}
		if sum < bestSum {
			bestSum, best = sum, i
		}
	}
	return best
}

// EuclideanDistance returns the L2 norm of (a - b), or 0 if either operand
// is nil.
func EuclideanDistance(a, b Vector) float64 {
	if a == nil || b == nil {
		return 0
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// CosineDistance returns 1 - cosine-similarity(a, b), or 0 if either
// operand is nil or has zero norm.
func CosineDistance(a, b Vector) float64 {
	if a == nil || b == nil {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// NullDistance always returns 0. A scheduler configured with it will never
// find a strictly improving permutation, so exchange never swaps cells --
// useful for isolating the cost of aggregation from the cost of exchange.
func NullDistance(Vector, Vector) float64 { return 0 }

// NextPermutation advances perm in place to the next lexicographic
// permutation of its elements (Go has no stdlib equivalent of C++'s
// std::next_permutation). It reports false, and resets perm to its first
// lexicographic permutation, once the last permutation has been reached.
func NextPermutation(perm []int) bool {
	n := len(perm)
	if n < 2 {
		return false
	}
	i := n - 2
	for i >= 0 && perm[i] >= perm[i+1] {
		i--
	}
	if i < 0 {
		reverse(perm, 0, n-1)
		return false
	}
	j := n - 1
	for perm[j] <= perm[i] {
		j--
	}
	perm[i], perm[j] = perm[j], perm[i]
	reverse(perm, i+1, n-1)
	return true
}

func reverse(s []int, i, j int) {
	for i < j {
		s[i], s[j] = s[j], s[i]
		i++
		j--
	}
}
