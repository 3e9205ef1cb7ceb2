package character

import (
	"github.com/katalvlaran/symchar/borderstrip"
	"github.com/katalvlaran/symchar/partition"
	"go.uber.org/zap"
)

// Stats reports cache activity of an Evaluator.
type Stats struct {
	Entries int // cached (λ, ρ) values
	Hits    int // lookups served from the cache
	Misses  int // values computed by recursion
}

// Evaluator computes character values and tables, caching every χ_λ(ρ) it
// has computed. The caches grow for the Evaluator's lifetime and are never
// invalidated.
type Evaluator struct {
	logger *zap.Logger
	gen    *partition.Generator
	values map[string]map[string]int // λ key → ρ key → χ_λ(ρ)
	stats  Stats
}

// NewEvaluator returns an Evaluator with empty caches.
func NewEvaluator(opts ...Option) *Evaluator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Evaluator{
		logger: o.Logger,
		gen:    o.Generator,
		values: make(map[string]map[string]int),
	}
}

// Value returns χ_λ(ρ), the irreducible character λ evaluated on the class
// of permutations with cycle type ρ.
//
// Algorithm Outline:
//  1. Normalize λ and ρ (drop zero parts).
//  2. |λ| < 2 → 1. Not cached.
//  3. Cached (λ, ρ) → cached value.
//  4. Otherwise sum Sign(ξ) · Value(λ*, ρ[1:]) over
//     borderstrip.Strips(λ, ρ[0]) and cache the result.
//
// Recursion depth equals len(ρ); every step removes ρ[0] ≥ 1 cells.
// Σλ = Σρ is assumed, not checked: when ρ runs out before λ does the sum is
// empty and the result is 0.
func (e *Evaluator) Value(lambda, rho partition.Partition) int {
	lambda = lambda.Normalize()
	rho = rho.Normalize()
	if lambda.Sum() < 2 {
		return 1
	}

	lk, rk := lambda.Key(), rho.Key()
	if v, ok := e.values[lk][rk]; ok {
		e.stats.Hits++

		return v
	}
	e.stats.Misses++

	length := 0
	if len(rho) > 0 {
		length = rho[0]
	}
	tail := rho.Tail()

	result := 0
	for _, r := range borderstrip.Strips(lambda, length) {
		result += r.Sign() * e.Value(r.Rest, tail)
	}

	row, ok := e.values[lk]
	if !ok {
		row = make(map[string]int)
		e.values[lk] = row
	}
	row[rk] = result
	e.stats.Entries++

	return result
}

// Degree returns χ_λ(1ⁿ), the dimension of the irreducible representation λ.
func (e *Evaluator) Degree(lambda partition.Partition) int {
	return e.Value(lambda, partition.Ones(lambda.Sum()))
}

// Partitions returns the partitions of n in the order Table uses.
func (e *Evaluator) Partitions(n int) []partition.Partition {
	return e.gen.Of(n)
}

// Stats returns a snapshot of cache activity.
func (e *Evaluator) Stats() Stats {
	return e.stats
}

// Value computes χ_λ(ρ) with a fresh Evaluator.
func Value(lambda, rho partition.Partition) int {
	return NewEvaluator().Value(lambda, rho)
}
