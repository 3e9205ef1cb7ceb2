// Package character computes irreducible character values and full character
// tables of the symmetric groups S_n with the Murnaghan–Nakayama rule.
//
// 🚀 The rule
//
//	For a character λ and a class ρ = (ρ₁, ρ₂, …) of S_n:
//
//	  χ_λ(ρ) = Σ_ξ (−1)^(height(ξ)−1) · χ_{λ∖ξ}(ρ₂, ρ₃, …)
//
//	where ξ ranges over the border strips of length ρ₁ removable from λ.
//	The recursion bottoms out at |λ| < 2, where χ = 1.
//
// ✨ Key features:
//   - Evaluator.Value(λ, ρ) — one entry, memoized per (λ, ρ)
//   - Evaluator.Table(n)    — the p(n)×p(n) table in partition.Generator order
//   - CheckOrthogonality    — validates a table against the row relations
//   - Stats                 — cache entries, hits and misses
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/symchar/character"
//
//	ev := character.NewEvaluator(character.WithLogger(logger))
//	t := ev.Table(4)
//	fmt.Println(t.Partitions[1], t.Row(1)) // [3,1] [-1 0 -1 1 3]
//
// Concurrency:
//
//	An Evaluator owns its caches and is not safe for concurrent use. Build one
//	per goroutine, or one per independent computation for isolated state.
//
// Limits:
//
//	Values are plain int. Σλ = Σρ is not checked by Value; mismatched sizes
//	produce an unspecified integer rather than an error.
package character
