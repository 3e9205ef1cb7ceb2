// Package partition provides integer partitions and their incremental generation.
//
// 🚀 What is a partition?
//
//	A partition of n is a non-increasing sequence of positive integers
//	summing to n. Partitions index both the irreducible characters and the
//	conjugacy classes (cycle types) of the symmetric group S_n:
//	  • [3]       — the trivial character / 3-cycles
//	  • [2, 1]    — the standard character / transpositions
//	  • [1, 1, 1] — the sign character / the identity
//
// ✨ Key features:
//   - Partition — a plain []int with normalization, keys and comparison
//   - Generator — cached, incremental "partitions of k" table for k = 0, 1, 2, …
//   - Parse     — user input ("3,2,1", "[3 2 1]") to a validated Partition
//   - class data — Conjugate, Multiplicities, CentralizerSize, ClassSize
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/symchar/partition"
//
//	gen := partition.NewGenerator()
//	for _, p := range gen.Of(4) {
//	  fmt.Println(p) // [4] [3,1] [2,2] [2,1,1] [1,1,1,1]
//	}
//
// Ordering:
//
//	Generator.Of(n) returns partitions in a fixed order: candidates are built
//	by appending the part n−i to every partition of i (i = 0..n−1) and the
//	first occurrence of each partition wins. The resulting order is reverse
//	lexicographic, so [n] always comes first and [1,…,1] last.
//
// Performance:
//
//   - Of(n):  O(Σ_{k≤n} Σ_{i<k} p(i)·k log k) on first call, O(p(n)) after
//   - Memory: O(Σ_{k≤n} p(k)·k) for the cached table
//
// A Generator is not safe for concurrent use.
package partition
