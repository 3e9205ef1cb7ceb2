// Package borderstrip enumerates the border strips (rim hooks) of a fixed
// length that can be removed from a partition's Young diagram.
//
// 🚀 What is a border strip?
//
//	A border strip is a connected set of cells on the rim of a Young diagram
//	containing no 2×2 block. Removing one must leave a valid partition.
//	For λ = [3,1] and length 2 there is exactly one such strip:
//
//	  ■ □ □   ←─  □ = removed: the last two cells of the top row,
//	  ■           leaving [1,1]
//
//	(the bottom-left cell together with a top-row cell is not connected, and
//	removing it would not leave a partition).
//
// ✨ Key features:
//   - Strips(λ, m) — every (λ*, ξ) pair with λ* + ξ = λ row-wise, |ξ| = m
//   - Height / Sign — the row count of ξ and (−1)^(height−1), the sign used by
//     the Murnaghan–Nakayama rule
//
// Algorithm:
//
//	A single top-to-bottom sweep over the rows keeps a remaining budget and a
//	per-row removed-so-far vector ξ. Left steps take cells from one row down
//	to the next row's length, down steps take one cell from each row of a run
//	of equal rows, and an over-run is refunded from the earliest rows. Each
//	time the budget hits zero a strip is emitted and the earliest row of ξ is
//	given back, sliding the window down the rim.
//
// Performance:
//
//   - Time:   O(λ[0] + len(λ)) per call, plus O(len(λ)) per emitted strip
//   - Memory: O(len(λ)) working state
package borderstrip
