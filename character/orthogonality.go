// SPDX-License-Identifier: MIT

package character

import (
	"fmt"

	"github.com/katalvlaran/symchar/partition"
)

// CheckOrthogonality verifies the row orthogonality relations of t:
//
//	Σ_ρ |class(ρ)| · χ_λ(ρ) · χ_μ(ρ) = n! · δ_{λμ}
//
// which is Σ_ρ χ_λ(ρ)χ_μ(ρ)/z_ρ = δ_{λμ} scaled by n! to stay in integers.
// Every partial sum is bounded by n! in absolute value, so int64 is exact
// for n ≤ 20.
//
// Errors:
//   - ErrNilTable       — t is nil.
//   - ErrDegreeTooLarge — n > 20.
//   - ErrNotOrthogonal  — wrapped with the offending pair of rows.
//
// Complexity: O(p(n)³).
func CheckOrthogonality(t *Table) error {
	if t == nil {
		return ErrNilTable
	}
	order, err := partition.Factorial(t.Degree)
	if err != nil {
		return fmt.Errorf("%w: n=%d", ErrDegreeTooLarge, t.Degree)
	}

	sizes := make([]int64, t.Size())
	for j, rho := range t.Partitions {
		if sizes[j], err = rho.ClassSize(); err != nil {
			return fmt.Errorf("%w: n=%d", ErrDegreeTooLarge, t.Degree)
		}
	}

	for i := range t.Values {
		for k := i; k < len(t.Values); k++ {
			var sum int64
			for j, size := range sizes {
				sum += size * int64(t.Values[i][j]) * int64(t.Values[k][j])
			}

			want := int64(0)
			if i == k {
				want = order
			}
			if sum != want {
				return fmt.Errorf("%w: %v and %v give %d, want %d",
					ErrNotOrthogonal, t.Partitions[i], t.Partitions[k], sum, want)
			}
		}
	}

	return nil
}
