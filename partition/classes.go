// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"math"
)

// Conjugate returns the transpose of p's Young diagram:
// part j of the result counts the parts of p that are ≥ j+1.
// Complexity: O(p[0] · len(p)).
func (p Partition) Conjugate() Partition {
	q := p.Normalize()
	if len(q) == 0 {
		return Partition{}
	}
	out := make(Partition, q[0])
	for j := range out {
		for _, part := range q {
			if part <= j {
				break
			}
			out[j]++
		}
	}

	return out
}

// Multiplicities maps each distinct positive part i to its multiplicity m_i.
func (p Partition) Multiplicities() map[int]int {
	m := make(map[int]int, len(p))
	for _, part := range p {
		if part > 0 {
			m[part]++
		}
	}

	return m
}

// CentralizerSize returns z_ρ = ∏ i^{m_i} · m_i!, the order of the centralizer
// of any permutation with cycle type p.
//
// Errors:
//   - ErrOverflow — z_ρ does not fit in int64.
func (p Partition) CentralizerSize() (int64, error) {
	z := int64(1)
	var ok bool
	for part, mult := range p.Multiplicities() {
		for k := 1; k <= mult; k++ {
			if z, ok = mulChecked(z, int64(part)); !ok {
				return 0, fmt.Errorf("centralizer of %v: %w", p, ErrOverflow)
			}
			if z, ok = mulChecked(z, int64(k)); !ok {
				return 0, fmt.Errorf("centralizer of %v: %w", p, ErrOverflow)
			}
		}
	}

	return z, nil
}

// ClassSize returns the number of permutations of S_n with cycle type p,
// n!/z_ρ, where n = p.Sum().
//
// Errors:
//   - ErrOverflow — n! does not fit in int64 (n > 20).
func (p Partition) ClassSize() (int64, error) {
	order, err := Factorial(p.Sum())
	if err != nil {
		return 0, err
	}
	z, err := p.CentralizerSize()
	if err != nil {
		return 0, err
	}

	return order / z, nil
}

// Factorial returns n! for 0 ≤ n ≤ 20. Negative n yields 1, matching the
// empty product.
//
// Errors:
//   - ErrOverflow — n > 20.
func Factorial(n int) (int64, error) {
	f := int64(1)
	var ok bool
	for k := 2; k <= n; k++ {
		if f, ok = mulChecked(f, int64(k)); !ok {
			return 0, fmt.Errorf("%d!: %w", n, ErrOverflow)
		}
	}

	return f, nil
}

// mulChecked multiplies two non-negative int64 values, reporting overflow.
func mulChecked(a, b int64) (int64, bool) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}

	return a * b, true
}
