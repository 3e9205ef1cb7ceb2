package borderstrip

import "github.com/katalvlaran/symchar/partition"

// sweep holds the mutable state of one top-to-bottom pass over λ's rows.
type sweep struct {
	rest   partition.Partition // remaining row sizes, λ minus ξ
	strip  partition.Partition // ξ, cells removed so far per row
	rows   int                 // rows the sweep may enter (positive prefix of λ)
	budget int                 // cells still to remove
	row    int                 // cursor
	first  int                 // earliest row that may still hold part of ξ
	out    []Removal
}

// Strips returns every way to remove a border strip of exactly m cells
// from lambda.
//
// lambda is a non-increasing row-size vector; trailing zero rows are allowed
// and preserved in the output vectors. The input is never mutated. Output
// order follows the sweep and is deterministic for a given input.
//
// Algorithm Outline:
//  1. At the last row, take min(budget, row size) cells; if the budget is
//     still positive no further strip exists and the sweep stops.
//  2. If the row is longer than the next one (left step), take
//     min(budget, difference) cells from it and stay on the row.
//  3. Otherwise (down step), take one cell from every row of the run of
//     equal rows starting here, move to the last row of the run, and refund
//     ξ from the earliest rows while the budget is negative.
//  4. When the budget reaches zero, emit (λ*, ξ), then give back ξ's earliest
//     row and advance the earliest-row pointer, moving the cursor with it
//     when they coincide.
//
// Strips returns nil for m ≤ 0 or an empty lambda.
// Complexity: O(λ[0] + len(λ)) steps.
func Strips(lambda partition.Partition, m int) []Removal {
	s := &sweep{
		rest:   lambda.Clone(),
		strip:  make(partition.Partition, len(lambda)),
		rows:   positivePrefix(lambda),
		budget: m,
	}
	s.run()

	return s.out
}

// run drives the sweep until the budget is exhausted without a strip or the
// cursor leaves the diagram.
func (s *sweep) run() {
	for s.budget > 0 && s.row < s.rows {
		switch {
		case s.row+1 == s.rows:
			s.take(s.row, min(s.budget, s.rest[s.row]))
			if s.budget > 0 {
				return
			}
		case s.rest[s.row] > s.rest[s.row+1]:
			s.take(s.row, min(s.budget, s.rest[s.row]-s.rest[s.row+1]))
		default:
			s.down()
		}

		if s.budget == 0 {
			s.emit()
			s.giveBack()
			if s.row == s.first {
				s.row++
			}
			s.first++
		}
	}
}

// take removes step cells from row.
func (s *sweep) take(row, step int) {
	s.budget -= step
	s.rest[row] -= step
	s.strip[row] += step
}

// down removes one cell from each row of the maximal run of rows equal to
// the current one, leaves the cursor on the run's last row and refunds any
// over-run from the earliest rows of ξ.
func (s *sweep) down() {
	start := s.row
	size := s.rest[start]
	for s.row < s.rows && s.rest[s.row] == size {
		s.budget--
		s.strip[s.row]++
		s.row++
	}
	for i := start; i < s.row; i++ {
		s.rest[i]--
	}
	s.row--

	for s.budget < 0 {
		s.giveBack()
		s.first++
	}
}

// giveBack returns ξ's cells at the earliest-row pointer to λ.
func (s *sweep) giveBack() {
	s.rest[s.first] += s.strip[s.first]
	s.budget += s.strip[s.first]
	s.strip[s.first] = 0
}

// emit records a snapshot of the current (λ*, ξ) pair.
func (s *sweep) emit() {
	s.out = append(s.out, Removal{
		Rest:  s.rest.Clone(),
		Strip: s.strip.Clone(),
	})
}

// positivePrefix returns the number of leading positive rows. Zero rows
// never hold cells, so the sweep stays above them.
func positivePrefix(lambda partition.Partition) int {
	for i, part := range lambda {
		if part <= 0 {
			return i
		}
	}

	return len(lambda)
}
