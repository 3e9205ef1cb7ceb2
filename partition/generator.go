package partition

import "slices"

// Generator builds and caches the partitions of k for k = 0, 1, 2, …
//
// table[k] holds every partition of k in generation order. The table only
// grows: a call to Of(n) extends it up to n and never touches shorter rows.
type Generator struct {
	table [][]Partition
}

// NewGenerator returns a Generator seeded with the base cases
// Of(0) = {[]} and Of(1) = {[1]}.
func NewGenerator() *Generator {
	return &Generator{
		table: [][]Partition{
			{Partition{}},
			{Partition{1}},
		},
	}
}

// Of returns all partitions of n in deterministic generation order.
//
// Algorithm Outline:
//  1. For k = len(table) .. n:
//     For i = 0 .. k−1, for each p in table[i]:
//     candidate = sort_desc(p ∪ {k−i})
//  2. Keep the first occurrence of each candidate (stable dedup),
//     since distinct (i, p) pairs can produce the same partition of k.
//  3. Append the deduplicated row to the table.
//
// The returned slice and its partitions are copies; mutating them does not
// affect the cache. Of returns nil for negative n.
func (g *Generator) Of(n int) []Partition {
	if n < 0 {
		return nil
	}
	for k := len(g.table); k <= n; k++ {
		g.table = append(g.table, g.build(k))
	}

	out := make([]Partition, len(g.table[n]))
	for i, p := range g.table[n] {
		out[i] = p.Clone()
	}

	return out
}

// Count returns the number of partitions of n, p(n). It shares the cache with Of.
func (g *Generator) Count(n int) int {
	if n < 0 {
		return 0
	}
	g.Of(n)

	return len(g.table[n])
}

// Computed returns the largest k whose partitions are currently cached.
func (g *Generator) Computed() int {
	return len(g.table) - 1
}

// build constructs the row for k from rows 0..k−1, which must already exist.
func (g *Generator) build(k int) []Partition {
	seen := make(map[string]struct{})
	var row []Partition
	for i := 0; i < k; i++ {
		for _, p := range g.table[i] {
			candidate := make(Partition, len(p), len(p)+1)
			copy(candidate, p)
			candidate = append(candidate, k-i)
			slices.SortFunc(candidate, func(a, b int) int { return b - a })

			key := candidate.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			row = append(row, candidate)
		}
	}

	return row
}

// Of returns all partitions of n using a fresh Generator.
// Prefer a shared Generator when calling repeatedly.
func Of(n int) []Partition {
	return NewGenerator().Of(n)
}

// Count returns p(n) using a fresh Generator.
func Count(n int) int {
	return NewGenerator().Count(n)
}
