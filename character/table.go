package character

import (
	"github.com/katalvlaran/symchar/partition"
	"go.uber.org/zap"
)

// Table is the character table of S_n.
//
// Values[i][j] = χ_{Partitions[i]}(Partitions[j]); rows are characters and
// columns are conjugacy classes, both in partition.Generator order.
type Table struct {
	Degree     int                   `json:"degree" yaml:"degree"`
	Partitions []partition.Partition `json:"partitions" yaml:"partitions"`
	Values     [][]int               `json:"values" yaml:"values"`
}

// Size returns p(n), the number of rows and columns.
func (t *Table) Size() int {
	return len(t.Partitions)
}

// At returns χ_{Partitions[i]}(Partitions[j]).
// It panics if i or j is out of range, like slice indexing.
func (t *Table) At(i, j int) int {
	return t.Values[i][j]
}

// Row returns a copy of row i (the character Partitions[i]).
func (t *Table) Row(i int) []int {
	out := make([]int, len(t.Values[i]))
	copy(out, t.Values[i])

	return out
}

// Column returns a copy of column j (the class Partitions[j]).
func (t *Table) Column(j int) []int {
	out := make([]int, len(t.Values))
	for i, row := range t.Values {
		out[i] = row[j]
	}

	return out
}

// Index returns the row/column index of p, or -1 if p is not a partition of Degree.
func (t *Table) Index(p partition.Partition) int {
	key := p.Key()
	for i, q := range t.Partitions {
		if q.Key() == key {
			return i
		}
	}

	return -1
}

// Table returns the p(n)×p(n) character table of S_n, reusing and extending
// the Evaluator's caches. A second call for the same n is served entirely
// from the cache.
// Complexity: p(n)² calls to Value; each uncached entry costs one strip
// enumeration per recursion level.
func (e *Evaluator) Table(n int) *Table {
	parts := e.gen.Of(n)
	before := e.stats

	values := make([][]int, len(parts))
	for i, lambda := range parts {
		row := make([]int, len(parts))
		for j, rho := range parts {
			row[j] = e.Value(lambda, rho)
		}
		values[i] = row
	}

	e.logger.Debug("character table built",
		zap.Int("degree", n),
		zap.Int("classes", len(parts)),
		zap.Int("computed", e.stats.Misses-before.Misses),
		zap.Int("cache_hits", e.stats.Hits-before.Hits),
		zap.Int("cache_entries", e.stats.Entries),
	)

	return &Table{Degree: n, Partitions: parts, Values: values}
}

// CharacterTable returns the character table of S_n with a fresh Evaluator.
func CharacterTable(n int) *Table {
	return NewEvaluator().Table(n)
}
