package character_test

import (
	"testing"

	"github.com/katalvlaran/symchar/character"
)

// benchmarkTable builds the S_n table from cold caches on every iteration.
func benchmarkTable(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tbl := character.NewEvaluator().Table(n); tbl.Size() == 0 {
			b.Fatalf("empty table for n=%d", n)
		}
	}
}

// BenchmarkTable_8 builds the 22×22 table of S_8.
func BenchmarkTable_8(b *testing.B) { benchmarkTable(b, 8) }

// BenchmarkTable_12 builds the 77×77 table of S_12.
func BenchmarkTable_12(b *testing.B) { benchmarkTable(b, 12) }

// BenchmarkTable_Warm measures a rebuild served from a warm cache.
func BenchmarkTable_Warm(b *testing.B) {
	ev := character.NewEvaluator()
	ev.Table(12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.Table(12)
	}
}
