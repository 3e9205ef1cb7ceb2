package borderstrip_test

import (
	"testing"

	"github.com/katalvlaran/symchar/borderstrip"
	"github.com/katalvlaran/symchar/partition"
)

// staircase returns [k, k−1, …, 1], a shape with many corners.
func staircase(k int) partition.Partition {
	p := make(partition.Partition, k)
	for i := range p {
		p[i] = k - i
	}

	return p
}

// BenchmarkStrips_Staircase enumerates odd-length strips of a 20-row staircase.
func BenchmarkStrips_Staircase(b *testing.B) {
	lambda := staircase(20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for m := 1; m <= 39; m += 2 {
			borderstrip.Strips(lambda, m)
		}
	}
}

// BenchmarkStrips_Rectangle enumerates strips of a 10×10 square, exercising
// the down-step refund path.
func BenchmarkStrips_Rectangle(b *testing.B) {
	lambda := make(partition.Partition, 10)
	for i := range lambda {
		lambda[i] = 10
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for m := 1; m <= 19; m++ {
			borderstrip.Strips(lambda, m)
		}
	}
}
