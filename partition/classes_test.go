package partition_test

import (
	"testing"

	"github.com/katalvlaran/symchar/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConjugate checks transposition and that it is an involution.
func TestConjugate(t *testing.T) {
	assert.Equal(t, partition.Partition{3, 1}, partition.Partition{2, 1, 1}.Conjugate())
	assert.Equal(t, partition.Partition{1, 1, 1}, partition.Partition{3}.Conjugate())
	assert.Equal(t, partition.Partition{2, 2}, partition.Partition{2, 2}.Conjugate())
	assert.Empty(t, partition.Partition{}.Conjugate())

	for _, p := range partition.Of(7) {
		assert.Equal(t, p, p.Conjugate().Conjugate(), "conjugate of conjugate of %v", p)
	}
}

// TestMultiplicities counts distinct parts.
func TestMultiplicities(t *testing.T) {
	assert.Equal(t, map[int]int{3: 1, 1: 2}, partition.Partition{3, 1, 1}.Multiplicities())
	assert.Empty(t, partition.Partition{}.Multiplicities())
}

// TestCentralizerSize checks z_ρ on S_4.
func TestCentralizerSize(t *testing.T) {
	cases := []struct {
		rho  partition.Partition
		want int64
	}{
		{partition.Partition{4}, 4},
		{partition.Partition{3, 1}, 3},
		{partition.Partition{2, 2}, 8},
		{partition.Partition{2, 1, 1}, 4},
		{partition.Partition{1, 1, 1, 1}, 24},
		{partition.Partition{}, 1},
	}
	for _, tc := range cases {
		z, err := tc.rho.CentralizerSize()
		require.NoError(t, err)
		assert.Equal(t, tc.want, z, "z(%v)", tc.rho)
	}
}

// TestClassSize_SumsToOrder checks Σ_ρ |class(ρ)| = n!.
func TestClassSize_SumsToOrder(t *testing.T) {
	for n := 0; n <= 10; n++ {
		order, err := partition.Factorial(n)
		require.NoError(t, err)

		var total int64
		for _, rho := range partition.Of(n) {
			size, err := rho.ClassSize()
			require.NoError(t, err)
			total += size
		}
		assert.Equal(t, order, total, "n=%d", n)
	}
}

// TestFactorial covers the int64 limit.
func TestFactorial(t *testing.T) {
	f, err := partition.Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f)

	f, err = partition.Factorial(20)
	require.NoError(t, err)
	assert.Equal(t, int64(2432902008176640000), f)

	_, err = partition.Factorial(21)
	assert.ErrorIs(t, err, partition.ErrOverflow)

	_, err = partition.Ones(21).ClassSize()
	assert.ErrorIs(t, err, partition.ErrOverflow)
}
