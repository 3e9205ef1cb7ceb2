package partition_test

import (
	"testing"

	"github.com/katalvlaran/symchar/partition"
	"github.com/stretchr/testify/assert"
)

// TestPartition_Normalize verifies zero parts are dropped without reordering
// and that the input is left untouched.
func TestPartition_Normalize(t *testing.T) {
	in := partition.Partition{3, 0, 2, 0, 0}
	got := in.Normalize()

	assert.Equal(t, partition.Partition{3, 2}, got, "zeros must be stripped")
	assert.Equal(t, partition.Partition{3, 0, 2, 0, 0}, in, "input must not be mutated")
	assert.Empty(t, partition.Partition{0, 0}.Normalize(), "all-zero input normalizes to empty")
}

// TestPartition_SumLen checks |p| and the count of positive parts.
func TestPartition_SumLen(t *testing.T) {
	p := partition.Partition{4, 2, 2, 0}
	assert.Equal(t, 8, p.Sum())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 0, partition.Partition{}.Sum(), "empty partition sums to zero")
}

// TestPartition_KeyAndString checks the map key and printable forms.
func TestPartition_KeyAndString(t *testing.T) {
	assert.Equal(t, "3,2,1", partition.Partition{3, 2, 1}.Key())
	assert.Equal(t, "3,2,1", partition.Partition{3, 2, 1, 0, 0}.Key(), "trailing zeros do not change the key")
	assert.Equal(t, "", partition.Partition{}.Key())
	assert.Equal(t, "[3,2,1]", partition.Partition{3, 2, 1}.String())
	assert.Equal(t, "[]", partition.Partition{}.String())
}

// TestPartition_Equal compares on positive parts only.
func TestPartition_Equal(t *testing.T) {
	assert.True(t, partition.Partition{2, 1}.Equal(partition.Partition{2, 1, 0}))
	assert.False(t, partition.Partition{2, 1}.Equal(partition.Partition{1, 2}))
	assert.False(t, partition.Partition{2, 1}.Equal(partition.Partition{2, 1, 1}))
	assert.True(t, partition.Partition{}.Equal(partition.Partition{0}))
}

// TestPartition_TailAndClone checks that Tail and Clone never alias the input.
func TestPartition_TailAndClone(t *testing.T) {
	p := partition.Partition{3, 2, 1}

	tail := p.Tail()
	assert.Equal(t, partition.Partition{2, 1}, tail)
	tail[0] = 9
	assert.Equal(t, 2, p[1], "Tail must return a copy")

	c := p.Clone()
	c[0] = 7
	assert.Equal(t, 3, p[0], "Clone must return a copy")

	assert.Empty(t, partition.Partition{}.Tail(), "tail of empty is empty")
}

// TestPartition_IsValid covers ordering and positivity.
func TestPartition_IsValid(t *testing.T) {
	assert.True(t, partition.Partition{}.IsValid())
	assert.True(t, partition.Partition{3, 3, 1}.IsValid())
	assert.False(t, partition.Partition{1, 2}.IsValid(), "increasing parts")
	assert.False(t, partition.Partition{2, 0}.IsValid(), "zero part")
	assert.False(t, partition.Partition{2, -1}.IsValid(), "negative part")
}

// TestOnes checks the identity cycle type.
func TestOnes(t *testing.T) {
	assert.Equal(t, partition.Partition{1, 1, 1}, partition.Ones(3))
	assert.Empty(t, partition.Ones(0))
	assert.Empty(t, partition.Ones(-2))
}
