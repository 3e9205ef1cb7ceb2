package partition_test

import (
	"testing"

	"github.com/katalvlaran/symchar/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Forms accepts the supported spellings.
func TestParse_Forms(t *testing.T) {
	cases := map[string]partition.Partition{
		"3,2,1":     {3, 2, 1},
		"3 2 1":     {3, 2, 1},
		"[3, 2, 1]": {3, 2, 1},
		"(2,2)":     {2, 2},
		" 4 ":       {4},
		"":          {},
		"[]":        {},
	}
	for in, want := range cases {
		got, err := partition.Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

// TestParse_Errors checks the sentinel errors.
func TestParse_Errors(t *testing.T) {
	_, err := partition.Parse("3,x")
	assert.ErrorIs(t, err, partition.ErrInvalidPart)

	_, err = partition.Parse("3,0")
	assert.ErrorIs(t, err, partition.ErrInvalidPart, "zero parts are rejected")

	_, err = partition.Parse("-1")
	assert.ErrorIs(t, err, partition.ErrInvalidPart)

	_, err = partition.Parse("1,2")
	assert.ErrorIs(t, err, partition.ErrNotPartition)
}
