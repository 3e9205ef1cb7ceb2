package borderstrip

import "github.com/katalvlaran/symchar/partition"

// Removal is one decomposition step: Rest + Strip = λ row-wise.
//
// Both slices have the row count of the enclosing λ; rows the strip does not
// touch hold 0 in Strip, and fully removed rows hold 0 in Rest. Call
// Normalize on either to obtain the canonical partition.
type Removal struct {
	Rest  partition.Partition // λ* — what remains after removal
	Strip partition.Partition // ξ — cells removed per row
}

// Height returns the number of rows the strip occupies.
func (r Removal) Height() int {
	return Height(r.Strip)
}

// Sign returns (−1)^(Height−1).
func (r Removal) Sign() int {
	return Sign(r.Strip)
}

// Height counts the nonzero rows of a strip vector.
func Height(strip partition.Partition) int {
	return strip.Len()
}

// Sign returns (−1)^(Height(strip)−1): +1 for strips spanning an odd number
// of rows, −1 for an even number.
func Sign(strip partition.Partition) int {
	if Height(strip)%2 == 0 {
		return -1
	}

	return 1
}
