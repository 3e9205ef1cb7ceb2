// SPDX-License-Identifier: MIT

package partition

import "errors"

// Every message is prefixed with "partition: ..." for easy grepping. Callers
// wrap with fmt.Errorf("ctx: %w", ErrX) and match via errors.Is.
var (
	// ErrInvalidPart is returned by Parse when a field is not a positive integer.
	ErrInvalidPart = errors.New("partition: part must be a positive integer")

	// ErrNotPartition is returned by Parse when parts are not in non-increasing order.
	ErrNotPartition = errors.New("partition: parts must be non-increasing")

	// ErrOverflow indicates that a factorial-sized quantity does not fit in int64.
	ErrOverflow = errors.New("partition: value overflows int64")
)
