// SPDX-License-Identifier: MIT

package character

import "errors"

// Sentinel errors for table validation. Value and Table never fail.
var (
	// ErrNilTable is returned when a nil *Table is validated.
	ErrNilTable = errors.New("character: table is nil")

	// ErrDegreeTooLarge indicates that n! does not fit in int64, so the
	// orthogonality sums cannot be checked exactly.
	ErrDegreeTooLarge = errors.New("character: degree too large for exact check")

	// ErrNotOrthogonal indicates that two rows violate the orthogonality relations.
	ErrNotOrthogonal = errors.New("character: rows are not orthogonal")
)
