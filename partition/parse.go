package partition

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a partition from user input.
//
// Accepted forms: "3,2,1", "3 2 1", "[3, 2, 1]", "(3,2,1)". Blank input
// (or "[]") is the empty partition. Every part must be a positive integer
// and parts must be non-increasing.
//
// Errors:
//   - ErrInvalidPart  — a field is not a positive integer.
//   - ErrNotPartition — a part is larger than the one before it.
func Parse(s string) (Partition, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	p := make(Partition, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPart, f)
		}
		if len(p) > 0 && v > p[len(p)-1] {
			return nil, fmt.Errorf("%w: %d after %d", ErrNotPartition, v, p[len(p)-1])
		}
		p = append(p, v)
	}

	return p, nil
}
