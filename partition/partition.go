package partition

import (
	"strconv"
	"strings"
)

// Partition is a sequence of parts, expected non-increasing.
//
// The canonical form stores positive parts only. Working representations
// (e.g. the rows of a Young diagram during a border-strip sweep) may carry
// zero parts; Normalize strips them before a Partition is stored or compared.
type Partition []int

// Normalize returns a fresh Partition holding only the positive parts of p,
// in their original order. It never reorders.
// Complexity: O(len(p)).
func (p Partition) Normalize() Partition {
	out := make(Partition, 0, len(p))
	for _, part := range p {
		if part > 0 {
			out = append(out, part)
		}
	}

	return out
}

// Sum returns the integer p partitions (|p|).
func (p Partition) Sum() int {
	total := 0
	for _, part := range p {
		total += part
	}

	return total
}

// Len returns the number of positive parts of p.
func (p Partition) Len() int {
	n := 0
	for _, part := range p {
		if part > 0 {
			n++
		}
	}

	return n
}

// Clone returns an independent copy of p, zero parts included.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	copy(out, p)

	return out
}

// Tail returns p without its first part. The tail of an empty partition is empty.
func (p Partition) Tail() Partition {
	if len(p) == 0 {
		return Partition{}
	}

	return p[1:].Clone()
}

// Equal reports whether p and q have the same positive parts in the same order.
func (p Partition) Equal(q Partition) bool {
	a, b := p.Normalize(), q.Normalize()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IsValid reports whether every part is positive and parts never increase.
// The empty partition is valid.
func (p Partition) IsValid() bool {
	for i, part := range p {
		if part <= 0 {
			return false
		}
		if i > 0 && part > p[i-1] {
			return false
		}
	}

	return true
}

// Key returns a compact string form of the normalized partition ("3,2,1"),
// suitable as a map key. The empty partition has key "".
func (p Partition) Key() string {
	var sb strings.Builder
	for _, part := range p {
		if part <= 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(part))
	}

	return sb.String()
}

// String implements fmt.Stringer: "[3,2,1]", "[]" for the empty partition.
func (p Partition) String() string {
	return "[" + p.Key() + "]"
}

// Ones returns the partition [1, 1, …, 1] of n (the identity class of S_n).
func Ones(n int) Partition {
	out := make(Partition, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, 1)
	}

	return out
}
