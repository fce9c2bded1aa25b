// core/motif/iupac.go
package motif

import (
	"fmt"
	"sort"
)

/* -------------------------- ambiguity lookup table ---------------------- */

// Table maps a lowercase ambiguity code to the literal bases it stands for.
// The zero value has no codes, so every character expands to itself.
type Table struct {
	codes map[byte]string
}

var defaultCodes = map[byte]string{
	'y': "ct",   // pyrimidine
	'w': "at",   // weak
	's': "cg",   // strong
	'm': "ac",   // amino
	'k': "gt",   // keto
	'r': "ag",   // purine
	'b': "cgt",  // not A
	'd': "agt",  // not C
	'h': "act",  // not G
	'v': "acg",  // not T
	'n': "atcg", // any
}

// DefaultTable returns the canonical IUPAC table.
func DefaultTable() Table { return Table{codes: defaultCodes} }

// NewTable copies codes into an immutable Table. Keys and values are
// lower-cased; an empty alternative set is rejected.
func NewTable(codes map[byte]string) (Table, error) {
	m := make(map[byte]string, len(codes))
	for k, v := range codes {
		if v == "" {
			return Table{}, fmt.Errorf("ambiguity code %q has no alternatives", k)
		}
		m[lowerByte(k)] = lowerASCII(v)
	}
	return Table{codes: m}, nil
}

// Alternatives returns the literal bases for c. Characters that are not
// codes stand for themselves.
func (t Table) Alternatives(c byte) string {
	c = lowerByte(c)
	if alt, ok := t.codes[c]; ok {
		return alt
	}
	return string(c)
}

// Codes lists the table's codes in ascending order.
func (t Table) Codes() []byte {
	out := make([]byte, 0, len(t.codes))
	for k := range t.codes {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = lowerByte(b[i])
	}
	return string(b)
}
