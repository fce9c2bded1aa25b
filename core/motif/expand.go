// core/motif/expand.go
package motif

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultExpansionLimit caps the literal count of a single motif
// (eight 'n' codes).
const DefaultExpansionLimit = 1 << 16

// Expander turns degenerate motifs into every literal string they can spell.
type Expander struct {
	table Table
	limit int
}

// NewExpander binds a table and an expansion cap. limit <= 0 selects
// DefaultExpansionLimit.
func NewExpander(t Table, limit int) *Expander {
	if limit <= 0 {
		limit = DefaultExpansionLimit
	}
	return &Expander{table: t, limit: limit}
}

// Expand returns the sorted, deduplicated set of literals for pattern.
// Matching is case-insensitive and 'u' is read as 't'.
func (e *Expander) Expand(pattern string) ([]string, error) {
	alts, err := e.positions(pattern)
	if err != nil {
		return nil, err
	}
	out := []string{""}
	for _, a := range alts {
		next := make([]string, 0, len(out)*len(a))
		for _, prefix := range out {
			for j := 0; j < len(a); j++ {
				next = append(next, prefix+a[j:j+1])
			}
		}
		out = next
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// positions validates pattern and returns the deduplicated alternatives
// for each position. The expansion size is checked here, before any
// literal is built.
func (e *Expander) positions(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, &PatternError{Pattern: pattern, Pos: -1, Reason: "empty pattern", Err: ErrInvalidPattern}
	}
	norm := strings.ReplaceAll(lowerASCII(pattern), "u", "t")

	alts := make([]string, len(norm))
	total := 1
	for i := 0; i < len(norm); i++ {
		c := norm[i]
		if c <= ' ' || c >= 0x7f {
			return nil, &PatternError{Pattern: pattern, Pos: i, Reason: fmt.Sprintf("unresolvable character %q", c), Err: ErrInvalidPattern}
		}
		a := uniqueBytes(e.table.Alternatives(c))
		alts[i] = a
		// checked before multiplying so the count cannot overflow
		if total > e.limit/len(a) {
			return nil, &PatternError{
				Pattern: pattern, Pos: -1,
				Reason: fmt.Sprintf("expands to more than %d literals", e.limit),
				Err:    ErrExpansionLimit,
			}
		}
		total *= len(a)
	}
	return alts, nil
}

// uniqueBytes drops repeated bytes, keeping first-seen order.
func uniqueBytes(s string) string {
	if len(s) < 2 {
		return s
	}
	var seen [256]bool
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			b = append(b, s[i])
		}
	}
	return string(b)
}
