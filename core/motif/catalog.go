// core/motif/catalog.go
package motif

import (
	"fmt"
	"slices"
	"strings"
)

// Motif is one catalog slot: the pattern as supplied and every literal it
// expands to. Literals all share Length.
type Motif struct {
	Pattern string
	Length  int

	literals []string
	set      map[string]struct{}
	alts     []string // per-position alternatives
	table    Table
}

// Literals returns a copy of the sorted literal set.
func (m Motif) Literals() []string { return slices.Clone(m.literals) }

// Contains reports whether the lower-case window lit matches the motif.
// A plain window matches when it is one of the literals. A window that
// itself carries ambiguity codes matches when, at every position, the
// bases it may stand for are all allowed by the motif there.
func (m Motif) Contains(lit string) bool {
	if len(lit) != m.Length {
		return false
	}
	if _, ok := m.set[lit]; ok {
		return true
	}
	for k := 0; k < len(lit); k++ {
		w := m.table.Alternatives(lit[k])
		for i := 0; i < len(w); i++ {
			if strings.IndexByte(m.alts[k], w[i]) < 0 {
				return false
			}
		}
	}
	return true
}

// Catalog is the ordered, read-only set of motifs for a run. It is safe
// for concurrent use.
type Catalog struct {
	motifs []Motif
	maxLen int
}

// Build expands every pattern in order. Duplicated patterns keep their own
// slot. The first pattern that fails aborts the build.
func Build(patterns []string, e *Expander) (*Catalog, error) {
	c := &Catalog{motifs: make([]Motif, 0, len(patterns))}
	for i, p := range patterns {
		alts, err := e.positions(p)
		if err != nil {
			return nil, fmt.Errorf("motif %d: %w", i+1, err)
		}
		lits, err := e.Expand(p)
		if err != nil {
			return nil, fmt.Errorf("motif %d: %w", i+1, err)
		}
		n, err := literalLength(lits)
		if err != nil {
			return nil, fmt.Errorf("motif %d (%q): %w", i+1, p, err)
		}
		set := make(map[string]struct{}, len(lits))
		for _, l := range lits {
			set[l] = struct{}{}
		}
		c.motifs = append(c.motifs, Motif{
			Pattern: p, Length: n,
			literals: lits, set: set,
			alts: alts, table: e.table,
		})
		if n > c.maxLen {
			c.maxLen = n
		}
	}
	return c, nil
}

// literalLength returns the shortest literal length and fails if the set
// is not uniform.
func literalLength(lits []string) (int, error) {
	if len(lits) == 0 {
		return 0, fmt.Errorf("%w: no literals", ErrInvalidPattern)
	}
	n := len(lits[0])
	for _, l := range lits[1:] {
		n = min(n, len(l))
	}
	for _, l := range lits {
		if len(l) != n {
			return 0, fmt.Errorf("%w: literals differ in length (%d vs %d)", ErrInvalidPattern, n, len(l))
		}
	}
	return n, nil
}

func (c *Catalog) Len() int { return len(c.motifs) }

// MaxLength is the longest motif length, 0 for an empty catalog.
func (c *Catalog) MaxLength() int { return c.maxLen }

// At returns motif i.
func (c *Catalog) At(i int) (Motif, error) {
	if i < 0 || i >= len(c.motifs) {
		return Motif{}, fmt.Errorf("%w: %d (catalog has %d)", ErrIndexOutOfRange, i, len(c.motifs))
	}
	return c.motifs[i], nil
}

// MotifLength returns the fixed length of motif i.
func (c *Catalog) MotifLength(i int) (int, error) {
	m, err := c.At(i)
	if err != nil {
		return 0, err
	}
	return m.Length, nil
}

// Matches lower-cases candidate and tests it against motif i.
func (c *Catalog) Matches(i int, candidate string) (bool, error) {
	m, err := c.At(i)
	if err != nil {
		return false, err
	}
	return m.Contains(lowerASCII(candidate)), nil
}

// Patterns returns the raw patterns in catalog order.
func (c *Catalog) Patterns() []string {
	out := make([]string, len(c.motifs))
	for i, m := range c.motifs {
		out[i] = m.Pattern
	}
	return out
}
