package gene

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		seq  string
		want []Feature
	}{
		{"AAbbCC", []Feature{{Exon, 0, 2}, {Intron, 2, 4}, {Exon, 4, 6}}},
		{"", []Feature{{Exon, 0, 0}}},
		{"a", []Feature{{Intron, 0, 1}}},
		{"A", []Feature{{Exon, 0, 1}}},
		{"acgt", []Feature{{Intron, 0, 4}}},
		{"ACGT", []Feature{{Exon, 0, 4}}},
		{"atgCATGcaTG", []Feature{{Intron, 0, 3}, {Exon, 3, 7}, {Intron, 7, 9}, {Exon, 9, 11}}},
		// non-letters sort by code point: '-' and '1' are exon, '~' intron
		{"ac-1~G", []Feature{{Intron, 0, 2}, {Exon, 2, 4}, {Intron, 4, 5}, {Exon, 5, 6}}},
	}
	for _, tt := range tests {
		if got := Segment(tt.seq); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Segment(%q) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}

func TestSegment_CoverageProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const alphabet = "acgtnACGTN"
	for round := 0; round < 200; round++ {
		var sb strings.Builder
		n := rng.Intn(300)
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		seq := sb.String()
		fs := Segment(seq)
		if len(fs) == 0 {
			t.Fatalf("no features for %q", seq)
		}
		next := 0
		for i, f := range fs {
			if f.Start != next {
				t.Fatalf("gap or overlap at %d in %v", next, fs)
			}
			if f.End < f.Start || (f.Len() == 0 && n > 0) {
				t.Fatalf("bad span %v", f)
			}
			if i > 0 && fs[i-1].Kind == f.Kind {
				t.Fatalf("adjacent features share kind: %v", fs)
			}
			for k := f.Start; k < f.End; k++ {
				if kindOf(seq[k]) != f.Kind {
					t.Fatalf("byte %d (%q) tagged %v", k, seq[k], f.Kind)
				}
			}
			next = f.End
		}
		if next != n {
			t.Fatalf("coverage ends at %d, want %d", next, n)
		}
	}
}

func TestKindString(t *testing.T) {
	if Exon.String() != "exon" || Intron.String() != "intron" {
		t.Fatalf("kind names changed: %s %s", Exon, Intron)
	}
}
