// core/gene/feature.go
package gene

// Kind tags a feature by the letter case of its run.
type Kind uint8

const (
	Exon   Kind = iota // uppercase run
	Intron             // lowercase run
)

func (k Kind) String() string {
	if k == Intron {
		return "intron"
	}
	return "exon"
}

// Feature is a half-open span [Start, End) of one case.
type Feature struct {
	Kind  Kind
	Start int
	End   int
}

func (f Feature) Len() int { return f.End - f.Start }
