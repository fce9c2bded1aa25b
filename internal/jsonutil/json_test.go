package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodePretty_KeepsLabelsLiteral(t *testing.T) {
	var buf bytes.Buffer
	v := map[string]string{"label": ">g1 <exon&intron>"}
	if err := EncodePretty(&buf, v); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"label\": \">g1 <exon&intron>\"\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestNewEncoder_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, "").Encode([]int{1, 2}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[1,2]\n" {
		t.Fatalf("got %q", buf.String())
	}
}
