package bio

import (
	"bytes"
	"testing"
)

const fasta1 = `>seq1 first
ACGT acgt
GG

>seq2
NNNN
`

func TestParseFasta(t *testing.T) {
	recs, err := ParseFasta(bytes.NewBufferString(fasta1))
	if err != nil {
		t.Fatal("Error parsing fasta:", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Name != "seq1 first" || recs[0].Sequence != "ACGTACGTGG" {
		t.Errorf("wrong first record: %+v", recs[0])
	}
	if recs[1].Sequence != "NNNN" {
		t.Errorf("wrong second record: %+v", recs[1])
	}
}

func TestParseFastaNoHeader(t *testing.T) {
	if _, err := ParseFasta(bytes.NewBufferString("ACGT\n")); err == nil {
		t.Error("sequence without header should fail")
	}
}

func TestFastaString(t *testing.T) {
	seq := make([]byte, 100)
	for i := range seq {
		seq[i] = 'A'
	}
	rec := Record{Name: "x", Sequence: string(seq)}
	s := rec.String()
	if len(s) != len(">x\n")+100+2 {
		t.Errorf("wrong wrapped length %d", len(s))
	}
	recs := Records{rec, {Name: "y", Sequence: "C"}}
	if recs.String()[len(recs.String())-1] != 'C' {
		t.Error("trailing newline should be trimmed")
	}
}
