package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrettyPrint(t *testing.T) {
	var b bytes.Buffer
	if err := prettyPrint(&b, "ATGGCC", Watson); err != nil {
		t.Fatal(err)
	}
	exp := "5' ATGGCC 3'\n" +
		"3' TACCGG 5'\n" +
		"    M  A    \n"
	if b.String() != exp {
		t.Errorf("wrong output:\n%q\nexpected:\n%q", b.String(), exp)
	}
}

func TestPrettyPrintCrick(t *testing.T) {
	var b bytes.Buffer
	if err := prettyPrint(&b, "ATG", Crick); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")
	if lines[0] != "3' ATG 5'" || lines[1] != "5' TAC 3'" {
		t.Errorf("wrong strands: %q", lines)
	}
}

func TestPrettyPrintBadLetter(t *testing.T) {
	var b bytes.Buffer
	if err := prettyPrint(&b, "ATX", Watson); err == nil {
		t.Error("expected error for X")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		sequence, pattern string
		matches           bool
	}{
		{"ACGT", "ACGT", true},
		{"ACGT", "NNNN", false},
		{"ACGT", "ACGA", false},
		{"GATTACA", "GAT", true},
	}
	for _, test := range tests {
		var b bytes.Buffer
		if err := match(&b, test.sequence, test.pattern, Watson); err != nil {
			t.Fatal(err)
		}
		exp := "-> Matches: false"
		if test.matches {
			exp = "-> Matches: true"
		}
		if !strings.Contains(b.String(), exp) {
			t.Errorf("%s ~ %s: got %q", test.sequence, test.pattern, b.String())
		}
	}
}

func TestMatchBadPattern(t *testing.T) {
	var b bytes.Buffer
	if err := match(&b, "ACGT", "ACGJ", Watson); err == nil {
		t.Error("expected error for J in pattern")
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		sequence  string
		rna, long bool
		exp       string
	}{
		{"ATGGCCTAA", false, false, "MA*"},
		{"AUGGCCUAA", true, false, "MA*"},
		{"ATGGCC", false, true, "Met-Ala"},
		{"ATGGC", false, false, "M"},
	}
	for _, test := range tests {
		var b bytes.Buffer
		if err := translate(&b, test.sequence, test.rna, test.long); err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(b.String()); got != test.exp {
			t.Errorf("translate(%s) = %s, expected %s", test.sequence, got, test.exp)
		}
	}
}

func TestDigest(t *testing.T) {
	var b bytes.Buffer
	jsonFile := filepath.Join(t.TempDir(), "digest.json")
	if err := digest(&b, "AAAACATATGAAAA", "", nil, jsonFile); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one site, got %q", lines)
	}
	if f := strings.Fields(lines[1]); strings.Join(f, " ") != "sequence NdeI 3 9 5" {
		t.Errorf("wrong site line %q", lines[1])
	}

	j, err := os.ReadFile(jsonFile)
	if err != nil {
		t.Fatal(err)
	}
	var summary DigestSummary
	if err := json.Unmarshal(j, &summary); err != nil {
		t.Fatal(err)
	}
	if len(summary.Sequences) != 1 || len(summary.Sequences[0].Sites) != 1 {
		t.Fatalf("wrong summary %+v", summary)
	}
	site := summary.Sequences[0].Sites[0]
	if site.Name != "NdeI" || site.Needle == nil || *site.Needle != 5 {
		t.Errorf("wrong site %v", site)
	}
}

func TestDigestFasta(t *testing.T) {
	fasta := filepath.Join(t.TempDir(), "in.fasta")
	data := ">one\nGAATTC\n>two\nNNNN\n"
	if err := os.WriteFile(fasta, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := digest(&b, "", fasta, []string{"EcoRI"}, ""); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "one") || strings.Contains(out, "two") {
		t.Errorf("wrong digest output %q", out)
	}
}

func TestDigestErrors(t *testing.T) {
	var b bytes.Buffer
	if err := digest(&b, "ACGT", "", []string{"NoSuchI"}, ""); err == nil {
		t.Error("expected error for unknown enzyme")
	}
	if err := digest(&b, "", "", nil, ""); err == nil {
		t.Error("expected error for missing sequence")
	}
}

func TestListEnzymes(t *testing.T) {
	var b bytes.Buffer
	if err := listEnzymes(&b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "CA^TATG") {
		t.Error("NdeI site not listed")
	}
}

func TestExport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.svg")
	if err := export("AAAACATATGAAAA", out, "svg", "test map", []string{"NdeI"}); err != nil {
		t.Fatal(err)
	}
	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("NdeI")) {
		t.Error("map does not mention NdeI")
	}
}

func TestSaveLoadList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "plasmid.db")
	var b bytes.Buffer
	if err := save(&b, db, "ndei", "AAAACATATGAAAA"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "saved ndei: 14 bases, 1 sites") {
		t.Errorf("wrong save output %q", b.String())
	}

	b.Reset()
	if err := load(&b, db, "ndei"); err != nil {
		t.Fatal(err)
	}
	exp := ">ndei\nAAAACATATGAAAA\n; NdeI [3, 9] cut 5\n"
	if b.String() != exp {
		t.Errorf("wrong load output %q", b.String())
	}

	b.Reset()
	if err := list(&b, db); err != nil {
		t.Fatal(err)
	}
	if b.String() != "ndei\n" {
		t.Errorf("wrong list output %q", b.String())
	}

	if err := load(&b, db, "missing"); err == nil {
		t.Error("expected error for missing sequence")
	}
}
