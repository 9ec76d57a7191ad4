package codon

import (
	"testing"

	"bitbucket.org/Davydov/plasmid/bio"
)

// ncbiStandard is NCBI table 1 in TCAG order.
const ncbiStandard = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

func TestTranslateAll(t *testing.T) {
	order := "UCAG"
	n := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				s := string([]byte{order[i], order[j], order[k]})
				c, err := Parse[bio.RnaBase](s)
				if err != nil {
					t.Fatal(err)
				}
				if l := Translate(c).Letter(); l != ncbiStandard[n] {
					t.Errorf("%s: got %c, expected %c", s, l, ncbiStandard[n])
				}
				n++
			}
		}
	}
}

func TestTranslateSpot(t *testing.T) {
	cases := map[string]bio.AminoAcid{
		"AUG": bio.Met,
		"UAA": bio.Stop,
		"UAG": bio.Stop,
		"UGA": bio.Stop,
		"UUU": bio.Phe,
		"UUC": bio.Phe,
		"UGG": bio.Trp,
		"GGG": bio.Gly,
	}
	for s, aa := range cases {
		c, _ := Parse[bio.RnaBase](s)
		if Translate(c) != aa {
			t.Errorf("%s: got %v, expected %v", s, Translate(c), aa)
		}
	}
}

func TestTranslateDna(t *testing.T) {
	for _, s := range []string{"ATG", "TAA", "TGG", "CTT"} {
		d, _ := Parse[bio.DnaBase](s)
		r, _ := Parse[bio.RnaBase](s)
		if TranslateDna(d) != Translate(r) {
			t.Errorf("%s: DNA and RNA translation differ", s)
		}
		if aa, ok := d.Translate(); !ok || aa != Translate(r) {
			t.Errorf("%s: generic translation differs", s)
		}
	}
}

func TestTranslateIupac(t *testing.T) {
	c, _ := Parse[bio.IupacBase]("ATG")
	if aa, ok := c.Translate(); !ok || aa != bio.Met {
		t.Error("unambiguous IUPAC codon should translate")
	}
	c, _ = Parse[bio.IupacBase]("ATN")
	if _, ok := c.Translate(); ok {
		t.Error("ambiguous codon should not translate")
	}
}

func TestCodons(t *testing.T) {
	total := 0
	for _, aa := range bio.AminoAcids {
		cs := Codons(aa)
		if len(cs) == 0 {
			t.Errorf("%v has no codons", aa)
		}
		for _, c := range cs {
			if Translate(c) != aa {
				t.Errorf("%s does not encode %v", c, aa)
			}
		}
		total += len(cs)
	}
	if total != 64 {
		t.Errorf("expected 64 codons, got %d", total)
	}
	stops := Codons(bio.Stop)
	if len(stops) != 3 || stops[0].String() != "UAA" {
		t.Errorf("wrong stop codons %v", stops)
	}
	for _, c := range stops {
		if !IsStop(c) {
			t.Errorf("%s should be a stop codon", c)
		}
	}
	stops[0] = New(bio.RnaA, bio.RnaA, bio.RnaA)
	if Codons(bio.Stop)[0].String() != "UAA" {
		t.Error("Codons should return a copy")
	}
}
