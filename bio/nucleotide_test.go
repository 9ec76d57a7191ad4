package bio

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	dna, err := Decode[DnaBase]("acgtTGCA")
	if err != nil {
		t.Fatal("Error decoding DNA:", err)
	}
	if s := Letters(dna); s != "ACGTTGCA" {
		t.Errorf("DNA round trip: got %s", s)
	}

	rna, err := Decode[RnaBase]("augcΨ")
	if err != nil {
		t.Fatal("Error decoding RNA:", err)
	}
	if s := Letters(rna); s != "AUGCU" {
		t.Errorf("RNA round trip: got %s", s)
	}

	all := "ACGTWSMKRYBDHVN-"
	iupac, err := Decode[IupacBase](strings.ToLower(all))
	if err != nil {
		t.Fatal("Error decoding IUPAC:", err)
	}
	if s := Letters(iupac); s != all {
		t.Errorf("IUPAC round trip: got %s", s)
	}
}

func TestDecodeAliases(t *testing.T) {
	var d DnaBase
	if b, err := d.FromLetter('u'); err != nil || b != DnaT {
		t.Error("DNA should accept U as T")
	}
	var r RnaBase
	if b, err := r.FromLetter('T'); err != nil || b != RnaU {
		t.Error("RNA should accept T as U")
	}
	var i IupacBase
	if b, err := i.FromLetter('U'); err != nil || b != IupacT {
		t.Error("IUPAC should accept U as T")
	}
}

func TestDecodeError(t *testing.T) {
	_, err := Decode[DnaBase]("ACNT")
	if err == nil {
		t.Fatal("N is not a DNA letter")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %T", err)
	}
	if de.Letter != 'N' || de.Alphabet != "DNA" {
		t.Errorf("wrong error details: %v", de)
	}

	for _, s := range []string{"é", "X", " ", "*"} {
		if _, err := Decode[IupacBase](s); err == nil {
			t.Errorf("%q should not decode as IUPAC", s)
		}
	}
}

func TestComplementInvolution(t *testing.T) {
	for _, b := range DnaBases {
		if b.Complement().Complement() != b {
			t.Errorf("DNA %v: complement is not an involution", b)
		}
		if b.Complement() == b {
			t.Errorf("DNA %v is its own complement", b)
		}
	}
	for _, b := range RnaBases {
		if b.Complement().Complement() != b {
			t.Errorf("RNA %v: complement is not an involution", b)
		}
	}
	for _, b := range IupacBases {
		if b.Complement().Complement() != b {
			t.Errorf("IUPAC %c: complement is not an involution", b.Letter())
		}
	}
}

func TestIupacComplement(t *testing.T) {
	pairs := map[byte]byte{
		'A': 'T', 'C': 'G', 'W': 'W', 'S': 'S', 'M': 'K',
		'R': 'Y', 'B': 'V', 'D': 'H', 'N': 'N', '-': '-',
	}
	var zero IupacBase
	for a, b := range pairs {
		n, _ := zero.FromLetter(rune(a))
		if c := n.Complement().Letter(); c != b {
			t.Errorf("complement of %c: got %c, expected %c", a, c, b)
		}
	}
}

func TestConcreteToIupac(t *testing.T) {
	seen := map[IupacBase]bool{}
	for _, b := range DnaBases {
		i := b.Iupac()
		if i.Letter() != b.Letter() {
			t.Errorf("DNA %c widened to %c", b.Letter(), i.Letter())
		}
		seen[i] = true
	}
	if len(seen) != 4 {
		t.Error("DNA to IUPAC mapping is not injective")
	}
	if RnaU.Iupac() != IupacT {
		t.Error("U should widen to T")
	}
}

func TestIupacMatches(t *testing.T) {
	for _, x := range IupacBases {
		if !IupacN.Matches(x) {
			t.Errorf("N should match %c", x.Letter())
		}
		if Gap.Matches(x) != (x == Gap) {
			t.Errorf("gap matching %c", x.Letter())
		}
		if !x.Matches(x) {
			t.Errorf("%c should match itself", x.Letter())
		}
	}
	if IupacA.Matches(IupacN) {
		t.Error("A should not match N")
	}
	if !IupacR.Matches(IupacA) || !IupacR.Matches(IupacG) || IupacR.Matches(IupacC) {
		t.Error("R is A or G")
	}
	if !IupacB.Matches(IupacS) || IupacB.Matches(IupacW) {
		t.Error("B contains S but not W")
	}
	if IupacA.Matches(Gap) || IupacN.Matches(Gap) != true {
		t.Error("gap handling")
	}
}

func TestBaseNames(t *testing.T) {
	if DnaT.String() != "Thymine" {
		t.Error("DNA T name:", DnaT)
	}
	if RnaU.String() != "Uracil" {
		t.Error("RNA U name:", RnaU)
	}
	if IupacR.String() != "Purine" {
		t.Error("IUPAC R name:", IupacR)
	}
}

func TestAminoAcidLetters(t *testing.T) {
	letters := map[byte]bool{}
	for _, aa := range AminoAcids {
		l := aa.Letter()
		if letters[l] {
			t.Errorf("duplicate letter %c", l)
		}
		letters[l] = true
		back, err := AminoAcidFromLetter(rune(l))
		if err != nil || back != aa {
			t.Errorf("round trip of %v failed", aa)
		}
	}
	if Stop.Letter() != '*' || Stop.String() != "STOP" || Stop.Abbrev() != "Ter" {
		t.Error("stop representation")
	}
	if aa, err := AminoAcidFromLetter('m'); err != nil || aa != Met {
		t.Error("lowercase m should be Met")
	}
	if _, err := AminoAcidFromLetter('B'); err == nil {
		t.Error("B is not an amino acid letter")
	}
	if Protein([]AminoAcid{Met, Lys, Stop}) != "MK*" {
		t.Error("protein string")
	}
}
