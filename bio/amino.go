package bio

import "fmt"

// AminoAcid is one of the 20 standard amino acids or the stop
// signal.
type AminoAcid byte

// Amino acids, in alphabetical order of their three-letter codes.
const (
	Ala AminoAcid = iota
	Arg
	Asn
	Asp
	Cys
	Gln
	Glu
	Gly
	His
	Ile
	Leu
	Lys
	Met
	Phe
	Pro
	Ser
	Stop
	Thr
	Trp
	Tyr
	Val
)

// AminoAcids lists all translation outcomes.
var AminoAcids = [...]AminoAcid{
	Ala, Arg, Asn, Asp, Cys, Gln, Glu, Gly, His, Ile, Leu,
	Lys, Met, Phe, Pro, Ser, Stop, Thr, Trp, Tyr, Val,
}

var aminoAcidInfo = [...]struct {
	letter byte
	abbrev string
	name   string
}{
	Ala:  {'A', "Ala", "Alanine"},
	Arg:  {'R', "Arg", "Arginine"},
	Asn:  {'N', "Asn", "Asparagine"},
	Asp:  {'D', "Asp", "Aspartic acid"},
	Cys:  {'C', "Cys", "Cysteine"},
	Gln:  {'Q', "Gln", "Glutamine"},
	Glu:  {'E', "Glu", "Glutamic acid"},
	Gly:  {'G', "Gly", "Glycine"},
	His:  {'H', "His", "Histidine"},
	Ile:  {'I', "Ile", "Isoleucine"},
	Leu:  {'L', "Leu", "Leucine"},
	Lys:  {'K', "Lys", "Lysine"},
	Met:  {'M', "Met", "Methionine"},
	Phe:  {'F', "Phe", "Phenylalanine"},
	Pro:  {'P', "Pro", "Proline"},
	Ser:  {'S', "Ser", "Serine"},
	Stop: {'*', "Ter", "STOP"},
	Thr:  {'T', "Thr", "Threonine"},
	Trp:  {'W', "Trp", "Tryptophan"},
	Tyr:  {'Y', "Tyr", "Tyrosine"},
	Val:  {'V', "Val", "Valine"},
}

// AminoAcidFromLetter decodes a one-letter amino acid code, '*'
// being the stop.
func AminoAcidFromLetter(c rune) (AminoAcid, error) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for _, aa := range AminoAcids {
		if rune(aminoAcidInfo[aa].letter) == c {
			return aa, nil
		}
	}
	return 0, &DecodeError{Letter: c, Alphabet: "amino acid"}
}

// Letter returns the one-letter code.
func (aa AminoAcid) Letter() byte {
	if int(aa) >= len(aminoAcidInfo) {
		return '?'
	}
	return aminoAcidInfo[aa].letter
}

// Abbrev returns the three-letter code.
func (aa AminoAcid) Abbrev() string {
	if int(aa) >= len(aminoAcidInfo) {
		return fmt.Sprintf("AminoAcid(%d)", aa)
	}
	return aminoAcidInfo[aa].abbrev
}

func (aa AminoAcid) String() string {
	if int(aa) >= len(aminoAcidInfo) {
		return fmt.Sprintf("AminoAcid(%d)", aa)
	}
	return aminoAcidInfo[aa].name
}

// Protein returns the one-letter codes of a chain of amino acids.
func Protein(aas []AminoAcid) string {
	b := make([]byte, len(aas))
	for i, aa := range aas {
		b[i] = aa.Letter()
	}
	return string(b)
}
