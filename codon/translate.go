package codon

import (
	"fmt"

	"bitbucket.org/Davydov/plasmid/bio"
)

// standardCode is the standard genetic code (NCBI table 1), with
// every one of the 64 codons listed.
var standardCode = map[string]bio.AminoAcid{
	"UUU": bio.Phe, "UUC": bio.Phe, "UUA": bio.Leu, "UUG": bio.Leu,
	"UCU": bio.Ser, "UCC": bio.Ser, "UCA": bio.Ser, "UCG": bio.Ser,
	"UAU": bio.Tyr, "UAC": bio.Tyr, "UAA": bio.Stop, "UAG": bio.Stop,
	"UGU": bio.Cys, "UGC": bio.Cys, "UGA": bio.Stop, "UGG": bio.Trp,

	"CUU": bio.Leu, "CUC": bio.Leu, "CUA": bio.Leu, "CUG": bio.Leu,
	"CCU": bio.Pro, "CCC": bio.Pro, "CCA": bio.Pro, "CCG": bio.Pro,
	"CAU": bio.His, "CAC": bio.His, "CAA": bio.Gln, "CAG": bio.Gln,
	"CGU": bio.Arg, "CGC": bio.Arg, "CGA": bio.Arg, "CGG": bio.Arg,

	"AUU": bio.Ile, "AUC": bio.Ile, "AUA": bio.Ile, "AUG": bio.Met,
	"ACU": bio.Thr, "ACC": bio.Thr, "ACA": bio.Thr, "ACG": bio.Thr,
	"AAU": bio.Asn, "AAC": bio.Asn, "AAA": bio.Lys, "AAG": bio.Lys,
	"AGU": bio.Ser, "AGC": bio.Ser, "AGA": bio.Arg, "AGG": bio.Arg,

	"GUU": bio.Val, "GUC": bio.Val, "GUA": bio.Val, "GUG": bio.Val,
	"GCU": bio.Ala, "GCC": bio.Ala, "GCA": bio.Ala, "GCG": bio.Ala,
	"GAU": bio.Asp, "GAC": bio.Asp, "GAA": bio.Glu, "GAG": bio.Glu,
	"GGU": bio.Gly, "GGC": bio.Gly, "GGA": bio.Gly, "GGG": bio.Gly,
}

var (
	// geneticCode is standardCode indexed by codonIndex.
	geneticCode [64]bio.AminoAcid
	// reverseCode maps amino acids to their codons.
	reverseCode map[bio.AminoAcid][]RnaCodon
)

func init() {
	var seen [64]bool
	reverseCode = make(map[bio.AminoAcid][]RnaCodon, len(bio.AminoAcids))
	for s, aa := range standardCode {
		c, err := Parse[bio.RnaBase](s)
		if err != nil {
			panic(fmt.Sprintf("genetic code: %v", err))
		}
		i := codonIndex(c)
		geneticCode[i] = aa
		seen[i] = true
	}
	// codons are added in index order so Codons is deterministic
	for i, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("genetic code: codon %d missing", i))
		}
		c := New(bio.RnaBase(i>>4), bio.RnaBase(i>>2&3), bio.RnaBase(i&3))
		reverseCode[geneticCode[i]] = append(reverseCode[geneticCode[i]], c)
	}
}

func codonIndex(c RnaCodon) int {
	return int(c.triplet[0]&3)<<4 | int(c.triplet[1]&3)<<2 | int(c.triplet[2]&3)
}

// Translate returns the amino acid encoded by an RNA codon. The
// table is total, stop codons (UAA, UAG, UGA) translate to bio.Stop.
func Translate(c RnaCodon) bio.AminoAcid {
	return geneticCode[codonIndex(c)]
}

// TranslateDna translates a DNA codon, reading T as U.
func TranslateDna(c DnaCodon) bio.AminoAcid {
	rc, _ := c.Rna()
	return Translate(rc)
}

// IsStop tests if the codon is a stop codon.
func IsStop(c RnaCodon) bool {
	return Translate(c) == bio.Stop
}

// Codons returns the RNA codons encoding the amino acid, sorted with
// A < C < G < U at each position.
func Codons(aa bio.AminoAcid) []RnaCodon {
	return append([]RnaCodon(nil), reverseCode[aa]...)
}
