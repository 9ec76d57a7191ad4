// Package codon implements nucleotide triplets and the standard
// genetic code.
package codon

import (
	"fmt"
	"unicode/utf8"

	"bitbucket.org/Davydov/plasmid/bio"
)

// Codon is an ordered triplet of bases of one alphabet. Codons are
// comparable and can be used as map keys.
type Codon[B bio.Base[B]] struct {
	triplet [3]B
}

// DnaCodon is a triplet of DNA bases.
type DnaCodon = Codon[bio.DnaBase]

// RnaCodon is a triplet of RNA bases.
type RnaCodon = Codon[bio.RnaBase]

// IupacCodon is a triplet of IUPAC codes.
type IupacCodon = Codon[bio.IupacBase]

// LengthError is returned when a codon string does not have exactly
// three letters.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("codon must have 3 letters, got %d", e.Length)
}

// New creates a codon from three bases.
func New[B bio.Base[B]](first, second, third B) Codon[B] {
	return Codon[B]{triplet: [3]B{first, second, third}}
}

// FromArray creates a codon from an array of three bases.
func FromArray[B bio.Base[B]](triplet [3]B) Codon[B] {
	return Codon[B]{triplet: triplet}
}

// Parse decodes a three letter string, e.g.
//
//	c, err := codon.Parse[bio.RnaBase]("AUG")
func Parse[B bio.Base[B]](s string) (c Codon[B], err error) {
	if n := utf8.RuneCountInString(s); n != 3 {
		return c, &LengthError{Length: n}
	}
	var zero B
	i := 0
	for _, r := range s {
		c.triplet[i], err = zero.FromLetter(r)
		if err != nil {
			return Codon[B]{}, err
		}
		i++
	}
	return c, nil
}

// Array returns the three bases.
func (c Codon[B]) Array() [3]B {
	return c.triplet
}

// String returns the three canonical letters.
func (c Codon[B]) String() string {
	return string([]byte{c.triplet[0].Letter(), c.triplet[1].Letter(), c.triplet[2].Letter()})
}

// Anticodon complements every base of the codon.
func (c Codon[B]) Anticodon() Codon[B] {
	return New(c.triplet[0].Complement(), c.triplet[1].Complement(), c.triplet[2].Complement())
}

// Iupac widens the codon to IUPAC codes.
func (c Codon[B]) Iupac() IupacCodon {
	return New(c.triplet[0].Iupac(), c.triplet[1].Iupac(), c.triplet[2].Iupac())
}

// Rna converts the codon for translation, mapping T to U. It fails
// only for ambiguous IUPAC codes.
func (c Codon[B]) Rna() (rc RnaCodon, ok bool) {
	for i, b := range c.triplet {
		rc.triplet[i], ok = b.Rna()
		if !ok {
			return RnaCodon{}, false
		}
	}
	return rc, true
}

// Translate returns the amino acid encoded by the codon. The second
// value is false if the codon contains ambiguous codes.
func (c Codon[B]) Translate() (bio.AminoAcid, bool) {
	rc, ok := c.Rna()
	if !ok {
		return 0, false
	}
	return Translate(rc), true
}
