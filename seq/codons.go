package seq

import (
	"bitbucket.org/Davydov/plasmid/bio"
	"bitbucket.org/Davydov/plasmid/codon"
)

// CodonIter iterates over the codons of a sequence:
//
//	for it := s.Codons(); it.Next(); {
//		c := it.Codon()
//	}
//
// The sequence must not be modified while iterating.
type CodonIter[B bio.Base[B]] struct {
	bases []B
	pos   int
	cur   codon.Codon[B]
}

// Next advances to the next codon and reports whether there is one.
func (it *CodonIter[B]) Next() bool {
	if it.pos+3 > len(it.bases) {
		return false
	}
	b := it.bases[it.pos : it.pos+3]
	it.cur = codon.New(b[0], b[1], b[2])
	it.pos += 3
	return true
}

// Codon returns the current codon.
func (it *CodonIter[B]) Codon() codon.Codon[B] {
	return it.cur
}

// Reset restarts the iteration.
func (it *CodonIter[B]) Reset() {
	it.pos = 0
	it.cur = codon.Codon[B]{}
}

// Translate translates the codons of the reading frame starting at
// index 0. It stops before the first codon containing an ambiguous
// code and then returns false; DNA and RNA sequences always
// translate completely.
func (s *Sequence[B]) Translate() ([]bio.AminoAcid, bool) {
	aas := make([]bio.AminoAcid, 0, len(s.bases)/3)
	for it := s.Codons(); it.Next(); {
		aa, ok := it.Codon().Translate()
		if !ok {
			return aas, false
		}
		aas = append(aas, aa)
	}
	return aas, true
}

// Protein returns the one-letter translation of the sequence. Codons
// with ambiguous codes are written as X.
func (s *Sequence[B]) Protein() string {
	p := make([]byte, 0, len(s.bases)/3)
	for it := s.Codons(); it.Next(); {
		if aa, ok := it.Codon().Translate(); ok {
			p = append(p, aa.Letter())
		} else {
			p = append(p, 'X')
		}
	}
	return string(p)
}
