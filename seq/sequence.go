// Package seq implements genetic sequences generic over the
// nucleotide alphabet.
//
// A Sequence is not safe for concurrent mutation; callers sharing
// one between goroutines must serialize writes themselves.
package seq

import (
	"fmt"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/plasmid/bio"
	"bitbucket.org/Davydov/plasmid/codon"
	"bitbucket.org/Davydov/plasmid/enzyme"
)

// log is the global logging variable.
var log = logging.MustGetLogger("seq")

// Sequence is an ordered list of bases with the annotations found on
// it. Its codons are codon.Codon[B], so the codon alphabet always
// matches the base alphabet.
//
// Annotations are not updated when bases are added or removed;
// callers re-annotate after edits.
type Sequence[B bio.Base[B]] struct {
	bases       []B
	annotations []enzyme.Annotation
}

// DnaSequence is a DNA sequence.
type DnaSequence = Sequence[bio.DnaBase]

// RnaSequence is an RNA sequence.
type RnaSequence = Sequence[bio.RnaBase]

// IupacSequence is a sequence of IUPAC codes.
type IupacSequence = Sequence[bio.IupacBase]

// New creates an empty sequence.
func New[B bio.Base[B]]() *Sequence[B] {
	return &Sequence[B]{}
}

// FromBases creates a sequence from a copy of bases.
func FromBases[B bio.Base[B]](bases []B) *Sequence[B] {
	return &Sequence[B]{bases: append([]B(nil), bases...)}
}

// Parse decodes a letter string into a sequence.
func Parse[B bio.Base[B]](s string) (*Sequence[B], error) {
	seq := New[B]()
	if err := seq.PushString(s); err != nil {
		return nil, err
	}
	return seq, nil
}

// ParseDna decodes a DNA letter string.
func ParseDna(s string) (*DnaSequence, error) {
	return Parse[bio.DnaBase](s)
}

// ParseRna decodes an RNA letter string.
func ParseRna(s string) (*RnaSequence, error) {
	return Parse[bio.RnaBase](s)
}

// ParseIupac decodes an IUPAC letter string.
func ParseIupac(s string) (*IupacSequence, error) {
	return Parse[bio.IupacBase](s)
}

// Len returns the number of bases.
func (s *Sequence[B]) Len() int {
	return len(s.bases)
}

// At returns the base at index i.
func (s *Sequence[B]) At(i int) B {
	return s.bases[i]
}

// PushBase appends a base.
func (s *Sequence[B]) PushBase(b B) {
	s.bases = append(s.bases, b)
}

// PopBase removes the last base and returns it. The second value is
// false if the sequence is empty.
func (s *Sequence[B]) PopBase() (b B, ok bool) {
	if len(s.bases) == 0 {
		return b, false
	}
	b = s.bases[len(s.bases)-1]
	s.bases = s.bases[:len(s.bases)-1]
	return b, true
}

// PushString decodes and appends every letter of str in order.
//
// The operation is not atomic: bases decoded before an invalid
// letter stay appended. Validate with bio.Decode first when that
// matters.
func (s *Sequence[B]) PushString(str string) error {
	var zero B
	i := 0
	for _, c := range str {
		b, err := zero.FromLetter(c)
		if err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		s.bases = append(s.bases, b)
		i++
	}
	return nil
}

// PushCodon appends the three bases of a codon.
func (s *Sequence[B]) PushCodon(c codon.Codon[B]) {
	t := c.Array()
	s.bases = append(s.bases, t[:]...)
}

// PopCodon removes and returns the last complete codon in the
// reading frame starting at index 0. Trailing bases that do not
// complete a codon stay in the sequence, e.g. AGTAA gives AGT and
// leaves AA.
func (s *Sequence[B]) PopCodon() (c codon.Codon[B], ok bool) {
	end := len(s.bases) / 3 * 3
	if end == 0 {
		return c, false
	}
	c = codon.New(s.bases[end-3], s.bases[end-2], s.bases[end-1])
	s.bases = append(s.bases[:end-3], s.bases[end:]...)
	return c, true
}

// PopCodonUnsafe removes the last three bases and returns them as a
// codon regardless of the reading frame, e.g. AGTAA gives TAA.
func (s *Sequence[B]) PopCodonUnsafe() (c codon.Codon[B], ok bool) {
	n := len(s.bases)
	if n < 3 {
		return c, false
	}
	c = codon.New(s.bases[n-3], s.bases[n-2], s.bases[n-1])
	s.bases = s.bases[:n-3]
	return c, true
}

// Codons returns an iterator over the codons in the reading frame
// starting at index 0. Trailing bases that do not complete a codon
// are skipped.
func (s *Sequence[B]) Codons() *CodonIter[B] {
	return &CodonIter[B]{bases: s.bases}
}

// AsCodons returns all codons of the reading frame starting at 0.
func (s *Sequence[B]) AsCodons() []codon.Codon[B] {
	cs := make([]codon.Codon[B], 0, len(s.bases)/3)
	for it := s.Codons(); it.Next(); {
		cs = append(cs, it.Codon())
	}
	return cs
}

// AsNucleotides returns a copy of the bases.
func (s *Sequence[B]) AsNucleotides() []B {
	return append([]B(nil), s.bases...)
}

// ToNucleotideString returns the bases as canonical letters.
func (s *Sequence[B]) ToNucleotideString() string {
	return bio.Letters(s.bases)
}

func (s *Sequence[B]) String() string {
	return s.ToNucleotideString()
}

// AsReverseComplement returns the complement of every base in the
// original order, i.e. the opposite strand read 3' to 5' as it is
// printed under the sequence.
func (s *Sequence[B]) AsReverseComplement() []B {
	return bio.Complement(s.bases)
}

// ToReverseComplementString returns AsReverseComplement as letters.
func (s *Sequence[B]) ToReverseComplementString() string {
	return bio.Letters(bio.Complement(s.bases))
}

// Matches compares the sequence with an IUPAC pattern position by
// position, stopping at the shorter of the two. Each sequence base,
// widened to IUPAC, must match the pattern code; length is not
// checked.
func (s *Sequence[B]) Matches(pattern []bio.IupacBase) bool {
	return MatchBases(s.bases, pattern)
}

// MatchBases is Matches for any pair of alphabets.
func MatchBases[B, P bio.Nucleotide](bases []B, pattern []P) bool {
	n := len(bases)
	if len(pattern) < n {
		n = len(pattern)
	}
	for i := 0; i < n; i++ {
		if !bases[i].Iupac().Matches(pattern[i].Iupac()) {
			return false
		}
	}
	return true
}

// ToIupac widens the sequence to IUPAC codes. Annotations are
// copied.
func (s *Sequence[B]) ToIupac() *IupacSequence {
	return &IupacSequence{
		bases:       bio.ToIupac(s.bases),
		annotations: s.Annotations(),
	}
}
