// Package bio provides nucleotide alphabets (DNA, RNA and IUPAC
// ambiguity codes), amino acids and FASTA helpers.
//
// Every alphabet decodes single letters case-insensitively and
// encodes back to an uppercase canonical letter.
package bio

import (
	"fmt"
	"strings"
)

// Nucleotide is implemented by the bases of every alphabet.
type Nucleotide interface {
	// Letter returns the canonical uppercase letter.
	Letter() byte
	// Iupac widens the base to the ambiguity alphabet.
	Iupac() IupacBase
	// Rna returns the RNA base used for translation. The second
	// value is false for ambiguous codes.
	Rna() (RnaBase, bool)
	String() string
}

// Base is a constraint satisfied by a concrete alphabet type B.
// FromLetter is called on the zero value and does not depend on the
// receiver.
type Base[B any] interface {
	comparable
	Nucleotide
	Complement() B
	FromLetter(c rune) (B, error)
}

// DecodeError is returned when a letter does not belong to an
// alphabet.
type DecodeError struct {
	Letter   rune
	Alphabet string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s letter %q", e.Alphabet, e.Letter)
}

// Decode decodes every letter of s. Nothing is returned on error.
func Decode[B Base[B]](s string) ([]B, error) {
	var zero B
	bases := make([]B, 0, len(s))
	i := 0
	for _, c := range s {
		b, err := zero.FromLetter(c)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		bases = append(bases, b)
		i++
	}
	return bases, nil
}

// Letters encodes bases to a string of canonical letters.
func Letters[B Nucleotide](bases []B) string {
	var b strings.Builder
	b.Grow(len(bases))
	for _, n := range bases {
		b.WriteByte(n.Letter())
	}
	return b.String()
}

// Complement complements every base, keeping the order.
func Complement[B Base[B]](bases []B) []B {
	out := make([]B, len(bases))
	for i, n := range bases {
		out[i] = n.Complement()
	}
	return out
}

// ToIupac widens bases to the ambiguity alphabet.
func ToIupac[B Nucleotide](bases []B) []IupacBase {
	out := make([]IupacBase, len(bases))
	for i, n := range bases {
		out[i] = n.Iupac()
	}
	return out
}
