package bio

// RnaBase is an unambiguous RNA base.
type RnaBase byte

const (
	// RnaA is adenine.
	RnaA RnaBase = iota
	// RnaC is cytosine.
	RnaC
	// RnaG is guanine.
	RnaG
	// RnaU is uracil.
	RnaU
)

// RnaBases lists the RNA alphabet.
var RnaBases = [...]RnaBase{RnaA, RnaC, RnaG, RnaU}

var rnaLetters = [...]byte{'A', 'C', 'G', 'U'}

var rnaNames = [...]string{"Adenine", "Cytosine", "Guanine", "Uracil"}

// FromLetter decodes an RNA letter. T and pseudouridine (Ψ) are
// accepted as U.
func (RnaBase) FromLetter(c rune) (RnaBase, error) {
	switch c {
	case 'A', 'a':
		return RnaA, nil
	case 'C', 'c':
		return RnaC, nil
	case 'G', 'g':
		return RnaG, nil
	case 'U', 'u', 'T', 't', 'Ψ', 'ψ':
		return RnaU, nil
	}
	return 0, &DecodeError{Letter: c, Alphabet: "RNA"}
}

// Letter returns A, C, G or U.
func (b RnaBase) Letter() byte {
	return rnaLetters[b&3]
}

func (b RnaBase) String() string {
	return rnaNames[b&3]
}

// Complement returns the Watson-Crick partner.
func (b RnaBase) Complement() RnaBase {
	return RnaU - b
}

// Iupac returns the corresponding unambiguous IUPAC code; U is
// widened to T.
func (b RnaBase) Iupac() IupacBase {
	return IupacBase(1 << (b & 3))
}

// Rna returns b itself.
func (b RnaBase) Rna() (RnaBase, bool) {
	return b, true
}

// Dna maps U to T.
func (b RnaBase) Dna() DnaBase {
	return DnaBase(b)
}
