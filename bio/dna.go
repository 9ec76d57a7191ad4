package bio

// DnaBase is an unambiguous DNA base.
type DnaBase byte

const (
	// DnaA is adenine.
	DnaA DnaBase = iota
	// DnaC is cytosine.
	DnaC
	// DnaG is guanine.
	DnaG
	// DnaT is thymine.
	DnaT
)

// DnaBases lists the DNA alphabet.
var DnaBases = [...]DnaBase{DnaA, DnaC, DnaG, DnaT}

var dnaLetters = [...]byte{'A', 'C', 'G', 'T'}

var dnaNames = [...]string{"Adenine", "Cytosine", "Guanine", "Thymine"}

// FromLetter decodes a DNA letter. U is accepted as T.
func (DnaBase) FromLetter(c rune) (DnaBase, error) {
	switch c {
	case 'A', 'a':
		return DnaA, nil
	case 'C', 'c':
		return DnaC, nil
	case 'G', 'g':
		return DnaG, nil
	case 'T', 't', 'U', 'u':
		return DnaT, nil
	}
	return 0, &DecodeError{Letter: c, Alphabet: "DNA"}
}

// Letter returns A, C, G or T.
func (b DnaBase) Letter() byte {
	return dnaLetters[b&3]
}

func (b DnaBase) String() string {
	return dnaNames[b&3]
}

// Complement returns the Watson-Crick partner.
func (b DnaBase) Complement() DnaBase {
	return DnaT - b
}

// Iupac returns the corresponding unambiguous IUPAC code.
func (b DnaBase) Iupac() IupacBase {
	return IupacBase(1 << (b & 3))
}

// Rna maps T to U.
func (b DnaBase) Rna() (RnaBase, bool) {
	return RnaBase(b), true
}
