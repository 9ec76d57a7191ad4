package bio

// IupacBase is an IUPAC nucleotide code. The value is a bit mask of
// the concrete bases it stands for (bit 0 = A, 1 = C, 2 = G, 3 = T);
// the gap uses a bit of its own.
type IupacBase byte

// IUPAC codes.
const (
	IupacA IupacBase = 1 << iota
	IupacC
	IupacG
	IupacT
	Gap

	IupacW = IupacA | IupacT                   // weak
	IupacS = IupacC | IupacG                   // strong
	IupacM = IupacA | IupacC                   // amino
	IupacK = IupacG | IupacT                   // keto
	IupacR = IupacA | IupacG                   // purine
	IupacY = IupacC | IupacT                   // pyrimidine
	IupacB = IupacC | IupacG | IupacT          // not A
	IupacD = IupacA | IupacG | IupacT          // not C
	IupacH = IupacA | IupacC | IupacT          // not G
	IupacV = IupacA | IupacC | IupacG          // not T
	IupacN = IupacA | IupacC | IupacG | IupacT // any
)

// IupacBases lists every IUPAC code in canonical order.
var IupacBases = [...]IupacBase{
	IupacA, IupacC, IupacG, IupacT,
	IupacW, IupacS, IupacM, IupacK, IupacR, IupacY,
	IupacB, IupacD, IupacH, IupacV, IupacN, Gap,
}

var iupacLetters = map[IupacBase]byte{
	IupacA: 'A', IupacC: 'C', IupacG: 'G', IupacT: 'T',
	IupacW: 'W', IupacS: 'S', IupacM: 'M', IupacK: 'K',
	IupacR: 'R', IupacY: 'Y', IupacB: 'B', IupacD: 'D',
	IupacH: 'H', IupacV: 'V', IupacN: 'N', Gap: '-',
}

var iupacNames = map[IupacBase]string{
	IupacA: "Adenine", IupacC: "Cytosine", IupacG: "Guanine", IupacT: "Thymine",
	IupacW: "Weak", IupacS: "Strong", IupacM: "Amino", IupacK: "Keto",
	IupacR: "Purine", IupacY: "Pyrimidine", IupacB: "Not A", IupacD: "Not C",
	IupacH: "Not G", IupacV: "Not T", IupacN: "Any", Gap: "Gap",
}

var iupacCodes map[rune]IupacBase

func init() {
	iupacCodes = make(map[rune]IupacBase, 2*len(iupacLetters)+2)
	for b, l := range iupacLetters {
		iupacCodes[rune(l)] = b
		iupacCodes[rune(l)+'a'-'A'] = b
	}
	iupacCodes['-'] = Gap
	iupacCodes['U'] = IupacT
	iupacCodes['u'] = IupacT
}

// FromLetter decodes an IUPAC letter; '-' is the gap and U is
// accepted as T.
func (IupacBase) FromLetter(c rune) (IupacBase, error) {
	if b, ok := iupacCodes[c]; ok {
		return b, nil
	}
	return 0, &DecodeError{Letter: c, Alphabet: "IUPAC"}
}

// Letter returns the canonical letter, '?' for an invalid value.
func (b IupacBase) Letter() byte {
	if l, ok := iupacLetters[b]; ok {
		return l
	}
	return '?'
}

func (b IupacBase) String() string {
	if s, ok := iupacNames[b]; ok {
		return s
	}
	return "Invalid"
}

// Complement swaps A with T and C with G in the set of bases, so
// R becomes Y, B becomes V and so on. N, W, S and the gap are their
// own complements.
func (b IupacBase) Complement() IupacBase {
	if b == Gap {
		return Gap
	}
	return (b&IupacA)<<3 | (b&IupacC)<<1 | (b&IupacG)>>1 | (b&IupacT)>>3
}

// Iupac returns b itself.
func (b IupacBase) Iupac() IupacBase {
	return b
}

// Rna returns the RNA base for the four unambiguous codes.
func (b IupacBase) Rna() (RnaBase, bool) {
	switch b {
	case IupacA:
		return RnaA, true
	case IupacC:
		return RnaC, true
	case IupacG:
		return RnaG, true
	case IupacT:
		return RnaU, true
	}
	return 0, false
}

// Ambiguous reports whether b stands for more than one base.
func (b IupacBase) Ambiguous() bool {
	_, ok := b.Rna()
	return !ok && b != Gap
}

// Matches reports whether the bases denoted by b include all bases
// denoted by o. N matches every code, the gap only matches the gap.
// The relation is not symmetric: N matches A, A does not match N.
func (b IupacBase) Matches(o IupacBase) bool {
	switch {
	case b == IupacN:
		return true
	case b == Gap || o == Gap:
		return b == o
	}
	return o != 0 && b&o == o
}
