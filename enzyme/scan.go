package enzyme

import "bitbucket.org/Davydov/plasmid/bio"

// window keeps the last len(buf) bases seen.
type window struct {
	buf   []bio.IupacBase
	start int
	n     int
}

func newWindow(size int) *window {
	return &window{buf: make([]bio.IupacBase, size)}
}

// push appends a base, dropping the oldest one if the window is
// full.
func (w *window) push(b bio.IupacBase) {
	if w.n < len(w.buf) {
		w.buf[(w.start+w.n)%len(w.buf)] = b
		w.n++
		return
	}
	w.buf[w.start] = b
	w.start = (w.start + 1) % len(w.buf)
}

func (w *window) full() bool {
	return w.n == len(w.buf)
}

// at returns the i-th base from the oldest one.
func (w *window) at(i int) bio.IupacBase {
	return w.buf[(w.start+i)%len(w.buf)]
}

// matches tests the window against a pattern of the same length.
// Pattern codes are the receivers of bio.IupacBase.Matches.
func (w *window) matches(pattern []bio.IupacBase) bool {
	for i, p := range pattern {
		if !p.Matches(w.at(i)) {
			return false
		}
	}
	return true
}

// Scan reports every occurrence of every enzyme's recognition
// pattern in bases, enzyme by enzyme and left to right. Overlapping
// sites are all reported.
func Scan[B bio.Nucleotide](bases []B, enzymes []*Enzyme) []Annotation {
	var anns []Annotation
	if len(bases) == 0 {
		return anns
	}
	seq := bio.ToIupac(bases)
	for _, e := range enzymes {
		anns = append(anns, e.scan(seq)...)
	}
	log.Debugf("Found %d sites for %d enzymes in %d bases", len(anns), len(enzymes), len(bases))
	return anns
}

func (e *Enzyme) scan(seq []bio.IupacBase) (anns []Annotation) {
	pattern := e.Pattern()
	if len(pattern) == 0 || len(pattern) > len(seq) {
		return nil
	}
	w := newWindow(len(pattern))
	for last, b := range seq {
		w.push(b)
		if !w.full() || !w.matches(pattern) {
			continue
		}
		start := last - len(pattern)
		needle := start + len(e.before)
		anns = append(anns, Annotation{
			Start:  start,
			End:    last,
			Needle: &needle,
			Name:   e.name,
		})
	}
	return anns
}
