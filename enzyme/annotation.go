package enzyme

import "fmt"

// Annotation is a recognition site found in a sequence.
//
// Positions follow the scanner's boundary convention: a position p
// denotes the boundary right after base p. Start is the boundary
// before the first matched base, End the boundary after the last
// one and Needle the cut boundary, so EcoRI (G^AATTC) matched at
// bases 10..15 gives Start=9, Needle=10, End=15.
type Annotation struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Needle *int   `json:"needle,omitempty"`
	Name   string `json:"name"`
}

// Cut returns the cut position if the annotation has one. Like
// Start, it is a boundary and is -1 for a cut before the first base,
// so it must not be used as an index directly.
func (a Annotation) Cut() (int, bool) {
	if a.Needle == nil {
		return 0, false
	}
	return *a.Needle, true
}

// Len returns the number of annotated bases.
func (a Annotation) Len() int {
	return a.End - a.Start
}

// Bases returns the indexes of the first and last annotated bases.
// Both are always valid indexes into the scanned sequence.
func (a Annotation) Bases() (first, last int) {
	return a.Start + 1, a.End
}

func (a Annotation) String() string {
	if a.Needle == nil {
		return fmt.Sprintf("%s [%d, %d]", a.Name, a.Start, a.End)
	}
	return fmt.Sprintf("%s [%d, %d] cut %d", a.Name, a.Start, a.End, *a.Needle)
}
