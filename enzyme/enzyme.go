// Package enzyme holds the restriction enzyme registry and scans
// sequences for recognition sites.
package enzyme

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/plasmid/bio"
)

// log is the global logging variable.
var log = logging.MustGetLogger("enzyme")

// CutMode describes where within its pattern an enzyme cuts.
type CutMode int

const (
	// Middle cuts at the boundary between the before and after
	// patterns.
	Middle CutMode = iota
	// Around cuts before and after the recognition site.
	Around
)

func (m CutMode) String() string {
	switch m {
	case Middle:
		return "middle"
	case Around:
		return "around"
	}
	return fmt.Sprintf("CutMode(%d)", int(m))
}

// Enzyme is a restriction enzyme. Its recognition pattern is the
// before pattern followed by the after pattern.
type Enzyme struct {
	name   string
	before []bio.IupacBase
	after  []bio.IupacBase
	mode   CutMode
}

// New creates an enzyme from IUPAC patterns. The slices are copied.
func New(name string, before, after []bio.IupacBase, mode CutMode) *Enzyme {
	return &Enzyme{
		name:   name,
		before: append([]bio.IupacBase(nil), before...),
		after:  append([]bio.IupacBase(nil), after...),
		mode:   mode,
	}
}

// Parse creates an enzyme from a recognition site written with a
// caret at the cut position, e.g. "G^AATTC" for EcoRI. A site
// without a caret is cut around.
func Parse(name, site string) (*Enzyme, error) {
	mode := Middle
	i := strings.IndexByte(site, '^')
	if i < 0 {
		mode = Around
		i = len(site)
	} else if strings.Count(site, "^") > 1 {
		return nil, fmt.Errorf("enzyme %s: more than one cut in %q", name, site)
	}
	before, err := bio.Decode[bio.IupacBase](site[:i])
	if err != nil {
		return nil, fmt.Errorf("enzyme %s: %w", name, err)
	}
	after, err := bio.Decode[bio.IupacBase](strings.TrimPrefix(site[i:], "^"))
	if err != nil {
		return nil, fmt.Errorf("enzyme %s: %w", name, err)
	}
	if len(before)+len(after) == 0 {
		return nil, fmt.Errorf("enzyme %s: empty recognition site", name)
	}
	return &Enzyme{name: name, before: before, after: after, mode: mode}, nil
}

// Name returns the enzyme name.
func (e *Enzyme) Name() string {
	return e.name
}

// Before returns the pattern upstream of the cut.
func (e *Enzyme) Before() []bio.IupacBase {
	return append([]bio.IupacBase(nil), e.before...)
}

// After returns the pattern downstream of the cut.
func (e *Enzyme) After() []bio.IupacBase {
	return append([]bio.IupacBase(nil), e.after...)
}

// Pattern returns the full recognition pattern.
func (e *Enzyme) Pattern() []bio.IupacBase {
	p := make([]bio.IupacBase, 0, len(e.before)+len(e.after))
	p = append(p, e.before...)
	return append(p, e.after...)
}

// Len returns the recognition pattern length.
func (e *Enzyme) Len() int {
	return len(e.before) + len(e.after)
}

// Mode returns the cut mode.
func (e *Enzyme) Mode() CutMode {
	return e.mode
}

// Site returns the recognition site in caret notation.
func (e *Enzyme) Site() string {
	if e.mode == Around {
		return bio.Letters(e.before) + bio.Letters(e.after)
	}
	return bio.Letters(e.before) + "^" + bio.Letters(e.after)
}

func (e *Enzyme) String() string {
	return e.name + " " + e.Site()
}
