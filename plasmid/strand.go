package main

import "strings"

// Strand is one of the two strands of a double-stranded sequence.
type Strand int

const (
	// Watson is the top strand, printed 5' to 3'.
	Watson Strand = iota
	// Crick is the bottom strand, printed 3' to 5'.
	Crick
)

func strandFromString(s string) Strand {
	if s == "crick" {
		return Crick
	}
	return Watson
}

func (s Strand) start() string {
	if s == Watson {
		return "5' "
	}
	return "3' "
}

func (s Strand) end() string {
	if s == Watson {
		return " 3'"
	}
	return " 5'"
}

// Format adds the strand ends to a line.
func (s Strand) Format(line string) string {
	return s.start() + line + s.end()
}

// Pad indents a line so it lines up with Format output.
func (s Strand) Pad(line string) string {
	return strings.Repeat(" ", len(s.start())) + line + strings.Repeat(" ", len(s.end()))
}

// Complement returns the opposite strand.
func (s Strand) Complement() Strand {
	if s == Watson {
		return Crick
	}
	return Watson
}
