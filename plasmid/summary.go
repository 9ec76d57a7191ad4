package main

import "bitbucket.org/Davydov/plasmid/enzyme"

// DigestSummary is storing digest run summary information.
type DigestSummary struct {
	// Version stores plasmid version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Enzymes is the number of enzymes searched.
	Enzymes int `json:"enzymes"`
	// Sequences stores the sites found in every sequence.
	Sequences []SequenceSites `json:"sequences"`
}

// SequenceSites stores the restriction sites of one sequence.
type SequenceSites struct {
	Name   string              `json:"name"`
	Length int                 `json:"length"`
	Sites  []enzyme.Annotation `json:"sites"`
}
