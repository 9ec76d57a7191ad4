package enzyme

import (
	"strings"
	"testing"

	"bitbucket.org/Davydov/plasmid/bio"
)

func TestParse(t *testing.T) {
	e, err := Parse("EcoRI", "g^aattc")
	if err != nil {
		t.Fatal("Error parsing enzyme:", err)
	}
	if e.Name() != "EcoRI" || e.Mode() != Middle {
		t.Errorf("wrong enzyme %v", e)
	}
	if bio.Letters(e.Before()) != "G" || bio.Letters(e.After()) != "AATTC" {
		t.Errorf("wrong patterns %v", e)
	}
	if e.Site() != "G^AATTC" || e.Len() != 6 {
		t.Errorf("wrong site %s", e.Site())
	}

	e, err = Parse("X", "GATC")
	if err != nil {
		t.Fatal(err)
	}
	if e.Mode() != Around || e.Site() != "GATC" {
		t.Errorf("site without caret should cut around: %v", e)
	}

	for _, site := range []string{"", "^", "G^A^T", "GXTC"} {
		if _, err := Parse("bad", site); err == nil {
			t.Errorf("%q should not parse", site)
		}
	}
}

func TestEnzymeImmutable(t *testing.T) {
	before := []bio.IupacBase{bio.IupacG}
	e := New("E", before, []bio.IupacBase{bio.IupacA}, Middle)
	before[0] = bio.IupacC
	e.Before()[0] = bio.IupacT
	if e.Site() != "G^A" {
		t.Errorf("enzyme was modified: %s", e.Site())
	}
}

func TestRegistry(t *testing.T) {
	reg := Registry()
	if len(reg) != len(reference) {
		t.Errorf("expected %d enzymes, got %d", len(reference), len(reg))
	}
	if &Registry()[0] != &reg[0] {
		t.Error("registry should be built once")
	}
	seen := map[string]bool{}
	for _, e := range reg {
		if seen[e.Name()] {
			t.Errorf("duplicate enzyme %s", e.Name())
		}
		seen[e.Name()] = true
		if e.Len() == 0 {
			t.Errorf("%s has an empty pattern", e.Name())
		}
	}
	nde, ok := Get("NdeI")
	if !ok || nde.Site() != "CA^TATG" {
		t.Errorf("wrong NdeI %v", nde)
	}
	if _, ok := Get("NoSuchI"); ok {
		t.Error("unknown enzyme found")
	}
	if names := Names(); len(names) != len(reg) || names[0] != reg[0].Name() {
		t.Error("names do not follow the registry")
	}
}

func TestCutModeString(t *testing.T) {
	if Middle.String() != "middle" || Around.String() != "around" {
		t.Error("wrong cut mode names")
	}
	if !strings.HasPrefix(CutMode(7).String(), "CutMode(") {
		t.Error("unknown cut mode name")
	}
}
