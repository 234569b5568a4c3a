package biosym_test

import (
	"errors"
	"strings"
	"testing"

	biosym "github.com/rmera/biosym"
)

func TestLoadMapping(Te *testing.T) {
	m, err := biosym.LoadMapping("test/map.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	if m.Dir() != biosym.TypeToCharge {
		Te.Fatalf("expected the type2charge direction, got %v", m.Dir())
	}
	sys, table := readTestPair(Te)
	newsys, newtab, ups, err := m.Apply(sys, table)
	if err != nil {
		Te.Fatal(err)
	}
	//c3 covers two atoms and ow one, in each representation.
	if ups.Car != 3 || ups.Mdf != 3 {
		Te.Errorf("expected 3 updates per file, got %+v", ups)
	}
	if q := newsys.Mol(0).Atom(0).Charge; q != -0.120 {
		Te.Errorf("expected charge -0.120 on C1, got %f", q)
	}
	if q := newsys.Mol(0).Atom(2).Charge; q != 0.053 {
		Te.Errorf("the unmapped hc atom changed charge to %f", q)
	}
	rec, _ := newtab.Get(biosym.AtomKey{MolName: "WAT", MolID: 2, Name: "O1"})
	if rec.Charge != -0.800 {
		Te.Errorf("expected charge -0.800 on O1, got %f", rec.Charge)
	}
	//the inputs must be untouched.
	if sys.Mol(0).Atom(0).Charge != -0.106 {
		Te.Error("the input system was modified")
	}
	//a second application changes nothing.
	_, _, ups, err = m.Apply(newsys, newtab)
	if err != nil {
		Te.Fatal(err)
	}
	if ups.Car != 0 || ups.Mdf != 0 {
		Te.Errorf("a second application reported updates: %+v", ups)
	}
}

func TestMappingMiss(Te *testing.T) {
	m, err := biosym.ReadMapping(strings.NewReader("direction: type2charge\nvalues:\n  zz: 1.0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	sys, table := readTestPair(Te)
	_, _, ups, err := m.Apply(sys, table)
	if err != nil {
		Te.Fatal(err)
	}
	if ups.Car != 0 || ups.Mdf != 0 {
		Te.Errorf("a mapping with no matching values reported updates: %+v", ups)
	}
}

func TestMappingChargeToType(Te *testing.T) {
	m, err := biosym.ReadMapping(strings.NewReader("direction: charge2type\nvalues:\n  \"0.053\": hx\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if m.Dir() != biosym.ChargeToType {
		Te.Fatalf("expected the charge2type direction, got %v", m.Dir())
	}
	sys, table := readTestPair(Te)
	newsys, newtab, ups, err := m.Apply(sys, table)
	if err != nil {
		Te.Fatal(err)
	}
	if ups.Car != 1 || ups.Mdf != 1 {
		Te.Errorf("expected 1 update per file, got %+v", ups)
	}
	if t := newsys.Mol(0).Atom(2).FFType; t != "hx" {
		Te.Errorf("expected force-field type hx on H1, got %q", t)
	}
	rec, _ := newtab.Get(biosym.AtomKey{MolName: "NEC", MolID: 1, Name: "H1"})
	if rec.FFType != "hx" {
		Te.Errorf("expected force-field type hx on the H1 record, got %q", rec.FFType)
	}
	if newsys.Mol(0).Atom(2).Charge != 0.053 {
		Te.Error("the looked-up charge itself must not change")
	}
}

func TestMappingOneSided(Te *testing.T) {
	m, err := biosym.LoadMapping("test/map.yaml")
	if err != nil {
		Te.Fatal(err)
	}
	sys, table := readTestPair(Te)
	newsys, newtab, ups, err := m.Apply(sys, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if newtab != nil || newsys == nil {
		Te.Error("a nil input must come back nil, a non-nil one must not")
	}
	if ups.Car != 3 || ups.Mdf != 0 {
		Te.Errorf("expected updates only on the coordinate side, got %+v", ups)
	}
	_, _, ups, err = m.Apply(nil, table)
	if err != nil {
		Te.Fatal(err)
	}
	if ups.Car != 0 || ups.Mdf != 3 {
		Te.Errorf("expected updates only on the data side, got %+v", ups)
	}
	var cerr *biosym.CError
	if _, _, _, err = m.Apply(nil, nil); !errors.As(err, &cerr) {
		Te.Errorf("expected an error when neither representation is supplied, got %v", err)
	}
}

func TestReadMappingBadDocuments(Te *testing.T) {
	bad := []string{
		"direction: sideways\nvalues:\n  c3: 1.0\n",   //unknown direction
		"direction: type2charge\nvalues: {}\n",        //no values
		"direction: type2charge\nvalues:\n  c3: ha\n", //non-numeric charge
		"direction: charge2type\nvalues:\n  ha: c3\n", //non-numeric charge key
	}
	for i, doc := range bad {
		if _, err := biosym.ReadMapping(strings.NewReader(doc)); err == nil {
			Te.Errorf("document %d should not validate", i)
		}
	}
}
