package mdf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	biosym "github.com/rmera/biosym"
)

const sample = `!BIOSYM molecular_data 4
!DATE Sat Aug 22 10:00:00 2026
#topology
@molecule NEC
NEC_1:C1 C c3  -0.106 C2
NEC_1:C2 C c3  -0.106 C1 H1
NEC_1:H1 H hc   0.053 C2
@molecule WAT
WAT_2:O1 O ow  -0.834 H2
WAT_2:H2 H hw   0.417 O1
`

func TestRead(Te *testing.T) {
	header, table, err := Read(strings.NewReader(sample), "sample")
	if err != nil {
		Te.Fatal(err)
	}
	if len(header) != 3 {
		Te.Errorf("expected 3 header lines, got %d: %v", len(header), header)
	}
	if table.Len() != 5 {
		Te.Fatalf("expected 5 records, got %d", table.Len())
	}
	keys := table.Keys()
	want := []biosym.AtomKey{
		{MolName: "NEC", MolID: 1, Name: "C1"},
		{MolName: "NEC", MolID: 1, Name: "C2"},
		{MolName: "NEC", MolID: 1, Name: "H1"},
		{MolName: "WAT", MolID: 2, Name: "O1"},
		{MolName: "WAT", MolID: 2, Name: "H2"},
	}
	for i, k := range want {
		if keys[i] != k {
			Te.Errorf("record %d out of order: expected %s, got %s", i, k.String(), keys[i].String())
		}
	}
	rec, ok := table.Get(want[1])
	if !ok {
		Te.Fatal("record NEC_1:C2 not found")
	}
	if rec.Symbol != "C" || rec.FFType != "c3" || rec.Charge != -0.106 {
		Te.Errorf("wrong record data: %+v", rec)
	}
	if len(rec.Bonds) != 2 || rec.Bonds[1] != (biosym.AtomKey{MolName: "NEC", MolID: 1, Name: "H1"}) {
		Te.Errorf("wrong connectivity: %v", rec.Bonds)
	}
}

func TestReadInterMoleculeBond(Te *testing.T) {
	cross := strings.Replace(sample, "WAT_2:O1 O ow  -0.834 H2", "WAT_2:O1 O ow  -0.834 H2 NEC_1:C1", 1)
	_, table, err := Read(strings.NewReader(cross), "sample")
	if err != nil {
		Te.Fatal(err)
	}
	rec, _ := table.Get(biosym.AtomKey{MolName: "WAT", MolID: 2, Name: "O1"})
	if len(rec.Bonds) != 2 || rec.Bonds[1] != (biosym.AtomKey{MolName: "NEC", MolID: 1, Name: "C1"}) {
		Te.Errorf("explicit inter-molecule reference not resolved: %v", rec.Bonds)
	}
}

func TestReadUnresolvedBond(Te *testing.T) {
	bad := strings.Replace(sample, "NEC_1:H1 H hc   0.053 C2", "NEC_1:H1 H hc   0.053 C9", 1)
	_, table, err := Read(strings.NewReader(bad), "sample")
	var perr *biosym.ParseError
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a ParseError for an undeclared bond partner, got %v", err)
	}
	if table != nil {
		Te.Error("no partial result should be returned on a failed parse")
	}
}

func TestReadIndexMismatch(Te *testing.T) {
	bad := strings.Replace(sample, "WAT_2:O1", "WAT_3:O1", 1)
	_, _, err := Read(strings.NewReader(bad), "sample")
	var perr *biosym.ParseError
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a ParseError for a residue index/marker mismatch, got %v", err)
	}
}

func TestReadBadCharge(Te *testing.T) {
	bad := strings.Replace(sample, "0.417", "zero", 1)
	_, _, err := Read(strings.NewReader(bad), "sample")
	var perr *biosym.ParseError
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a ParseError for a non-numeric charge, got %v", err)
	}
}

func TestReadDuplicateKey(Te *testing.T) {
	bad := strings.Replace(sample, "NEC_1:C2 C c3  -0.106 C1 H1", "NEC_1:C1 C c3  -0.106 H1", 1)
	_, _, err := Read(strings.NewReader(bad), "sample")
	var cerr *biosym.ConsistencyError
	if !errors.As(err, &cerr) {
		Te.Fatalf("expected a ConsistencyError for a duplicate key, got %v", err)
	}
}

func TestRoundTrip(Te *testing.T) {
	_, table, err := Read(strings.NewReader(sample), "sample")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, table); err != nil {
		Te.Fatal(err)
	}
	_, table2, err := Read(bytes.NewReader(buf.Bytes()), "rewritten")
	if err != nil {
		Te.Fatal(err)
	}
	if table2.Len() != table.Len() {
		Te.Fatalf("record count not preserved: %d vs %d", table.Len(), table2.Len())
	}
	for i, k := range table.Keys() {
		if table2.Keys()[i] != k {
			Te.Errorf("record order not preserved at %d: %s vs %s", i, k.String(), table2.Keys()[i].String())
		}
		r1, _ := table.Get(k)
		r2, _ := table2.Get(k)
		if r1.Symbol != r2.Symbol || r1.FFType != r2.FFType || r1.Charge != r2.Charge {
			Te.Errorf("record %s not preserved: %+v vs %+v", k.String(), r1, r2)
		}
		if len(r1.Bonds) != len(r2.Bonds) {
			Te.Errorf("connectivity of %s not preserved", k.String())
			continue
		}
		for j := range r1.Bonds {
			if r1.Bonds[j] != r2.Bonds[j] {
				Te.Errorf("bond %d of %s not preserved: %s vs %s", j, k.String(), r1.Bonds[j].String(), r2.Bonds[j].String())
			}
		}
	}
}
