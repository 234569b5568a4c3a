package biosym_test

import (
	"errors"
	"testing"

	biosym "github.com/rmera/biosym"
	"github.com/rmera/biosym/car"
	"github.com/rmera/biosym/mdf"
)

// The paired fixtures describe the same system, so they must verify.
func TestVerifyCorrespondence(Te *testing.T) {
	sys, table := readTestPair(Te)
	if err := biosym.VerifyCorrespondence(sys, table); err != nil {
		Te.Fatal(err)
	}
}

func TestVerifyCorrespondenceMissingRecord(Te *testing.T) {
	sys, table := readTestPair(Te)
	short := biosym.NewDataTable(table.Header)
	keys := table.Keys()
	for _, k := range keys[:len(keys)-1] {
		rec, _ := table.Get(k)
		if err := short.Add(rec.Copy()); err != nil {
			Te.Fatal(err)
		}
	}
	err := biosym.VerifyCorrespondence(sys, short)
	var cerr *biosym.ConsistencyError
	if !errors.As(err, &cerr) {
		Te.Fatalf("expected a ConsistencyError for a missing record, got %v", err)
	}
	if cerr.Key != keys[len(keys)-1] {
		Te.Errorf("error names the wrong atom: %s", cerr.Key.String())
	}
}

func TestVerifyCorrespondenceExtraRecord(Te *testing.T) {
	sys, table := readTestPair(Te)
	extra := table.Copy()
	if err := extra.Add(&biosym.DataRecord{
		Key:    biosym.AtomKey{MolName: "WAT", MolID: 2, Name: "H9"},
		Symbol: "H", FFType: "hw", Charge: 0.417,
	}); err != nil {
		Te.Fatal(err)
	}
	var cerr *biosym.ConsistencyError
	if err := biosym.VerifyCorrespondence(sys, extra); !errors.As(err, &cerr) {
		Te.Fatalf("expected a ConsistencyError for an extra record, got %v", err)
	}
}

func TestVerifyCorrespondenceDuplicateAtom(Te *testing.T) {
	sys, table := readTestPair(Te)
	sys.Mol(0).Atom(1).Name = "C1" //now NEC_1:C1 appears twice
	var cerr *biosym.ConsistencyError
	if err := biosym.VerifyCorrespondence(sys, table); !errors.As(err, &cerr) {
		Te.Fatalf("expected a ConsistencyError for a duplicated atom key, got %v", err)
	}
}

// A compressed archive must read identically to the plain one, whichever
// compressor the extension selects.
func TestReadCompressed(Te *testing.T) {
	plain, err := car.ReadSystem("test/small.car")
	if err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"test/small.car.gz", "test/small.car.zst"} {
		zipped, err := car.ReadSystem(name)
		if err != nil {
			Te.Fatal(err)
		}
		if zipped.NAtoms() != plain.NAtoms() || zipped.Len() != plain.Len() {
			Te.Fatalf("%s read differs: %d/%d atoms, %d/%d molecules",
				name, zipped.NAtoms(), plain.NAtoms(), zipped.Len(), plain.Len())
		}
		pk, zk := plain.Keys(), zipped.Keys()
		for i := range pk {
			if pk[i] != zk[i] {
				Te.Errorf("%s: key %d differs: %s vs %s", name, i, pk[i].String(), zk[i].String())
			}
		}
	}
}

func TestSystemFromBlocksAssignsMasses(Te *testing.T) {
	_, blocks, box, err := car.ReadFile("test/small.car")
	if err != nil {
		Te.Fatal(err)
	}
	sys, err := biosym.SystemFromBlocks(nil, blocks, box)
	if err != nil {
		Te.Fatal(err)
	}
	c := sys.Mol(0).Atom(0)
	if c.Mass < 12.0 || c.Mass > 12.1 {
		Te.Errorf("wrong mass for carbon: %f", c.Mass)
	}
	o := sys.Mol(1).Atom(0)
	if o.Mass < 15.9 || o.Mass > 16.1 {
		Te.Errorf("wrong mass for oxygen: %f", o.Mass)
	}
}

// The two readers plus the writers must close the loop: read the pair, write
// both files back, re-read, and the pair must still verify.
func TestPairRoundTrip(Te *testing.T) {
	sys, table := readTestPair(Te)
	dir := Te.TempDir()
	if err := car.WriteFile(dir+"/out.car", sys); err != nil {
		Te.Fatal(err)
	}
	if err := mdf.WriteFile(dir+"/out.mdf", table); err != nil {
		Te.Fatal(err)
	}
	sys2, err := car.ReadSystem(dir + "/out.car")
	if err != nil {
		Te.Fatal(err)
	}
	_, table2, err := mdf.ReadFile(dir + "/out.mdf")
	if err != nil {
		Te.Fatal(err)
	}
	if err := biosym.VerifyCorrespondence(sys2, table2); err != nil {
		Te.Fatal(err)
	}
	if sys2.NAtoms() != sys.NAtoms() || table2.Len() != table.Len() {
		Te.Error("the rewritten pair lost atoms")
	}
}
