package contact

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testPDB = "REMARK a tiny system for testing\n" +
	"ATOM      1  N   ASP A   1      11.860  13.207  12.724  1.00  0.00           N\n" +
	"ATOM      2  CA  ASP A   1      12.500  14.100  13.000\n" +
	"HETATM    3  O   HOH A 101      15.000   9.500   3.250  1.00  0.00           O\n" +
	"ENDMDL\n" +
	"ATOM      1  N   GLY A   2       1.000   2.000   3.000  1.00  0.00           N\n"

func TestReadPDB(Te *testing.T) {
	pdbname := filepath.Join(Te.TempDir(), "test.pdb")
	if err := os.WriteFile(pdbname, []byte(testPDB), 0644); err != nil {
		Te.Fatal(err)
	}
	top, coords, err := ReadPDB(pdbname)
	if err != nil {
		Te.Fatal(err)
	}
	//only the first model counts
	if top.Len() != 3 {
		Te.Fatalf("expected 3 atoms, got %d", top.Len())
	}
	at := top.Atom(0)
	if at.Name != "N" || at.Molname != "ASP" || at.Chain != "A" || at.Molid != 1 || at.Id != 1 || at.Het {
		Te.Errorf("atom 0 parsed wrong: %+v", at)
	}
	if at.Symbol != "N" {
		Te.Errorf("atom 0 symbol is %q", at.Symbol)
	}
	//atom 1 has no element columns, the symbol comes from the name
	if s := top.Atom(1).Symbol; s != "C" {
		Te.Errorf("atom 1 symbol is %q, want a guessed C", s)
	}
	at = top.Atom(2)
	if !at.Het || at.Molname != "HOH" || at.Molid != 101 {
		Te.Errorf("atom 2 parsed wrong: %+v", at)
	}
	if r, c := coords.Dims(); r != 3 || c != 3 {
		Te.Fatalf("coordinates are %dx%d", r, c)
	}
	if coords.At(0, 0) != 11.860 || coords.At(2, 2) != 3.250 {
		Te.Error("wrong coordinates read")
	}
	fmt.Println("read", top.Len(), "atoms")
}

func TestReadPDBBad(Te *testing.T) {
	if _, _, err := ReadPDB(filepath.Join(Te.TempDir(), "absent.pdb")); err == nil {
		Te.Error("expected an error for a missing file")
	}
	empty := filepath.Join(Te.TempDir(), "empty.pdb")
	if err := os.WriteFile(empty, []byte("REMARK nothing here\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, _, err := ReadPDB(empty); err == nil {
		Te.Error("expected an error for a PDB with no atoms")
	}
}
