/*
 * files.go, part of gontact.
 *
 * Copyright 2017 The gontact developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package contact

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//symbolFromName tries to guess a chemical element symbol from a PDB atom
//name. Mostly based on AMBER names, and only deals with some common
//bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	switch {
	case len(name) == 4 || name[0] == 'H': //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	case name == "CU":
		symbol = "Cu"
	case name == "CO":
		symbol = "Co"
	case name == "CL":
		symbol = "Cl"
	case name[0] == 'C':
		symbol = "C"
	case name == "NA":
		symbol = "Na"
	case name[0] == 'N':
		symbol = "N"
	case name[0] == 'O':
		symbol = "O"
	case name[0] == 'P':
		symbol = "P"
	case name == "SE":
		symbol = "Se"
	case name[0] == 'S':
		symbol = "S"
	case strings.HasPrefix(name, "ZN"):
		symbol = "Zn"
	}
	if symbol == "" {
		return symbol, CError{"Couldn't guess symbol from PDB name " + name, []string{"symbolFromName"}}
	}
	return symbol, nil
}

//readPDBLine parses a valid ATOM or HETATM line of a PDB file, returning
//an Atom object with the info except for the coordinates, which are
//returned separately as an array of 3 float64.
func readPDBLine(line string) (*Atom, [3]float64, error) {
	var coords [3]float64
	if len(line) < 54 {
		return nil, coords, CError{"PDB line too short: " + line, []string{"readPDBLine"}}
	}
	err := make([]error, 5)
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.Id, err[0] = strconv.Atoi(strings.TrimSpace(line[6:12]))
	atom.Name = strings.TrimSpace(line[12:16])
	//PDB says that pos. 17 is for something else but it is
	//used for the residue name in many cases.
	atom.Molname = strings.TrimSpace(line[17:20])
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.Molid, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	//We shouldn't need TrimSpace for the coordinates, but keep it in case
	//someone doesn't use all the columns when writing a PDB.
	coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if len(line) >= 78 {
		atom.Symbol = strings.TrimSpace(line[76:78])
	}
	//No error checking here, an empty symbol is fine.
	if atom.Symbol == "" {
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	for i := range err {
		if err[i] != nil {
			return nil, coords, errDecorate(err[i], "readPDBLine")
		}
	}
	return atom, coords, nil
}

// ReadPDB reads the atomic entries of the first model of a PDB file and
// returns the topology plus the coordinates of that model.
func ReadPDB(pdbname string) (*Topology, *mat.Dense, error) {
	atoms := make([]*Atom, 0, 100)
	coords := make([]float64, 0, 300)
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadPDB")
	}
	defer pdbfile.Close()
	pdb := bufio.NewReader(pdbfile)
	contline := 0 //count the lines read to better report errors
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		contline++
		if strings.HasPrefix(line, "ENDMDL") {
			break //only the first model matters here
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		atom, c, err2 := readPDBLine(line)
		if err2 != nil {
			return nil, nil, errDecorate(err2, fmt.Sprintf("ReadPDB: line %d", contline))
		}
		atoms = append(atoms, atom)
		coords = append(coords, c[0], c[1], c[2])
	}
	if len(atoms) == 0 {
		return nil, nil, CError{"No atoms found in " + pdbname, []string{"ReadPDB"}}
	}
	top, err := NewTopology(atoms)
	if err != nil {
		return nil, nil, errDecorate(err, "ReadPDB")
	}
	return top, mat.NewDense(len(atoms), 3, coords), nil
}
