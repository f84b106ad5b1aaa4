/*
 * contact.go, part of gontact.
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
	"fmt"
	"strings"
)

//The interaction type codes. They carry a leading flag marker which is
//stripped for output file names, so requests can be given straight from a
//command line.
const (
	SaltBridge  = "-sb"
	PiCation    = "-pc"
	PiStacking  = "-ps"
	TStacking   = "-ts"
	VanDerWaals = "-vdw"
	HBond       = "-hb"
	LigandHBond = "-lhb"
)

//typeOrder fixes the order in which detectors run within one frame,
//whatever the order of the request. Detection is pairwise-independent so
//this only matters for the relative order of contacts within a frame.
var typeOrder = []string{SaltBridge, PiCation, PiStacking, TStacking, VanDerWaals, HBond, LigandHBond}

// Contact is one detected non-covalent interaction between two labeled
// atoms at one frame of the trajectory. Frame is local (1-based, within a
// fragment) when the contact is produced by a detector, and is rewritten,
// exactly once, to a 0-based global trajectory index during assembly.
type Contact struct {
	Frame int
	Atom1 string
	Atom2 string
	IType string
}

func (C *Contact) String() string {
	return fmt.Sprintf("%d\t%s\t%s\t%s", C.Frame, C.Atom1, C.Atom2, C.IType)
}

// FileName returns the name of the output file for an interaction type
// code: the code with any leading flag marker stripped, plus ".txt".
func FileName(itype string) string {
	return strings.TrimLeft(itype, "-") + ".txt"
}

// Labels builds the map from atom index to the stable atom label
// "chain:resname:resid:name:index" used in all output files.
func Labels(mol Atomer) map[int]string {
	ret := make(map[int]string, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		ret[i] = fmt.Sprintf("%s:%s:%d:%s:%d", at.Chain, at.Molname, at.Molid, at.Name, i)
	}
	return ret
}

//isInString returns true if test is in container, false otherwise.
//To be replaced by the stdlib generic functions.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
