/*
 * detect.go, part of gontact.
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

// Detector computes the contacts of one interaction type for one loaded
// frame of a fragment. frame is the local index within the window, always
// at least 1. A detector must not mutate the window, must leave the Frame
// field of the contacts it returns set to the given local frame index, and
// must be safe for concurrent calls on different windows.
type Detector func(w *Window, frame int, labels map[int]string, p *Params) ([]*Contact, error)

var detectors = make(map[string]Detector)

// RegisterDetector associates a detector with an interaction type code
// (e.g. HBond). Detectors for the actual chemistry live outside this
// package; register them before starting a computation, never during one.
func RegisterDetector(itype string, d Detector) {
	detectors[itype] = d
}

//frameContacts runs the requested detectors on one loaded frame, in the
//fixed typeOrder, and concatenates their results unmodified. A requested
//type with no registered detector, or not among the known codes, quietly
//contributes no contacts.
func frameContacts(w *Window, frame int, labels map[int]string, p *Params) ([]*Contact, error) {
	var ret []*Contact
	for _, itype := range typeOrder {
		if !isInString(p.itypes, itype) {
			continue
		}
		det := detectors[itype]
		if det == nil {
			continue
		}
		cs, err := det(w, frame, labels, p)
		if err != nil {
			return nil, errDecorate(err, "frameContacts: "+itype)
		}
		ret = append(ret, cs...)
	}
	return ret, nil
}
