/*
 * dynamics.go, part of gontact.
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
	"log"
)

// TrajContacts computes the contacts of the interaction types requested in
// params across the whole trajectory of src, and writes them to outdir,
// one file per interaction type observed. The trajectory is processed as
// fixed-size fragments by a pool of concurrent workers; the output is
// nevertheless deterministic, as frame numbering depends only on fragment
// order. The run is all-or-nothing: any failure anywhere aborts it before
// any output file is finalized.
func TrajContacts(src Source, outdir string, params ...*Params) error {
	var p *Params
	if len(params) > 0 {
		p = params[0]
	} else {
		p = DefaultParams()
	}
	//Both of these touch the input files, so a bad topology or
	//trajectory surfaces here, before any worker is dispatched.
	labels, err := src.Labels()
	if err != nil {
		return errDecorate(err, "TrajContacts")
	}
	total, err := src.Length()
	if err != nil {
		return errDecorate(err, "TrajContacts")
	}
	frags := Schedule(total, p)
	log.Printf("gontact: processing %d frames with stride %d as %d fragments on %d workers", total, p.Stride(), len(frags), p.Cpus())
	results, err := runPool(src, labels, frags, p)
	if err != nil {
		return errDecorate(err, "TrajContacts")
	}
	contacts, itypes := assemble(results)
	if err := writeContacts(outdir, contacts, itypes); err != nil {
		return errDecorate(err, "TrajContacts")
	}
	return nil
}
