/*
 * source.go, part of gontact
 *
 * Copyright 2017 The gontact developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package dcd

import (
	"fmt"

	contact "github.com/mdnets/gontact"
	"gonum.org/v1/gonum/mat"
)

// Source implements contact.Source on top of a PDB topology and a DCD
// trajectory. Every Load opens its own handle on the trajectory file, so
// Sources are safe for concurrent use by the worker pool.
type Source struct {
	topname  string
	trajname string
	top      *contact.Topology
}

//NewSource reads the topology in topname and prepares the trajectory in
//trajname for fragment loading. The trajectory header is parsed once here,
//so unreadable inputs fail before any computation is dispatched.
func NewSource(topname, trajname string) (*Source, error) {
	top, _, err := contact.ReadPDB(topname)
	if err != nil {
		return nil, errDecorate(err, "NewSource")
	}
	traj, err := New(trajname)
	if err != nil {
		return nil, errDecorate(err, "NewSource")
	}
	defer traj.Close()
	if traj.Len() != top.Len() {
		return nil, Error{fmt.Sprintf("Topology has %d atoms but trajectory frames have %d", top.Len(), traj.Len()), trajname, []string{"NewSource"}, true}
	}
	return &Source{topname: topname, trajname: trajname, top: top}, nil
}

//Top returns the topology of the source.
func (S *Source) Top() *contact.Topology {
	return S.top
}

//Labels returns the map from atom index to atom label, built from the
//topology.
func (S *Source) Labels() (map[int]string, error) {
	return contact.Labels(S.top), nil
}

//Length returns the total number of frames in the trajectory. The DCD
//header does not carry a trustworthy frame count, so the whole file is
//scanned, discarding the coordinates.
func (S *Source) Length() (int, error) {
	traj, err := New(S.trajname)
	if err != nil {
		return 0, errDecorate(err, "Length")
	}
	defer traj.Close()
	frames := 0
	for {
		err := traj.Next(nil)
		if err != nil {
			if _, ok := err.(contact.LastFrameError); ok {
				break
			}
			return 0, errDecorate(err, "Length")
		}
		frames++
	}
	return frames, nil
}

//Load materializes the trajectory window [begin,end) at the given stride.
//The first frame of the window doubles as the fragment's reference frame.
//A window past the end of the trajectory simply gets fewer frames, or
//none.
func (S *Source) Load(begin, end, stride int) (*contact.Window, error) {
	traj, err := New(S.trajname)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	defer traj.Close()
	var frames []*mat.Dense
	for i := 0; i < end; i++ {
		var keep *mat.Dense
		if i >= begin && (i-begin)%stride == 0 {
			keep = mat.NewDense(traj.Len(), 3, nil)
		}
		err := traj.Next(keep)
		if err != nil {
			if _, ok := err.(contact.LastFrameError); ok {
				break
			}
			return nil, errDecorate(err, fmt.Sprintf("Load: frame %d", i))
		}
		if keep != nil {
			frames = append(frames, keep)
		}
	}
	return contact.NewWindow(frames), nil
}
