/*
 * fragment.go, part of gontact.
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

	"gonum.org/v1/gonum/mat"
)

// Window is one trajectory fragment materialized in memory. Frame 0 is
// the fragment's reference/boundary frame: it anchors the detectors'
// geometry but it is never emitted as a contact frame, so a window of n
// loaded frames has n-1 usable ones. The window is owned by the worker
// that loaded it and must be freed by it, successful or not, before the
// worker returns.
type Window struct {
	frames []*mat.Dense
}

//NewWindow builds a Window from the loaded frames of a fragment. An empty
//window is valid: it just has no usable frames.
func NewWindow(frames []*mat.Dense) *Window {
	return &Window{frames: frames}
}

//Frame returns the coordinates (one row per atom) for the local frame i.
//Frame 0 is the reference frame. Panics if out of range.
func (W *Window) Frame(i int) *mat.Dense {
	if W.frames == nil {
		panic("Window: already freed")
	}
	if i >= len(W.frames) {
		panic(fmt.Sprintf("Window: Frame requested (%d) out of range", i))
	}
	return W.frames[i]
}

//Frames returns the number of frames in the window, the reference frame
//included.
func (W *Window) Frames() int {
	return len(W.frames)
}

//Free releases the coordinates of the window. The window can not be used
//after this call. Free is idempotent.
func (W *Window) Free() {
	for i := range W.frames {
		W.frames[i] = nil
	}
	W.frames = nil
}

// Fragment describes one contiguous sub-range of trajectory frames to be
// processed as a unit of parallel work. Fragments partition the trajectory
// contiguously; End is never clamped to the trajectory length, the Source
// simply returns fewer frames for the last fragment.
type Fragment struct {
	Index  int
	Begin  int
	End    int
	Stride int
}

// Result is the outcome of computing one fragment. Frames is the number of
// usable (sample) frames the fragment contributed, i.e. the loaded frames
// minus the reference frame; the assembler advances the global frame
// offset by it. Contacts carry fragment-local frame indices until assembly.
type Result struct {
	Index    int
	Frames   int
	Contacts []*Contact
}

//compute loads the fragment from src, runs the requested detectors on
//every usable frame (local frames 1 to n-1, frame 0 being the reference
//frame) and returns the accumulated contacts. The loaded window is
//released before returning, on error paths too. A fragment with no usable
//frames is not an error: it just contributes nothing.
func (F *Fragment) compute(src Source, labels map[int]string, p *Params) (*Result, error) {
	w, err := src.Load(F.Begin, F.End, F.Stride)
	if err != nil {
		return nil, errDecorate(err, fmt.Sprintf("compute: loading fragment %d", F.Index))
	}
	defer w.Free()
	loaded := w.Frames()
	res := &Result{Index: F.Index, Frames: loaded - 1}
	for frame := 1; frame < loaded; frame++ {
		cs, err := frameContacts(w, frame, labels, p)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("compute: fragment %d frame %d", F.Index, frame))
		}
		res.Contacts = append(res.Contacts, cs...)
	}
	return res, nil
}
