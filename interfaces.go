/*
 * interfaces.go, part of gontact.
 *
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
 *
 */

package contact

// Source is any object able to materialize windows of a trajectory.
// A Source must be safe for concurrent Load calls, as every worker of the
// pool loads its own fragment in isolation.
type Source interface {

	//Length returns the total number of frames in the trajectory.
	Length() (int, error)

	//Labels returns the map from atom index to atom label
	//(chain:resname:resid:name:index).
	Labels() (map[int]string, error)

	/*Load materializes the trajectory window [begin,end), taking every
	stride-th frame, and returns it. Frame 0 of the returned window acts
	as the fragment's reference frame and is not a usable sample; the
	usable frames start at local index 1. If the window extends past the
	end of the trajectory, Load returns the frames that do exist, which
	can be none.*/
	Load(begin, end, stride int) (*Window, error)
}

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Allows adding information to the error as it is passed up. Each call also returns the current "decoration" slice of strings. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
