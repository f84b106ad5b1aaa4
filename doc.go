/*
 * doc.go, part of gontact.
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

/*Package contact computes non-covalent atomic contacts (salt bridges, pi-cation,
pi and T stacking, van der Waals, hydrogen bonds and ligand hydrogen bonds)
throughout a molecular dynamics trajectory.

The trajectory is split into fixed-size fragments which are processed by a
bounded pool of concurrent workers. Each worker materializes its fragment in
memory, runs the requested per-frame detectors on every usable frame, and
releases the fragment before returning, so the peak memory use is bounded by
the fragment size times the number of workers. Once every fragment has been
computed, the per-fragment results are reassembled in fragment order (never
in completion order) into a single list of contacts with contiguous, 0-based
global frame indices, and written out as one tab-separated file per observed
interaction type.

The chemistry itself is not defined here: detectors for each interaction type
are registered by the caller (see RegisterDetector), and receive one loaded
frame at a time. The package only guarantees how detectors are scheduled,
how their results are ordered, and how they end up on disk.

	**Capabilities**

    Reads PDB topologies and DCD trajectory files, including
	deflate- and zstd-compressed DCDs.

    Partitions a trajectory of any length into fragments and computes
	contacts for all of them concurrently.

    Deterministic output: the global frame numbering and the per-type
	output files do not depend on the number of workers or on the order
	in which they finish.

    All-or-nothing runs: if any fragment fails, the whole computation
	fails and no output file is left behind.

    Plots per-frame contact counts (see the contactplot subpackage).

Coordinates are handled as gonum *mat.Dense matrices with one row per atom,
following the convention that a row is one point in 3D space.*/
package contact
