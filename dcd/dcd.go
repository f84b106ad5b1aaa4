/*
 * dcd.go, part of gontact
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

//Package dcd reads and writes Charmm/NAMD binary trajectory files, plain
//or compressed, and implements a contact.Source backed by a PDB topology
//and a DCD trajectory.
package dcd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

const mAXTITLE int32 = 80

//DCDObj is a handle for reading a Charmm/NAMD binary trajectory file.
type DCDObj struct {
	natoms     int32
	readLast   bool //Have we read the last frame?
	readable   bool //Is it ready to be read?
	filename   string
	charmm     bool //Charmm traj?
	extrablock bool
	fourdim    bool
	fixed      int32 //Fixed atoms (not supported)
	fhandle    *os.File
	dcd        io.Reader //the trajectory data, decompressed if needed
	unzipper   io.Closer //non-nil only for compressed files
	dcdFields  [][]float32
	endian     binary.ByteOrder
}

//New opens the DCD trajectory in filename for reading and parses its
//header. The optional format string selects the compression layer (see
//prepSource); if absent it is deduced from the file extension.
func New(filename string, format ...string) (*DCDObj, error) {
	traj := new(DCDObj)
	f := ""
	if len(format) > 0 {
		f = format[0]
	}
	if err := traj.initRead(filename, f); err != nil {
		return nil, errDecorate(err, "New")
	}
	traj.dcdFields = make([][]float32, 3)
	for i := range traj.dcdFields {
		traj.dcdFields[i] = make([]float32, int(traj.natoms))
	}
	return traj, nil
}

//Readable returns true if the object is ready to be read from,
//false otherwise. It doesn't guarantee that there is something
//to read.
func (D *DCDObj) Readable() bool {
	return D.readable
}

//Len returns the number of atoms per frame in the trajectory.
func (D *DCDObj) Len() int {
	return int(D.natoms)
}

//Close closes the file and whatever decompression layer sits on top of
//it, and marks the object as unreadable.
func (D *DCDObj) Close() {
	if D.unzipper != nil {
		D.unzipper.Close()
		D.unzipper = nil
	}
	if D.fhandle != nil {
		D.fhandle.Close()
		D.fhandle = nil
	}
	D.readable = false
}

//initRead opens the file and parses the DCD header. It supports big and
//little endianness, Charmm or NAMD >=2.1 trajectories, and no fixed
//atoms.
func (D *DCDObj) initRead(name, format string) error {
	var err error
	D.endian = binary.LittleEndian
	NB := bytes.NewBuffer //shortness sake
	D.dcd, err = D.prepSource(name, format)
	if err != nil {
		return Error{err.Error(), D.filename, []string{"prepSource", "initRead"}, true}
	}
	var check int32
	if err := binary.Read(D.dcd, D.endian, &check); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	//For some reason the first thing we should read is an 84.
	//If this fails it means that the file is big endian.
	if check != 84 {
		D.endian = binary.BigEndian
	}
	//Then the magic number "CORD", also for some unknown reason.
	magic := make([]byte, 4)
	if err := binary.Read(D.dcd, D.endian, magic); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if string(magic) != "CORD" {
		return Error{WrongFormat + ": no magic number", D.filename, []string{"initRead"}, true}
	}
	//We first read a big chunk for random access.
	buf := make([]byte, 80)
	if err := binary.Read(D.dcd, D.endian, buf); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	//X-plor sets this last int to zero, charmm sets it to its version number.
	//if we have a charmm file we get some additional flags.
	if err := binary.Read(NB(buf[76:]), D.endian, &check); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if check == 0 {
		return Error{"X-plor DCD not supported", D.filename, []string{"initRead"}, true}
	}
	D.charmm = true
	if err := binary.Read(NB(buf[40:]), D.endian, &check); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if check != 0 {
		D.extrablock = true
	}
	if err := binary.Read(NB(buf[44:]), D.endian, &check); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if check == 1 {
		D.fourdim = true
	}
	if err := binary.Read(NB(buf[32:]), D.endian, &D.fixed); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if D.fixed != 0 {
		return Error{"Fixed atoms not supported", D.filename, []string{"initRead"}, true}
	}
	if err := binary.Read(D.dcd, D.endian, &check); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if check != 84 {
		return Error{WrongFormat, D.filename, []string{"initRead"}, true}
	}
	var inputInt int32
	if err := binary.Read(D.dcd, D.endian, &inputInt); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	//how many units of mAXTITLE does the title have?
	var ntitle int32
	if err := binary.Read(D.dcd, D.endian, &ntitle); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	title := make([]byte, mAXTITLE*ntitle)
	if err := binary.Read(D.dcd, D.endian, title); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if err := binary.Read(D.dcd, D.endian, &inputInt); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if err := binary.Read(D.dcd, D.endian, &check); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if check != 4 { //one must read a 4 before the natoms
		return Error{WrongFormat, D.filename, []string{"initRead"}, true}
	}
	if err := binary.Read(D.dcd, D.endian, &D.natoms); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if err := binary.Read(D.dcd, D.endian, &check); err != nil {
		return Error{err.Error(), D.filename, []string{"binary.Read", "initRead"}, true}
	}
	if check != 4 { //and one more 4
		return Error{WrongFormat, D.filename, []string{"initRead"}, true}
	}
	D.readable = true
	return nil
}

//Next reads the next frame of the trajectory into keep, which must have
//one row per atom. If keep is nil the frame is read and discarded. When
//the last frame has already been read, Next returns an error that
//implements contact.LastFrameError.
func (D *DCDObj) Next(keep *mat.Dense) error {
	if !D.readable {
		return Error{TrajUnIni, D.filename, []string{"Next"}, true}
	}
	if err := D.nextRaw(D.dcdFields); err != nil {
		return eof2LastFrame(err, D.filename, "Next")
	}
	if keep == nil {
		return nil
	}
	if r, _ := keep.Dims(); int32(r) < D.natoms {
		return Error{NotEnoughSpace, D.filename, []string{"Next"}, true}
	}
	for i := 0; i < int(D.natoms); i++ {
		keep.Set(i, 0, float64(D.dcdFields[0][i]))
		keep.Set(i, 1, float64(D.dcdFields[1][i]))
		keep.Set(i, 2, float64(D.dcdFields[2][i]))
	}
	return nil
}

//nextRaw reads the next frame into the given x, y and z blocks.
func (D *DCDObj) nextRaw(blocks [][]float32) error {
	if len(blocks[0]) != int(D.natoms) || len(blocks[1]) != int(D.natoms) || len(blocks[2]) != int(D.natoms) {
		return Error{NotEnoughSpace, D.filename, []string{"nextRaw"}, true}
	}
	if D.readLast {
		D.readable = false
		return io.EOF
	}
	//if there is an extra block we just skip it.
	//Sadly, even when there is an extra block, it is not present in all
	//snapshots for some trajectories, so we must use the block size to see if
	//there is an extra block or if the X block starts immediately.
	var blocksize int32
	if D.extrablock {
		if err := binary.Read(D.dcd, D.endian, &blocksize); err != nil {
			return err
		}
		//If the blocksize is 4*natoms it means that the block is not an
		//extra block, but the X coordinates, and thus we must not skip it.
		if blocksize != D.natoms*4 {
			if _, err := D.readByteBlock(blocksize); err != nil {
				return err
			}
			blocksize = 0
		}
	}
	//now get the coords, each as a slice of float32.
	//X. We collect the X block size only if it has not been collected before.
	if blocksize == 0 {
		if err := binary.Read(D.dcd, D.endian, &blocksize); err != nil {
			return err
		}
	}
	if err := D.readFloat32Block(blocksize, blocks[0]); err != nil {
		return err
	}
	//Y. Collect the size first, then the rest.
	if err := binary.Read(D.dcd, D.endian, &blocksize); err != nil {
		return err
	}
	if err := D.readFloat32Block(blocksize, blocks[1]); err != nil {
		return err
	}
	//Z
	if err := binary.Read(D.dcd, D.endian, &blocksize); err != nil {
		return err
	}
	if err := D.readFloat32Block(blocksize, blocks[2]); err != nil {
		return err
	}
	//we skip the 4-D values if they exist. Apparently this is not present in the
	//last snapshot, so we use an EOF here to signal that we have read the last one.
	if D.charmm && D.fourdim {
		if err := binary.Read(D.dcd, D.endian, &blocksize); err != nil {
			if err == io.EOF {
				D.readLast = true
			} else {
				return err
			}
		}
		if !D.readLast {
			if _, err := D.readByteBlock(blocksize); err != nil {
				return err
			}
		}
	}
	return nil
}

//readFloat32Block reads a block of float32 into block and checks the
//trailing size marker against blocksize.
func (D *DCDObj) readFloat32Block(blocksize int32, block []float32) error {
	var check int32
	if blocksize != int32(len(block))*4 {
		return Error{fmt.Sprintf("%s: unexpected block size %d", WrongFormat, blocksize), D.filename, []string{"readFloat32Block"}, true}
	}
	if err := binary.Read(D.dcd, D.endian, block); err != nil {
		return err
	}
	if err := binary.Read(D.dcd, D.endian, &check); err != nil {
		return err
	}
	if check != blocksize {
		return Error{SecurityCheckFailed, D.filename, []string{"readFloat32Block"}, true}
	}
	return nil
}

//readByteBlock reads a block of bytes of the given size and its trailing
//size marker, discarding the contents. Used to skip unwanted blocks.
func (D *DCDObj) readByteBlock(blocksize int32) ([]byte, error) {
	var check int32
	block := make([]byte, blocksize)
	if err := binary.Read(D.dcd, D.endian, block); err != nil {
		return nil, err
	}
	if err := binary.Read(D.dcd, D.endian, &check); err != nil {
		return nil, err
	}
	if check != blocksize {
		return nil, Error{SecurityCheckFailed, D.filename, []string{"readByteBlock"}, true}
	}
	return block, nil
}

//eof2LastFrame turns an EOF into a harmless lastFrameError, and anything
//else into a critical Error.
func eof2LastFrame(err error, filename, caller string) error {
	if err == nil {
		return nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return newLastFrameError(filename, caller)
	}
	if _, ok := err.(Error); ok {
		return err
	}
	return Error{err.Error(), filename, []string{caller}, true}
}
