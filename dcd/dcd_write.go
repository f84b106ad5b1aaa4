/*
 * dcd_write.go, part of gontact
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
	"bytes"
	"encoding/binary"
	"os"

	"gonum.org/v1/gonum/mat"
)

//DCDWObj is a handle for writing a Charmm/NAMD binary trajectory file.
//Only plain, non-compressed DCDs can be written: the format wants the
//number of frames in the header, so the file can not be a pure stream.
type DCDWObj struct {
	natoms    int32
	writable  bool
	filename  string
	fixed     int32 //Fixed atoms (not supported)
	dcd       *os.File
	dcdFields [][]float32
	endian    binary.ByteOrder
}

//NewWriter creates filename and writes a DCD header for a trajectory of
//natoms atoms per frame.
func NewWriter(filename string, natoms int) (*DCDWObj, error) {
	traj := new(DCDWObj)
	traj.natoms = int32(natoms)
	if err := traj.initWrite(filename); err != nil {
		return nil, errDecorate(err, "NewWriter")
	}
	return traj, nil
}

//initWrite creates the file and writes the DCD header, always little
//endian, Charmm flavor, no fixed atoms.
func (D *DCDWObj) initWrite(name string) error {
	wrapbinerr := func(err error) error {
		return Error{err.Error(), D.filename, []string{"binary.Write", "initWrite"}, true}
	}
	if D.natoms == 0 {
		return Error{"Trajectory not initialized correctly, the number of atoms is set to zero!", D.filename, []string{"initWrite"}, true}
	}
	D.filename = name
	D.endian = binary.LittleEndian
	var err error
	D.dcd, err = os.Create(name)
	if err != nil {
		return Error{err.Error(), D.filename, []string{"os.Create", "initWrite"}, true}
	}
	if err := binary.Write(D.dcd, D.endian, int32(84)); err != nil {
		return wrapbinerr(err)
	}
	//For some reason, we have to write this magic number.
	magic := []byte("CORD")
	if err := binary.Write(D.dcd, D.endian, magic); err != nil {
		return wrapbinerr(err)
	}
	//The 80-byte random access chunk. We prepare it in memory and write
	//it in one go. The last int is the Charmm version number, which is
	//what marks the file as Charmm-flavored; everything else stays 0:
	//no extra block, no fourth dimension, no fixed atoms.
	buf := make([]byte, 80)
	binary.Write(bytes.NewBuffer(buf[76:76:80]), D.endian, int32(2))
	if err := binary.Write(D.dcd, D.endian, buf); err != nil {
		return wrapbinerr(err)
	}
	//Again, no idea why the number 84 goes here. But it does.
	if err := binary.Write(D.dcd, D.endian, int32(84)); err != nil {
		return wrapbinerr(err)
	}
	//the size marker for the title section
	if err := binary.Write(D.dcd, D.endian, int32(4+mAXTITLE)); err != nil {
		return wrapbinerr(err)
	}
	//just a dummy title of the smallest size possible.
	var ntitle int32 = 1
	if err := binary.Write(D.dcd, D.endian, ntitle); err != nil {
		return wrapbinerr(err)
	}
	title := make([]byte, mAXTITLE)
	if err := binary.Write(D.dcd, D.endian, title); err != nil {
		return wrapbinerr(err)
	}
	if err := binary.Write(D.dcd, D.endian, int32(4+mAXTITLE)); err != nil {
		return wrapbinerr(err)
	}
	//For some reason, there must be a 4 before the natoms.
	if err := binary.Write(D.dcd, D.endian, int32(4)); err != nil {
		return wrapbinerr(err)
	}
	if err := binary.Write(D.dcd, D.endian, D.natoms); err != nil {
		return wrapbinerr(err)
	}
	//and one more 4.
	if err := binary.Write(D.dcd, D.endian, int32(4)); err != nil {
		return wrapbinerr(err)
	}
	D.writable = true
	return nil
}

//WNext writes the next frame to the trajectory. towrite must have one row
//per atom.
func (D *DCDWObj) WNext(towrite *mat.Dense) error {
	if !D.writable {
		return Error{TrajUnIniW, D.filename, []string{"WNext"}, true}
	}
	if towrite == nil {
		return Error{"got nil coordinates", D.filename, []string{"WNext"}, true}
	}
	r, _ := towrite.Dims()
	if int32(r) != D.natoms {
		return Error{"Coordinates don't match the trajectory size", D.filename, []string{"WNext"}, true}
	}
	if D.dcdFields == nil {
		D.dcdFields = make([][]float32, 3)
		for i := range D.dcdFields {
			D.dcdFields[i] = make([]float32, int(D.natoms))
		}
	}
	for i := 0; i < int(D.natoms); i++ {
		D.dcdFields[0][i] = float32(towrite.At(i, 0))
		D.dcdFields[1][i] = float32(towrite.At(i, 1))
		D.dcdFields[2][i] = float32(towrite.At(i, 2))
	}
	return D.wnextRaw(D.dcdFields)
}

//wnextRaw writes the x, y and z blocks of one frame, each with its size
//markers.
func (D *DCDWObj) wnextRaw(blocks [][]float32) error {
	blocksize := int32(len(blocks[0])) * 4
	for i := 0; i < 3; i++ {
		if err := binary.Write(D.dcd, D.endian, blocksize); err != nil {
			return Error{err.Error(), D.filename, []string{"binary.Write", "wnextRaw"}, true}
		}
		if err := binary.Write(D.dcd, D.endian, blocks[i]); err != nil {
			return Error{err.Error(), D.filename, []string{"binary.Write", "wnextRaw"}, true}
		}
		if err := binary.Write(D.dcd, D.endian, blocksize); err != nil {
			return Error{err.Error(), D.filename, []string{"binary.Write", "wnextRaw"}, true}
		}
	}
	return nil
}

//Close closes the file. The object can not be written to after this call.
func (D *DCDWObj) Close() error {
	if !D.writable {
		return nil
	}
	D.writable = false
	if err := D.dcd.Close(); err != nil {
		return Error{err.Error(), D.filename, []string{"Close"}, true}
	}
	return nil
}
