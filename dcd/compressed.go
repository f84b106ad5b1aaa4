/*
 * compressed.go, part of gontact
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder.Close does not return an error, so it can not be an
//io.Closer on its own. This will cause an additional indirection, but
//each Next call takes enough time to make the delay irrelevant.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

//Close closes the object. It can not be used after this call.
func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//prepSource takes a filename and format string, opens the file and returns an object that will
//read data from the file, either 'as is' or decompressing first, depending on the format string.
//If the format string is empty, it will try to deduce it from the file extension. Extensions
//supported are .dcd (non-compressed), .zst (zstandard), .gz (gzip) and .dz (deflate). If the
//format string is empty and the extension doesn't match any supported type, a message will be
//logged and the non-compressed dcd format will be assumed.
//Thus, prepSource only returns an error if the file can't be opened or the compressed stream
//has a bad header.
func (D *DCDObj) prepSource(fname string, format string) (io.Reader, error) {
	var err error
	var fk string
	if format == "" {
		temp := strings.Split(fname, ".")
		fk = strings.ToLower(temp[len(temp)-1])
	} else {
		fk = format
	}
	D.filename = fname
	D.fhandle, err = os.Open(fname)
	if err != nil {
		return nil, Error{err.Error(), D.filename, []string{"os.Open", "prepSource"}, true}
	}
	reader := bufio.NewReader(D.fhandle)

	switch fk {
	case "dcd":
		return reader, nil
	case "zst", "zstd":
		z, err := zstd.NewReader(reader)
		if err != nil {
			return nil, Error{err.Error(), D.filename, []string{"zstd.NewReader", "prepSource"}, true}
		}
		D.unzipper = zstdql{z.Close, z}
		return z, nil
	case "gz":
		g, err := gzip.NewReader(reader)
		if err != nil {
			return nil, Error{err.Error(), D.filename, []string{"gzip.NewReader", "prepSource"}, true}
		}
		D.unzipper = g
		return g, nil
	case "dz":
		f := flate.NewReader(reader)
		D.unzipper = f
		return f, nil
	default:
		//if it's not actually a plain DCD, you'll get an error later.
		log.Printf("Format string %s not supported. %s will be assumed to be a plain DCD file", fk, D.filename)
		return reader, nil
	}
}
