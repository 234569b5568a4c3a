/*
 * files.go, part of biosym.
 *
 * Copyright 2026 Raul Mera <rmera{at}usachDOTcl>
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
 * biosym is developed at the Universidad de Santiago de Chile (USACH).
 *
 */

package biosym

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// decompressed bundles a decompressing reader with everything that has to be
// closed under it.
type decompressed struct {
	io.Reader
	closers []func() error
}

func (d *decompressed) Close() error {
	var err error
	for _, c := range d.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// OpenDecompressed opens a (possibly compressed) text file for reading. The
// compression is selected from the file name: ".zst" for zstd, ".gz" for
// gzip, anything else is read as plain text. I/O and decoder errors are
// returned untouched.
func OpenDecompressed(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(name) {
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressed{Reader: r, closers: []func() error{func() error { r.Close(); return nil }, f.Close}}, nil
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &decompressed{Reader: r, closers: []func() error{r.Close, f.Close}}, nil
	default:
		return f, nil
	}
}
