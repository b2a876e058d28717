// seehuhn.de/go/pano - panorama camera parameters from XMP metadata
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pano

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Storage gives read access to files.
//
// Open returns a reader for the binary contents of the file at path.  The
// caller closes the reader.  Errors are passed on to the caller of this
// package unchanged.
type Storage interface {
	Open(path string) (io.ReadCloser, error)
}

// DirStorage is a [Storage] for the local file system.  Relative paths are
// resolved against the directory; an empty DirStorage uses the current
// working directory.
type DirStorage string

// Open implements the [Storage] interface.
func (d DirStorage) Open(path string) (io.ReadCloser, error) {
	if d != "" && !filepath.IsAbs(path) {
		path = filepath.Join(string(d), path)
	}
	return os.Open(path)
}

// FSStorage is a [Storage] backed by an [fs.FS].
type FSStorage struct {
	FS fs.FS
}

// Open implements the [Storage] interface.  Leading slashes are removed
// from path, since [fs.FS] only accepts unrooted paths.
func (s FSStorage) Open(path string) (io.ReadCloser, error) {
	return s.FS.Open(strings.TrimLeft(filepath.ToSlash(path), "/"))
}

// readAll reads the complete contents of a file from st.
func readAll(st Storage, path string) ([]byte, error) {
	r, err := st.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
