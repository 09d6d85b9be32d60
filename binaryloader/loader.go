// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

// Package binaryloader is responsible for getting a binary image from the
// filesystem into the machine's memory. Images are flat: the file's bytes
// land at address zero and the remainder of memory is zeroed. The reset
// vector inside the image decides where execution starts; that is the
// CPU's business, not the loader's.
package binaryloader

import (
	"os"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/memory"
)

// sentinal errors returned by the loader.
const (
	FileUnavailable = "loader: cannot open binary file (%s)"
	FileUnreadable  = "loader: cannot read binary file (%s): %v"
)

// Loader names a binary image to be loaded into the machine.
type Loader struct {
	Filename string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load reads the named file into the supplied memory.
func (ld Loader) Load(mem *memory.Memory) error {
	f, err := os.Open(ld.Filename)
	if err != nil {
		return curated.Errorf(FileUnavailable, ld.Filename)
	}
	defer f.Close()

	err = mem.Import(f)
	if err != nil {
		return curated.Errorf(FileUnreadable, ld.Filename, err)
	}

	return nil
}
