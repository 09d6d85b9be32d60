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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it
// provides a small number of posix terminal operations with friendlier
// names than the underlying package.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the fields in the EasyTerm struct.
func (pt *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: an input file is required")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: an output file is required")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare attributes for the terminal modes we'll be flipping between.
	// the attributes in effect now are what we restore on cleanup
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %v", err)
	}
	termios.Cfmakeraw(&pt.rawAttr)

	// raw mode turns off output post-processing; keep it on so newlines
	// behave
	pt.rawAttr.Oflag |= unix.OPOST

	return nil
}

// CleanUp restores the terminal to the state it was in at Initialise().
func (pt *EasyTerm) CleanUp() {
	pt.CanonicalMode()
}

// TermPrint writes the string to the output file.
func (pt *EasyTerm) TermPrint(s string) {
	pt.output.WriteString(s)
}

// Flush makes sure the output has hit the terminal.
func (pt *EasyTerm) Flush() error {
	return pt.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *EasyTerm) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *EasyTerm) RawMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}
