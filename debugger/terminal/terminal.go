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

// Package terminal defines the operations required by the inspection
// console's command line interface. Implementations are in the plainterm
// and colorterm sub-packages.
package terminal

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead reads one line of input, showing the supplied prompt if the
	// implementation is interactive. The returned string does not include
	// the line terminator.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive should return true for implementations that expect
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the inspection console's
// command line interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()
}
