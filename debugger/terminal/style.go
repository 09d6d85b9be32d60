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

package terminal

import "strings"

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can then
// present the text according to the style.
type Style int

// List of terminal styles.
const (
	// input that has been echoed back to the user
	StyleEcho Style = iota

	// information from the console itself: register dumps, memory listings
	StyleFeedback

	// help text
	StyleHelp

	// machine output: banners for breakpoints and termination
	StyleMachineInfo

	// error messages. terminals should always display these, even when
	// otherwise silenced
	StyleError
)

// Prompt specifies the prompt text shown when the console is waiting for
// input.
type Prompt struct {
	Content string
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ")
	return s.String()
}
