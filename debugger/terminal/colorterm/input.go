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

package colorterm

import (
	"unicode"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher65/debugger/terminal/colorterm/easyterm/ansi"
)

// UserInterrupt is returned by TermRead() when the user types ctrl-c at the
// prompt.
const UserInterrupt = "user interrupt"

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, 255)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput stores the latest input when we scroll through history - we
	// don't want to lose what was typed in case the user wants to resume
	// where they left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	for {
		// redraw the whole line every iteration and place the cursor
		// afterwards. wasteful but simple, and more than fast enough for
		// hand-typed input
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.Bold)
		ct.TermPrint(prompt.String())
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input[:n]))
		ct.TermPrint("\r")
		ct.TermPrint(ansi.CursorMove(len(prompt.String()) + cursor))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				last := ct.commandHistory[len(ct.commandHistory)-1].input
				if len(last) == n && string(last) == string(input[:n]) {
					newEntry = false
				}
			}

			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.TermPrint("\n")
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				// moving backwards through command history
				if history > 0 {
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}
					history--
					n = copy(input, ct.commandHistory[history].input)
					cursor = n
				}

			case easyterm.CursorDown:
				// moving forwards through command history
				if history < len(ct.commandHistory)-1 {
					history++
					n = copy(input, ct.commandHistory[history].input)
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					n = copy(input, buffInput[:buffN])
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		case easyterm.KeyTab:
			// no tab completion for this console

		default:
			if unicode.IsPrint(r) && r < 128 && n < len(input)-1 {
				// shift everything after the cursor one place to the right.
				// note that copy() cannot be used here because the ranges
				// overlap in the wrong direction
				for i := n; i > cursor; i-- {
					input[i] = input[i-1]
				}
				input[cursor] = byte(r)
				cursor++
				n++
				history = len(ct.commandHistory)
			}
		}
	}
}
