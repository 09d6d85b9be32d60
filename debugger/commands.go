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

package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher65/debugger/terminal"
)

const helpText = `Available commands:
  d/dump - dump registers
  g/get <address> - get value at address
  g/get <start> <count> - get <count> values starting at <start>
  s/step - step one instruction
  c/continue - continue execution
  viz <file> - write machine state to <file> in graphviz dot format
  h/help - show this help message
  q/exit - quit the emulator`

const invalidCommand = "Unknown command (type help for more info)."

// dispatch parses and runs one console command. the returns indicate
// whether the console session (and machine) should end, and whether
// free-running execution should resume.
func (dbg *Debugger) dispatch(input string) (quit bool, resume bool) {
	tokens := strings.Fields(input)
	command := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch command {
	case "dump", "d":
		dbg.dumpRegisters()

	case "get", "g":
		dbg.get(args)

	case "step", "s":
		if dbg.step() {
			return true, false
		}

	case "continue", "c":
		return false, true

	case "help", "h":
		dbg.term.TermPrintLine(terminal.StyleHelp, helpText)

	case "exit", "quit", "e", "q":
		return true, false

	case "viz":
		dbg.viz(args)

	default:
		dbg.term.TermPrintLine(terminal.StyleFeedback, invalidCommand)
	}

	return false, false
}

// parse a hexadecimal number. a leading 0x or $ is allowed but not
// required.
func parseHex(s string) (uint64, error) {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "$")
	return strconv.ParseUint(s, 16, 32)
}

func (dbg *Debugger) dumpRegisters() {
	mc := dbg.m.CPU

	s := strings.Builder{}
	s.WriteString("format: HEX (UNSIGNED, SIGNED)\n")
	s.WriteString(fmt.Sprintf("A:  %#02x (%d, %d)\n", mc.A.Value(), mc.A.Value(), int8(mc.A.Value())))
	s.WriteString(fmt.Sprintf("X:  %#02x (%d, %d)\n", mc.X.Value(), mc.X.Value(), int8(mc.X.Value())))
	s.WriteString(fmt.Sprintf("Y:  %#02x (%d, %d)\n", mc.Y.Value(), mc.Y.Value(), int8(mc.Y.Value())))
	s.WriteString(fmt.Sprintf("SP: %#02x (%d, %d)\n", mc.SP.Value(), mc.SP.Value(), int8(mc.SP.Value())))
	s.WriteString(fmt.Sprintf("PC: %#04x\n", mc.PC.Address()))
	s.WriteString(fmt.Sprintf("P:  %08b\n", mc.Status.Value()))
	s.WriteString("    NV-BDIZC")

	dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
}

func (dbg *Debugger) get(args []string) {
	switch len(args) {
	case 0:
		dbg.term.TermPrintLine(terminal.StyleError, "missing address")

	case 1:
		address, err := parseHex(args[0])
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, fmt.Sprintf("invalid address: %s", args[0]))
			return
		}
		dbg.printMemory(uint16(address), 1)

	case 2:
		start, err := parseHex(args[0])
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, fmt.Sprintf("invalid address: %s", args[0]))
			return
		}
		count, err := parseHex(args[1])
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, fmt.Sprintf("invalid count: %s", args[1]))
			return
		}
		dbg.printMemory(uint16(start), int(count))

	default:
		dbg.term.TermPrintLine(terminal.StyleError, "too many arguments")
	}
}

// printMemory writes a hex listing of a memory range: sixteen bytes per
// row with a column separator halfway along, the way the row reads on a
// datasheet.
func (dbg *Debugger) printMemory(start uint16, count int) {
	s := strings.Builder{}

	for i := 0; i < count; i++ {
		address := start + uint16(i)

		switch {
		case i%16 == 0:
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x: ", address))
		case i%8 == 0:
			s.WriteString(" | ")
		default:
			s.WriteString(" ")
		}

		s.WriteString(fmt.Sprintf("%02x", dbg.m.Mem.Peek(address)))
	}

	dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
}

// viz writes the machine aggregate to a file as a graphviz dot graph.
func (dbg *Debugger) viz(args []string) {
	if len(args) != 1 {
		dbg.term.TermPrintLine(terminal.StyleError, "viz requires a filename")
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		return
	}
	defer f.Close()

	memviz.Map(f, dbg.m)

	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("machine state written to %s", args[0]))
}
