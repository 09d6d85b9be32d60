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

package cpu

// StepOutcome is the result of executing one instruction.
type StepOutcome int

// List of step outcomes.
const (
	// the instruction completed and the program counter has been advanced
	// past it.
	OK StepOutcome = iota

	// the instruction completed and took control of the program counter
	// itself (jumps, taken branches, subroutine and interrupt returns).
	OKPCModified

	// there is no instruction defined for the opcode at the program counter.
	UnknownInstruction

	// the debug trap instruction was executed with debugging enabled.
	EnterDebugger

	// the STP instruction was executed.
	Stop

	// reserved for software interrupt support. no current instruction
	// produces it.
	SIRaised
)

func (o StepOutcome) String() string {
	switch o {
	case OK:
		return "ok"
	case OKPCModified:
		return "ok (pc modified)"
	case UnknownInstruction:
		return "unknown instruction"
	case EnterDebugger:
		return "enter debugger"
	case Stop:
		return "stop"
	case SIRaised:
		return "software interrupt"
	}
	return "unknown outcome"
}
