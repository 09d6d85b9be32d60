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

package hardware

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu"
)

// StopBanner is emitted when the STP instruction terminates a run.
const StopBanner = "== ENCOUNTERED STP, terminating... =="

// HaltedByUnknownInstruction is the error returned by Run() when execution
// meets an opcode with no definition. The run stops cleanly but the
// condition is still a failure of the loaded program.
const HaltedByUnknownInstruction = "hardware: unknown opcode %#02x at %#04x"

// Run the machine until it terminates: the STP instruction, the program
// counter leaving memory, or an unknown instruction. The loop is
// synchronous and checks for termination only between instructions.
//
// The trap function is called when the debug trap instruction fires; it
// should run the inspection console and return true if the machine should
// stop for good. A nil trap resumes execution immediately.
func (m *Machine) Run(trap func() (bool, error)) error {
	return m.run(trap, os.Stdout)
}

func (m *Machine) run(trap func() (bool, error), output io.Writer) error {
	for int(m.CPU.PC.Address()) < m.Mem.Size() {
		outcome, err := m.CPU.Step()
		if err != nil {
			return curated.Errorf("hardware: %v", err)
		}

		switch outcome {
		case cpu.OK, cpu.OKPCModified, cpu.SIRaised:
			// keep running

		case cpu.Stop:
			fmt.Fprintf(output, "\n%s\n", StopBanner)
			return nil

		case cpu.UnknownInstruction:
			// the CPU leaves the PC pointing at the offending opcode
			pc := m.CPU.PC.Address()
			return curated.Errorf(HaltedByUnknownInstruction, m.Mem.Read(pc), pc)

		case cpu.EnterDebugger:
			if trap == nil {
				continue
			}
			quit, err := trap()
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}

	return nil
}
