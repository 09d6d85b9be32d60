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
	"github.com/jetsetilly/gopher65/binaryloader"
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu"
	"github.com/jetsetilly/gopher65/hardware/memory"
)

// Machine is the top level of the emulated hardware: the CPU and the memory
// it is attached to. There is no other hardware - the only peripheral, the
// print device, is a property of the memory.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewMachine is the preferred method of initialisation for the Machine
// type. The returned machine has empty memory; attach a binary image with
// AttachBinary() before running.
func NewMachine() (*Machine, error) {
	m := &Machine{}

	m.Mem = memory.NewMemory()

	var err error
	m.CPU, err = cpu.NewCPU(m.Mem)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	return m, nil
}

// AttachBinary loads a binary image into memory and resets the machine,
// priming the PC from the image's reset vector.
func (m *Machine) AttachBinary(load binaryloader.Loader) error {
	err := load.Load(m.Mem)
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}

	m.Reset()

	return nil
}

// Reset the machine to its initial state. Memory contents are untouched.
func (m *Machine) Reset() {
	m.CPU.Reset()
}
