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

import (
	"fmt"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher65/logger"
)

// the stack lives in page one. the stack pointer register supplies the low
// byte of the effective address.
const stackPage = 0x0100

// sentinal errors returned by NewCPU and Step.
const (
	NoAttachedMemory  = "cpu: memory cannot be nil"
	BadAddressingMode = "cpu: no decoding of addressing mode for %s"
)

// CPU implements the W65C02S. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations use a scratch register when working on a memory
	// operand
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// whether the DBG instruction drops into the inspection console
	Debug bool

	// whether to log every instruction before it executes
	Verbose bool

	// the definition of the most recently fetched instruction. valid from
	// the fetch until the end of the Step() that fetched it. used by the
	// inspection console for context
	LastDefn *instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is not usable until Reset() has been called.
func NewCPU(mem cpubus.Memory) (*CPU, error) {
	if mem == nil {
		return nil, curated.Errorf(NoAttachedMemory)
	}

	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0, "SP"),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "scratch"),
		instructions: instructions.GetDefinitions(),
	}

	if mem.Size() > 0x10000 {
		logger.Log("cpu", "memory is larger than the addressable limit of the CPU")
	}

	return mc, nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// A reset vector of 0x0000 or 0xffff almost certainly means the image was
// built without one; the reset proceeds regardless but the oddity is logged.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.LastDefn = nil

	lo := mc.mem.Read(cpubus.ResetVector)
	hi := mc.mem.Read(cpubus.ResetVector + 1)

	if (lo == 0x00 && hi == 0x00) || (lo == 0xff && hi == 0xff) {
		logger.Log("cpu", "reset vector appears not to be set")
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// Push a byte onto the stack. The stack pointer is decremented after the
// write and wraps within page one.
func (mc *CPU) Push(data uint8) {
	mc.mem.Write(stackPage|mc.SP.Address(), data)
	mc.SP.Add(0xff, false)
}

// Pop a byte from the stack. The stack pointer is incremented before the
// read and wraps within page one.
func (mc *CPU) Pop() uint8 {
	mc.SP.Add(1, false)
	return mc.mem.Read(stackPage | mc.SP.Address())
}

// Step executes the instruction at the current PC: fetch opcode, resolve
// the operand address according to the addressing mode, perform the
// operation and advance the PC by the instruction length (unless the
// operation took control of the PC itself).
//
// An UnknownInstruction outcome means there is no definition for the
// fetched opcode; the PC is left pointing at the offending opcode. The
// error return is reserved for conditions that should be unreachable with
// a well-formed definitions table.
func (mc *CPU) Step() (StepOutcome, error) {
	opcode := mc.mem.Read(mc.PC.Address())

	defn := mc.instructions[opcode]
	if defn == nil {
		mc.LastDefn = nil
		logger.Log("cpu", fmt.Sprintf("unknown opcode %#02x at %#04x", opcode, mc.PC.Address()))
		return UnknownInstruction, nil
	}
	mc.LastDefn = defn

	if mc.Verbose {
		logger.Log("cpu", fmt.Sprintf("%s (PC=%#04x)", defn.Mnemonic(), mc.PC.Address()))
	}

	address, err := mc.operandAddress(defn)
	if err != nil {
		return UnknownInstruction, err
	}

	outcome, err := mc.execute(defn, address)
	if err != nil {
		return outcome, err
	}

	if outcome != OKPCModified {
		mc.PC.Add(uint16(defn.Bytes))
	}

	return outcome, nil
}
