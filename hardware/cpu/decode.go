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
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
)

// read a 16 bit pointer from two consecutive zero page cells. the increment
// to reach the high byte wraps within page zero.
func (mc *CPU) readZeroPagePtr(ptr uint8) uint16 {
	lo := mc.mem.Read(uint16(ptr))
	hi := mc.mem.Read(uint16(ptr + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// read a 16 bit pointer from two consecutive cells anywhere in memory.
func (mc *CPU) readPtr(ptr uint16) uint16 {
	lo := mc.mem.Read(ptr)
	hi := mc.mem.Read(ptr + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// operandAddress resolves the effective address of the instruction operand.
// the PC still points at the opcode; operand bytes start at PC+1.
//
// for the Immediate mode the resolved address is the address of the operand
// byte itself, meaning every operator can treat the operand uniformly as
// "the byte at the effective address". modes with no operand resolve to
// zero; their operators never use the address.
func (mc *CPU) operandAddress(defn *instructions.Definition) (uint16, error) {
	pc := mc.PC.Address()

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Stack:
		return 0, nil

	case instructions.Immediate:
		return pc + 1, nil

	case instructions.Relative:
		// sign extend the offset before the 16 bit addition
		offset := uint16(mc.mem.Read(pc + 1))
		if offset&0x0080 == 0x0080 {
			offset |= 0xff00
		}
		return pc + 2 + offset, nil

	case instructions.ZeroPage:
		return uint16(mc.mem.Read(pc + 1)), nil

	case instructions.ZeroPageIndexedX:
		return uint16(mc.mem.Read(pc+1) + mc.X.Value()), nil

	case instructions.ZeroPageIndexedY:
		return uint16(mc.mem.Read(pc+1) + mc.Y.Value()), nil

	case instructions.ZeroPageIndirect:
		return mc.readZeroPagePtr(mc.mem.Read(pc + 1)), nil

	case instructions.ZeroPageIndexedIndirect:
		return mc.readZeroPagePtr(mc.mem.Read(pc+1) + mc.X.Value()), nil

	case instructions.ZeroPageIndirectIndexedY:
		base := mc.readZeroPagePtr(mc.mem.Read(pc + 1))
		return base + mc.Y.Address(), nil

	case instructions.ZeroPageRelative:
		// the zero page cell holding the bit to test. the relative offset
		// at PC+2 is consumed by the branch operator
		return uint16(mc.mem.Read(pc + 1)), nil

	case instructions.Absolute:
		return mc.readPtr(pc + 1), nil

	case instructions.AbsoluteIndexedX:
		return mc.readPtr(pc+1) + mc.X.Address(), nil

	case instructions.AbsoluteIndexedY:
		return mc.readPtr(pc+1) + mc.Y.Address(), nil

	case instructions.AbsoluteIndirect:
		return mc.readPtr(mc.readPtr(pc + 1)), nil

	case instructions.AbsoluteIndexedIndirect:
		return mc.readPtr(mc.readPtr(pc+1) + mc.X.Address()), nil
	}

	return 0, curated.Errorf(BadAddressingMode, defn.Mnemonic())
}
