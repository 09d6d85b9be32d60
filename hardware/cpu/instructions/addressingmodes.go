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

package instructions

// AddressingMode describes the method by which an instruction receives the
// data on which to operate.
type AddressingMode int

// The addressing modes of the W65C02S.
const (
	Implied AddressingMode = iota
	Accumulator
	Stack
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage
	ZeroPageIndexedX
	ZeroPageIndexedY
	ZeroPageIndirect         // (zp)
	ZeroPageIndexedIndirect  // (zp,X)
	ZeroPageIndirectIndexedY // (zp),Y
	ZeroPageRelative         // zp,rel - used only by BBRn/BBSn

	Absolute
	AbsoluteIndexedX
	AbsoluteIndexedY
	AbsoluteIndirect        // (abs) - used only by JMP
	AbsoluteIndexedIndirect // (abs,X) - used only by JMP
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Stack:
		return "Stack"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPage,X"
	case ZeroPageIndexedY:
		return "ZeroPage,Y"
	case ZeroPageIndirect:
		return "(ZeroPage)"
	case ZeroPageIndexedIndirect:
		return "(ZeroPage,X)"
	case ZeroPageIndirectIndexedY:
		return "(ZeroPage),Y"
	case ZeroPageRelative:
		return "ZeroPage,Relative"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "Absolute,X"
	case AbsoluteIndexedY:
		return "Absolute,Y"
	case AbsoluteIndirect:
		return "(Absolute)"
	case AbsoluteIndexedIndirect:
		return "(Absolute,X)"
	}
	return "unknown addressing mode"
}

// Length returns the number of bytes an instruction of this addressing mode
// occupies in memory, opcode included.
func (m AddressingMode) Length() int {
	switch m {
	case Implied, Accumulator, Stack:
		return 1
	case Immediate, Relative,
		ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY,
		ZeroPageIndirect, ZeroPageIndexedIndirect, ZeroPageIndirectIndexedY:
		return 2
	case ZeroPageRelative,
		Absolute, AbsoluteIndexedX, AbsoluteIndexedY,
		AbsoluteIndirect, AbsoluteIndexedIndirect:
		return 3
	}
	return 0
}
