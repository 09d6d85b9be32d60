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

import "fmt"

// GetDefinitions assembles the table of instruction definitions for the
// W65C02S, indexed by opcode. Opcodes with no definition are nil; the CPU
// reports these as unknown instructions.
//
// The table is assembled once at startup and is immutable thereafter. A
// duplicate opcode in the definition list is a programming error and panics
// during assembly rather than silently overwriting the earlier entry.
func GetDefinitions() []*Definition {
	defs := []*Definition{
		{OpCode: 0x00, Operator: Brk, AddressingMode: Stack, Effect: Interrupt},
		{OpCode: 0x01, Operator: Ora, AddressingMode: ZeroPageIndexedIndirect, Effect: Read},
		{OpCode: 0x02, Operator: Dbg, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x04, Operator: Tsb, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0x05, Operator: Ora, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0x06, Operator: Asl, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0x07, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 0},
		{OpCode: 0x08, Operator: Php, AddressingMode: Stack, Effect: Read},
		{OpCode: 0x09, Operator: Ora, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0x0a, Operator: Asl, AddressingMode: Accumulator, Effect: Read},
		{OpCode: 0x0c, Operator: Tsb, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0x0d, Operator: Ora, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0x0e, Operator: Asl, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0x0f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 0},
		{OpCode: 0x10, Operator: Bpl, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0x11, Operator: Ora, AddressingMode: ZeroPageIndirectIndexedY, Effect: Read},
		{OpCode: 0x12, Operator: Ora, AddressingMode: ZeroPageIndirect, Effect: Read},
		{OpCode: 0x14, Operator: Trb, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0x15, Operator: Ora, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0x16, Operator: Asl, AddressingMode: ZeroPageIndexedX, Effect: RMW},
		{OpCode: 0x17, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 1},
		{OpCode: 0x18, Operator: Clc, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x19, Operator: Ora, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0x1a, Operator: Inc, AddressingMode: Accumulator, Effect: Read},
		{OpCode: 0x1c, Operator: Trb, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0x1d, Operator: Ora, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0x1e, Operator: Asl, AddressingMode: AbsoluteIndexedX, Effect: RMW},
		{OpCode: 0x1f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 1},
		{OpCode: 0x20, Operator: Jsr, AddressingMode: Absolute, Effect: Subroutine},
		{OpCode: 0x21, Operator: And, AddressingMode: ZeroPageIndexedIndirect, Effect: Read},
		{OpCode: 0x24, Operator: Bit, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0x25, Operator: And, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0x26, Operator: Rol, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0x27, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 2},
		{OpCode: 0x28, Operator: Plp, AddressingMode: Stack, Effect: Read},
		{OpCode: 0x29, Operator: And, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0x2a, Operator: Rol, AddressingMode: Accumulator, Effect: Read},
		{OpCode: 0x2c, Operator: Bit, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0x2d, Operator: And, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0x2e, Operator: Rol, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0x2f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 2},
		{OpCode: 0x30, Operator: Bmi, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0x31, Operator: And, AddressingMode: ZeroPageIndirectIndexedY, Effect: Read},
		{OpCode: 0x32, Operator: And, AddressingMode: ZeroPageIndirect, Effect: Read},
		{OpCode: 0x34, Operator: Bit, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0x35, Operator: And, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0x36, Operator: Rol, AddressingMode: ZeroPageIndexedX, Effect: RMW},
		{OpCode: 0x37, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 3},
		{OpCode: 0x38, Operator: Sec, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x39, Operator: And, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0x3a, Operator: Dec, AddressingMode: Accumulator, Effect: Read},
		{OpCode: 0x3c, Operator: Bit, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0x3d, Operator: And, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0x3e, Operator: Rol, AddressingMode: AbsoluteIndexedX, Effect: RMW},
		{OpCode: 0x3f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 3},
		{OpCode: 0x40, Operator: Rti, AddressingMode: Stack, Effect: Interrupt},
		{OpCode: 0x41, Operator: Eor, AddressingMode: ZeroPageIndexedIndirect, Effect: Read},
		{OpCode: 0x45, Operator: Eor, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0x46, Operator: Lsr, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0x47, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 4},
		{OpCode: 0x48, Operator: Pha, AddressingMode: Stack, Effect: Read},
		{OpCode: 0x49, Operator: Eor, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0x4a, Operator: Lsr, AddressingMode: Accumulator, Effect: Read},
		{OpCode: 0x4c, Operator: Jmp, AddressingMode: Absolute, Effect: Flow},
		{OpCode: 0x4d, Operator: Eor, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0x4e, Operator: Lsr, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0x4f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 4},
		{OpCode: 0x50, Operator: Bvc, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0x51, Operator: Eor, AddressingMode: ZeroPageIndirectIndexedY, Effect: Read},
		{OpCode: 0x52, Operator: Eor, AddressingMode: ZeroPageIndirect, Effect: Read},
		{OpCode: 0x55, Operator: Eor, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0x56, Operator: Lsr, AddressingMode: ZeroPageIndexedX, Effect: RMW},
		{OpCode: 0x57, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 5},
		{OpCode: 0x58, Operator: Cli, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x59, Operator: Eor, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0x5a, Operator: Phy, AddressingMode: Stack, Effect: Read},
		{OpCode: 0x5d, Operator: Eor, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0x5e, Operator: Lsr, AddressingMode: AbsoluteIndexedX, Effect: RMW},
		{OpCode: 0x5f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 5},
		{OpCode: 0x60, Operator: Rts, AddressingMode: Stack, Effect: Subroutine},
		{OpCode: 0x61, Operator: Adc, AddressingMode: ZeroPageIndexedIndirect, Effect: Read},
		{OpCode: 0x64, Operator: Stz, AddressingMode: ZeroPage, Effect: Write},
		{OpCode: 0x65, Operator: Adc, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0x66, Operator: Ror, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0x67, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 6},
		{OpCode: 0x68, Operator: Pla, AddressingMode: Stack, Effect: Read},
		{OpCode: 0x69, Operator: Adc, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0x6a, Operator: Ror, AddressingMode: Accumulator, Effect: Read},
		{OpCode: 0x6c, Operator: Jmp, AddressingMode: AbsoluteIndirect, Effect: Flow},
		{OpCode: 0x6d, Operator: Adc, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0x6e, Operator: Ror, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0x6f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 6},
		{OpCode: 0x70, Operator: Bvs, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0x71, Operator: Adc, AddressingMode: ZeroPageIndirectIndexedY, Effect: Read},
		{OpCode: 0x72, Operator: Adc, AddressingMode: ZeroPageIndirect, Effect: Read},
		{OpCode: 0x74, Operator: Stz, AddressingMode: ZeroPageIndexedX, Effect: Write},
		{OpCode: 0x75, Operator: Adc, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0x76, Operator: Ror, AddressingMode: ZeroPageIndexedX, Effect: RMW},
		{OpCode: 0x77, Operator: Rmb, AddressingMode: ZeroPage, Effect: RMW, Bit: 7},
		{OpCode: 0x78, Operator: Sei, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x79, Operator: Adc, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0x7a, Operator: Ply, AddressingMode: Stack, Effect: Read},
		{OpCode: 0x7c, Operator: Jmp, AddressingMode: AbsoluteIndexedIndirect, Effect: Flow},
		{OpCode: 0x7d, Operator: Adc, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0x7e, Operator: Ror, AddressingMode: AbsoluteIndexedX, Effect: RMW},
		{OpCode: 0x7f, Operator: Bbr, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 7},
		{OpCode: 0x80, Operator: Bra, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0x81, Operator: Sta, AddressingMode: ZeroPageIndexedIndirect, Effect: Write},
		{OpCode: 0x84, Operator: Sty, AddressingMode: ZeroPage, Effect: Write},
		{OpCode: 0x85, Operator: Sta, AddressingMode: ZeroPage, Effect: Write},
		{OpCode: 0x86, Operator: Stx, AddressingMode: ZeroPage, Effect: Write},
		{OpCode: 0x87, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 0},
		{OpCode: 0x88, Operator: Dey, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x89, Operator: Bit, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0x8a, Operator: Txa, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x8c, Operator: Sty, AddressingMode: Absolute, Effect: Write},
		{OpCode: 0x8d, Operator: Sta, AddressingMode: Absolute, Effect: Write},
		{OpCode: 0x8e, Operator: Stx, AddressingMode: Absolute, Effect: Write},
		{OpCode: 0x8f, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 0},
		{OpCode: 0x90, Operator: Bcc, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0x91, Operator: Sta, AddressingMode: ZeroPageIndirectIndexedY, Effect: Write},
		{OpCode: 0x92, Operator: Sta, AddressingMode: ZeroPageIndirect, Effect: Write},
		{OpCode: 0x94, Operator: Sty, AddressingMode: ZeroPageIndexedX, Effect: Write},
		{OpCode: 0x95, Operator: Sta, AddressingMode: ZeroPageIndexedX, Effect: Write},
		{OpCode: 0x96, Operator: Stx, AddressingMode: ZeroPageIndexedY, Effect: Write},
		{OpCode: 0x97, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 1},
		{OpCode: 0x98, Operator: Tya, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x99, Operator: Sta, AddressingMode: AbsoluteIndexedY, Effect: Write},
		{OpCode: 0x9a, Operator: Txs, AddressingMode: Implied, Effect: Read},
		{OpCode: 0x9c, Operator: Stz, AddressingMode: Absolute, Effect: Write},
		{OpCode: 0x9d, Operator: Sta, AddressingMode: AbsoluteIndexedX, Effect: Write},
		{OpCode: 0x9e, Operator: Stz, AddressingMode: AbsoluteIndexedX, Effect: Write},
		{OpCode: 0x9f, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 1},
		{OpCode: 0xa0, Operator: Ldy, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0xa1, Operator: Lda, AddressingMode: ZeroPageIndexedIndirect, Effect: Read},
		{OpCode: 0xa2, Operator: Ldx, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0xa4, Operator: Ldy, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0xa5, Operator: Lda, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0xa6, Operator: Ldx, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0xa7, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 2},
		{OpCode: 0xa8, Operator: Tay, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xa9, Operator: Lda, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0xaa, Operator: Tax, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xac, Operator: Ldy, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0xad, Operator: Lda, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0xae, Operator: Ldx, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0xaf, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 2},
		{OpCode: 0xb0, Operator: Bcs, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0xb1, Operator: Lda, AddressingMode: ZeroPageIndirectIndexedY, Effect: Read},
		{OpCode: 0xb2, Operator: Lda, AddressingMode: ZeroPageIndirect, Effect: Read},
		{OpCode: 0xb4, Operator: Ldy, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0xb5, Operator: Lda, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0xb6, Operator: Ldx, AddressingMode: ZeroPageIndexedY, Effect: Read},
		{OpCode: 0xb7, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 3},
		{OpCode: 0xb8, Operator: Clv, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xb9, Operator: Lda, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0xba, Operator: Tsx, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xbc, Operator: Ldy, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0xbd, Operator: Lda, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0xbe, Operator: Ldx, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0xbf, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 3},
		{OpCode: 0xc0, Operator: Cpy, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0xc1, Operator: Cmp, AddressingMode: ZeroPageIndexedIndirect, Effect: Read},
		{OpCode: 0xc4, Operator: Cpy, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0xc5, Operator: Cmp, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0xc6, Operator: Dec, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0xc7, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 4},
		{OpCode: 0xc8, Operator: Iny, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xc9, Operator: Cmp, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0xca, Operator: Dex, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xcc, Operator: Cpy, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0xcd, Operator: Cmp, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0xce, Operator: Dec, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0xcf, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 4},
		{OpCode: 0xd0, Operator: Bne, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0xd1, Operator: Cmp, AddressingMode: ZeroPageIndirectIndexedY, Effect: Read},
		{OpCode: 0xd2, Operator: Cmp, AddressingMode: ZeroPageIndirect, Effect: Read},
		{OpCode: 0xd5, Operator: Cmp, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0xd6, Operator: Dec, AddressingMode: ZeroPageIndexedX, Effect: RMW},
		{OpCode: 0xd7, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 5},
		{OpCode: 0xd8, Operator: Cld, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xd9, Operator: Cmp, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0xda, Operator: Phx, AddressingMode: Stack, Effect: Read},
		{OpCode: 0xdb, Operator: Stp, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xdd, Operator: Cmp, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0xde, Operator: Dec, AddressingMode: AbsoluteIndexedX, Effect: RMW},
		{OpCode: 0xdf, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 5},
		{OpCode: 0xe0, Operator: Cpx, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0xe1, Operator: Sbc, AddressingMode: ZeroPageIndexedIndirect, Effect: Read},
		{OpCode: 0xe4, Operator: Cpx, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0xe5, Operator: Sbc, AddressingMode: ZeroPage, Effect: Read},
		{OpCode: 0xe6, Operator: Inc, AddressingMode: ZeroPage, Effect: RMW},
		{OpCode: 0xe7, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 6},
		{OpCode: 0xe8, Operator: Inx, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xe9, Operator: Sbc, AddressingMode: Immediate, Effect: Read},
		{OpCode: 0xea, Operator: Nop, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xec, Operator: Cpx, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0xed, Operator: Sbc, AddressingMode: Absolute, Effect: Read},
		{OpCode: 0xee, Operator: Inc, AddressingMode: Absolute, Effect: RMW},
		{OpCode: 0xef, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 6},
		{OpCode: 0xf0, Operator: Beq, AddressingMode: Relative, Effect: Flow},
		{OpCode: 0xf1, Operator: Sbc, AddressingMode: ZeroPageIndirectIndexedY, Effect: Read},
		{OpCode: 0xf2, Operator: Sbc, AddressingMode: ZeroPageIndirect, Effect: Read},
		{OpCode: 0xf5, Operator: Sbc, AddressingMode: ZeroPageIndexedX, Effect: Read},
		{OpCode: 0xf6, Operator: Inc, AddressingMode: ZeroPageIndexedX, Effect: RMW},
		{OpCode: 0xf7, Operator: Smb, AddressingMode: ZeroPage, Effect: RMW, Bit: 7},
		{OpCode: 0xf8, Operator: Sed, AddressingMode: Implied, Effect: Read},
		{OpCode: 0xf9, Operator: Sbc, AddressingMode: AbsoluteIndexedY, Effect: Read},
		{OpCode: 0xfa, Operator: Plx, AddressingMode: Stack, Effect: Read},
		{OpCode: 0xfd, Operator: Sbc, AddressingMode: AbsoluteIndexedX, Effect: Read},
		{OpCode: 0xfe, Operator: Inc, AddressingMode: AbsoluteIndexedX, Effect: RMW},
		{OpCode: 0xff, Operator: Bbs, AddressingMode: ZeroPageRelative, Effect: Flow, Bit: 7},
	}

	table := make([]*Definition, 256)
	for _, d := range defs {
		if table[d.OpCode] != nil {
			panic(fmt.Sprintf("instructions: duplicate definition for opcode %#02x", d.OpCode))
		}
		d.Bytes = d.AddressingMode.Length()
		table[d.OpCode] = d
	}

	return table
}
