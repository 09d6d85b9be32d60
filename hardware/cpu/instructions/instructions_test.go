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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/hardware/cpu/instructions"
)

func TestDefinitionsConsistency(t *testing.T) {
	defs := instructions.GetDefinitions()

	if len(defs) != 256 {
		t.Fatalf("definitions table should have one slot per opcode (got %d)", len(defs))
	}

	count := 0
	for i, d := range defs {
		if d == nil {
			continue
		}
		count++

		if int(d.OpCode) != i {
			t.Errorf("definition at index %#02x has opcode field %#02x", i, d.OpCode)
		}

		if d.Bytes != d.AddressingMode.Length() {
			t.Errorf("%s: byte count %d does not agree with addressing mode %s",
				d.Mnemonic(), d.Bytes, d.AddressingMode)
		}

		if d.Bytes < 1 || d.Bytes > 3 {
			t.Errorf("%s: impossible instruction length %d", d.Mnemonic(), d.Bytes)
		}
	}

	if count != 212 {
		t.Errorf("expected 212 defined opcodes (got %d)", count)
	}
}

func TestDefinitionsSpotChecks(t *testing.T) {
	defs := instructions.GetDefinitions()

	spot := []struct {
		opcode   uint8
		mnemonic string
		mode     instructions.AddressingMode
		bytes    int
	}{
		{0xa9, "LDA", instructions.Immediate, 2},
		{0x8d, "STA", instructions.Absolute, 3},
		{0x00, "BRK", instructions.Stack, 1},
		{0xdb, "STP", instructions.Implied, 1},
		{0x02, "DBG", instructions.Implied, 1},
		{0x6c, "JMP", instructions.AbsoluteIndirect, 3},
		{0x7c, "JMP", instructions.AbsoluteIndexedIndirect, 3},
		{0x80, "BRA", instructions.Relative, 2},
		{0xb2, "LDA", instructions.ZeroPageIndirect, 2},
		{0x0f, "BBR0", instructions.ZeroPageRelative, 3},
		{0xff, "BBS7", instructions.ZeroPageRelative, 3},
		{0x07, "RMB0", instructions.ZeroPage, 2},
		{0xf7, "SMB7", instructions.ZeroPage, 2},
		{0x1a, "INC", instructions.Accumulator, 1},

		// the interrupt flag pair. the set operation lives at 0x78
		{0x58, "CLI", instructions.Implied, 1},
		{0x78, "SEI", instructions.Implied, 1},

		// TRB at 0x1c, not a second TSB
		{0x1c, "TRB", instructions.Absolute, 3},
	}

	for _, s := range spot {
		d := defs[s.opcode]
		if d == nil {
			t.Errorf("no definition for opcode %#02x", s.opcode)
			continue
		}
		if d.Mnemonic() != s.mnemonic {
			t.Errorf("opcode %#02x: mnemonic %s (wanted %s)", s.opcode, d.Mnemonic(), s.mnemonic)
		}
		if d.AddressingMode != s.mode {
			t.Errorf("opcode %#02x: mode %s (wanted %s)", s.opcode, d.AddressingMode, s.mode)
		}
		if d.Bytes != s.bytes {
			t.Errorf("opcode %#02x: %d bytes (wanted %d)", s.opcode, d.Bytes, s.bytes)
		}
	}

	// a handful of opcodes that are not part of the instruction set
	for _, opcode := range []uint8{0x03, 0x0b, 0x13, 0x44, 0xfc} {
		if defs[opcode] != nil {
			t.Errorf("opcode %#02x should not be defined", opcode)
		}
	}
}
