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

// Package instructions defines the instruction set of the W65C02S. Each
// opcode maps to a Definition: an (Operator, AddressingMode) pair plus the
// effect category that tells the CPU how the operand address is used.
//
// Splitting the opcode into operator and addressing mode means the cpu
// package needs only one execution path per operator; the addressing mode
// is resolved separately, before the operator runs.
package instructions
