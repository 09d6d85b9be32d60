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

// Package registers implements the registers of the W65C02S. The A, X, Y and
// SP registers are instances of the Register type; the program counter and
// the status register have types of their own.
//
// Arithmetic on the Register and ProgramCounter types is modular. The
// operations that can overflow return the carry (and, where meaningful, the
// overflow) state rather than touching any flag themselves - flag policy
// belongs to the cpu package.
package registers
