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

// Package cpubus defines the memory bus as seen from the CPU. Every 16 bit
// address is valid - memory always covers the full address space - so reads
// and writes cannot fail.
package cpubus

// Memory defines the operations for a memory system attached to a CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Size() int
}

// The vector addresses at the top of the address space. Reset is read
// during the reset sequence; Brk is read when the BRK instruction executes.
const (
	ResetVector uint16 = 0xfffc
	BrkVector   uint16 = 0xfffe
)
