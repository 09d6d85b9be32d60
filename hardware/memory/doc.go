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

// Package memory implements the 64KiB address space of the machine. It is a
// flat byte array with one memory mapped cell: the print device, whose
// writes are echoed to a character sink.
package memory
