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

// Package cpu emulates the W65C02S. The emulation is instruction-stepped
// and deterministic: Step() executes exactly one instruction and reports
// what happened through the StepOutcome type. There is no concept of time -
// the instruction is the atomic unit and nothing can interrupt one.
//
// The CPU is not responsible for the decision of what to do with an
// outcome. Stopping, dropping into the inspection console and reporting
// unknown instructions are policies of the hardware and debugger packages.
package cpu
