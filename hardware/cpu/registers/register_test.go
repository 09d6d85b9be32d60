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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher65/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65/hardware/cpu/registers/assert"
)

func TestRegisterArithmetic(t *testing.T) {
	r := registers.NewRegister(0, "test")
	assert.Assert(t, r, 0)
	assert.Assert(t, r.IsZero(), true)

	carry, overflow := r.Add(1, false)
	assert.Assert(t, r, 1)
	assert.Assert(t, carry, false)
	assert.Assert(t, overflow, false)

	// carry out of bit 7
	r.Load(0xff)
	carry, overflow = r.Add(1, false)
	assert.Assert(t, r, 0)
	assert.Assert(t, carry, true)
	assert.Assert(t, overflow, false)
	assert.Assert(t, r.IsZero(), true)

	// carry in
	r.Load(0xff)
	carry, _ = r.Add(0, true)
	assert.Assert(t, r, 0)
	assert.Assert(t, carry, true)

	// signed overflow: 0x7f + 1 = 0x80
	r.Load(0x7f)
	carry, overflow = r.Add(1, false)
	assert.Assert(t, r, 0x80)
	assert.Assert(t, carry, false)
	assert.Assert(t, overflow, true)
	assert.Assert(t, r.IsNegative(), true)
}

func TestRegisterSubtraction(t *testing.T) {
	r := registers.NewRegister(0x50, "test")

	// carry set means no borrow
	carry, overflow := r.Subtract(0x30, true)
	assert.Assert(t, r, 0x20)
	assert.Assert(t, carry, true)
	assert.Assert(t, overflow, false)

	// borrow in (carry clear) takes one more away
	r.Load(0x50)
	carry, overflow = r.Subtract(0x30, false)
	assert.Assert(t, r, 0x1f)
	assert.Assert(t, carry, true)
	assert.Assert(t, overflow, false)

	// subtrahend larger than register means a borrow
	r.Load(0x10)
	carry, _ = r.Subtract(0x20, true)
	assert.Assert(t, r, 0xf0)
	assert.Assert(t, carry, false)
	assert.Assert(t, r.IsNegative(), true)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "test")

	carry := r.ASL()
	assert.Assert(t, r, 0x02)
	assert.Assert(t, carry, true)

	carry = r.LSR()
	assert.Assert(t, r, 0x01)
	assert.Assert(t, carry, false)

	carry = r.LSR()
	assert.Assert(t, r, 0x00)
	assert.Assert(t, carry, true)

	// rotates feed the old carry into the vacated bit
	r.Load(0x80)
	carry = r.ROL(true)
	assert.Assert(t, r, 0x01)
	assert.Assert(t, carry, true)

	r.Load(0x01)
	carry = r.ROR(true)
	assert.Assert(t, r, 0x80)
	assert.Assert(t, carry, true)
}

func TestRegisterLogic(t *testing.T) {
	r := registers.NewRegister(0, "test")

	r.ORA(0xff)
	assert.Assert(t, r, 0xff)
	r.EOR(0xf0)
	assert.Assert(t, r, 0x0f)
	r.AND(0x01)
	assert.Assert(t, r, 0x01)
}
