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

func TestStatusPowerOn(t *testing.T) {
	sr := registers.NewStatusRegister()

	// interrupt disable and the unused bit are high at power-on
	assert.Assert(t, sr, 0x24)
	assert.Assert(t, sr, "nv-bdIzc")
}

func TestStatusUnusedBit(t *testing.T) {
	sr := registers.NewStatusRegister()

	// the unused bit cannot be written low
	sr.Load(0x00)
	assert.Assert(t, sr, 0x20)

	sr.Load(0xff)
	assert.Assert(t, sr, 0xff)

	sr.Load(0xdf)
	assert.Assert(t, sr, 0xff)
}

func TestStatusLoadValueRoundTrip(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.Load(0xb1)
	assert.Assert(t, sr, "Nv-BdizC")
	assert.Assert(t, sr.Carry, true)
	assert.Assert(t, sr, 0xb1)
}

func TestStatusUpdateZeroSign(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.Reset()

	sr.UpdateZeroSign(0x00)
	assert.Assert(t, sr.Zero, true)
	assert.Assert(t, sr.Sign, false)

	sr.UpdateZeroSign(0x80)
	assert.Assert(t, sr.Zero, false)
	assert.Assert(t, sr.Sign, true)

	// no other flag is touched
	assert.Assert(t, sr, "Nv-bdIzc")
}
