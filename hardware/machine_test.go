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

package hardware

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65/curated"
)

// build a machine with the supplied program at the given origin and the
// reset vector pointing at it.
func newTestMachine(t *testing.T, origin uint16, program ...uint8) *Machine {
	t.Helper()

	m, err := NewMachine()
	if err != nil {
		t.Fatal(err)
	}

	for i, b := range program {
		m.Mem.Write(origin+uint16(i), b)
	}
	m.Mem.Write(0xfffc, uint8(origin))
	m.Mem.Write(0xfffd, uint8(origin>>8))
	m.Reset()

	return m
}

func TestRunToStop(t *testing.T) {
	// LDA #$42; STA $2000; STP
	m := newTestMachine(t, 0x0600, 0xa9, 0x42, 0x8d, 0x00, 0x20, 0xdb)

	output := &bytes.Buffer{}
	err := m.run(nil, output)
	if err != nil {
		t.Fatal(err)
	}

	if m.Mem.Peek(0x2000) != 0x42 {
		t.Errorf("program did not run to completion")
	}

	if !strings.Contains(output.String(), StopBanner) {
		t.Errorf("termination banner not emitted")
	}
}

func TestRunPrintDevice(t *testing.T) {
	// LDA #$48; STA $FFFB; LDA #$49; STA $FFFB; STP
	m := newTestMachine(t, 0x0600,
		0xa9, 0x48, 0x8d, 0xfb, 0xff,
		0xa9, 0x49, 0x8d, 0xfb, 0xff,
		0xdb)

	sink := &bytes.Buffer{}
	m.Mem.SetPrintSink(sink)

	err := m.run(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if sink.String() != "HI" {
		t.Errorf("print device emitted %q (wanted %q)", sink.String(), "HI")
	}
}

func TestRunUnknownInstruction(t *testing.T) {
	m := newTestMachine(t, 0x0600, 0x03)

	err := m.run(nil, &bytes.Buffer{})
	if err == nil {
		t.Fatal("unknown instruction should halt the run with an error")
	}
	if !curated.Is(err, HaltedByUnknownInstruction) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunDebugTrap(t *testing.T) {
	// DBG; LDA #$01; DBG; STP
	m := newTestMachine(t, 0x0600, 0x02, 0xa9, 0x01, 0x02, 0xdb)
	m.CPU.Debug = true

	traps := 0
	err := m.run(func() (bool, error) {
		traps++
		return false, nil
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if traps != 2 {
		t.Errorf("debug trap fired %d times (wanted 2)", traps)
	}
	if m.CPU.A.Value() != 0x01 {
		t.Errorf("execution did not resume after trap")
	}
}

func TestRunTrapQuit(t *testing.T) {
	// DBG; STA $2000 (never reached); STP
	m := newTestMachine(t, 0x0600, 0x02, 0x8d, 0x00, 0x20, 0xdb)
	m.CPU.Debug = true

	err := m.run(func() (bool, error) {
		return true, nil
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	if m.Mem.Peek(0x2000) != 0x00 {
		t.Errorf("machine should have stopped at the trap")
	}
}
