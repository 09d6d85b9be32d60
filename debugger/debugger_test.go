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

package debugger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/hardware"
)

// mockTerm is a scripted terminal: TermRead returns the prepared lines one
// by one and every line of output is recorded.
type mockTerm struct {
	input  []string
	output []string
}

func (mt *mockTerm) Initialise() error             { return nil }
func (mt *mockTerm) CleanUp()                      {}
func (mt *mockTerm) IsInteractive() bool           { return false }
func (mt *mockTerm) TermPrintLine(_ terminal.Style, s string) {
	mt.output = append(mt.output, s)
}

func (mt *mockTerm) TermRead(_ terminal.Prompt) (string, error) {
	if len(mt.input) == 0 {
		return "", io.EOF
	}
	s := mt.input[0]
	mt.input = mt.input[1:]
	return s, nil
}

func (mt *mockTerm) sawLine(sub string) bool {
	for _, s := range mt.output {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func newTestDebugger(t *testing.T, program ...uint8) (*Debugger, *mockTerm) {
	t.Helper()

	m, err := hardware.NewMachine()
	if err != nil {
		t.Fatal(err)
	}

	for i, b := range program {
		m.Mem.Write(0x0600+uint16(i), b)
	}
	m.Mem.Write(0xfffc, 0x00)
	m.Mem.Write(0xfffd, 0x06)
	m.Reset()
	m.CPU.Debug = true

	mt := &mockTerm{}
	dbg, err := NewDebugger(m, mt)
	if err != nil {
		t.Fatal(err)
	}

	return dbg, mt
}

func TestDumpCommand(t *testing.T) {
	dbg, mt := newTestDebugger(t, 0xdb)

	quit, resume := dbg.dispatch("dump")
	if quit || resume {
		t.Fatalf("dump should not end the console")
	}

	if !mt.sawLine("A:  0x00") || !mt.sawLine("PC: 0x0600") || !mt.sawLine("NV-BDIZC") {
		t.Errorf("register dump incomplete: %v", mt.output)
	}
}

func TestGetCommand(t *testing.T) {
	dbg, mt := newTestDebugger(t, 0xdb)

	for i := 0; i < 24; i++ {
		dbg.m.Mem.Write(0x2000+uint16(i), uint8(i))
	}

	// a single byte
	dbg.dispatch("get 2001")
	if !mt.sawLine("2001: 01") {
		t.Errorf("single byte listing wrong: %v", mt.output)
	}

	// a range: sixteen bytes per row with a separator after eight
	mt.output = nil
	dbg.dispatch("g 2000 11")
	if !mt.sawLine("2000: 00 01 02 03 04 05 06 07 | 08 09 0a 0b 0c 0d 0e 0f\n2010: 10") {
		t.Errorf("range listing wrong: %v", mt.output)
	}

	// invalid input is reported and the console continues
	mt.output = nil
	dbg.dispatch("get xyz")
	if !mt.sawLine("invalid address") {
		t.Errorf("invalid address not reported: %v", mt.output)
	}
}

func TestStepAndContinue(t *testing.T) {
	// LDA #$42; STP
	dbg, mt := newTestDebugger(t, 0xa9, 0x42, 0xdb)

	quit, resume := dbg.dispatch("step")
	if quit || resume {
		t.Fatalf("step should keep the console open")
	}
	if dbg.m.CPU.A.Value() != 0x42 {
		t.Errorf("step did not execute the instruction")
	}

	// stepping over STP ends the session
	quit, _ = dbg.dispatch("s")
	if !quit {
		t.Errorf("stepping over STP should end the session")
	}
	if !mt.sawLine(hardware.StopBanner) {
		t.Errorf("termination banner not shown: %v", mt.output)
	}
}

func TestConsoleFlow(t *testing.T) {
	dbg, mt := newTestDebugger(t, 0xa9, 0x42, 0xdb)

	// unknown commands are reported and the console continues. continue
	// hands control back to the free-run loop
	mt.input = []string{"bogus", "continue"}
	quit, err := dbg.console()
	if err != nil {
		t.Fatal(err)
	}
	if quit {
		t.Errorf("continue should resume the machine, not quit")
	}
	if !mt.sawLine("Unknown command") {
		t.Errorf("invalid command not reported: %v", mt.output)
	}

	// exhausted input reads as EOF, which ends the session
	mt.input = nil
	quit, err = dbg.console()
	if err != nil {
		t.Fatal(err)
	}
	if !quit {
		t.Errorf("EOF should end the session")
	}

	// quit command
	mt.input = []string{"q"}
	quit, _ = dbg.console()
	if !quit {
		t.Errorf("q should end the session")
	}
}

func TestHelpCommand(t *testing.T) {
	dbg, mt := newTestDebugger(t, 0xdb)

	dbg.dispatch("help")
	if !mt.sawLine("Available commands") {
		t.Errorf("help text not shown: %v", mt.output)
	}
}

func TestVizCommand(t *testing.T) {
	dbg, mt := newTestDebugger(t, 0xdb)

	fn := filepath.Join(t.TempDir(), "machine.dot")
	dbg.dispatch("viz " + fn)

	if !mt.sawLine("machine state written") {
		t.Errorf("viz did not report success: %v", mt.output)
	}

	dot, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), "digraph") {
		t.Errorf("viz output does not look like a dot file")
	}
}
