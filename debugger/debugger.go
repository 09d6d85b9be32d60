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

// Package debugger is the inspection console that sits on top of the
// machine. It owns nothing of the emulation: every observation and
// mutation goes through the public interfaces of the hardware package.
//
// The console runs only when the CPU is not stepping - before the machine
// starts, or when the debug trap instruction pauses it - so there is no
// interleaving with the emulation.
package debugger

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher65/hardware"
	"github.com/jetsetilly/gopher65/hardware/cpu"
)

// BreakpointBanner is shown whenever the debug trap instruction drops the
// machine into the console.
const BreakpointBanner = "== BREAKPOINT REACHED =="

// Debugger is the inspection console. It holds the machine being inspected
// and the terminal it talks through.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The terminal is initialised here and cleaned up when Run()
// returns.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		m:    m,
		term: term,
	}

	err := dbg.term.Initialise()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Run the machine with the console attached. With startPaused the console
// is entered before the first instruction executes; otherwise the machine
// free-runs until the debug trap instruction fires.
func (dbg *Debugger) Run(startPaused bool) error {
	defer dbg.term.CleanUp()

	if startPaused {
		quit, err := dbg.console()
		if err != nil || quit {
			return err
		}
	}

	return dbg.m.Run(func() (bool, error) {
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, BreakpointBanner)
		return dbg.console()
	})
}

// console is the input loop. it returns true if the user asked for the
// machine to stop for good.
func (dbg *Debugger) console() (bool, error) {
	for {
		prompt := terminal.Prompt{
			Content: fmt.Sprintf("[ %s ] >>", dbg.m.CPU.PC.String()),
		}

		input, err := dbg.term.TermRead(prompt)
		if err != nil {
			// the two ways a terminal says "no more input". both end the
			// session rather than the process
			if err == io.EOF || curated.Is(err, colorterm.UserInterrupt) {
				return true, nil
			}
			return true, curated.Errorf("debugger: %v", err)
		}

		if input == "" {
			continue
		}

		quit, resume := dbg.dispatch(input)
		if quit {
			return true, nil
		}
		if resume {
			return false, nil
		}
	}
}

// step the CPU once from the console. returns true if the machine has
// terminated.
func (dbg *Debugger) step() bool {
	outcome, err := dbg.m.CPU.Step()
	if err != nil {
		dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		return true
	}

	switch outcome {
	case cpu.Stop:
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, hardware.StopBanner)
		return true

	case cpu.UnknownInstruction:
		dbg.term.TermPrintLine(terminal.StyleError, "unknown instruction")
		return true

	case cpu.EnterDebugger:
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, BreakpointBanner)
	}

	dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.m.CPU.String())

	return false
}
