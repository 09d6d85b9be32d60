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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher65/binaryloader"
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/debugger"
	"github.com/jetsetilly/gopher65/debugger/terminal"
	"github.com/jetsetilly/gopher65/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher65/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher65/hardware"
	"github.com/jetsetilly/gopher65/logger"
	"github.com/jetsetilly/gopher65/modalflag"
	"github.com/jetsetilly/gopher65/performance"
	"github.com/jetsetilly/gopher65/statsview"
	"golang.org/x/term"
)

func main() {
	// warnings (unset reset vector, ignored memory size) should be seen
	// without any verbose option. verbose instruction tracing arrives
	// through the same channel
	logger.SetEcho(os.Stderr)

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(1)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(1)
	}
}

// newMachine assembles a machine with the common command line options
// applied and the named binary image attached.
func newMachine(md *modalflag.Modes, printDevice string, verbose bool) (*hardware.Machine, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("no binary file specified")
	case 1:
		// continue
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	m, err := hardware.NewMachine()
	if err != nil {
		return nil, err
	}

	if printDevice != "" {
		address, err := parseHexArg(printDevice)
		if err != nil {
			return nil, curated.Errorf("invalid print device address (%s)", printDevice)
		}
		m.Mem.SetPrintDevice(uint16(address))
	}

	m.CPU.Verbose = verbose

	err = m.AttachBinary(binaryloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// checkMemorySize warns if a memory size other than the full address space
// was requested. The machine always addresses the full 16 bits so other
// sizes are noted and ignored.
func checkMemorySize(memorySize string) error {
	if memorySize == "" {
		return nil
	}

	size, err := parseHexArg(memorySize)
	if err != nil {
		return curated.Errorf("invalid memory size (%s)", memorySize)
	}
	if size != 0x10000 {
		logger.Log("main", "memory always covers the full address space; requested size ignored")
	}

	return nil
}

func parseHexArg(s string) (uint64, error) {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, 32)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	debugTrap := md.AddBool("debug", false, "enable the debug trap instruction")
	debugShort := md.AddBool("d", false, "shorthand for -debug")
	verbose := md.AddBool("verbose", false, "log every instruction before it executes")
	verboseShort := md.AddBool("v", false, "shorthand for -verbose")
	printDevice := md.AddString("print-device", "", "address of print device (hex)")
	memorySize := md.AddString("memory-size", "", "size of memory (hex). the machine always addresses 0x10000 bytes")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = checkMemorySize(*memorySize)
	if err != nil {
		return err
	}

	m, err := newMachine(md, *printDevice, *verbose || *verboseShort)
	if err != nil {
		return err
	}

	m.CPU.Debug = *debugTrap || *debugShort

	// without the debug trap there is no way into the console, so don't
	// bother with a terminal at all
	if !m.CPU.Debug {
		return m.Run(nil)
	}

	dbg, err := debugger.NewDebugger(m, chooseTerminal("AUTO"))
	if err != nil {
		return err
	}

	return dbg.Run(false)
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "AUTO", "terminal type to use in debug mode: AUTO, COLOR, PLAIN")
	verbose := md.AddBool("verbose", false, "log every instruction before it executes")
	printDevice := md.AddString("print-device", "", "address of print device (hex)")
	memorySize := md.AddString("memory-size", "", "size of memory (hex). the machine always addresses 0x10000 bytes")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = checkMemorySize(*memorySize)
	if err != nil {
		return err
	}

	m, err := newMachine(md, *printDevice, *verbose)
	if err != nil {
		return err
	}

	m.CPU.Debug = true

	dbg, err := debugger.NewDebugger(m, chooseTerminal(*termType))
	if err != nil {
		return err
	}

	return dbg.Run(true)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "profiles to write: NONE, CPU, MEM, ALL")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("performance mode requires a single binary file")
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, prof, binaryloader.NewLoader(md.GetArg(0)), *duration)
}

// chooseTerminal returns the terminal implementation for the console. AUTO
// picks the color terminal when stdin is interactive and the plain terminal
// when input is piped.
func chooseTerminal(termType string) terminal.Terminal {
	switch strings.ToUpper(termType) {
	case "COLOR":
		return &colorterm.ColorTerminal{}
	case "PLAIN":
		return &plainterm.PlainTerminal{}
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &colorterm.ColorTerminal{}
	}
	return &plainterm.PlainTerminal{}
}
