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

// Package performance measures the raw speed of the emulation: how many
// instructions the interpreter executes per second of host time. It can
// also wrap the measurement in the Go profiler, which is how hot spots in
// the interpreter have been found historically.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher65/binaryloader"
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware"
	"github.com/jetsetilly/gopher65/hardware/cpu"
)

// checking the clock is expensive relative to a Step() so only do it every
// performanceBrake instructions.
const performanceBrake = 10000

// Check the performance of the emulator using the supplied binary image.
//
// The image runs for the specified duration, restarting from the reset
// vector whenever it terminates, and the achieved instructions-per-second
// figure is written to output. Profile selects which Go profiles to write
// while the measurement runs.
func Check(output io.Writer, profile Profile, load binaryloader.Loader, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	m, err := hardware.NewMachine()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the print device would corrupt the measurement report
	m.Mem.SetPrintSink(io.Discard)

	err = m.AttachBinary(load)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	instructions := 0

	runner := func() error {
		deadline := time.After(dur)
		brake := 0

		for {
			outcome, err := m.CPU.Step()
			if err != nil {
				return err
			}
			instructions++

			switch outcome {
			case cpu.Stop, cpu.UnknownInstruction:
				// restart the image and keep measuring
				m.Reset()
			default:
				if int(m.CPU.PC.Address()) >= m.Mem.Size() {
					m.Reset()
				}
			}

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-deadline:
					return nil
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ips := float64(instructions) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f instructions per second (%d in %.2f seconds)\n",
		ips, instructions, dur.Seconds())))

	return nil
}
