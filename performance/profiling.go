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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/gopher65/curated"
)

// Profile selects which Go profiles RunProfiler() writes.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

// sentinal error returned by ParseProfileString.
const UnknownProfile = "performance: unknown profile type (%s)"

// ParseProfileString turns a command line argument into a Profile value.
// Accepted values are NONE, CPU, MEM and ALL.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	switch strings.ToUpper(s) {
	case "NONE":
	case "CPU":
		p = ProfileCPU
	case "MEM":
		p = ProfileMem
	case "ALL":
		p = ProfileCPU | ProfileMem
	default:
		return ProfileNone, curated.Errorf(UnknownProfile, s)
	}

	return p, nil
}

// RunProfiler runs the supplied function, writing the selected profiles
// around it. Profile filenames are prefixed with the tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(tag + "_cpu.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(tag + "_mem.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
