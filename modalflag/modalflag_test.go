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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65/modalflag"
)

func TestDefaultSubMode(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"image.bin"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		t.Fatalf("unexpected parse result (%v, %v)", p, err)
	}

	if md.Mode() != "RUN" {
		t.Errorf("default sub-mode should be RUN (got %s)", md.Mode())
	}
	if md.GetArg(0) != "image.bin" {
		t.Errorf("positional argument lost (got %s)", md.GetArg(0))
	}
}

func TestNamedSubModeWithFlags(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"debug", "-term", "PLAIN", "image.bin"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		t.Fatalf("unexpected parse result (%v, %v)", p, err)
	}
	if md.Mode() != "DEBUG" {
		t.Fatalf("sub-mode not recognised (got %s)", md.Mode())
	}

	// the mode declares its own flags and parses the remaining arguments
	md.NewMode()
	termType := md.AddString("term", "AUTO", "terminal type")

	p, err = md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		t.Fatalf("unexpected parse result (%v, %v)", p, err)
	}

	if *termType != "PLAIN" {
		t.Errorf("flag not parsed (got %s)", *termType)
	}
	if len(md.RemainingArgs()) != 1 || md.GetArg(0) != "image.bin" {
		t.Errorf("positional argument lost (%v)", md.RemainingArgs())
	}
}

func TestHelp(t *testing.T) {
	output := &strings.Builder{}
	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "DEBUG")

	p, err := md.Parse()
	if err != nil {
		t.Fatalf("help should not be an error: %v", err)
	}
	if p != modalflag.ParseHelp {
		t.Fatalf("expected ParseHelp result")
	}
	if !strings.Contains(output.String(), "available sub-modes") {
		t.Errorf("help output missing sub-mode summary: %q", output.String())
	}
}
