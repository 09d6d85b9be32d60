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

package logger

import (
	"strings"
	"testing"
)

func TestCentralLogger(t *testing.T) {
	Clear()

	Log("test", "this is a test")
	s := &strings.Builder{}
	Write(s)
	if s.String() != "test: this is a test\n" {
		t.Errorf("unexpected log contents: %q", s.String())
	}

	// consecutive identical entries are folded
	Log("test", "this is a test")
	Log("test", "this is a test")
	s.Reset()
	Write(s)
	if s.String() != "test: this is a test (repeat x3)\n" {
		t.Errorf("unexpected log contents: %q", s.String())
	}

	Log("test2", "another entry")
	s.Reset()
	Tail(s, 1)
	if s.String() != "test2: another entry\n" {
		t.Errorf("unexpected tail contents: %q", s.String())
	}

	Clear()
	s.Reset()
	Write(s)
	if s.Len() != 0 {
		t.Errorf("log should be empty after Clear()")
	}
}

func TestEcho(t *testing.T) {
	Clear()

	s := &strings.Builder{}
	SetEcho(s)
	defer SetEcho(nil)

	Log("echo", "hello")
	if s.String() != "echo: hello\n" {
		t.Errorf("echo writer did not receive entry: %q", s.String())
	}
}
