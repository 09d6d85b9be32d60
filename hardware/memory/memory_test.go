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

package memory_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/memory"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	if mem.Size() != 0x10000 {
		t.Fatalf("memory should cover the full address space (got %#x)", mem.Size())
	}

	mem.Write(0x1000, 0x42)
	if mem.Read(0x1000) != 0x42 {
		t.Errorf("read after write failed")
	}

	// reads have no side effects
	if mem.Peek(0x1000) != 0x42 || mem.Read(0x1000) != 0x42 {
		t.Errorf("repeated reads should return the same value")
	}
}

func TestPrintDevice(t *testing.T) {
	mem := memory.NewMemory()

	sink := &bytes.Buffer{}
	mem.SetPrintSink(sink)

	mem.Write(0xfffb, 'H')
	mem.Write(0xfffb, 'I')

	if sink.String() != "HI" {
		t.Errorf("print device emitted %q (wanted %q)", sink.String(), "HI")
	}

	// the device cell is an ordinary readable cell holding the last write
	if mem.Read(0xfffb) != 'I' {
		t.Errorf("print device cell should hold the last byte written")
	}

	// reading the device emits nothing
	sink.Reset()
	_ = mem.Read(0xfffb)
	if sink.Len() != 0 {
		t.Errorf("reading the print device should have no side effects")
	}
}

func TestPrintDeviceRelocation(t *testing.T) {
	mem := memory.NewMemory()

	sink := &bytes.Buffer{}
	mem.SetPrintSink(sink)
	mem.SetPrintDevice(0x8000)

	mem.Write(0xfffb, 'X')
	mem.Write(0x8000, 'Y')

	if sink.String() != "Y" {
		t.Errorf("relocated print device emitted %q (wanted %q)", sink.String(), "Y")
	}
}

func TestImport(t *testing.T) {
	mem := memory.NewMemory()

	// a short image is zero padded
	mem.Write(0x2000, 0xff)
	err := mem.Import(strings.NewReader("\xa9\x42"))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if mem.Read(0x0000) != 0xa9 || mem.Read(0x0001) != 0x42 {
		t.Errorf("image bytes not placed at address zero")
	}
	if mem.Read(0x2000) != 0x00 {
		t.Errorf("import should zero the remainder of memory")
	}

	// an image larger than the address space is an error
	err = mem.Import(bytes.NewReader(make([]byte, 0x10001)))
	if err == nil {
		t.Errorf("oversized image should be an error")
	}
	if !curated.Is(err, memory.ImageTooLarge) {
		t.Errorf("unexpected error: %v", err)
	}

	// an image of exactly the address space size is fine
	err = mem.Import(bytes.NewReader(make([]byte, 0x10000)))
	if err != nil {
		t.Errorf("full sized image should import cleanly: %v", err)
	}
}
