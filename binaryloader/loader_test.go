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

package binaryloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher65/binaryloader"
	"github.com/jetsetilly/gopher65/curated"
	"github.com/jetsetilly/gopher65/hardware/memory"
)

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.bin")
	err := os.WriteFile(fn, []byte{0xa9, 0x42, 0xdb}, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	mem := memory.NewMemory()
	err = binaryloader.NewLoader(fn).Load(mem)
	if err != nil {
		t.Fatal(err)
	}

	if mem.Read(0x0000) != 0xa9 || mem.Read(0x0002) != 0xdb {
		t.Errorf("image not loaded at address zero")
	}
	if mem.Read(0x0003) != 0x00 {
		t.Errorf("memory beyond the image should be zero")
	}
}

func TestLoadMissingFile(t *testing.T) {
	mem := memory.NewMemory()
	err := binaryloader.NewLoader("no_such_file.bin").Load(mem)
	if err == nil {
		t.Fatal("loading a missing file should fail")
	}
	if !curated.Is(err, binaryloader.FileUnavailable) {
		t.Errorf("unexpected error: %v", err)
	}
}
