//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReplaceAndClear(t *testing.T) {
	b := NewBuffer()
	if b.Read() != "" {
		t.Errorf("New buffer should be empty")
	}
	b.Replace("Hello World")
	if b.Read() != "Hello World" {
		t.Errorf("Unexpected text '%s'", b.Read())
	}
	b.Clear()
	if b.Read() != "" {
		t.Errorf("Unexpected text after clear '%s'", b.Read())
	}
}

func TestRows(t *testing.T) {
	b := NewBuffer()
	b.Replace("one\ntwo\nthree")
	rows := b.Rows()
	if len(rows) != 3 || rows[1] != "two" {
		t.Errorf("Unexpected rows %q", rows)
	}
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.txt")
	text := "Four score and seven years ago\nour fathers brought forth\n"
	if err := os.WriteFile(source, []byte(text), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	b := NewBuffer()
	if err := b.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if b.GetFileName() != source {
		t.Errorf("Unexpected file name '%s'", b.GetFileName())
	}
	final := filepath.Join(dir, "final.txt")
	if err := b.WriteFile(final); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	bytes, err := os.ReadFile(final)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if string(bytes) != text {
		t.Errorf("File changed after a round trip: '%s'", string(bytes))
	}
}

func TestWriteWithoutName(t *testing.T) {
	b := NewBuffer()
	if err := b.WriteFile(""); err == nil {
		t.Errorf("Expected an error when writing an unnamed buffer")
	}
}

func TestReadMissingFile(t *testing.T) {
	b := NewBuffer()
	b.Replace("kept")
	if err := b.ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
	if b.Read() != "kept" {
		t.Errorf("A failed read changed the buffer: '%s'", b.Read())
	}
}

func TestClipboard(t *testing.T) {
	var c Clipboard
	if !c.IsEmpty() {
		t.Errorf("Clipboard should start empty")
	}
	c.Write("text")
	if c.IsEmpty() || c.Read() != "text" {
		t.Errorf("Unexpected clipboard '%s'", c.Read())
	}
}
