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
	"fmt"
	"os"
	"strings"
)

// A Buffer holds the text being edited. It knows nothing about commands.
type Buffer struct {
	text     string
	fileName string
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Read() string {
	return b.text
}

func (b *Buffer) Replace(text string) {
	b.text = text
}

func (b *Buffer) Clear() {
	b.Replace("")
}

// Rows returns the text split into display lines.
func (b *Buffer) Rows() []string {
	return strings.Split(b.text, "\n")
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// ReadFile replaces the buffer contents with the contents of a file.
func (b *Buffer) ReadFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	b.Replace(string(bytes))
	b.fileName = path
	return nil
}

// WriteFile saves the buffer. An empty path writes to the file it was read from.
func (b *Buffer) WriteFile(path string) error {
	if path == "" {
		path = b.fileName
	}
	if path == "" {
		return fmt.Errorf("no file name")
	}
	if err := os.WriteFile(path, []byte(b.text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b.fileName = path
	return nil
}
