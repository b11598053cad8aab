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
package operations

import (
	gott "github.com/timburks/snip/types"
)

// Command is one of a closed set of actions against a buffer.
type Command struct {
	kind   gott.Kind
	buffer gott.Buffer
	backup string
}

func NewCopy(b gott.Buffer) *Command {
	return &Command{kind: gott.KindCopy, buffer: b}
}

func NewCut(b gott.Buffer) *Command {
	return &Command{kind: gott.KindCut, buffer: b}
}

func NewPaste(b gott.Buffer) *Command {
	return &Command{kind: gott.KindPaste, buffer: b}
}

// NewUndo returns a command that triggers the application's undo.
func NewUndo(b gott.Buffer) *Command {
	return &Command{kind: gott.KindUndo, buffer: b}
}

func (op *Command) Kind() gott.Kind {
	return op.kind
}

// Clone returns a copy bound to the same buffer with no backup.
func (op *Command) Clone() gott.Command {
	return &Command{kind: op.kind, buffer: op.buffer}
}

func (op *Command) String() string {
	return op.kind.String()
}

// Execute performs the command and reports whether it can be undone.
func (op *Command) Execute(app gott.Application) bool {
	switch op.kind {
	case gott.KindCopy:
		return op.copy(app.Clipboard())
	case gott.KindCut:
		return op.cut(app.Clipboard())
	case gott.KindPaste:
		return op.paste(app.Clipboard())
	case gott.KindUndo:
		return op.undo(app)
	default:
		return false
	}
}

// Undo restores the buffer to its state before the last Execute.
// It is only meaningful for commands whose Execute returned true.
func (op *Command) Undo() {
	op.buffer.Replace(op.backup)
}

// saveBackup must run before the buffer is changed.
func (op *Command) saveBackup() {
	op.backup = op.buffer.Read()
}
