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
package application

import (
	"io"
	"log"
	"sync"

	"github.com/timburks/snip/editor"
	"github.com/timburks/snip/history"
	"github.com/timburks/snip/invoker"
	"github.com/timburks/snip/operations"
	gott "github.com/timburks/snip/types"
)

// Button names
const (
	ButtonCopy  = "copy"
	ButtonCut   = "cut"
	ButtonPaste = "paste"
	ButtonUndo  = "undo"
)

// The Application runs commands against a buffer and keeps the
// clipboard and the undo history. Each call to ExecuteCommand or Undo
// is atomic with respect to the others.
type Application struct {
	mu        sync.Mutex
	buffer    *editor.Buffer
	clipboard editor.Clipboard
	history   *history.History
	buttons   map[string]*invoker.Button
	debug     bool // debug mode logs every executed command
}

// New creates an application for a buffer with its copy, cut, paste and undo buttons wired.
func New(b *editor.Buffer) *Application {
	a := &Application{
		buffer:  b,
		history: history.NewHistory(),
		buttons: make(map[string]*invoker.Button),
	}
	a.AddButton(ButtonCopy, operations.NewCopy(b))
	a.AddButton(ButtonCut, operations.NewCut(b))
	a.AddButton(ButtonPaste, operations.NewPaste(b))
	a.AddButton(ButtonUndo, operations.NewUndo(b))
	return a
}

func (a *Application) SetDebug(debug bool) {
	a.debug = debug
}

// AddButton creates a button bound to cmd, replacing any button with the same name.
// A nil cmd leaves the button unbound.
func (a *Application) AddButton(name string, cmd gott.Command) *invoker.Button {
	button := invoker.NewButton(name, a)
	if cmd != nil {
		button.Bind(cmd)
	}
	a.buttons[name] = button
	return button
}

func (a *Application) Button(name string) *invoker.Button {
	return a.buttons[name]
}

// Click activates the named button. Unknown buttons are ignored.
func (a *Application) Click(name string) bool {
	button := a.Button(name)
	if button == nil {
		return false
	}
	return button.Activate()
}

// ExecuteCommand runs a copy of cmd and records that copy for undo if it is reversible.
// cmd itself is left untouched, so a button can run it again without
// disturbing earlier history entries.
func (a *Application) ExecuteCommand(cmd gott.Command) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	cmd = cmd.Clone()
	reversible := cmd.Execute(session{a})
	if reversible {
		a.history.Push(cmd)
	}
	if a.debug {
		log.Printf("%s reversible=%t history=%d", cmd.Kind(), reversible, a.history.Len())
	}
	return reversible
}

// Undo reverts the most recent reversible command, if there is one.
func (a *Application) Undo() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.undo()
}

func (a *Application) undo() {
	cmd, ok := a.history.Pop()
	if !ok {
		return
	}
	cmd.Undo()
	if a.debug {
		log.Printf("undo %s history=%d", cmd.Kind(), a.history.Len())
	}
}

func (a *Application) IsClipboardEmpty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.clipboard.IsEmpty()
}

func (a *Application) Clipboard() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.clipboard.Read()
}

func (a *Application) GetBuffer() *editor.Buffer {
	return a.buffer
}

func (a *Application) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer.Read()
}

// Rows returns the buffer text split into display lines.
func (a *Application) Rows() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer.Rows()
}

func (a *Application) FileName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer.GetFileName()
}

// ReadFile replaces the buffer with a file's contents. Like SetText, it isn't recorded for undo.
func (a *Application) ReadFile(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer.ReadFile(path)
}

// WriteFile saves the buffer. An empty path reuses the buffer's file name.
func (a *Application) WriteFile(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffer.WriteFile(path)
}

// SetText replaces the buffer contents without recording anything for undo.
func (a *Application) SetText(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buffer.Replace(text)
}

func (a *Application) HistoryDepth() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Len()
}

func (a *Application) HistoryKinds() []gott.Kind {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Kinds()
}

func (a *Application) PrintHistory(w io.Writer) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Print(w)
}

// session is what a command sees of the application while it executes.
// The lock is already held.
type session struct {
	a *Application
}

func (s session) Clipboard() gott.Clipboard {
	return &s.a.clipboard
}

func (s session) Undo() {
	s.a.undo()
}
