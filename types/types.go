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
package types

// Modes of the commander
const (
	ModeEdit    = 0
	ModeInsert  = 1
	ModeCommand = 2
	ModeLisp    = 3
	ModeQuit    = 9999
)

// Kind tags each command variant.
type Kind int

const (
	KindCopy Kind = iota
	KindCut
	KindPaste
	KindUndo
)

func (k Kind) String() string {
	switch k {
	case KindCopy:
		return "Copy"
	case KindCut:
		return "Cut"
	case KindPaste:
		return "Paste"
	case KindUndo:
		return "Undo"
	default:
		return "Unknown"
	}
}

// Buffer is the receiver of all editing commands.
type Buffer interface {
	Read() string
	Replace(text string)
	Clear()
}

// Clipboard holds the last copied or cut text.
type Clipboard interface {
	Read() string
	Write(text string)
}

// Application is the capability a command gets while it executes.
// It must not be retained after Execute returns.
type Application interface {
	Clipboard() Clipboard
	Undo()
}

type Command interface {
	Kind() Kind
	Execute(app Application) bool // performs the command and reports whether it can be undone
	Undo()
	Clone() Command // a fresh copy to execute, so each history entry keeps its own backup
}

// Executor runs commands on behalf of invokers.
type Executor interface {
	ExecuteCommand(cmd Command) bool
}

type Commander interface {
	GetMode() int
	GetCommand() string
	GetLispText() string
	GetMessage() string
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// Key identifies a special key. Printable characters arrive in Event.Ch
// with the zero Key, which is also used for keys we don't handle.
type Key int

const (
	KeyUnsupported Key = iota
	KeyBackspace2
	KeyCtrlC
	KeyCtrlV
	KeyCtrlX
	KeyCtrlZ
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
)
