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
package history

import (
	"fmt"
	"io"

	gott "github.com/timburks/snip/types"
)

// History is a stack of executed commands that can be undone.
type History struct {
	commands []gott.Command
}

func NewHistory() *History {
	return &History{commands: make([]gott.Command, 0)}
}

// Push puts a command on top of the stack.
func (h *History) Push(cmd gott.Command) {
	h.commands = append(h.commands, cmd)
}

// Pop removes and returns the most recently pushed command.
func (h *History) Pop() (gott.Command, bool) {
	if len(h.commands) == 0 {
		return nil, false
	}
	last := len(h.commands) - 1
	cmd := h.commands[last]
	h.commands[last] = nil
	h.commands = h.commands[0:last]
	return cmd, true
}

func (h *History) Len() int {
	return len(h.commands)
}

// Kinds lists the recorded commands from oldest to newest.
func (h *History) Kinds() []gott.Kind {
	kinds := make([]gott.Kind, len(h.commands))
	for i, cmd := range h.commands {
		kinds[i] = cmd.Kind()
	}
	return kinds
}

// Print writes one numbered line per recorded command, oldest first.
func (h *History) Print(w io.Writer) error {
	for i, cmd := range h.commands {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, cmd.Kind()); err != nil {
			return err
		}
	}
	return nil
}
