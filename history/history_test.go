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
	"strings"
	"testing"

	gott "github.com/timburks/snip/types"
)

type testCommand struct {
	kind gott.Kind
}

func (c *testCommand) Kind() gott.Kind { return c.kind }
func (c *testCommand) Execute(app gott.Application) bool { return true }
func (c *testCommand) Undo() {}
func (c *testCommand) Clone() gott.Command { return &testCommand{kind: c.kind} }

func TestPopEmpty(t *testing.T) {
	h := NewHistory()
	if cmd, ok := h.Pop(); ok || cmd != nil {
		t.Errorf("Pop of an empty history returned %+v", cmd)
	}
}

func TestLastInFirstOut(t *testing.T) {
	h := NewHistory()
	cut := &testCommand{kind: gott.KindCut}
	paste := &testCommand{kind: gott.KindPaste}
	h.Push(cut)
	h.Push(paste)
	if h.Len() != 2 {
		t.Errorf("Unexpected length %d", h.Len())
	}
	if cmd, ok := h.Pop(); !ok || cmd != paste {
		t.Errorf("Expected paste on top, got %+v", cmd)
	}
	if cmd, ok := h.Pop(); !ok || cmd != cut {
		t.Errorf("Expected cut next, got %+v", cmd)
	}
	if _, ok := h.Pop(); ok {
		t.Errorf("Expected empty history")
	}
	if h.Len() != 0 {
		t.Errorf("Unexpected length %d", h.Len())
	}
}

func TestPrint(t *testing.T) {
	h := NewHistory()
	h.Push(&testCommand{kind: gott.KindCut})
	h.Push(&testCommand{kind: gott.KindPaste})
	var sb strings.Builder
	if err := h.Print(&sb); err != nil {
		t.Errorf("Print failed: %+v", err)
	}
	expected := "1: Cut\n2: Paste\n"
	if sb.String() != expected {
		t.Errorf("Unexpected history listing: '%s'", sb.String())
	}
	kinds := h.Kinds()
	if len(kinds) != 2 || kinds[0] != gott.KindCut || kinds[1] != gott.KindPaste {
		t.Errorf("Unexpected kinds %v", kinds)
	}
}
