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
package invoker

import (
	"testing"

	gott "github.com/timburks/snip/types"
)

type testCommand struct {
	reversible bool
}

func (c *testCommand) Kind() gott.Kind { return gott.KindCut }
func (c *testCommand) Execute(app gott.Application) bool { return c.reversible }
func (c *testCommand) Undo() {}
func (c *testCommand) Clone() gott.Command { return c }

type testExecutor struct {
	executed []gott.Command
}

func (e *testExecutor) ExecuteCommand(cmd gott.Command) bool {
	e.executed = append(e.executed, cmd)
	return cmd.Execute(nil)
}

func TestUnboundButton(t *testing.T) {
	e := &testExecutor{}
	b := NewButton("cut", e)
	if b.Activate() {
		t.Errorf("Unbound button reported a reversible command")
	}
	if len(e.executed) != 0 {
		t.Errorf("Unbound button executed %d commands", len(e.executed))
	}
	if b.Command() != nil {
		t.Errorf("Unbound button has a command")
	}
}

func TestBoundButton(t *testing.T) {
	e := &testExecutor{}
	b := NewButton("cut", e)
	cmd := &testCommand{reversible: true}
	b.Bind(cmd)
	if !b.Activate() {
		t.Errorf("Expected the command's reversible flag to be returned")
	}
	if len(e.executed) != 1 || e.executed[0] != cmd {
		t.Errorf("Expected the bound command to be executed once, got %+v", e.executed)
	}
	if b.Name() != "cut" {
		t.Errorf("Unexpected name '%s'", b.Name())
	}
}

func TestRebind(t *testing.T) {
	e := &testExecutor{}
	b := NewButton("x", e)
	b.Bind(&testCommand{reversible: true})
	second := &testCommand{reversible: false}
	b.Bind(second)
	if b.Activate() {
		t.Errorf("Expected the flag of the rebound command")
	}
	if e.executed[0] != second {
		t.Errorf("Rebinding did not replace the command")
	}
}
