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
	gott "github.com/timburks/snip/types"
)

// A Button forwards activations to the command bound to it.
// It never looks at what the command does.
type Button struct {
	name     string
	command  gott.Command
	executor gott.Executor
}

func NewButton(name string, executor gott.Executor) *Button {
	return &Button{name: name, executor: executor}
}

func (b *Button) Name() string {
	return b.name
}

func (b *Button) Bind(cmd gott.Command) {
	b.command = cmd
}

func (b *Button) Command() gott.Command {
	return b.command
}

// Activate runs the bound command and returns whether it was reversible.
// An unbound button does nothing.
func (b *Button) Activate() bool {
	if b.command == nil || b.executor == nil {
		return false
	}
	return b.executor.ExecuteCommand(b.command)
}
