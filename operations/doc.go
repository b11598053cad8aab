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
//

// Package operations wraps editing actions into commands that can be invoked
// without knowing what they do. A command is built against the buffer it edits
// and is given access to the clipboard only while it executes. Commands that
// change the buffer save a backup of it first and report themselves as
// reversible, so that the application can record them for undo.
package operations
