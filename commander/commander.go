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
package commander

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/timburks/snip/application"
	gott "github.com/timburks/snip/types"
)

// The Commander converts user input into button clicks for the Application.
type Commander struct {
	app        *application.Application
	mode       int    // commander mode
	debug      bool   // debug mode displays information about events (key codes, etc)
	command    string // command as it is being typed on the command line
	lispText   string // lisp command as it is being typed
	message    string // status message
	multiplier string // multiplier string as it is being entered
}

func NewCommander(a *application.Application) *Commander {
	c := &Commander{app: a, mode: gott.ModeEdit}
	c.bindPrimitives()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case gott.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

// click activates a button as many times as the pending multiplier says.
func (c *Commander) click(name string) {
	n := c.Multiplier()
	for i := 0; i < n; i++ {
		c.app.Click(name)
	}
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.multiplier = ""
		case gott.KeyCtrlC:
			c.click(application.ButtonCopy)
		case gott.KeyCtrlX:
			c.click(application.ButtonCut)
		case gott.KeyCtrlV:
			c.click(application.ButtonPaste)
		case gott.KeyCtrlZ:
			c.click(application.ButtonUndo)
		}
	}
	if ch != 0 {
		switch ch {
		//
		// multipliers repeat the next click
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = gott.ModeCommand
			c.command = ""
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = gott.ModeLisp
			c.lispText = "("
		//
		// typing goes straight to the buffer and isn't recorded
		//
		case 'i':
			c.mode = gott.ModeInsert
		case 'a':
			c.mode = gott.ModeInsert
		//
		// buttons
		//
		case 'y':
			c.click(application.ButtonCopy)
		case 'x', 'd':
			c.click(application.ButtonCut)
		case 'p':
			c.click(application.ButtonPaste)
		case 'u':
			c.click(application.ButtonUndo)
		}
	}
	return nil
}

func (c *Commander) ProcessKeyInsertMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyBackspace2:
			c.app.SetText(dropLastRune(c.app.Text()))
		case gott.KeyTab:
			c.app.SetText(c.app.Text() + "\t")
		case gott.KeyEnter:
			c.app.SetText(c.app.Text() + "\n")
		case gott.KeySpace:
			c.app.SetText(c.app.Text() + " ")
		}
	}
	if ch != 0 {
		c.app.SetText(c.app.Text() + string(ch))
	}
	return nil
}

func (c *Commander) ProcessKeyCommandMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.PerformCommand()
		case gott.KeyBackspace2:
			c.command = dropLastRune(c.command)
		case gott.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.mode = gott.ModeEdit
			c.message = c.ParseEval(c.lispText)
		case gott.KeyBackspace2:
			c.lispText = dropLastRune(c.lispText)
		case gott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) PerformCommand() {
	c.mode = gott.ModeEdit
	c.message = ""

	command := strings.TrimSpace(c.command)
	c.command = ""
	if command == "" {
		return
	}
	parts := strings.SplitN(command, " ", 2)
	argument := ""
	if len(parts) > 1 {
		argument = parts[1]
	}

	switch parts[0] {
	case "q", "quit":
		c.mode = gott.ModeQuit
	case "w":
		if err := c.app.WriteFile(argument); err != nil {
			c.message = err.Error()
		} else {
			c.message = "wrote " + c.app.FileName()
		}
	case "wq":
		if err := c.app.WriteFile(argument); err != nil {
			c.message = err.Error()
		} else {
			c.mode = gott.ModeQuit
		}
	case "e":
		if argument == "" {
			c.message = "no file name"
			return
		}
		if err := c.app.ReadFile(argument); err != nil {
			c.message = err.Error()
		}
	case "set":
		c.app.SetText(argument)
	case "clear":
		c.app.SetText("")
	case "copy", "cut", "paste", "undo":
		if argument != "" {
			if n, err := strconv.Atoi(argument); err == nil && n > 0 {
				c.multiplier = argument
			}
		}
		c.click(parts[0])
	case "history":
		var sb strings.Builder
		if err := c.app.PrintHistory(&sb); err != nil {
			c.message = err.Error()
			return
		}
		lines := strings.Fields(strings.ReplaceAll(sb.String(), "\n", " "))
		c.message = strings.TrimSpace(fmt.Sprintf("history(%d) %s", c.app.HistoryDepth(), strings.Join(lines, " ")))
	case "eval":
		c.message = c.ParseEval(argument)
	default:
		c.message = "unknown command: " + parts[0]
	}
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[0 : len(r)-1])
}

// Multiplier returns and clears the pending repeat count.
func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	c.multiplier = ""
	if err != nil || i < 1 {
		return 1
	}
	return int(i)
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
