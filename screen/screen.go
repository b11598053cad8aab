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
package screen

import (
	"fmt"
	"log"
	"strings"

	"github.com/nsf/termbox-go"
	"github.com/timburks/snip/application"
	gott "github.com/timburks/snip/types"
)

// The Screen draws the state of an Application.
type Screen struct {
	rows int
	cols int
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(a *application.Application, c gott.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.cols, s.rows = termbox.Size()
	s.RenderBuffer(a)
	s.RenderInfoBar(a)
	s.RenderMessageBar(c)
	termbox.Flush()
}

// RenderBuffer draws as many rows of text as fit above the two bars.
func (s *Screen) RenderBuffer(a *application.Application) {
	rows := a.Rows()
	for i, row := range rows {
		if i >= s.rows-2 {
			break
		}
		x := 0
		for _, ch := range row {
			if x >= s.cols {
				break
			}
			if ch == '\t' {
				ch = ' '
			}
			termbox.SetCell(x, i, ch, termbox.ColorWhite, termbox.ColorBlack)
			x++
		}
	}
}

func (s *Screen) RenderInfoBar(a *application.Application) {
	clipboard := a.Clipboard()
	if a.IsClipboardEmpty() {
		clipboard = "(empty)"
	} else {
		clipboard = strings.ReplaceAll(clipboard, "\n", "\\n")
	}
	finalText := fmt.Sprintf(" history: %d ", a.HistoryDepth())
	text := " snip - " + a.FileName() + " clipboard: " + clipboard + " "
	available := s.cols - len(finalText) - 1
	if available < 0 {
		available = 0
	}
	if len(text) > available {
		text = text[0:available]
	}
	for len(text) < available {
		text = text + " "
	}
	text += finalText
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, s.rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
		x++
	}
}

func (s *Screen) RenderMessageBar(c gott.Commander) {
	var line string
	switch c.GetMode() {
	case gott.ModeCommand:
		line += ":" + c.GetCommand()
	case gott.ModeLisp:
		line += c.GetLispText()
	case gott.ModeInsert:
		line += "-- INSERT --"
	default:
		line += c.GetMessage()
	}
	x := 0
	for _, ch := range line {
		if x >= s.cols {
			break
		}
		termbox.SetCell(x, s.rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
		x++
	}
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &gott.Event{
			Type: gott.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}
	default:
		return &gott.Event{Type: gott.EventOther}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	case termbox.KeyCtrlV:
		return gott.KeyCtrlV
	case termbox.KeyCtrlX:
		return gott.KeyCtrlX
	case termbox.KeyCtrlZ:
		return gott.KeyCtrlZ
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
