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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/timburks/snip/application"
	"github.com/timburks/snip/commander"
	"github.com/timburks/snip/config"
	"github.com/timburks/snip/editor"
	"github.com/timburks/snip/screen"
)

func main() {

	filenames := make([]string, 0)
	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			// If a file was specified on the command line, read it.
			filenames = append(filenames, os.Args[i])
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Output(1, err.Error())
		os.Exit(1)
	}

	// The buffer holds the text being edited.
	b := editor.NewBuffer()
	if len(filenames) == 0 {
		b.Replace(cfg.Text)
	} else {
		if len(filenames) > 1 {
			log.Printf("Only one file can be edited, ignoring %v", filenames[1:])
		}
		filename := filenames[0]
		fileinfo, err := os.Stat(filename)
		if err != nil {
			// the file will be created when the buffer is written
			b.SetFileName(filename)
		} else if fileinfo.IsDir() {
			log.Printf("Directory! %+v", fileinfo.Name())
			return
		} else if err = b.ReadFile(filename); err != nil {
			log.Output(1, err.Error())
			return
		}
	}

	// The application runs commands and keeps the clipboard and undo history.
	a := application.New(b)
	a.SetDebug(cfg.Debug)

	// The commander converts user inputs into button clicks.
	c := commander.NewCommander(a)
	c.SetDebug(cfg.Debug)

	if script != "" {
		// Run a script, print the result and exit.
		result, err := c.ParseEvalFile(script)
		if err != nil {
			log.Output(1, err.Error())
			os.Exit(1)
		}
		fmt.Println(result)
		return
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return
	}
	defer f.Close()
	log.SetOutput(f)

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(a, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
}
