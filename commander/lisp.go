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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"
	"github.com/timburks/snip/application"
)

// bindPrimitives makes the application's buttons and text available to lisp.
// The golisp symbol table is global, so the most recent commander wins.
func (c *Commander) bindPrimitives() {
	for _, name := range []string{
		application.ButtonCopy,
		application.ButtonCut,
		application.ButtonPaste,
		application.ButtonUndo,
	} {
		golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			return golisp.BooleanWithValue(c.app.Click(name)), nil
		})
	}
	golisp.MakePrimitiveFunction("text", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(c.app.Text()), nil
	})
	golisp.MakePrimitiveFunction("set-text", "1", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		val := golisp.Car(args)
		if !golisp.StringP(val) {
			return nil, errors.New("set-text requires a string argument")
		}
		c.app.SetText(golisp.StringValue(val))
		return val, nil
	})
	golisp.MakePrimitiveFunction("clipboard", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(c.app.Clipboard()), nil
	})
	golisp.MakePrimitiveFunction("clipboard-empty?", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.BooleanWithValue(c.app.IsClipboardEmpty()), nil
	})
	golisp.MakePrimitiveFunction("history-depth", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.app.HistoryDepth())), nil
	})
}

// ParseEval evaluates a lisp expression and returns its printed value or error.
func (c *Commander) ParseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	if c.debug {
		log.Printf("SEXPR %+v", golisp.String(value))
	}
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	value, err := golisp.ParseAndEval("(begin\n" + string(bytes) + "\n)")
	if err != nil {
		return "", fmt.Errorf("eval %s: %w", filename, err)
	}
	return golisp.String(value), nil
}
