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

	"github.com/steelseries/golisp"
	tate "github.com/timburks/tategaki/types"
)

// current is the commander that lisp primitives act on.
var current *Commander

var errNoEditor = errors.New("no editor")

func init() {
	golisp.MakePrimitiveFunction("tate-insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("tate-backspace", "0", BackspaceImpl)
	golisp.MakePrimitiveFunction("tate-text", "0", TextImpl)
	golisp.MakePrimitiveFunction("tate-columns", "0", ColumnsImpl)
	golisp.MakePrimitiveFunction("tate-open", "1", OpenImpl)
	golisp.MakePrimitiveFunction("tate-save", "1", SaveImpl)
	golisp.MakePrimitiveFunction("tate-new", "0", NewImpl)
	golisp.MakePrimitiveFunction("tate-copy", "0", CopyImpl)
	golisp.MakePrimitiveFunction("tate-paste", "0", PasteImpl)
	golisp.MakePrimitiveFunction("tate-locale", "0|1", LocaleImpl)
}

func currentEditor() (tate.Editor, error) {
	if current == nil {
		return nil, errNoEditor
	}
	return current.editor, nil
}

func stringArg(name string, args *golisp.Data) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	text, err := stringArg("tate-insert", args)
	if err != nil {
		return nil, err
	}
	e.InsertText(text)
	return golisp.IntegerWithValue(int64(e.ColumnCount())), nil
}

func BackspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	r := e.BackspaceChar()
	if r == 0 {
		return golisp.StringWithValue(""), nil
	}
	return golisp.StringWithValue(string(r)), nil
}

func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.Text()), nil
}

func ColumnsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.ColumnCount())), nil
}

func OpenImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	path, err := stringArg("tate-open", args)
	if err != nil {
		return nil, err
	}
	if err = e.ReadFile(path); err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(true), nil
}

func SaveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	path, err := stringArg("tate-save", args)
	if err != nil {
		return nil, err
	}
	if err = e.WriteFile(path); err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(true), nil
}

// NewImpl clears the buffer without asking to save it.
func NewImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	e.Reset()
	return golisp.BooleanWithValue(true), nil
}

func CopyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	e.Copy()
	return golisp.BooleanWithValue(true), nil
}

func PasteImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	e.Paste()
	return golisp.IntegerWithValue(int64(e.ColumnCount())), nil
}

// LocaleImpl returns the current locale, switching first if a code is given.
func LocaleImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := currentEditor()
	if err != nil {
		return nil, err
	}
	if golisp.Length(args) == 1 {
		code, err := stringArg("tate-locale", args)
		if err != nil {
			return nil, err
		}
		if err = e.SetLocale(code); err != nil {
			return nil, err
		}
	}
	return golisp.StringWithValue(e.GetLocale()), nil
}

// ParseEval evaluates a lisp expression and returns its printed value.
// Strings are returned without quotes.
func ParseEval(command string) (string, error) {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		logger().Debug("lisp", "command", command, "err", err)
		return "", err
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}
