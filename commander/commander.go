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
	"log/slog"
	"strings"

	"github.com/timburks/tategaki/locale"
	tate "github.com/timburks/tategaki/types"
)

// An Action names something a menu entry or shortcut does.
// Actions do not depend on the interface language.
type Action string

const (
	ActionNew   Action = "new"
	ActionOpen  Action = "open"
	ActionSave  Action = "save"
	ActionExit  Action = "exit"
	ActionCopy  Action = "copy"
	ActionPaste Action = "paste"
)

const localePrefix = "locale:"

// LocaleAction switches the interface to the locale code.
func LocaleAction(code string) Action {
	return Action(localePrefix + code)
}

// Locale returns the locale code of a locale action.
func (a Action) Locale() (string, bool) {
	if !strings.HasPrefix(string(a), localePrefix) {
		return "", false
	}
	return strings.TrimPrefix(string(a), localePrefix), true
}

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor   tate.Editor
	handlers map[Action]func()
	quit     func()             // called when the user exits
	mode     int                // commander mode
	debug    bool               // debug mode displays information about events (key codes, etc)
	message  string             // status message
	prompt   string             // text being typed at a path or lisp prompt
	question string             // label of the path prompt
	confirm  func(tate.Answer)  // pending yes/no/cancel answer
	choose   func(string, bool) // pending path answer
}

func NewCommander(e tate.Editor) *Commander {
	c := &Commander{editor: e, mode: tate.ModeEdit}
	c.quit = func() { c.mode = tate.ModeQuit }
	c.handlers = map[Action]func(){
		ActionNew:   e.New,
		ActionOpen:  e.Open,
		ActionSave:  e.Save,
		ActionExit:  func() { e.Exit(c.quit) },
		ActionCopy:  e.Copy,
		ActionPaste: e.Paste,
	}
	for _, code := range locale.Codes() {
		code := code
		c.handlers[LocaleAction(code)] = func() {
			if err := e.SetLocale(code); err != nil {
				c.message = err.Error()
			}
		}
	}
	current = c
	return c
}

func logger() *slog.Logger {
	return slog.Default().With("component", "commander")
}

// SetQuit replaces what happens once the user has confirmed an exit.
func (c *Commander) SetQuit(quit func()) {
	c.quit = func() {
		c.mode = tate.ModeQuit
		quit()
	}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != tate.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

// GetPrompt returns the prompt line while text is being typed.
func (c *Commander) GetPrompt() string {
	switch c.mode {
	case tate.ModePath:
		return c.question + c.prompt
	case tate.ModeLisp:
		return c.prompt
	}
	return ""
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

// Perform runs the handler of an action.
func (c *Commander) Perform(a Action) error {
	h, ok := c.handlers[a]
	if !ok {
		return fmt.Errorf("unknown action %q", a)
	}
	logger().Debug("perform", "action", string(a))
	h()
	return nil
}

func (c *Commander) ProcessEvent(event *tate.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case tate.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *tate.Event) error {
	var err error
	switch c.mode {
	case tate.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case tate.ModeConfirm:
		err = c.ProcessKeyConfirmMode(event)
	case tate.ModePath:
		err = c.ProcessKeyPathMode(event)
	case tate.ModeMessage:
		err = c.ProcessKeyMessageMode(event)
	case tate.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyEditMode(event *tate.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tate.KeyCtrlN:
			return c.Perform(ActionNew)
		case tate.KeyCtrlO:
			return c.Perform(ActionOpen)
		case tate.KeyCtrlS:
			return c.Perform(ActionSave)
		case tate.KeyCtrlQ:
			return c.Perform(ActionExit)
		case tate.KeyCtrlC:
			return c.Perform(ActionCopy)
		case tate.KeyCtrlV:
			return c.Perform(ActionPaste)
		case tate.KeyCtrlL:
			return c.Perform(LocaleAction(locale.Next(e.GetLocale())))
		case tate.KeyCtrlX:
			c.mode = tate.ModeLisp
			c.prompt = "("
		case tate.KeyBackspace, tate.KeyDelete:
			e.BackspaceChar()
		case tate.KeyEnter:
			e.InsertText("\n")
		case tate.KeySpace:
			e.InsertChar(' ')
		}
		return nil
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *tate.Event) error {
	if c.editLine(event) {
		c.mode = tate.ModeEdit
		result, err := ParseEval(c.prompt)
		if err != nil {
			c.message = err.Error()
		} else {
			c.message = result
		}
		c.prompt = ""
	}
	return nil
}

// editLine applies a key to the prompt line. It returns true when the
// line was entered; Esc returns to edit mode.
func (c *Commander) editLine(event *tate.Event) bool {
	switch event.Key {
	case tate.KeyEsc:
		c.mode = tate.ModeEdit
		c.prompt = ""
		return false
	case tate.KeyEnter:
		return true
	case tate.KeyBackspace, tate.KeyDelete:
		if r := []rune(c.prompt); len(r) > 0 {
			c.prompt = string(r[:len(r)-1])
		}
	case tate.KeySpace:
		c.prompt += " "
	}
	if event.Key == 0 && event.Ch != 0 {
		c.prompt += string(event.Ch)
	}
	return false
}
