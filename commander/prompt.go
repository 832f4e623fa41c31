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
	"github.com/timburks/tategaki/locale"
	tate "github.com/timburks/tategaki/types"
)

// The Commander answers the editor's dialogs in the message bar when
// no native dialogs are available.

func (c *Commander) tr(key string) string {
	return locale.Translate(c.editor.GetLocale(), key)
}

func (c *Commander) ConfirmYesNoCancel(title, message string, done func(tate.Answer)) {
	c.confirm = done
	c.mode = tate.ModeConfirm
	c.message = title + ": " + message +
		" [y] " + c.tr("yes") + " [n] " + c.tr("no") + " [esc] " + c.tr("cancel")
}

func (c *Commander) ChooseOpenPath(done func(path string, ok bool)) {
	c.choosePath(c.tr("open"), done)
}

func (c *Commander) ChooseSavePath(done func(path string, ok bool)) {
	c.choosePath(c.tr("save"), done)
}

func (c *Commander) choosePath(title string, done func(path string, ok bool)) {
	c.choose = done
	c.mode = tate.ModePath
	c.question = title + " " + c.tr("path_prompt") + ": "
	c.prompt = ""
	c.message = ""
}

func (c *Commander) ShowError(title, message string) {
	logger().Warn(message, "title", title)
	c.mode = tate.ModeMessage
	c.message = title + ": " + message
}

func (c *Commander) ShowInfo(title, message string) {
	c.mode = tate.ModeMessage
	if title == message {
		c.message = message
	} else {
		c.message = title + ": " + message
	}
}

func (c *Commander) ProcessKeyConfirmMode(event *tate.Event) error {
	answer := tate.AnswerCancel
	switch {
	case event.Key == tate.KeyEsc:
	case event.Ch == 'y' || event.Ch == 'Y':
		answer = tate.AnswerYes
	case event.Ch == 'n' || event.Ch == 'N':
		answer = tate.AnswerNo
	case event.Ch == 'c' || event.Ch == 'C':
	default:
		return nil
	}
	done := c.confirm
	c.confirm = nil
	c.mode = tate.ModeEdit
	c.message = ""
	if done != nil {
		done(answer)
	}
	return nil
}

func (c *Commander) ProcessKeyPathMode(event *tate.Event) error {
	mode := c.mode
	entered := c.editLine(event)
	if !entered && c.mode == mode {
		return nil
	}
	path := c.prompt
	done := c.choose
	c.choose = nil
	c.prompt = ""
	c.question = ""
	c.mode = tate.ModeEdit
	if done != nil {
		done(path, entered && path != "")
	}
	return nil
}

// ProcessKeyMessageMode dismisses the message; the key is consumed.
func (c *Commander) ProcessKeyMessageMode(event *tate.Event) error {
	c.mode = tate.ModeEdit
	c.message = ""
	return nil
}
