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
package editor

import (
	"fmt"

	tate "github.com/timburks/tategaki/types"
)

// New starts an empty document once unsaved text has been dealt with.
func (e *Editor) New() {
	e.guard(e.Reset)
}

// Open asks for a file and loads it. Errors are shown to the user
// and leave the current document untouched.
func (e *Editor) Open() {
	e.guard(func() {
		e.dialogs.ChooseOpenPath(func(path string, ok bool) {
			if !ok || path == "" {
				return
			}
			if err := e.ReadFile(path); err != nil {
				logger().Error("open failed", "path", path, "err", err)
				e.dialogs.ShowError(e.tr("error"), fmt.Sprintf("%s: %v", e.tr("open_failed"), err))
			}
		})
	})
}

// Save writes the document, asking for a file name the first time.
func (e *Editor) Save() {
	e.save(nil)
}

// Exit calls quit once unsaved text has been dealt with.
func (e *Editor) Exit(quit func()) {
	e.guard(quit)
}

// save reports through done whether the document was written.
func (e *Editor) save(done func(saved bool)) {
	finish := func(saved bool) {
		if done != nil {
			done(saved)
		}
	}
	write := func(path string) {
		if err := e.WriteFile(path); err != nil {
			logger().Error("save failed", "path", path, "err", err)
			e.dialogs.ShowError(e.tr("error"), fmt.Sprintf("%s: %v", e.tr("save_failed"), err))
			finish(false)
			return
		}
		e.dialogs.ShowInfo(e.tr("saved"), e.tr("saved"))
		finish(true)
	}
	if e.fileName != "" {
		write(e.fileName)
		return
	}
	e.dialogs.ChooseSavePath(func(path string, ok bool) {
		if !ok || path == "" {
			finish(false)
			return
		}
		write(path)
	})
}

// guard runs proceed directly when the buffer is empty. Otherwise it asks
// whether to save first: yes saves and proceeds after a successful save,
// no proceeds and discards, cancel does nothing.
func (e *Editor) guard(proceed func()) {
	if !e.HasGlyphs() {
		proceed()
		return
	}
	e.dialogs.ConfirmYesNoCancel(e.tr("unsaved"), e.tr("confirm_save"), func(a tate.Answer) {
		logger().Debug("unsaved changes", "answer", a.String())
		switch a {
		case tate.AnswerYes:
			e.save(func(saved bool) {
				if saved {
					proceed()
				}
			})
		case tate.AnswerNo:
			proceed()
		}
	})
}

// noDialogs is used until a host provides dialogs.
// Every question is cancelled and messages go to the log.
type noDialogs struct{}

func (noDialogs) ConfirmYesNoCancel(title, message string, done func(tate.Answer)) {
	done(tate.AnswerCancel)
}

func (noDialogs) ChooseOpenPath(done func(string, bool)) {
	done("", false)
}

func (noDialogs) ChooseSavePath(done func(string, bool)) {
	done("", false)
}

func (noDialogs) ShowError(title, message string) {
	logger().Error(message, "title", title)
}

func (noDialogs) ShowInfo(title, message string) {
	logger().Info(message, "title", title)
}
