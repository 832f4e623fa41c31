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
	"log/slog"

	"github.com/timburks/tategaki/locale"
	tate "github.com/timburks/tategaki/types"
)

// A Change tells listeners what part of the editor was modified.
type Change int

const (
	ChangeText     Change = iota // buffer contents or cursor
	ChangeLocale                 // menu labels and font family
	ChangeDocument               // file name
)

// The Editor owns one document: its buffer, file name, clipboard and
// interface locale. Hosts supply dialogs and the system clipboard and
// redraw when they are notified of changes.
type Editor struct {
	buffer    *Buffer
	fileName  string         // empty until the document is saved or opened
	pasteText string         // used to copy and paste
	locale    string         // locale code for interface strings
	dialogs   tate.Dialogs   // modal dialogs of the host
	clipboard tate.Clipboard // system clipboard of the host, may be nil
	listeners []func(Change)
}

func NewEditor(maxLines int, localeCode string) *Editor {
	e := &Editor{}
	e.buffer = NewBuffer(maxLines)
	e.locale = locale.Default
	if locale.Valid(localeCode) {
		e.locale = localeCode
	}
	e.dialogs = noDialogs{}
	return e
}

func logger() *slog.Logger {
	return slog.Default().With("component", "editor")
}

func (e *Editor) SetDialogs(d tate.Dialogs) {
	if d == nil {
		d = noDialogs{}
	}
	e.dialogs = d
}

func (e *Editor) SetClipboard(c tate.Clipboard) {
	e.clipboard = c
}

// OnChange registers a function that is called after every modification.
func (e *Editor) OnChange(f func(Change)) {
	e.listeners = append(e.listeners, f)
}

func (e *Editor) notify(c Change) {
	for _, f := range e.listeners {
		f(c)
	}
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetCursor() tate.Point {
	return e.buffer.Cursor()
}

func (e *Editor) ColumnCount() int {
	return e.buffer.ColumnCount()
}

func (e *Editor) HasGlyphs() bool {
	return e.buffer.HasGlyphs()
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) setFileName(name string) {
	e.fileName = name
	e.notify(ChangeDocument)
}

func (e *Editor) GetLocale() string {
	return e.locale
}

// SetLocale switches interface strings and font family.
// The buffer and cursor are left alone.
func (e *Editor) SetLocale(code string) error {
	if err := locale.Check(code); err != nil {
		return err
	}
	e.locale = code
	logger().Info("locale changed", "locale", code, "font", locale.FontFamily(code))
	e.notify(ChangeLocale)
	return nil
}

// FontFamily is the font family that glyphs are rendered with.
func (e *Editor) FontFamily() string {
	return locale.FontFamily(e.locale)
}

func (e *Editor) tr(key string) string {
	return locale.Translate(e.locale, key)
}

func (e *Editor) InsertChar(c rune) {
	e.buffer.InsertChar(c)
	e.notify(ChangeText)
}

func (e *Editor) InsertText(text string) {
	e.buffer.InsertText(text)
	e.notify(ChangeText)
}

func (e *Editor) BackspaceChar() rune {
	c := e.buffer.Backspace()
	e.notify(ChangeText)
	return c
}

// Reset empties the buffer and forgets the file name.
func (e *Editor) Reset() {
	e.buffer.Reset()
	e.fileName = ""
	e.notify(ChangeDocument)
	e.notify(ChangeText)
}

// Copy puts the character before the cursor on the clipboard.
func (e *Editor) Copy() {
	c, ok := e.buffer.RuneBeforeCursor()
	if !ok {
		return
	}
	e.pasteText = string(c)
	if e.clipboard != nil {
		if err := e.clipboard.WriteText(e.pasteText); err != nil {
			logger().Debug("clipboard write failed", "err", err)
		}
	}
}

// Paste inserts the clipboard text at the cursor.
// An unavailable system clipboard makes this a no-op.
func (e *Editor) Paste() {
	text := e.pasteText
	if e.clipboard != nil {
		var err error
		text, err = e.clipboard.ReadText()
		if err != nil {
			logger().Debug("clipboard read failed", "err", err)
			return
		}
	}
	if text == "" {
		return
	}
	e.InsertText(text)
}

// GetPasteText returns the process-local clipboard.
func (e *Editor) GetPasteText() string {
	return e.pasteText
}
