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
package types

// Commander modes
const (
	ModeEdit    = 0
	ModeConfirm = 1
	ModePath    = 2
	ModeMessage = 3
	ModeLisp    = 4
	ModeQuit    = 9999
)

// Event types
const (
	EventKey       = 0
	EventResize    = 1
	EventInterrupt = 2
)

type Key int

// Keys that are not delivered as printable characters
const (
	KeyUnsupported Key = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeyTab
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyCtrlC
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlS
	KeyCtrlV
	KeyCtrlX
)

// An Event is a keyboard, resize or wakeup event delivered by a host.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Size Size
}

// A Point locates the cursor in vertical text.
// Col is the column index (0 is the rightmost column) and
// Row is the offset of the insertion point within that column.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Answers to a yes/no/cancel question
type Answer int

const (
	AnswerCancel Answer = iota
	AnswerYes
	AnswerNo
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	default:
		return "cancel"
	}
}

// Dialogs is the modal dialog capability provided by a host.
// Answers are delivered through callbacks on the host's event thread;
// a host may call them before returning or later.
type Dialogs interface {
	ConfirmYesNoCancel(title, message string, done func(Answer))
	ChooseOpenPath(done func(path string, ok bool))
	ChooseSavePath(done func(path string, ok bool))
	ShowError(title, message string)
	ShowInfo(title, message string)
}

// Clipboard is the host system clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

type Editor interface {
	GetCursor() Point
	GetFileName() string
	GetLocale() string
	SetLocale(code string) error
	ColumnCount() int
	HasGlyphs() bool

	InsertChar(c rune)
	InsertText(text string)
	BackspaceChar() rune
	Copy()
	Paste()

	Reset()
	New()
	Open()
	Save()
	Exit(quit func())

	ReadFile(path string) error
	WriteFile(path string) error
	Text() string
}

type Commander interface {
	GetMode() int
	GetMessage() string
	GetPrompt() string
	IsRunning() bool
}
