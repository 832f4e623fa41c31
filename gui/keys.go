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
package gui

import (
	"fyne.io/fyne/v2"

	tate "github.com/timburks/tategaki/types"
)

// keyEvent converts a typed key into a commander event.
// Space is delivered as a typed rune and is not mapped here.
func keyEvent(name fyne.KeyName) (*tate.Event, bool) {
	var k tate.Key
	switch name {
	case fyne.KeyBackspace:
		k = tate.KeyBackspace
	case fyne.KeyDelete:
		k = tate.KeyDelete
	case fyne.KeyReturn, fyne.KeyEnter:
		k = tate.KeyEnter
	case fyne.KeyEscape:
		k = tate.KeyEsc
	case fyne.KeyTab:
		k = tate.KeyTab
	case fyne.KeyUp:
		k = tate.KeyArrowUp
	case fyne.KeyDown:
		k = tate.KeyArrowDown
	case fyne.KeyLeft:
		k = tate.KeyArrowLeft
	case fyne.KeyRight:
		k = tate.KeyArrowRight
	default:
		return nil, false
	}
	return &tate.Event{Type: tate.EventKey, Key: k}, true
}

func runeEvent(r rune) *tate.Event {
	return &tate.Event{Type: tate.EventKey, Ch: r}
}

// shortcutKeys are the keys pressed with the platform shortcut modifier.
// Copy, paste and cut arrive as fyne's own shortcuts.
var shortcutKeys = map[fyne.KeyName]tate.Key{
	fyne.KeyN: tate.KeyCtrlN,
	fyne.KeyO: tate.KeyCtrlO,
	fyne.KeyS: tate.KeyCtrlS,
	fyne.KeyQ: tate.KeyCtrlQ,
	fyne.KeyL: tate.KeyCtrlL,
}
