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
)

// A MenuItem is one entry of a menu. Separator items have no action.
type MenuItem struct {
	Action    Action
	Label     string
	Shortcut  string // shortcut as shown to the user, e.g. "Ctrl+N"
	Key       rune   // key pressed with Ctrl, 0 for none
	Checked   bool
	Separator bool
}

type Menu struct {
	Title string
	Items []MenuItem
}

// Menus returns the menu bar labelled in the locale code.
// The Language menu lists every locale under its own name and
// checks the current one.
func Menus(code string) []Menu {
	tr := func(key string) string {
		return locale.Translate(code, key)
	}
	item := func(a Action, key string, k rune) MenuItem {
		m := MenuItem{Action: a, Label: tr(key), Key: k}
		if k != 0 {
			m.Shortcut = "Ctrl+" + string(k)
		}
		return m
	}
	file := Menu{
		Title: tr("file"),
		Items: []MenuItem{
			item(ActionNew, "new", 'N'),
			item(ActionOpen, "open", 'O'),
			item(ActionSave, "save", 'S'),
			{Separator: true},
			item(ActionExit, "exit", 'Q'),
		},
	}
	edit := Menu{
		Title: tr("edit"),
		Items: []MenuItem{
			item(ActionCopy, "copy", 'C'),
			item(ActionPaste, "paste", 'V'),
		},
	}
	language := Menu{Title: tr("language")}
	for _, c := range locale.Codes() {
		language.Items = append(language.Items, MenuItem{
			Action:  LocaleAction(c),
			Label:   locale.Name(c),
			Checked: c == code,
		})
	}
	return []Menu{file, edit, language}
}
