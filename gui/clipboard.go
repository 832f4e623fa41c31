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
)

// appClipboard is the system clipboard reached through fyne.
type appClipboard struct {
	clipboard fyne.Clipboard
}

func (c appClipboard) ReadText() (string, error) {
	return c.clipboard.Content(), nil
}

func (c appClipboard) WriteText(text string) error {
	c.clipboard.SetContent(text)
	return nil
}
