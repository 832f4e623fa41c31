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

// A column of text in the editor, read from top to bottom
type Column struct {
	Text []rune
}

func NewColumn(text string) *Column {
	return &Column{Text: []rune(text)}
}

func (c *Column) DisplayText() string {
	return string(c.Text)
}

func (c *Column) Length() int {
	return len(c.Text)
}

func (c *Column) InsertChar(offset int, r rune) {
	if offset > len(c.Text) {
		offset = len(c.Text)
	}
	if offset < 0 {
		offset = 0
	}
	text := make([]rune, 0, len(c.Text)+1)
	text = append(text, c.Text[0:offset]...)
	text = append(text, r)
	text = append(text, c.Text[offset:]...)
	c.Text = text
}

// delete character at offset and return the deleted character
func (c *Column) DeleteChar(offset int) rune {
	if offset < 0 || offset >= len(c.Text) {
		return 0
	}
	r := c.Text[offset]
	c.Text = append(c.Text[0:offset], c.Text[offset+1:]...)
	return r
}

// returns the character at offset or zero if there is none
func (c *Column) RuneAt(offset int) rune {
	if offset < 0 || offset >= len(c.Text) {
		return 0
	}
	return c.Text[offset]
}

// splits column at offset, return a new column containing the remaining text.
func (c *Column) Split(offset int) *Column {
	if offset >= len(c.Text) {
		return &Column{Text: []rune{}}
	}
	after := append([]rune{}, c.Text[offset:]...)
	c.Text = c.Text[0:offset]
	return &Column{Text: after}
}
