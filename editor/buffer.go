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
	"strings"
	"unicode"

	tate "github.com/timburks/tategaki/types"
)

// DefaultMaxLines is the number of characters that fit in a column.
const DefaultMaxLines = 25

// A Buffer holds vertical text as a list of columns.
// Column 0 is the rightmost column on screen and higher indices move left.
// A buffer always has at least one column, and the cursor always points
// into an existing column at an offset no greater than its length.
type Buffer struct {
	columns  []*Column
	cursor   tate.Point // Col is the active column, Row the offset within it
	maxLines int
}

func NewBuffer(maxLines int) *Buffer {
	if maxLines < 1 {
		maxLines = DefaultMaxLines
	}
	b := &Buffer{maxLines: maxLines}
	b.Reset()
	return b
}

// Reset replaces the contents with a single empty column.
func (b *Buffer) Reset() {
	b.columns = []*Column{NewColumn("")}
	b.cursor = tate.Point{}
}

func (b *Buffer) MaxLines() int {
	return b.maxLines
}

func (b *Buffer) Cursor() tate.Point {
	return b.cursor
}

func (b *Buffer) ColumnCount() int {
	return len(b.columns)
}

// Column returns column i or nil if it does not exist.
func (b *Buffer) Column(i int) *Column {
	if i < 0 || i >= len(b.columns) {
		return nil
	}
	return b.columns[i]
}

func (b *Buffer) active() *Column {
	return b.columns[b.cursor.Col]
}

// HasGlyphs reports whether any column holds text.
func (b *Buffer) HasGlyphs() bool {
	for _, c := range b.columns {
		if c.Length() > 0 {
			return true
		}
	}
	return false
}

// RuneBeforeCursor returns the character just above the cursor.
func (b *Buffer) RuneBeforeCursor() (rune, bool) {
	if b.cursor.Row == 0 {
		return 0, false
	}
	return b.active().RuneAt(b.cursor.Row - 1), true
}

// InsertChar inserts c at the cursor. When the active column fills up,
// a new column is opened to its left and receives the cursor.
// A column that was loaded longer than the limit keeps all of its text.
func (b *Buffer) InsertChar(c rune) {
	before := b.active().Length()
	b.active().InsertChar(b.cursor.Row, c)
	b.cursor.Row++
	if before > b.maxLines {
		b.openColumn(NewColumn(""))
		return
	}
	if b.active().Length() >= b.maxLines {
		// a tail only exists when a full column was extended
		tail := b.active().Split(b.maxLines)
		offset := b.cursor.Row - b.maxLines
		if offset < 0 {
			offset = 0
		}
		b.openColumn(tail)
		b.cursor.Row = offset
	}
}

// InsertText inserts each character of text in order.
// Newlines close the active column; other control characters are skipped.
func (b *Buffer) InsertText(text string) {
	for _, c := range text {
		switch {
		case c == '\n':
			b.openColumn(NewColumn(""))
		case unicode.IsControl(c):
			continue
		default:
			b.InsertChar(c)
		}
	}
}

// openColumn inserts c to the left of the active column and activates it.
func (b *Buffer) openColumn(c *Column) {
	i := b.cursor.Col + 1
	b.columns = append(b.columns, nil)
	copy(b.columns[i+1:], b.columns[i:])
	b.columns[i] = c
	b.cursor = tate.Point{Col: i, Row: 0}
}

// Backspace deletes the character before the cursor, or moves the cursor
// to the end of the previous column when it is at the top of a column.
// Empty columns are removed afterwards. It returns the deleted character.
func (b *Buffer) Backspace() rune {
	var deleted rune
	if b.cursor.Row > 0 {
		deleted = b.active().DeleteChar(b.cursor.Row - 1)
		b.cursor.Row--
	} else if b.cursor.Col > 0 {
		b.cursor.Col--
		b.cursor.Row = b.active().Length()
	}
	b.prune()
	return deleted
}

// prune removes empty columns while keeping at least one,
// and keeps the cursor on the same column when it survives.
func (b *Buffer) prune() {
	active := b.active()
	index := 0
	found := false
	columns := make([]*Column, 0, len(b.columns))
	for i, c := range b.columns {
		if c.Length() == 0 {
			continue
		}
		if i < b.cursor.Col {
			index++
		}
		if c == active {
			found = true
		}
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		b.Reset()
		return
	}
	b.columns = columns
	switch {
	case found:
		b.cursor.Col = index
	case index < len(columns):
		// the column that slid into the removed column's place
		b.cursor = tate.Point{Col: index, Row: 0}
	default:
		index = len(columns) - 1
		b.cursor = tate.Point{Col: index, Row: columns[index].Length()}
	}
	if b.cursor.Row > b.active().Length() {
		b.cursor.Row = b.active().Length()
	}
}

// LoadLines replaces the contents with one column per line.
// The last line becomes column 0, the rightmost. Lines are never re-split,
// so Lines returns exactly what was loaded.
func (b *Buffer) LoadLines(lines []string) {
	if len(lines) == 0 {
		b.Reset()
		return
	}
	b.columns = make([]*Column, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		b.columns = append(b.columns, NewColumn(lines[i]))
	}
	b.cursor = tate.Point{Col: 0, Row: b.columns[0].Length()}
}

// Lines returns the text in reading order, one line per column.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, len(b.columns))
	for i := len(b.columns) - 1; i >= 0; i-- {
		lines = append(lines, b.columns[i].DisplayText())
	}
	return lines
}

// LoadBytes splits text on line breaks and loads the lines.
func (b *Buffer) LoadBytes(bytes []byte) {
	s := strings.ReplaceAll(string(bytes), "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b.LoadLines(strings.Split(s, "\n"))
}

func (b *Buffer) Bytes() []byte {
	return []byte(strings.Join(b.Lines(), "\n"))
}

// ColumnRunes returns the characters of column i.
func (b *Buffer) ColumnRunes(i int) []rune {
	if c := b.Column(i); c != nil {
		return c.Text
	}
	return nil
}
