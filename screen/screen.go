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
package screen

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/tategaki/commander"
	"github.com/timburks/tategaki/layout"
	tate "github.com/timburks/tategaki/types"
)

// Separator drawn between columns
const separator = '┊'

// The Screen draws the state of an Editor in a terminal.
type Screen struct {
	size   tate.Size // screen size
	posted chan func()
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{posted: make(chan func(), 16)}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Post queues f to run on the event loop. It never blocks;
// f is dropped if the queue is full.
func (s *Screen) Post(f func()) {
	select {
	case s.posted <- f:
	default:
	}
}

// Posted delivers the functions queued by Post.
func (s *Screen) Posted() <-chan func() {
	return s.posted
}

// Events polls the terminal on its own goroutine.
func (s *Screen) Events() <-chan *tate.Event {
	events := make(chan *tate.Event)
	go func() {
		for {
			events <- s.GetNextEvent()
		}
	}()
	return events
}

// Render draws the menu bar, the text and the two bars at the bottom.
// The caret is shown when caretVisible is set and the commander is editing.
func (s *Screen) Render(v layout.View, e tate.Editor, c tate.Commander, caretVisible bool) {
	termbox.Clear(termbox.ColorBlack, termbox.ColorWhite)
	s.size.Cols, s.size.Rows = termbox.Size()

	set := func(x, y int, ch rune, fg, bg termbox.Attribute) {
		termbox.SetCell(x, y, ch, fg, bg)
	}
	RenderMenuBar(set, e.GetLocale(), s.size.Cols)
	vp := s.textViewport()
	RenderColumns(set, v, vp, textTop)
	s.RenderInfoBar(e)
	s.RenderMessageBar(c)

	caret, ok := layout.CaretAt(v, vp, layout.CellMetrics())
	x, y := int(caret.X), int(caret.Y)+textTop
	if ok && caretVisible && c.GetMode() == tate.ModeEdit && x >= 0 && y < textTop+int(vp.Height) {
		termbox.SetCursor(x, y)
	} else {
		termbox.HideCursor()
	}
	if err := termbox.Flush(); err != nil {
		slog.Default().With("component", "screen").Error("flush", "err", err)
	}
}

// Rows above the text
const textTop = 1

// The text fills the screen between the menu bar and the two bottom bars.
func (s *Screen) textViewport() layout.Viewport {
	return layout.Viewport{
		Width:  float32(s.size.Cols),
		Height: float32(s.size.Rows - textTop - 2),
	}
}

type cellSetter func(x, y int, ch rune, fg, bg termbox.Attribute)

// RenderMenuBar draws the menus with their shortcuts on the top row.
func RenderMenuBar(set cellSetter, code string, width int) {
	line := menuLine(commander.Menus(code))
	drawText(set, 0, 0, width, line, termbox.ColorWhite, termbox.ColorBlue)
}

func menuLine(menus []commander.Menu) string {
	parts := make([]string, 0, len(menus))
	for _, menu := range menus {
		items := make([]string, 0, len(menu.Items))
		for _, item := range menu.Items {
			if item.Separator || item.Key == 0 {
				continue
			}
			items = append(items, item.Label+" ^"+string(item.Key))
		}
		if len(items) == 0 {
			// locales are cycled with a single shortcut
			items = append(items, "^L")
		}
		parts = append(parts, menu.Title+": "+strings.Join(items, " "))
	}
	return " " + strings.Join(parts, " | ")
}

// RenderColumns draws the column separators and glyphs below row top,
// right to left, clipped to the viewport.
func RenderColumns(set cellSetter, v layout.View, vp layout.Viewport, top int) {
	width, height := int(vp.Width), int(vp.Height)
	for _, p := range layout.Layout(v, vp, layout.CellMetrics()) {
		x, y := int(p.X), int(p.Y)
		switch p.Kind {
		case layout.KindSeparator:
			if x < 0 || x >= width {
				continue
			}
			for _, seg := range p.Dashes() {
				for row := int(seg.From); row < int(seg.To) && row < height; row++ {
					set(x, top+row, separator, termbox.ColorBlack, termbox.ColorWhite)
				}
			}
		case layout.KindGlyph:
			w := runewidth.RuneWidth(p.Rune)
			if w < 1 {
				w = 1
			}
			if x-w < 0 || x > width || y >= height {
				continue
			}
			set(x-w, top+y, p.Rune, termbox.ColorBlack, termbox.ColorWhite)
		}
	}
}

func (s *Screen) RenderInfoBar(e tate.Editor) {
	cursor := e.GetCursor()
	finalText := fmt.Sprintf(" %d:%d/%d ", cursor.Row, cursor.Col+1, e.ColumnCount())
	text := " tategaki - " + e.GetFileName() + " "
	for runewidth.StringWidth(text) < s.size.Cols-len(finalText) {
		text = text + " "
	}
	text += finalText
	set := func(x, y int, ch rune, fg, bg termbox.Attribute) {
		termbox.SetCell(x, y, ch, fg, bg)
	}
	drawText(set, 0, s.size.Rows-2, s.size.Cols, text, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) RenderMessageBar(c tate.Commander) {
	var line string
	switch c.GetMode() {
	case tate.ModePath, tate.ModeLisp:
		line = c.GetPrompt()
	default:
		line = c.GetMessage()
	}
	set := func(x, y int, ch rune, fg, bg termbox.Attribute) {
		termbox.SetCell(x, y, ch, fg, bg)
	}
	drawText(set, 0, s.size.Rows-1, s.size.Cols, line, termbox.ColorBlack, termbox.ColorWhite)
}

// drawText writes text from x on row y, advancing by cell width and
// stopping at the right edge. It returns the next free column.
func drawText(set cellSetter, x, y, width int, text string, fg, bg termbox.Attribute) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		set(x, y, ch, fg, bg)
		x += w
	}
	return x
}

func (s *Screen) GetNextEvent() *tate.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		return &tate.Event{
			Type: tate.EventResize,
			Size: tate.Size{Rows: event.Height, Cols: event.Width},
		}
	case termbox.EventKey:
		return &tate.Event{
			Type: tate.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}
	default:
		return &tate.Event{Type: tate.EventInterrupt}
	}
}
