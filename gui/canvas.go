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
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/timburks/tategaki/layout"
)

// Colors of the text canvas
type Colors struct {
	Background color.Color
	Separator  color.Color
	Glyph      color.Color
	Caret      color.Color
}

// A TextCanvas draws vertical text right to left with dashed column
// separators and a caret.
type TextCanvas struct {
	widget.BaseWidget
	view         layout.View
	metrics      layout.Metrics
	colors       Colors
	caretVisible bool
	caretPlaced  bool // false until the caret has a position
	caret        *canvas.Line
}

func NewTextCanvas(v layout.View, m layout.Metrics, colors Colors) *TextCanvas {
	t := &TextCanvas{view: v, metrics: m, colors: colors, caretVisible: true}
	t.caret = canvas.NewLine(colors.Caret)
	t.caret.StrokeWidth = 2
	t.caret.Hidden = true
	t.ExtendBaseWidget(t)
	return t
}

// SetCaretVisible shows or hides the caret. Only the caret is redrawn.
func (t *TextCanvas) SetCaretVisible(visible bool) {
	if t.caretVisible == visible {
		return
	}
	t.caretVisible = visible
	t.caret.Hidden = !(visible && t.caretPlaced)
	canvas.Refresh(t.caret)
}

func (t *TextCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &textRenderer{t: t, bg: canvas.NewRectangle(t.colors.Background)}
	r.objects = []fyne.CanvasObject{r.bg}
	return r
}

type textRenderer struct {
	t       *TextCanvas
	bg      *canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *textRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *textRenderer) Destroy()                     {}

func (r *textRenderer) MinSize() fyne.Size {
	m := r.t.metrics
	return fyne.NewSize(2*m.ColumnWidth, m.TopMargin+2*m.Step())
}

func (r *textRenderer) Refresh() {
	r.Layout(r.t.Size())
	canvas.Refresh(r.t)
}

// Layout rebuilds every drawing object for the current contents.
func (r *textRenderer) Layout(size fyne.Size) {
	t := r.t
	r.bg.FillColor = t.colors.Background
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	objects := []fyne.CanvasObject{r.bg}

	vp := layout.Viewport{Width: size.Width, Height: size.Height}
	if !vp.Sized() {
		t.caretPlaced = false
		t.caret.Hidden = true
		r.objects = objects
		return
	}
	style := fyne.TextStyle{}
	for _, p := range layout.Layout(t.view, vp, t.metrics) {
		switch p.Kind {
		case layout.KindSeparator:
			for _, seg := range p.Dashes() {
				line := canvas.NewLine(t.colors.Separator)
				line.StrokeWidth = 1
				line.Position1 = fyne.NewPos(p.X, seg.From)
				line.Position2 = fyne.NewPos(p.X, seg.To)
				objects = append(objects, line)
			}
		case layout.KindGlyph:
			text := canvas.NewText(string(p.Rune), t.colors.Glyph)
			text.TextSize = t.metrics.GlyphSize
			text.TextStyle = style
			w := fyne.MeasureText(text.Text, text.TextSize, style)
			text.Resize(w)
			text.Move(fyne.NewPos(p.X-w.Width, p.Y))
			objects = append(objects, text)
		}
	}
	c, ok := layout.CaretAt(t.view, vp, t.metrics)
	t.caretPlaced = ok
	t.caret.Hidden = !(ok && t.caretVisible)
	if ok {
		t.caret.StrokeColor = t.colors.Caret
		t.caret.Position1 = fyne.NewPos(c.X, c.Y)
		t.caret.Position2 = fyne.NewPos(c.X, c.Y+c.Height)
		objects = append(objects, t.caret)
	}
	r.objects = objects
}
