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
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/tategaki/commander"
	"github.com/timburks/tategaki/config"
	"github.com/timburks/tategaki/editor"
	"github.com/timburks/tategaki/layout"
	tate "github.com/timburks/tategaki/types"
)

func setup(t *testing.T) (*App, *editor.Editor) {
	a := test.NewTempApp(t)
	e := editor.NewEditor(25, "en")
	c := commander.NewCommander(e)
	return New(a, e, c, &config.Config{}), e
}

func TestKeyEvent(t *testing.T) {
	event, ok := keyEvent(fyne.KeyBackspace)
	require.True(t, ok)
	assert.Equal(t, tate.KeyBackspace, event.Key)
	event, ok = keyEvent(fyne.KeyReturn)
	require.True(t, ok)
	assert.Equal(t, tate.KeyEnter, event.Key)
	_, ok = keyEvent(fyne.KeySpace)
	assert.False(t, ok)
	assert.Equal(t, '山', runeEvent('山').Ch)
}

func TestTextCanvasLayout(t *testing.T) {
	test.NewTempApp(t)
	b := editor.NewBuffer(25)
	b.InsertText("山川")
	tc := NewTextCanvas(b, layout.DefaultMetrics(), Colors{})
	r := tc.CreateRenderer()
	r.Layout(fyne.NewSize(400, 300))

	var texts []*canvas.Text
	var lines []*canvas.Line
	for _, o := range r.Objects() {
		switch o := o.(type) {
		case *canvas.Text:
			texts = append(texts, o)
		case *canvas.Line:
			lines = append(lines, o)
		}
	}
	require.Len(t, texts, 2)
	assert.Equal(t, "山", texts[0].Text)
	assert.InDelta(t, 335, texts[0].Position().X+texts[0].Size().Width, 0.01)
	assert.InDelta(t, 10, texts[0].Position().Y, 0.01)
	assert.InDelta(t, 48, texts[1].Position().Y, 0.01)

	// dashes of the one separator and the caret
	require.Len(t, lines, 75+1)
	caretLine := lines[len(lines)-1]
	assert.InDelta(t, 330, caretLine.Position1.X, 0.01)
	assert.InDelta(t, 86, caretLine.Position1.Y, 0.01)
	// the caret covers the slot of the next glyph
	assert.InDelta(t, 86+28, caretLine.Position2.Y, 0.01)

	assert.Same(t, tc.caret, caretLine)
	assert.False(t, caretLine.Hidden)

	// a blink hides the caret without rebuilding the glyphs
	objects := r.Objects()
	tc.SetCaretVisible(false)
	assert.True(t, caretLine.Hidden)
	assert.Equal(t, objects, r.Objects())
	assert.Same(t, texts[0], r.Objects()[1+75])

	// a relayout keeps the caret hidden until the next blink
	r.Layout(fyne.NewSize(400, 300))
	assert.Len(t, r.Objects(), 1+75+2+1)
	assert.True(t, tc.caret.Hidden)
	tc.SetCaretVisible(true)
	assert.False(t, tc.caret.Hidden)
}

func TestTextCanvasUnsized(t *testing.T) {
	test.NewTempApp(t)
	tc := NewTextCanvas(editor.NewBuffer(25), layout.DefaultMetrics(), Colors{})
	r := tc.CreateRenderer()
	r.Layout(fyne.NewSize(0, 0))
	assert.Len(t, r.Objects(), 1)
	tc.SetCaretVisible(false)
	tc.SetCaretVisible(true)
	assert.True(t, tc.caret.Hidden)
}

func TestTyping(t *testing.T) {
	g, e := setup(t)
	for _, r := range "山川" {
		g.handle(runeEvent(r))
	}
	event, _ := keyEvent(fyne.KeyReturn)
	g.handle(event)
	g.handle(runeEvent('海'))
	assert.Equal(t, "海\n山川", e.Text())
}

func TestLispStatus(t *testing.T) {
	g, _ := setup(t)
	g.handle(&tate.Event{Type: tate.EventKey, Key: tate.KeyCtrlX})
	assert.Equal(t, "(", g.status.Text)
	for _, r := range "tate-columns)" {
		g.handle(runeEvent(r))
	}
	event, _ := keyEvent(fyne.KeyReturn)
	g.handle(event)
	assert.Equal(t, "1", g.status.Text)
}

func TestMenusFollowLocale(t *testing.T) {
	g, e := setup(t)
	menu := g.mainMenu()
	require.Len(t, menu.Items, 3)
	assert.Equal(t, "File", menu.Items[0].Label)
	assert.True(t, menu.Items[0].Items[3].IsSeparator)
	assert.True(t, menu.Items[0].Items[4].IsQuit)
	assert.True(t, menu.Items[2].Items[0].Checked)

	g.perform(commander.LocaleAction("ja"))
	assert.Equal(t, "ja", e.GetLocale())
	menu = g.mainMenu()
	assert.Equal(t, "ファイル", menu.Items[0].Label)
	assert.True(t, menu.Items[2].Items[3].Checked)
	assert.Equal(t, "縦書きテキストエディタ", g.window.Title())
}

func TestLoadThemeFallback(t *testing.T) {
	assert.Equal(t, theme.DefaultTheme(), loadTheme(""))
	assert.Equal(t, theme.DefaultTheme(), loadTheme("/nonexistent/font.ttf"))
}

// openFrom answers the open dialog with a fixed path.
type openFrom struct {
	*fyneDialogs
	path string
}

func (d openFrom) ChooseOpenPath(done func(string, bool)) {
	done(d.path, true)
}

func TestOpenFailureShowsErrorDialog(t *testing.T) {
	g, e := setup(t)
	e.SetDialogs(openFrom{
		fyneDialogs: &fyneDialogs{window: g.window, locale: e.GetLocale},
		path:        filepath.Join(t.TempDir(), "missing.txt"),
	})
	e.Open()

	top := g.window.Canvas().Overlays().Top()
	require.NotNil(t, top)
	var message string
	errorIcon := false
	for _, o := range test.LaidOutObjects(top) {
		switch o := o.(type) {
		case *widget.Label:
			if strings.Contains(o.Text, "Open failed") {
				message = o.Text
			}
		case *canvas.Image:
			if o.Resource != nil && o.Resource.Name() == theme.ErrorIcon().Name() {
				errorIcon = true
			}
		case *widget.Icon:
			if o.Resource != nil && o.Resource.Name() == theme.ErrorIcon().Name() {
				errorIcon = true
			}
		}
	}
	assert.Contains(t, message, "missing.txt")
	assert.True(t, errorIcon)
	assert.False(t, e.HasGlyphs())
}

func TestTextFilter(t *testing.T) {
	f := textFilter()
	assert.True(t, f.Matches(storage.NewFileURI("/tmp/poem.txt")))
	assert.False(t, f.Matches(storage.NewFileURI("/tmp/poem.md")))
}
