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
// Package gui is the desktop host. It shows the text in a fyne window
// with a localized menu bar and routes keys through the commander.
package gui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/timburks/tategaki/caret"
	"github.com/timburks/tategaki/commander"
	"github.com/timburks/tategaki/config"
	"github.com/timburks/tategaki/editor"
	"github.com/timburks/tategaki/locale"
	tate "github.com/timburks/tategaki/types"
)

const appID = "io.github.timburks.tategaki"

func logger() *slog.Logger {
	return slog.Default().With("component", "gui")
}

// The App connects an editor and its commander to a window.
type App struct {
	app     fyne.App
	window  fyne.Window
	editor  *editor.Editor
	cmd     *commander.Commander
	cfg     *config.Config
	text    *TextCanvas
	status  *widget.Label
	blinker *caret.Blinker
}

// Run opens the main window and blocks until the application quits.
func Run(e *editor.Editor, c *commander.Commander, cfg *config.Config) {
	New(app.NewWithID(appID), e, c, cfg).Run()
}

func New(a fyne.App, e *editor.Editor, c *commander.Commander, cfg *config.Config) *App {
	g := &App{app: a, editor: e, cmd: c, cfg: cfg}
	g.window = a.NewWindow("")
	g.window.Resize(fyne.NewSize(1400, 900))

	g.text = NewTextCanvas(e.GetBuffer(), cfg.GetMetrics(), Colors{
		Background: cfg.GetBackground(),
		Separator:  cfg.GetSeparatorColor(),
		Glyph:      color.Black,
		Caret:      cfg.GetCaretColor(),
	})
	g.status = widget.NewLabel("")
	g.window.SetContent(container.NewBorder(nil, g.status, nil, nil, g.text))

	dialogs := &fyneDialogs{window: g.window, locale: e.GetLocale}
	if cfg.NativeDialogs {
		e.SetDialogs(&nativeDialogs{fyneDialogs: dialogs})
	} else {
		e.SetDialogs(dialogs)
	}
	e.SetClipboard(appClipboard{clipboard: a.Clipboard()})
	e.OnChange(g.changed)

	g.blinker = caret.NewBlinker(cfg.GetBlinkInterval(), fyne.Do)
	c.SetQuit(g.quit)
	g.window.SetCloseIntercept(func() {
		g.perform(commander.ActionExit)
	})
	g.addShortcuts()
	g.applyLocale()
	return g
}

// Run shows the window and starts the event loop.
func (g *App) Run() {
	g.blinker.Start(g.text.SetCaretVisible)
	g.window.ShowAndRun()
}

func (g *App) quit() {
	g.blinker.Stop()
	g.app.Quit()
}

func (g *App) tr(key string) string {
	return locale.Translate(g.editor.GetLocale(), key)
}

func (g *App) changed(c editor.Change) {
	switch c {
	case editor.ChangeLocale:
		g.applyLocale()
	case editor.ChangeDocument:
		g.updateTitle()
	}
	g.refresh()
}

// applyLocale relabels the menus and window and loads the locale's font.
func (g *App) applyLocale() {
	g.window.SetMainMenu(g.mainMenu())
	g.updateTitle()
	family := g.editor.FontFamily()
	g.app.Settings().SetTheme(loadTheme(g.cfg.GetFontFile(family)))
	logger().Debug("locale applied", "locale", g.editor.GetLocale(), "font", family)
}

func (g *App) updateTitle() {
	title := g.tr("title")
	if name := g.editor.GetFileName(); name != "" {
		title += " - " + name
	}
	g.window.SetTitle(title)
}

func (g *App) mainMenu() *fyne.MainMenu {
	var menus []*fyne.Menu
	for _, m := range commander.Menus(g.editor.GetLocale()) {
		items := make([]*fyne.MenuItem, 0, len(m.Items))
		for _, item := range m.Items {
			if item.Separator {
				items = append(items, fyne.NewMenuItemSeparator())
				continue
			}
			action := item.Action
			mi := fyne.NewMenuItem(item.Label, func() { g.perform(action) })
			mi.Checked = item.Checked
			mi.IsQuit = action == commander.ActionExit
			items = append(items, mi)
		}
		menus = append(menus, fyne.NewMenu(m.Title, items...))
	}
	return fyne.NewMainMenu(menus...)
}

func (g *App) addShortcuts() {
	c := g.window.Canvas()
	for name, k := range shortcutKeys {
		k := k
		c.AddShortcut(&desktop.CustomShortcut{KeyName: name, Modifier: fyne.KeyModifierShortcutDefault},
			func(fyne.Shortcut) { g.handle(&tate.Event{Type: tate.EventKey, Key: k}) })
	}
	c.AddShortcut(&fyne.ShortcutCopy{}, func(fyne.Shortcut) {
		g.handle(&tate.Event{Type: tate.EventKey, Key: tate.KeyCtrlC})
	})
	c.AddShortcut(&fyne.ShortcutPaste{}, func(fyne.Shortcut) {
		g.handle(&tate.Event{Type: tate.EventKey, Key: tate.KeyCtrlV})
	})
	c.AddShortcut(&fyne.ShortcutCut{}, func(fyne.Shortcut) {
		g.handle(&tate.Event{Type: tate.EventKey, Key: tate.KeyCtrlX})
	})
	c.SetOnTypedRune(func(r rune) {
		g.handle(runeEvent(r))
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if event, ok := keyEvent(ev.Name); ok {
			g.handle(event)
		}
	})
}

func (g *App) perform(a commander.Action) {
	if err := g.cmd.Perform(a); err != nil {
		logger().Error("menu action", "action", string(a), "err", err)
	}
	g.refresh()
}

func (g *App) handle(event *tate.Event) {
	if err := g.cmd.ProcessEvent(event); err != nil {
		logger().Error("event", "err", err)
	}
	g.blinker.Show()
	g.text.SetCaretVisible(true)
	g.refresh()
}

func (g *App) refresh() {
	line := g.cmd.GetMessage()
	if g.cmd.GetMode() == tate.ModeLisp {
		line = g.cmd.GetPrompt()
	}
	g.status.SetText(line)
	g.text.Refresh()
}
