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
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	sqdialog "github.com/sqweek/dialog"

	"github.com/timburks/tategaki/locale"
	tate "github.com/timburks/tategaki/types"
)

// fyneDialogs shows the editor's dialogs inside the window.
type fyneDialogs struct {
	window fyne.Window
	locale func() string
}

func (d *fyneDialogs) tr(key string) string {
	return locale.Translate(d.locale(), key)
}

func (d *fyneDialogs) ConfirmYesNoCancel(title, message string, done func(tate.Answer)) {
	answered := false
	var dlg *dialog.CustomDialog
	answer := func(a tate.Answer) func() {
		return func() {
			if answered {
				return
			}
			answered = true
			dlg.Hide()
			done(a)
		}
	}
	dlg = dialog.NewCustomWithoutButtons(title, widget.NewLabel(message), d.window)
	yes := widget.NewButton(d.tr("yes"), answer(tate.AnswerYes))
	yes.Importance = widget.HighImportance
	dlg.SetButtons([]fyne.CanvasObject{
		yes,
		widget.NewButton(d.tr("no"), answer(tate.AnswerNo)),
		widget.NewButton(d.tr("cancel"), answer(tate.AnswerCancel)),
	})
	dlg.SetOnClosed(answer(tate.AnswerCancel))
	dlg.Show()
}

func (d *fyneDialogs) ChooseOpenPath(done func(path string, ok bool)) {
	fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			done("", false)
			return
		}
		path := r.URI().Path()
		r.Close()
		done(path, true)
	}, d.window)
	fd.SetFilter(textFilter())
	fd.Show()
}

func (d *fyneDialogs) ChooseSavePath(done func(path string, ok bool)) {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			done("", false)
			return
		}
		path := w.URI().Path()
		w.Close()
		done(path, true)
	}, d.window)
	fd.SetFilter(textFilter())
	fd.SetFileName("untitled.txt")
	fd.Show()
}

// textFilter limits the in-window file dialogs to text files.
func textFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter([]string{".txt"})
}

// ShowError uses fyne's error dialog, which carries its own title.
func (d *fyneDialogs) ShowError(title, message string) {
	logger().Debug("error dialog", "title", title)
	dialog.ShowError(errors.New(message), d.window)
}

func (d *fyneDialogs) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

// nativeDialogs uses the operating system's file and message dialogs.
// They block, so they run on their own goroutine and answer on the UI
// thread. Three-way questions stay in the window.
type nativeDialogs struct {
	*fyneDialogs
}

func (d *nativeDialogs) choose(load bool, done func(path string, ok bool)) {
	title := d.tr("save")
	if load {
		title = d.tr("open")
	}
	b := sqdialog.File().Title(title).
		Filter(d.tr("text_files"), "txt").
		Filter(d.tr("all_files"), "*")
	go func() {
		var path string
		var err error
		if load {
			path, err = b.Load()
		} else {
			path, err = b.Save()
		}
		if err != nil && !errors.Is(err, sqdialog.ErrCancelled) {
			logger().Error("native file dialog", "err", err)
		}
		fyne.Do(func() {
			done(path, err == nil && path != "")
		})
	}()
}

func (d *nativeDialogs) ChooseOpenPath(done func(path string, ok bool)) {
	d.choose(true, done)
}

func (d *nativeDialogs) ChooseSavePath(done func(path string, ok bool)) {
	d.choose(false, done)
}

func (d *nativeDialogs) ShowError(title, message string) {
	go sqdialog.Message("%s", message).Title(title).Error()
}

func (d *nativeDialogs) ShowInfo(title, message string) {
	go sqdialog.Message("%s", message).Title(title).Info()
}
