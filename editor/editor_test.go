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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tate "github.com/timburks/tategaki/types"
)

// fakeDialogs answers every question synchronously and records messages.
type fakeDialogs struct {
	answer    tate.Answer
	openPath  string
	savePath  string
	confirms  int
	errors    []string
	infos     []string
	saveAsked int
}

func (d *fakeDialogs) ConfirmYesNoCancel(title, message string, done func(tate.Answer)) {
	d.confirms++
	done(d.answer)
}

func (d *fakeDialogs) ChooseOpenPath(done func(string, bool)) {
	done(d.openPath, d.openPath != "")
}

func (d *fakeDialogs) ChooseSavePath(done func(string, bool)) {
	d.saveAsked++
	done(d.savePath, d.savePath != "")
}

func (d *fakeDialogs) ShowError(title, message string) {
	d.errors = append(d.errors, message)
}

func (d *fakeDialogs) ShowInfo(title, message string) {
	d.infos = append(d.infos, message)
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadText() (string, error) {
	return c.text, c.err
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func setup(t *testing.T, maxLines int) (*Editor, *fakeDialogs) {
	e := NewEditor(maxLines, "en")
	d := &fakeDialogs{}
	e.SetDialogs(d)
	return e, d
}

func writeTemp(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// read and write a file without changing it
func TestReadWriteInvariance(t *testing.T) {
	source := writeTemp(t, "source.txt", "静夜思\n\n床前明月光\n疑是地上霜")
	e, _ := setup(t, 25)
	require.NoError(t, e.ReadFile(source))
	assert.Equal(t, source, e.GetFileName())
	final := filepath.Join(t.TempDir(), "final.txt")
	require.NoError(t, e.WriteFile(final))
	b, err := os.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "静夜思\n\n床前明月光\n疑是地上霜", string(b))
}

func TestSaveTypedText(t *testing.T) {
	e, d := setup(t, 3)
	d.savePath = filepath.Join(t.TempDir(), "typed.txt")
	e.InsertText("ABCDE")
	e.Save()
	b, err := os.ReadFile(d.savePath)
	require.NoError(t, err)
	assert.Equal(t, "DE\nABC", string(b))
	assert.Equal(t, d.savePath, e.GetFileName())
	assert.Equal(t, []string{"File saved successfully"}, d.infos)
	// the buffer is not touched by saving
	assert.Equal(t, tate.Point{Col: 1, Row: 2}, e.GetCursor())
	// later saves reuse the file name
	e.Save()
	assert.Equal(t, 1, d.saveAsked)
}

func TestSaveCancelled(t *testing.T) {
	e, d := setup(t, 3)
	e.InsertText("AB")
	e.Save()
	assert.Equal(t, 1, d.saveAsked)
	assert.Empty(t, e.GetFileName())
	assert.Empty(t, d.infos)
	assert.Empty(t, d.errors)
}

func TestSaveFailure(t *testing.T) {
	e, d := setup(t, 3)
	d.savePath = filepath.Join(t.TempDir(), "missing", "dir", "x.txt")
	e.InsertText("AB")
	e.Save()
	require.Len(t, d.errors, 1)
	assert.Contains(t, d.errors[0], "Save failed")
	assert.Empty(t, e.GetFileName())
	assert.Equal(t, "AB", e.Text())
}

func TestOpenFailureLeavesBuffer(t *testing.T) {
	e, d := setup(t, 25)
	d.openPath = filepath.Join(t.TempDir(), "nope.txt")
	e.Open()
	require.Len(t, d.errors, 1)
	assert.Contains(t, d.errors[0], "Open failed")
	assert.Equal(t, "", e.Text())
	assert.Empty(t, e.GetFileName())
}

func TestReadFileRejectsInvalidUTF8(t *testing.T) {
	e, _ := setup(t, 25)
	e.InsertText("keep")
	path := writeTemp(t, "bad.txt", "ok\xff\xfe")
	err := e.ReadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	assert.Equal(t, "keep", e.Text())
}

func TestOpenCursorAtEndOfFirstColumn(t *testing.T) {
	e, d := setup(t, 25)
	d.openPath = writeTemp(t, "poem.txt", "春眠\n不覚暁")
	e.Open()
	assert.Empty(t, d.errors)
	assert.Equal(t, 0, d.confirms)
	assert.Equal(t, 2, e.ColumnCount())
	assert.Equal(t, tate.Point{Col: 0, Row: 3}, e.GetCursor())
}

func TestGuardCancelAbortsNew(t *testing.T) {
	e, d := setup(t, 25)
	d.answer = tate.AnswerCancel
	e.InsertText("text")
	e.New()
	assert.Equal(t, 1, d.confirms)
	assert.Equal(t, "text", e.Text())
}

func TestGuardNoDiscards(t *testing.T) {
	e, d := setup(t, 25)
	d.answer = tate.AnswerNo
	d.openPath = writeTemp(t, "other.txt", "other")
	e.InsertText("text")
	e.Open()
	assert.Equal(t, "other", e.Text())
	assert.Equal(t, 0, d.saveAsked)
}

func TestGuardYesSavesFirst(t *testing.T) {
	e, d := setup(t, 25)
	d.answer = tate.AnswerYes
	d.savePath = filepath.Join(t.TempDir(), "first.txt")
	e.InsertText("text")
	e.New()
	b, err := os.ReadFile(d.savePath)
	require.NoError(t, err)
	assert.Equal(t, "text", string(b))
	assert.Equal(t, "", e.Text())
	assert.Empty(t, e.GetFileName())
}

func TestGuardYesWithCancelledSaveAborts(t *testing.T) {
	e, d := setup(t, 25)
	d.answer = tate.AnswerYes
	e.InsertText("text")
	quit := false
	e.Exit(func() { quit = true })
	assert.False(t, quit)
	assert.Equal(t, "text", e.Text())
}

func TestExitWithoutText(t *testing.T) {
	e, d := setup(t, 25)
	quit := false
	e.Exit(func() { quit = true })
	assert.True(t, quit)
	assert.Equal(t, 0, d.confirms)
}

func TestCopyPaste(t *testing.T) {
	e, _ := setup(t, 25)
	clip := &fakeClipboard{}
	e.SetClipboard(clip)
	e.Copy()
	assert.Equal(t, "", clip.text)
	e.InsertText("山川")
	e.Copy()
	assert.Equal(t, "川", clip.text)
	assert.Equal(t, "川", e.GetPasteText())
	e.Paste()
	assert.Equal(t, "山川川", e.Text())
	clip.text = "海\n空"
	e.Paste()
	assert.Equal(t, "空\n山川川海", e.Text())
}

func TestPasteUnavailableClipboard(t *testing.T) {
	e, _ := setup(t, 25)
	e.SetClipboard(&fakeClipboard{err: errors.New("no clipboard")})
	e.InsertText("a")
	e.Paste()
	assert.Equal(t, "a", e.Text())
}

func TestPasteWithoutHostClipboard(t *testing.T) {
	e, _ := setup(t, 25)
	e.InsertText("ab")
	e.Copy()
	e.Paste()
	assert.Equal(t, "abb", e.Text())
}

func TestLocaleSwitchKeepsBuffer(t *testing.T) {
	e, _ := setup(t, 3)
	var changes []Change
	e.OnChange(func(c Change) { changes = append(changes, c) })
	e.InsertText("ABCDE")
	cursor := e.GetCursor()
	require.NoError(t, e.SetLocale("ja"))
	assert.Equal(t, "ja", e.GetLocale())
	assert.Equal(t, "Meiryo", e.FontFamily())
	assert.Equal(t, cursor, e.GetCursor())
	assert.Equal(t, "DE\nABC", e.Text())
	assert.Equal(t, ChangeLocale, changes[len(changes)-1])
	assert.Error(t, e.SetLocale("xx"))
	assert.Equal(t, "ja", e.GetLocale())
}

func TestLocalizedMessages(t *testing.T) {
	e, d := setup(t, 3)
	require.NoError(t, e.SetLocale("zh-CN"))
	d.savePath = filepath.Join(t.TempDir(), "zh.txt")
	e.InsertText("字")
	e.Save()
	assert.Equal(t, []string{"文件保存成功"}, d.infos)
}

func TestWithoutDialogsEverythingCancels(t *testing.T) {
	e := NewEditor(3, "nonexistent")
	assert.Equal(t, "en", e.GetLocale())
	e.InsertText("x")
	e.New()
	assert.Equal(t, "x", e.Text())
	e.Save()
	assert.Empty(t, e.GetFileName())
}
