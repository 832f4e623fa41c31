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
	"fyne.io/fyne/v2/theme"
)

// fontTheme is the default theme with the text font replaced by the
// font file configured for the current locale.
type fontTheme struct {
	font fyne.Resource
}

var _ fyne.Theme = (*fontTheme)(nil)

// loadTheme returns a theme drawing text with the font at path.
// An empty path or an unreadable file gives the default theme.
func loadTheme(path string) fyne.Theme {
	if path == "" {
		return theme.DefaultTheme()
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		logger().Warn("font not loaded", "path", path, "err", err)
		return theme.DefaultTheme()
	}
	return &fontTheme{font: res}
}

func (t *fontTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(n, v)
}

func (t *fontTheme) Font(s fyne.TextStyle) fyne.Resource {
	if s.Monospace || s.Symbol {
		return theme.DefaultTheme().Font(s)
	}
	return t.font
}

func (t *fontTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *fontTheme) Size(n fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(n)
}
