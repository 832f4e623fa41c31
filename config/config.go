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
// Package config reads the tategaki settings file.
// Settings live in ~/.tategaki/config.toml. Every getter falls back to a
// default when a value is missing or unusable, so a partial file is fine.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/timburks/tategaki/caret"
	"github.com/timburks/tategaki/editor"
	"github.com/timburks/tategaki/layout"
	"github.com/timburks/tategaki/locale"
)

// Defaults
const (
	DefaultBackground     = "#f0e8d5"
	DefaultSeparatorColor = "#999999"
	DefaultCaretColor     = "#ff0000"
)

// Config mirrors the settings file.
type Config struct {
	Locale         string            `toml:"locale"`
	FontSize       int               `toml:"font_size"`
	ColumnWidth    int               `toml:"column_width"`
	LineSpacing    int               `toml:"line_spacing"`
	MaxLines       int               `toml:"max_lines"`
	BlinkInterval  string            `toml:"blink_interval"`
	Background     string            `toml:"background"`
	SeparatorColor string            `toml:"separator_color"`
	CaretColor     string            `toml:"caret_color"`
	NativeDialogs  bool              `toml:"native_dialogs"`
	LogFile        string            `toml:"log_file"`
	Fonts          map[string]string `toml:"fonts"` // font family -> font file
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tategaki")
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.toml")
}

// Load reads a settings file. A missing file gives an empty Config.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return &Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	c, err := Parse(string(data))
	if err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	return c, nil
}

// Parse reads settings from TOML text.
func Parse(text string) (*Config, error) {
	c := &Config{}
	if _, err := toml.Decode(text, c); err != nil {
		return &Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

func (c *Config) GetLocale() string {
	if locale.Valid(c.Locale) {
		return c.Locale
	}
	return locale.Default
}

func (c *Config) GetMaxLines() int {
	if c.MaxLines > 0 {
		return c.MaxLines
	}
	return editor.DefaultMaxLines
}

// GetMetrics returns desktop text metrics with configured sizes applied.
func (c *Config) GetMetrics() layout.Metrics {
	m := layout.DefaultMetrics()
	if c.FontSize > 0 {
		m.GlyphSize = float32(c.FontSize)
	}
	if c.ColumnWidth > 0 {
		m.ColumnWidth = float32(c.ColumnWidth)
	}
	if c.LineSpacing > 0 {
		m.LineSpacing = float32(c.LineSpacing)
		m.TopMargin = float32(c.LineSpacing)
	}
	return m
}

func (c *Config) GetBlinkInterval() time.Duration {
	if c.BlinkInterval != "" {
		if d, err := time.ParseDuration(c.BlinkInterval); err == nil && d > 0 {
			return d
		}
	}
	return caret.DefaultInterval
}

func (c *Config) GetBackground() color.NRGBA {
	return colorOr(c.Background, DefaultBackground)
}

func (c *Config) GetSeparatorColor() color.NRGBA {
	return colorOr(c.SeparatorColor, DefaultSeparatorColor)
}

func (c *Config) GetCaretColor() color.NRGBA {
	return colorOr(c.CaretColor, DefaultCaretColor)
}

// GetFontFile returns the font file configured for a font family.
func (c *Config) GetFontFile(family string) string {
	if c.Fonts == nil {
		return ""
	}
	return c.Fonts[family]
}

// GetLogFile returns the log file path.
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(GetConfigDir(), "tategaki.log")
}

func colorOr(hex, fallback string) color.NRGBA {
	if c, ok := ParseHexColor(hex); ok {
		return c
	}
	c, _ := ParseHexColor(fallback)
	return c
}

// ParseHexColor parses #rgb or #rrggbb.
func ParseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
