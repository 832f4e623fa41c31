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
// Package layout converts vertical text into draw commands.
// Columns are stacked leftwards from the right edge of the viewport;
// each column is a dashed separator and a top-to-bottom stack of glyphs.
// Coordinates are abstract units: pixels for the desktop window and
// character cells for the terminal.
package layout

import (
	tate "github.com/timburks/tategaki/types"
)

// Metrics describes the geometry of the text grid.
type Metrics struct {
	GlyphSize   float32 // height of one glyph
	LineSpacing float32 // gap between glyphs in a column
	ColumnWidth float32
	TopMargin   float32 // y of the first glyph
	GlyphInset  float32 // glyphs end this far left of their column line
	CaretInset  float32 // the caret sits this far left of its column line
}

// DefaultMetrics are used for the desktop window.
func DefaultMetrics() Metrics {
	return Metrics{
		GlyphSize:   28,
		LineSpacing: 10,
		ColumnWidth: 60,
		TopMargin:   10,
		GlyphInset:  5,
		CaretInset:  10,
	}
}

// CellMetrics are used for terminals, where every glyph is one cell
// high and wide glyphs take two cells.
func CellMetrics() Metrics {
	return Metrics{
		GlyphSize:   1,
		LineSpacing: 0,
		ColumnWidth: 3,
		TopMargin:   1,
		GlyphInset:  0,
		CaretInset:  2,
	}
}

// Step is the vertical distance between consecutive glyphs.
func (m Metrics) Step() float32 {
	return m.GlyphSize + m.LineSpacing
}

type Viewport struct {
	Width  float32
	Height float32
}

// Sized reports whether the host has given the viewport a size yet.
func (v Viewport) Sized() bool {
	return v.Width > 0 && v.Height > 0
}

// View is the part of a buffer that layout reads.
type View interface {
	ColumnCount() int
	ColumnRunes(i int) []rune
	Cursor() tate.Point
}

type Kind int

const (
	KindSeparator Kind = iota
	KindGlyph
)

// DashPattern is the on and off length of separator dashes.
var DashPattern = [2]float32{2, 2}

// A Primitive is one draw command.
// A separator is a vertical line at X from Y down Length units.
// A glyph is drawn with its top-right corner at (X, Y).
type Primitive struct {
	Kind   Kind
	X      float32
	Y      float32
	Length float32
	Rune   rune
	Column int
	Offset int
}

type Segment struct {
	From float32
	To   float32
}

// Dashes splits a separator into the segments that are drawn.
func (p Primitive) Dashes() []Segment {
	if p.Kind != KindSeparator || p.Length <= 0 {
		return nil
	}
	on, off := DashPattern[0], DashPattern[1]
	segments := make([]Segment, 0, int(p.Length/(on+off))+1)
	for y := p.Y; y < p.Y+p.Length; y += on + off {
		end := y + on
		if end > p.Y+p.Length {
			end = p.Y + p.Length
		}
		segments = append(segments, Segment{From: y, To: end})
	}
	return segments
}

// ColumnX is the x coordinate of the line of column i.
func ColumnX(i int, width float32, m Metrics) float32 {
	return width - float32(i+1)*m.ColumnWidth
}

// Layout returns the draw commands for every column of v.
func Layout(v View, vp Viewport, m Metrics) []Primitive {
	primitives := make([]Primitive, 0, v.ColumnCount()*8)
	for i := 0; i < v.ColumnCount(); i++ {
		x := ColumnX(i, vp.Width, m)
		primitives = append(primitives, Primitive{
			Kind:   KindSeparator,
			X:      x,
			Length: vp.Height,
			Column: i,
		})
		y := m.TopMargin
		for j, r := range v.ColumnRunes(i) {
			primitives = append(primitives, Primitive{
				Kind:   KindGlyph,
				X:      x - m.GlyphInset,
				Y:      y,
				Rune:   r,
				Column: i,
				Offset: j,
			})
			y += m.Step()
		}
	}
	return primitives
}
