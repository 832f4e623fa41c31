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
package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/tategaki/editor"
)

func glyphs(primitives []Primitive) []Primitive {
	g := make([]Primitive, 0)
	for _, p := range primitives {
		if p.Kind == KindGlyph {
			g = append(g, p)
		}
	}
	return g
}

func TestLayoutColumnsRightToLeft(t *testing.T) {
	b := editor.NewBuffer(3)
	b.InsertText("ABCDE")
	vp := Viewport{Width: 1400, Height: 900}
	primitives := Layout(b, vp, DefaultMetrics())

	require.Len(t, primitives, 7)
	assert.Equal(t, Primitive{Kind: KindSeparator, X: 1340, Length: 900}, primitives[0])
	assert.Equal(t, Primitive{Kind: KindSeparator, X: 1280, Length: 900, Column: 1}, primitives[4])

	g := glyphs(primitives)
	require.Len(t, g, 5)
	assert.Equal(t, 'A', g[0].Rune)
	assert.Equal(t, float32(1335), g[0].X)
	assert.Equal(t, float32(10), g[0].Y)
	assert.Equal(t, float32(48), g[1].Y)
	assert.Equal(t, float32(86), g[2].Y)
	assert.Equal(t, 'D', g[3].Rune)
	assert.Equal(t, float32(1275), g[3].X)
	assert.Equal(t, float32(10), g[3].Y)
	assert.Equal(t, 1, g[4].Column)
	assert.Equal(t, 1, g[4].Offset)
}

func TestLayoutEmptyBuffer(t *testing.T) {
	b := editor.NewBuffer(3)
	primitives := Layout(b, Viewport{Width: 200, Height: 100}, DefaultMetrics())
	require.Len(t, primitives, 1)
	assert.Equal(t, KindSeparator, primitives[0].Kind)
	assert.Equal(t, float32(140), primitives[0].X)
}

func TestCaretPosition(t *testing.T) {
	b := editor.NewBuffer(3)
	b.InsertText("ABCDE")
	caret, ok := CaretAt(b, Viewport{Width: 1400, Height: 900}, DefaultMetrics())
	require.True(t, ok)
	assert.Equal(t, float32(1270), caret.X)
	assert.Equal(t, float32(10+2*38), caret.Y)
	assert.Equal(t, float32(28), caret.Height)
	assert.Equal(t, 1, caret.Column)
	assert.Equal(t, 2, caret.Offset)
}

func TestCaretHiddenUntilSized(t *testing.T) {
	b := editor.NewBuffer(3)
	_, ok := CaretAt(b, Viewport{}, DefaultMetrics())
	assert.False(t, ok)
	_, ok = CaretAt(b, Viewport{Width: 10}, DefaultMetrics())
	assert.False(t, ok)
}

func TestCellMetrics(t *testing.T) {
	b := editor.NewBuffer(25)
	b.InsertText("縦書")
	m := CellMetrics()
	vp := Viewport{Width: 80, Height: 24}
	g := glyphs(Layout(b, vp, m))
	require.Len(t, g, 2)
	assert.Equal(t, float32(77), g[0].X)
	assert.Equal(t, float32(1), g[0].Y)
	assert.Equal(t, float32(2), g[1].Y)
	caret, ok := CaretAt(b, vp, m)
	require.True(t, ok)
	assert.Equal(t, float32(75), caret.X)
	assert.Equal(t, float32(3), caret.Y)
}

func TestDashes(t *testing.T) {
	p := Primitive{Kind: KindSeparator, X: 5, Length: 9}
	assert.Equal(t, []Segment{{0, 2}, {4, 6}, {8, 9}}, p.Dashes())
	assert.Nil(t, Primitive{Kind: KindGlyph}.Dashes())
}
