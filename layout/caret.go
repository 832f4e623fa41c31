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

// A Caret is a vertical mark of Height running down from (X, Y).
// Y is the top of the slot where the next glyph would be placed.
type Caret struct {
	X      float32
	Y      float32
	Height float32
	Column int
	Offset int
}

// CaretAt places the caret for the cursor of v.
// It reports false until the viewport has a size.
func CaretAt(v View, vp Viewport, m Metrics) (Caret, bool) {
	if !vp.Sized() || v.ColumnCount() == 0 {
		return Caret{}, false
	}
	cursor := v.Cursor()
	return Caret{
		X:      ColumnX(cursor.Col, vp.Width, m) - m.CaretInset,
		Y:      m.TopMargin + float32(cursor.Row)*m.Step(),
		Height: m.GlyphSize,
		Column: cursor.Col,
		Offset: cursor.Row,
	}, true
}
