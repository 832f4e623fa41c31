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
package screen

import (
	"github.com/nsf/termbox-go"

	tate "github.com/timburks/tategaki/types"
)

func key(k termbox.Key) tate.Key {
	switch k {
	case termbox.KeyArrowDown:
		return tate.KeyArrowDown
	case termbox.KeyArrowLeft:
		return tate.KeyArrowLeft
	case termbox.KeyArrowRight:
		return tate.KeyArrowRight
	case termbox.KeyArrowUp:
		return tate.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return tate.KeyBackspace
	case termbox.KeyDelete:
		return tate.KeyDelete
	case termbox.KeyCtrlC:
		return tate.KeyCtrlC
	case termbox.KeyCtrlL:
		return tate.KeyCtrlL
	case termbox.KeyCtrlN:
		return tate.KeyCtrlN
	case termbox.KeyCtrlO:
		return tate.KeyCtrlO
	case termbox.KeyCtrlQ:
		return tate.KeyCtrlQ
	case termbox.KeyCtrlS:
		return tate.KeyCtrlS
	case termbox.KeyCtrlV:
		return tate.KeyCtrlV
	case termbox.KeyCtrlX:
		return tate.KeyCtrlX
	case termbox.KeyEnter:
		return tate.KeyEnter
	case termbox.KeyEsc:
		return tate.KeyEsc
	case termbox.KeySpace:
		return tate.KeySpace
	case termbox.KeyTab:
		return tate.KeyTab
	default:
		return tate.KeyUnsupported
	}
}
