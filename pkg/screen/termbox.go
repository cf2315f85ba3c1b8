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

	gott "github.com/timburks/noted/pkg/types"
)

// TermboxDriver draws with termbox. Termbox does not report modifiers on
// arrow keys, so selection and word jumps are unavailable with it.
type TermboxDriver struct{}

func NewTermboxDriver() *TermboxDriver {
	return &TermboxDriver{}
}

func (d *TermboxDriver) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputAlt)
	return nil
}

func (d *TermboxDriver) Close() {
	termbox.Close()
}

func (d *TermboxDriver) Size() (int, int) {
	return termbox.Size()
}

func (d *TermboxDriver) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// in 256-color mode termbox numbers palette entries from one
func termboxColor(c gott.Color) termbox.Attribute {
	if c == gott.ColorDefault {
		return termbox.ColorDefault
	}
	return termbox.Attribute(c + 1)
}

func (d *TermboxDriver) SetCell(col, row int, c rune, style Style) {
	fg, bg := termboxColor(style.Fg), termboxColor(style.Bg)
	if style.Reverse {
		fg |= termbox.AttrReverse
		bg |= termbox.AttrReverse
	}
	termbox.SetCell(col, row, c, fg, bg)
}

func (d *TermboxDriver) SetCursor(col, row int) {
	termbox.SetCursor(col, row)
}

func (d *TermboxDriver) HideCursor() {
	termbox.HideCursor()
}

func (d *TermboxDriver) Flush() {
	termbox.Flush()
}

func (d *TermboxDriver) Interrupt() {
	termbox.Interrupt()
}

func (d *TermboxDriver) PollEvent() *gott.Event {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			return termboxKeyEvent(event)
		case termbox.EventResize:
			termbox.Flush()
			return &gott.Event{Type: gott.EventResize}
		case termbox.EventInterrupt:
			return &gott.Event{Type: gott.EventInterrupt}
		case termbox.EventError:
			return nil
		}
	}
}

func termboxKeyEvent(event termbox.Event) *gott.Event {
	e := &gott.Event{Type: gott.EventKey}
	if event.Mod&termbox.ModAlt != 0 {
		e.Mod |= gott.ModAlt
	}
	if event.Key == 0 {
		e.Ch = event.Ch
		return e
	}
	switch event.Key {
	case termbox.KeyArrowDown:
		e.Key = gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		e.Key = gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		e.Key = gott.KeyArrowRight
	case termbox.KeyArrowUp:
		e.Key = gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		e.Key = gott.KeyBackspace
	case termbox.KeyDelete:
		e.Key = gott.KeyDelete
	case termbox.KeyEnd:
		e.Key = gott.KeyEnd
	case termbox.KeyEnter:
		e.Key = gott.KeyEnter
	case termbox.KeyEsc:
		e.Key = gott.KeyEsc
	case termbox.KeyHome:
		e.Key = gott.KeyHome
	case termbox.KeyPgdn:
		e.Key = gott.KeyPgdn
	case termbox.KeyPgup:
		e.Key = gott.KeyPgup
	case termbox.KeySpace:
		e.Ch = ' '
	case termbox.KeyTab:
		e.Key = gott.KeyTab
	default:
		if event.Key >= termbox.KeyCtrlA && event.Key <= termbox.KeyCtrlZ {
			e.Ch = 'a' + rune(event.Key-termbox.KeyCtrlA)
			e.Mod |= gott.ModCtrl
		} else {
			e.Key = gott.KeyUnsupported
		}
	}
	return e
}
