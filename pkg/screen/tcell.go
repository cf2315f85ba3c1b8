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
	"github.com/gdamore/tcell/v2"

	gott "github.com/timburks/noted/pkg/types"
)

// TcellDriver draws with tcell, which reports modifiers on special keys.
type TcellDriver struct {
	screen tcell.Screen
}

// NewTcellDriver wraps s, or the terminal if s is nil.
func NewTcellDriver(s tcell.Screen) *TcellDriver {
	return &TcellDriver{screen: s}
}

func (d *TcellDriver) Init() error {
	if d.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		d.screen = s
	}
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()
	return nil
}

func (d *TcellDriver) Close() {
	d.screen.Fini()
}

func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellDriver) Clear() {
	d.screen.Clear()
}

func tcellColor(c gott.Color) tcell.Color {
	if c == gott.ColorDefault {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c))
}

func (d *TcellDriver) SetCell(col, row int, c rune, style Style) {
	st := tcell.StyleDefault.
		Foreground(tcellColor(style.Fg)).
		Background(tcellColor(style.Bg)).
		Reverse(style.Reverse)
	d.screen.SetContent(col, row, c, nil, st)
}

func (d *TcellDriver) SetCursor(col, row int) {
	d.screen.ShowCursor(col, row)
}

func (d *TcellDriver) HideCursor() {
	d.screen.HideCursor()
}

func (d *TcellDriver) Flush() {
	d.screen.Show()
}

func (d *TcellDriver) Interrupt() {
	d.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (d *TcellDriver) PollEvent() *gott.Event {
	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return tcellKeyEvent(ev)
		case *tcell.EventResize:
			d.screen.Sync()
			return &gott.Event{Type: gott.EventResize}
		case *tcell.EventInterrupt:
			return &gott.Event{Type: gott.EventInterrupt}
		}
	}
}

func tcellModifiers(m tcell.ModMask) gott.Modifier {
	var mod gott.Modifier
	if m&tcell.ModShift != 0 {
		mod |= gott.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= gott.ModCtrl
	}
	if m&tcell.ModAlt != 0 || m&tcell.ModMeta != 0 {
		mod |= gott.ModAlt
	}
	return mod
}

func tcellKeyEvent(ev *tcell.EventKey) *gott.Event {
	event := &gott.Event{Type: gott.EventKey, Mod: tcellModifiers(ev.Modifiers())}
	k := ev.Key()
	switch k {
	case tcell.KeyRune:
		event.Ch = ev.Rune()
		// shift is already applied to the character
		event.Mod &^= gott.ModShift
	case tcell.KeyUp:
		event.Key = gott.KeyArrowUp
	case tcell.KeyDown:
		event.Key = gott.KeyArrowDown
	case tcell.KeyLeft:
		event.Key = gott.KeyArrowLeft
	case tcell.KeyRight:
		event.Key = gott.KeyArrowRight
	case tcell.KeyDelete:
		event.Key = gott.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		event.Key = gott.KeyBackspace
	case tcell.KeyEnter:
		event.Key = gott.KeyEnter
	case tcell.KeyTab:
		event.Key = gott.KeyTab
	case tcell.KeyEscape:
		event.Key = gott.KeyEsc
	case tcell.KeyHome:
		event.Key = gott.KeyHome
	case tcell.KeyEnd:
		event.Key = gott.KeyEnd
	case tcell.KeyPgUp:
		event.Key = gott.KeyPgup
	case tcell.KeyPgDn:
		event.Key = gott.KeyPgdn
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			event.Ch = 'a' + rune(k-tcell.KeyCtrlA)
			event.Mod |= gott.ModCtrl
		} else {
			event.Key = gott.KeyUnsupported
		}
	}
	return event
}
