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
	"strconv"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/noted/pkg/commander"
	"github.com/timburks/noted/pkg/editor"
	gott "github.com/timburks/noted/pkg/types"
)

func newSimulation(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d := NewTcellDriver(sim)
	require.NoError(t, d.Init())
	t.Cleanup(d.Close)
	sim.SetSize(cols, rows)
	return NewScreen(d), sim
}

func rowText(sim tcell.SimulationScreen, row, cols int) string {
	var text []rune
	for x := 0; x < cols; x++ {
		c, _, _, _ := sim.GetContent(x, row)
		text = append(text, c)
	}
	return string(text)
}

func viewOf(lines ...string) *commander.View {
	v := &commander.View{
		Title:       "groceries",
		Status:      "[ groceries | " + strconv.Itoa(len(lines)) + " lines ]",
		StatusStyle: gott.StatusMiddle,
		Mode:        gott.ModeWriting,
		Shortcuts: []gott.Shortcut{
			{Key: "^X", Label: "Exit"},
			{Key: "^R", Label: "Reload"},
			{Key: "M-V", Label: "Copy"},
		},
	}
	for _, line := range lines {
		tags := editor.ExtractTags(line, editor.DefaultPalette())
		v.Lines = append(v.Lines, commander.Line{Text: tags.Display, Tags: tags.Tags})
	}
	return v
}

func TestRenderLayout(t *testing.T) {
	s, sim := newSimulation(t, 40, 10)
	v := viewOf("milk", "eggs #todo")
	v.Cursor = gott.Point{Row: 1, Col: 2}
	s.Render(v)

	assert.Contains(t, rowText(sim, 0, 40), "groceries")
	assert.Equal(t, "milk", rowText(sim, 1, 4))
	assert.Equal(t, "eggs     ", rowText(sim, 2, 9))
	assert.Contains(t, rowText(sim, 7, 40), "[ groceries | 2 lines ]")
	assert.Contains(t, rowText(sim, 8, 40), "^X Exit")
	assert.Contains(t, rowText(sim, 9, 40), "^R Reload")
	assert.Contains(t, rowText(sim, 8, 40), "M-V Copy")

	_, _, style, _ := sim.GetContent(5, 2)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(196), bg)

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)
}

func TestRenderScrollsToCursor(t *testing.T) {
	s, sim := newSimulation(t, 20, 10)
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, "line "+strconv.Itoa(i))
	}
	v := viewOf(lines...)
	v.Cursor = gott.Point{Row: 15, Col: 0}
	s.Render(v)
	// six text rows, so line 10 is at the top
	assert.Equal(t, "line 10", rowText(sim, 1, 7))
	_, y, _ := sim.GetCursor()
	assert.Equal(t, 6, y)

	v.Cursor = gott.Point{Row: 2, Col: 0}
	s.Render(v)
	assert.Equal(t, "line 2 ", rowText(sim, 1, 7))
}

func TestRenderSelection(t *testing.T) {
	s, sim := newSimulation(t, 20, 10)
	v := viewOf("abcdef")
	v.Selection = &editor.Selection{Start: gott.Point{Row: 0, Col: 1}, End: gott.Point{Row: 0, Col: 3}}
	s.Render(v)
	for x, want := range []bool{false, true, true, false} {
		_, _, style, _ := sim.GetContent(x, 1)
		_, _, attrs := style.Decompose()
		assert.Equal(t, want, attrs&tcell.AttrReverse != 0, "column %d", x)
	}
}

func TestRenderSaveMode(t *testing.T) {
	s, sim := newSimulation(t, 40, 10)
	v := viewOf("text")
	v.Mode = gott.ModeSaveFilename
	v.Status = "File Name to Write: todo"
	v.StatusStyle = gott.StatusFull
	v.Filename = "todo"
	v.FilenameCursor = 2
	s.Render(v)
	assert.Equal(t, "File Name to Write: todo", rowText(sim, 7, 24))
	x, y, _ := sim.GetCursor()
	assert.Equal(t, len("File Name to Write: ")+2, x)
	assert.Equal(t, 7, y)
}

func TestDisplayColumn(t *testing.T) {
	tags := editor.ExtractTags("a #work b #x c", editor.DefaultPalette())
	line := commander.Line{Text: tags.Display, Tags: tags.Tags}
	require.Equal(t, "a      b      c", line.Text)
	tests := []struct{ col, want int }{
		{0, 0},
		{2, 2},  // on the first '#'
		{4, 4},  // inside the token
		{6, 5},  // clipped to the placeholder
		{7, 6},  // after the first token
		{10, 9}, // second '#'
		{12, 13},
		{13, 14},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayColumn(line, tt.col), "column %d", tt.col)
	}
}

func TestTcellKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want gott.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), gott.Event{Ch: 'q'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift), gott.Event{Ch: 'Q'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModAlt), gott.Event{Ch: 'v', Mod: gott.ModAlt}},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl), gott.Event{Ch: 'x', Mod: gott.ModCtrl}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), gott.Event{Key: gott.KeyArrowLeft, Mod: gott.ModShift}},
		{"ctrl shift arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift|tcell.ModCtrl), gott.Event{Key: gott.KeyArrowRight, Mod: gott.ModShift | gott.ModCtrl}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), gott.Event{Key: gott.KeyBackspace}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), gott.Event{Key: gott.KeyEnter}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), gott.Event{Key: gott.KeyTab}},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), gott.Event{Key: gott.KeyUnsupported}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			want.Type = gott.EventKey
			assert.Equal(t, &want, tcellKeyEvent(tt.ev))
		})
	}
}

// nextEvent skips resize events
func nextEvent(t *testing.T, s *Screen) *gott.Event {
	t.Helper()
	for {
		ev := s.GetNextEvent()
		require.NotNil(t, ev)
		if ev.Type != gott.EventResize {
			return ev
		}
	}
}

func TestTcellPollEvent(t *testing.T) {
	s, sim := newSimulation(t, 20, 10)
	sim.InjectKey(tcell.KeyCtrlR, 0, tcell.ModCtrl)
	ev := nextEvent(t, s)
	assert.Equal(t, gott.EventKey, ev.Type)
	assert.Equal(t, 'r', ev.Ch)
	assert.True(t, ev.Has(gott.ModCtrl))

	s.Driver().Interrupt()
	ev = nextEvent(t, s)
	assert.Equal(t, gott.EventInterrupt, ev.Type)
}

func TestTermboxKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		want gott.Event
	}{
		{"char", termbox.Event{Ch: 'a'}, gott.Event{Ch: 'a'}},
		{"alt char", termbox.Event{Ch: 'x', Mod: termbox.ModAlt}, gott.Event{Ch: 'x', Mod: gott.ModAlt}},
		{"space", termbox.Event{Key: termbox.KeySpace}, gott.Event{Ch: ' '}},
		{"ctrl letter", termbox.Event{Key: termbox.KeyCtrlX}, gott.Event{Ch: 'x', Mod: gott.ModCtrl}},
		{"arrow", termbox.Event{Key: termbox.KeyArrowUp}, gott.Event{Key: gott.KeyArrowUp}},
		{"backspace", termbox.Event{Key: termbox.KeyBackspace2}, gott.Event{Key: gott.KeyBackspace}},
		{"delete", termbox.Event{Key: termbox.KeyDelete}, gott.Event{Key: gott.KeyDelete}},
		{"unsupported", termbox.Event{Key: termbox.KeyF1}, gott.Event{Key: gott.KeyUnsupported}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.want
			want.Type = gott.EventKey
			ev := tt.ev
			ev.Type = termbox.EventKey
			assert.Equal(t, &want, termboxKeyEvent(ev))
		})
	}
}
