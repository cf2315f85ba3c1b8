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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/noted/pkg/types"
)

func newBuffer(lines ...string) *Buffer {
	b := NewBuffer()
	b.SetLines(lines)
	return b
}

func at(row, col int) gott.Point {
	return gott.Point{Row: row, Col: col}
}

func TestNewBufferHasOneLine(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, []string{""}, b.Lines())
	b.SetLines([]string{})
	assert.Equal(t, 1, b.GetRowCount())
}

func TestLineCountNeverDropsToZero(t *testing.T) {
	b := newBuffer("a", "b")
	b.SetCursor(at(1, 1))
	for i := 0; i < 10; i++ {
		b.Backspace(true)
		require.GreaterOrEqual(t, b.GetRowCount(), 1)
	}
	for i := 0; i < 10; i++ {
		b.Delete(true)
		require.GreaterOrEqual(t, b.GetRowCount(), 1)
	}
	b.SetSelection(Selection{Start: at(0, 0), End: at(5, 5)})
	b.EraseSelection()
	assert.Equal(t, []string{""}, b.Lines())
}

func TestMoveCursorNeverNegative(t *testing.T) {
	b := newBuffer("one two", "", "three")
	moves := []gott.Direction{gott.MoveLeft, gott.MoveUp, gott.MoveLeft, gott.MoveRight, gott.MoveDown, gott.MoveDown, gott.MoveDown, gott.MoveUp}
	for _, wordJump := range []bool{false, true} {
		for i := 0; i < 4; i++ {
			for _, m := range moves {
				b.MoveCursor(m, wordJump, false)
				c := b.Cursor()
				require.GreaterOrEqual(t, c.Row, 0)
				require.GreaterOrEqual(t, c.Col, 0)
				require.Less(t, c.Row, b.GetRowCount())
				require.LessOrEqual(t, c.Col, b.GetRowLength(c.Row))
			}
		}
	}
}

func TestLeftRightRoundTrip(t *testing.T) {
	b := newBuffer("alpha", "beta gamma", "delta")
	for row, line := range b.Lines() {
		for col := 0; col <= len(line); col++ {
			start := at(row, col)

			b.SetCursor(start)
			b.MoveCursor(gott.MoveLeft, false, false)
			if b.Cursor() != start {
				b.MoveCursor(gott.MoveRight, false, false)
				assert.Equal(t, start, b.Cursor(), "left then right from %v", start)
			}

			b.SetCursor(start)
			b.MoveCursor(gott.MoveRight, false, false)
			if b.Cursor() != start {
				b.MoveCursor(gott.MoveLeft, false, false)
				assert.Equal(t, start, b.Cursor(), "right then left from %v", start)
			}
		}
	}
}

func TestMovesAtBoundaries(t *testing.T) {
	b := newBuffer("abc", "de")
	b.SetCursor(at(0, 0))
	b.MoveCursor(gott.MoveLeft, false, false)
	assert.Equal(t, at(0, 0), b.Cursor())
	b.MoveCursor(gott.MoveUp, false, false)
	assert.Equal(t, at(0, 0), b.Cursor())

	b.SetCursor(at(1, 2))
	b.MoveCursor(gott.MoveRight, false, false)
	assert.Equal(t, at(1, 2), b.Cursor())
	b.MoveCursor(gott.MoveRight, true, false)
	assert.Equal(t, at(1, 2), b.Cursor())
}

func TestWrapAcrossLines(t *testing.T) {
	b := newBuffer("abc", "de")
	b.SetCursor(at(0, 3))
	b.MoveCursor(gott.MoveRight, false, false)
	assert.Equal(t, at(1, 0), b.Cursor())
	b.MoveCursor(gott.MoveLeft, false, false)
	assert.Equal(t, at(0, 3), b.Cursor())
}

func TestWordJump(t *testing.T) {
	b := newBuffer("hello world")
	b.MoveCursor(gott.MoveRight, true, false)
	assert.Equal(t, at(0, 6), b.Cursor())
	b.MoveCursor(gott.MoveLeft, true, false)
	assert.Equal(t, at(0, 0), b.Cursor())
}

func TestWordJumpRightAdvancesToNextLine(t *testing.T) {
	b := newBuffer("hello", "world")
	b.MoveCursor(gott.MoveRight, true, false)
	assert.Equal(t, at(1, 0), b.Cursor())
}

func TestWordJumpLeftStopsAfterSpace(t *testing.T) {
	b := newBuffer("one two three")
	b.SetCursor(at(0, 11))
	b.MoveCursor(gott.MoveLeft, true, false)
	assert.Equal(t, at(0, 8), b.Cursor())
	b.SetCursor(at(0, 1))
	b.MoveCursor(gott.MoveLeft, true, false)
	assert.Equal(t, at(0, 0), b.Cursor())
}

func TestMoveDownAppendsLine(t *testing.T) {
	b := newBuffer("text")
	b.SetCursor(at(0, 2))
	b.MoveCursor(gott.MoveDown, false, false)
	assert.Equal(t, []string{"text", ""}, b.Lines())
	assert.Equal(t, at(1, 0), b.Cursor())

	// a blank last line stays put
	b.MoveCursor(gott.MoveDown, false, false)
	assert.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, at(1, 0), b.Cursor())

	b = newBuffer("text", "   ")
	b.SetCursor(at(1, 0))
	b.MoveCursor(gott.MoveDown, false, false)
	assert.Equal(t, 2, b.GetRowCount())
}

func TestVerticalMovesClampColumn(t *testing.T) {
	b := newBuffer("a long line", "short", "another long line")
	b.SetCursor(at(0, 10))
	b.MoveCursor(gott.MoveDown, false, false)
	assert.Equal(t, at(1, 5), b.Cursor())
	b.SetCursor(at(2, 12))
	b.MoveCursor(gott.MoveUp, false, false)
	assert.Equal(t, at(1, 5), b.Cursor())
}

func TestTypeThenBackspaceRestores(t *testing.T) {
	lines := []string{"hello", "", "wide ünïcode"}
	for row, line := range lines {
		for col := 0; col <= len([]rune(line)); col++ {
			for _, c := range []rune{'x', ' ', '#', 'é'} {
				b := newBuffer(lines...)
				b.SetCursor(at(row, col))
				b.Type(c)
				b.Backspace(false)
				require.Equal(t, lines, b.Lines())
				require.Equal(t, at(row, col), b.Cursor())
			}
		}
	}
}

func TestEnterThenBackspaceRestores(t *testing.T) {
	line := "split me here"
	for col := 0; col <= len(line); col++ {
		b := newBuffer(line)
		b.SetCursor(at(0, col))
		b.Enter()
		assert.Equal(t, 2, b.GetRowCount())
		assert.Equal(t, at(1, 0), b.Cursor())
		b.Backspace(false)
		require.Equal(t, []string{line}, b.Lines())
		require.Equal(t, at(0, col), b.Cursor())
	}
}

func TestEnterAtStartInsertsLineAbove(t *testing.T) {
	b := newBuffer("first")
	b.Enter()
	assert.Equal(t, []string{"", "first"}, b.Lines())
	assert.Equal(t, at(1, 0), b.Cursor())
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		cursor   gott.Point
		wordJump bool
		want     []string
	}{
		{"char", []string{"abc"}, at(0, 1), false, []string{"ac"}},
		{"join", []string{"ab", "cd"}, at(0, 2), false, []string{"abcd"}},
		{"end of buffer", []string{"ab"}, at(0, 2), false, []string{"ab"}},
		{"word", []string{"one two"}, at(0, 0), true, []string{"two"}},
		{"word to end", []string{"one"}, at(0, 0), true, []string{""}},
		{"word from middle", []string{"one two three"}, at(0, 4), true, []string{"one three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuffer(tt.lines...)
			b.SetCursor(tt.cursor)
			b.Delete(tt.wordJump)
			assert.Equal(t, tt.want, b.Lines())
			assert.Equal(t, tt.cursor, b.Cursor())
		})
	}
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		cursor     gott.Point
		wordJump   bool
		want       []string
		wantCursor gott.Point
	}{
		{"origin", []string{"abc"}, at(0, 0), false, []string{"abc"}, at(0, 0)},
		{"char", []string{"abc"}, at(0, 2), false, []string{"ac"}, at(0, 1)},
		{"join", []string{"ab", "cd"}, at(1, 0), false, []string{"abcd"}, at(0, 2)},
		{"word", []string{"ab cd"}, at(0, 5), true, []string{"ab "}, at(0, 3)},
		{"word to start", []string{"abc"}, at(0, 3), true, []string{""}, at(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuffer(tt.lines...)
			b.SetCursor(tt.cursor)
			b.Backspace(tt.wordJump)
			assert.Equal(t, tt.want, b.Lines())
			assert.Equal(t, tt.wantCursor, b.Cursor())
		})
	}
}

func TestHomeEnd(t *testing.T) {
	b := newBuffer("some text")
	b.SetCursor(at(0, 4))
	b.End()
	assert.Equal(t, at(0, 9), b.Cursor())
	b.Home()
	assert.Equal(t, at(0, 0), b.Cursor())
}

func TestExtendSelection(t *testing.T) {
	b := newBuffer("hello world")
	b.SetCursor(at(0, 2))
	b.MoveCursor(gott.MoveRight, false, true)
	b.MoveCursor(gott.MoveRight, false, true)
	s, ok := b.Selection()
	require.True(t, ok)
	assert.Equal(t, Selection{Start: at(0, 2), End: at(0, 5)}, s)
	assert.Equal(t, "llo", b.SelectionText())

	// a plain move clears the selection and still moves
	b.MoveCursor(gott.MoveLeft, false, false)
	assert.False(t, b.HasSelection())
	assert.Equal(t, at(0, 3), b.Cursor())
}

func TestSelectionNormalize(t *testing.T) {
	s := Selection{Start: at(2, 1), End: at(0, 4)}
	n := s.Normalize()
	assert.Equal(t, Selection{Start: at(0, 4), End: at(2, 1)}, n)
	assert.Equal(t, at(2, 1), s.Start, "normalize must not change its receiver")
	assert.Equal(t, n, n.Normalize())
}

func TestEraseSelectionAcrossRows(t *testing.T) {
	lines := []string{"zero", "one", "two", "three", "four"}
	for r1 := 0; r1 < len(lines); r1++ {
		for r2 := r1 + 1; r2 < len(lines); r2++ {
			b := newBuffer(lines...)
			b.SetSelection(Selection{Start: at(r1, 0), End: at(r2, 0)})
			b.EraseSelection()
			require.Equal(t, len(lines)-(r2-r1), b.GetRowCount())
			assert.Equal(t, at(r1, 0), b.Cursor())
			assert.False(t, b.HasSelection())
		}
	}
}

func TestEraseSelectionSingleRow(t *testing.T) {
	b := newBuffer("keep this part", "other")
	b.SetSelection(Selection{Start: at(0, 9), End: at(0, 4)})
	b.EraseSelection()
	assert.Equal(t, []string{"keep part", "other"}, b.Lines())
	assert.Equal(t, at(0, 4), b.Cursor())
}

func TestEraseSelectionClampsMalformedRange(t *testing.T) {
	b := newBuffer("abc", "def")
	b.SetSelection(Selection{Start: at(1, 1), End: at(9, 40)})
	b.EraseSelection()
	assert.Equal(t, []string{"abc", "d"}, b.Lines())
	assert.Equal(t, at(1, 1), b.Cursor())
}

func TestSelectionTextSpansRows(t *testing.T) {
	b := newBuffer("first line", "middle", "last line")
	b.SetSelection(Selection{Start: at(0, 6), End: at(2, 4)})
	assert.Equal(t, "line\nmiddle\nlast", b.SelectionText())
}

func TestTypeReplacesSelection(t *testing.T) {
	b := newBuffer("abcdef")
	b.SetCursor(at(0, 1))
	b.MoveCursor(gott.MoveRight, false, true)
	b.MoveCursor(gott.MoveRight, false, true)
	b.Type('X')
	assert.Equal(t, []string{"aXef"}, b.Lines())
	assert.Equal(t, at(0, 2), b.Cursor())
}

func TestSetLinesClampsCursor(t *testing.T) {
	b := newBuffer("a long first line", "second")
	b.SetCursor(at(1, 6))
	b.SetSelection(Selection{Start: at(0, 0), End: at(1, 1)})
	b.SetLines([]string{"x"})
	assert.Equal(t, at(0, 1), b.Cursor())
	assert.False(t, b.HasSelection())
}

func TestHashTracksContent(t *testing.T) {
	b := newBuffer("a", "b")
	h := b.Hash()
	assert.Equal(t, h, HashLines([]string{"a", "b"}))
	assert.NotEqual(t, h, HashLines([]string{"ab"}))
	b.SetCursor(at(0, 1))
	b.Type('x')
	assert.NotEqual(t, h, b.Hash())
	b.Backspace(false)
	assert.Equal(t, h, b.Hash())
}
