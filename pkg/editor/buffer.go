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
	"encoding/binary"
	"hash/fnv"
	"strings"

	gott "github.com/timburks/noted/pkg/types"
)

// A Buffer holds the lines of a note being edited.
type Buffer struct {
	rows      []*Row
	cursor    gott.Point
	selection Selection
	selecting bool
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.SetLines(nil)
	return b
}

// SetLines replaces the buffer contents. The cursor is clamped to the new
// content and any selection is cleared.
func (b *Buffer) SetLines(lines []string) {
	rows := make([]*Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, NewRow(line))
	}
	if len(rows) == 0 {
		rows = append(rows, NewRow(""))
	}
	b.rows = rows
	b.selecting = false
	b.SetCursor(b.cursor)
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) Cursor() gott.Point {
	return b.cursor
}

// SetCursor moves the cursor to p, clamped to the buffer.
func (b *Buffer) SetCursor(p gott.Point) {
	b.cursor = b.clamp(p)
}

// Selection returns the current selection as stored and whether one exists.
func (b *Buffer) Selection() (Selection, bool) {
	return b.selection, b.selecting
}

// SetSelection installs s as the active selection.
func (b *Buffer) SetSelection(s Selection) {
	b.selection = s
	b.selecting = true
}

func (b *Buffer) HasSelection() bool {
	return b.selecting
}

func (b *Buffer) ClearSelection() {
	b.selecting = false
	b.selection = Selection{}
}

// Hash returns a digest of the buffer contents.
func (b *Buffer) Hash() uint64 {
	return HashLines(b.Lines())
}

// HashLines returns a digest of lines. Each line is length-prefixed so that
// line boundaries are part of the digest.
func HashLines(lines []string) uint64 {
	h := fnv.New64a()
	var n [8]byte
	for _, line := range lines {
		binary.LittleEndian.PutUint64(n[:], uint64(len(line)))
		h.Write(n[:])
		h.Write([]byte(line))
	}
	return h.Sum64()
}

func (b *Buffer) clamp(p gott.Point) gott.Point {
	p.Row = clipToRange(p.Row, 0, len(b.rows)-1)
	p.Col = clipToRange(p.Col, 0, b.rows[p.Row].Length())
	return p
}

func (b *Buffer) row() *Row {
	return b.rows[b.cursor.Row]
}

func (b *Buffer) insertRow(i int, r *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = r
}

func (b *Buffer) deleteRows(from, to int) {
	if from >= to {
		return
	}
	b.rows = append(b.rows[:from], b.rows[to:]...)
}

// MoveCursor moves the cursor one step in direction, or by a word when
// wordJump is set. With extend the selection is anchored at the position
// before the move and its end follows the cursor; without it any selection
// is cleared.
func (b *Buffer) MoveCursor(direction gott.Direction, wordJump, extend bool) {
	b.cursor = b.clamp(b.cursor)
	start := b.cursor
	switch direction {
	case gott.MoveLeft:
		b.moveLeft(wordJump)
	case gott.MoveRight:
		b.moveRight(wordJump)
	case gott.MoveUp:
		b.moveUp()
	case gott.MoveDown:
		b.moveDown()
	}
	b.track(start, extend)
}

func (b *Buffer) track(start gott.Point, extend bool) {
	if !extend {
		b.ClearSelection()
		return
	}
	if !b.selecting {
		b.selection.Start = start
		b.selecting = true
	}
	b.selection.End = gott.Point{Row: b.cursor.Row, Col: b.cursor.Col + 1}
}

func (b *Buffer) moveLeft(wordJump bool) {
	if b.cursor.Col == 0 {
		if b.cursor.Row > 0 {
			b.cursor.Row--
			b.cursor.Col = b.row().Length()
		}
		return
	}
	if !wordJump {
		b.cursor.Col--
		return
	}
	row := b.row()
	col := b.cursor.Col - 2
	for {
		if col <= 0 {
			col = 0
			break
		}
		if row.CharAt(col) == ' ' {
			col++
			break
		}
		col--
	}
	b.cursor.Col = col
}

func (b *Buffer) moveRight(wordJump bool) {
	row := b.row()
	if b.cursor.Col >= row.Length() {
		if b.cursor.Row < len(b.rows)-1 {
			b.cursor.Row++
			b.cursor.Col = 0
		}
		return
	}
	if !wordJump {
		b.cursor.Col++
		return
	}
	wasSpace := false
	for {
		if b.cursor.Col >= row.Length() {
			if b.cursor.Row < len(b.rows)-1 {
				b.cursor.Row++
				b.cursor.Col = 0
			}
			return
		}
		if row.CharAt(b.cursor.Col) == ' ' {
			wasSpace = true
		} else if wasSpace {
			return
		}
		b.cursor.Col++
	}
}

func (b *Buffer) moveUp() {
	if b.cursor.Row == 0 {
		return
	}
	b.cursor.Row--
	b.cursor.Col = clipToRange(b.cursor.Col, 0, b.row().Length())
}

func (b *Buffer) moveDown() {
	last := len(b.rows) - 1
	if b.cursor.Row >= last {
		if strings.TrimSpace(b.rows[last].String()) == "" {
			return
		}
		b.rows = append(b.rows, NewRow(""))
	}
	b.cursor.Row++
	b.cursor.Col = clipToRange(b.cursor.Col, 0, b.row().Length())
}

// Home moves the cursor to the start of its line.
func (b *Buffer) Home() {
	b.cursor = b.clamp(b.cursor)
	b.cursor.Col = 0
	b.ClearSelection()
}

// End moves the cursor to the end of its line.
func (b *Buffer) End() {
	b.cursor = b.clamp(b.cursor)
	b.cursor.Col = b.row().Length()
	b.ClearSelection()
}

// Delete removes the character under the cursor, or the word that starts
// there when wordJump is set. At the end of a line the next line is joined.
func (b *Buffer) Delete(wordJump bool) {
	if b.selecting {
		b.EraseSelection()
		return
	}
	b.cursor = b.clamp(b.cursor)
	row := b.row()
	if b.cursor.Col >= row.Length() {
		if b.cursor.Row >= len(b.rows)-1 {
			return
		}
		row.Join(b.rows[b.cursor.Row+1])
		b.deleteRows(b.cursor.Row+1, b.cursor.Row+2)
		return
	}
	wasSpace := false
	for {
		row.DeleteChar(b.cursor.Col)
		if !wordJump || b.cursor.Col >= row.Length() {
			return
		}
		if row.CharAt(b.cursor.Col) == ' ' {
			wasSpace = true
		} else if wasSpace {
			return
		}
	}
}

// Backspace removes the character before the cursor, or the word that ends
// there when wordJump is set. At the start of a line the line is joined to
// the previous one.
func (b *Buffer) Backspace(wordJump bool) {
	if b.selecting {
		b.EraseSelection()
		return
	}
	b.cursor = b.clamp(b.cursor)
	if b.cursor.Col == 0 {
		if b.cursor.Row == 0 {
			return
		}
		prev := b.rows[b.cursor.Row-1]
		col := prev.Length()
		prev.Join(b.row())
		b.deleteRows(b.cursor.Row, b.cursor.Row+1)
		b.cursor.Row--
		b.cursor.Col = col
		return
	}
	row := b.row()
	wasSpace := false
	for {
		row.DeleteChar(b.cursor.Col - 1)
		b.cursor.Col--
		if !wordJump || b.cursor.Col == 0 {
			return
		}
		// the character two columns back decides whether the run continues
		if row.CharAt(b.cursor.Col-2) == ' ' {
			wasSpace = true
		} else if wasSpace {
			return
		}
	}
}

// Enter breaks the line at the cursor.
func (b *Buffer) Enter() {
	b.cursor = b.clamp(b.cursor)
	if b.cursor.Col == 0 {
		b.insertRow(b.cursor.Row, NewRow(""))
		b.cursor.Row++
		return
	}
	after := b.row().Split(b.cursor.Col)
	b.insertRow(b.cursor.Row+1, after)
	b.cursor.Row++
	b.cursor.Col = 0
}

// Type inserts c at the cursor, replacing the selection if there is one.
func (b *Buffer) Type(c rune) {
	if b.selecting {
		b.EraseSelection()
	}
	b.cursor = b.clamp(b.cursor)
	b.row().InsertChar(b.cursor.Col, c)
	b.cursor.Col++
}

// span returns the normalized selection clamped to the buffer.
func (b *Buffer) span() (gott.Point, gott.Point) {
	s := b.selection.Normalize()
	start := b.clamp(s.Start)
	end := b.clamp(s.End)
	if end.Less(start) {
		end = start
	}
	return start, end
}

// EraseSelection removes the selected text and places the cursor where the
// selection started.
func (b *Buffer) EraseSelection() {
	if !b.selecting {
		return
	}
	start, end := b.span()
	first := b.rows[start.Row]
	last := b.rows[end.Row]
	text := first.Slice(0, start.Col) + last.Slice(end.Col, last.Length())
	first.setText([]rune(text))
	b.deleteRows(start.Row+1, end.Row+1)
	b.cursor = start
	b.ClearSelection()
}

// SelectionText returns the selected text with lines joined by newlines.
func (b *Buffer) SelectionText() string {
	if !b.selecting {
		return ""
	}
	start, end := b.span()
	if start.Row == end.Row {
		return b.rows[start.Row].Slice(start.Col, end.Col)
	}
	parts := make([]string, 0, end.Row-start.Row+1)
	parts = append(parts, b.rows[start.Row].Slice(start.Col, b.rows[start.Row].Length()))
	for i := start.Row + 1; i < end.Row; i++ {
		parts = append(parts, b.rows[i].String())
	}
	parts = append(parts, b.rows[end.Row].Slice(0, end.Col))
	return strings.Join(parts, "\n")
}
