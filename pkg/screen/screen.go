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
	"github.com/timburks/noted/pkg/commander"
	"github.com/timburks/noted/pkg/editor"
	gott "github.com/timburks/noted/pkg/types"
)

const (
	savePrompt   = "File Name to Write: "
	shortcutSlot = 20 // width of each shortcut column
	chromeRows   = 4  // title, status and two shortcut rows
)

// The Screen draws views with a Driver.
type Screen struct {
	driver Driver
	size   gott.Size
	offset gott.Size // scroll offset of the text area
}

func NewScreen(d Driver) *Screen {
	return &Screen{driver: d}
}

func (s *Screen) Driver() Driver {
	return s.driver
}

func (s *Screen) GetNextEvent() *gott.Event {
	return s.driver.PollEvent()
}

func (s *Screen) Close() {
	s.driver.Close()
}

func (s *Screen) Render(v *commander.View) {
	s.driver.Clear()
	s.size.Cols, s.size.Rows = s.driver.Size()
	if s.size.Rows <= chromeRows || s.size.Cols <= 0 {
		s.driver.Flush()
		return
	}
	textRows := s.size.Rows - chromeRows
	cursor := s.displayCursor(v)
	s.adjustOffsetForScrolling(cursor, textRows)

	s.renderTitleBar(v)
	s.renderText(v, textRows)
	s.renderStatusBar(v)
	s.renderShortcuts(v)

	if v.Mode == gott.ModeSaveFilename {
		s.driver.SetCursor(len([]rune(savePrompt))+v.FilenameCursor, s.size.Rows-3)
	} else if v.Mode == gott.ModeWriting {
		s.driver.SetCursor(cursor.Col-s.offset.Cols, cursor.Row-s.offset.Rows+1)
	} else {
		s.driver.HideCursor()
	}
	s.driver.Flush()
}

func (s *Screen) displayCursor(v *commander.View) gott.Point {
	p := v.Cursor
	if p.Row >= 0 && p.Row < len(v.Lines) {
		p.Col = displayColumn(v.Lines[p.Row], p.Col)
	}
	return p
}

// Recompute the scroll offset to keep the cursor onscreen.
func (s *Screen) adjustOffsetForScrolling(cursor gott.Point, textRows int) {
	if cursor.Row < s.offset.Rows {
		// scroll up
		s.offset.Rows = cursor.Row
	}
	if cursor.Row-s.offset.Rows >= textRows {
		// scroll down
		s.offset.Rows = cursor.Row - textRows + 1
	}
	if cursor.Col < s.offset.Cols {
		// scroll left
		s.offset.Cols = cursor.Col
	}
	if cursor.Col-s.offset.Cols >= s.size.Cols {
		// scroll right
		s.offset.Cols = cursor.Col - s.size.Cols + 1
	}
}

func (s *Screen) drawText(col, row int, text string, style Style) int {
	for _, c := range text {
		if col >= s.size.Cols {
			break
		}
		if col >= 0 {
			s.driver.SetCell(col, row, c, style)
		}
		col++
	}
	return col
}

func (s *Screen) fill(row, from, to int, style Style) {
	for col := from; col < to && col < s.size.Cols; col++ {
		s.driver.SetCell(col, row, ' ', style)
	}
}

func (s *Screen) renderTitleBar(v *commander.View) {
	s.fill(0, 0, s.size.Cols, reverse)
	col := (s.size.Cols - len([]rune(v.Title))) / 2
	s.drawText(max(col, 0), 0, v.Title, reverse)
}

func (s *Screen) renderText(v *commander.View, textRows int) {
	var selStart, selEnd gott.Point
	if v.Selection != nil {
		selStart, selEnd = v.Selection.Start, v.Selection.End
	}
	for i := 0; i < textRows; i++ {
		row := i + s.offset.Rows
		if row >= len(v.Lines) {
			break
		}
		line := v.Lines[row]
		cells := []rune(line.Text)
		styles := make([]Style, len(cells))
		for j := range styles {
			styles[j] = plain
		}
		for _, tag := range line.Tags {
			col := displayColumn(line, tag.Offset)
			for j := col; j < col+len(tagPlaceholder) && j < len(cells); j++ {
				styles[j] = Style{Fg: gott.ColorBlack, Bg: tag.Color}
			}
		}
		if v.Selection != nil && row >= selStart.Row && row <= selEnd.Row {
			from, to := 0, len(cells)+1
			if row == selStart.Row {
				from = displayColumn(line, selStart.Col)
			}
			if row == selEnd.Row {
				to = displayColumn(line, selEnd.Col)
			}
			for j := from; j < to && j < len(cells); j++ {
				styles[j].Reverse = true
			}
		}
		for j := s.offset.Cols; j < len(cells); j++ {
			col := j - s.offset.Cols
			if col >= s.size.Cols {
				break
			}
			s.driver.SetCell(col, i+1, cells[j], styles[j])
		}
	}
}

func (s *Screen) renderStatusBar(v *commander.View) {
	row := s.size.Rows - 3
	text := v.Status
	if v.StatusStyle == gott.StatusFull {
		s.fill(row, 0, s.size.Cols, reverse)
		s.drawText(0, row, text, reverse)
		return
	}
	width := len([]rune(text)) + 2
	col := max((s.size.Cols-width)/2, 0)
	s.fill(row, col, col+width, reverse)
	s.drawText(col+1, row, text, reverse)
}

func (s *Screen) renderShortcuts(v *commander.View) {
	for i, shortcut := range v.Shortcuts {
		row := s.size.Rows - 2 + i%2
		col := (i / 2) * shortcutSlot
		col = s.drawText(col, row, shortcut.Key, reverse)
		s.drawText(col+1, row, shortcut.Label, plain)
	}
}

const tagPlaceholder = "    "

// displayColumn converts a buffer column into a column of the display text,
// where each tag token occupies the placeholder width.
func displayColumn(line commander.Line, col int) int {
	shift := 0
	for _, tag := range line.Tags {
		token := tokenLength(tag)
		if col <= tag.Offset {
			break
		}
		if col < tag.Offset+token {
			return tag.Offset - shift + min(col-tag.Offset, len(tagPlaceholder)-1)
		}
		shift += token - len(tagPlaceholder)
	}
	return col - shift
}

func tokenLength(tag editor.Tag) int {
	return len([]rune(tag.Text)) + 1
}
