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

// A row of text in the buffer
type Row struct {
	text []rune
}

func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

func (r *Row) setText(text []rune) {
	r.text = text
}

func (r *Row) String() string {
	return string(r.text)
}

func (r *Row) Length() int {
	return len(r.text)
}

// returns the character at col, or 0 if col is outside the row
func (r *Row) CharAt(col int) rune {
	if col < 0 || col >= len(r.text) {
		return rune(0)
	}
	return r.text[col]
}

func (r *Row) InsertChar(col int, c rune) {
	col = clipToRange(col, 0, len(r.text))
	line := make([]rune, 0, len(r.text)+1)
	line = append(line, r.text[0:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.text) {
		return 0
	}
	c := r.text[col]
	line := make([]rune, 0, len(r.text)-1)
	line = append(line, r.text[0:col]...)
	line = append(line, r.text[col+1:]...)
	r.setText(line)
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	col = clipToRange(col, 0, len(r.text))
	after := string(r.text[col:])
	r.setText(append([]rune{}, r.text[0:col]...))
	return NewRow(after)
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.text)+len(other.text))
	line = append(line, r.text...)
	line = append(line, other.text...)
	r.setText(line)
}

// returns the text between two columns, clipped to the row
func (r *Row) Slice(start, end int) string {
	start = clipToRange(start, 0, len(r.text))
	end = clipToRange(end, start, len(r.text))
	return string(r.text[start:end])
}

func clipToRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
