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

package commander

import (
	"github.com/timburks/noted/pkg/editor"
	gott "github.com/timburks/noted/pkg/types"
)

// A Line is a buffer line prepared for display.
type Line struct {
	Text string // the line with tag tokens blanked
	Tags []editor.Tag
}

// A View is everything needed to draw the editor.
type View struct {
	Title          string
	Lines          []Line
	Cursor         gott.Point
	Selection      *editor.Selection // normalized, nil if nothing is selected
	Status         string
	StatusStyle    gott.StatusStyle
	Mode           gott.Mode
	Shortcuts      []gott.Shortcut
	Filename       string
	FilenameCursor int
	Loading        bool
}

// View returns a snapshot of the session for rendering.
func (c *Commander) View() *View {
	s := c.session
	b := s.Buffer()
	v := &View{
		Title:          s.Note().Filename,
		Cursor:         b.Cursor(),
		Mode:           s.Mode(),
		Shortcuts:      s.Shortcuts(),
		Filename:       s.Note().Filename,
		FilenameCursor: s.FilenameCursor(),
		Loading:        s.LoadState() == gott.LoadLoading,
	}
	if v.Title == "" {
		v.Title = "New Buffer"
	}
	v.Status, v.StatusStyle = s.Status()
	for _, text := range b.Lines() {
		tags := editor.ExtractTags(text, c.palette)
		v.Lines = append(v.Lines, Line{Text: tags.Display, Tags: tags.Tags})
	}
	if sel, ok := b.Selection(); ok {
		n := sel.Normalize()
		v.Selection = &n
	}
	return v
}
