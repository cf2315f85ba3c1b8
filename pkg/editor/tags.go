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
	"regexp"
	"strings"
	"unicode/utf8"

	gott "github.com/timburks/noted/pkg/types"
)

var (
	// the first '#' followed by word characters, with everything before it
	tagPattern = regexp.MustCompile(`^(.*?)#(\w+)`)
	// any tag token
	tokenPattern = regexp.MustCompile(`#\w+`)
)

// tokens are replaced by this in the display string
const tagPlaceholder = "    "

// A Palette maps tag names to colors. Lookups are case-sensitive.
type Palette struct {
	Colors   map[string]gott.Color
	Fallback gott.Color
}

func DefaultPalette() Palette {
	return Palette{
		Colors: map[string]gott.Color{
			"productivity": 33,
			"work":         208,
			"personal":     170,
			"todo":         196,
			"idea":         226,
		},
		Fallback: 244,
	}
}

func (p Palette) ColorFor(tag string) gott.Color {
	if c, ok := p.Colors[tag]; ok {
		return c
	}
	return p.Fallback
}

// A Tag is a #word marker found in a line. Offset is the column of the '#'.
type Tag struct {
	Offset int
	Text   string
	Color  gott.Color
}

// LineTags holds the tags found in a line and the line as it is displayed,
// with every tag token replaced by blanks.
type LineTags struct {
	Tags    []Tag
	Display string
}

// ExtractTags finds the tags in line in order of their position.
func ExtractTags(line string, palette Palette) LineTags {
	var tags []Tag
	work := line
	for {
		m := tagPattern.FindStringSubmatchIndex(work)
		if m == nil {
			break
		}
		hash := m[4] - 1
		text := work[m[4]:m[5]]
		tags = append(tags, Tag{
			Offset: utf8.RuneCountInString(work[:hash]),
			Text:   text,
			Color:  palette.ColorFor(text),
		})
		// blank the match so the next search finds the following tag
		work = work[:hash] + strings.Repeat(" ", m[5]-hash) + work[m[5]:]
	}
	return LineTags{
		Tags:    tags,
		Display: tokenPattern.ReplaceAllString(line, tagPlaceholder),
	}
}
