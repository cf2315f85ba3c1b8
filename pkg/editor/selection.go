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
	gott "github.com/timburks/noted/pkg/types"
)

// A Selection is the range between the point where a shift-move started
// and the point after the latest one. End is stored one column past the
// cursor so that the character under the cursor is included; Start is the
// cursor position itself. The two ends are stored in the order they were
// made and must be normalized before use.
type Selection struct {
	Start gott.Point
	End   gott.Point
}

// Normalize returns the selection with Start before End in reading order.
func (s Selection) Normalize() Selection {
	if s.End.Less(s.Start) {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}
