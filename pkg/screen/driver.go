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

// Package screen draws the editor on a terminal.
package screen

import (
	gott "github.com/timburks/noted/pkg/types"
)

// A Style describes how a cell is drawn.
type Style struct {
	Fg      gott.Color
	Bg      gott.Color
	Reverse bool
}

var (
	plain   = Style{Fg: gott.ColorDefault, Bg: gott.ColorDefault}
	reverse = Style{Fg: gott.ColorDefault, Bg: gott.ColorDefault, Reverse: true}
)

// A Driver is a terminal library.
type Driver interface {
	Init() error
	Close()
	Size() (cols, rows int)
	Clear()
	SetCell(col, row int, c rune, style Style)
	SetCursor(col, row int)
	HideCursor()
	Flush()
	// PollEvent blocks until an event arrives. It returns nil when the
	// driver has been closed.
	PollEvent() *gott.Event
	// Interrupt makes a blocked PollEvent return an interrupt event.
	Interrupt()
}
