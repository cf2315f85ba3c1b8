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

package types

// Event types
const (
	EventKey = iota
	EventResize
	EventInterrupt
)

type Key int

// Keys that are not printable characters. Printable input arrives in Event.Ch.
const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyHome
	KeyEnd
	KeyTab
	KeyEsc
	KeyPgup
	KeyPgdn
	KeyUnsupported
)

// Key modifiers, combined as a bit mask.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// An Event is a terminal event translated by a screen driver.
// Control letters arrive as Ch with ModCtrl set (ctrl+x is Ch 'x').
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Mod  Modifier
}

func (e *Event) Has(m Modifier) bool {
	return e.Mod&m != 0
}

// Colors are 256-color palette indexes.
type Color int

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorWhite   Color = 15
)
