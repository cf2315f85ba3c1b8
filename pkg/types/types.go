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

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by a Storage when a note does not exist.
var ErrNotFound = errors.New("note not found")

// Editor modes
type Mode int

const (
	ModeWriting Mode = iota
	ModeConfirmExit
	ModeSaveFilename
)

// Help is an unused placeholder that behaves like writing.
const ModeHelp = ModeWriting

func (m Mode) String() string {
	switch m {
	case ModeWriting:
		return "writing"
	case ModeConfirmExit:
		return "confirm-exit"
	case ModeSaveFilename:
		return "save-filename"
	default:
		return "unknown"
	}
}

// Move directions
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
	MoveRight
	MoveLeft
)

// Commands are the modified keys that a mode may consume.
type Command string

const (
	CommandExit   Command = "exit"
	CommandReload Command = "reload"
	CommandCancel Command = "cancel"
	CommandCopy   Command = "copy"
	CommandCut    Command = "cut"
	CommandHelp   Command = "help"
)

// Status bar styles
type StatusStyle int

const (
	StatusMiddle StatusStyle = iota // centered box sized to the text
	StatusFull                      // bar spanning the screen width
)

// Buffer load states
// A Shortcut is a key hint shown for a mode.
type Shortcut struct {
	Key   string
	Label string
}

type LoadState int

const (
	LoadLoading LoadState = iota
	LoadLoaded
	LoadFailed
)

type Point struct {
	Row int
	Col int
}

// Less reports whether p is before q in reading order.
func (p Point) Less(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

type Size struct {
	Rows int
	Cols int
}

// A Note describes a stored note. Content is kept by the Storage.
type Note struct {
	ID           string    `yaml:"id"`
	Filename     string    `yaml:"filename"`
	CreationDate time.Time `yaml:"creationDate"`
	LastEditDate time.Time `yaml:"lastEditDate"`
}

// Storage loads and saves note contents.
type Storage interface {
	LoadNote(ctx context.Context, id string) ([]string, error)
	SaveNote(ctx context.Context, note Note, content []string) (Note, error)
}

// Clipboard receives copied and cut text.
type Clipboard interface {
	WriteText(text string) error
}

// A Dispatcher connects the single-threaded editor to asynchronous work.
// Go runs work away from the event loop; Post runs fn on the event loop.
type Dispatcher interface {
	Go(work func())
	Post(fn func())
}
