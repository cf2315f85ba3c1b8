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

package session

import (
	"fmt"

	gott "github.com/timburks/noted/pkg/types"
)

// A handler implements the operations of one mode.
type handler struct {
	moveCursor func(s *Session, d gott.Direction, wordJump, extend bool)
	delete     func(s *Session, wordJump bool)
	backspace  func(s *Session, wordJump bool)
	enter      func(s *Session)
	typeChar   func(s *Session, c rune)
	home       func(s *Session)
	end        func(s *Session)
	command    func(s *Session, c gott.Command) bool
	status     func(s *Session) (string, gott.StatusStyle)
	shortcuts  []gott.Shortcut
}

// handlers is filled by init to keep the table out of initialization order.
var handlers map[gott.Mode]*handler

func init() {
	handlers = map[gott.Mode]*handler{
		gott.ModeWriting:      writingHandler(),
		gott.ModeConfirmExit:  confirmExitHandler(),
		gott.ModeSaveFilename: saveFilenameHandler(),
	}
}

// saveState is the payload of the filename entry mode.
type saveState struct {
	cursor   int    // position in the filename
	original string // filename before the first edit
	captured bool   // original has been recorded
	saving   bool   // a save is in flight
}

func (st *saveState) capture(filename string) {
	if !st.captured {
		st.original = filename
		st.captured = true
	}
}

// Writing edits the buffer.

func writingHandler() *handler {
	return &handler{
		moveCursor: func(s *Session, d gott.Direction, wordJump, extend bool) {
			s.buffer.MoveCursor(d, wordJump, extend)
			s.touch()
		},
		delete: func(s *Session, wordJump bool) {
			s.buffer.Delete(wordJump)
			s.touch()
		},
		backspace: func(s *Session, wordJump bool) {
			s.buffer.Backspace(wordJump)
			s.touch()
		},
		enter: func(s *Session) {
			s.buffer.Enter()
			s.touch()
		},
		typeChar: func(s *Session, c rune) {
			s.buffer.Type(c)
			s.touch()
		},
		home: func(s *Session) {
			s.buffer.Home()
			s.touch()
		},
		end: func(s *Session) {
			s.buffer.End()
			s.touch()
		},
		command: func(s *Session, c gott.Command) bool {
			switch c {
			case gott.CommandExit:
				if !s.Dirty() {
					s.close()
					return true
				}
				s.setMode(gott.ModeConfirmExit)
				return true
			case gott.CommandReload:
				if s.reload == nil {
					return false
				}
				s.reload()
				return true
			case gott.CommandCopy:
				s.copySelection(false)
				return true
			case gott.CommandCut:
				s.copySelection(true)
				return true
			}
			return false
		},
		status: func(s *Session) (string, gott.StatusStyle) {
			if s.message != "" {
				return s.message, gott.StatusFull
			}
			if s.load == gott.LoadLoading {
				return "[ Loading " + s.displayName() + " ]", gott.StatusMiddle
			}
			return fmt.Sprintf("[ %s | %d lines ]", s.displayName(), s.buffer.GetRowCount()), gott.StatusMiddle
		},
		shortcuts: []gott.Shortcut{
			{"^X", "Exit"},
			{"^R", "Reload"},
			{"M-V", "Copy"},
			{"M-X", "Cut"},
		},
	}
}

// ConfirmExit asks whether to save a modified buffer.

func confirmExitHandler() *handler {
	return &handler{
		moveCursor: func(s *Session, d gott.Direction, wordJump, extend bool) {},
		delete:     func(s *Session, wordJump bool) {},
		backspace:  func(s *Session, wordJump bool) {},
		enter:      func(s *Session) {},
		home:       func(s *Session) {},
		end:        func(s *Session) {},
		typeChar: func(s *Session, c rune) {
			switch c {
			case 'y', 'Y':
				s.save = saveState{cursor: len([]rune(s.note.Filename))}
				s.setMode(gott.ModeSaveFilename)
			case 'n', 'N':
				s.close()
			}
		},
		command: func(s *Session, c gott.Command) bool {
			if c != gott.CommandCancel {
				return false
			}
			s.setMode(gott.ModeWriting)
			return true
		},
		status: func(s *Session) (string, gott.StatusStyle) {
			return "Save modified buffer?", gott.StatusFull
		},
		shortcuts: []gott.Shortcut{
			{" Y", "Yes"},
			{" N", "No"},
			{"^C", "Cancel"},
		},
	}
}

// SaveFilename edits the name the note is saved under.

func saveFilenameHandler() *handler {
	return &handler{
		moveCursor: func(s *Session, d gott.Direction, wordJump, extend bool) {
			if s.save.saving {
				return
			}
			n := len([]rune(s.note.Filename))
			switch {
			case d == gott.MoveLeft && wordJump:
				s.save.cursor = 0
			case d == gott.MoveLeft:
				s.save.cursor--
			case d == gott.MoveRight && wordJump:
				s.save.cursor = n
			case d == gott.MoveRight:
				s.save.cursor++
			}
			s.save.cursor = clip(s.save.cursor, 0, n)
		},
		delete: func(s *Session, wordJump bool) {
			if s.save.saving {
				return
			}
			s.save.capture(s.note.Filename)
			name := []rune(s.note.Filename)
			if s.save.cursor < len(name) {
				s.setFilename(append(name[:s.save.cursor:s.save.cursor], name[s.save.cursor+1:]...))
			}
		},
		backspace: func(s *Session, wordJump bool) {
			if s.save.saving {
				return
			}
			s.save.capture(s.note.Filename)
			name := []rune(s.note.Filename)
			if s.save.cursor > 0 {
				s.save.cursor--
				s.setFilename(append(name[:s.save.cursor:s.save.cursor], name[s.save.cursor+1:]...))
			}
		},
		typeChar: func(s *Session, c rune) {
			if s.save.saving {
				return
			}
			s.save.capture(s.note.Filename)
			name := []rune(s.note.Filename)
			line := make([]rune, 0, len(name)+1)
			line = append(line, name[:s.save.cursor]...)
			line = append(line, c)
			line = append(line, name[s.save.cursor:]...)
			s.save.cursor++
			s.setFilename(line)
		},
		home: func(s *Session) {
			if !s.save.saving {
				s.save.cursor = 0
			}
		},
		end: func(s *Session) {
			if !s.save.saving {
				s.save.cursor = len([]rune(s.note.Filename))
			}
		},
		enter: func(s *Session) {
			if s.save.saving {
				return
			}
			s.save.saving = true
			s.saveNote()
		},
		command: func(s *Session, c gott.Command) bool {
			if c != gott.CommandCancel {
				return false
			}
			if s.save.saving {
				return true
			}
			if s.save.captured {
				s.note.Filename = s.save.original
			}
			s.save = saveState{}
			s.setMode(gott.ModeWriting)
			return true
		},
		status: func(s *Session) (string, gott.StatusStyle) {
			return "File Name to Write: " + s.note.Filename, gott.StatusFull
		},
		shortcuts: []gott.Shortcut{
			{" ↵", "Save"},
			{"^C", "Cancel"},
		},
	}
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
