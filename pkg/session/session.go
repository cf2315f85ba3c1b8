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

// Package session holds the editing state of one open note.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/timburks/noted/pkg/editor"
	gott "github.com/timburks/noted/pkg/types"
)

const untitledName = "New Buffer"

// Config holds the collaborators of a Session.
type Config struct {
	Storage    gott.Storage
	Clipboard  gott.Clipboard
	Dispatcher gott.Dispatcher
	// OnClose is called once when the session ends.
	OnClose func()
	// Reload is called for the reload command. If nil the command is
	// not handled.
	Reload func()
}

// A Session is an open note: its buffer, its mode and the work in flight
// for it. Sessions are owned by a single event loop and are not safe for
// concurrent use; asynchronous results arrive through the Dispatcher.
type Session struct {
	ctx         context.Context
	note        gott.Note
	buffer      *editor.Buffer
	mode        gott.Mode
	save        saveState
	load        gott.LoadState
	initialHash uint64
	status      string
	style       gott.StatusStyle
	message     string

	storage    gott.Storage
	clipboard  gott.Clipboard
	dispatcher gott.Dispatcher
	onClose    func()
	reload     func()
	closed     bool
}

// New opens a session on note. A note with a filename is loaded in the
// background; until the load completes the session edits a placeholder.
func New(ctx context.Context, note gott.Note, cfg Config) *Session {
	s := &Session{
		ctx:        ctx,
		note:       note,
		buffer:     editor.NewBuffer(),
		mode:       gott.ModeWriting,
		load:       gott.LoadLoaded,
		storage:    cfg.Storage,
		clipboard:  cfg.Clipboard,
		dispatcher: cfg.Dispatcher,
		onClose:    cfg.OnClose,
		reload:     cfg.Reload,
	}
	s.initialHash = s.buffer.Hash()
	if note.Filename != "" {
		s.load = gott.LoadLoading
		s.startLoad()
	}
	s.UpdateStatus()
	return s
}

func (s *Session) startLoad() {
	id := s.note.ID
	s.dispatcher.Go(func() {
		lines, err := s.storage.LoadNote(s.ctx, id)
		s.dispatcher.Post(func() {
			s.finishLoad(lines, err)
		})
	})
}

func (s *Session) finishLoad(lines []string, err error) {
	if s.closed {
		return
	}
	if err != nil {
		slog.Error("load failed", "note", s.note.ID, "filename", s.note.Filename, "error", err)
		s.load = gott.LoadFailed
		if errors.Is(err, gott.ErrNotFound) {
			s.buffer.SetLines([]string{"Error: File not found"})
		} else {
			s.buffer.SetLines([]string{"Error: " + err.Error()})
		}
		s.UpdateStatus()
		return
	}
	s.load = gott.LoadLoaded
	s.buffer.SetLines(lines)
	s.initialHash = s.buffer.Hash()
	slog.Debug("loaded note", "note", s.note.ID, "lines", s.buffer.GetRowCount())
	s.UpdateStatus()
}

func (s *Session) saveNote() {
	note := s.note
	content := s.buffer.Lines()
	s.dispatcher.Go(func() {
		saved, err := s.storage.SaveNote(s.ctx, note, content)
		s.dispatcher.Post(func() {
			s.finishSave(saved, content, err)
		})
	})
}

func (s *Session) finishSave(saved gott.Note, content []string, err error) {
	if s.closed {
		return
	}
	s.save.saving = false
	if err != nil {
		slog.Error("save failed", "note", s.note.ID, "filename", s.note.Filename, "error", err)
		s.save = saveState{}
		s.message = fmt.Sprintf("Error: could not save note: %v", err)
		s.setMode(gott.ModeWriting)
		return
	}
	s.note = saved
	s.initialHash = editor.HashLines(content)
	slog.Info("saved note", "note", saved.ID, "filename", saved.Filename)
	s.close()
}

func (s *Session) copySelection(cut bool) {
	if !s.buffer.HasSelection() {
		return
	}
	text := s.buffer.SelectionText()
	clipboard := s.clipboard
	s.dispatcher.Go(func() {
		if err := clipboard.WriteText(text); err != nil {
			slog.Warn("clipboard write failed", "error", err)
		}
	})
	if cut {
		s.buffer.EraseSelection()
	}
	s.buffer.ClearSelection()
	s.touch()
}

func (s *Session) close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.onClose != nil {
		s.onClose()
	}
}

// Detach ends the session without calling OnClose. Completions still in
// flight for it are dropped.
func (s *Session) Detach() {
	s.closed = true
}

func (s *Session) setMode(m gott.Mode) {
	s.mode = m
	s.UpdateStatus()
}

func (s *Session) setFilename(name []rune) {
	s.note.Filename = string(name)
	s.UpdateStatus()
}

// touch follows an edit in writing mode.
func (s *Session) touch() {
	s.message = ""
	s.UpdateStatus()
}

func (s *Session) displayName() string {
	if s.note.Filename == "" {
		return untitledName
	}
	return s.note.Filename
}

func (s *Session) handler() *handler {
	return handlers[s.mode]
}

// MoveCursor moves the cursor in the current mode.
func (s *Session) MoveCursor(d gott.Direction, wordJump, extend bool) {
	s.handler().moveCursor(s, d, wordJump, extend)
}

func (s *Session) Delete(wordJump bool) {
	s.handler().delete(s, wordJump)
}

func (s *Session) Backspace(wordJump bool) {
	s.handler().backspace(s, wordJump)
}

func (s *Session) Enter() {
	s.handler().enter(s)
}

func (s *Session) Type(c rune) {
	s.handler().typeChar(s, c)
}

func (s *Session) Home() {
	s.handler().home(s)
}

func (s *Session) End() {
	s.handler().end(s)
}

// HandleCommand applies a command and reports whether the mode consumed it.
func (s *Session) HandleCommand(c gott.Command) bool {
	return s.handler().command(s, c)
}

// UpdateStatus recomputes the status text for the current mode.
func (s *Session) UpdateStatus() {
	s.status, s.style = s.handler().status(s)
}

// NotifyExternalChange reports that the note changed outside the editor.
func (s *Session) NotifyExternalChange() {
	if s.closed {
		return
	}
	s.message = "File changed on disk (^R to reload)"
	if s.mode == gott.ModeWriting {
		s.UpdateStatus()
	}
}

// Dirty reports whether the buffer differs from what was loaded.
// A buffer that failed to load is always dirty.
func (s *Session) Dirty() bool {
	if s.load == gott.LoadFailed {
		return true
	}
	return s.buffer.Hash() != s.initialHash
}

func (s *Session) Status() (string, gott.StatusStyle) {
	return s.status, s.style
}

func (s *Session) Shortcuts() []gott.Shortcut {
	return s.handler().shortcuts
}

func (s *Session) Mode() gott.Mode {
	return s.mode
}

func (s *Session) Buffer() *editor.Buffer {
	return s.buffer
}

func (s *Session) Note() gott.Note {
	return s.note
}

func (s *Session) LoadState() gott.LoadState {
	return s.load
}

// FilenameCursor is the cursor position while editing the filename.
func (s *Session) FilenameCursor() int {
	return s.save.cursor
}

// Saving reports whether a save is in flight.
func (s *Session) Saving() bool {
	return s.save.saving
}

func (s *Session) Closed() bool {
	return s.closed
}
