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

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/timburks/noted/pkg/clipboard"
	"github.com/timburks/noted/pkg/commander"
	"github.com/timburks/noted/pkg/config"
	"github.com/timburks/noted/pkg/dispatch"
	"github.com/timburks/noted/pkg/screen"
	"github.com/timburks/noted/pkg/session"
	"github.com/timburks/noted/pkg/storage"
	gott "github.com/timburks/noted/pkg/types"
)

func newDriver(name string) screen.Driver {
	if name == config.DriverTermbox {
		return screen.NewTermboxDriver()
	}
	return screen.NewTcellDriver(nil)
}

// An editorLoop owns the sessions of one terminal.
type editorLoop struct {
	ctx       context.Context
	store     noteStore
	queue     *dispatch.Queue
	commander *commander.Commander
	done      bool

	stopWatch context.CancelFunc
}

// open starts a session on note and makes it current.
func (l *editorLoop) open(note gott.Note) {
	var s *session.Session
	s = session.New(l.ctx, note, session.Config{
		Storage:    l.store,
		Clipboard:  clipboard.System{},
		Dispatcher: l.queue,
		OnClose: func() {
			if l.commander.Session() == s {
				l.done = true
			}
		},
		Reload: func() {
			slog.Info("reloading note", "note", s.Note().ID, "filename", s.Note().Filename)
			s.Detach()
			l.open(s.Note())
		},
	})
	l.commander.SetSession(s)
	l.watch(s)
}

// watch reports changes to the note's file to the session.
func (l *editorLoop) watch(s *session.Session) {
	if l.stopWatch != nil {
		l.stopWatch()
		l.stopWatch = nil
	}
	fs, ok := l.store.(*storage.FileStorage)
	id := s.Note().ID
	if !ok || id == "" {
		return
	}
	ctx, cancel := context.WithCancel(l.ctx)
	err := fs.Watch(ctx, id, func() {
		l.queue.Post(func() {
			if l.commander.Session() == s {
				s.NotifyExternalChange()
			}
		})
	})
	if err != nil {
		cancel()
		slog.Warn("not watching note", "note", id, "error", err)
		return
	}
	l.stopWatch = cancel
}

// runEditor edits note in the terminal until its session closes.
func runEditor(ctx context.Context, store noteStore, note gott.Note) error {
	driver := newDriver(cfg.Driver)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	s := screen.NewScreen(driver)
	defer s.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l := &editorLoop{
		ctx:       ctx,
		store:     store,
		queue:     dispatch.NewQueue(ctx, driver.Interrupt),
		commander: commander.NewCommander(nil, cfg.TabWidth, cfg.TagPalette()),
	}
	l.commander.SetDebug(verbose)
	l.open(note)
	slog.Info("editing", "note", note.ID, "filename", note.Filename, "driver", cfg.Driver)

	// Run the main event loop.
	for !l.done {
		s.Render(l.commander.View())
		event := s.GetNextEvent()
		if event == nil {
			break
		}
		if event.Type == gott.EventKey {
			l.commander.ProcessEvent(event)
		}
		l.queue.Drain()
	}
	if l.stopWatch != nil {
		l.stopWatch()
	}
	return nil
}
