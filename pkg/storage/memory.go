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

package storage

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	gott "github.com/timburks/noted/pkg/types"
)

// A MemoryStorage keeps notes in memory.
type MemoryStorage struct {
	mu       sync.Mutex
	notes    []gott.Note
	contents map[string][]string
	now      func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		contents: map[string][]string{},
		now:      time.Now,
	}
}

// NewDemoStorage returns a memory storage holding a few sample notes.
// Only the first has content; opening the others reports them missing.
func NewDemoStorage() *MemoryStorage {
	m := NewMemoryStorage()
	now := m.now()
	demo := []string{
		"Welcome to noted.",
		"",
		"Plan the day #productivity now",
		"Call the plumber #personal",
		"Ship the release #work #todo",
	}
	m.add(gott.Note{ID: "demo", Filename: "demo", CreationDate: now, LastEditDate: now}, demo)
	for i := 2; i <= 16; i++ {
		name := "demo" + strconv.Itoa(i)
		t := now.Add(-time.Duration(i) * time.Minute)
		m.notes = append(m.notes, gott.Note{ID: name, Filename: name, CreationDate: t, LastEditDate: t})
	}
	return m
}

func (m *MemoryStorage) add(note gott.Note, content []string) {
	m.notes = append(m.notes, note)
	m.contents[note.ID] = append([]string(nil), content...)
}

func (m *MemoryStorage) LoadNote(ctx context.Context, id string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.contents[id]
	if !ok {
		return nil, fmt.Errorf("load %q: %w", id, ErrNotFound)
	}
	return append([]string(nil), content...), nil
}

func (m *MemoryStorage) SaveNote(ctx context.Context, note gott.Note, content []string) (gott.Note, error) {
	if err := ctx.Err(); err != nil {
		return gott.Note{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.Filename == "" {
		note.Filename = nextUntitled(m.notes)
	}
	if note.CreationDate.IsZero() {
		note.CreationDate = now
	}
	note.LastEditDate = now
	m.contents[note.ID] = append([]string(nil), content...)
	for i := range m.notes {
		if m.notes[i].ID == note.ID {
			m.notes[i] = note
			return note, nil
		}
	}
	m.notes = append(m.notes, note)
	return note, nil
}

func (m *MemoryStorage) ListNotes(ctx context.Context) ([]gott.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	notes := append([]gott.Note(nil), m.notes...)
	m.mu.Unlock()
	sortByLastEdit(notes)
	return notes, nil
}

func (m *MemoryStorage) FindByFilename(ctx context.Context, filename string) (gott.Note, error) {
	notes, err := m.ListNotes(ctx)
	if err != nil {
		return gott.Note{}, err
	}
	return findByFilename(notes, filename)
}
